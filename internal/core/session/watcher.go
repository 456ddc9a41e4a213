package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Watcher re-checks credential validity on a fixed schedule so an
// expired token flips the guard to ANONYMOUS even without user
// interaction.
type Watcher struct {
	cron  *cron.Cron
	guard *Guard
}

// NewWatcher schedules a periodic Check on the guard
func NewWatcher(guard *Guard, interval time.Duration) (*Watcher, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("session: watch interval must be positive, got %s", interval)
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := c.AddFunc(spec, func() {
		guard.Check(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("session: schedule %q: %w", spec, err)
	}

	return &Watcher{cron: c, guard: guard}, nil
}

// Start begins the periodic checks
func (w *Watcher) Start() {
	w.cron.Start()
	log.Printf("✅ Session watcher started")
}

// Stop halts the periodic checks
func (w *Watcher) Stop() {
	w.cron.Stop()
	log.Printf("🛑 Session watcher stopped")
}
