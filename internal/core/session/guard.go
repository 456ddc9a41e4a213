package session

import (
	"context"
	"sync"
	"time"

	"disasterwatch/internal/adapters/credstore"
	"disasterwatch/internal/core/domain"
)

// Guard owns the authentication state machine for the process lifetime.
// The persisted store is only ever written by the guard's transitions;
// a mutex serializes access since callers arrive from multiple
// goroutines. Writes are last-writer-wins, which is safe because the
// transitions are idempotent.
type Guard struct {
	store credstore.Store
	now   func() time.Time

	mu          sync.Mutex
	state       State
	session     Session
	accessToken string
	onLogout    []func()
}

// Option configures a Guard
type Option func(*Guard)

// WithClock injects the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// NewGuard creates a guard in the ANONYMOUS state. Call Bootstrap to
// derive the initial state from persisted credentials.
func NewGuard(store credstore.Store, opts ...Option) *Guard {
	g := &Guard{
		store:   store,
		now:     time.Now,
		state:   StateAnonymous,
		session: Anonymous(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Bootstrap derives the initial state synchronously from the persisted
// credentials: AUTHENTICATED if a valid access token is stored,
// ANONYMOUS otherwise. Invalid or unreadable credentials are purged.
func (g *Guard) Bootstrap(ctx context.Context) Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	creds, err := g.store.Get(ctx)
	if err != nil || creds.IsEmpty() {
		return g.resetLocked(ctx, EventLogoutRequested)
	}

	ses := Derive(creds.AccessToken, g.now())
	if !ses.Authenticated {
		return g.resetLocked(ctx, EventExpiryDetected)
	}

	g.state = Reduce(g.state, EventLoginSucceeded)
	g.session = ses
	g.accessToken = creds.AccessToken
	return ses
}

// HandleLogin reacts to a successful login or registration: the new
// credential pair is persisted and the session re-derived from it.
func (g *Guard) HandleLogin(ctx context.Context, pair domain.TokenPair, event Event) (Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	creds := credstore.Credentials{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if err := g.store.Set(ctx, creds); err != nil {
		return g.session, err
	}

	ses := Derive(pair.AccessToken, g.now())
	if !ses.Authenticated {
		// The server handed us an already-unusable token; fail closed.
		return g.resetLocked(ctx, EventExpiryDetected), nil
	}

	g.state = Reduce(g.state, event)
	g.session = ses
	g.accessToken = pair.AccessToken
	return ses, nil
}

// Logout performs the explicit logout transition
func (g *Guard) Logout(ctx context.Context) Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resetLocked(ctx, EventLogoutRequested)
}

// Check re-runs the validity check against the current credential. If
// the session was authenticated and the token has since expired, the
// guard emits the logout transition and notifies subscribers. Safe to
// call from a timer or on user interaction.
func (g *Guard) Check(ctx context.Context) Session {
	g.mu.Lock()

	wasAuthenticated := g.state == StateAuthenticated
	ses := Derive(g.accessToken, g.now())
	if ses.Authenticated {
		g.session = ses
		g.mu.Unlock()
		return ses
	}

	out := g.resetLocked(ctx, EventExpiryDetected)
	g.mu.Unlock()

	if wasAuthenticated {
		g.notifyLogout()
	}
	return out
}

// Session returns the current derived session
func (g *Guard) Session() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// State returns the current machine state
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// AccessToken returns the raw token for outgoing requests, empty when
// anonymous
func (g *Guard) AccessToken() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.accessToken
}

// OnLogout registers a callback fired when an expiry-detected logout
// transition occurs
func (g *Guard) OnLogout(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onLogout = append(g.onLogout, fn)
}

// resetLocked clears persisted credentials and applies the transition.
// Callers must hold the mutex. Store errors are swallowed: the guard
// always resolves to a definite session.
func (g *Guard) resetLocked(ctx context.Context, event Event) Session {
	_ = g.store.Clear(ctx)
	g.state = Reduce(g.state, event)
	g.session = Anonymous()
	g.accessToken = ""
	return g.session
}

func (g *Guard) notifyLogout() {
	g.mu.Lock()
	subs := make([]func(), len(g.onLogout))
	copy(subs, g.onLogout)
	g.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
