package services

import (
	"context"
	"log"
	"sync"
	"time"

	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/core/query"
	"disasterwatch/internal/core/session"
)

// SosService holds the most recently fetched SOS collection and answers
// queries over it. Until the first successful fetch the collection is
// empty; queries still work and report zero records.
type SosService struct {
	sosAPI SosAPI
	guard  *session.Guard
	now    func() time.Time

	mu      sync.RWMutex
	records []domain.SosRecord
	fetched bool
}

// NewSosService creates a new SOS service
func NewSosService(sosAPI SosAPI, guard *session.Guard) *SosService {
	return &SosService{
		sosAPI: sosAPI,
		guard:  guard,
		now:    time.Now,
	}
}

// Refresh fetches the full SOS listing with the current access token
// and replaces the local collection. A late response overwrites newer
// data last-writer-wins; staleness is not tracked.
func (s *SosService) Refresh(ctx context.Context) error {
	accessToken := s.guard.AccessToken()
	if accessToken == "" {
		return domain.ErrUnauthorized
	}

	records, err := s.sosAPI.ListAllSos(ctx, accessToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.fetched = true
	s.mu.Unlock()

	log.Printf("✅ Fetched %d SOS requests", len(records))
	return nil
}

// Fetched reports whether at least one fetch has completed
func (s *SosService) Fetched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetched
}

// Records returns a snapshot of the current collection
func (s *SosService) Records() []domain.SosRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.SosRecord, len(s.records))
	copy(records, s.records)
	return records
}

// Query runs the query engine over a snapshot of the collection
func (s *SosService) Query(p query.SosParams) query.SosResult {
	return query.RunSos(s.Records(), p)
}

// UpdateStatus applies a local status transition. Transitions are
// user-triggered and unconstrained: any status may follow any other.
func (s *SosService) UpdateStatus(id int, next domain.SosStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetched {
		return domain.ErrSosNotFetched
	}

	for i, r := range s.records {
		if r.ID == id {
			s.records[i].Status = next.Canonical()
			s.records[i].UpdatedAt = s.now()
			return nil
		}
	}
	return domain.ErrSosNotFound
}
