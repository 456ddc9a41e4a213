package services

import (
	"strconv"
	"strings"
	"sync"

	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/core/query"
)

// ZoneService is the local-only zone registry: an in-memory list mutated
// directly by create/update/delete, with no server round-trip. Matches
// the known simplification of the original dashboard.
type ZoneService struct {
	mu    sync.RWMutex
	zones []domain.DisasterZone
}

// NewZoneService creates a registry seeded with the given zones
func NewZoneService(seed []domain.DisasterZone) *ZoneService {
	zones := make([]domain.DisasterZone, len(seed))
	copy(zones, seed)
	return &ZoneService{zones: zones}
}

// ZoneForm carries raw form input for create/update. Numeric fields
// arrive as text and are coerced, never rejected.
type ZoneForm struct {
	Name            string
	DisasterType    domain.DisasterType
	DangerLevel     domain.DangerLevel
	CenterLatitude  string
	CenterLongitude string
	RadiusKm        string
}

// Create adds a zone to the front of the registry. Blank names default
// to "New Zone"; unparseable coordinates fall back to 0, radius to 1.
func (s *ZoneService) Create(form ZoneForm) domain.DisasterZone {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = "New Zone"
	}

	zone := domain.DisasterZone{
		ID:              s.nextIDLocked(),
		Name:            name,
		DisasterType:    form.DisasterType,
		DangerLevel:     form.DangerLevel,
		CenterLatitude:  coerceFloat(form.CenterLatitude, 0),
		CenterLongitude: coerceFloat(form.CenterLongitude, 0),
		RadiusKm:        coerceFloat(form.RadiusKm, 1),
	}

	s.zones = append([]domain.DisasterZone{zone}, s.zones...)
	return zone
}

// Update rewrites a zone in place. Blank or unparseable fields keep
// their prior values.
func (s *ZoneService) Update(id int, form ZoneForm) (domain.DisasterZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, z := range s.zones {
		if z.ID != id {
			continue
		}

		if name := strings.TrimSpace(form.Name); name != "" {
			z.Name = name
		}
		z.DisasterType = form.DisasterType
		z.DangerLevel = form.DangerLevel
		z.CenterLatitude = coerceFloat(form.CenterLatitude, z.CenterLatitude)
		z.CenterLongitude = coerceFloat(form.CenterLongitude, z.CenterLongitude)
		z.RadiusKm = coerceFloat(form.RadiusKm, z.RadiusKm)

		s.zones[i] = z
		return z, nil
	}
	return domain.DisasterZone{}, domain.ErrZoneNotFound
}

// Delete removes a zone by id
func (s *ZoneService) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, z := range s.zones {
		if z.ID == id {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			return nil
		}
	}
	return domain.ErrZoneNotFound
}

// Get returns a zone by id
func (s *ZoneService) Get(id int) (domain.DisasterZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, z := range s.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return domain.DisasterZone{}, domain.ErrZoneNotFound
}

// List returns a snapshot of the registry
func (s *ZoneService) List() []domain.DisasterZone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	zones := make([]domain.DisasterZone, len(s.zones))
	copy(zones, s.zones)
	return zones
}

// Query runs the query engine over a snapshot of the registry
func (s *ZoneService) Query(p query.ZoneParams) query.ZoneResult {
	return query.RunZones(s.List(), p)
}

// nextIDLocked assigns max(id)+1, starting at 1 for an empty registry
func (s *ZoneService) nextIDLocked() int {
	max := 0
	for _, z := range s.zones {
		if z.ID > max {
			max = z.ID
		}
	}
	return max + 1
}

// coerceFloat parses a form number, falling back on parse failure. A
// zero result falls back too, mirroring the original form's behavior
// where empty and zero inputs were indistinguishable.
func coerceFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}
