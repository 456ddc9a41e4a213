// Package query implements the list query engine: deterministic,
// side-effect-free filtering, pagination and aggregation over zone and
// SOS collections fetched by the caller.
package query

import (
	"strings"

	"disasterwatch/internal/core/domain"
)

// SosParams holds the user-specified query parameters for SOS requests.
// Mutate through the setters: any filter change resets the page to 1,
// changing only the page does not.
type SosParams struct {
	Search   string
	Type     domain.DisasterType
	Status   domain.SosStatus
	ZoneName string
	ZoneID   string
	Page     int
	PageSize int
}

// SetSearch updates the free-text filter
func (p *SosParams) SetSearch(s string) {
	if p.Search != s {
		p.Search = s
		p.Page = 1
	}
}

// SetType updates the disaster-type filter
func (p *SosParams) SetType(t domain.DisasterType) {
	if p.Type != t {
		p.Type = t
		p.Page = 1
	}
}

// SetStatus updates the status filter
func (p *SosParams) SetStatus(s domain.SosStatus) {
	if p.Status != s {
		p.Status = s
		p.Page = 1
	}
}

// SetZoneName updates the zone-name filter
func (p *SosParams) SetZoneName(name string) {
	if p.ZoneName != name {
		p.ZoneName = name
		p.Page = 1
	}
}

// SetZoneID updates the zone-id filter
func (p *SosParams) SetZoneID(id string) {
	if p.ZoneID != id {
		p.ZoneID = id
		p.Page = 1
	}
}

// SetPage moves to another page without touching filters
func (p *SosParams) SetPage(page int) {
	p.Page = page
}

// HasZoneFilter reports whether a zone-identifying filter is active.
// While it is, the type filter is ignored entirely: a zone has exactly
// one inherent type, so zone identity supersedes type.
func (p SosParams) HasZoneFilter() bool {
	return strings.TrimSpace(p.ZoneName) != "" || strings.TrimSpace(p.ZoneID) != ""
}

// ZoneParams holds the user-specified query parameters for zones
type ZoneParams struct {
	Search   string
	Type     domain.DisasterType
	Danger   domain.DangerLevel
	Page     int
	PageSize int
}

// SetSearch updates the name search filter
func (p *ZoneParams) SetSearch(s string) {
	if p.Search != s {
		p.Search = s
		p.Page = 1
	}
}

// SetType updates the disaster-type filter
func (p *ZoneParams) SetType(t domain.DisasterType) {
	if p.Type != t {
		p.Type = t
		p.Page = 1
	}
}

// SetDanger updates the danger-level filter
func (p *ZoneParams) SetDanger(d domain.DangerLevel) {
	if p.Danger != d {
		p.Danger = d
		p.Page = 1
	}
}

// SetPage moves to another page without touching filters
func (p *ZoneParams) SetPage(page int) {
	p.Page = page
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
