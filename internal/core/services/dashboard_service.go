package services

import (
	"sort"

	"disasterwatch/internal/core/domain"
)

// DashboardService assembles the landing-view overview from the zone
// registry and the SOS collection
type DashboardService struct {
	zones *ZoneService
	sos   *SosService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(zones *ZoneService, sos *SosService) *DashboardService {
	return &DashboardService{zones: zones, sos: sos}
}

// recentLimit bounds the recent-requests table
const recentLimit = 10

// DashboardData represents the overview stats
type DashboardData struct {
	// Zone statistics
	TotalZones    int `json:"total_zones"`
	CriticalZones int `json:"critical_zones"` // HIGH danger

	// SOS statistics
	TotalSos   int `json:"total_sos"`
	PendingSos int `json:"pending_sos"`
	ActiveSos  int `json:"active_sos"` // anything not yet resolved

	// Recent activity
	RecentSos []domain.SosRecord `json:"recent_sos"`
}

// GetOverview computes the dashboard snapshot
func (s *DashboardService) GetOverview() DashboardData {
	data := DashboardData{}

	for _, z := range s.zones.List() {
		data.TotalZones++
		if z.DangerLevel == domain.DangerHigh {
			data.CriticalZones++
		}
	}

	records := s.sos.Records()
	data.TotalSos = len(records)
	for _, r := range records {
		switch r.Status {
		case domain.SosPending:
			data.PendingSos++
			data.ActiveSos++
		case domain.SosInProgress:
			data.ActiveSos++
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > recentLimit {
		records = records[:recentLimit]
	}
	data.RecentSos = records

	return data
}
