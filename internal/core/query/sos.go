package query

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/pkg/pagination"
)

// StatusCount is the occurrence count for one status over the filtered set
type StatusCount struct {
	Status domain.SosStatus `json:"status"`
	Count  int              `json:"count"`
	Pct    int              `json:"pct"`
}

// TypeCount is the occurrence count for one disaster type
type TypeCount struct {
	Type  domain.DisasterType `json:"type"`
	Count int                 `json:"count"`
	Pct   int                 `json:"pct"`
}

// TopZone is one entry of the top-zones-by-request-count grouping.
// Risk is the highest danger level seen among the zone's requests.
type TopZone struct {
	Zone  string             `json:"zone"`
	Count int                `json:"count"`
	Risk  domain.DangerLevel `json:"risk"`
}

// SosAggregates are computed over the filtered (not paginated) set
type SosAggregates struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
	ByType   []TypeCount   `json:"by_type"`
	TopZones []TopZone     `json:"top_zones"`
}

// SosResult is the visible page plus derived aggregates
type SosResult struct {
	Page       []domain.SosRecord `json:"page"`
	Meta       pagination.Meta    `json:"meta"`
	Aggregates SosAggregates      `json:"aggregates"`
}

// topZoneLimit bounds the top-zones grouping
const topZoneLimit = 5

// RunSos filters, paginates and aggregates SOS records. It is a pure
// function of its inputs: records are never mutated and a nil collection
// behaves as an empty one.
func RunSos(records []domain.SosRecord, p SosParams) SosResult {
	filtered := filterSos(records, p)

	params := pagination.Normalize(p.Page, p.PageSize)
	start, end := pagination.Bounds(params, len(filtered))

	return SosResult{
		Page:       filtered[start:end],
		Meta:       pagination.GetMeta(params, len(filtered)),
		Aggregates: aggregateSos(filtered),
	}
}

func filterSos(records []domain.SosRecord, p SosParams) []domain.SosRecord {
	hasZoneFilter := p.HasZoneFilter()
	zoneID := strings.TrimSpace(p.ZoneID)

	filtered := make([]domain.SosRecord, 0, len(records))
	for _, r := range records {
		if p.Search != "" && !containsFold(r.Message, p.Search) {
			continue
		}
		if p.ZoneName != "" && !containsFold(r.ZoneName, p.ZoneName) {
			continue
		}
		if zoneID != "" && recordZoneID(r) != zoneID {
			continue
		}
		// Zone identity filtering supersedes the type filter outright
		if !hasZoneFilter && p.Type != "" && r.ZoneType != p.Type {
			continue
		}
		if p.Status != "" && r.Status != p.Status {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// recordZoneID normalizes the zone identity to a string for comparison,
// empty for unzoned records
func recordZoneID(r domain.SosRecord) string {
	if !r.HasZone {
		return ""
	}
	return strconv.Itoa(r.ZoneID)
}

func aggregateSos(filtered []domain.SosRecord) SosAggregates {
	agg := SosAggregates{Total: len(filtered)}

	statusCounts := make(map[domain.SosStatus]int, len(domain.SosStatuses))
	typeCounts := make(map[domain.DisasterType]int, len(domain.DisasterTypes))
	for _, r := range filtered {
		statusCounts[r.Status]++
		typeCounts[r.ZoneType]++
	}

	statusTotal := 0
	for _, s := range domain.SosStatuses {
		statusTotal += statusCounts[s]
	}
	for _, s := range domain.SosStatuses {
		agg.ByStatus = append(agg.ByStatus, StatusCount{
			Status: s,
			Count:  statusCounts[s],
			Pct:    pct(statusCounts[s], statusTotal),
		})
	}

	typeTotal := 0
	for _, t := range domain.DisasterTypes {
		typeTotal += typeCounts[t]
	}
	for _, t := range domain.DisasterTypes {
		agg.ByType = append(agg.ByType, TypeCount{
			Type:  t,
			Count: typeCounts[t],
			Pct:   pct(typeCounts[t], typeTotal),
		})
	}

	agg.TopZones = topZones(filtered)
	return agg
}

// pct rounds count/total to a whole percentage; an empty total is
// treated as 1 so the result degrades to 0 instead of dividing by zero
func pct(count, total int) int {
	if total == 0 {
		total = 1
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// topZones groups the filtered requests by zone name, keeping the order
// zones are first encountered in. The sort is stable, so zones with
// equal counts preserve that first-seen order.
func topZones(filtered []domain.SosRecord) []TopZone {
	index := make(map[string]int, len(filtered))
	groups := make([]TopZone, 0)

	for _, r := range filtered {
		i, ok := index[r.ZoneName]
		if !ok {
			i = len(groups)
			index[r.ZoneName] = i
			groups = append(groups, TopZone{Zone: r.ZoneName, Risk: domain.DangerLow})
		}
		groups[i].Count++
		groups[i].Risk = domain.MaxDanger(groups[i].Risk, riskLevel(r.ZoneDanger))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	if len(groups) > topZoneLimit {
		groups = groups[:topZoneLimit]
	}
	return groups
}

// riskLevel folds unknown danger values down to LOW for risk reporting
func riskLevel(d domain.DangerLevel) domain.DangerLevel {
	switch d.Rank() {
	case 3:
		return domain.DangerHigh
	case 2:
		return domain.DangerMedium
	default:
		return domain.DangerLow
	}
}
