package query

import (
	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/pkg/pagination"
)

// ZonePageSize is the default page size for zone listings
const ZonePageSize = 8

// DangerCount is the occurrence count for one danger level
type DangerCount struct {
	Level domain.DangerLevel `json:"level"`
	Count int                `json:"count"`
	Pct   int                `json:"pct"`
}

// ZoneStats are computed over the filtered (not paginated) set
type ZoneStats struct {
	Total    int           `json:"total"`
	ByType   []TypeCount   `json:"by_type"`
	ByDanger []DangerCount `json:"by_danger"`
	Critical int           `json:"critical"` // zones at HIGH danger
}

// ZoneResult is the visible page plus derived stats
type ZoneResult struct {
	Page  []domain.DisasterZone `json:"page"`
	Meta  pagination.Meta       `json:"meta"`
	Stats ZoneStats             `json:"stats"`
}

// RunZones filters, paginates and aggregates disaster zones. Pure, like
// RunSos; a nil collection behaves as an empty one.
func RunZones(zones []domain.DisasterZone, p ZoneParams) ZoneResult {
	filtered := make([]domain.DisasterZone, 0, len(zones))
	for _, z := range zones {
		if p.Search != "" && !containsFold(z.Name, p.Search) {
			continue
		}
		if p.Type != "" && z.DisasterType != p.Type {
			continue
		}
		if p.Danger != "" && z.DangerLevel != p.Danger {
			continue
		}
		filtered = append(filtered, z)
	}

	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = ZonePageSize
	}
	params := pagination.Normalize(p.Page, pageSize)
	start, end := pagination.Bounds(params, len(filtered))

	return ZoneResult{
		Page:  filtered[start:end],
		Meta:  pagination.GetMeta(params, len(filtered)),
		Stats: zoneStats(filtered),
	}
}

func zoneStats(filtered []domain.DisasterZone) ZoneStats {
	stats := ZoneStats{Total: len(filtered)}

	typeCounts := make(map[domain.DisasterType]int, len(domain.DisasterTypes))
	dangerCounts := make(map[domain.DangerLevel]int, len(domain.DangerLevels))
	for _, z := range filtered {
		typeCounts[z.DisasterType]++
		dangerCounts[z.DangerLevel]++
	}

	typeTotal := 0
	for _, t := range domain.DisasterTypes {
		typeTotal += typeCounts[t]
	}
	for _, t := range domain.DisasterTypes {
		stats.ByType = append(stats.ByType, TypeCount{
			Type:  t,
			Count: typeCounts[t],
			Pct:   pct(typeCounts[t], typeTotal),
		})
	}

	dangerTotal := 0
	for _, d := range domain.DangerLevels {
		dangerTotal += dangerCounts[d]
	}
	for _, d := range domain.DangerLevels {
		stats.ByDanger = append(stats.ByDanger, DangerCount{
			Level: d,
			Count: dangerCounts[d],
			Pct:   pct(dangerCounts[d], dangerTotal),
		})
	}

	stats.Critical = dangerCounts[domain.DangerHigh]
	return stats
}
