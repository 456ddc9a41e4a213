package query

import (
	"testing"

	"disasterwatch/internal/core/domain"
)

func zoneFixture() []domain.DisasterZone {
	return []domain.DisasterZone{
		{ID: 1, Name: "Mumbai Flood Zone", DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerHigh},
		{ID: 2, Name: "Delhi Heatwave Zone", DisasterType: domain.DisasterHeatWave, DangerLevel: domain.DangerLow},
		{ID: 3, Name: "Chennai Cyclone Zone", DisasterType: domain.DisasterCyclone, DangerLevel: domain.DangerMedium},
		{ID: 4, Name: "Kolkata Earthquake Zone", DisasterType: domain.DisasterEarthquake, DangerLevel: domain.DangerHigh},
		{ID: 5, Name: "Bengaluru Urban Flood Zone", DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerLow},
	}
}

func TestRunZones_NoFilters(t *testing.T) {
	res := RunZones(zoneFixture(), ZoneParams{Page: 1})

	if len(res.Page) != 5 {
		t.Fatalf("expected all 5 zones, got %d", len(res.Page))
	}
	if res.Stats.Total != 5 {
		t.Errorf("expected stats total 5, got %d", res.Stats.Total)
	}
	if res.Stats.Critical != 2 {
		t.Errorf("expected 2 critical zones, got %d", res.Stats.Critical)
	}
}

func TestRunZones_NameSearch(t *testing.T) {
	res := RunZones(zoneFixture(), ZoneParams{Search: "flood", Page: 1})

	if res.Stats.Total != 2 {
		t.Fatalf("expected 2 flood-named zones, got %d", res.Stats.Total)
	}
	for _, z := range res.Page {
		if z.DisasterType != domain.DisasterFlood {
			t.Errorf("unexpected zone %q in the search result", z.Name)
		}
	}
}

func TestRunZones_TypeAndDangerFilters(t *testing.T) {
	res := RunZones(zoneFixture(), ZoneParams{
		Type: domain.DisasterFlood, Danger: domain.DangerHigh, Page: 1,
	})

	if res.Stats.Total != 1 || res.Page[0].ID != 1 {
		t.Fatalf("expected only the Mumbai zone, got %+v", res.Page)
	}
}

func TestRunZones_DefaultPageSize(t *testing.T) {
	zones := make([]domain.DisasterZone, 10)
	for i := range zones {
		zones[i] = domain.DisasterZone{ID: i + 1, Name: "Zone",
			DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerLow}
	}

	res := RunZones(zones, ZoneParams{Page: 1})
	if len(res.Page) != ZonePageSize {
		t.Errorf("expected the default page size of %d, got %d", ZonePageSize, len(res.Page))
	}
	if res.Meta.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", res.Meta.TotalPages)
	}
}

func TestRunZones_PagePastEndIsEmpty(t *testing.T) {
	res := RunZones(zoneFixture(), ZoneParams{Page: 9})
	if len(res.Page) != 0 {
		t.Errorf("page past the end should be empty, got %d zones", len(res.Page))
	}
	if res.Stats.Total != 5 {
		t.Error("stats must still cover the full filtered set")
	}
}

func TestRunZones_StatsIncludeZeroCounts(t *testing.T) {
	res := RunZones(zoneFixture(), ZoneParams{Page: 1})

	if len(res.Stats.ByDanger) != len(domain.DangerLevels) {
		t.Fatalf("expected an entry per danger level, got %d", len(res.Stats.ByDanger))
	}
	if len(res.Stats.ByType) != len(domain.DisasterTypes) {
		t.Fatalf("expected an entry per disaster type, got %d", len(res.Stats.ByType))
	}

	sum := 0
	for _, c := range res.Stats.ByDanger {
		sum += c.Count
	}
	if sum != res.Stats.Total {
		t.Errorf("danger counts sum to %d, want %d", sum, res.Stats.Total)
	}
}

func TestZoneParams_SettersResetPage(t *testing.T) {
	p := ZoneParams{Page: 3}

	p.SetDanger(domain.DangerHigh)
	if p.Page != 1 {
		t.Error("changing the danger filter should reset to page 1")
	}

	p.SetPage(2)
	p.SetDanger(domain.DangerHigh)
	if p.Page != 2 {
		t.Error("re-setting an identical filter value must not reset the page")
	}
}
