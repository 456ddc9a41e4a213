package services

import (
	"errors"
	"testing"

	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/core/query"
)

func seedZones() []domain.DisasterZone {
	return []domain.DisasterZone{
		{ID: 1, Name: "Mumbai Flood Zone", DisasterType: domain.DisasterFlood,
			DangerLevel: domain.DangerHigh, CenterLatitude: 19.076, CenterLongitude: 72.8777, RadiusKm: 20},
		{ID: 2, Name: "Delhi Heatwave Zone", DisasterType: domain.DisasterHeatWave,
			DangerLevel: domain.DangerLow, CenterLatitude: 28.7041, CenterLongitude: 77.1025, RadiusKm: 35},
	}
}

func TestZoneService_CreateDefaults(t *testing.T) {
	svc := NewZoneService(nil)

	zone := svc.Create(ZoneForm{
		DisasterType: domain.DisasterFlood,
		DangerLevel:  domain.DangerLow,
	})

	if zone.ID != 1 {
		t.Errorf("first id should be 1, got %d", zone.ID)
	}
	if zone.Name != "New Zone" {
		t.Errorf("blank name should default to %q, got %q", "New Zone", zone.Name)
	}
	if zone.CenterLatitude != 0 || zone.CenterLongitude != 0 {
		t.Errorf("blank coordinates should default to 0, got %v/%v", zone.CenterLatitude, zone.CenterLongitude)
	}
	if zone.RadiusKm != 1 {
		t.Errorf("blank radius should default to 1, got %v", zone.RadiusKm)
	}
}

func TestZoneService_CreateParsesNumericFields(t *testing.T) {
	svc := NewZoneService(seedZones())

	zone := svc.Create(ZoneForm{
		Name:            "Chennai Cyclone Zone",
		DisasterType:    domain.DisasterCyclone,
		DangerLevel:     domain.DangerMedium,
		CenterLatitude:  "13.0827",
		CenterLongitude: "80.2707",
		RadiusKm:        "25",
	})

	if zone.ID != 3 {
		t.Errorf("expected max+1 id assignment, got %d", zone.ID)
	}
	if zone.CenterLatitude != 13.0827 || zone.RadiusKm != 25 {
		t.Errorf("numeric fields not parsed: %+v", zone)
	}

	// New zones go to the front.
	if list := svc.List(); list[0].ID != 3 {
		t.Errorf("expected the new zone first, got id %d", list[0].ID)
	}
}

func TestZoneService_UpdateKeepsPriorValues(t *testing.T) {
	svc := NewZoneService(seedZones())

	zone, err := svc.Update(1, ZoneForm{
		DisasterType: domain.DisasterFlood,
		DangerLevel:  domain.DangerMedium,
		RadiusKm:     "30",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if zone.Name != "Mumbai Flood Zone" {
		t.Errorf("a blank name must keep the prior one, got %q", zone.Name)
	}
	if zone.CenterLatitude != 19.076 {
		t.Errorf("a blank coordinate must keep the prior one, got %v", zone.CenterLatitude)
	}
	if zone.RadiusKm != 30 {
		t.Errorf("radius should update to 30, got %v", zone.RadiusKm)
	}
	if zone.DangerLevel != domain.DangerMedium {
		t.Errorf("danger level should update, got %s", zone.DangerLevel)
	}
}

func TestZoneService_UpdateZeroInputKeepsPrior(t *testing.T) {
	svc := NewZoneService(seedZones())

	zone, err := svc.Update(1, ZoneForm{
		DisasterType:   domain.DisasterFlood,
		DangerLevel:    domain.DangerHigh,
		CenterLatitude: "0",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if zone.CenterLatitude != 19.076 {
		t.Errorf("a zero coordinate input keeps the prior value, got %v", zone.CenterLatitude)
	}
}

func TestZoneService_UpdateUnknownZone(t *testing.T) {
	svc := NewZoneService(seedZones())
	if _, err := svc.Update(99, ZoneForm{}); !errors.Is(err, domain.ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestZoneService_Delete(t *testing.T) {
	svc := NewZoneService(seedZones())

	if err := svc.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(1); !errors.Is(err, domain.ErrZoneNotFound) {
		t.Error("the deleted zone should no longer resolve")
	}
	if len(svc.List()) != 1 {
		t.Errorf("expected 1 remaining zone, got %d", len(svc.List()))
	}

	if err := svc.Delete(1); !errors.Is(err, domain.ErrZoneNotFound) {
		t.Errorf("deleting twice should fail, got %v", err)
	}
}

func TestZoneService_IDsNotReusedAfterDelete(t *testing.T) {
	svc := NewZoneService(seedZones())

	if err := svc.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	zone := svc.Create(ZoneForm{Name: "Assam Flood Zone",
		DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerHigh})
	if zone.ID != 3 {
		t.Errorf("expected id 3 (max surviving id + 1), got %d", zone.ID)
	}
}

func TestZoneService_ListReturnsSnapshot(t *testing.T) {
	svc := NewZoneService(seedZones())

	list := svc.List()
	list[0].Name = "mutated"

	if fresh := svc.List(); fresh[0].Name == "mutated" {
		t.Error("List must return a copy, not the backing slice")
	}
}

func TestZoneService_Query(t *testing.T) {
	svc := NewZoneService(seedZones())

	res := svc.Query(query.ZoneParams{Danger: domain.DangerHigh, Page: 1})
	if res.Stats.Total != 1 || res.Page[0].ID != 1 {
		t.Errorf("expected only the Mumbai zone, got %+v", res.Page)
	}
}
