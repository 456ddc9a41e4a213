package domain

import (
	"encoding/json"
	"time"
)

// DisasterZoneDTO is the zone shape embedded in SOS responses
type DisasterZoneDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	DisasterType    string  `json:"disasterType"`
	DangerLevel     string  `json:"dangerLevel"`
	CenterLatitude  float64 `json:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude"`
	Radius          float64 `json:"radius"`
}

// SosRequestDTO is the wire shape returned by GET /sos/all
type SosRequestDTO struct {
	ID        int              `json:"id"`
	UserID    int              `json:"user_id"`
	Message   string           `json:"message"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	SosStatus string           `json:"sosStatus"`
	Zone      *DisasterZoneDTO `json:"disasterZoneDto"`
}

// timestampLayouts covers the formats the server has been seen emitting:
// RFC3339 with and without zone, and with truncated fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Normalize converts a wire record into the validated, default-filled
// record the query engine consumes. Absent zones get the "No Zone"
// placeholders; unknown enum values degrade rather than fail.
func (d SosRequestDTO) Normalize() SosRecord {
	rec := SosRecord{
		ID:        d.ID,
		UserID:    d.UserID,
		Message:   d.Message,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
		CreatedAt: parseTimestamp(d.CreatedAt),
		UpdatedAt: parseTimestamp(d.UpdatedAt),
		Status:    SosStatus(d.SosStatus).Canonical(),
		ZoneName:  NoZoneName,
		ZoneType:  DisasterUnknown,
	}

	if d.Zone != nil {
		rec.HasZone = true
		rec.ZoneID = d.Zone.ID
		rec.ZoneName = d.Zone.Name
		rec.ZoneType = ParseDisasterType(d.Zone.DisasterType)
		rec.ZoneDanger = DangerLevel(d.Zone.DangerLevel)
	}

	return rec
}

// ParseSosList decodes and normalizes a /sos/all response body.
// A JSON null body yields an empty list.
func ParseSosList(raw []byte) ([]SosRecord, error) {
	var dtos []SosRequestDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	records := make([]SosRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, d.Normalize())
	}
	return records, nil
}
