package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// DisasterType classifies a zone by the hazard it tracks
type DisasterType string

const (
	DisasterFlood      DisasterType = "FLOOD"
	DisasterEarthquake DisasterType = "EARTHQUAKE"
	DisasterCyclone    DisasterType = "CYCLONE"
	DisasterHeatWave   DisasterType = "HEAT_WAVE"
	DisasterFire       DisasterType = "FIRE"
	DisasterLandslide  DisasterType = "LANDSLIDE"
	DisasterStorm      DisasterType = "STORM"
	DisasterDrought    DisasterType = "DROUGHT"
	DisasterUnknown    DisasterType = "UNKNOWN"
)

// DisasterTypes lists all known types in display order
var DisasterTypes = []DisasterType{
	DisasterFlood,
	DisasterEarthquake,
	DisasterCyclone,
	DisasterHeatWave,
	DisasterFire,
	DisasterLandslide,
	DisasterStorm,
	DisasterDrought,
}

// ParseDisasterType maps a wire value to a known type, UNKNOWN otherwise
func ParseDisasterType(s string) DisasterType {
	for _, t := range DisasterTypes {
		if string(t) == s {
			return t
		}
	}
	return DisasterUnknown
}

// DangerLevel represents zone danger classification
type DangerLevel string

const (
	DangerLow    DangerLevel = "LOW"
	DangerMedium DangerLevel = "MEDIUM"
	DangerHigh   DangerLevel = "HIGH"
)

// DangerLevels lists levels from lowest to highest
var DangerLevels = []DangerLevel{DangerLow, DangerMedium, DangerHigh}

// Rank orders danger levels: HIGH > MEDIUM > LOW, unknown values rank 0.
// Single source of truth for risk comparisons.
func (d DangerLevel) Rank() int {
	switch d {
	case DangerHigh:
		return 3
	case DangerMedium:
		return 2
	case DangerLow:
		return 1
	default:
		return 0
	}
}

// MaxDanger returns the higher of two danger levels
func MaxDanger(a, b DangerLevel) DangerLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// SosStatus represents the lifecycle status of an SOS request
type SosStatus string

const (
	SosPending    SosStatus = "PENDING"
	SosInProgress SosStatus = "IN_PROGRESS"
	SosResolved   SosStatus = "RESOLVED"
)

// SosStatuses lists the canonical statuses in display order
var SosStatuses = []SosStatus{SosPending, SosInProgress, SosResolved}

// Canonical folds legacy per-view aliases into the canonical status set.
// Unknown values default to PENDING so a record always has a status.
func (s SosStatus) Canonical() SosStatus {
	switch s {
	case SosPending, SosInProgress, SosResolved:
		return s
	case "ACKNOWLEDGED", "HANDLING":
		return SosInProgress
	case "COMPLETED", "CANCELLED":
		return SosResolved
	default:
		return SosPending
	}
}

// ParseSosStatus maps a filter value to a canonical status, empty for
// unrecognized input so a malformed filter degrades to "no filter"
func ParseSosStatus(s string) SosStatus {
	switch SosStatus(s) {
	case SosPending, SosInProgress, SosResolved,
		"ACKNOWLEDGED", "HANDLING", "COMPLETED", "CANCELLED":
		return SosStatus(s).Canonical()
	default:
		return ""
	}
}

// DisasterZone represents a named geographic circle classified by
// disaster type and danger level. Identity is ID.
type DisasterZone struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	DisasterType    DisasterType `json:"disasterType"`
	DangerLevel     DangerLevel  `json:"dangerLevel"`
	CenterLatitude  float64      `json:"centerLatitude"`
	CenterLongitude float64      `json:"centerLongitude"`
	RadiusKm        float64      `json:"radius"`
}

// SosRecord is the validated, default-filled view of an SOS request that
// the query engine consumes. Zone fields are flattened; a request without
// a zone carries the "No Zone" placeholders.
type SosRecord struct {
	ID         int
	UserID     int
	Message    string
	Latitude   float64
	Longitude  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Status     SosStatus
	ZoneID     int // 0 when the request has no zone
	ZoneName   string
	ZoneType   DisasterType
	ZoneDanger DangerLevel
	HasZone    bool
}

// NoZoneName is the placeholder zone name for unzoned requests
const NoZoneName = "No Zone"

// TokenPair represents access and refresh tokens as issued by the server
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
