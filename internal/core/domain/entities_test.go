package domain

import "testing"

func TestParseDisasterType(t *testing.T) {
	if got := ParseDisasterType("FLOOD"); got != DisasterFlood {
		t.Errorf("got %s", got)
	}
	if got := ParseDisasterType("flood"); got != DisasterUnknown {
		t.Errorf("matching is case sensitive, got %s", got)
	}
	if got := ParseDisasterType("VOLCANO"); got != DisasterUnknown {
		t.Errorf("unknown values map to UNKNOWN, got %s", got)
	}
}

func TestDangerLevel_Rank(t *testing.T) {
	if DangerHigh.Rank() <= DangerMedium.Rank() || DangerMedium.Rank() <= DangerLow.Rank() {
		t.Error("ranks must order HIGH > MEDIUM > LOW")
	}
	if DangerLevel("EXTREME").Rank() != 0 {
		t.Error("unknown levels rank 0")
	}
}

func TestMaxDanger(t *testing.T) {
	if got := MaxDanger(DangerLow, DangerHigh); got != DangerHigh {
		t.Errorf("got %s", got)
	}
	if got := MaxDanger(DangerMedium, DangerLow); got != DangerMedium {
		t.Errorf("got %s", got)
	}
	if got := MaxDanger(DangerLow, DangerLevel("EXTREME")); got != DangerLow {
		t.Errorf("an unknown level never wins, got %s", got)
	}
}

func TestSosStatus_Canonical(t *testing.T) {
	tests := []struct {
		in   SosStatus
		want SosStatus
	}{
		{SosPending, SosPending},
		{SosInProgress, SosInProgress},
		{SosResolved, SosResolved},
		{"ACKNOWLEDGED", SosInProgress},
		{"HANDLING", SosInProgress},
		{"COMPLETED", SosResolved},
		{"CANCELLED", SosResolved},
		{"", SosPending},
		{"GARBAGE", SosPending},
	}
	for _, tt := range tests {
		if got := tt.in.Canonical(); got != tt.want {
			t.Errorf("Canonical(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseSosStatus(t *testing.T) {
	if got := ParseSosStatus("HANDLING"); got != SosInProgress {
		t.Errorf("aliases resolve, got %s", got)
	}
	if got := ParseSosStatus("GARBAGE"); got != "" {
		t.Errorf("unrecognized filter input must map to empty, got %s", got)
	}
	if got := ParseSosStatus(""); got != "" {
		t.Errorf("empty input stays empty, got %s", got)
	}
}
