package session

import (
	"testing"

	"github.com/psybedev/racetel/packet"
)

// TestSaturatingSubNeverUnderflows checks that sector-3 derivation uses
// saturating subtraction rather than wraparound when timekeeping is
// noisy and s1+s2 exceeds the reported lap time.
func TestSaturatingSubNeverUnderflows(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"normal subtraction", 90000, 60000, 30000},
		{"exact zero", 60000, 60000, 0},
		{"would underflow", 60000, 70000, 0},
	}
	for _, tt := range tests {
		if got := saturatingSub(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: saturatingSub(%d, %d) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestOutcomeFromResultStatus(t *testing.T) {
	tests := []struct {
		status packet.ResultStatus
		want   DriverOutcomeStatus
	}{
		{packet.ResultStatusFinished, DriverOutcomeFinished},
		{packet.ResultStatusRetired, DriverOutcomeDNF},
		{packet.ResultStatusDidNotFinish, DriverOutcomeDNF},
		{packet.ResultStatusNotClassified, DriverOutcomeDNF},
		{packet.ResultStatusDisqualified, DriverOutcomeDSQ},
		{packet.ResultStatusActive, DriverOutcomeUnknown},
	}
	for _, tt := range tests {
		if got := outcomeFromResultStatus(tt.status); got != tt.want {
			t.Errorf("outcomeFromResultStatus(%v) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
