package models

import "testing"

func TestNormalizeUrgency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase low", "low", UrgencyLow},
		{"uppercase medium", "MEDIUM", UrgencyMedium},
		{"mixed case high", "High", UrgencyHigh},
		{"surrounding whitespace", "  high  ", UrgencyHigh},
		{"empty defaults to low", "", UrgencyLow},
		{"unknown defaults to low", "CRITICAL", UrgencyLow},
		{"numeric garbage defaults to low", "123", UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeUrgency(tt.input); got != tt.want {
				t.Errorf("NormalizeUrgency(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
