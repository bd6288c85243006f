package utils

import "testing"

// TestEstimateBurn checks the per-minute rate table and the handling of
// unknown keys and negative minutes.
func TestEstimateBurn(t *testing.T) {
	tests := []struct {
		name    string
		minutes map[string]float64
		want    int
	}{
		{"walk and run", map[string]float64{"walk": 30, "run": 20}, 320},
		{"all activities", map[string]float64{"walk": 10, "run": 10, "gym": 10, "cycle": 10, "swim": 10}, 400},
		{"unknown key ignored", map[string]float64{"walk": 30, "yoga": 60}, 120},
		{"negative minutes ignored", map[string]float64{"run": -20, "swim": 10}, 110},
		{"empty", map[string]float64{}, 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateBurn(tt.minutes); got != tt.want {
				t.Errorf("EstimateBurn(%v) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}
