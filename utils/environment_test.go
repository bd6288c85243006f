package utils

import (
	"math"
	"testing"
)

// TestHeatIndexF verifies the passthrough below 80F and a known regression
// point above it.
func TestHeatIndexF(t *testing.T) {
	if got := HeatIndexF(75, 90); got != 75 {
		t.Errorf("HeatIndexF(75, 90) = %v, want passthrough 75", got)
	}
	// 90F at 70% humidity is commonly cited around 105F.
	got := HeatIndexF(90, 70)
	if math.Abs(got-105.4) > 1 {
		t.Errorf("HeatIndexF(90, 70) = %v, want about 105", got)
	}
}

// TestHeatStatus checks the advisory band boundaries.
func TestHeatStatus(t *testing.T) {
	tests := []struct {
		hi   float64
		want string
	}{
		{75, "Comfortable"},
		{85, "Caution"},
		{95, "Extreme Caution"},
		{104, "Extreme Caution"},
		{105, "Danger"},
		{130, "Danger"},
	}
	for _, tt := range tests {
		if got := HeatStatus(tt.hi); got != tt.want {
			t.Errorf("HeatStatus(%v) = %q, want %q", tt.hi, got, tt.want)
		}
	}
}

// TestAQIToUS checks the EU band mapping and the unknown-band fallback.
func TestAQIToUS(t *testing.T) {
	tests := []struct {
		eu   int
		want int
	}{
		{1, 25},
		{2, 75},
		{3, 125},
		{4, 175},
		{5, 250},
		{0, 50},
		{9, 50},
	}
	for _, tt := range tests {
		if got := AQIToUS(tt.eu); got != tt.want {
			t.Errorf("AQIToUS(%d) = %d, want %d", tt.eu, got, tt.want)
		}
	}
}

// TestAQILevel checks the EPA category labels.
func TestAQILevel(t *testing.T) {
	tests := []struct {
		aqi  int
		want string
	}{
		{25, "Good"},
		{75, "Moderate"},
		{125, "Unhealthy for Sensitive Groups"},
		{175, "Unhealthy"},
		{250, "Very Unhealthy"},
	}
	for _, tt := range tests {
		if got := AQILevel(tt.aqi); got != tt.want {
			t.Errorf("AQILevel(%d) = %q, want %q", tt.aqi, got, tt.want)
		}
	}
}
