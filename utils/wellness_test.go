package utils

import (
	"errors"
	"testing"
)

// TestWellnessScoreEmpty verifies the empty window surfaces the no-data
// sentinel instead of dividing by zero.
func TestWellnessScoreEmpty(t *testing.T) {
	if _, err := WellnessScore(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty window error = %v, want ErrInsufficientData", err)
	}
}

// TestWellnessScoreWeighting checks the 0.4/0.3/0.2/0.1 composite on a
// hand-computed window.
func TestWellnessScoreWeighting(t *testing.T) {
	window := []CheckInSample{
		{Mood: "happy", Energy: 8, SleepQuality: 7},
		{Mood: "calm", Energy: 6, SleepQuality: 8},
	}
	// mood = (100+80)/2 = 90; energy = 7*10 = 70; sleep = 7.5*10 = 75
	// consistency = 2/7*100 = 28.571
	// total = 36 + 21 + 15 + 2.857 = 74.857 -> 75
	res, err := WellnessScore(window)
	if err != nil {
		t.Fatalf("WellnessScore: %v", err)
	}
	if res.Score != 75 {
		t.Errorf("score = %d, want 75", res.Score)
	}
	if res.Label != "Calm" {
		t.Errorf("label = %q, want Calm", res.Label)
	}
}

// TestWellnessScoreLabels checks the label thresholds at their bounds.
func TestWellnessScoreLabels(t *testing.T) {
	// Seven perfect check-ins hit every sub-score ceiling.
	perfect := make([]CheckInSample, 7)
	for i := range perfect {
		perfect[i] = CheckInSample{Mood: "happy", Energy: 10, SleepQuality: 10}
	}
	res, err := WellnessScore(perfect)
	if err != nil {
		t.Fatalf("WellnessScore: %v", err)
	}
	if res.Score != 100 || res.Label != "Balanced" {
		t.Errorf("perfect week = (%d, %q), want (100, Balanced)", res.Score, res.Label)
	}

	low := []CheckInSample{{Mood: "low", Energy: 2, SleepQuality: 2}}
	res, err = WellnessScore(low)
	if err != nil {
		t.Fatalf("WellnessScore: %v", err)
	}
	if res.Label != "Overloaded" {
		t.Errorf("low week label = %q, want Overloaded", res.Label)
	}
}

// TestWellnessScoreConsistencyUncapped documents that more than seven
// check-ins push the consistency sub-term past 100 while the final score
// stays clamped.
func TestWellnessScoreConsistencyUncapped(t *testing.T) {
	window := make([]CheckInSample, 14)
	for i := range window {
		window[i] = CheckInSample{Mood: "happy", Energy: 10, SleepQuality: 10}
	}
	res, err := WellnessScore(window)
	if err != nil {
		t.Fatalf("WellnessScore: %v", err)
	}
	if res.ConsistencyScore != 200 {
		t.Errorf("consistency = %v, want 200", res.ConsistencyScore)
	}
	if res.Score != 100 {
		t.Errorf("score = %d, want clamped 100", res.Score)
	}
}
