package utils

import "testing"

// TestRiskScore exercises the additive band model and the level thresholds.
func TestRiskScore(t *testing.T) {
	tests := []struct {
		name      string
		in        RiskInput
		wantScore int
		wantLevel string
	}{
		{
			"healthy baseline",
			RiskInput{EnergyLevel: "high", SleepBand: "6-8", StressLevel: 2, ExerciseFreq: "daily", DietQuality: "good"},
			0, "Minimal Risk",
		},
		{
			"low risk",
			RiskInput{EnergyLevel: "low", SleepBand: "6-8", StressLevel: 3, ExerciseFreq: "1-2-week", DietQuality: "moderate"},
			2, "Minimal Risk",
		},
		{
			"moderate risk",
			RiskInput{EnergyLevel: "low", SleepBand: "4-6", StressLevel: 6, ExerciseFreq: "rarely", DietQuality: "moderate"},
			8, "Moderate Risk",
		},
		{
			"everything bad",
			RiskInput{EnergyLevel: "very-low", SleepBand: "less-4", StressLevel: 9, ExerciseFreq: "rarely", DietQuality: "very-poor"},
			14, "High Risk",
		},
		{
			"cardiac symptom flat bonus",
			RiskInput{EnergyLevel: "normal", SleepBand: "6-8", StressLevel: 1, ExerciseFreq: "daily", DietQuality: "good", Symptoms: []string{"chest-pain"}},
			5, "Low Risk",
		},
		{
			"both cardiac symptoms count once",
			RiskInput{EnergyLevel: "normal", SleepBand: "6-8", StressLevel: 1, ExerciseFreq: "daily", DietQuality: "good", Symptoms: []string{"chest-pain", "shortness-breath"}},
			5, "Low Risk",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := RiskScore(tt.in)
			if score != tt.wantScore || level != tt.wantLevel {
				t.Errorf("RiskScore = (%d, %q), want (%d, %q)", score, level, tt.wantScore, tt.wantLevel)
			}
		})
	}
}

// TestDetectEmergency checks the case-insensitive substring scan.
func TestDetectEmergency(t *testing.T) {
	tests := []struct {
		text    string
		want    bool
		keyword string
	}{
		{"I have severe Chest Pain since this morning", true, "chest pain"},
		{"possible heart attack", true, "heart attack"},
		{"mild headache and fatigue", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		got, kw := DetectEmergency(tt.text)
		if got != tt.want || kw != tt.keyword {
			t.Errorf("DetectEmergency(%q) = (%v, %q), want (%v, %q)", tt.text, got, kw, tt.want, tt.keyword)
		}
	}
}
