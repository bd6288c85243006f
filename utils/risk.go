package utils

import "strings"

// RiskInput is the band-coded questionnaire a risk score is computed from.
type RiskInput struct {
	EnergyLevel  string   // "very-low" | "low" | "normal" | "high"
	SleepBand    string   // "less-4" | "4-6" | "6-8" | "more-8"
	StressLevel  int      // 1-10
	ExerciseFreq string   // "rarely" | "1-2-week" | "3-5-week" | "daily"
	DietQuality  string   // "very-poor" | "poor" | "moderate" | "good"
	Symptoms     []string // tags such as "chest-pain", "fatigue"
}

// emergencyKeywords trips the short-circuit path in DetectEmergency. The
// match is a case-insensitive substring scan, so "having chest pain now"
// triggers it.
var emergencyKeywords = []string{
	"chest pain",
	"heart attack",
	"stroke",
	"can't breathe",
	"difficulty breathing",
	"severe bleeding",
	"unconscious",
	"suicide",
	"overdose",
	"severe allergic reaction",
	"anaphylaxis",
	"seizure",
	"severe head injury",
	"broken bone",
	"severe burn",
}

// EmergencyAdvisory is shown verbatim when an emergency keyword matches.
const EmergencyAdvisory = "Your symptoms may indicate a medical emergency. Please call your local emergency number or go to the nearest emergency room immediately. Do not wait for an online assessment."

// DetectEmergency scans free text for emergency keywords and returns the
// first one that matches.
func DetectEmergency(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			return true, kw
		}
	}
	return false, ""
}

// RiskScore applies the additive point model and maps the total to a level.
func RiskScore(in RiskInput) (int, string) {
	score := 0

	switch in.EnergyLevel {
	case "very-low":
		score += 3
	case "low":
		score += 2
	}

	switch in.SleepBand {
	case "less-4":
		score += 3
	case "4-6":
		score += 2
	}

	if in.StressLevel >= 8 {
		score += 3
	} else if in.StressLevel >= 6 {
		score += 2
	}

	if in.ExerciseFreq == "rarely" {
		score += 2
	}

	switch in.DietQuality {
	case "very-poor":
		score += 3
	case "poor":
		score += 2
	}

	for _, s := range in.Symptoms {
		if s == "chest-pain" || s == "shortness-breath" {
			score += 5
			break
		}
	}

	return score, riskLevel(score)
}

func riskLevel(score int) string {
	switch {
	case score >= 10:
		return "High Risk"
	case score >= 6:
		return "Moderate Risk"
	case score >= 3:
		return "Low Risk"
	default:
		return "Minimal Risk"
	}
}
