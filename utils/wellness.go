package utils

import (
	"fmt"
	"math"
)

// moodValues maps check-in moods onto a 0-100 scale.
var moodValues = map[string]float64{
	"happy":    100,
	"calm":     80,
	"stressed": 50,
	"anxious":  40,
	"low":      30,
}

// CheckInSample is one mental-health check-in reduced to the fields the
// wellness score reads.
type CheckInSample struct {
	Mood         string
	Energy       int // 1-10
	SleepQuality int // 1-10
}

// WellnessResult is a 0-100 composite plus its label.
type WellnessResult struct {
	Score            int     `json:"score"`
	Label            string  `json:"label"`
	MoodScore        float64 `json:"mood_score"`
	EnergyScore      float64 `json:"energy_score"`
	SleepScore       float64 `json:"sleep_score"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// WellnessScore combines the trailing 7-day check-ins into a weighted
// composite. The consistency term is entries/7 and is deliberately not
// capped, so more than one check-in per day pushes it past 100 before
// weighting; the final score is still clamped to [0,100]. Empty input is
// ErrInsufficientData.
func WellnessScore(window []CheckInSample) (WellnessResult, error) {
	if len(window) == 0 {
		return WellnessResult{}, fmt.Errorf("%w: no check-ins in window", ErrInsufficientData)
	}

	var moodSum, energySum, sleepSum float64
	for _, s := range window {
		if v, ok := moodValues[s.Mood]; ok {
			moodSum += v
		}
		energySum += float64(s.Energy)
		sleepSum += float64(s.SleepQuality)
	}
	n := float64(len(window))
	mood := moodSum / n
	energy := energySum / n * 10
	sleep := sleepSum / n * 10
	consistency := n / 7 * 100

	total := 0.4*mood + 0.3*energy + 0.2*sleep + 0.1*consistency
	score := int(math.Round(math.Min(100, math.Max(0, total))))

	return WellnessResult{
		Score:            score,
		Label:            wellnessLabel(score),
		MoodScore:        mood,
		EnergyScore:      energy,
		SleepScore:       sleep,
		ConsistencyScore: consistency,
	}, nil
}

func wellnessLabel(score int) string {
	switch {
	case score >= 80:
		return "Balanced"
	case score >= 60:
		return "Calm"
	default:
		return "Overloaded"
	}
}
