package utils

import "math"

// Per-minute burn rates in kcal, for a reference body weight. Not
// personalized.
var burnRates = map[string]float64{
	"walk":  4,
	"run":   10,
	"gym":   8,
	"cycle": 7,
	"swim":  11,
}

// EstimateBurn sums minutes x rate across the recognized activities.
// Unknown activity keys are skipped and negative minutes count as zero.
func EstimateBurn(minutesByActivity map[string]float64) int {
	var total float64
	for kind, minutes := range minutesByActivity {
		rate, ok := burnRates[kind]
		if !ok || minutes <= 0 {
			continue
		}
		total += minutes * rate
	}
	return int(math.Round(total))
}
