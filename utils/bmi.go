package utils

import (
	"fmt"
	"math"
)

// ActivityFactors maps the supported activity levels to their TDEE
// multipliers. Any level outside this table is rejected.
var ActivityFactors = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

// CalculateBMI expects height in centimeters and weight in kilograms.
// The result is rounded to one decimal place.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, fmt.Errorf("%w: height and weight must be positive", ErrInvalidInput)
	}
	h := heightCm / 100.0
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

// BMICategory classifies a BMI value. Lower bounds are inclusive, so
// exactly 18.5 is Normal Weight.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal Weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// CalculateBMR applies the Mifflin-St Jeor equation. Gender "male" uses the
// +5 constant; anything else uses -161.
func CalculateBMR(age int, heightCm, weightKg float64, gender string) (float64, error) {
	if age < 1 || age > 120 {
		return 0, fmt.Errorf("%w: age must be between 1 and 120", ErrInvalidInput)
	}
	if heightCm < 50 || heightCm > 250 {
		return 0, fmt.Errorf("%w: height must be between 50 and 250 cm", ErrInvalidInput)
	}
	if weightKg < 20 || weightKg > 300 {
		return 0, fmt.Errorf("%w: weight must be between 20 and 300 kg", ErrInvalidInput)
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return base + 5, nil
	}
	return base - 161, nil
}

// CalculateTDEE scales a BMR by the named activity level.
func CalculateTDEE(bmr float64, activityLevel string) (int, error) {
	factor, ok := ActivityFactors[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, activityLevel)
	}
	return int(math.Round(bmr * factor)), nil
}

// GoalCalorieTable holds the six calorie targets derived from a TDEE.
// Values are plain deltas with no physiological floor applied.
type GoalCalorieTable struct {
	MildLoss    int `json:"mild_loss"`
	Loss        int `json:"loss"`
	ExtremeLoss int `json:"extreme_loss"`
	MildGain    int `json:"mild_gain"`
	Gain        int `json:"gain"`
	FastGain    int `json:"fast_gain"`
}

// GoalCalories returns the standard weight-change calorie targets for a TDEE.
func GoalCalories(tdee int) GoalCalorieTable {
	return GoalCalorieTable{
		MildLoss:    tdee - 250,
		Loss:        tdee - 500,
		ExtremeLoss: tdee - 1000,
		MildGain:    tdee + 250,
		Gain:        tdee + 500,
		FastGain:    tdee + 1000,
	}
}
