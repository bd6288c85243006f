package utils

import (
	"fmt"
	"math"
)

type macroSplit struct {
	protein float64
	carbs   float64
	fats    float64
}

// Percentages per split always sum to 100.
var macroSplits = map[string]macroSplit{
	"balanced":     {30, 40, 30},
	"high-protein": {40, 40, 20},
	"low-carb":     {25, 25, 50},
	"high-carb":    {20, 50, 30},
}

// MacroTargets is a gram allocation of a daily calorie target.
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatsG    int `json:"fats_g"`
}

// AllocateMacros splits targetCalories into protein/carb/fat grams under the
// named split. Each gram figure is rounded independently, so the grams may
// add back up to a kcal or two off the target; that drift is accepted.
func AllocateMacros(targetCalories float64, splitName string) (MacroTargets, error) {
	if targetCalories <= 0 {
		return MacroTargets{}, fmt.Errorf("%w: target calories must be positive", ErrInvalidInput)
	}
	split, ok := macroSplits[splitName]
	if !ok {
		return MacroTargets{}, fmt.Errorf("%w: unknown macro split %q", ErrInvalidInput, splitName)
	}
	return MacroTargets{
		ProteinG: int(math.Round(targetCalories * split.protein / 100 / 4)),
		CarbsG:   int(math.Round(targetCalories * split.carbs / 100 / 4)),
		FatsG:    int(math.Round(targetCalories * split.fats / 100 / 9)),
	}, nil
}

// MacroSplitNames lists the supported split policies.
func MacroSplitNames() []string {
	return []string{"balanced", "high-protein", "low-carb", "high-carb"}
}

// MealSuggestion is one entry of the suggested daily meal plan.
type MealSuggestion struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein_g"`
	CarbsG   int    `json:"carbs_g"`
	FatsG    int    `json:"fats_g"`
}

// mealShares spreads a day's calories over four meals (25/35/30/10), each
// with its own protein/carb/fat emphasis.
var mealShares = []struct {
	name    string
	share   float64
	protein float64
	carbs   float64
	fats    float64
}{
	{"Breakfast: Protein Oatmeal", 0.25, 30, 40, 30},
	{"Lunch: Grilled Chicken Salad", 0.35, 35, 35, 30},
	{"Dinner: Salmon with Vegetables", 0.30, 35, 35, 30},
	{"Snack: Greek Yogurt with Berries", 0.10, 40, 40, 20},
}

// MealPlan suggests a four-meal day that lands on the calorie target. Each
// figure is rounded independently, like AllocateMacros.
func MealPlan(targetCalories float64) ([]MealSuggestion, error) {
	if targetCalories <= 0 {
		return nil, fmt.Errorf("%w: target calories must be positive", ErrInvalidInput)
	}
	plan := make([]MealSuggestion, 0, len(mealShares))
	for _, m := range mealShares {
		cal := targetCalories * m.share
		plan = append(plan, MealSuggestion{
			Name:     m.name,
			Calories: int(math.Round(cal)),
			ProteinG: int(math.Round(cal * m.protein / 100 / 4)),
			CarbsG:   int(math.Round(cal * m.carbs / 100 / 4)),
			FatsG:    int(math.Round(cal * m.fats / 100 / 9)),
		})
	}
	return plan, nil
}
