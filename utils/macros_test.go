package utils

import (
	"errors"
	"testing"
)

// TestAllocateMacros checks the reference allocation for a 2000 kcal
// balanced split: 600/800/600 kcal over 4/4/9 kcal per gram.
func TestAllocateMacros(t *testing.T) {
	tests := []struct {
		name     string
		calories float64
		split    string
		want     MacroTargets
	}{
		{"balanced 2000", 2000, "balanced", MacroTargets{ProteinG: 150, CarbsG: 200, FatsG: 67}},
		{"high-protein 2000", 2000, "high-protein", MacroTargets{ProteinG: 200, CarbsG: 200, FatsG: 44}},
		{"low-carb 1800", 1800, "low-carb", MacroTargets{ProteinG: 113, CarbsG: 113, FatsG: 100}},
		{"high-carb 2400", 2400, "high-carb", MacroTargets{ProteinG: 120, CarbsG: 300, FatsG: 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AllocateMacros(tt.calories, tt.split)
			if err != nil {
				t.Fatalf("AllocateMacros(%v, %q): %v", tt.calories, tt.split, err)
			}
			if got != tt.want {
				t.Errorf("AllocateMacros(%v, %q) = %+v, want %+v", tt.calories, tt.split, got, tt.want)
			}
		})
	}
}

// TestAllocateMacrosInvalid checks rejected inputs.
func TestAllocateMacrosInvalid(t *testing.T) {
	if _, err := AllocateMacros(2000, "keto"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown split error = %v, want ErrInvalidInput", err)
	}
	if _, err := AllocateMacros(0, "balanced"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero calories error = %v, want ErrInvalidInput", err)
	}
}

// TestMealPlan checks the 25/35/30/10 meal spread for a 2000 kcal day,
// including each meal's macro grams.
func TestMealPlan(t *testing.T) {
	plan, err := MealPlan(2000)
	if err != nil {
		t.Fatalf("MealPlan(2000): %v", err)
	}
	want := []MealSuggestion{
		{"Breakfast: Protein Oatmeal", 500, 38, 50, 17},
		{"Lunch: Grilled Chicken Salad", 700, 61, 61, 23},
		{"Dinner: Salmon with Vegetables", 600, 53, 53, 20},
		{"Snack: Greek Yogurt with Berries", 200, 20, 20, 4},
	}
	if len(plan) != len(want) {
		t.Fatalf("MealPlan returned %d meals, want %d", len(plan), len(want))
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("meal %d = %+v, want %+v", i, plan[i], want[i])
		}
	}
}

// TestMealPlanInvalid rejects a non-positive target.
func TestMealPlanInvalid(t *testing.T) {
	if _, err := MealPlan(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero calories error = %v, want ErrInvalidInput", err)
	}
}
