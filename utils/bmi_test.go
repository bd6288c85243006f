package utils

import (
	"errors"
	"testing"
)

// TestCalculateBMI checks the formula and one-decimal rounding.
func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"average adult", 175, 70, 22.9, false},
		{"underweight boundary", 180, 59.94, 18.5, false},
		{"zero height", 0, 70, 0, true},
		{"negative weight", 175, -5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMI(tt.heightCm, tt.weightKg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CalculateBMI(%v, %v) error = %v, wantErr %v", tt.heightCm, tt.weightKg, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tt.heightCm, tt.weightKg, got, tt.want)
			}
		})
	}
}

// TestBMICategoryBoundaries verifies the category bounds are inclusive on
// the lower side, so exactly 18.5 is Normal Weight.
func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.4, "Underweight"},
		{18.5, "Normal Weight"},
		{24.9, "Normal Weight"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

// TestCalculateBMRGenderOffset verifies the male and female formulas differ
// by exactly 166 at identical inputs.
func TestCalculateBMRGenderOffset(t *testing.T) {
	male, err := CalculateBMR(30, 175, 70, "male")
	if err != nil {
		t.Fatalf("male BMR: %v", err)
	}
	female, err := CalculateBMR(30, 175, 70, "female")
	if err != nil {
		t.Fatalf("female BMR: %v", err)
	}
	if diff := male - female; diff != 166 {
		t.Errorf("male-female BMR difference = %v, want 166", diff)
	}
}

// TestCalculateBMRMonotonic checks the equation decreases with age and
// increases with weight.
func TestCalculateBMRMonotonic(t *testing.T) {
	younger, _ := CalculateBMR(25, 175, 70, "male")
	older, _ := CalculateBMR(50, 175, 70, "male")
	if older >= younger {
		t.Errorf("BMR should decrease with age: got %v at 25, %v at 50", younger, older)
	}
	lighter, _ := CalculateBMR(30, 175, 60, "male")
	heavier, _ := CalculateBMR(30, 175, 90, "male")
	if heavier <= lighter {
		t.Errorf("BMR should increase with weight: got %v at 60kg, %v at 90kg", lighter, heavier)
	}
}

// TestCalculateBMRValidation checks the domain bounds.
func TestCalculateBMRValidation(t *testing.T) {
	cases := []struct {
		name   string
		age    int
		height float64
		weight float64
	}{
		{"age too low", 0, 175, 70},
		{"age too high", 121, 175, 70},
		{"height too low", 30, 40, 70},
		{"weight too high", 30, 175, 301},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculateBMR(tt.age, tt.height, tt.weight, "male"); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("CalculateBMR(%d, %v, %v) error = %v, want ErrInvalidInput", tt.age, tt.height, tt.weight, err)
			}
		})
	}
}

// TestCalculateTDEE verifies the multiplier table and the unknown-level error.
func TestCalculateTDEE(t *testing.T) {
	got, err := CalculateTDEE(1500, "moderate")
	if err != nil {
		t.Fatalf("CalculateTDEE: %v", err)
	}
	if got != 2325 {
		t.Errorf("CalculateTDEE(1500, moderate) = %d, want 2325", got)
	}
	if _, err := CalculateTDEE(1500, "athlete"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown activity level error = %v, want ErrInvalidInput", err)
	}
}

// TestGoalCalories checks the six fixed deltas.
func TestGoalCalories(t *testing.T) {
	table := GoalCalories(2000)
	want := GoalCalorieTable{
		MildLoss:    1750,
		Loss:        1500,
		ExtremeLoss: 1000,
		MildGain:    2250,
		Gain:        2500,
		FastGain:    3000,
	}
	if table != want {
		t.Errorf("GoalCalories(2000) = %+v, want %+v", table, want)
	}
}
