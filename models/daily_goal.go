package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily intake targets. Usually populated by
// applying a TDEE + macro-split result from the calculator.
type DailyGoal struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64

	HydrationGlasses float64
	ExerciseMinutes  float64
}
