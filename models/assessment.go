package models

import (
	"time"

	"gorm.io/gorm"
)

// RiskAssessment is one submitted symptom questionnaire plus the computed
// score. Immutable after creation except for the AI narrative, which is
// filled in once the generative endpoint replies.
type RiskAssessment struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	EnergyLevel    string `gorm:"size:16"` // very-low | low | normal | high
	SleepBand      string `gorm:"size:16"` // less-4 | 4-6 | 6-8 | more-8
	StressLevel    int    // 1-10
	ExerciseFreq   string `gorm:"size:16"` // rarely | 1-2-week | 3-5-week | daily
	DietQuality    string `gorm:"size:16"` // very-poor | poor | moderate | good
	Symptoms       string // comma-separated physical symptom tags
	MentalSymptoms string
	Habits         string

	RiskScore   int
	RiskLevel   string `gorm:"size:16"`
	Emergency   bool
	AINarrative string `gorm:"type:text"`
}
