package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthTimelineEntry is a daily snapshot of the composite dashboard scores.
type HealthTimelineEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	HealthDebtScore float64
	LifestyleScore  float64
	RiskTrend       string `gorm:"size:16"` // improving | stable | worsening

	Sleep     float64
	Diet      float64
	Exercise  float64
	Stress    float64
	Hydration float64

	Notes string `gorm:"type:text"`
}
