package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyActivityLog stores per-day activity minutes and hydration. One row per
// (user, local day), upserted as the user edits the dashboard.
type DailyActivityLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to local midnight

	WalkMinutes  float64
	RunMinutes   float64
	GymMinutes   float64
	CycleMinutes float64
	SwimMinutes  float64

	HydrationGlasses float64
}
