package models

import (
	"time"

	"gorm.io/gorm"
)

// MentalHealthCheckIn is one daily mood/energy/sleep entry. The trailing
// 7-day window of these feeds the wellness score.
type MentalHealthCheckIn struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	Mood           string `gorm:"size:16"` // happy | calm | stressed | anxious | low
	Energy         int    // 1-10
	SleepQuality   int    // 1-10
	StressTriggers string // comma-separated tags
	Gratitude      string `gorm:"type:text"`
	Notes          string `gorm:"type:text"`
}
