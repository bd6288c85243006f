package models

import (
	"time"

	"gorm.io/gorm"
)

// Defaults applied whenever a cycle record omits its lengths.
const (
	DefaultCycleLength    = 28
	DefaultPeriodDuration = 5
)

// MenstruationCycle is one logged cycle. History is kept most recent first;
// predictions always run off the latest record.
type MenstruationCycle struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	LastPeriodDate     time.Time `gorm:"index;not null"`
	CycleLengthDays    int       // default 28
	PeriodDurationDays int       // default 5
	Symptoms           string    // comma-separated tags
	Flow               string    `gorm:"size:16"` // "light" | "medium" | "heavy"
	Notes              string    `gorm:"type:text"`
}
