package models

import (
	"time"

	"gorm.io/gorm"
)

// MealEntry is one logged meal with its nutrition snapshot. Daily totals are
// aggregated from these rows on demand.
type MealEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	MealType string `gorm:"size:16"` // "breakfast" | "lunch" | "dinner" | "snack"
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64

	ImageURL    string // S3 URL of the meal photo, if one was uploaded
	ImageLabels string // comma-separated Rekognition labels for the photo
	Notes       string `gorm:"type:text"`
}
