package models

import (
	"gorm.io/gorm"
)

// RoadmapActionCheck marks one completed action inside a roadmap step. The
// step catalog itself is static (see services.DefaultRoadmap); only the
// per-user completion state is stored.
type RoadmapActionCheck struct {
	gorm.Model
	UserID      uint   `gorm:"index:idx_roadmap_check,unique;not null"`
	StepID      string `gorm:"index:idx_roadmap_check,unique;size:32;not null"`
	ActionIndex int    `gorm:"index:idx_roadmap_check,unique;not null"`
}
