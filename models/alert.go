package models

import "time"

// Alert is a user-facing notification. Severity "emergency" rows are the ones
// raised when an assessment or chat message trips the emergency keyword scan;
// those also fan out to push and the realtime feed.
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Severity  string    `gorm:"size:20"` // "emergency" | "warning" | "info"
	Source    string    `gorm:"size:32"` // "assessment" | "chat" | "cycle" | "system"
	Message   string    `gorm:"type:text"`
	Read      bool      `gorm:"default:false"`
	CreatedAt time.Time
}
