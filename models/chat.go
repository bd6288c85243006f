package models

import (
	"gorm.io/gorm"
)

// ChatMessage is one turn of the AI assistant conversation.
type ChatMessage struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Role    string `gorm:"size:16"` // user | assistant
	Message string `gorm:"type:text"`
}
