package services

import (
	"fmt"
	"time"

	"github.com/rishabhc286/Vital-x/models"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an alert and fans it out to the realtime feed and push
// endpoints. Safe to call from any service; a nil dependency just skips
// that channel.
func EmitAlert(userID uint, severity, source, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{
		UserID:    userID,
		Severity:  severity,
		Source:    source,
		Message:   message,
		CreatedAt: time.Now(),
	}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		title := "Vital-X"
		if severity == "emergency" {
			title = "Emergency alert"
		}
		_alert.ps.PushToUser(userID, title, message, map[string]string{
			"severity": severity,
			"source":   source,
			"alertId":  fmt.Sprintf("%d", a.ID),
		})
	}
}

// ListAlerts returns the user's notifications, newest first.
func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

// MarkAlertRead flips the read flag on one alert.
func MarkAlertRead(userID, alertID uint) error {
	return _alert.db.Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("read", true).Error
}
