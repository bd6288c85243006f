package services

import (
	"strings"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

// CheckInInput is one daily mental-health entry.
type CheckInInput struct {
	Mood           string   `json:"mood" binding:"required"`
	Energy         int      `json:"energy" binding:"required"`
	SleepQuality   int      `json:"sleep_quality" binding:"required"`
	StressTriggers []string `json:"stress_triggers"`
	Gratitude      string   `json:"gratitude"`
	Notes          string   `json:"notes"`
}

var validMoods = map[string]bool{
	"happy": true, "calm": true, "stressed": true, "anxious": true, "low": true,
}

// CreateCheckIn validates and stores one check-in entry.
func CreateCheckIn(userID uint, input CheckInInput) (*models.MentalHealthCheckIn, error) {
	if !validMoods[input.Mood] {
		return nil, utils.ErrInvalidInput
	}
	if input.Energy < 1 || input.Energy > 10 || input.SleepQuality < 1 || input.SleepQuality > 10 {
		return nil, utils.ErrInvalidInput
	}

	entry := models.MentalHealthCheckIn{
		UserID:         userID,
		Date:           dayStartLocal(time.Now()),
		Mood:           input.Mood,
		Energy:         input.Energy,
		SleepQuality:   input.SleepQuality,
		StressTriggers: strings.Join(input.StressTriggers, ","),
		Gratitude:      input.Gratitude,
		Notes:          input.Notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListCheckIns returns history, most recent first.
func ListCheckIns(userID uint, limit int) ([]models.MentalHealthCheckIn, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.MentalHealthCheckIn
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// GetWellnessSummary scores the trailing 7-day window. Returns
// ErrInsufficientData when the window is empty, which callers render as a
// "no data yet" placeholder.
func GetWellnessSummary(userID uint, now time.Time) (*utils.WellnessResult, error) {
	since := dayStartLocal(now).AddDate(0, 0, -6)

	var entries []models.MentalHealthCheckIn
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, since).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	window := make([]utils.CheckInSample, 0, len(entries))
	for _, e := range entries {
		window = append(window, utils.CheckInSample{
			Mood:         e.Mood,
			Energy:       e.Energy,
			SleepQuality: e.SleepQuality,
		})
	}

	result, err := utils.WellnessScore(window)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
