package services

import (
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// ActivityInput carries today's logged minutes per activity plus hydration.
type ActivityInput struct {
	WalkMinutes      float64 `json:"walk_minutes"`
	RunMinutes       float64 `json:"run_minutes"`
	GymMinutes       float64 `json:"gym_minutes"`
	CycleMinutes     float64 `json:"cycle_minutes"`
	SwimMinutes      float64 `json:"swim_minutes"`
	HydrationGlasses float64 `json:"hydration_glasses"`
}

// UpsertDailyActivity replaces today's log, keyed by (user, local midnight).
func UpsertDailyActivity(userID uint, input ActivityInput) (*models.DailyActivityLog, error) {
	start := dayStartLocal(time.Now())

	entry := models.DailyActivityLog{
		UserID:           userID,
		Date:             start,
		WalkMinutes:      input.WalkMinutes,
		RunMinutes:       input.RunMinutes,
		GymMinutes:       input.GymMinutes,
		CycleMinutes:     input.CycleMinutes,
		SwimMinutes:      input.SwimMinutes,
		HydrationGlasses: input.HydrationGlasses,
	}

	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(entry).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetDailyActivity fetches the log for the given date; an absent day reads
// back as all zeros.
func GetDailyActivity(userID uint, date time.Time) (*models.DailyActivityLog, error) {
	start := dayStartLocal(date)

	var entry models.DailyActivityLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.DailyActivityLog{UserID: userID, Date: start}, nil
		}
		return nil, err
	}
	return &entry, nil
}

// EstimateDailyBurn runs the burn table over the day's logged minutes.
func EstimateDailyBurn(entry *models.DailyActivityLog) int {
	return utils.EstimateBurn(map[string]float64{
		"walk":  entry.WalkMinutes,
		"run":   entry.RunMinutes,
		"gym":   entry.GymMinutes,
		"cycle": entry.CycleMinutes,
		"swim":  entry.SwimMinutes,
	})
}

// TotalExerciseMinutes sums the day across activities.
func TotalExerciseMinutes(entry *models.DailyActivityLog) float64 {
	total := 0.0
	for _, m := range []float64{entry.WalkMinutes, entry.RunMinutes, entry.GymMinutes, entry.CycleMinutes, entry.SwimMinutes} {
		if m > 0 {
			total += m
		}
	}
	return total
}
