package services

import (
	"strings"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

// CycleInput is one logged period.
type CycleInput struct {
	LastPeriodDate     string   `json:"last_period_date" binding:"required"` // YYYY-MM-DD
	CycleLengthDays    int      `json:"cycle_length_days"`
	PeriodDurationDays int      `json:"period_duration_days"`
	Symptoms           []string `json:"symptoms"`
	Flow               string   `json:"flow"`
	Notes              string   `json:"notes"`
}

// CycleOverview is the tracker home screen payload.
type CycleOverview struct {
	CycleDay          int       `json:"cycle_day"`
	NextPeriod        time.Time `json:"next_period"`
	Ovulation         time.Time `json:"ovulation"`
	FertileStart      time.Time `json:"fertile_start"`
	FertileEnd        time.Time `json:"fertile_end"`
	AvgCycleLength    float64   `json:"avg_cycle_length"`
	AvgPeriodDuration float64   `json:"avg_period_duration"`
	LoggedCycles      int       `json:"logged_cycles"`
}

// LogCycle appends one cycle record. Missing length/duration fall back to
// the 28/5 defaults.
func LogCycle(userID uint, input CycleInput) (*models.MenstruationCycle, error) {
	lastPeriod, err := time.Parse("2006-01-02", input.LastPeriodDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	length := input.CycleLengthDays
	if length <= 0 {
		length = models.DefaultCycleLength
	}
	duration := input.PeriodDurationDays
	if duration <= 0 {
		duration = models.DefaultPeriodDuration
	}

	cycle := models.MenstruationCycle{
		UserID:             userID,
		LastPeriodDate:     lastPeriod,
		CycleLengthDays:    length,
		PeriodDurationDays: duration,
		Symptoms:           strings.Join(input.Symptoms, ","),
		Flow:               input.Flow,
		Notes:              input.Notes,
	}
	if err := config.DB.Create(&cycle).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

// cycleHistoryLimit caps how much of the log the history endpoint and the
// averages read.
const cycleHistoryLimit = 12

// ListCycles returns the history most recent first, capped at the last 12
// records.
func ListCycles(userID uint) ([]models.MenstruationCycle, error) {
	var cycles []models.MenstruationCycle
	err := config.DB.
		Where("user_id = ?", userID).
		Order("last_period_date DESC").
		Limit(cycleHistoryLimit).
		Find(&cycles).Error
	return cycles, err
}

// GetCycleOverview derives the current cycle position and predictions from
// the most recent logged cycle. ErrInsufficientData when nothing is logged.
func GetCycleOverview(userID uint, now time.Time) (*CycleOverview, error) {
	cycles, err := ListCycles(userID)
	if err != nil {
		return nil, err
	}
	if len(cycles) == 0 {
		return nil, utils.ErrInsufficientData
	}

	latest := cycles[0]
	records := make([]utils.CycleRecord, 0, len(cycles))
	for _, c := range cycles {
		records = append(records, utils.CycleRecord{
			LengthDays:   c.CycleLengthDays,
			DurationDays: c.PeriodDurationDays,
		})
	}
	avgLength, avgDuration, err := utils.CycleAverages(records)
	if err != nil {
		return nil, err
	}

	nextPeriod, err := utils.PredictNextPeriod(latest.LastPeriodDate, latest.CycleLengthDays)
	if err != nil {
		return nil, err
	}
	fertileStart, fertileEnd := utils.FertileWindow(latest.LastPeriodDate)

	return &CycleOverview{
		CycleDay:          utils.CycleDay(latest.LastPeriodDate, now),
		NextPeriod:        nextPeriod,
		Ovulation:         utils.PredictOvulation(latest.LastPeriodDate),
		FertileStart:      fertileStart,
		FertileEnd:        fertileEnd,
		AvgCycleLength:    avgLength,
		AvgPeriodDuration: avgDuration,
		LoggedCycles:      len(cycles),
	}, nil
}

// CalendarDay pairs a date with its cycle classification.
type CalendarDay struct {
	Date string `json:"date"`
	Kind string `json:"kind"`
}

// GetCycleCalendar classifies every day of the given month against the most
// recent logged cycle.
func GetCycleCalendar(userID uint, year int, month time.Month) ([]CalendarDay, error) {
	cycles, err := ListCycles(userID)
	if err != nil {
		return nil, err
	}
	if len(cycles) == 0 {
		return nil, utils.ErrInsufficientData
	}
	latest := cycles[0]

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date: d.Format("2006-01-02"),
			Kind: utils.CalendarDayKind(d, latest.LastPeriodDate, latest.CycleLengthDays, latest.PeriodDurationDays),
		})
	}
	return days, nil
}
