package utils

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultCycleLengthDays    = 28
	DefaultPeriodDurationDays = 5

	ovulationOffsetDays    = 14
	fertileStartOffsetDays = 12
	fertileEndOffsetDays   = 16
)

// CycleDay returns the day count since the last period start. Partial days
// round up, so any time past midnight on the start date already counts as
// day 1. The absolute difference is used, so a future lastPeriod still
// yields a positive day count.
func CycleDay(lastPeriod, today time.Time) int {
	diff := today.Sub(lastPeriod).Hours() / 24
	return int(math.Ceil(math.Abs(diff)))
}

// PredictNextPeriod adds the cycle length to the last period start.
func PredictNextPeriod(lastPeriod time.Time, cycleLengthDays int) (time.Time, error) {
	if cycleLengthDays <= 0 {
		return time.Time{}, fmt.Errorf("%w: cycle length must be positive", ErrInvalidInput)
	}
	return lastPeriod.AddDate(0, 0, cycleLengthDays), nil
}

// PredictOvulation uses a fixed 14-day offset regardless of cycle length.
func PredictOvulation(lastPeriod time.Time) time.Time {
	return lastPeriod.AddDate(0, 0, ovulationOffsetDays)
}

// FertileWindow returns the inclusive fertile range, days 12 through 16 of
// the cycle.
func FertileWindow(lastPeriod time.Time) (start, end time.Time) {
	return lastPeriod.AddDate(0, 0, fertileStartOffsetDays),
		lastPeriod.AddDate(0, 0, fertileEndOffsetDays)
}

// CycleRecord is the slice of a logged cycle the averages care about. Zero
// fields fall back to the defaults.
type CycleRecord struct {
	LengthDays   int
	DurationDays int
}

// CycleAverages computes the arithmetic mean cycle length and period
// duration over the supplied history, most recent first or not. Empty
// history is ErrInsufficientData.
func CycleAverages(history []CycleRecord) (avgLength, avgDuration float64, err error) {
	if len(history) == 0 {
		return 0, 0, fmt.Errorf("%w: no cycle history", ErrInsufficientData)
	}
	var lengthSum, durationSum float64
	for _, rec := range history {
		length := rec.LengthDays
		if length <= 0 {
			length = DefaultCycleLengthDays
		}
		duration := rec.DurationDays
		if duration <= 0 {
			duration = DefaultPeriodDurationDays
		}
		lengthSum += float64(length)
		durationSum += float64(duration)
	}
	n := float64(len(history))
	return lengthSum / n, durationSum / n, nil
}

// CalendarDayKind classifies a calendar date for the cycle view.
// Period days win over fertile days, and the single ovulation day wins over
// the rest of the fertile window.
func CalendarDayKind(day, lastPeriod time.Time, cycleLengthDays, periodDurationDays int) string {
	if cycleLengthDays <= 0 {
		cycleLengthDays = DefaultCycleLengthDays
	}
	if periodDurationDays <= 0 {
		periodDurationDays = DefaultPeriodDurationDays
	}
	day = truncateDay(day)
	lastPeriod = truncateDay(lastPeriod)

	periodEnd := lastPeriod.AddDate(0, 0, periodDurationDays-1)
	if !day.Before(lastPeriod) && !day.After(periodEnd) {
		return "period"
	}
	next, _ := PredictNextPeriod(lastPeriod, cycleLengthDays)
	nextEnd := next.AddDate(0, 0, periodDurationDays-1)
	if !day.Before(next) && !day.After(nextEnd) {
		return "predicted-period"
	}
	if day.Equal(truncateDay(PredictOvulation(lastPeriod))) {
		return "ovulation"
	}
	fertileStart, fertileEnd := FertileWindow(lastPeriod)
	if !day.Before(truncateDay(fertileStart)) && !day.After(truncateDay(fertileEnd)) {
		return "fertile"
	}
	return "regular"
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
