package utils

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestCycleDay verifies elapsed-day counting: partial days round up, and
// the absolute difference keeps future dates positive.
func TestCycleDay(t *testing.T) {
	last := date(2025, time.March, 1)
	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"same instant", last, 0},
		{"noon of the start day", last.Add(12 * time.Hour), 1},
		{"ten days later", date(2025, time.March, 11), 10},
		{"ten days later at noon", date(2025, time.March, 11).Add(12 * time.Hour), 11},
		{"future last period", date(2025, time.February, 24), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CycleDay(last, tt.today); got != tt.want {
				t.Errorf("CycleDay = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestPredictNextPeriodAdditive checks that chaining two predictions lands
// exactly two cycle lengths out.
func TestPredictNextPeriodAdditive(t *testing.T) {
	start := date(2025, time.January, 10)
	first, err := PredictNextPeriod(start, 28)
	if err != nil {
		t.Fatalf("PredictNextPeriod: %v", err)
	}
	second, err := PredictNextPeriod(first, 28)
	if err != nil {
		t.Fatalf("PredictNextPeriod: %v", err)
	}
	want := start.AddDate(0, 0, 56)
	if !second.Equal(want) {
		t.Errorf("chained prediction = %v, want %v", second, want)
	}
}

// TestPredictNextPeriodInvalid rejects non-positive cycle lengths.
func TestPredictNextPeriodInvalid(t *testing.T) {
	if _, err := PredictNextPeriod(date(2025, time.January, 10), 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero cycle length error = %v, want ErrInvalidInput", err)
	}
}

// TestOvulationAndFertileWindow checks the fixed 14-day ovulation offset
// and the 12..16 day fertile range around it.
func TestOvulationAndFertileWindow(t *testing.T) {
	last := date(2025, time.April, 1)
	if got := PredictOvulation(last); !got.Equal(date(2025, time.April, 15)) {
		t.Errorf("PredictOvulation = %v, want 2025-04-15", got)
	}
	start, end := FertileWindow(last)
	if !start.Equal(date(2025, time.April, 13)) || !end.Equal(date(2025, time.April, 17)) {
		t.Errorf("FertileWindow = %v..%v, want 2025-04-13..2025-04-17", start, end)
	}
}

// TestCycleAverages verifies defaulting of missing fields and the empty
// history sentinel.
func TestCycleAverages(t *testing.T) {
	avgLen, avgDur, err := CycleAverages([]CycleRecord{
		{LengthDays: 30, DurationDays: 6},
		{LengthDays: 26, DurationDays: 4},
		{}, // defaults 28/5
	})
	if err != nil {
		t.Fatalf("CycleAverages: %v", err)
	}
	if avgLen != 28 {
		t.Errorf("avgLength = %v, want 28", avgLen)
	}
	if avgDur != 5 {
		t.Errorf("avgDuration = %v, want 5", avgDur)
	}

	if _, _, err := CycleAverages(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty history error = %v, want ErrInsufficientData", err)
	}
}

// TestCalendarDayKind walks through one cycle and checks the precedence of
// the day classifications.
func TestCalendarDayKind(t *testing.T) {
	last := date(2025, time.May, 1)
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"first period day", date(2025, time.May, 1), "period"},
		{"last period day", date(2025, time.May, 5), "period"},
		{"plain day", date(2025, time.May, 8), "regular"},
		{"fertile start", date(2025, time.May, 13), "fertile"},
		{"ovulation day", date(2025, time.May, 15), "ovulation"},
		{"fertile end", date(2025, time.May, 17), "fertile"},
		{"predicted next period", date(2025, time.May, 29), "predicted-period"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalendarDayKind(tt.day, last, 28, 5); got != tt.want {
				t.Errorf("CalendarDayKind(%v) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}
