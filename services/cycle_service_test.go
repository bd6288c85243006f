package services

import (
	"testing"
	"time"
)

// TestListCyclesCapped verifies that the history endpoint reads at most the
// last 12 records, most recent first, so the averages run over the same
// window.
func TestListCyclesCapped(t *testing.T) {
	testDB(t)
	const userID = 1

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		date := base.AddDate(0, 0, 28*i)
		if _, err := LogCycle(userID, CycleInput{LastPeriodDate: date.Format("2006-01-02")}); err != nil {
			t.Fatalf("LogCycle: %v", err)
		}
	}

	cycles, err := ListCycles(userID)
	if err != nil {
		t.Fatalf("ListCycles: %v", err)
	}
	if len(cycles) != 12 {
		t.Fatalf("ListCycles returned %d records, want 12", len(cycles))
	}

	newest := base.AddDate(0, 0, 28*14)
	if !cycles[0].LastPeriodDate.Equal(newest) {
		t.Errorf("first record = %v, want most recent %v", cycles[0].LastPeriodDate, newest)
	}
	oldestKept := base.AddDate(0, 0, 28*3)
	if !cycles[11].LastPeriodDate.Equal(oldestKept) {
		t.Errorf("last record = %v, want %v", cycles[11].LastPeriodDate, oldestKept)
	}
}

// TestGetCycleOverviewCountsWindow checks that the overview reports the
// capped window size, not the full log.
func TestGetCycleOverviewCountsWindow(t *testing.T) {
	testDB(t)
	const userID = 2

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		date := base.AddDate(0, 0, 28*i)
		if _, err := LogCycle(userID, CycleInput{LastPeriodDate: date.Format("2006-01-02")}); err != nil {
			t.Fatalf("LogCycle: %v", err)
		}
	}

	overview, err := GetCycleOverview(userID, base.AddDate(0, 0, 28*14))
	if err != nil {
		t.Fatalf("GetCycleOverview: %v", err)
	}
	if overview.LoggedCycles != 12 {
		t.Errorf("LoggedCycles = %d, want 12", overview.LoggedCycles)
	}
	if overview.AvgCycleLength != 28 {
		t.Errorf("AvgCycleLength = %v, want 28", overview.AvgCycleLength)
	}
}
