package utils

import (
	"testing"
	"time"
)

// TestTickMinuteQuota fills the per-minute quota and verifies the reset
// after the window elapses.
func TestTickMinuteQuota(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	var l RateLimiter

	for i := 0; i < AIRequestsPerMinute; i++ {
		var ok bool
		l, ok = Tick(l, now)
		if !ok {
			t.Fatalf("request %d inside quota denied", i+1)
		}
	}

	l, ok := Tick(l, now.Add(30*time.Second))
	if ok {
		t.Fatal("request over the minute quota allowed")
	}

	l, ok = Tick(l, now.Add(61*time.Second))
	if !ok {
		t.Fatal("request after window reset denied")
	}
	if l.Minute.Count != 1 {
		t.Errorf("minute count after reset = %d, want 1", l.Minute.Count)
	}
}

// TestTickHourQuota verifies the hour quota denies even when the minute
// window is fresh.
func TestTickHourQuota(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	l := RateLimiter{
		Hour: RateWindow{Count: AIRequestsPerHour, Start: now.Add(-5 * time.Minute)},
		Day:  RateWindow{Count: 200, Start: now.Add(-2 * time.Hour)},
	}

	if _, ok := Tick(l, now); ok {
		t.Fatal("request over the hour quota allowed")
	}
}

// TestTickDeniedDoesNotCount verifies a denied attempt leaves the counters
// unchanged.
func TestTickDeniedDoesNotCount(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	l := RateLimiter{
		Minute: RateWindow{Count: AIRequestsPerMinute, Start: now},
		Hour:   RateWindow{Count: 50, Start: now},
		Day:    RateWindow{Count: 50, Start: now},
	}

	after, ok := Tick(l, now.Add(time.Second))
	if ok {
		t.Fatal("over-quota request allowed")
	}
	if after.Hour.Count != 50 || after.Day.Count != 50 {
		t.Errorf("denied attempt changed counters: hour=%d day=%d", after.Hour.Count, after.Day.Count)
	}
}
