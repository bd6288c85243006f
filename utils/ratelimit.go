package utils

import "time"

// AI endpoint quotas.
const (
	AIRequestsPerMinute = 10
	AIRequestsPerHour   = 100
	AIRequestsPerDay    = 500
)

// RateWindow counts requests inside one fixed window.
type RateWindow struct {
	Count int
	Start time.Time
}

// RateLimiter tracks the three stacked AI quotas. The zero value is a fresh
// limiter. It holds no clock and no lock; callers pass now explicitly and
// own any synchronization.
type RateLimiter struct {
	Minute RateWindow
	Hour   RateWindow
	Day    RateWindow
}

// Tick records one request attempt at the given instant and reports whether
// it is allowed. Expired windows reset before counting, so a denied call in
// one window never poisons the next.
func Tick(l RateLimiter, now time.Time) (RateLimiter, bool) {
	l.Minute = rollWindow(l.Minute, now, time.Minute)
	l.Hour = rollWindow(l.Hour, now, time.Hour)
	l.Day = rollWindow(l.Day, now, 24*time.Hour)

	if l.Minute.Count >= AIRequestsPerMinute ||
		l.Hour.Count >= AIRequestsPerHour ||
		l.Day.Count >= AIRequestsPerDay {
		return l, false
	}

	l.Minute.Count++
	l.Hour.Count++
	l.Day.Count++
	return l, true
}

func rollWindow(w RateWindow, now time.Time, span time.Duration) RateWindow {
	if w.Start.IsZero() || now.Sub(w.Start) >= span {
		return RateWindow{Start: now}
	}
	return w
}
