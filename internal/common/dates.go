// Package common contains helpers shared across the whole project:
// calendar-date arithmetic, sentinel errors, formatting.
//
// The challenge works at whole-day granularity. A "date" in this codebase is
// always a time.Time at midnight UTC carrying only year/month/day; the user's
// timezone matters only at the moment "today" is derived from a wall clock.
package common

import (
	"fmt"
	"time"
)

// DateLayout is the wire/storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date builds a canonical calendar date (midnight UTC).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf strips the time-of-day and timezone from t, keeping the calendar
// date as t's own location sees it.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// TodayIn returns the current calendar date in loc.
// Evaluated from a caller-supplied clock so tests can cross date boundaries.
func TodayIn(now time.Time, loc *time.Location) time.Time {
	return DateOf(now.In(loc))
}

// ParseDate parses a YYYY-MM-DD string into a canonical calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal tidak valid %q (format: 2006-01-02): %w", s, err)
	}
	return t, nil
}

// FormatDate renders a canonical calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns b - a in whole days. Both must be canonical dates.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// ChallengeDay returns the 1-based day number of date within a challenge
// starting at start, or 0 when date precedes the start.
func ChallengeDay(start, date time.Time) int {
	d := DaysBetween(start, date)
	if d < 0 {
		return 0
	}
	return d + 1
}
