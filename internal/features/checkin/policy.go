// Package checkin — policy.go enforces when a check-in date is writable.
//
// The 2-day backfill limit is a business invariant, not a UI convenience:
// it is checked here in the service layer so a late edit cannot slip in
// through any client.
package checkin

import (
	"time"

	"mutabaah.id/challenge-bot/internal/common"
)

// Policy decides whether a given calendar date accepts a check-in write.
type Policy struct {
	ChallengeStart time.Time
	ChallengeEnd   time.Time
	EditWindowDays int // How many days back a date stays editable, inclusive
}

// CheckWritable returns nil when date may be written on the given "today",
// or the sentinel describing which rule rejected it. Rules, in order:
// no future dates, inside the challenge period, within the edit window.
func (p Policy) CheckWritable(today, date time.Time) error {
	if date.After(today) {
		return common.ErrFutureDate
	}
	if date.Before(p.ChallengeStart) || date.After(p.ChallengeEnd) {
		return common.ErrOutsideChallenge
	}
	if common.DaysBetween(date, today) > p.EditWindowDays {
		return common.ErrEditWindowClosed
	}
	return nil
}

// EditableDates lists the dates currently open for writing, oldest first.
// Mirrors the original date picker: the trailing window clipped to the
// challenge period.
func (p Policy) EditableDates(today time.Time) []time.Time {
	var out []time.Time
	for back := p.EditWindowDays; back >= 0; back-- {
		d := today.AddDate(0, 0, -back)
		if p.CheckWritable(today, d) == nil {
			out = append(out, d)
		}
	}
	return out
}
