// Package streak — engine.go is the reconciliation engine.
//
// Reconcile is pure: all inputs are parameters (including "today"), the
// result is a fresh Record plus the bonus points earned by this call.
// Persistence is the service's job.
package streak

import (
	"time"

	"mutabaah.id/challenge-bot/internal/common"
)

// Reconcile recomputes a user's streak state from the complete set of their
// check-in dates.
//
// The walk starts at today and steps backward one day at a time; the streak
// is the length of the unbroken run ending at the present day. There is no
// grace day: a user who checked in yesterday but not today has streak 0.
//
// Earned bonuses carry over from prior unless the streak shrank below both
// the previous streak length and the smallest threshold already earned — in
// that case the cycle is over and the earned set is cleared before regrants
// are considered. A streak that shrinks but stays at or above the smallest
// earned threshold keeps its bonuses.
//
// Every threshold reached by the new streak and absent from the (possibly
// cleared) earned set is granted; several can fire in one call when backfill
// jumps the streak forward. The returned bonus points drive a one-time
// notification only — totals always resolve the stored earned set against
// the bonus table.
func Reconcile(today time.Time, dates []time.Time, prior *Record) (*Record, int) {
	rec := &Record{UserID: prior.UserID}

	if len(dates) == 0 {
		return rec, 0
	}

	byDay := make(map[string]struct{}, len(dates))
	last := dates[0]
	for _, d := range dates {
		d = common.DateOf(d)
		byDay[common.FormatDate(d)] = struct{}{}
		if d.After(last) {
			last = d
		}
	}
	rec.LastCheckinDate = common.DateOf(last)

	newStreak := 0
	for day := common.DateOf(today); ; day = day.AddDate(0, 0, -1) {
		if _, ok := byDay[common.FormatDate(day)]; !ok {
			break
		}
		newStreak++
	}
	rec.CurrentStreak = newStreak

	earned := append([]int(nil), prior.EarnedBonuses...)
	if newStreak < prior.CurrentStreak && newStreak < minThreshold(earned) {
		earned = nil
	}

	bonusPoints := 0
	for _, b := range Bonuses {
		if newStreak >= b.DaysRequired && !containsThreshold(earned, b.DaysRequired) {
			earned = append(earned, b.DaysRequired)
			bonusPoints += b.Points
		}
	}
	rec.EarnedBonuses = earned

	return rec, bonusPoints
}

// minThreshold returns the smallest earned threshold. An empty set has no
// smallest threshold, so nothing can be "below" it and no reset happens;
// the sentinel keeps the comparison in Reconcile false in that case.
func minThreshold(earned []int) int {
	const none = 1 << 30
	min := none
	for _, days := range earned {
		if days < min {
			min = days
		}
	}
	if min == none {
		return -1 << 30
	}
	return min
}

func containsThreshold(earned []int, days int) bool {
	for _, d := range earned {
		if d == days {
			return true
		}
	}
	return false
}
