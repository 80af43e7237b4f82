// Package streak implements the consecutive-day streak: the reconciliation
// engine, the bonus table and the persisted per-user record.
// models.go describes the streaks table rows.
package streak

import "time"

// Record is one user's streak state. It is never updated incrementally:
// every change is a full recompute from the complete set of the user's
// check-in dates, because a backfilled or edited past day can change the
// consecutive run retroactively.
type Record struct {
	UserID          int64     `db:"user_id"`
	CurrentStreak   int       `db:"current_streak"`    // Consecutive days ending today
	LastCheckinDate time.Time `db:"last_checkin_date"` // Zero value when no check-ins exist
	EarnedBonuses   []int     `db:"earned_bonuses"`    // Thresholds granted this cycle
	UpdatedAt       time.Time `db:"updated_at"`
}

// HasCheckins reports whether the user ever checked in.
func (r *Record) HasCheckins() bool {
	return !r.LastCheckinDate.IsZero()
}
