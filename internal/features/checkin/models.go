// Package checkin — models.go describes the daily_checkins table rows.
package checkin

import "time"

// DailyCheckin is one user's submitted activity set for one calendar date.
// At most one row exists per (user_id, date); re-submitting the same date
// overwrites the previous row (upsert), never appends.
type DailyCheckin struct {
	ID         int64             `db:"id"`
	UserID     int64             `db:"user_id"`
	Date       time.Time         `db:"date"`       // Calendar date, no time component
	Activities []string          `db:"activities"` // Checked activity ids
	Notes      map[string]string `db:"notes"`      // Optional note per activity id
	DailyScore int               `db:"daily_score"`
	CreatedAt  time.Time         `db:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at"`
}

// Result is what a submission reports back to the handler: everything the
// one-time reply needs. BonusPoints and NewBadges describe only what this
// call earned; the stored records are the durable truth.
type Result struct {
	Checkin       *DailyCheckin
	CurrentStreak int
	BonusPoints   int
	NewBadges     []string
	TotalScore    int
}
