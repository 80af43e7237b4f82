// Package badges — models.go describes the badges table rows.
package badges

import "time"

// Badge records that a user reached a level. Append-only: once unlocked a
// badge is never revoked (no path decreases the total in this design, and
// even the purge deletes-and-rederives rather than editing).
type Badge struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	LevelName  string    `db:"level_name"`
	UnlockedAt time.Time `db:"unlocked_at"`
}
