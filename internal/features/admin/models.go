// Package admin implements the DM admin panel: Argon2id login, DB-backed
// sessions, and the pre-challenge data purge.
// models.go describes the session rows.
package admin

import "time"

// Session is one authenticated admin session. Sessions live in the database
// so a bot restart does not log admins out.
type Session struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	SessionToken string    `db:"session_token"`
	ExpiresAt    time.Time `db:"expires_at"`
	CreatedAt    time.Time `db:"created_at"`
}

// PurgeReport summarizes what one purge run removed.
type PurgeReport struct {
	Participants    int
	CheckinsDeleted int64
	QuizzesDeleted  int64
}
