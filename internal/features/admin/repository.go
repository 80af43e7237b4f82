// Package admin — repository.go runs queries against admin_sessions and
// admin_login_attempts.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the admin tables.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates an admin repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSession stores a new session.
func (r *Repository) CreateSession(ctx context.Context, s *Session) error {
	query := `
		INSERT INTO admin_sessions (user_id, session_token, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, s.UserID, s.SessionToken, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("gagal membuat sesi admin: %w", err)
	}
	return nil
}

// HasActiveSession reports whether the user holds an unexpired session.
func (r *Repository) HasActiveSession(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM admin_sessions
			WHERE user_id = $1 AND expires_at > NOW()
		)
	`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("gagal cek sesi admin: %w", err)
	}
	return exists, nil
}

// CountRecentAttempts counts failed logins inside the window.
func (r *Repository) CountRecentAttempts(ctx context.Context, userID int64, window time.Duration) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM admin_login_attempts
		WHERE user_id = $1 AND success = FALSE AND attempt_time > NOW() - $2::interval
	`, userID, window.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung percobaan login: %w", err)
	}
	return n, nil
}

// LogAttempt records one login attempt.
func (r *Repository) LogAttempt(ctx context.Context, userID int64, success bool) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO admin_login_attempts (user_id, success) VALUES ($1, $2)",
		userID, success,
	)
	if err != nil {
		return fmt.Errorf("gagal mencatat percobaan login: %w", err)
	}
	return nil
}
