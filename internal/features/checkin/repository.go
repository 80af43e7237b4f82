// Package checkin — repository.go runs all queries against daily_checkins.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the daily_checkins table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a check-in repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Upsert writes one check-in keyed by (user_id, date). A second submission
// for the same date replaces the first; last write wins.
func (r *Repository) Upsert(ctx context.Context, c *DailyCheckin) error {
	query := `
		INSERT INTO daily_checkins (user_id, date, activities, notes, daily_score)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE
		SET activities = EXCLUDED.activities,
		    notes = EXCLUDED.notes,
		    daily_score = EXCLUDED.daily_score,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, c.UserID, c.Date, c.Activities, c.Notes, c.DailyScore)
	if err != nil {
		return fmt.Errorf("gagal menyimpan check-in: %w", err)
	}
	return nil
}

// GetForDate returns the check-in for one (user, date), or nil when absent.
func (r *Repository) GetForDate(ctx context.Context, userID int64, date time.Time) (*DailyCheckin, error) {
	query := `
		SELECT id, user_id, date, activities, notes, daily_score, created_at, updated_at
		FROM daily_checkins
		WHERE user_id = $1 AND date = $2
	`
	var c DailyCheckin
	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&c.ID, &c.UserID, &c.Date, &c.Activities, &c.Notes, &c.DailyScore,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil check-in: %w", err)
	}
	return &c, nil
}

// ListDates returns every date the user has checked in, unordered.
// This is the input of the streak reconciliation.
func (r *Repository) ListDates(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		"SELECT date FROM daily_checkins WHERE user_id = $1", userID,
	)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil tanggal check-in: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("gagal scan tanggal: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// SumScores returns the sum of daily scores over all the user's check-ins.
func (r *Repository) SumScores(ctx context.Context, userID int64) (int, error) {
	var sum int
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(daily_score), 0) FROM daily_checkins WHERE user_id = $1", userID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("gagal menjumlahkan skor check-in: %w", err)
	}
	return sum, nil
}

// PurgeBefore deletes the user's check-ins strictly before cutoff.
func (r *Repository) PurgeBefore(ctx context.Context, userID int64, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM daily_checkins WHERE user_id = $1 AND date < $2", userID, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("gagal menghapus check-in lama: %w", err)
	}
	return tag.RowsAffected(), nil
}
