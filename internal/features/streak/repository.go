// Package streak — repository.go runs all queries against the streaks table.
package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the streaks table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a streak repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetRecord returns the user's streak record, or the zero record when none
// was ever persisted. The zero record is a valid prior for reconciliation.
func (r *Repository) GetRecord(ctx context.Context, userID int64) (*Record, error) {
	query := `
		SELECT user_id, current_streak, last_checkin_date, earned_bonuses, updated_at
		FROM streaks
		WHERE user_id = $1
	`
	var (
		rec      Record
		lastDate *time.Time
		earned   []int32
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&rec.UserID, &rec.CurrentStreak, &lastDate, &earned, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Record{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil streak: %w", err)
	}
	if lastDate != nil {
		rec.LastCheckinDate = *lastDate
	}
	rec.EarnedBonuses = fromInt32s(earned)
	return &rec, nil
}

// Upsert persists a reconciled record, keyed by user_id. The bonus_points
// column is a projection of earned_bonuses kept for the leaderboard query;
// the array stays the source of truth.
func (r *Repository) Upsert(ctx context.Context, rec *Record) error {
	var lastDate *time.Time
	if rec.HasCheckins() {
		lastDate = &rec.LastCheckinDate
	}
	query := `
		INSERT INTO streaks (user_id, current_streak, last_checkin_date, earned_bonuses, bonus_points)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
		    last_checkin_date = EXCLUDED.last_checkin_date,
		    earned_bonuses = EXCLUDED.earned_bonuses,
		    bonus_points = EXCLUDED.bonus_points,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		rec.UserID, rec.CurrentStreak, lastDate,
		toInt32s(rec.EarnedBonuses), BonusPoints(rec.EarnedBonuses),
	)
	if err != nil {
		return fmt.Errorf("gagal menyimpan streak: %w", err)
	}
	return nil
}

// ResetIfStale zeroes the record when its last check-in predates cutoff.
// Used by the pre-challenge purge: once the old check-ins are gone the
// streak derived from them must go too.
func (r *Repository) ResetIfStale(ctx context.Context, userID int64, cutoff time.Time) error {
	query := `
		UPDATE streaks
		SET current_streak = 0, last_checkin_date = NULL,
		    earned_bonuses = '{}', bonus_points = 0, updated_at = NOW()
		WHERE user_id = $1 AND (last_checkin_date IS NULL OR last_checkin_date < $2)
	`
	_, err := r.db.Exec(ctx, query, userID, cutoff)
	if err != nil {
		return fmt.Errorf("gagal mereset streak: %w", err)
	}
	return nil
}

// ListActive returns user ids whose current streak meets the threshold.
// Used by the reminder job.
func (r *Repository) ListActive(ctx context.Context, minStreak int) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT user_id FROM streaks WHERE current_streak >= $1", minStreak,
	)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil streak aktif: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("gagal scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func fromInt32s(in []int32) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
