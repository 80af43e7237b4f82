// Package badges — repository.go runs all queries against the badges table.
package badges

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the badges table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a badges repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetBadges returns the user's badges in unlock order.
func (r *Repository) GetBadges(ctx context.Context, userID int64) ([]Badge, error) {
	query := `
		SELECT id, user_id, level_name, unlocked_at
		FROM badges
		WHERE user_id = $1
		ORDER BY unlocked_at, id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil lencana: %w", err)
	}
	defer rows.Close()

	var out []Badge
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.ID, &b.UserID, &b.LevelName, &b.UnlockedAt); err != nil {
			return nil, fmt.Errorf("gagal scan lencana: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// InsertBadges appends new badges. The (user_id, level_name) unique key makes
// a concurrent double-unlock collapse into one row.
func (r *Repository) InsertBadges(ctx context.Context, list []Badge) error {
	for _, b := range list {
		_, err := r.db.Exec(ctx, `
			INSERT INTO badges (user_id, level_name, unlocked_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, level_name) DO NOTHING
		`, b.UserID, b.LevelName, b.UnlockedAt)
		if err != nil {
			return fmt.Errorf("gagal menyimpan lencana %q: %w", b.LevelName, err)
		}
	}
	return nil
}

// DeleteAll removes every badge of the user. Only the pre-challenge purge
// calls this: badges derive from a total that the purge just changed.
func (r *Repository) DeleteAll(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM badges WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("gagal menghapus lencana: %w", err)
	}
	return nil
}
