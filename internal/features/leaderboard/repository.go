// Package leaderboard — repository.go computes the ranking in SQL.
//
// The per-user total here must match the score service's definition exactly:
// check-in sums plus quiz sums plus the streaks.bonus_points projection,
// which every reconcile keeps equal to the earned-threshold resolution.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// row is what the ranking query yields before display names are resolved.
type row struct {
	Rank       int
	UserID     int64
	Username   string
	FirstName  string
	LastName   string
	Pseudonym  string
	TotalScore int
}

// Repository runs the ranking query.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a leaderboard repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// rank orders participants by total descending; ties break by user_id so the
// ordering is stable across reads.
func (r *Repository) rank(ctx context.Context, scope Scope, limit int) ([]row, error) {
	query := `
		WITH totals AS (
			SELECT p.user_id, p.username, p.first_name, p.last_name, p.pseudonym,
			       COALESCE(c.pts, 0) + COALESCE(q.pts, 0) + COALESCE(s.bonus_points, 0) AS total_score
			FROM participants p
			LEFT JOIN (
				SELECT user_id, SUM(daily_score) AS pts FROM daily_checkins GROUP BY user_id
			) c ON c.user_id = p.user_id
			LEFT JOIN (
				SELECT user_id, SUM(quiz_score) AS pts FROM quiz_answers GROUP BY user_id
			) q ON q.user_id = p.user_id
			LEFT JOIN streaks s ON s.user_id = p.user_id
			WHERE $1 = '' OR p.community_code = $1
		)
		SELECT ROW_NUMBER() OVER (ORDER BY total_score DESC, user_id) AS rank,
		       user_id, username, first_name, last_name, pseudonym, total_score
		FROM totals
		ORDER BY total_score DESC, user_id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, scope.CommunityCode, limit)
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung peringkat: %w", err)
	}
	defer rows.Close()

	var out []row
	for rows.Next() {
		var e row
		if err := rows.Scan(
			&e.Rank, &e.UserID, &e.Username, &e.FirstName, &e.LastName,
			&e.Pseudonym, &e.TotalScore,
		); err != nil {
			return nil, fmt.Errorf("gagal scan peringkat: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
