// Package quiz — repository.go runs all queries against quiz_answers.
// The answer list is stored as JSONB; pgx marshals it transparently.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the quiz_answers table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a quiz repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Upsert writes one answer sheet keyed by (user_id, date).
func (r *Repository) Upsert(ctx context.Context, a *AnswerSheet) error {
	query := `
		INSERT INTO quiz_answers (user_id, date, answers, quiz_score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE
		SET answers = EXCLUDED.answers,
		    quiz_score = EXCLUDED.quiz_score,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, a.UserID, a.Date, a.Answers, a.QuizScore)
	if err != nil {
		return fmt.Errorf("gagal menyimpan jawaban quiz: %w", err)
	}
	return nil
}

// GetForDate returns the sheet for one (user, date), or nil when absent.
func (r *Repository) GetForDate(ctx context.Context, userID int64, date time.Time) (*AnswerSheet, error) {
	query := `
		SELECT id, user_id, date, answers, quiz_score, created_at, updated_at
		FROM quiz_answers
		WHERE user_id = $1 AND date = $2
	`
	var a AnswerSheet
	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.Date, &a.Answers, &a.QuizScore, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil jawaban quiz: %w", err)
	}
	return &a, nil
}

// SumScores returns the sum of quiz scores over all the user's sheets.
func (r *Repository) SumScores(ctx context.Context, userID int64) (int, error) {
	var sum int
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(quiz_score), 0) FROM quiz_answers WHERE user_id = $1", userID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("gagal menjumlahkan skor quiz: %w", err)
	}
	return sum, nil
}

// PurgeBefore deletes the user's sheets strictly before cutoff.
func (r *Repository) PurgeBefore(ctx context.Context, userID int64, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM quiz_answers WHERE user_id = $1 AND date < $2", userID, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("gagal menghapus jawaban quiz lama: %w", err)
	}
	return tag.RowsAffected(), nil
}
