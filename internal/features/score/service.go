// Package score implements the lifetime total: per-day activity scores plus
// quiz scores plus the streak bonuses earned this cycle.
//
// The total is recomputed from storage on every read. Caching it would go
// stale the moment a past check-in is edited, so there is no cache.
package score

import (
	"context"
	"fmt"

	"mutabaah.id/challenge-bot/internal/features/streak"
)

// CheckinSource sums the daily scores of all of a user's check-ins.
type CheckinSource interface {
	SumScores(ctx context.Context, userID int64) (int, error)
}

// QuizSource sums the quiz scores of all of a user's answer sheets.
type QuizSource interface {
	SumScores(ctx context.Context, userID int64) (int, error)
}

// StreakSource returns the user's streak record (zero record when absent).
type StreakSource interface {
	GetRecord(ctx context.Context, userID int64) (*streak.Record, error)
}

// Service computes lifetime totals.
type Service struct {
	checkins CheckinSource
	quizzes  QuizSource
	streaks  StreakSource
}

// NewService creates a score service.
func NewService(checkins CheckinSource, quizzes QuizSource, streaks StreakSource) *Service {
	return &Service{checkins: checkins, quizzes: quizzes, streaks: streaks}
}

// Total returns the user's lifetime total: Σ dailyScore + Σ quizScore +
// Σ bonus points for the stored earned thresholds. The stored earned set is
// what counts — the one-time bonus notification amount is never summed.
func (s *Service) Total(ctx context.Context, userID int64) (int, error) {
	checkinPoints, err := s.checkins.SumScores(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("skor check-in: %w", err)
	}
	quizPoints, err := s.quizzes.SumScores(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("skor quiz: %w", err)
	}
	rec, err := s.streaks.GetRecord(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("bonus streak: %w", err)
	}
	return checkinPoints + quizPoints + streak.BonusPoints(rec.EarnedBonuses), nil
}
