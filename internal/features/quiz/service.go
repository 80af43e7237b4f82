// Package quiz — service.go contains the quiz submission flow.
package quiz

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// TotalScorer computes the lifetime total on demand.
type TotalScorer interface {
	Total(ctx context.Context, userID int64) (int, error)
}

// BadgeUnlocker persists newly reached level badges and returns their names.
type BadgeUnlocker interface {
	UnlockNewBadges(ctx context.Context, userID int64, totalPoints int, now time.Time) ([]string, error)
}

// Store is the persistence the service needs. Implemented by Repository;
// tests substitute an in-memory one.
type Store interface {
	Upsert(ctx context.Context, a *AnswerSheet) error
	GetForDate(ctx context.Context, userID int64, date time.Time) (*AnswerSheet, error)
}

// Result is what a quiz submission reports back to the handler.
type Result struct {
	Sheet      *AnswerSheet
	NewBadges  []string
	TotalScore int
}

// Service handles quiz reads and submissions. The quiz is for the current
// day only; there is no quiz backfill.
type Service struct {
	repo           Store
	scores         TotalScorer
	badges         BadgeUnlocker
	challengeStart time.Time
	challengeEnd   time.Time
	now            func() time.Time
	loc            *time.Location
}

// NewService creates a quiz service.
func NewService(
	repo Store,
	scores TotalScorer,
	badges BadgeUnlocker,
	challengeStart, challengeEnd time.Time,
	now func() time.Time,
	loc *time.Location,
) *Service {
	return &Service{
		repo:           repo,
		scores:         scores,
		badges:         badges,
		challengeStart: challengeStart,
		challengeEnd:   challengeEnd,
		now:            now,
		loc:            loc,
	}
}

// TodayQuiz returns today's question set and the sheet already submitted for
// it, if any.
func (s *Service) TodayQuiz(ctx context.Context, userID int64) (DailyQuiz, *AnswerSheet, error) {
	today := common.TodayIn(s.now(), s.loc)
	if today.Before(s.challengeStart) || today.After(s.challengeEnd) {
		return DailyQuiz{}, nil, common.ErrOutsideChallenge
	}

	day := common.ChallengeDay(s.challengeStart, today)
	dq, ok := ForDay(day)
	if !ok {
		return DailyQuiz{}, nil, common.ErrNoQuizToday
	}

	sheet, err := s.repo.GetForDate(ctx, userID, today)
	if err != nil {
		return DailyQuiz{}, nil, err
	}
	return dq, sheet, nil
}

// Submit scores and persists today's answer sheet, then recomputes the total
// and unlocks any newly reached badges. The selections are positional; their
// count must match the question count (nil = unanswered).
func (s *Service) Submit(ctx context.Context, userID int64, selections []*int) (*Result, error) {
	dq, _, err := s.TodayQuiz(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(selections) != len(dq.Questions) {
		return nil, common.ErrAnswerCount
	}

	answers := make([]Selected, len(selections))
	for i, sel := range selections {
		answers[i] = Selected{QuestionID: dq.Questions[i].ID, SelectedIndex: sel}
	}

	today := common.TodayIn(s.now(), s.loc)
	sheet := &AnswerSheet{
		UserID:    userID,
		Date:      today,
		Answers:   answers,
		QuizScore: Score(dq.Questions, answers),
	}
	if err := s.repo.Upsert(ctx, sheet); err != nil {
		return nil, err
	}

	total, err := s.scores.Total(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung total poin: %w", err)
	}
	newBadges, err := s.badges.UnlockNewBadges(ctx, userID, total, s.now())
	if err != nil {
		return nil, fmt.Errorf("gagal membuka lencana: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id":    userID,
		"date":       common.FormatDate(today),
		"quiz_score": sheet.QuizScore,
		"total":      total,
	}).Info("Jawaban quiz tersimpan")

	return &Result{Sheet: sheet, NewBadges: newBadges, TotalScore: total}, nil
}
