// Package checkin — service.go contains the submission flow.
//
// One submission is one read-compute-write sequence: validate the date
// against the policy, score the selection, upsert the row, then re-derive
// streak, total and badges from the persisted state. No step is cached
// between submissions; edits to past days change history and everything
// downstream is recomputed from storage.
package checkin

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// StreakReconciler re-derives the streak record after a check-in write.
// Implemented by the streak feature service.
type StreakReconciler interface {
	ReconcileForUser(ctx context.Context, userID int64, today time.Time) (currentStreak, bonusPoints int, err error)
}

// TotalScorer computes the lifetime total on demand.
// Implemented by the score feature service.
type TotalScorer interface {
	Total(ctx context.Context, userID int64) (int, error)
}

// BadgeUnlocker persists newly reached level badges and returns their names.
// Implemented by the badges feature service.
type BadgeUnlocker interface {
	UnlockNewBadges(ctx context.Context, userID int64, totalPoints int, now time.Time) ([]string, error)
}

// Store is the persistence the service needs. Implemented by Repository;
// tests substitute an in-memory one.
type Store interface {
	Upsert(ctx context.Context, c *DailyCheckin) error
	GetForDate(ctx context.Context, userID int64, date time.Time) (*DailyCheckin, error)
}

// Service handles check-in submissions.
type Service struct {
	repo    Store
	policy  Policy
	streaks StreakReconciler
	scores  TotalScorer
	badges  BadgeUnlocker
	now     func() time.Time
	loc     *time.Location
}

// NewService creates a check-in service. The clock is injected so tests can
// submit across date boundaries deterministically.
func NewService(
	repo Store,
	policy Policy,
	streaks StreakReconciler,
	scores TotalScorer,
	badges BadgeUnlocker,
	now func() time.Time,
	loc *time.Location,
) *Service {
	return &Service{
		repo:    repo,
		policy:  policy,
		streaks: streaks,
		scores:  scores,
		badges:  badges,
		now:     now,
		loc:     loc,
	}
}

// Today returns the current calendar date in the challenge timezone.
func (s *Service) Today() time.Time {
	return common.TodayIn(s.now(), s.loc)
}

// Policy exposes the edit-window rules for handlers.
func (s *Service) Policy() Policy {
	return s.policy
}

// Submit validates and persists one check-in, then reconciles the streak,
// recomputes the total and unlocks any newly reached badges.
//
// The write is refused — and the prior record left untouched — when the date
// violates the edit-window policy or when no valid activity is selected.
func (s *Service) Submit(ctx context.Context, userID int64, date time.Time, activityIDs []string, notes map[string]string) (*Result, error) {
	today := s.Today()

	if err := s.policy.CheckWritable(today, date); err != nil {
		return nil, err
	}

	activities := NormalizeActivities(activityIDs)
	if len(activities) == 0 {
		return nil, common.ErrNoActivities
	}

	// Keep only notes attached to a checked activity.
	var keptNotes map[string]string
	for _, id := range activities {
		if note, ok := notes[id]; ok && note != "" {
			if keptNotes == nil {
				keptNotes = make(map[string]string)
			}
			keptNotes[id] = note
		}
	}

	c := &DailyCheckin{
		UserID:     userID,
		Date:       date,
		Activities: activities,
		Notes:      keptNotes,
		DailyScore: ActivityScore(activities),
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}

	// Full recompute, even for edits that cannot change the trailing run:
	// detecting "cannot change" cheaply is not attempted.
	currentStreak, bonusPoints, err := s.streaks.ReconcileForUser(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("gagal rekonsiliasi streak: %w", err)
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
		"user_id":     userID,
		"date":        common.FormatDate(date),
		"daily_score": c.DailyScore,
		"streak":      currentStreak,
		"bonus":       bonusPoints,
		"total":       total,
	}).Info("Check-in tersimpan")

	return &Result{
		Checkin:       c,
		CurrentStreak: currentStreak,
		BonusPoints:   bonusPoints,
		NewBadges:     newBadges,
		TotalScore:    total,
	}, nil
}

// GetForDate returns the stored check-in for one date, nil when absent.
func (s *Service) GetForDate(ctx context.Context, userID int64, date time.Time) (*DailyCheckin, error) {
	return s.repo.GetForDate(ctx, userID, date)
}
