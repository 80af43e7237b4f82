// Package streak — service.go loads the inputs, runs the engine and persists
// the result.
package streak

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// DatesSource lists every date a user has checked in.
// Implemented by the checkin repository; the interface keeps the two
// features from importing each other.
type DatesSource interface {
	ListDates(ctx context.Context, userID int64) ([]time.Time, error)
}

// Service manages streak reconciliation and reads.
type Service struct {
	repo  *Repository
	dates DatesSource
}

// NewService creates a streak service.
func NewService(repo *Repository, dates DatesSource) *Service {
	return &Service{repo: repo, dates: dates}
}

// ReconcileForUser re-derives the user's streak record from their full
// check-in history and persists it. Returns the new streak length and the
// bonus points earned by this call (notification only, not part of any
// stored total).
//
// Idempotent: reconciling twice with unchanged dates grants nothing the
// second time. On any error the prior record is left untouched — the
// persist is a single upsert, so there is no partial state.
func (s *Service) ReconcileForUser(ctx context.Context, userID int64, today time.Time) (int, int, error) {
	dates, err := s.dates.ListDates(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("gagal memuat riwayat check-in: %w", err)
	}

	prior, err := s.repo.GetRecord(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	rec, bonusPoints := Reconcile(today, dates, prior)
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return 0, 0, err
	}

	if bonusPoints > 0 {
		log.WithFields(log.Fields{
			"user_id": userID,
			"streak":  rec.CurrentStreak,
			"bonus":   bonusPoints,
		}).Info("Bonus streak diberikan")
	}

	return rec.CurrentStreak, bonusPoints, nil
}

// GetRecord returns the user's streak record (zero record when absent).
func (s *Service) GetRecord(ctx context.Context, userID int64) (*Record, error) {
	return s.repo.GetRecord(ctx, userID)
}

// ListActive returns user ids with a streak at or above minStreak.
func (s *Service) ListActive(ctx context.Context, minStreak int) ([]int64, error) {
	return s.repo.ListActive(ctx, minStreak)
}
