// Package badges — service.go decides which badges to mint and persists them.
package badges

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Store is the persistence the service needs. Implemented by Repository;
// tests substitute an in-memory one.
type Store interface {
	GetBadges(ctx context.Context, userID int64) ([]Badge, error)
	InsertBadges(ctx context.Context, list []Badge) error
}

// Service manages badge unlocking.
type Service struct {
	store Store
}

// NewService creates a badges service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// UnlockNewBadges mints a badge for every level whose requirement the total
// meets and that the user does not hold yet, stamped with now. Returns the
// names of only the newly minted badges, for the one-time notification.
//
// Idempotent: a second call with the same total and the refreshed badge list
// returns nothing.
func (s *Service) UnlockNewBadges(ctx context.Context, userID int64, totalPoints int, now time.Time) ([]string, error) {
	existing, err := s.store.GetBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	held := make([]string, len(existing))
	for i, b := range existing {
		held[i] = b.LevelName
	}

	names := NewlyReached(totalPoints, held)
	if len(names) == 0 {
		return nil, nil
	}

	minted := make([]Badge, len(names))
	for i, name := range names {
		minted[i] = Badge{UserID: userID, LevelName: name, UnlockedAt: now}
	}
	if err := s.store.InsertBadges(ctx, minted); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"badges":  names,
		"total":   totalPoints,
	}).Info("Lencana baru terbuka")

	return names, nil
}

// GetBadges returns the user's badges.
func (s *Service) GetBadges(ctx context.Context, userID int64) ([]Badge, error) {
	return s.store.GetBadges(ctx, userID)
}
