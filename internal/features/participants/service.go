// Package participants — service.go contains the enrollment business logic.
package participants

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// Service manages enrollment and profile upkeep.
type Service struct {
	repo *Repository
}

// NewService creates a participants service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// EnsureParticipant guarantees a participant record exists, creating one on
// the user's first message in the community chat. Re-enrollment of an
// existing user refreshes the profile fields instead.
func (s *Service) EnsureParticipant(ctx context.Context, userID int64, username, firstName, lastName string) error {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return s.repo.UpdateInfo(ctx, userID, UpdateInfo{
			Username:  username,
			FirstName: firstName,
			LastName:  lastName,
		})
	}

	p := &Participant{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Pseudonym: GeneratePseudonym(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("gagal mendaftarkan peserta: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id":   userID,
		"username":  username,
		"pseudonym": p.Pseudonym,
	}).Info("Peserta baru terdaftar")

	return nil
}

// JoinCommunity sets the participant's community code and returns the code
// as stored, so replies echo exactly what the leaderboard will match on.
func (s *Service) JoinCommunity(ctx context.Context, userID int64, code string) (string, error) {
	code, err := NormalizeCommunityCode(code)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetCommunityCode(ctx, userID, code); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"user_id": userID, "community": code}).Info("Peserta bergabung ke komunitas")
	return code, nil
}

// NormalizeCommunityCode trims and upper-cases a community code.
// Codes are matched byte for byte in the leaderboard query, so the stored
// form must be canonical (1-32 chars after trimming).
func NormalizeCommunityCode(code string) (string, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" || len(code) > 32 {
		return "", common.ErrCommunityCodeInvalid
	}
	return code, nil
}

// CommunityCodeOf returns the participant's community code, empty when the
// user has not joined one.
func (s *Service) CommunityCodeOf(ctx context.Context, userID int64) (string, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", common.ErrParticipantNotFound
	}
	return p.CommunityCode, nil
}

// GetByUserID returns one participant.
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*Participant, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// ListUserIDs returns all enrolled user ids.
func (s *Service) ListUserIDs(ctx context.Context) ([]int64, error) {
	return s.repo.ListUserIDs(ctx)
}
