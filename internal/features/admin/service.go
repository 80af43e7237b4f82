// Package admin — service.go contains login verification and the purge.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
	"mutabaah.id/challenge-bot/internal/config"
)

const (
	maxLoginAttempts = 3
	attemptWindow    = 1 * time.Hour
	sessionLifetime  = 24 * time.Hour
)

// Purge touches every store that derives from pre-challenge data.
// Each interface is implemented by the owning feature's repository.
type (
	CheckinPurger interface {
		PurgeBefore(ctx context.Context, userID int64, cutoff time.Time) (int64, error)
	}
	QuizPurger interface {
		PurgeBefore(ctx context.Context, userID int64, cutoff time.Time) (int64, error)
	}
	StreakResetter interface {
		ResetIfStale(ctx context.Context, userID int64, cutoff time.Time) error
	}
	BadgeWiper interface {
		DeleteAll(ctx context.Context, userID int64) error
	}
	ParticipantLister interface {
		ListUserIDs(ctx context.Context) ([]int64, error)
	}
)

// Service manages admin authentication and admin-only operations.
type Service struct {
	repo         *Repository
	cfg          *config.Config
	checkins     CheckinPurger
	quizzes      QuizPurger
	streaks      StreakResetter
	badges       BadgeWiper
	participants ParticipantLister
}

// NewService creates an admin service.
func NewService(
	repo *Repository,
	cfg *config.Config,
	checkins CheckinPurger,
	quizzes QuizPurger,
	streaks StreakResetter,
	badges BadgeWiper,
	participants ParticipantLister,
) *Service {
	return &Service{
		repo:         repo,
		cfg:          cfg,
		checkins:     checkins,
		quizzes:      quizzes,
		streaks:      streaks,
		badges:       badges,
		participants: participants,
	}
}

// Login verifies the admin password and opens a 24h session.
// Three failed attempts within an hour lock the user out for the hour.
func (s *Service) Login(ctx context.Context, userID int64, password string) error {
	if !isListed(userID, s.cfg.AdminIDs) {
		return common.ErrNotAdmin
	}

	attempts, err := s.repo.CountRecentAttempts(ctx, userID, attemptWindow)
	if err != nil {
		return err
	}
	if attempts >= maxLoginAttempts {
		return common.ErrTooManyAttempts
	}

	match := verifyArgon2id(password, s.cfg.AdminPasswordHash)
	if err := s.repo.LogAttempt(ctx, userID, match); err != nil {
		log.WithError(err).Warn("gagal mencatat percobaan login")
	}
	if !match {
		return common.ErrWrongPassword
	}

	session := &Session{
		UserID:       userID,
		SessionToken: uuid.NewString(),
		ExpiresAt:    time.Now().Add(sessionLifetime),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return err
	}

	log.WithField("user_id", userID).Info("Admin login berhasil")
	return nil
}

// IsAuthenticated reports whether the user holds an active session.
func (s *Service) IsAuthenticated(ctx context.Context, userID int64) bool {
	if !isListed(userID, s.cfg.AdminIDs) {
		return false
	}
	ok, err := s.repo.HasActiveSession(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("gagal cek sesi admin")
		return false
	}
	return ok
}

// PurgePreChallengeData removes, for every participant, check-ins and quiz
// answers dated strictly before the challenge start, zeroes streak records
// whose last check-in predates the start, and deletes all badges — badges
// derive from a total this purge just changed, and the next submission
// re-unlocks whatever the remaining total still covers.
func (s *Service) PurgePreChallengeData(ctx context.Context) (*PurgeReport, error) {
	cutoff := s.cfg.ChallengeStart

	ids, err := s.participants.ListUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := &PurgeReport{Participants: len(ids)}
	for _, userID := range ids {
		n, err := s.checkins.PurgeBefore(ctx, userID, cutoff)
		if err != nil {
			return nil, fmt.Errorf("purge check-in (user_id=%d): %w", userID, err)
		}
		report.CheckinsDeleted += n

		n, err = s.quizzes.PurgeBefore(ctx, userID, cutoff)
		if err != nil {
			return nil, fmt.Errorf("purge quiz (user_id=%d): %w", userID, err)
		}
		report.QuizzesDeleted += n

		if err := s.streaks.ResetIfStale(ctx, userID, cutoff); err != nil {
			return nil, fmt.Errorf("reset streak (user_id=%d): %w", userID, err)
		}
		if err := s.badges.DeleteAll(ctx, userID); err != nil {
			return nil, fmt.Errorf("hapus lencana (user_id=%d): %w", userID, err)
		}
	}

	log.WithFields(log.Fields{
		"participants": report.Participants,
		"checkins":     report.CheckinsDeleted,
		"quizzes":      report.QuizzesDeleted,
		"cutoff":       common.FormatDate(cutoff),
	}).Info("Data pra-tantangan dibersihkan")

	return report, nil
}

func isListed(userID int64, ids []int64) bool {
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}
