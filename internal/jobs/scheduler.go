// Package jobs runs the background cron tasks.
package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/config"
	"mutabaah.id/challenge-bot/internal/features/checkin"
	"mutabaah.id/challenge-bot/internal/features/streak"
)

// Scheduler owns the cron instance and the reminder job.
type Scheduler struct {
	cron           *cron.Cron
	cfg            *config.Config
	streakService  *streak.Service
	checkinService *checkin.Service
	sendFunc       func(userID int64, text string)
}

// NewScheduler creates the scheduler in the challenge timezone so "20:00"
// means 20:00 for the participants, not for the server.
func NewScheduler(
	cfg *config.Config,
	streakService *streak.Service,
	checkinService *checkin.Service,
	sendFunc func(userID int64, text string),
) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Location()))

	return &Scheduler{
		cron:           c,
		cfg:            cfg,
		streakService:  streakService,
		checkinService: checkinService,
		sendFunc:       sendFunc,
	}
}

// Start registers and starts the background jobs.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cfg.FeatureRemindersEnabled {
		spec := fmt.Sprintf("0 %d * * *", s.cfg.ReminderHour)
		s.cron.AddFunc(spec, func() {
			log.Info("[CRON] Pengingat streak harian")
			if err := s.sendStreakReminders(ctx); err != nil {
				log.WithError(err).Error("[CRON] Pengingat streak gagal")
			}
		})
	}

	s.cron.Start()
	log.WithField("timezone", s.cfg.AppTimezone).Info("Penjadwal tugas berjalan")
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Penjadwal tugas berhenti")
}

// sendStreakReminders DMs every participant whose streak is at or above the
// threshold but who has not checked in today. Only those users get a
// reminder: nudging people with nothing at stake just trains them to mute
// the bot.
func (s *Scheduler) sendStreakReminders(ctx context.Context) error {
	today := s.checkinService.Today()
	// Outside the challenge period there is nothing to remind about.
	if err := s.checkinService.Policy().CheckWritable(today, today); err != nil {
		log.Debug("Pengingat dilewati: di luar periode tantangan")
		return nil
	}

	ids, err := s.streakService.ListActive(ctx, s.cfg.ReminderStreakThreshold)
	if err != nil {
		return fmt.Errorf("daftar streak aktif: %w", err)
	}

	sent := 0
	for _, userID := range ids {
		c, err := s.checkinService.GetForDate(ctx, userID, today)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("cek check-in hari ini gagal")
			continue
		}
		if c != nil {
			continue
		}

		rec, err := s.streakService.GetRecord(ctx, userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("muat streak gagal")
			continue
		}

		s.sendFunc(userID, fmt.Sprintf(
			"🔥 Streak %d harimu menunggu!\nBelum ada check-in hari ini. Setor amalanmu dengan /checkin sebelum tengah malam.",
			rec.CurrentStreak,
		))
		sent++
	}

	log.WithFields(log.Fields{"candidates": len(ids), "sent": sent}).Info("Pengingat streak terkirim")
	return nil
}
