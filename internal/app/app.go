// Package app initializes every component of the application.
// app.go is the assembly point: database pool, repositories, services,
// handlers, filters — wired into one Bot.
package app

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/bot"
	"mutabaah.id/challenge-bot/internal/bot/filters"
	"mutabaah.id/challenge-bot/internal/config"
	"mutabaah.id/challenge-bot/internal/db/postgres"
	"mutabaah.id/challenge-bot/internal/features/admin"
	"mutabaah.id/challenge-bot/internal/features/badges"
	"mutabaah.id/challenge-bot/internal/features/checkin"
	"mutabaah.id/challenge-bot/internal/features/leaderboard"
	"mutabaah.id/challenge-bot/internal/features/participants"
	"mutabaah.id/challenge-bot/internal/features/quiz"
	"mutabaah.id/challenge-bot/internal/features/score"
	"mutabaah.id/challenge-bot/internal/features/streak"
	"mutabaah.id/challenge-bot/internal/jobs"
)

// App holds every long-lived component.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	BotAPI    *tgbotapi.BotAPI
}

// New creates and initializes the application.
// Initialization order matters: later components depend on earlier ones.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. Database ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("koneksi DB gagal: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("migrasi gagal: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("inisialisasi Telegram API gagal: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Terotorisasi sebagai @%s", botAPI.Self.UserName)

	loc := cfg.Location()
	now := time.Now

	// === 3. Repositories ===
	participantRepo := participants.NewRepository(pool)
	checkinRepo := checkin.NewRepository(pool)
	streakRepo := streak.NewRepository(pool)
	badgeRepo := badges.NewRepository(pool)
	quizRepo := quiz.NewRepository(pool)
	leaderboardRepo := leaderboard.NewRepository(pool)
	adminRepo := admin.NewRepository(pool)

	// === 4. Services ===
	// The score service reads the three repositories directly; every other
	// cross-feature dependency goes through the consumer's interface.
	participantService := participants.NewService(participantRepo)
	streakService := streak.NewService(streakRepo, checkinRepo)
	badgeService := badges.NewService(badgeRepo)
	scoreService := score.NewService(checkinRepo, quizRepo, streakRepo)

	policy := checkin.Policy{
		ChallengeStart: cfg.ChallengeStart,
		ChallengeEnd:   cfg.ChallengeEnd,
		EditWindowDays: cfg.CheckinEditWindowDays,
	}
	checkinService := checkin.NewService(checkinRepo, policy, streakService, scoreService, badgeService, now, loc)
	quizService := quiz.NewService(quizRepo, scoreService, badgeService, cfg.ChallengeStart, cfg.ChallengeEnd, now, loc)
	leaderboardService := leaderboard.NewService(leaderboardRepo)
	adminService := admin.NewService(adminRepo, cfg, checkinRepo, quizRepo, streakRepo, badgeRepo, participantService)

	// === 5. Handlers ===
	handlers := bot.Handlers{
		Participants: participants.NewHandler(participantService, botAPI),
		Checkin:      checkin.NewHandler(checkinService, botAPI),
		Streak:       streak.NewHandler(streakService, botAPI),
		Quiz:         quiz.NewHandler(quizService, botAPI),
		Badges:       badges.NewHandler(badgeService, botAPI),
		Score:        score.NewHandler(scoreService, botAPI),
		Leaderboard:  leaderboard.NewHandler(leaderboardService, participantService, botAPI),
		Admin:        admin.NewHandler(adminService, botAPI),
	}

	// === 6. Filters ===
	chatFilter := filters.NewChatFilter(cfg.CommunityChatID, participantService, botAPI)

	// === 7. The bot ===
	b := bot.New(botAPI, cfg, participantService, handlers, chatFilter)

	// === 8. Scheduler ===
	scheduler := jobs.NewScheduler(cfg, streakService, checkinService, b.SendMessageToUser)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
		BotAPI:    botAPI,
	}, nil
}

// runMigrations applies all SQL migrations in order.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.EnsureMigrationTable(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Participants},
		{2, migration002Checkins},
		{3, migration003Streaks},
		{4, migration004Quiz},
		{5, migration005Badges},
		{6, migration006Admin},
	}

	for _, m := range migrations {
		if err := postgres.ApplyMigration(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("migrasi %d: %w", m.version, err)
		}
		log.Infof("Migrasi %d diterapkan", m.version)
	}

	return nil
}

// Migrations are embedded in the binary so a deploy is just the image.

var migration001Participants = `
CREATE TABLE IF NOT EXISTS participants (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT UNIQUE NOT NULL,
    username VARCHAR(255),
    first_name VARCHAR(255) NOT NULL,
    last_name VARCHAR(255),
    community_code VARCHAR(32) NOT NULL DEFAULT '',
    pseudonym VARCHAR(64) NOT NULL,
    joined_at TIMESTAMP DEFAULT NOW(),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_participants_user_id ON participants(user_id);
CREATE INDEX IF NOT EXISTS idx_participants_community ON participants(community_code);
`

var migration002Checkins = `
CREATE TABLE IF NOT EXISTS daily_checkins (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES participants(user_id),
    date DATE NOT NULL,
    activities TEXT[] NOT NULL DEFAULT '{}',
    notes JSONB NOT NULL DEFAULT '{}',
    daily_score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (user_id, date)
);
CREATE INDEX IF NOT EXISTS idx_daily_checkins_user_id ON daily_checkins(user_id);
CREATE INDEX IF NOT EXISTS idx_daily_checkins_date ON daily_checkins(date);
`

var migration003Streaks = `
CREATE TABLE IF NOT EXISTS streaks (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT UNIQUE NOT NULL REFERENCES participants(user_id),
    current_streak INTEGER NOT NULL DEFAULT 0,
    last_checkin_date DATE,
    earned_bonuses INTEGER[] NOT NULL DEFAULT '{}',
    bonus_points INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_streaks_current ON streaks(current_streak);
`

var migration004Quiz = `
CREATE TABLE IF NOT EXISTS quiz_answers (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES participants(user_id),
    date DATE NOT NULL,
    answers JSONB NOT NULL DEFAULT '[]',
    quiz_score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (user_id, date)
);
CREATE INDEX IF NOT EXISTS idx_quiz_answers_user_id ON quiz_answers(user_id);
`

var migration005Badges = `
CREATE TABLE IF NOT EXISTS badges (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES participants(user_id),
    level_name VARCHAR(64) NOT NULL,
    unlocked_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (user_id, level_name)
);
CREATE INDEX IF NOT EXISTS idx_badges_user_id ON badges(user_id);
`

var migration006Admin = `
CREATE TABLE IF NOT EXISTS admin_sessions (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    session_token VARCHAR(255) UNIQUE,
    authenticated_at TIMESTAMP DEFAULT NOW(),
    expires_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_admin_sessions_user_id ON admin_sessions(user_id);
CREATE TABLE IF NOT EXISTS admin_login_attempts (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    attempt_time TIMESTAMP DEFAULT NOW(),
    success BOOLEAN DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_admin_login_attempts_user ON admin_login_attempts(user_id, attempt_time);
`
