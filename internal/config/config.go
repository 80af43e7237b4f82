// Package config loads the bot configuration from environment variables.
// envconfig maps the environment onto the struct; fields that need parsing
// beyond what envconfig offers (dates, admin id list) are filled in by Load.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"mutabaah.id/challenge-bot/internal/common"
)

// Config holds ALL application settings.
type Config struct {
	// --- Telegram ---
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	// The single group chat the bot serves (the community running the challenge).
	CommunityChatID int64  `envconfig:"COMMUNITY_CHAT_ID" required:"true"`
	AdminIDsRaw     string `envconfig:"ADMIN_IDS" default:""`
	AdminIDs        []int64 `envconfig:"-"`

	// --- Database ---
	// Inside docker-compose "localhost" is almost always wrong; default to the
	// service name and override DB_HOST=localhost for local runs.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"mutabaah"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"mutabaah"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Asia/Jakarta"`

	// --- Bot runtime ---
	// How many updates are handled in parallel; one goroutine per update
	// without a cap leaks memory under flood.
	BotMaxInflight          int `envconfig:"BOT_MAX_INFLIGHT" default:"64"`
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`

	// --- Challenge period ---
	ChallengeStartRaw string    `envconfig:"CHALLENGE_START" default:"2026-02-18"`
	ChallengeEndRaw   string    `envconfig:"CHALLENGE_END" default:"2026-03-18"`
	ChallengeStart    time.Time `envconfig:"-"`
	ChallengeEnd      time.Time `envconfig:"-"`

	// --- Check-in ---
	// How many days back a check-in stays editable (inclusive).
	CheckinEditWindowDays int `envconfig:"CHECKIN_EDIT_WINDOW_DAYS" default:"2"`

	// --- Reminders ---
	// Hour of day (challenge timezone) for the "streak at risk" reminder.
	ReminderHour            int `envconfig:"REMINDER_HOUR" default:"20"`
	ReminderStreakThreshold int `envconfig:"REMINDER_STREAK_THRESHOLD" default:"3"`

	// --- Admin ---
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`

	// --- Rate limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Feature flags ---
	FeatureQuizEnabled        bool `envconfig:"FEATURE_QUIZ_ENABLED" default:"true"`
	FeatureLeaderboardEnabled bool `envconfig:"FEATURE_LEADERBOARD_ENABLED" default:"true"`
	FeatureRemindersEnabled   bool `envconfig:"FEATURE_REMINDERS_ENABLED" default:"true"`
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Location resolves the challenge timezone, falling back to UTC+7 when the
// tz database is unavailable in the container.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	if c.CommunityChatID == 0 {
		return fmt.Errorf("COMMUNITY_CHAT_ID tidak boleh 0")
	}
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT harus > 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS harus > 0")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS/DB_MAX_CONNS tidak konsisten")
	}
	if c.CheckinEditWindowDays < 0 {
		return fmt.Errorf("CHECKIN_EDIT_WINDOW_DAYS harus >= 0")
	}
	if c.ReminderHour < 0 || c.ReminderHour > 23 {
		return fmt.Errorf("REMINDER_HOUR harus 0-23")
	}
	if !c.ChallengeEnd.After(c.ChallengeStart) {
		return fmt.Errorf("CHALLENGE_END harus setelah CHALLENGE_START")
	}
	return nil
}

// Load reads the environment and fills the Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("gagal memuat konfigurasi: %w", err)
	}

	ids, err := parseInt64CSV(cfg.AdminIDsRaw)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS parse: %w", err)
	}
	cfg.AdminIDs = ids

	if cfg.ChallengeStart, err = common.ParseDate(cfg.ChallengeStartRaw); err != nil {
		return nil, fmt.Errorf("CHALLENGE_START: %w", err)
	}
	if cfg.ChallengeEnd, err = common.ParseDate(cfg.ChallengeEndRaw); err != nil {
		return nil, fmt.Errorf("CHALLENGE_END: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseInt64CSV(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad int64 %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
