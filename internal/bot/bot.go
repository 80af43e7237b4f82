// Package bot contains the main bot module: initialization, the polling
// loop and command routing.
package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/bot/filters"
	"mutabaah.id/challenge-bot/internal/bot/middleware"
	"mutabaah.id/challenge-bot/internal/config"
	"mutabaah.id/challenge-bot/internal/features/admin"
	"mutabaah.id/challenge-bot/internal/features/badges"
	"mutabaah.id/challenge-bot/internal/features/checkin"
	"mutabaah.id/challenge-bot/internal/features/leaderboard"
	"mutabaah.id/challenge-bot/internal/features/participants"
	"mutabaah.id/challenge-bot/internal/features/quiz"
	"mutabaah.id/challenge-bot/internal/features/score"
	"mutabaah.id/challenge-bot/internal/features/streak"
)

// Bot ties the transport layer to the feature handlers.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	chatFilter  *filters.ChatFilter
	rateLimiter *middleware.RateLimiter

	participantService *participants.Service

	participantHandler *participants.Handler
	checkinHandler     *checkin.Handler
	streakHandler      *streak.Handler
	quizHandler        *quiz.Handler
	badgeHandler       *badges.Handler
	scoreHandler       *score.Handler
	leaderboardHandler *leaderboard.Handler
	adminHandler       *admin.Handler

	parser *CommandParser

	// caps how many updates are processed in parallel
	inflight chan struct{}
}

// Handlers groups the per-feature handlers passed to New.
type Handlers struct {
	Participants *participants.Handler
	Checkin      *checkin.Handler
	Streak       *streak.Handler
	Quiz         *quiz.Handler
	Badges       *badges.Handler
	Score        *score.Handler
	Leaderboard  *leaderboard.Handler
	Admin        *admin.Handler
}

// New creates a bot with all its dependencies.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	participantService *participants.Service,
	handlers Handlers,
	chatFilter *filters.ChatFilter,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		api:                api,
		cfg:                cfg,
		chatFilter:         chatFilter,
		rateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		participantService: participantService,
		participantHandler: handlers.Participants,
		checkinHandler:     handlers.Checkin,
		streakHandler:      handlers.Streak,
		quizHandler:        handlers.Quiz,
		badgeHandler:       handlers.Badges,
		scoreHandler:       handlers.Score,
		leaderboardHandler: handlers.Leaderboard,
		adminHandler:       handlers.Admin,
		parser:             NewCommandParser(),
		inflight:           make(chan struct{}, maxInFlight),
	}
}

// Start runs the Telegram long-polling loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Bot berjalan dan menunggu pesan...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Bot berhenti (ctx done)...")
			b.api.StopReceivingUpdates()
			b.rateLimiter.Close()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Kanal updates ditutup, bot berhenti")
				return
			}

			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// handleUpdate processes one Telegram update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	// Enroll users the moment they join the community chat.
	if update.Message != nil && update.Message.NewChatMembers != nil {
		if update.Message.Chat != nil && update.Message.Chat.ID == b.cfg.CommunityChatID {
			b.handleNewMembers(ctx, update.Message.NewChatMembers)
		}
		return
	}

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	message := update.Message

	middleware.LogMessage(message)

	// Community chat or a participant's DM only.
	if !b.chatFilter.CheckAccess(ctx, message) {
		return
	}

	if message.From != nil && !b.rateLimiter.Allow(message.From.ID) {
		log.WithField("user_id", message.From.ID).Debug("rate limited")
		return
	}

	chatID := message.Chat.ID
	userID := message.From.ID

	// Enrollment must not be skipped: every other feature keys on the
	// participants row.
	if err := b.participantService.EnsureParticipant(ctx, userID,
		message.From.UserName, message.From.FirstName, message.From.LastName,
	); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("EnsureParticipant failed")
	}

	cmd, args, isCommand := b.parser.ParseCommand(message.Text)
	if !isCommand {
		return
	}

	log.WithFields(log.Fields{
		"cmd":  cmd,
		"args": args,
	}).Debug("routing command")

	b.routeCommand(ctx, chatID, userID, message.Chat.IsPrivate(), cmd, args)
}

// routeCommand dispatches a command to its handler.
func (b *Bot) routeCommand(ctx context.Context, chatID, userID int64, isPrivate bool, cmd string, args []string) {
	switch cmd {
	case "start", "bantuan", "help":
		b.sendMessage(chatID, helpText(b.cfg))

	case "aktivitas":
		b.checkinHandler.HandleActivities(chatID)

	case "checkin":
		b.checkinHandler.HandleCheckin(ctx, chatID, userID, args)

	case "streak":
		b.streakHandler.HandleStreak(ctx, chatID, userID)

	case "quiz", "kuis":
		if b.cfg.FeatureQuizEnabled {
			b.quizHandler.HandleQuiz(ctx, chatID, userID)
		} else {
			b.sendMessage(chatID, "🧠 Kuis sedang dinonaktifkan")
		}

	case "jawab":
		if b.cfg.FeatureQuizEnabled {
			b.quizHandler.HandleAnswer(ctx, chatID, userID, args)
		}

	case "poin":
		b.scoreHandler.HandlePoints(ctx, chatID, userID)

	case "lencana":
		b.badgeHandler.HandleBadges(ctx, chatID, userID)

	case "peringkat":
		if b.cfg.FeatureLeaderboardEnabled {
			b.leaderboardHandler.HandleLeaderboard(ctx, chatID, userID, args)
		} else {
			b.sendMessage(chatID, "🏆 Papan peringkat sedang dinonaktifkan")
		}

	case "gabung":
		b.participantHandler.HandleJoin(ctx, chatID, userID, args)

	case "login":
		// Password never belongs in the group chat.
		if isPrivate {
			b.adminHandler.HandleLogin(ctx, chatID, userID, args)
		} else {
			b.sendMessage(chatID, "🔒 /login hanya lewat pesan pribadi ke bot")
		}

	case "bersihkan":
		if isPrivate {
			b.adminHandler.HandlePurge(ctx, chatID, userID)
		}
	}
}

// handleNewMembers enrolls users who just joined the community chat.
func (b *Bot) handleNewMembers(ctx context.Context, newMembers []tgbotapi.User) {
	for _, user := range newMembers {
		if user.IsBot {
			continue
		}
		if err := b.participantService.EnsureParticipant(ctx, user.ID, user.UserName, user.FirstName, user.LastName); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Warn("EnsureParticipant failed")
			continue
		}
		log.WithField("user", user.UserName).Info("Anggota baru terdaftar sebagai peserta")
	}
}

func helpText(cfg *config.Config) string {
	var sb strings.Builder
	sb.WriteString("🌙 Tantangan Mutaba'ah Ramadan\n\n")
	sb.WriteString("/checkin [tanggal] id[:catatan] ... — setor amalan harian\n")
	sb.WriteString("/aktivitas — daftar aktivitas dan poinnya\n")
	if cfg.FeatureQuizEnabled {
		sb.WriteString("/quiz — kuis hari ini\n")
		sb.WriteString("/jawab a b ... — jawab kuis\n")
	}
	sb.WriteString("/streak — status streak dan bonus\n")
	sb.WriteString("/poin — total poin dan level\n")
	sb.WriteString("/lencana — lencana yang sudah terbuka\n")
	if cfg.FeatureLeaderboardEnabled {
		sb.WriteString("/peringkat [komunitas] — papan peringkat\n")
	}
	sb.WriteString("/gabung <kode> — gabung komunitas\n")
	sb.WriteString("\nAdmin (DM): /login <kata sandi>, /bersihkan")
	return sb.String()
}

// sendMessage is the outgoing-message utility.
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Gagal mengirim pesan")
	}
}

// SendMessageToUser DMs a user (used by the reminder job).
func (b *Bot) SendMessageToUser(userID int64, text string) {
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("user_id", userID).Debug("Tidak bisa mengirim pesan ke user")
	}
}

// CommandParser parses commands with the / prefix (and ! as a convenience
// for users typing from the group chat).
type CommandParser struct {
	validPrefixes []string
}

// NewCommandParser creates a command parser.
func NewCommandParser() *CommandParser {
	return &CommandParser{
		validPrefixes: []string{"/", "!"},
	}
}

// ParseCommand splits a message into command and arguments. The @botname
// suffix Telegram appends in groups is stripped.
func (p *CommandParser) ParseCommand(text string) (string, []string, bool) {
	text = strings.TrimSpace(text)

	hasPrefix := false
	for _, prefix := range p.validPrefixes {
		if strings.HasPrefix(text, prefix) {
			text = strings.TrimPrefix(text, prefix)
			hasPrefix = true
			break
		}
	}

	if !hasPrefix {
		return "", nil, false
	}

	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return "", nil, false
	}

	command := strings.ToLower(parts[0])
	if at := strings.IndexByte(command, '@'); at >= 0 {
		command = command[:at]
	}

	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	return command, args, true
}
