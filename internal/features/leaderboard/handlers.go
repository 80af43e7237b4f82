// Package leaderboard — handlers.go renders the /peringkat command.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ScopeResolver returns the requester's community code (for the community
// tab). Implemented by the participants service.
type ScopeResolver interface {
	CommunityCodeOf(ctx context.Context, userID int64) (string, error)
}

// Handler handles leaderboard commands.
type Handler struct {
	service *Service
	scopes  ScopeResolver
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a leaderboard handler.
func NewHandler(service *Service, scopes ScopeResolver, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, scopes: scopes, bot: bot}
}

// HandleLeaderboard renders the global board, or the requester's community
// board when called as /peringkat komunitas.
func (h *Handler) HandleLeaderboard(ctx context.Context, chatID, userID int64, args []string) {
	scope := Global
	title := "🌍 Papan Peringkat Global"

	if len(args) > 0 && strings.EqualFold(args[0], "komunitas") {
		code, err := h.scopes.CommunityCodeOf(ctx, userID)
		if err != nil || code == "" {
			h.sendMessage(chatID, "Kamu belum bergabung ke komunitas. Gunakan /gabung <kode> dulu.")
			return
		}
		scope = Community(code)
		title = fmt.Sprintf("👥 Papan Peringkat Komunitas %s", code)
	}

	entries, err := h.service.Rank(ctx, scope, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("gagal memuat peringkat")
		h.sendMessage(chatID, "❌ Gagal memuat peringkat")
		return
	}
	if len(entries) == 0 {
		h.sendMessage(chatID, "Belum ada data peringkat.")
		return
	}

	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	for _, e := range entries {
		marker := rankMarker(e.Rank)
		line := fmt.Sprintf("%s %s — %d poin", marker, e.DisplayName, e.TotalScore)
		if e.IsRequester {
			line += " ← kamu"
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\nFokus pada proses, bukan hasil.")

	h.sendMessage(chatID, sb.String())
}

func rankMarker(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
