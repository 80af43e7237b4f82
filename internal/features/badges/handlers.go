// Package badges — handlers.go renders the /lencana command.
package badges

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Handler handles badge commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a badges handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleBadges renders the user's badge collection against the full level
// ladder, locked levels included.
func (h *Handler) HandleBadges(ctx context.Context, chatID, userID int64) {
	owned, err := h.service.GetBadges(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("gagal mengambil lencana")
		h.sendMessage(chatID, "❌ Gagal mengambil data lencana")
		return
	}

	ownedSet := make(map[string]struct{}, len(owned))
	for _, b := range owned {
		ownedSet[b.LevelName] = struct{}{}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏅 Koleksi Lencana (%d/%d)\n\n", len(owned), len(Levels)))
	for _, l := range Levels {
		if _, ok := ownedSet[l.Name]; ok {
			sb.WriteString(fmt.Sprintf("%s %s — %s\n", l.BadgeSymbol, l.Name, l.Description))
		} else {
			sb.WriteString(fmt.Sprintf("🔒 %s — butuh %d poin\n", l.Name, l.Points))
		}
	}
	h.sendMessage(chatID, sb.String())
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
