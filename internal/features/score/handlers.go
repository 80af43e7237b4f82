// Package score — handlers.go renders the /poin command: lifetime total,
// current level and progress toward the next one.
package score

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/features/badges"
)

// Handler handles score commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a score handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandlePoints renders the user's total and level progress.
func (h *Handler) HandlePoints(ctx context.Context, chatID, userID int64) {
	total, err := h.service.Total(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("gagal menghitung total poin")
		h.sendMessage(chatID, "❌ Gagal menghitung total poin")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 Total poin: %d\n", total))

	if current, ok := badges.CurrentLevel(total); ok {
		sb.WriteString(fmt.Sprintf("Level: %s %s (%s)\n", current.BadgeSymbol, current.Name, current.Description))
	} else {
		sb.WriteString("Level: belum ada, terus semangat!\n")
	}

	if next, ok := badges.NextLevel(total); ok {
		sb.WriteString(fmt.Sprintf("Level berikutnya: %s %s, butuh %d poin lagi",
			next.BadgeSymbol, next.Name, next.Points-total))
	} else {
		sb.WriteString("Kamu sudah di level tertinggi. Masya Allah!")
	}

	h.sendMessage(chatID, sb.String())
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
