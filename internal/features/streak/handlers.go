// Package streak — handlers.go renders the /streak command: current run,
// earned bonuses and the next threshold to chase.
package streak

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// Handler handles streak commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a streak handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleStreak renders the user's streak state.
func (h *Handler) HandleStreak(ctx context.Context, chatID, userID int64) {
	rec, err := h.service.GetRecord(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("gagal mengambil streak")
		h.sendMessage(chatID, "❌ Gagal mengambil data streak")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔥 Streak kamu: %d hari\n", rec.CurrentStreak))
	if rec.HasCheckins() {
		sb.WriteString(fmt.Sprintf("Check-in terakhir: %s\n", common.FormatDate(rec.LastCheckinDate)))
	} else {
		sb.WriteString("Belum ada check-in. Mulai hari ini dengan /checkin!\n")
	}

	if len(rec.EarnedBonuses) > 0 {
		sb.WriteString("\nBonus yang sudah diraih:\n")
		for _, b := range Bonuses {
			if containsThreshold(rec.EarnedBonuses, b.DaysRequired) {
				sb.WriteString(fmt.Sprintf("  ✅ %s (+%d poin)\n", b.Label, b.Points))
			}
		}
	}

	if next, ok := NextBonus(rec.EarnedBonuses); ok {
		remaining := next.DaysRequired - rec.CurrentStreak
		if remaining > 0 {
			sb.WriteString(fmt.Sprintf("\nBonus berikutnya: %s (+%d poin), %d hari lagi",
				next.Label, next.Points, remaining))
		} else {
			sb.WriteString(fmt.Sprintf("\nBonus berikutnya: %s (+%d poin)", next.Label, next.Points))
		}
	} else {
		sb.WriteString("\nSemua bonus streak siklus ini sudah diraih. Masya Allah!")
	}

	h.sendMessage(chatID, sb.String())
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
