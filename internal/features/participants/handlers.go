package participants

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// Handler handles participant commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a participants handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleJoin processes /gabung <kode>.
func (h *Handler) HandleJoin(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		h.sendMessage(chatID, "Gunakan: /gabung <kode komunitas>\nContoh: /gabung MASJID-ALFALAH")
		return
	}

	code, err := h.service.JoinCommunity(ctx, userID, args[0])
	if err != nil {
		if errors.Is(err, common.ErrCommunityCodeInvalid) {
			h.sendMessage(chatID, "❌ Kode komunitas tidak valid (1-32 karakter).")
			return
		}
		log.WithError(err).WithField("user_id", userID).Error("gagal menyimpan kode komunitas")
		h.sendMessage(chatID, "❌ Gagal bergabung ke komunitas")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Berhasil bergabung ke komunitas %s!\nLihat peringkatnya dengan /peringkat komunitas", code))
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
