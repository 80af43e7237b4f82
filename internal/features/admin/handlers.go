package admin

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// Handler handles admin commands. All admin commands are DM-only; the bot
// routes private-chat messages from listed admins here.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates an admin handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleLogin processes /login <password> in a private chat.
func (h *Handler) HandleLogin(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		h.sendMessage(chatID, "Gunakan: /login <kata sandi>")
		return
	}

	err := h.service.Login(ctx, userID, args[0])
	switch {
	case err == nil:
		h.sendMessage(chatID, "✅ Login berhasil. Sesi aktif selama 24 jam.")
	case errors.Is(err, common.ErrNotAdmin):
		h.sendMessage(chatID, "❌ Kamu tidak terdaftar sebagai admin.")
	case errors.Is(err, common.ErrTooManyAttempts):
		h.sendMessage(chatID, "❌ Terlalu banyak percobaan. Coba lagi dalam satu jam.")
	case errors.Is(err, common.ErrWrongPassword):
		h.sendMessage(chatID, "❌ Kata sandi salah.")
	default:
		log.WithError(err).WithField("user_id", userID).Error("login admin gagal")
		h.sendMessage(chatID, "❌ Terjadi kesalahan saat login")
	}
}

// HandlePurge processes /bersihkan: deletes all pre-challenge data.
func (h *Handler) HandlePurge(ctx context.Context, chatID, userID int64) {
	if !h.service.IsAuthenticated(ctx, userID) {
		h.sendMessage(chatID, "❌ Butuh sesi admin aktif. Gunakan /login <kata sandi> dulu.")
		return
	}

	report, err := h.service.PurgePreChallengeData(ctx)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("pembersihan data gagal")
		h.sendMessage(chatID, "❌ Pembersihan data gagal, lihat log")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf(
		"🧹 Pembersihan selesai.\n\nPeserta diproses: %d\nCheck-in dihapus: %d\nJawaban kuis dihapus: %d\n\nStreak basi di-reset dan semua lencana dihapus; lencana akan terbuka kembali otomatis pada setoran berikutnya.",
		report.Participants, report.CheckinsDeleted, report.QuizzesDeleted,
	))
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
