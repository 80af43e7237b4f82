// Package checkin — handlers.go renders the /checkin and /aktivitas commands.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// Handler handles check-in commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a check-in handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleActivities renders the activity catalog with point values and the
// dates currently open for check-in.
func (h *Handler) HandleActivities(chatID int64) {
	var sb strings.Builder
	sb.WriteString("📋 Aktivitas Mutaba'ah\n\n")
	for _, a := range Catalog {
		sb.WriteString(fmt.Sprintf("%s %s — %d poin\n    id: %s\n", a.Icon, a.Label, a.Points, a.ID))
	}

	sb.WriteString("\nCara check-in: /checkin <id> <id> ...\n")
	sb.WriteString("Tambah catatan: /checkin sedekah:10rb\n")
	sb.WriteString("Isi hari sebelumnya: /checkin kemarin ngaji  atau  /checkin 2026-02-19 ngaji\n")

	dates := h.service.Policy().EditableDates(h.service.Today())
	if len(dates) > 0 {
		sb.WriteString("\nTanggal yang masih bisa diisi: ")
		parts := make([]string, len(dates))
		for i, d := range dates {
			parts[i] = common.FormatDate(d)
		}
		sb.WriteString(strings.Join(parts, ", "))
	}

	h.sendMessage(chatID, sb.String())
}

// HandleCheckin parses and submits one check-in.
//
// Argument forms:
//
//	/checkin ngaji sedekah            — today's check-in
//	/checkin kemarin ngaji            — backfill yesterday
//	/checkin 2026-02-19 ngaji         — backfill an explicit date
//	/checkin sedekah:10rb             — activity with a note
func (h *Handler) HandleCheckin(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		h.sendMessage(chatID, "Sebutkan aktivitasnya: /checkin ngaji sedekah\nLihat daftar id: /aktivitas")
		return
	}

	date := h.service.Today()
	rest := args
	switch {
	case strings.EqualFold(args[0], "kemarin"):
		date = date.AddDate(0, 0, -1)
		rest = args[1:]
	default:
		if d, err := common.ParseDate(args[0]); err == nil {
			date = d
			rest = args[1:]
		}
	}

	var (
		ids   []string
		notes = map[string]string{}
	)
	for _, arg := range rest {
		id, note, hasNote := strings.Cut(arg, ":")
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := LookupActivity(id); !ok {
			h.sendMessage(chatID, fmt.Sprintf("Aktivitas %q tidak dikenal. Lihat daftar id: /aktivitas", id))
			return
		}
		ids = append(ids, id)
		if hasNote && note != "" {
			notes[id] = note
		}
	}

	result, err := h.service.Submit(ctx, userID, date, ids, notes)
	if err != nil {
		h.replyError(chatID, userID, err)
		return
	}

	h.sendMessage(chatID, formatResult(date, result))
}

// formatResult builds the one-time reply: day score, streak, and anything
// earned by exactly this submission.
func formatResult(date time.Time, r *Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✅ Check-in %s tersimpan!\n\n", common.FormatDate(date)))
	for _, id := range r.Checkin.Activities {
		if a, ok := LookupActivity(id); ok {
			sb.WriteString(fmt.Sprintf("%s %s (+%d)\n", a.Icon, a.Label, a.Points))
		}
	}
	sb.WriteString(fmt.Sprintf("\nSkor hari itu: %d poin\n", r.Checkin.DailyScore))
	sb.WriteString(fmt.Sprintf("🔥 Streak: %d hari\n", r.CurrentStreak))
	if r.BonusPoints > 0 {
		sb.WriteString(fmt.Sprintf("🎁 Bonus streak: +%d poin!\n", r.BonusPoints))
	}
	if len(r.NewBadges) > 0 {
		sb.WriteString(fmt.Sprintf("🎉 Lencana baru: %s!\n", strings.Join(r.NewBadges, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\nTotal poin: %d", r.TotalScore))
	return sb.String()
}

// replyError maps policy sentinels to readable replies; anything else is an
// internal failure.
func (h *Handler) replyError(chatID, userID int64, err error) {
	switch {
	case errors.Is(err, common.ErrNoActivities),
		errors.Is(err, common.ErrFutureDate),
		errors.Is(err, common.ErrOutsideChallenge),
		errors.Is(err, common.ErrEditWindowClosed):
		h.sendMessage(chatID, "⚠️ "+err.Error())
	default:
		log.WithError(err).WithField("user_id", userID).Error("check-in gagal")
		h.sendMessage(chatID, "❌ Terjadi kesalahan, coba lagi nanti")
	}
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
