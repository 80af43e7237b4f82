// Package quiz — handlers.go renders the /quiz and /jawab commands.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/common"
)

// optionLetters labels the options a..d in the rendered question.
const optionLetters = "abcdefgh"

// Handler handles quiz commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates a quiz handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleQuiz renders today's question set.
func (h *Handler) HandleQuiz(ctx context.Context, chatID, userID int64) {
	dq, sheet, err := h.service.TodayQuiz(ctx, userID)
	if err != nil {
		h.replyError(chatID, userID, err)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📺 %s\n%s\n\n", dq.VideoTitle, dq.VideoURL))
	for i, q := range dq.Questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Text))
		for j, opt := range q.Options {
			sb.WriteString(fmt.Sprintf("   %c) %s\n", optionLetters[j], opt))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Jawab dengan: /jawab b d\n")
	sb.WriteString("Tanda - untuk melewati pertanyaan. Benar +10, salah +5.")

	if sheet != nil {
		sb.WriteString(fmt.Sprintf("\n\n✅ Kamu sudah menjawab hari ini (skor %d). Menjawab lagi menggantikan jawaban lama.", sheet.QuizScore))
	}

	h.sendMessage(chatID, sb.String())
}

// HandleAnswer parses an answer sheet like "b d" or "a -" and submits it.
func (h *Handler) HandleAnswer(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		h.sendMessage(chatID, "Format: /jawab <jawaban per soal>, contoh: /jawab b d")
		return
	}

	selections := make([]*int, len(args))
	for i, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if arg == "-" {
			continue
		}
		if len(arg) != 1 || strings.IndexByte(optionLetters, arg[0]) < 0 {
			h.sendMessage(chatID, fmt.Sprintf("Jawaban %q tidak dikenal, gunakan huruf pilihan (a, b, ...) atau -", arg))
			return
		}
		idx := strings.IndexByte(optionLetters, arg[0])
		selections[i] = &idx
	}

	result, err := h.service.Submit(ctx, userID, selections)
	if err != nil {
		h.replyError(chatID, userID, err)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📝 Quiz tersimpan! Skor quiz: %d poin\n", result.Sheet.QuizScore))
	if len(result.NewBadges) > 0 {
		sb.WriteString(fmt.Sprintf("🎉 Lencana baru: %s!\n", strings.Join(result.NewBadges, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Total poin: %d", result.TotalScore))
	h.sendMessage(chatID, sb.String())
}

func (h *Handler) replyError(chatID, userID int64, err error) {
	switch {
	case errors.Is(err, common.ErrNoQuizToday),
		errors.Is(err, common.ErrOutsideChallenge),
		errors.Is(err, common.ErrAnswerCount):
		h.sendMessage(chatID, "⚠️ "+err.Error())
	default:
		log.WithError(err).WithField("user_id", userID).Error("quiz gagal")
		h.sendMessage(chatID, "❌ Terjadi kesalahan, coba lagi nanti")
	}
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("gagal mengirim pesan")
	}
}
