// Package filters decides which chats and users the bot serves.
package filters

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/features/participants"
)

// ChatFilter allows messages from the community group chat and private chats
// of users who are members of that group.
type ChatFilter struct {
	communityChatID int64
	participants    *participants.Service
	bot             *tgbotapi.BotAPI
}

func NewChatFilter(communityChatID int64, participantService *participants.Service, bot *tgbotapi.BotAPI) *ChatFilter {
	return &ChatFilter{
		communityChatID: communityChatID,
		participants:    participantService,
		bot:             bot,
	}
}

func (f *ChatFilter) CheckAccess(ctx context.Context, message *tgbotapi.Message) bool {
	if message == nil || message.Chat == nil {
		log.WithField("component", "ChatFilter").Warn("nil message/chat")
		return false
	}
	if message.From == nil {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Warn("nil message.From (pesan service/channel?)")
		return false
	}
	if f.communityChatID == 0 {
		log.WithField("component", "ChatFilter").Error("communityChatID is 0 (config bug)")
		return false
	}

	chatID := message.Chat.ID
	userID := message.From.ID

	logger := log.WithFields(log.Fields{
		"component":         "ChatFilter",
		"chat_id":           chatID,
		"chat_type":         message.Chat.Type,
		"user_id":           userID,
		"community_chat_id": f.communityChatID,
	})

	// 1) The community group chat itself.
	if chatID == f.communityChatID {
		logger.Debug("allow: community chat")
		return true
	}

	// 2) Private chat: check the database first, it is the fast path.
	if message.Chat.IsPrivate() {
		p, err := f.participants.GetByUserID(ctx, userID)
		if err != nil {
			logger.WithError(err).Error("cek peserta gagal (db)")
			return false
		}
		if p != nil {
			logger.Debug("allow: private (enrolled participant)")
			return true
		}

		// 2.1) Unknown in the database: ask Telegram whether the user is a
		// member of the community chat and backfill on success.
		cm, err := f.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				ChatID: f.communityChatID,
				UserID: userID,
			},
		})
		if err != nil {
			logger.WithError(err).Error("cek peserta gagal (telegram GetChatMember)")
			return false
		}

		switch cm.Status {
		case "creator", "administrator", "member", "restricted":
			if err := f.participants.EnsureParticipant(
				ctx, userID,
				message.From.UserName,
				message.From.FirstName,
				message.From.LastName,
			); err != nil {
				logger.WithError(err).Warn("gagal backfill peserta ke DB (tetap diizinkan)")
			}
			logger.WithField("tg_status", cm.Status).Info("allow: private (telegram member, backfilled)")
			return true

		default:
			logger.WithField("tg_status", cm.Status).Info("deny: private (bukan anggota chat)")
			msg := tgbotapi.NewMessage(chatID, "❌ Bot ini hanya melayani anggota grup komunitas tantangan")
			if _, sendErr := f.bot.Send(msg); sendErr != nil {
				logger.WithError(sendErr).Warn("gagal mengirim pesan penolakan")
			}
			return false
		}
	}

	// 3) Any other chat is ignored.
	logger.Info("deny: bukan chat komunitas dan bukan DM")
	return false
}
