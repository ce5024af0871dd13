package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lueurxax/telegram-signature-bot/internal/platform/observability"
)

const (
	statusAdministrator = "administrator"
	statusCreator       = "creator"
)

// isChannelAdmin reports whether the user is an administrator or creator of
// the channel. Fail closed: any lookup failure, including an unparseable
// channel id, counts as not admin.
func (b *Bot) isChannelAdmin(channelID string, userID int64) bool {
	chatID, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		b.logger.Warn().Str("channel_id", channelID).Msg("invalid channel id in admin check")
		observability.AdminChecks.WithLabelValues("denied").Inc()

		return false
	}

	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("channel_id", channelID).Int64("user_id", userID).Msg("failed to verify admin")
		observability.AdminChecks.WithLabelValues("denied").Inc()

		return false
	}

	if member.Status != statusAdministrator && member.Status != statusCreator {
		observability.AdminChecks.WithLabelValues("denied").Inc()
		return false
	}

	observability.AdminChecks.WithLabelValues("granted").Inc()

	return true
}
