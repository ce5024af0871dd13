package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "github.com/lueurxax/telegram-signature-bot/internal/core/errors"
)

// normalizeChannelID trims the input and applies Telegram's channel id
// prefix convention: bare numeric ids get the -100 prefix, ids already
// carrying it are unchanged.
func normalizeChannelID(raw string) string {
	id := strings.TrimSpace(raw)
	if !strings.HasPrefix(id, channelIDPrefix) {
		id = channelIDPrefix + id
	}

	return id
}

// channelIDFromMessage derives the target channel id from a follow-up
// message: the forward origin if the message was forwarded from a channel,
// otherwise the message text normalized to the channel id convention.
// Returns ErrNoChannelID when neither is present.
func channelIDFromMessage(msg *tgbotapi.Message) (string, error) {
	if msg.ForwardFromChat != nil && msg.ForwardFromChat.ID != 0 {
		return strconv.FormatInt(msg.ForwardFromChat.ID, 10), nil
	}

	if strings.TrimSpace(msg.Text) != "" {
		return normalizeChannelID(msg.Text), nil
	}

	return "", apperrors.ErrNoChannelID
}

// isForwarded reports whether a channel post carries any forward-origin marker.
func isForwarded(post *tgbotapi.Message) bool {
	return post.ForwardFromChat != nil || post.ForwardFrom != nil || post.ForwardSenderName != ""
}
