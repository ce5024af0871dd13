package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lueurxax/telegram-signature-bot/internal/platform/observability"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.handleFollowUp(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	command := msg.Command()

	b.logger.Info().Str("command", command).Int64("user_id", msg.Chat.ID).Msg("Handling command")
	observability.CommandsHandled.WithLabelValues(command).Inc()

	switch command {
	case "start":
		b.reply(ctx, msg, msgWelcome)
	case "set_signature":
		b.handleSignatureCommand(ctx, msg, actionSet)
	case "change_signature":
		b.handleSignatureCommand(ctx, msg, actionChange)
	case "remove_signature":
		b.pending.Begin(msg.Chat.ID, pendingAction{kind: actionRemove})
		b.reply(ctx, msg, msgRemoveInstruction)
	default:
		b.reply(ctx, msg, msgUnknownCommand)
	}
}

// handleSignatureCommand starts a set or change flow. The signature argument
// is required; without it the user gets a usage reply and no state changes.
func (b *Bot) handleSignatureCommand(ctx context.Context, msg *tgbotapi.Message, kind actionKind) {
	sig := strings.TrimSpace(msg.CommandArguments())
	if sig == "" {
		if kind == actionSet {
			b.reply(ctx, msg, msgSetUsage)
		} else {
			b.reply(ctx, msg, msgChangeUsage)
		}

		return
	}

	b.pending.Begin(msg.Chat.ID, pendingAction{kind: kind, signature: sig})

	if kind == actionSet {
		b.reply(ctx, msg, msgSetInstruction)
	} else {
		b.reply(ctx, msg, msgChangeInstruction)
	}
}

// handleFollowUp resolves the target channel for a pending configuration
// action, verifies admin rights, and commits the mutation. The pending action
// survives only a missing channel id; every other outcome consumes it.
func (b *Bot) handleFollowUp(ctx context.Context, msg *tgbotapi.Message) {
	action, ok := b.pending.Get(msg.Chat.ID)
	if !ok {
		return
	}

	channelID, err := channelIDFromMessage(msg)
	if err != nil {
		// Pending action stays, so the user can retry without reissuing the command.
		b.reply(ctx, msg, msgProvideChannel)
		return
	}

	if !b.isChannelAdmin(channelID, msg.Chat.ID) {
		b.pending.Clear(msg.Chat.ID)
		b.reply(ctx, msg, msgNotAdmin)

		return
	}

	b.pending.Clear(msg.Chat.ID)

	switch action.kind {
	case actionRemove:
		if err := b.store.Remove(ctx, channelID); err != nil {
			b.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to remove signature")
			b.reply(ctx, msg, msgOperationFailed)

			return
		}

		b.reply(ctx, msg, fmt.Sprintf("Signature removed for channel %s", channelID))
	case actionSet, actionChange:
		if err := b.store.Set(ctx, channelID, action.signature); err != nil {
			b.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to save signature")
			b.reply(ctx, msg, msgOperationFailed)

			return
		}

		verb := "saved"
		if action.kind == actionChange {
			verb = "updated"
		}

		b.reply(ctx, msg, fmt.Sprintf("Signature %q %s for channel %s", action.signature, verb, channelID))
	}
}
