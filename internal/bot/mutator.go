package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	apperrors "github.com/lueurxax/telegram-signature-bot/internal/core/errors"
	"github.com/lueurxax/telegram-signature-bot/internal/platform/observability"
	"github.com/lueurxax/telegram-signature-bot/internal/signature"
)

// handleChannelPost appends the channel's configured signature to a fresh
// post. In-place edit is attempted first; if the platform rejects it the post
// is deleted and resent with the signature, and if that fails too a plain
// apology goes to the channel.
func (b *Bot) handleChannelPost(ctx context.Context, post *tgbotapi.Message) {
	channelID := strconv.FormatInt(post.Chat.ID, 10)
	logger := b.logger.With().Str("channel_id", channelID).Int("message_id", post.MessageID).Logger()

	if isForwarded(post) {
		observability.PostsProcessed.WithLabelValues(observability.OutcomeSkipped).Inc()
		return
	}

	raw, ok := b.store.Get(channelID)
	if !ok {
		observability.PostsProcessed.WithLabelValues(observability.OutcomeSkipped).Inc()
		return
	}

	body, isCaption := postBody(post)
	if body == "" {
		observability.PostsProcessed.WithLabelValues(observability.OutcomeSkipped).Inc()
		return
	}

	// Idempotence guard: an edit-triggered re-delivery already carries the
	// signature and must not get a second copy.
	if strings.Contains(body, raw) {
		observability.PostsProcessed.WithLabelValues(observability.OutcomeSkipped).Inc()
		return
	}

	sig := signature.Parse(raw)

	var entities []tgbotapi.MessageEntity
	if isCaption {
		entities = post.CaptionEntities
	} else {
		entities = post.Entities
	}

	newBody, merged := signature.Append(body, entities, sig)

	err := b.editPost(ctx, post, newBody, merged, isCaption)
	if err == nil {
		logger.Info().Msg("Signature appended in place")
		observability.PostsProcessed.WithLabelValues(observability.OutcomeEdited).Inc()

		return
	}

	logger.Warn().Err(err).Msg("Edit rejected, falling back to delete and resend")

	if err := b.resendWithSignature(ctx, post, newBody, merged, isCaption); err != nil {
		if apperrors.Is(err, apperrors.ErrNotResendable) {
			// The original post is untouched, so the edit failure stands.
			logger.Warn().Msg("Post shape not covered by resend fallback, leaving original untouched")
			observability.PostsProcessed.WithLabelValues(observability.OutcomeFailed).Inc()

			return
		}

		logger.Error().Err(err).Msg("Fallback failed")
		b.apologize(ctx, post.Chat.ID, &logger)

		return
	}

	logger.Info().Msg("Post resent with signature")
	observability.PostsProcessed.WithLabelValues(observability.OutcomeResent).Inc()
}

// postBody returns the editable body of a post and whether it is a caption.
func postBody(post *tgbotapi.Message) (string, bool) {
	if post.Text != "" {
		return post.Text, false
	}

	return post.Caption, true
}

func (b *Bot) editPost(ctx context.Context, post *tgbotapi.Message, newBody string, entities []tgbotapi.MessageEntity, isCaption bool) error {
	if isCaption {
		edit := tgbotapi.NewEditMessageCaption(post.Chat.ID, post.MessageID, newBody)
		edit.CaptionEntities = entities

		_, err := b.request(ctx, edit)

		return err
	}

	edit := tgbotapi.NewEditMessageText(post.Chat.ID, post.MessageID, newBody)
	edit.Entities = entities

	_, err := b.request(ctx, edit)

	return err
}

// resendWithSignature deletes the original post and sends a replacement
// carrying the signature. Only text posts and photo posts with captions can
// be resent; other caption shapes return ErrNotResendable before anything is
// deleted, so a rejected edit does not destroy the post.
func (b *Bot) resendWithSignature(ctx context.Context, post *tgbotapi.Message, newBody string, entities []tgbotapi.MessageEntity, isCaption bool) error {
	if isCaption && len(post.Photo) == 0 {
		return apperrors.ErrNotResendable
	}

	if _, err := b.request(ctx, tgbotapi.NewDeleteMessage(post.Chat.ID, post.MessageID)); err != nil {
		return fmt.Errorf("delete original post: %w", err)
	}

	if isCaption {
		// Photo sizes come smallest first; resend with the largest resolution.
		photo := tgbotapi.NewPhoto(post.Chat.ID, tgbotapi.FileID(post.Photo[len(post.Photo)-1].FileID))
		photo.Caption = newBody
		photo.CaptionEntities = entities

		if _, err := b.send(ctx, photo); err != nil {
			return fmt.Errorf("resend photo post: %w", err)
		}

		return nil
	}

	message := tgbotapi.NewMessage(post.Chat.ID, newBody)
	message.Entities = entities

	if _, err := b.send(ctx, message); err != nil {
		return fmt.Errorf("resend text post: %w", err)
	}

	return nil
}

// apologize posts a plain failure notice to the channel. No further retry.
func (b *Bot) apologize(ctx context.Context, chatID int64, logger *zerolog.Logger) {
	if _, err := b.send(ctx, tgbotapi.NewMessage(chatID, msgApology)); err != nil {
		logger.Error().Err(err).Msg("Failed to send apology message")
	}

	observability.PostsProcessed.WithLabelValues(observability.OutcomeFailed).Inc()
}
