// Package bot implements the Telegram-facing surface of the signature bot:
// the update dispatch loop, the configuration command flow, and the channel
// post mutation pipeline that appends signatures.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lueurxax/telegram-signature-bot/internal/platform/config"
	"github.com/lueurxax/telegram-signature-bot/internal/signature"
)

// telegramAPI is the subset of the Bot API client the handlers call. It is
// satisfied by *tgbotapi.BotAPI and faked in tests.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

type Bot struct {
	cfg     *config.Config
	store   *signature.Store
	pending *pendingTracker
	api     telegramAPI
	client  *tgbotapi.BotAPI
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

func New(cfg *config.Config, store *signature.Store, logger *zerolog.Logger) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("bot api init: %w", err)
	}

	return &Bot{
		cfg:     cfg,
		store:   store,
		pending: newPendingTracker(),
		api:     client,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1),
		logger:  logger,
	}, nil
}

// Run consumes updates via long polling. Used in local mode; deployed
// instances receive updates through the webhook handler instead.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds

	updates := b.client.GetUpdatesChan(u)

	b.logger.Info().Msg("Bot running in polling mode")

	for {
		select {
		case <-ctx.Done():
			b.client.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			b.Dispatch(ctx, &update)
		}
	}
}

// Dispatch routes one update to its handler: channel posts go to the
// mutation pipeline, direct messages to the command flow.
func (b *Bot) Dispatch(ctx context.Context, update *tgbotapi.Update) {
	switch {
	case update.ChannelPost != nil:
		b.handleChannelPost(ctx, update.ChannelPost)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// send delivers a message through the outbound rate limiter.
func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return tgbotapi.Message{}, fmt.Errorf("rate limiter: %w", err)
	}

	return b.api.Send(c)
}

// request performs a non-send API call through the outbound rate limiter.
func (b *Bot) request(ctx context.Context, c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	return b.api.Request(c)
}

// reply sends a plain-text reply to the chat the message came from.
// Delivery failures are logged, not surfaced.
func (b *Bot) reply(ctx context.Context, msg *tgbotapi.Message, text string) {
	if _, err := b.send(ctx, tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("failed to send reply")
	}
}
