// Package app provides the application bootstrap and runtime orchestration.
//
// The App type wires together the signature store, the Telegram bot and the
// HTTP server, and runs the bot in one of two modes:
//
//   - Webhook mode: updates arrive over HTTPS at a secret path served by the
//     health server (deployed environments)
//   - Polling mode: updates arrive over long polling (APP_ENV=local)
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-signature-bot/internal/bot"
	"github.com/lueurxax/telegram-signature-bot/internal/platform/config"
	"github.com/lueurxax/telegram-signature-bot/internal/platform/observability"
	"github.com/lueurxax/telegram-signature-bot/internal/signature"
	db "github.com/lueurxax/telegram-signature-bot/internal/storage"
)

// App holds the application dependencies and runs the selected mode.
type App struct {
	cfg      *config.Config
	database *db.DB
	store    *signature.Store
	bot      *bot.Bot
	logger   *zerolog.Logger
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, database *db.DB, logger *zerolog.Logger) (*App, error) {
	store := signature.NewStore(database, logger)

	b, err := bot.New(cfg, store, logger)
	if err != nil {
		return nil, fmt.Errorf("bot initialization failed: %w", err)
	}

	return &App{
		cfg:      cfg,
		database: database,
		store:    store,
		bot:      b,
		logger:   logger,
	}, nil
}

// Run loads the signature mirror and serves updates until the context is
// cancelled. A store load failure is returned as-is so the caller can treat
// it as fatal; starting with an empty mirror would silently stop signing
// posts for already configured channels.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.Load(ctx); err != nil {
		return err
	}

	if a.cfg.IsLocal() {
		return a.runPolling(ctx)
	}

	return a.runWebhook(ctx)
}

func (a *App) runPolling(ctx context.Context) error {
	if err := a.bot.DeleteWebhook(); err != nil {
		return err
	}

	server := observability.NewServer(a.database, a.cfg.HealthPort, a.logger)

	go func() {
		if err := server.Start(ctx); err != nil {
			a.logger.Error().Err(err).Msg("health check server error")
		}
	}()

	return a.bot.Run(ctx)
}

func (a *App) runWebhook(ctx context.Context) error {
	if err := a.bot.RegisterWebhook(); err != nil {
		return err
	}

	server := observability.NewServerWithWebhook(a.database, a.cfg.HealthPort, a.bot.WebhookHandler(), a.logger)

	return server.Start(ctx)
}
