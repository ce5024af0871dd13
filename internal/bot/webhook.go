package bot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lueurxax/telegram-signature-bot/internal/platform/observability"
)

// RegisterWebhook points Telegram at the bot's update endpoint. The secret
// token doubles as the URL path and as the shared-secret header Telegram
// attaches to every delivery.
func (b *Bot) RegisterWebhook() error {
	webhookURL := b.cfg.WebhookBaseURL + "/" + b.cfg.WebhookSecretToken

	params := tgbotapi.Params{
		"url":          webhookURL,
		"secret_token": b.cfg.WebhookSecretToken,
	}

	if _, err := b.client.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	b.logger.Info().Str("url", b.cfg.WebhookBaseURL).Msg("Webhook registered")

	return nil
}

// DeleteWebhook removes any registered webhook. Called before switching to
// long polling, which Telegram refuses while a webhook is active.
func (b *Bot) DeleteWebhook() error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}

	return nil
}

// WebhookHandler returns the HTTP handler for inbound updates. It accepts
// POSTs at the secret path only; anything else is a 404.
func (b *Bot) WebhookHandler() http.Handler {
	return &webhookHandler{bot: b, path: "/" + b.cfg.WebhookSecretToken}
}

type webhookHandler struct {
	bot  *Bot
	path string
}

func (h *webhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != h.path {
		h.respond(w, http.StatusNotFound, "Not Found")
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.bot.logger.Error().Err(err).Msg("failed to decode webhook update")
		h.respond(w, http.StatusInternalServerError, "Error")

		return
	}

	h.bot.Dispatch(r.Context(), &update)
	h.respond(w, http.StatusOK, "OK")
}

func (h *webhookHandler) respond(w http.ResponseWriter, status int, body string) {
	observability.WebhookRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}
