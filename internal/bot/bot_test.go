package bot

import (
	"context"
	"os"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lueurxax/telegram-signature-bot/internal/platform/config"
	"github.com/lueurxax/telegram-signature-bot/internal/signature"
)

// fakeAPI records every outbound call and lets tests inject failures per
// call family.
type fakeAPI struct {
	calls []tgbotapi.Chattable

	editErr   error
	deleteErr error
	sendErr   error

	memberStatus string
	memberErr    error
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.calls = append(f.calls, c)

	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}

	return tgbotapi.Message{MessageID: 99}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.calls = append(f.calls, c)

	switch c.(type) {
	case tgbotapi.EditMessageTextConfig, tgbotapi.EditMessageCaptionConfig:
		if f.editErr != nil {
			return nil, f.editErr
		}
	case tgbotapi.DeleteMessageConfig:
		if f.deleteErr != nil {
			return nil, f.deleteErr
		}
	}

	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetChatMember(_ tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if f.memberErr != nil {
		return tgbotapi.ChatMember{}, f.memberErr
	}

	return tgbotapi.ChatMember{Status: f.memberStatus}, nil
}

// sentTexts returns the text of every plain message sent, in order.
func (f *fakeAPI) sentTexts() []string {
	var texts []string

	for _, c := range f.calls {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			texts = append(texts, m.Text)
		}
	}

	return texts
}

type stubRepo struct {
	records map[string]string
	saveErr error
	delErr  error
}

func (r *stubRepo) LoadSignatures(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(r.records))
	for k, v := range r.records {
		out[k] = v
	}

	return out, nil
}

func (r *stubRepo) SaveSignature(_ context.Context, channelID, sig string) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	r.records[channelID] = sig

	return nil
}

func (r *stubRepo) DeleteSignature(_ context.Context, channelID string) error {
	if r.delErr != nil {
		return r.delErr
	}

	delete(r.records, channelID)

	return nil
}

func testLogger() *zerolog.Logger {
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return &logger
}

func newTestBot(t *testing.T, api *fakeAPI, repo *stubRepo) *Bot {
	t.Helper()

	if repo.records == nil {
		repo.records = map[string]string{}
	}

	logger := testLogger()
	store := signature.NewStore(repo, logger)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("store.Load() error = %v", err)
	}

	return &Bot{
		cfg:     &config.Config{WebhookSecretToken: "hook-secret"},
		store:   store,
		pending: newPendingTracker(),
		api:     api,
		limiter: rate.NewLimiter(rate.Inf, 0),
		logger:  logger,
	}
}
