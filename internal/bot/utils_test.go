package bot

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "github.com/lueurxax/telegram-signature-bot/internal/core/errors"
)

func TestNormalizeChannelID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"24315194535", "-10024315194535"},
		{"-10024315194535", "-10024315194535"},
		{"  24315194535  ", "-10024315194535"},
		{"-1001234567890", "-1001234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeChannelID(tt.input); got != tt.want {
				t.Errorf("normalizeChannelID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestChannelIDFromMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     tgbotapi.Message
		want    string
		wantErr bool
	}{
		{
			name: "forward origin wins",
			msg:  tgbotapi.Message{ForwardFromChat: &tgbotapi.Chat{ID: -1001234}, Text: "999"},
			want: "-1001234",
		},
		{
			name: "text id normalized",
			msg:  tgbotapi.Message{Text: "24315194535"},
			want: "-10024315194535",
		},
		{
			name:    "nothing derivable",
			msg:     tgbotapi.Message{},
			wantErr: true,
		},
		{
			name:    "whitespace only text",
			msg:     tgbotapi.Message{Text: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := channelIDFromMessage(&tt.msg)

			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrNoChannelID) {
					t.Fatalf("channelIDFromMessage() err = %v, want ErrNoChannelID", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("channelIDFromMessage() unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("channelIDFromMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsForwarded(t *testing.T) {
	tests := []struct {
		name string
		msg  tgbotapi.Message
		want bool
	}{
		{"plain post", tgbotapi.Message{Text: "hi"}, false},
		{"forwarded from chat", tgbotapi.Message{ForwardFromChat: &tgbotapi.Chat{ID: 1}}, true},
		{"forwarded from user", tgbotapi.Message{ForwardFrom: &tgbotapi.User{ID: 1}}, true},
		{"forwarded from hidden sender", tgbotapi.Message{ForwardSenderName: "Someone"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isForwarded(&tt.msg); got != tt.want {
				t.Errorf("isForwarded() = %v, want %v", got, tt.want)
			}
		})
	}
}
