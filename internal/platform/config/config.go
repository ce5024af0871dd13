package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrWebhookBaseURLRequired indicates webhook mode was selected without a public base URL.
var ErrWebhookBaseURLRequired = errors.New("WEBHOOK_BASE_URL is required when APP_ENV is not local")

type Config struct {
	AppEnv             string `env:"APP_ENV" envDefault:"local"`
	PostgresDSN        string `env:"POSTGRES_DSN,required"`
	BotToken           string `env:"BOT_TOKEN,required"`
	WebhookSecretToken string `env:"WEBHOOK_SECRET_TOKEN,required"`
	// WebhookBaseURL is the public https origin Telegram delivers updates to.
	// The secret token is appended as the path, so the full endpoint stays unguessable.
	WebhookBaseURL string  `env:"WEBHOOK_BASE_URL"`
	HealthPort     int     `env:"HEALTH_PORT" envDefault:"8080"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"25"`

	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"4"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"1"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	if !cfg.IsLocal() && cfg.WebhookBaseURL == "" {
		return nil, ErrWebhookBaseURLRequired
	}

	return cfg, nil
}

// IsLocal reports whether the bot should run in long-polling mode
// instead of registering a webhook.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}
