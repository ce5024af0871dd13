package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signature_posts_processed_total",
		Help: "The total number of channel posts processed, by outcome",
	}, []string{"outcome"})

	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signature_commands_handled_total",
		Help: "The total number of configuration commands handled",
	}, []string{"command"})

	AdminChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signature_admin_checks_total",
		Help: "The total number of channel admin verifications, by result",
	}, []string{"result"})

	WebhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signature_webhook_requests_total",
		Help: "The total number of webhook HTTP requests, by status code",
	}, []string{"status"})

	SignaturesConfigured = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signature_channels_configured",
		Help: "Number of channels with a configured signature",
	})
)

// Post processing outcome labels.
const (
	OutcomeSkipped = "skipped"
	OutcomeEdited  = "edited"
	OutcomeResent  = "resent"
	OutcomeFailed  = "failed"
)
