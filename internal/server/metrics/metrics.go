// Package metrics defines the Prometheus metrics of the chat server.
// All metrics are registered with the default registry on package init and
// served by Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gophchat"

// MessagesAppendedTotal counts messages accepted into the log.
var MessagesAppendedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_appended_total",
		Help:      "Total number of messages appended to the log.",
	},
)

// LogTrimsTotal counts retention trims of the message log.
var LogTrimsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_trims_total",
		Help:      "Total number of times the message log was truncated by retention.",
	},
)

// LogLength tracks the current number of messages in the log.
var LogLength = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "log_length",
		Help:      "Current number of messages held in the log.",
	},
)

// UsersTotal tracks the number of registered users.
var UsersTotal = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users_total",
		Help:      "Current number of registered users.",
	},
)

// AuthAttemptsTotal counts credential operations.
// Labels:
//   - action: "register", "login" or "verify"
//   - result: "ok" or the error kind ("validation", "conflict", "auth", "transient", "unknown")
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential operations, by action and result.",
	},
	[]string{"action", "result"},
)

// HTTPRequestDuration measures request latency.
// Labels:
//   - route: the registered mux pattern
//   - status: the HTTP status code class, e.g. "2xx"
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "status"},
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
