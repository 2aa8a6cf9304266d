// Package metrics defines and registers the Prometheus metrics of the
// transfer client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transfer"

// Outcome label values for ClientRequestsTotal.
const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeInvalidInput   = "invalid_input"
)

// ── Client metrics ────────────────────────────────────────────────────────────

// ClientRequestsTotal counts API client calls.
// Labels:
//   - op: client operation (e.g. "login", "get_bookings")
//   - outcome: one of the Outcome* constants
var ClientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of API client calls, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// ClientRequestDuration measures the network round trip of a client call.
var ClientRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_request_duration_seconds",
		Help:      "Duration of API client round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionWritesTotal counts persisted session mutations.
// Labels:
//   - backend: "memory", "file", "redis" or "mongo"
//   - action: "set" or "clear"
var SessionWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_writes_total",
		Help:      "Total number of session store writes, by backend and action.",
	},
	[]string{"backend", "action"},
)
