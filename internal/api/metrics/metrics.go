// Package metrics defines and registers all custom Prometheus metrics for the
// task management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "task_api"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "not_found", or "unauthorized"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenPairsIssuedTotal counts minted access+refresh pairs.
// Label:
//   - trigger: "login" or "refresh"
var TokenPairsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_pairs_issued_total",
		Help:      "Total number of token pairs issued, by trigger.",
	},
	[]string{"trigger"},
)

// AuthRejectionsTotal counts requests rejected by the bearer-token guard.
// Labels:
//   - class: "access" or "refresh"
//   - reason: "missing", "invalid", or "expired"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before reaching a handler.",
	},
	[]string{"class", "reason"},
)
