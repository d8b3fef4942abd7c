// Package metrics defines and registers all custom Prometheus metrics for
// the dispute-portal API. It is the single source of truth for metric
// names, labels, and help strings.
//
// promauto registers everything with the default registry at package init;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: the account role created ("consumer", "business", ...)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully created user accounts, by role.",
	},
	[]string{"role"},
)

// RegistrationFailuresTotal counts rejected registrations.
// Label:
//   - reason: "validation", "duplicate_email" or "internal"
var RegistrationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_failures_total",
		Help:      "Total number of rejected registration attempts, by reason.",
	},
	[]string{"reason"},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials", "suspended" or "internal".
//     The invalid_credentials bucket covers unknown email and wrong password
//     alike; the metric must not split them.
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SessionsIssuedTotal counts issued sessions.
// Label:
//   - strategy: "redis" or "jwt"
var SessionsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions issued, by persistence strategy.",
	},
	[]string{"strategy"},
)

// SessionLookupsTotal counts access-gate session resolutions.
// Label:
//   - result: "hit" (valid session) or "miss" (absent/expired/invalid)
var SessionLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_lookups_total",
		Help:      "Total number of session lookups by the access gate, by result.",
	},
	[]string{"result"},
)

// RulingCacheTotal counts rulings-directory cache decisions.
// Label:
//   - result: "hit" or "miss"
var RulingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ruling_cache_total",
		Help:      "Total number of rulings list cache checks, by result.",
	},
	[]string{"result"},
)
