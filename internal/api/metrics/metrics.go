// Package metrics defines and registers all custom Prometheus metrics for the
// fruito storefront frontend. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fruito"

// ── Backend gateway metrics ───────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the remote backend API.
// Labels:
//   - operation: "signup", "login_user", "login_admin", "list_products", "create_product"
//   - outcome:   "success", "rejected" (non-2xx), "transport_error",
//     "malformed" (2xx with an unparseable body)
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend API calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// BackendRequestDuration measures how long a single backend call takes,
// transport time included.
// Label:
//   - operation: same values as BackendRequestsTotal
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API calls from request start to body read.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionDecodeFailuresTotal counts stored user payloads that were no longer
// valid JSON and were silently treated as absent.
var SessionDecodeFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_decode_failures_total",
		Help:      "Total number of corrupt session payloads degraded to guest.",
	},
)

// LoginsTotal counts login attempts that reached the backend.
// Labels:
//   - kind:    "user" or "admin"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// ProductsCreatedTotal counts products successfully created through the admin
// dashboard.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created via the admin dashboard.",
	},
)
