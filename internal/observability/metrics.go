// Prometheus metric definitions for the studio platform API. Register is
// implicit through promauto; expose the default registry at /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// HTTPRequestsTotal counts completed HTTP requests.
// Labels: method, path (route pattern), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration observes request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// HTTPErrorsTotal counts requests that resolved to a domain error.
// Label: code (taxonomy code, e.g. NOT_FOUND).
var HTTPErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_errors_total",
		Help:      "Total number of requests that failed with a domain error.",
	},
	[]string{"code"},
)

// NotificationsTotal counts outbound chat-bot deliveries.
// Label: result ("sent", "failed", "skipped").
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of outbound notification attempts by result.",
	},
	[]string{"result"},
)
