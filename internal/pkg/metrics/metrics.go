// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the notification relay.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics tracks request volume and latency per route.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewServerMetrics registers and returns the HTTP server metrics.
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocery",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "grocery",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// RelayMetrics tracks the outbox relay's publish outcomes.
type RelayMetrics struct {
	Published prometheus.Counter
	Failed    prometheus.Counter
}

// NewRelayMetrics registers and returns the relay metrics.
func NewRelayMetrics(service string) *RelayMetrics {
	published := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery",
		Subsystem: service,
		Name:      "outbox_published_total",
		Help:      "Notifications successfully published to the broker.",
	})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery",
		Subsystem: service,
		Name:      "outbox_publish_failures_total",
		Help:      "Notification publish attempts that failed.",
	})

	prometheus.MustRegister(published, failed)
	return &RelayMetrics{Published: published, Failed: failed}
}

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
