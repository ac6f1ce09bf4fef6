package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records conversion and HTTP metrics on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors, including the Go runtime collector.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		conversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numwords_conversions_total",
				Help: "Total number of conversions by operation and result code",
			},
			[]string{"operation", "status"},
		),
		conversionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numwords_conversion_duration_microseconds",
				Help:    "Conversion duration in microseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"operation"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numwords_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numwords_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// ObserveConversion implements handlers.Recorder.
func (m *Metrics) ObserveConversion(operation, status string, elapsed time.Duration) {
	m.conversionsTotal.WithLabelValues(operation, status).Inc()
	m.conversionDuration.WithLabelValues(operation).Observe(float64(elapsed.Microseconds()))
}

// ObserveRequest implements middleware.Observer.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
