package metrics

import (
	"time"

	"promptdeck-hq/promptdeck/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// PageMetrics tracks metrics for the inbound web surface.
//
// Metrics:
//   - promptdeck_page_requests_total: request count by method, path, status
//   - promptdeck_page_request_duration_seconds: request duration histogram
type PageMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPageMetrics creates and registers page metrics with the provided registry.
func NewPageMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *PageMetrics {
	pm := &PageMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "page_requests_total",
				Help:      "Total number of inbound HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "page_request_duration_seconds",
				Help:      "Duration of inbound HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(pm.requestsTotal, pm.requestDuration)
	return pm
}

// RecordRequest records metrics for a completed inbound request.
func (pm *PageMetrics) RecordRequest(method, path, status string, duration time.Duration) {
	pm.requestsTotal.WithLabelValues(method, path, status).Inc()
	pm.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
