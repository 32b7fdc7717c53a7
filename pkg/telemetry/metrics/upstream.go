package metrics

import (
	"time"

	"promptdeck-hq/promptdeck/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics tracks metrics for outbound OpenRouter calls.
//
// Metrics:
//   - promptdeck_upstream_completions_total: completion count by model, outcome
//     (outcome is "success", "demo", or "error")
//   - promptdeck_upstream_completion_duration_seconds: completion latency
//   - promptdeck_upstream_catalog_refreshes_total: catalog refresh count by result
type UpstreamMetrics struct {
	completionsTotal   *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	catalogRefreshes   *prometheus.CounterVec
}

// NewUpstreamMetrics creates and registers upstream metrics with the
// provided registry.
func NewUpstreamMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *UpstreamMetrics {
	um := &UpstreamMetrics{
		completionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "upstream_completions_total",
				Help:      "Total number of completion calls by model and outcome",
			},
			[]string{"model", "outcome"},
		),

		completionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "upstream_completion_duration_seconds",
				Help:      "Duration of completion calls in seconds",
				// Completions are slow; buckets span 100ms to ~102s.
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 11),
			},
			[]string{"model"},
		),

		catalogRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "upstream_catalog_refreshes_total",
				Help:      "Total number of model catalog refreshes by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(um.completionsTotal, um.completionDuration, um.catalogRefreshes)
	return um
}

// RecordCompletion records a completed (or failed) completion call.
func (um *UpstreamMetrics) RecordCompletion(model, outcome string, duration time.Duration) {
	um.completionsTotal.WithLabelValues(model, outcome).Inc()
	um.completionDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordCatalogRefresh records a model catalog refresh. Result is "remote"
// when the catalog came from the API and "fallback" when the built-in list
// was used.
func (um *UpstreamMetrics) RecordCatalogRefresh(result string) {
	um.catalogRefreshes.WithLabelValues(result).Inc()
}
