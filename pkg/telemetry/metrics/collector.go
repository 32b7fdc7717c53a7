package metrics

import (
	"promptdeck-hq/promptdeck/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector is the orchestrator for all Prometheus metrics in PromptDeck.
// It manages registration and provides a unified interface for recording
// metrics across the web surface and the outbound client.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Page (inbound HTTP) metrics
	pageMetrics *PageMetrics

	// Upstream (outbound OpenRouter) metrics
	upstreamMetrics *UpstreamMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// private registry is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return &Collector{
		config:          cfg,
		registry:        registry,
		pageMetrics:     NewPageMetrics(cfg, registry),
		upstreamMetrics: NewUpstreamMetrics(cfg, registry),
	}
}

// Page returns the inbound request metrics.
func (c *Collector) Page() *PageMetrics {
	return c.pageMetrics
}

// Upstream returns the outbound client metrics.
func (c *Collector) Upstream() *UpstreamMetrics {
	return c.upstreamMetrics
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
