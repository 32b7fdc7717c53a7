package config

import "time"

// Config is the root configuration structure for PromptDeck.
type Config struct {
	// Server contains HTTP server configuration for the web front-end.
	Server ServerConfig `yaml:"server"`

	// OpenRouter contains configuration for the outbound API client.
	OpenRouter OpenRouterConfig `yaml:"openrouter"`

	// Catalog contains configuration for the model catalog refresh policy.
	Catalog CatalogConfig `yaml:"catalog"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response writes.
	// This bounds the whole inbound request, including the synchronous
	// outbound completion call performed while handling it.
	// Default: 120s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// OpenRouterConfig contains configuration for the OpenRouter client.
type OpenRouterConfig struct {
	// BaseURL is the API base URL.
	// Default: "https://openrouter.ai/api/v1"
	BaseURL string `yaml:"base_url"`

	// APIKey is the bearer credential. Empty selects demo mode for both
	// model listing and completion. The OPENROUTER_API_KEY environment
	// variable overrides this field.
	APIKey string `yaml:"api_key"`

	// Timeout is the outbound request timeout. Each completion is a single
	// synchronous attempt bounded by this duration.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`
}

// CatalogConfig contains configuration for the model catalog.
type CatalogConfig struct {
	// RefreshSchedule is a cron expression for periodic catalog refresh.
	// Empty disables scheduled refresh; the catalog is then fetched once
	// at startup and kept for the process lifetime.
	// Default: "@every 1h"
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the /metrics endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "promptdeck"
	Namespace string `yaml:"namespace"`
}
