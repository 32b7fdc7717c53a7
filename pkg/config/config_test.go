package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("unexpected listen address %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("unexpected write timeout %s", cfg.Server.WriteTimeout)
	}
	if cfg.OpenRouter.BaseURL != DefaultBaseURL {
		t.Errorf("unexpected base URL %q", cfg.OpenRouter.BaseURL)
	}
	if cfg.OpenRouter.APIKey != "" {
		t.Errorf("default config must not carry a credential, got %q", cfg.OpenRouter.APIKey)
	}
	if cfg.Catalog.RefreshSchedule != DefaultRefreshSchedule {
		t.Errorf("unexpected refresh schedule %q", cfg.Catalog.RefreshSchedule)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("metrics must be enabled by default")
	}
	if cfg.Telemetry.Metrics.Namespace != DefaultNamespace {
		t.Errorf("unexpected namespace %q", cfg.Telemetry.Metrics.Namespace)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "0.0.0.0:9090"
  write_timeout: 90s
openrouter:
  api_key: "sk-or-file"
  timeout: 45s
catalog:
  refresh_schedule: "@every 30m"
telemetry:
  logging:
    level: debug
    format: json
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("unexpected listen address %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.WriteTimeout != 90*time.Second {
		t.Errorf("unexpected write timeout %s", cfg.Server.WriteTimeout)
	}
	if cfg.OpenRouter.APIKey != "sk-or-file" {
		t.Errorf("unexpected api key %q", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Timeout != 45*time.Second {
		t.Errorf("unexpected timeout %s", cfg.OpenRouter.Timeout)
	}
	if cfg.Catalog.RefreshSchedule != "@every 30m" {
		t.Errorf("unexpected schedule %q", cfg.Catalog.RefreshSchedule)
	}
	if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("unexpected logging config %+v", cfg.Telemetry.Logging)
	}

	// Unset fields are filled with defaults.
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("read timeout default not applied, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.OpenRouter.BaseURL != DefaultBaseURL {
		t.Errorf("base URL default not applied, got %q", cfg.OpenRouter.BaseURL)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("metrics default-on not applied")
	}
}

func TestLoadConfigMetricsExplicitlyDisabled(t *testing.T) {
	path := writeConfigFile(t, `
telemetry:
  metrics:
    enabled: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("explicit enabled: false was overridden")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a map")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad listen address",
			content: "server:\n  listen_address: \"no-port\"\n",
		},
		{
			name:    "bad base URL",
			content: "openrouter:\n  base_url: \"not a url\"\n",
		},
		{
			name:    "bad log level",
			content: "telemetry:\n  logging:\n    level: shout\n",
		},
		{
			name:    "bad log format",
			content: "telemetry:\n  logging:\n    format: xml\n",
		},
		{
			name:    "bad metrics path",
			content: "telemetry:\n  metrics:\n    path: metrics\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("expected validation error for:\n%s", tt.content)
			}
		})
	}
}

func TestLoadConfigWithEnvOverridesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("missing file must fall back to defaults: %v", err)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("expected default listen address, got %q", cfg.Server.ListenAddress)
	}
}

func TestLoadConfigWithEnvOverridesUnreadableFileIsFatal(t *testing.T) {
	// A present-but-broken file must not be silently replaced by defaults.
	path := writeConfigFile(t, "server: [broken")

	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Fatal("expected an error for a malformed existing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "127.0.0.1:8080"
openrouter:
  api_key: "sk-or-file"
`)

	t.Setenv("PROMPTDECK_SERVER_LISTEN_ADDRESS", "0.0.0.0:3000")
	t.Setenv("PROMPTDECK_OPENROUTER_TIMEOUT", "90s")
	t.Setenv("PROMPTDECK_CATALOG_REFRESH_SCHEDULE", "@every 5m")
	t.Setenv("PROMPTDECK_TELEMETRY_LOGGING_LEVEL", "debug")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-env")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:3000" {
		t.Errorf("listen address override not applied, got %q", cfg.Server.ListenAddress)
	}
	if cfg.OpenRouter.Timeout != 90*time.Second {
		t.Errorf("timeout override not applied, got %s", cfg.OpenRouter.Timeout)
	}
	if cfg.Catalog.RefreshSchedule != "@every 5m" {
		t.Errorf("schedule override not applied, got %q", cfg.Catalog.RefreshSchedule)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("log level override not applied, got %q", cfg.Telemetry.Logging.Level)
	}

	// The environment credential beats the file credential.
	if cfg.OpenRouter.APIKey != "sk-or-env" {
		t.Errorf("OPENROUTER_API_KEY did not take precedence, got %q", cfg.OpenRouter.APIKey)
	}
}

func TestEnvOverrideValidationStillApplies(t *testing.T) {
	path := writeConfigFile(t, "")

	t.Setenv("PROMPTDECK_SERVER_LISTEN_ADDRESS", "no-port-here")

	_, err := LoadConfigWithEnvOverrides(path)
	if err == nil {
		t.Fatal("expected validation to reject a bad environment override")
	}
	if !strings.Contains(err.Error(), "listen_address") {
		t.Errorf("error does not name the bad field: %v", err)
	}
}

func TestValidateTimeouts(t *testing.T) {
	cfg := Default()
	cfg.OpenRouter.Timeout = 0
	if err := Validate(cfg); err == nil {
		t.Error("expected error for zero client timeout")
	}

	cfg = Default()
	cfg.Server.ReadTimeout = -time.Second
	if err := Validate(cfg); err == nil {
		t.Error("expected error for negative server timeout")
	}
}
