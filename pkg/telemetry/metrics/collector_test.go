package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"promptdeck-hq/promptdeck/pkg/config"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Path:      "/metrics",
		Namespace: "promptdeck",
	}
}

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	return rec.Body.String()
}

func TestCollectorIsolatedRegistries(t *testing.T) {
	// Two collectors must not collide; each carries a private registry.
	a := NewCollector(testConfig(), nil)
	b := NewCollector(testConfig(), nil)

	if a.Registry() == b.Registry() {
		t.Error("collectors share a registry")
	}
}

func TestPageMetricsExposition(t *testing.T) {
	c := NewCollector(testConfig(), nil)

	c.Page().RecordRequest("POST", "/", "200", 42*time.Millisecond)
	c.Page().RecordRequest("GET", "/", "200", time.Millisecond)
	c.Page().RecordRequest("GET", "/healthz", "200", time.Millisecond)

	body := scrape(t, c)

	for _, want := range []string{
		"promptdeck_page_requests_total",
		"promptdeck_page_request_duration_seconds",
		`method="POST"`,
		`path="/healthz"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestUpstreamMetricsExposition(t *testing.T) {
	c := NewCollector(testConfig(), nil)

	c.Upstream().RecordCompletion("openai/gpt-4o", "success", 2*time.Second)
	c.Upstream().RecordCompletion("openai/gpt-4o", "error", 100*time.Millisecond)
	c.Upstream().RecordCatalogRefresh("remote")
	c.Upstream().RecordCatalogRefresh("fallback")

	body := scrape(t, c)

	for _, want := range []string{
		"promptdeck_upstream_completions_total",
		"promptdeck_upstream_completion_duration_seconds",
		"promptdeck_upstream_catalog_refreshes_total",
		`model="openai/gpt-4o",outcome="success"`,
		`outcome="error"`,
		`result="remote"`,
		`result="fallback"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestCollectorIncludesRuntimeMetrics(t *testing.T) {
	c := NewCollector(testConfig(), nil)

	body := scrape(t, c)
	if !strings.Contains(body, "go_goroutines") {
		t.Error("runtime metrics missing from exposition")
	}
}
