package web

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"promptdeck-hq/promptdeck/pkg/catalog"
	"promptdeck-hq/promptdeck/pkg/markdown"
	"promptdeck-hq/promptdeck/pkg/providers"
	"promptdeck-hq/promptdeck/pkg/providers/openrouter"
	"promptdeck-hq/promptdeck/pkg/telemetry/metrics"
	"promptdeck-hq/promptdeck/pkg/web/middleware"
)

// Completer is the part of the OpenRouter client the page handler depends on.
type Completer interface {
	CompleteWithOutcome(ctx context.Context, prompt, modelID string) (string, openrouter.Outcome)
	DemoMode() bool
}

// PromptHandler serves the prompt page: GET renders the empty form, POST
// validates the submission, obtains a completion, and renders both panels.
type PromptHandler struct {
	catalog   *catalog.Catalog
	completer Completer
	upstream  *metrics.UpstreamMetrics
}

// NewPromptHandler creates the prompt page handler. upstream may be nil.
func NewPromptHandler(cat *catalog.Catalog, completer Completer, upstream *metrics.UpstreamMetrics) *PromptHandler {
	return &PromptHandler{
		catalog:   cat,
		completer: completer,
		upstream:  upstream,
	}
}

// pageData is the template context for the prompt page.
type pageData struct {
	Models        []providers.ModelDescriptor
	SelectedModel string
	Prompt        string
	FormError     string
	RawOutput     string

	// FormattedOutput is emitted without re-escaping; the markdown
	// renderer has already escaped everything user- or model-controlled.
	FormattedOutput template.HTML

	DemoMode bool
}

// ServeHTTP implements http.Handler.
func (h *PromptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, &pageData{
			Models:   h.catalog.Models(),
			DemoMode: h.completer.DemoMode(),
		})
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSubmit processes a form submission. Validation failures never reach
// the outbound client; client failures never reach the browser as errors,
// only as panel content.
func (h *PromptHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	data := &pageData{
		Models:        h.catalog.Models(),
		SelectedModel: r.PostFormValue("model"),
		Prompt:        r.PostFormValue("prompt"),
		DemoMode:      h.completer.DemoMode(),
	}

	if strings.TrimSpace(data.Prompt) == "" {
		data.FormError = "Please enter a prompt."
		h.render(w, data)
		return
	}

	if data.SelectedModel == "" || !h.catalog.Contains(data.SelectedModel) {
		data.FormError = "Please choose a model from the list."
		h.render(w, data)
		return
	}

	startTime := time.Now()
	raw, outcome := h.completer.CompleteWithOutcome(r.Context(), data.Prompt, data.SelectedModel)
	duration := time.Since(startTime)

	if h.upstream != nil {
		h.upstream.RecordCompletion(data.SelectedModel, string(outcome), duration)
	}

	slog.Info("completion handled",
		"model", data.SelectedModel,
		"outcome", string(outcome),
		"duration_ms", duration.Milliseconds(),
		"request_id", middleware.GetRequestID(r.Context()),
	)

	data.RawOutput = raw
	data.FormattedOutput = template.HTML(markdown.Render(raw))
	h.render(w, data)
}

// render executes the page template. Template execution failure after
// headers are out can only be logged.
func (h *PromptHandler) render(w http.ResponseWriter, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		slog.Error("template execution failed", "error", err)
	}
}

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
