package openrouter

import (
	"context"
	"fmt"
	"log/slog"

	"promptdeck-hq/promptdeck/pkg/providers"
)

const (
	// DefaultBaseURL is the OpenRouter API base URL.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
)

// Outcome classifies how a completion call concluded. It feeds metrics and
// is never shown to the user.
type Outcome string

const (
	// OutcomeSuccess means the remote API returned generated text.
	OutcomeSuccess Outcome = "success"

	// OutcomeDemo means the client answered from built-in demo content.
	OutcomeDemo Outcome = "demo"

	// OutcomeError means the call failed and an error description was
	// returned in place of generated text.
	OutcomeError Outcome = "error"
)

// Client is the OpenRouter API client.
//
// With a credential configured it performs single-attempt synchronous calls
// against the catalog and chat completion endpoints. Without one it operates
// in demo mode and never touches the network. Either way its operations
// always hand the caller usable content; nothing raises past this boundary.
type Client struct {
	*providers.HTTPClient

	demoMode bool
}

// New creates a new OpenRouter client. An empty APIKey is not an error; it
// switches the client into demo mode for both listing and completion.
func New(config providers.ClientConfig) (*Client, error) {
	if config.Name == "" {
		config.Name = "openrouter"
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = providers.DefaultTimeout
	}
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 10
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 5
	}

	demoMode := config.APIKey == ""

	c := &Client{
		HTTPClient: providers.NewHTTPClient(config),
		demoMode:   demoMode,
	}

	if demoMode {
		slog.Warn("no OpenRouter API key configured, using demo mode")
	} else {
		slog.Info("OpenRouter client initialized",
			"base_url", config.BaseURL,
		)
	}

	return c, nil
}

// DemoMode reports whether the client operates without a credential.
func (c *Client) DemoMode() bool {
	return c.demoMode
}

// Source classifies where a model list came from, for metrics.
type Source string

const (
	// SourceRemote means the list was fetched from the catalog endpoint.
	SourceRemote Source = "remote"

	// SourceFallback means the built-in list was used (demo mode or any
	// catalog fetch failure).
	SourceFallback Source = "fallback"
)

// ListModels returns the ordered list of selectable models.
//
// With a credential it queries the catalog endpoint; on any failure (network,
// non-2xx status, malformed body, empty catalog) it degrades to the built-in
// fallback list. In demo mode it returns the fallback list directly. It never
// returns an error to the caller.
func (c *Client) ListModels(ctx context.Context) []providers.ModelDescriptor {
	models, _ := c.ListModelsWithSource(ctx)
	return models
}

// ListModelsWithSource is ListModels plus a classification of where the
// list came from, for metrics.
func (c *Client) ListModelsWithSource(ctx context.Context) ([]providers.ModelDescriptor, Source) {
	if c.demoMode {
		return fallbackModels(), SourceFallback
	}

	url := c.GetConfig().BaseURL + "/models"
	headers := map[string]string{
		"Authorization": "Bearer " + c.GetConfig().APIKey,
	}

	var resp modelsResponse
	if err := c.DoJSONRequest(ctx, "GET", url, nil, &resp, headers); err != nil {
		slog.Warn("model catalog fetch failed, using fallback list",
			"client", c.GetName(),
			"error", err,
		)
		return fallbackModels(), SourceFallback
	}

	models := toDescriptors(&resp)
	if len(models) == 0 {
		slog.Warn("model catalog is empty, using fallback list", "client", c.GetName())
		return fallbackModels(), SourceFallback
	}

	slog.Debug("model catalog fetched",
		"client", c.GetName(),
		"models", len(models),
	)
	return models, SourceRemote
}

// Complete sends the prompt to the chosen model and returns the generated
// text. It returns model output, a demo placeholder, or a human-readable
// error description; the caller is never left without a string.
func (c *Client) Complete(ctx context.Context, prompt, modelID string) string {
	text, _ := c.CompleteWithOutcome(ctx, prompt, modelID)
	return text
}

// CompleteWithOutcome is Complete plus a classification of how the call
// concluded, for metrics.
func (c *Client) CompleteWithOutcome(ctx context.Context, prompt, modelID string) (string, Outcome) {
	if c.demoMode {
		return demoCompletion(prompt, c.displayName(modelID)), OutcomeDemo
	}

	req := &chatRequest{
		Model: modelID,
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: prompt},
		},
	}

	url := c.GetConfig().BaseURL + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + c.GetConfig().APIKey,
		"Content-Type":  "application/json",
	}

	var resp chatResponse
	if err := c.DoJSONRequest(ctx, "POST", url, req, &resp, headers); err != nil {
		slog.Error("completion request failed",
			"client", c.GetName(),
			"model", modelID,
			"error", err,
		)
		return fmt.Sprintf("Error generating completion: %v", err), OutcomeError
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.Error("completion response contained no content",
			"client", c.GetName(),
			"model", modelID,
		)
		return "Error generating completion: the API returned no content", OutcomeError
	}

	slog.Debug("completion request succeeded",
		"client", c.GetName(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return resp.Choices[0].Message.Content, OutcomeSuccess
}

// displayName resolves a model ID to its display name using the built-in
// list, falling back to the raw ID. Demo mode only.
func (c *Client) displayName(modelID string) string {
	for _, m := range demoModels {
		if m.ID == modelID {
			return m.Name
		}
	}
	return modelID
}
