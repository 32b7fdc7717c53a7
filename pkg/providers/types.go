package providers

import "time"

// ModelDescriptor identifies a selectable remote model.
// An ordered list of these populates the model selection control.
type ModelDescriptor struct {
	// ID is the model identifier sent back to the API (e.g., "openai/gpt-4o")
	ID string `json:"id"`

	// Name is the human-readable display name shown in the form
	Name string `json:"name"`
}

// Message represents a single message in a conversation.
type Message struct {
	// Role identifies the message sender (system, user, assistant)
	Role string `json:"role"`

	// Content is the message text content
	Content string `json:"content"`
}

// CompletionRequest represents a provider-agnostic completion request.
// It is transient and constructed per form submission.
type CompletionRequest struct {
	// Model is the model identifier chosen in the form
	Model string `json:"model"`

	// Messages is the conversation to send; for this front-end it is a
	// single user message containing the prompt
	Messages []Message `json:"messages"`
}

// CompletionResult holds the generated text and its rendered HTML form.
// It exists only for the duration of rendering the response page.
type CompletionResult struct {
	// Raw is the unprocessed markdown text returned by the model
	Raw string

	// HTML is the rendered form of Raw, safe to embed in a page
	HTML string

	// Model is the model that produced the text
	Model string
}

// TokenUsage tracks token consumption reported by the remote API.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ClientConfig contains configuration for a single API client instance.
type ClientConfig struct {
	// Name is the client identifier used in errors and logs (e.g., "openrouter")
	Name string

	// BaseURL is the API endpoint base URL
	BaseURL string

	// APIKey is the bearer credential; empty switches the client to demo mode
	APIKey string

	// Timeout is the request timeout duration
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool
	IdleConnTimeout time.Duration
}

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
