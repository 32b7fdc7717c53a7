package providers

import (
	"fmt"
	"time"
)

// APIError represents a general remote API error.
// It includes the client name, HTTP status code, and underlying error.
type APIError struct {
	// Client is the name of the client that returned the error
	Client string

	// StatusCode is the HTTP status code (0 if not applicable)
	StatusCode int

	// Message is the error message
	Message string

	// Cause is the underlying error (if any)
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("client %q error (status %d): %s", e.Client, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("client %q error: %s", e.Client, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// AuthError represents an authentication failure.
// This occurs when the remote API rejects the credential (HTTP 401 or 403).
type AuthError struct {
	// Client is the name of the client whose credential was rejected
	Client string

	// Message is the error message from the remote API
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("client %q authentication failed: %s", e.Client, e.Message)
}

// TimeoutError represents a request timeout.
// This occurs when a request exceeds the configured timeout duration.
type TimeoutError struct {
	// Client is the name of the client where the timeout occurred
	Client string

	// Timeout is the configured timeout duration
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("client %q request timeout after %s", e.Client, e.Timeout)
}

// ParseError represents a response parsing failure.
// This occurs when the remote API returns a malformed response body.
type ParseError struct {
	// Client is the name of the client that received the malformed response
	Client string

	// RawResponse is the raw response body that failed to parse
	RawResponse string

	// Cause is the underlying parse error
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("client %q response parse error: %v", e.Client, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a request validation failure.
// This occurs when the request has invalid fields before anything is sent.
type ValidationError struct {
	// Field is the name of the invalid field
	Field string

	// Message describes what is invalid about the field
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

// ConfigError represents a client configuration error.
type ConfigError struct {
	// Client is the name of the client with invalid configuration
	Client string

	// Field is the configuration field that is invalid
	Field string

	// Message describes the configuration error
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("client %q configuration error for field %q: %s",
		e.Client, e.Field, e.Message)
}
