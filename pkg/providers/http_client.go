package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// HTTPClient is the base implementation for HTTP-based API clients.
// It provides connection pooling, bounded timeouts, and typed error
// classification. Each call is exactly one attempt: failures are reported
// to the caller, never retried.
type HTTPClient struct {
	// config contains the client configuration
	config ClientConfig

	// client is the HTTP client with connection pooling
	client *http.Client

	// mu protects the request counters
	mu sync.Mutex

	// totalRequests counts all outbound requests
	totalRequests int64

	// failedRequests counts outbound requests that did not succeed
	failedRequests int64
}

// NewHTTPClient creates a new base HTTP client with connection pooling.
func NewHTTPClient(config ClientConfig) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &HTTPClient{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
	}
}

// GetName returns the client's configured name.
func (c *HTTPClient) GetName() string {
	return c.config.Name
}

// GetConfig returns the client's configuration.
func (c *HTTPClient) GetConfig() ClientConfig {
	return c.config
}

// Stats returns the total and failed outbound request counts.
func (c *HTTPClient) Stats() (total, failed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalRequests, c.failedRequests
}

// recordRequest records request counters.
func (c *HTTPClient) recordRequest(success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalRequests++
	if !success {
		c.failedRequests++
	}
}

// DoRequest performs a single HTTP request with timeout handling.
// Non-2xx responses are classified into typed errors; the response body of
// a successful request is left open for the caller to consume.
func (c *HTTPClient) DoRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if req.Header.Get("Content-Type") == "" && body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("sending request to remote API",
		"client", c.config.Name,
		"method", method,
		"url", url,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		c.recordRequest(false)

		// Distinguish deadline/timeout failures from other network errors
		// so callers can surface a precise message.
		if ctx.Err() != nil {
			return nil, &TimeoutError{
				Client:  c.config.Name,
				Timeout: c.config.Timeout,
			}
		}
		if isTimeout(err) {
			return nil, &TimeoutError{
				Client:  c.config.Name,
				Timeout: c.config.Timeout,
			}
		}
		return nil, &APIError{
			Client:  c.config.Name,
			Message: "request failed",
			Cause:   err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.recordRequest(true)
		return resp, nil
	}

	// Read the error body so the typed error carries the API's own message.
	errorBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	c.recordRequest(false)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &AuthError{
			Client:  c.config.Name,
			Message: string(errorBody),
		}
	default:
		return nil, &APIError{
			Client:     c.config.Name,
			StatusCode: resp.StatusCode,
			Message:    string(errorBody),
		}
	}
}

// DoJSONRequest performs a JSON request and decodes the response.
func (c *HTTPClient) DoJSONRequest(ctx context.Context, method, url string, reqBody interface{}, respBody interface{}, headers map[string]string) error {
	var bodyBytes []byte
	var err error
	if reqBody != nil {
		bodyBytes, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	resp, err := c.DoRequest(ctx, method, url, bodyBytes, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ParseError{
			Client: c.config.Name,
			Cause:  fmt.Errorf("failed to read response: %w", err),
		}
	}

	if respBody != nil && len(responseBytes) > 0 {
		if err := json.Unmarshal(responseBytes, respBody); err != nil {
			return &ParseError{
				Client:      c.config.Name,
				RawResponse: string(responseBytes),
				Cause:       fmt.Errorf("failed to unmarshal response: %w", err),
			}
		}
	}

	return nil
}

// Close releases idle connections held by the client.
func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	slog.Debug("client closed", "client", c.config.Name)
	return nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	type timeout interface {
		Timeout() bool
	}
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}

// DefaultTimeout is the bounded per-request timeout applied when the
// configuration does not specify one. A slow remote endpoint must not be
// able to hang the inbound request indefinitely.
const DefaultTimeout = 60 * time.Second
