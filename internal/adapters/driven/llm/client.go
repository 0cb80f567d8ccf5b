// Package llm holds the HTTP transport shared by the assistant's model
// adapters. Each provider package builds its own wire types and uses
// Client to send them.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

const (
	// DefaultMaxRetries is how often a throttled or overloaded request is
	// repeated before its status is returned.
	DefaultMaxRetries = 2

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	baseRetryDelay = 500 * time.Millisecond
	maxRetryDelay  = 10 * time.Second

	// maxErrorBody bounds the response text quoted in a StatusError.
	maxErrorBody = 200
)

// Options configure a Client.
type Options struct {
	// Provider names the provider in errors and logs.
	Provider string

	// BaseURL is prefixed to every request path.
	BaseURL string

	// Timeout bounds one HTTP round trip.
	Timeout time.Duration

	// Header is added to every request (API keys, version pins).
	Header http.Header

	// MaxRetries overrides DefaultMaxRetries. Negative disables retries.
	MaxRetries int
}

// Client sends JSON requests to one provider.
type Client struct {
	provider   string
	baseURL    string
	http       *http.Client
	header     http.Header
	maxRetries int
}

// NewClient creates a client for opts.
func NewClient(opts Options) *Client {
	retries := opts.MaxRetries
	switch {
	case retries == 0:
		retries = DefaultMaxRetries
	case retries < 0:
		retries = 0
	}
	header := opts.Header
	if header == nil {
		header = http.Header{}
	}

	return &Client{
		provider:   opts.Provider,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		http:       &http.Client{Timeout: opts.Timeout},
		header:     header,
		maxRetries: retries,
	}
}

// BaseURL returns the URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// StatusError reports a reply other than 200 OK.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: API returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// PostJSON posts in as JSON to path and decodes the 200 reply into out.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", c.provider, err)
	}

	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.provider, err)
	}
	return nil
}

// Check sends GET path and succeeds when the provider answers 200.
// Providers expose a model listing for this, which costs no inference.
func (c *Client) Check(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodGet, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		var reader io.Reader = http.NoBody
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("%s: create request: %w", c.provider, err)
		}
		for k, vs := range c.header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrLLMUnavailable, c.provider, err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: read response: %w", c.provider, err)
		}

		if resp.StatusCode == http.StatusOK {
			return data, nil
		}
		if !retryable(resp.StatusCode) || attempt >= c.maxRetries {
			return nil, &StatusError{
				Provider:   c.provider,
				StatusCode: resp.StatusCode,
				Message:    errorMessage(data),
			}
		}

		delay := retryDelay(resp.Header, attempt)
		logger.Debug("%s: status %d, retrying in %s", c.provider, resp.StatusCode, delay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// retryable reports whether status means "try again later".
// 529 is Anthropic's overloaded status.
func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		529:
		return true
	default:
		return false
	}
}

// retryDelay honours Retry-After when present and otherwise backs off
// exponentially from baseRetryDelay.
func retryDelay(h http.Header, attempt int) time.Duration {
	if s := h.Get(HeaderRetryAfter); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs >= 0 {
			return min(time.Duration(secs)*time.Second, maxRetryDelay)
		}
	}
	return min(baseRetryDelay<<attempt, maxRetryDelay)
}

// errorMessage extracts the provider's explanation from an error body.
// OpenAI and Anthropic send {"error":{"message":...}}; Ollama sends
// {"error":"..."}. Anything else is quoted as text.
func errorMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && len(envelope.Error) > 0 {
		var text string
		if json.Unmarshal(envelope.Error, &text) == nil && text != "" {
			return text
		}
		var detail struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &detail) == nil && detail.Message != "" {
			return detail.Message
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}
	return text
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
