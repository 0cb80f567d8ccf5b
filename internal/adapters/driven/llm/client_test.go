package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

type echo struct {
	Text string `json:"text"`
}

func TestNewClient(t *testing.T) {
	c := NewClient(Options{Provider: "test", BaseURL: "http://example.com/", Timeout: time.Second})

	assert.Equal(t, "http://example.com", c.BaseURL())
	assert.Equal(t, time.Second, c.Timeout())
	assert.Equal(t, DefaultMaxRetries, c.maxRetries)

	assert.Equal(t, 0, NewClient(Options{MaxRetries: -1}).maxRetries)
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		_, _ = w.Write([]byte(`{"text":"hello"}`))
	}))
	defer server.Close()

	c := NewClient(Options{
		Provider: "test",
		BaseURL:  server.URL,
		Header:   http.Header{"X-Api-Key": {"secret"}},
	})

	var out echo
	require.NoError(t, c.PostJSON(context.Background(), "/chat", echo{Text: "hi"}, &out))
	assert.Equal(t, "hello", out.Text)
}

func TestClient_PostJSON_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var out echo
	err := NewClient(Options{Provider: "test", BaseURL: server.URL}).
		PostJSON(context.Background(), "/chat", echo{}, &out)
	assert.ErrorContains(t, err, "test: decode response")
}

func TestClient_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer server.Close()

	err := NewClient(Options{Provider: "test", BaseURL: server.URL}).Check(context.Background(), "/models")

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "bad key", se.Message)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.EqualError(t, err, "test: API returned status 401: bad key")
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := NewClient(Options{Provider: "test", BaseURL: url}).Check(context.Background(), "/")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestClient_RetriesThrottled(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set(HeaderRetryAfter, "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer server.Close()

	var out echo
	err := NewClient(Options{Provider: "test", BaseURL: server.URL}).
		PostJSON(context.Background(), "/chat", echo{}, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set(HeaderRetryAfter, "0")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewClient(Options{Provider: "test", BaseURL: server.URL, MaxRetries: 1}).
		Check(context.Background(), "/")

	assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewClient(Options{Provider: "test", BaseURL: server.URL}).Check(context.Background(), "/")

	assert.True(t, IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetryHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderRetryAfter, "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewClient(Options{Provider: "test", BaseURL: server.URL}).Check(ctx, "/")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryDelay(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, baseRetryDelay, retryDelay(h, 0))
	assert.Equal(t, 2*baseRetryDelay, retryDelay(h, 1))
	assert.Equal(t, maxRetryDelay, retryDelay(h, 10))

	h.Set(HeaderRetryAfter, "3")
	assert.Equal(t, 3*time.Second, retryDelay(h, 0))

	h.Set(HeaderRetryAfter, "600")
	assert.Equal(t, maxRetryDelay, retryDelay(h, 0))

	h.Set(HeaderRetryAfter, "Wed, 21 Oct 2015 07:28:00 GMT")
	assert.Equal(t, baseRetryDelay, retryDelay(h, 0))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested", `{"error":{"type":"x","message":"invalid x-api-key"}}`, "invalid x-api-key"},
		{"flat", `{"error":"model 'mistral' not found"}`, "model 'mistral' not found"},
		{"plain", "  Bad Gateway\n", "Bad Gateway"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body)))
		})
	}

	long := make([]byte, maxErrorBody+50)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, errorMessage(long), maxErrorBody+3)
}
