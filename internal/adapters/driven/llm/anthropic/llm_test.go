package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.Error(t, err)
}

func TestLLMService_Generate(t *testing.T) {
	var got messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Dear Sarah, "},{"type":"text","text":"congratulations."}],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-ant", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := svc.Generate(context.Background(), "Draft email", driven.GenerateOptions{Temperature: 0.2})

	require.NoError(t, err)
	assert.Equal(t, "Dear Sarah, congratulations.", text)
	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, DefaultMaxTokens, got.MaxTokens)
	assert.Equal(t, driven.AssistantSystemPrompt, got.System)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestLLMService_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "bad", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "hi", driven.GenerateOptions{})
	assert.ErrorContains(t, err, "invalid x-api-key")
}

func TestLLMService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-ant", BaseURL: server.URL, Model: "claude-3-5-haiku-latest"})
	require.NoError(t, err)

	assert.NoError(t, svc.Ping(context.Background()))
	assert.Equal(t, "claude-3-5-haiku-latest", svc.ModelName())
}

func TestLLMService_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk", BaseURL: url})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "hi", driven.GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestLLMService_Generate_MaxTokens(t *testing.T) {
	var got messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"tool_use"},{"type":"text","text":"ok"}]}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := svc.Generate(context.Background(), "hi", driven.GenerateOptions{MaxTokens: 300})

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 300, got.MaxTokens)
}
