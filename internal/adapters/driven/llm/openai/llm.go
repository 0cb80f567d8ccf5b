// Package openai provides an LLM service adapter for the OpenAI chat
// completions API and compatible servers.
package openai

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/llm"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 60 * time.Second
)

// LLMConfig holds configuration for the OpenAI LLM service.
type LLMConfig struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL can point at Azure OpenAI or another compatible API.
	BaseURL string

	Model   string
	Timeout time.Duration
}

// LLMService drafts text with a chat completions model.
type LLMService struct {
	client *llm.Client
	model  string
}

type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
}

type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      chatCompletionMsg `json:"message"`
		FinishReason string            `json:"finish_reason"`
	} `json:"choices"`
}

// NewLLMService creates an OpenAI LLM service.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}

	return &LLMService{
		client: llm.NewClient(llm.Options{
			Provider: "openai",
			BaseURL:  cmp.Or(cfg.BaseURL, DefaultBaseURL),
			Timeout:  cmp.Or(cfg.Timeout, DefaultLLMTimeout),
			Header:   http.Header{"Authorization": {"Bearer " + cfg.APIKey}},
		}),
		model: cmp.Or(cfg.Model, DefaultLLMModel),
	}, nil
}

// Generate sends prompt as the user turn after the assistant's system prompt.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	req := chatCompletionRequest{
		Model: s.model,
		Messages: []chatCompletionMsg{
			{Role: "system", Content: driven.AssistantSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   max(opts.MaxTokens, 0),
		Temperature: max(opts.Temperature, 0),
	}

	var resp chatCompletionResponse
	if err := s.client.PostJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// ModelName returns the configured model.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists models, which validates the key without spending tokens.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.client.Check(ctx, "/models")
}

// Close is a no-op.
func (s *LLMService) Close() error {
	return nil
}
