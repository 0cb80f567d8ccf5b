// Package anthropic provides an LLM service adapter for the Anthropic
// messages API.
package anthropic

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/llm"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultModel     = "claude-3-5-sonnet-latest"
	DefaultTimeout   = 60 * time.Second
	DefaultMaxTokens = 1024

	anthropicVersion = "2023-06-01"
)

// Config holds configuration for the Anthropic LLM service.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LLMService drafts text with a Claude model.
type LLMService struct {
	client *llm.Client
	model  string
}

type messagesRequest struct {
	Model       string            `json:"model"`
	Messages    []messagesMessage `json:"messages"`
	MaxTokens   int               `json:"max_tokens"`
	System      string            `json:"system,omitempty"`
	Temperature float64           `json:"temperature,omitempty"`
}

type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

// NewLLMService creates an Anthropic LLM service. The API key is required.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: API key is required")
	}

	return &LLMService{
		client: llm.NewClient(llm.Options{
			Provider: "anthropic",
			BaseURL:  cmp.Or(cfg.BaseURL, DefaultBaseURL),
			Timeout:  cmp.Or(cfg.Timeout, DefaultTimeout),
			Header: http.Header{
				"X-Api-Key":         {cfg.APIKey},
				"Anthropic-Version": {anthropicVersion},
			},
		}),
		model: cmp.Or(cfg.Model, DefaultModel),
	}, nil
}

// Generate sends prompt as a single user message. The system prompt
// travels in its own field rather than as a message.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	req := messagesRequest{
		Model:       s.model,
		Messages:    []messagesMessage{{Role: "user", Content: prompt}},
		MaxTokens:   DefaultMaxTokens,
		System:      driven.AssistantSystemPrompt,
		Temperature: max(opts.Temperature, 0),
	}
	// max_tokens is mandatory here.
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}

	var resp messagesResponse
	if err := s.client.PostJSON(ctx, "/v1/messages", req, &resp); err != nil {
		return "", err
	}
	return resp.text(), nil
}

func (r messagesResponse) text() string {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// ModelName returns the configured model.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists models to validate the key.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.client.Check(ctx, "/v1/models")
}

// Close is a no-op.
func (s *LLMService) Close() error {
	return nil
}
