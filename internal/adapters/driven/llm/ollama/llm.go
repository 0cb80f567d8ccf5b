// Package ollama provides an LLM service adapter for a local Ollama server.
package ollama

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/llm"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL  = "http://localhost:11434"
	DefaultLLMModel = "llama3.2"

	// DefaultLLMTimeout is generous since a model on CPU can take a
	// while to load.
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the Ollama LLM service. Ollama needs
// no key.
type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LLMService drafts text with a locally served model.
type LLMService struct {
	client *llm.Client
	model  string
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *options      `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error,omitempty"`
}

// NewLLMService creates an Ollama LLM service.
func NewLLMService(cfg LLMConfig) *LLMService {
	return &LLMService{
		client: llm.NewClient(llm.Options{
			Provider: "ollama",
			BaseURL:  cmp.Or(cfg.BaseURL, DefaultBaseURL),
			Timeout:  cmp.Or(cfg.Timeout, DefaultLLMTimeout),
		}),
		model: cmp.Or(cfg.Model, DefaultLLMModel),
	}
}

// Generate runs one non-streaming chat turn.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	req := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: driven.AssistantSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	if opts.MaxTokens > 0 || opts.Temperature > 0 {
		req.Options = &options{NumPredict: opts.MaxTokens, Temperature: opts.Temperature}
	}

	var resp chatResponse
	if err := s.client.PostJSON(ctx, "/api/chat", req, &resp); err != nil {
		return "", err
	}
	// Ollama reports some failures inside a 200 reply.
	if resp.Error != "" {
		return "", fmt.Errorf("ollama: %s", resp.Error)
	}
	return resp.Message.Content, nil
}

// ModelName returns the configured model.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists the installed models.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.client.Check(ctx, "/api/tags")
}

// Close is a no-op.
func (s *LLMService) Close() error {
	return nil
}
