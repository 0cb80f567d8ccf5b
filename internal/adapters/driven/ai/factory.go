// Package ai builds the assistant's LLM adapter from settings and checks
// that it answers before the rest of the app relies on it.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

const (
	pingTimeout = 5 * time.Second
	fixHint     = "Run 'hrcentral settings ai' to fix"
)

// constructor builds the adapter of one provider.
type constructor func(s *domain.AISettings) (driven.LLMService, error)

var constructors = map[domain.AIProvider]constructor{
	domain.AIProviderOllama: func(s *domain.AISettings) (driven.LLMService, error) {
		return ollama.NewLLMService(ollama.LLMConfig{BaseURL: s.BaseURL, Model: s.Model}), nil
	},
	domain.AIProviderOpenAI: func(s *domain.AISettings) (driven.LLMService, error) {
		return openai.NewLLMService(openai.LLMConfig{APIKey: s.APIKey, BaseURL: s.BaseURL, Model: s.Model})
	},
	domain.AIProviderAnthropic: func(s *domain.AISettings) (driven.LLMService, error) {
		return anthropic.NewLLMService(anthropic.Config{APIKey: s.APIKey, BaseURL: s.BaseURL, Model: s.Model})
	},
}

// InitResult is what startup gets back from InitAssistant.
type InitResult struct {
	LLMService  driven.LLMService
	PromptStore *file.PromptStore

	// Warnings explain why a configured provider is not in use.
	Warnings []string

	// FellBack is set when the assistant will answer with fallback text.
	FellBack bool
}

// Close releases the LLM service, if any.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		_ = r.LLMService.Close()
	}
}

// InitAssistant opens the prompt store and, when a provider is configured,
// a pinged LLM service. Nothing here stops startup: problems become
// warnings and the assistant falls back.
func InitAssistant(settings *domain.AISettings, promptDir string) *InitResult {
	result := &InitResult{FellBack: true}

	if prompts, err := file.NewPromptStore(promptDir); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("prompt store: %v", err))
	} else {
		result.PromptStore = prompts
	}

	svc, err := CreateAndValidateLLMService(settings)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return result
	}
	if svc != nil {
		result.LLMService = svc
		result.FellBack = false
	}
	return result
}

// CreateAndValidateLLMService returns a service that answered its ping,
// or nil without error when no provider is configured. Errors wrap
// domain.ErrLLMUnavailable and carry a hint for fixing the settings.
func CreateAndValidateLLMService(settings *domain.AISettings) (driven.LLMService, error) {
	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. %s", domain.ErrLLMUnavailable, err, fixHint)
	}
	if svc == nil {
		return nil, nil
	}

	if err := ping(svc); err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). %s", domain.ErrLLMUnavailable, err, fixHint)
	}
	return svc, nil
}

// ValidateLLMConfig pings the provider settings describe and discards
// the service. Unconfigured settings are valid.
func ValidateLLMConfig(settings *domain.AISettings) error {
	svc, err := CreateLLMService(settings)
	if err != nil || svc == nil {
		return err
	}
	defer svc.Close()
	return ping(svc)
}

// CreateLLMService builds the adapter for settings without contacting
// the provider. It returns nil when no provider is configured.
func CreateLLMService(settings *domain.AISettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}
	build, ok := constructors[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
	return build(settings)
}

func ping(svc driven.LLMService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}
