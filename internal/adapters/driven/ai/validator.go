package ai

import (
	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates assistant provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new AI config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateAI validates an assistant configuration by pinging the provider.
func (v *ConfigValidator) ValidateAI(config *domain.AISettings) error {
	return ValidateLLMConfig(config)
}
