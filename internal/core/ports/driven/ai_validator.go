package driven

import "github.com/custodia-labs/hrcentral-cli/internal/core/domain"

// AIConfigValidator validates assistant provider configurations.
// Implementations verify that configurations are valid by testing connectivity
// to the underlying AI service.
type AIConfigValidator interface {
	// ValidateAI pings the configured provider.
	// Returns nil if configuration is valid or not configured.
	ValidateAI(config *domain.AISettings) error
}
