package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

func TestNewConfigValidator(t *testing.T) {
	v := NewConfigValidator()
	require.NotNil(t, v)
}

func TestConfigValidator_ImplementsInterface(t *testing.T) {
	var _ driven.AIConfigValidator = (*ConfigValidator)(nil)
}

func TestConfigValidator_ValidateAI_NilConfig(t *testing.T) {
	assert.NoError(t, NewConfigValidator().ValidateAI(nil))
}

func TestConfigValidator_ValidateAI_UnconfiguredProvider(t *testing.T) {
	v := NewConfigValidator()

	assert.NoError(t, v.ValidateAI(&domain.AISettings{}))
	// A cloud provider without a key is not configured yet.
	assert.NoError(t, v.ValidateAI(&domain.AISettings{Provider: domain.AIProviderOpenAI}))
}
