package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	for _, p := range AllAIProviders() {
		assert.True(t, p.IsValid(), p)
		assert.NotEqual(t, unknownDescription, p.Description())
	}
	assert.False(t, AIProvider("").IsValid())
	assert.False(t, AIProvider("gemini").IsValid())
	assert.Equal(t, unknownDescription, AIProvider("gemini").Description())
}

func TestAISettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings AISettings
		expected bool
	}{
		{"empty", AISettings{}, false},
		{"ollama without key", AISettings{Provider: AIProviderOllama}, true},
		{"openai without key", AISettings{Provider: AIProviderOpenAI}, false},
		{"anthropic with key", AISettings{Provider: AIProviderAnthropic, APIKey: "sk-ant"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.False(t, s.AI.IsConfigured())
	assert.Equal(t, StorageSQLite, s.Storage.Backend)
	assert.InDelta(t, 0.15, s.Payroll.DeductionRate, 1e-9)
	for _, p := range AllAIProviders() {
		assert.NotEmpty(t, DefaultAIModels()[p])
	}
}

func TestStorageBackend_IsValid(t *testing.T) {
	assert.True(t, StorageSQLite.IsValid())
	assert.True(t, StorageMemory.IsValid())
	assert.False(t, StorageBackend("localstorage").IsValid())
}
