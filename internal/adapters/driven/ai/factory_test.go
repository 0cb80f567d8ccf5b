package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

func TestInitResult_Close(t *testing.T) {
	t.Run("close with nil services", func(t *testing.T) {
		result := &InitResult{}
		result.Close()
	})
}

func TestConstructors_CoverAllProviders(t *testing.T) {
	for _, p := range domain.AllAIProviders() {
		assert.Contains(t, constructors, p)
	}
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name      string
		settings  *domain.AISettings
		wantNil   bool
		wantErr   bool
		wantModel string
	}{
		{name: "nil settings returns nil", settings: nil, wantNil: true},
		{name: "unconfigured settings returns nil", settings: &domain.AISettings{}, wantNil: true},
		{
			name:      "ollama provider creates service",
			settings:  &domain.AISettings{Provider: domain.AIProviderOllama, Model: "llama3.2"},
			wantModel: "llama3.2",
		},
		{
			name:      "openai provider creates service",
			settings:  &domain.AISettings{Provider: domain.AIProviderOpenAI, APIKey: "sk", Model: "gpt-4o-mini"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:      "anthropic provider creates service",
			settings:  &domain.AISettings{Provider: domain.AIProviderAnthropic, APIKey: "sk-ant"},
			wantModel: "claude-3-5-sonnet-latest",
		},
		{
			name:     "cloud provider without key returns nil",
			settings: &domain.AISettings{Provider: domain.AIProviderAnthropic},
			wantNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, svc)
				return
			}
			require.NotNil(t, svc)
			assert.Equal(t, tt.wantModel, svc.ModelName())
		})
	}
}

func TestCreateAndValidateLLMService_Reachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	svc, err := CreateAndValidateLLMService(&domain.AISettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  server.URL,
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestCreateAndValidateLLMService_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	svc, err := CreateAndValidateLLMService(&domain.AISettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  url,
	})

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Contains(t, err.Error(), "hrcentral settings ai")
}

func TestValidateLLMConfig_BadKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	err := ValidateLLMConfig(&domain.AISettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "bad",
		BaseURL:  server.URL,
	})

	assert.ErrorContains(t, err, "status 401")
}

func TestInitAssistant(t *testing.T) {
	t.Run("unconfigured falls back quietly", func(t *testing.T) {
		result := InitAssistant(&domain.AISettings{}, t.TempDir())
		defer result.Close()

		assert.Nil(t, result.LLMService)
		assert.NotNil(t, result.PromptStore)
		assert.True(t, result.FellBack)
		assert.Empty(t, result.Warnings)
	})

	t.Run("unreachable provider warns", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		result := InitAssistant(&domain.AISettings{Provider: domain.AIProviderOllama, BaseURL: url}, t.TempDir())

		assert.Nil(t, result.LLMService)
		assert.True(t, result.FellBack)
		require.Len(t, result.Warnings, 1)
	})

	t.Run("reachable provider", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		defer server.Close()

		result := InitAssistant(&domain.AISettings{Provider: domain.AIProviderOllama, BaseURL: server.URL}, t.TempDir())
		defer result.Close()

		assert.NotNil(t, result.LLMService)
		assert.False(t, result.FellBack)
	})
}
