package services

import (
	"fmt"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAIProvider     = "ai.provider"
	keyAIModel        = "ai.model"
	keyAIBaseURL      = "ai.base_url"
	keyAIAPIKey       = "ai.api_key"
	keyStorageBackend = "storage.backend"
	keyStoragePath    = "storage.path"
	keyDeductionRate  = "payroll.deduction_rate"
)

// defaultOllamaURL is used when Ollama is chosen without a base URL.
const defaultOllamaURL = "http://localhost:11434"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		AI: domain.AISettings{
			Provider: s.getProvider(defaults.AI.Provider),
			Model:    s.getString(keyAIModel, defaults.AI.Model),
			BaseURL:  s.configStore.GetString(keyAIBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyAIAPIKey),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			Path:    s.configStore.GetString(keyStoragePath),
		},
		Payroll: domain.PayrollSettings{
			DeductionRate: s.getRate(defaults.Payroll.DeductionRate),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	if err := s.configStore.Set(keyAIProvider, settings.AI.Provider.String()); err != nil {
		return fmt.Errorf("save ai provider: %w", err)
	}
	if err := s.configStore.Set(keyAIModel, settings.AI.Model); err != nil {
		return fmt.Errorf("save ai model: %w", err)
	}
	if err := s.configStore.Set(keyAIBaseURL, settings.AI.BaseURL); err != nil {
		return fmt.Errorf("save ai base_url: %w", err)
	}
	if settings.AI.APIKey != "" {
		if err := s.configStore.Set(keyAIAPIKey, settings.AI.APIKey); err != nil {
			return fmt.Errorf("save ai api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyStorageBackend, string(settings.Storage.Backend)); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStoragePath, settings.Storage.Path); err != nil {
		return fmt.Errorf("save storage path: %w", err)
	}

	if err := s.configStore.Set(keyDeductionRate, settings.Payroll.DeductionRate); err != nil {
		return fmt.Errorf("save deduction rate: %w", err)
	}

	return nil
}

// SetAIProvider configures the assistant provider.
func (s *SettingsService) SetAIProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid AI provider: %s", domain.ErrInvalidInput, provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.AI.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.AI.Model = model
	} else {
		settings.AI.Model = domain.DefaultAIModels()[provider]
	}

	if provider == domain.AIProviderOllama {
		if settings.AI.BaseURL == "" {
			settings.AI.BaseURL = defaultOllamaURL
		}
	} else {
		// Cloud providers don't need a custom base URL
		settings.AI.BaseURL = ""
	}

	settings.AI.APIKey = apiKey

	return s.Save(settings)
}

// SetStorage selects the storage backend and optional database directory.
func (s *SettingsService) SetStorage(backend domain.StorageBackend, path string) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: invalid storage backend: %s", domain.ErrInvalidInput, backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend
	settings.Storage.Path = path

	return s.Save(settings)
}

// SetDeductionRate sets the share of basic pay withheld by payroll runs.
func (s *SettingsService) SetDeductionRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("%w: deduction rate must be between 0 and 1", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Payroll.DeductionRate = rate

	return s.Save(settings)
}

// ConfigPath returns the config store's location, or "" without a store.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateAIConfig validates the current assistant configuration by pinging the provider.
func (s *SettingsService) ValidateAIConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateAI(&settings.AI)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	provider := domain.AIProvider(s.configStore.GetString(keyAIProvider))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getRate(defaultVal float64) float64 {
	if _, exists := s.configStore.Get(keyDeductionRate); !exists {
		return defaultVal
	}
	rate := s.configStore.GetFloat(keyDeductionRate)
	if rate < 0 || rate > 1 {
		return defaultVal
	}
	return rate
}
