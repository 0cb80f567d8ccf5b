package driving

import "github.com/custodia-labs/hrcentral-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetAIProvider configures the assistant provider.
	SetAIProvider(provider domain.AIProvider, model, apiKey string) error

	// SetStorage selects the storage backend and optional database path.
	SetStorage(backend domain.StorageBackend, path string) error

	// SetDeductionRate sets the payroll deduction rate (0 to 1).
	SetDeductionRate(rate float64) error

	// ConfigPath returns where settings are stored.
	ConfigPath() string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateAIConfig validates the current assistant configuration by pinging the provider.
	ValidateAIConfig() error
}
