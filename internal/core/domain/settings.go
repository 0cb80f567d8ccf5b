package domain

const unknownDescription = "Unknown"

// AIProvider identifies a text generation provider for the assistant.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// AISettings holds assistant provider configuration.
type AISettings struct {
	// Provider is the text generation provider. Empty disables the assistant.
	Provider AIProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint override.
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the provider is set up.
func (a AISettings) IsConfigured() bool {
	if !a.Provider.IsValid() {
		return false
	}
	if a.Provider.RequiresAPIKey() && a.APIKey == "" {
		return false
	}
	return true
}

// StorageBackend selects the key-value store that backs persistence.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite keeps records in a local SQLite file.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps records for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageSQLite || b == StorageMemory
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	Backend StorageBackend

	// Path is the SQLite database file. Empty means the default location.
	Path string
}

// PayrollSettings holds payroll run parameters.
type PayrollSettings struct {
	// DeductionRate is the share of basic salary withheld, between 0 and 1.
	DeductionRate float64
}

// DefaultDeductionRate is withheld from basic salary when no rate is configured.
const DefaultDeductionRate = 0.15

// AppSettings holds all application settings.
type AppSettings struct {
	AI      AISettings
	Storage StorageSettings
	Payroll PayrollSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The assistant is left unconfigured until a provider is chosen.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		AI: AISettings{},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Payroll: PayrollSettings{
			DeductionRate: DefaultDeductionRate,
		},
	}
}

// AllAIProviders returns providers that support text generation.
func AllAIProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultAIModels returns default models for each provider.
func DefaultAIModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}
