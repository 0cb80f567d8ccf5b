package driven

// ConfigStore is a flat key/value view of the settings file. Keys are
// dotted ("ai.provider", "payroll.deduction_rate").
type ConfigStore interface {
	// Get reports the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns "" for missing or non-string values.
	GetString(key string) string

	// GetFloat returns 0 for missing or non-numeric values. Integer
	// values are converted.
	GetFloat(key string) float64

	// Set updates one key and persists the store.
	Set(key string, value any) error

	Save() error
	Load() error

	// Path locates the backing file, for display.
	Path() string
}
