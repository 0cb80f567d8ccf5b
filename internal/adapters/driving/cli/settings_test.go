package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	for input, want := range map[string]string{
		"":                     "****",
		"abc123":               "****",
		"12345678":             "****",
		"sk-1234567890abcdef":  "sk-1...cdef",
		"sk-ant-api03-xyzwvut": "sk-a...wvut",
	} {
		assert.Equal(t, want, maskAPIKey(input), "maskAPIKey(%q)", input)
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 2},
		{"   ", 2},
		{"abc", 2},
		{"0", 2},
		{"-1", 2},
		{"4", 2},
		{"1", 1},
		{" 3 ", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseChoice(tt.input, 3, 2), "parseChoice(%q)", tt.input)
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Config file: :memory:")
	assert.Contains(t, out, "Provider: (not set)")
	assert.Contains(t, out, "Status: not configured")
	assert.Contains(t, out, "Backend: sqlite")
	assert.Contains(t, out, "Deduction rate: 15%")
	assert.Contains(t, out, "hrcentral settings ai")
}

func TestSettingsAI_WithFlags(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "settings", "ai", "--provider", "ollama", "--no-validate")

	require.NoError(t, err)
	assert.Contains(t, out, "Assistant provider configured: Ollama (local) (llama3.2)")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.AI.Provider)
	assert.Equal(t, "llama3.2", settings.AI.Model)

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: configured")
}

func TestSettingsAI_Errors(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	t.Run("unknown provider", func(t *testing.T) {
		_, err := execute(t, "settings", "ai", "--provider", "gemini")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cloud provider without key", func(t *testing.T) {
		_, err := execute(t, "settings", "ai", "--provider", "openai", "--no-validate")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSettingsStorage(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "settings", "storage", "MEMORY")

	require.NoError(t, err)
	assert.Contains(t, out, "Storage backend set to memory")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)

	_, err = execute(t, "settings", "storage", "postgres")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsDeduction(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "settings", "deduction", "12.5%")

	require.NoError(t, err)
	assert.Contains(t, out, "Deduction rate set to 12.5%")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.InDelta(t, 0.125, settings.Payroll.DeductionRate, 1e-9)

	_, err = execute(t, "settings", "deduction", "1.5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "0.15", want: 0.15},
		{input: "15%", want: 0.15},
		{input: " 7.5% ", want: 0.075},
		{input: "0", want: 0},
		{input: "abc", wantErr: true},
		{input: "%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseRate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "15%", formatRate(0.15))
	assert.Equal(t, "12.5%", formatRate(0.125))
	assert.Equal(t, "0%", formatRate(0))
	assert.Equal(t, "100%", formatRate(1))
}
