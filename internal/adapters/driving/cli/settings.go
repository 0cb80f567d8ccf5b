package cli

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

var (
	aiProviderFlag string
	aiModelFlag    string
	aiAPIKeyFlag   string
	aiSkipValidate bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the assistant provider, storage backend and payroll
deduction rate. Settings are stored in ~/.hrcentral/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsAICmd = &cobra.Command{
	Use:   "ai",
	Short: "Configure the assistant provider",
	Long: `Configure the language model used by 'hrcentral assistant'.

Without flags the command asks for the provider, model and API key.

Examples:
  hrcentral settings ai
  hrcentral settings ai --provider ollama --model llama3.2
  hrcentral settings ai --provider anthropic --api-key sk-ant-...`,
	Args: cobra.NoArgs,
	RunE: runSettingsAI,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [sqlite|memory] [path]",
	Short: "Select the storage backend",
	Long: `Select where records are kept. "sqlite" keeps them in a database file
(default ~/.hrcentral/data); "memory" keeps them only for the life of the
process. Takes effect on the next run.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsStorage,
}

var settingsDeductionCmd = &cobra.Command{
	Use:   "deduction [rate]",
	Short: "Set the payroll deduction rate",
	Long: `Set the share of monthly basic salary withheld as deductions, as a
fraction between 0 and 1 (for example 0.15) or a percentage (15%).`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsDeduction,
}

func init() {
	settingsAICmd.Flags().StringVar(&aiProviderFlag, "provider", "", "provider (ollama, openai, anthropic)")
	settingsAICmd.Flags().StringVar(&aiModelFlag, "model", "", "model name (default depends on provider)")
	settingsAICmd.Flags().StringVar(&aiAPIKeyFlag, "api-key", "", "API key for cloud providers")
	settingsAICmd.Flags().BoolVar(&aiSkipValidate, "no-validate", false, "save without contacting the provider")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsAICmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	settingsCmd.AddCommand(settingsDeductionCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	cmd.Println()

	cmd.Println("[Assistant]")
	if settings.AI.Provider == "" {
		cmd.Println("  Provider: (not set)")
	} else {
		cmd.Printf("  Provider: %s\n", settings.AI.Provider.Description())
		cmd.Printf("  Model: %s\n", settings.AI.Model)
		if settings.AI.BaseURL != "" {
			cmd.Printf("  Base URL: %s\n", settings.AI.BaseURL)
		}
		if settings.AI.Provider.RequiresAPIKey() {
			if settings.AI.APIKey != "" {
				cmd.Printf("  API Key: %s\n", maskAPIKey(settings.AI.APIKey))
			} else {
				cmd.Printf("  API Key: (not set)\n")
			}
		}
	}
	status := "configured"
	if !settings.AI.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend)
	if settings.Storage.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Storage.Path)
	}
	cmd.Println()

	cmd.Println("[Payroll]")
	cmd.Printf("  Deduction rate: %s\n", formatRate(settings.Payroll.DeductionRate))

	if !settings.AI.IsConfigured() {
		cmd.Println()
		cmd.Println("Run 'hrcentral settings ai' to enable the assistant.")
	}
	return nil
}

func runSettingsAI(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if aiProviderFlag != "" {
		return applyAIProvider(cmd, domain.AIProvider(aiProviderFlag), aiModelFlag, aiAPIKeyFlag)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select Assistant Provider")
	providers := domain.AllAIProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	provider := providers[idx-1]

	defaultModel := domain.DefaultAIModels()[provider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)

	var apiKey string
	if provider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	return applyAIProvider(cmd, provider, model, apiKey)
}

func applyAIProvider(cmd *cobra.Command, provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, provider)
	}
	if model == "" {
		model = domain.DefaultAIModels()[provider]
	}

	if err := settingsService.SetAIProvider(provider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure assistant provider: %w", err)
	}

	if !aiSkipValidate {
		cmd.Print("Validating configuration... ")
		if err := settingsService.ValidateAIConfig(); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("assistant configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	cmd.Printf("Assistant provider configured: %s (%s)\n", provider.Description(), model)
	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StorageBackend(strings.ToLower(args[0]))
	path := ""
	if len(args) == 2 {
		path = args[1]
	}

	if err := settingsService.SetStorage(backend, path); err != nil {
		return fmt.Errorf("failed to set storage: %w", err)
	}

	cmd.Printf("Storage backend set to %s. Restart hrcentral for it to take effect.\n", backend)
	return nil
}

func runSettingsDeduction(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	rate, err := parseRate(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetDeductionRate(rate); err != nil {
		return fmt.Errorf("failed to set deduction rate: %w", err)
	}

	cmd.Printf("Deduction rate set to %s\n", formatRate(rate))
	return nil
}

// parseRate accepts a fraction ("0.15") or a percentage ("15%").
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: rate %q is not a number", domain.ErrInvalidInput, s)
	}
	if percent {
		v /= 100
	}
	return v, nil
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*1e4)/100, 'f', -1, 64) + "%"
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseChoice reads a 1-based menu choice, falling back to defaultVal
// for anything outside 1..maxVal.
func parseChoice(input string, maxVal, defaultVal int) int {
	val, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
