// Command hrcentral keeps employee records, leave requests and payroll
// for a small company on the local machine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/payslip"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/persistence"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/core/services"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// apiKeyEnv names the environment variable consulted when the config
// file holds no API key for a provider.
var apiKeyEnv = map[domain.AIProvider]string{
	domain.AIProviderOpenAI:    "OPENAI_API_KEY",
	domain.AIProviderAnthropic: "ANTHROPIC_API_KEY",
}

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configDir, err := file.DefaultConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading config: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading settings: %v\n", err)
		return 1
	}
	if settings.AI.APIKey == "" {
		if name, ok := apiKeyEnv[settings.AI.Provider]; ok {
			settings.AI.APIKey = os.Getenv(name)
		}
	}

	kv, closeKV := openKeyValueStore(settings.Storage)
	defer closeKV()

	policy, err := services.NewPolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading access policy: %v\n", err)
		return 1
	}
	store := services.NewStore(
		persistence.NewAdapter(kv),
		policy,
		services.NewPayrollCalculator(settings.Payroll.DeductionRate),
		clock.Real{},
	)
	if err := store.Initialize(ctx); err != nil {
		logger.Warn("starting with partial records: %v", err)
	} else {
		defer func() {
			if err := store.Shutdown(context.Background()); err != nil {
				logger.Warn("saving records on exit: %v", err)
			}
		}()
	}

	assistant := ai.InitAssistant(&settings.AI, filepath.Join(configDir, "prompts"))
	defer assistant.Close()
	for _, w := range assistant.Warnings {
		logger.Warn("assistant: %s", w)
	}

	var prompts driven.PromptStore
	var watcher cli.PromptWatcher
	if assistant.PromptStore != nil {
		prompts = assistant.PromptStore
		watcher = assistant.PromptStore
	}

	cli.SetServices(&cli.Services{
		Store:           store,
		Assistant:       services.NewAssistantService(assistant.LLMService, prompts),
		Settings:        settingsService,
		PayslipRenderer: payslip.NewPDFRenderer(""),
		PromptWatcher:   watcher,
	})

	// cobra reports the error itself.
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// openKeyValueStore opens the configured backend. A SQLite database that
// cannot be opened falls back to memory so the command still runs.
func openKeyValueStore(cfg domain.StorageSettings) (driven.KeyValueStore, func()) {
	if cfg.Backend == domain.StorageMemory {
		return memory.NewKVStore(), func() {}
	}

	db, err := sqlite.NewStore(cfg.Path)
	if err != nil {
		logger.Warn("opening database: %v; changes will not be saved", err)
		return memory.NewKVStore(), func() {}
	}
	logger.Debug("storage: %s", db.Path())
	return db.KeyValueStore(), func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing database: %v", err)
		}
	}
}
