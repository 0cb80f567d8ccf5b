// Package cli implements the hrcentral command line.
//
// Commands are thin drivers over driving.Store: every mutation runs as
// the session user restored from storage, so a login survives between
// invocations until logout.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Services wired by main.
var (
	storeService     driving.Store
	assistantService driving.AssistantService
	settingsService  driving.SettingsService
	payslipRenderer  driven.PayslipRenderer
	promptWatcher    PromptWatcher
)

var verbose bool

// PromptWatcher reloads prompt templates while a long-running command
// is active.
type PromptWatcher interface {
	Watch(ctx context.Context) error
}

// Services holds the dependencies the commands drive.
type Services struct {
	Store           driving.Store
	Assistant       driving.AssistantService
	Settings        driving.SettingsService
	PayslipRenderer driven.PayslipRenderer
	PromptWatcher   PromptWatcher
}

// SetServices installs the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	storeService = s.Store
	assistantService = s.Assistant
	settingsService = s.Settings
	payslipRenderer = s.PayslipRenderer
	promptWatcher = s.PromptWatcher
}

var rootCmd = &cobra.Command{
	Use:   "hrcentral",
	Short: "Local-first HR records for a small company",
	Long: `HR Central keeps employee records, leave requests and payroll on this
machine. Log in as the administrator to manage everyone, or as an
employee (by email) to see and request your own records.

Examples:
  hrcentral login --admin
  hrcentral employee list --search design
  hrcentral leave request --from 2024-07-01 --to 2024-07-05 --reason "Family trip"
  hrcentral payroll run 2024-06`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// requireStore returns the configured store or an error.
func requireStore() (driving.Store, error) {
	if storeService == nil {
		return nil, errors.New("store not configured")
	}
	return storeService, nil
}

// sessionUser returns the logged-in user, or ErrNotAuthenticated with a
// hint on how to log in.
func sessionUser() (driving.Store, *domain.User, error) {
	store, err := requireStore()
	if err != nil {
		return nil, nil, err
	}
	user := store.CurrentUser()
	if user == nil {
		return nil, nil, fmt.Errorf("%w: run 'hrcentral login' first", domain.ErrNotAuthenticated)
	}
	return store, user, nil
}

// saved turns a persistence failure into a printed warning: the change is
// applied for this process but was not written to disk.
func saved(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrPersistenceUnavailable) {
		cmd.PrintErrln(theme.Warning.Render("Warning: change applied but not saved: " + err.Error()))
		return nil
	}
	return err
}
