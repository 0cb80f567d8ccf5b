package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all records and restore the sample data (administrator)",
	Long: `Erase every saved employee, leave request and payroll record, end the
session, and load the sample data again. This cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	if !resetYes {
		cmd.Print("This erases all records. Continue? [y/N]: ")
		if !confirmed(readLine(bufio.NewReader(os.Stdin))) {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := saved(cmd, store.Reset(cmd.Context(), user)); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	cmd.Println(theme.Success.Render("All records erased; sample data restored. Please log in again."))
	return nil
}

// confirmed reports whether an interactive answer means yes.
func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
