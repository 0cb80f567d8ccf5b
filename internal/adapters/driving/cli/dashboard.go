package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show an overview for the logged-in user",
	Long: `Show headline counts and the most recent leave requests.

Administrators see company totals; employees see their own leave counts
and latest paid payslip.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	stats, err := store.Stats(user)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	cmd.Println(theme.Title.Render("Welcome back, " + user.Name))
	cmd.Println()

	if user.IsAdmin() {
		cmd.Printf("  Total employees:   %d\n", stats.TotalEmployees)
		cmd.Printf("  Pending leaves:    %d\n", stats.PendingLeaves)
		cmd.Printf("  Pending payrolls:  %d\n", stats.PendingPayrolls)
	} else {
		cmd.Printf("  Pending leaves:    %d\n", stats.MyPendingLeaves)
		cmd.Printf("  Approved leaves:   %d\n", stats.MyApprovedLeaves)
		if p := stats.LatestPayslip; p != nil {
			cmd.Printf("  Latest payslip:    %s net %s (paid %s)\n", p.Month, money(p.NetSalary), p.PaymentDate)
		} else {
			cmd.Printf("  Latest payslip:    %s\n", theme.Muted.Render("none yet"))
		}
	}
	cmd.Println()

	cmd.Println(theme.Label.Render("Recent leave requests"))
	if len(stats.RecentLeaves) == 0 {
		cmd.Println(theme.Muted.Render("  none"))
		return nil
	}
	rows := make([][]string, 0, len(stats.RecentLeaves))
	for _, l := range stats.RecentLeaves {
		rows = append(rows, []string{l.EmployeeName, l.StartDate, l.EndDate, theme.LeaveStatus(l.Status)})
	}
	cmd.Println(theme.Table([]string{"Employee", "From", "To", "Status"}, rows))
	return nil
}
