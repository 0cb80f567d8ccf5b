package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

var (
	leaveJSON     bool
	leaveFrom     string
	leaveTo       string
	leaveReason   string
	leaveEmployee string
)

var leaveCmd = &cobra.Command{
	Use:     "leave",
	Aliases: []string{"leaves"},
	Short:   "Request and review leave",
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave requests, newest first",
	Args:  cobra.NoArgs,
	RunE:  runLeaveList,
}

var leaveRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "File a leave request",
	Long: `File a leave request. Employees file for themselves; the administrator
files for --employee, or for the first employee on record when omitted.

Example:
  hrcentral leave request --from 2024-07-01 --to 2024-07-05 --reason "Family trip"`,
	Args: cobra.NoArgs,
	RunE: runLeaveRequest,
}

var leaveApproveCmd = &cobra.Command{
	Use:   "approve [leave-id]",
	Short: "Approve a pending leave request (administrator)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLeaveStatus(cmd, args[0], domain.LeaveApproved)
	},
}

var leaveRejectCmd = &cobra.Command{
	Use:   "reject [leave-id]",
	Short: "Reject a pending leave request (administrator)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLeaveStatus(cmd, args[0], domain.LeaveRejected)
	},
}

func init() {
	leaveListCmd.Flags().BoolVar(&leaveJSON, "json", false, "output as JSON")

	leaveRequestCmd.Flags().StringVar(&leaveFrom, "from", "", "first day of leave (YYYY-MM-DD)")
	leaveRequestCmd.Flags().StringVar(&leaveTo, "to", "", "last day of leave (YYYY-MM-DD)")
	leaveRequestCmd.Flags().StringVar(&leaveReason, "reason", "", "reason for the leave")
	leaveRequestCmd.Flags().StringVar(&leaveEmployee, "employee", "", "employee ID (administrator only)")

	leaveCmd.AddCommand(leaveListCmd)
	leaveCmd.AddCommand(leaveRequestCmd)
	leaveCmd.AddCommand(leaveApproveCmd)
	leaveCmd.AddCommand(leaveRejectCmd)
	rootCmd.AddCommand(leaveCmd)
}

func runLeaveList(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	leaves, err := store.Leaves(user)
	if err != nil {
		return fmt.Errorf("failed to list leave requests: %w", err)
	}

	if leaveJSON {
		return writeJSON(cmd, leaves)
	}

	if len(leaves) == 0 {
		cmd.Println("No leave requests.")
		return nil
	}

	rows := make([][]string, 0, len(leaves))
	for _, l := range leaves {
		rows = append(rows, []string{
			l.ID, l.EmployeeName, l.StartDate, l.EndDate, l.Reason, theme.LeaveStatus(l.Status), l.RequestedOn,
		})
	}
	cmd.Println(theme.Table([]string{"ID", "Employee", "From", "To", "Reason", "Status", "Requested"}, rows))
	return nil
}

func runLeaveRequest(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	leave, err := store.AddLeaveRequest(cmd.Context(), user, domain.LeaveInput{
		EmployeeID: leaveEmployee,
		StartDate:  leaveFrom,
		EndDate:    leaveTo,
		Reason:     leaveReason,
	})
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("failed to request leave: %w", err)
	}

	cmd.Printf("Leave requested for %s: %s to %s (ID: %s, %s)\n",
		leave.EmployeeName, leave.StartDate, leave.EndDate, leave.ID, leave.Status)
	return nil
}

func setLeaveStatus(cmd *cobra.Command, id string, status domain.LeaveStatus) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	leave, err := store.UpdateLeaveStatus(cmd.Context(), user, id, status)
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	cmd.Printf("Leave %s for %s is now %s\n", leave.ID, leave.EmployeeName, leave.Status)
	return nil
}
