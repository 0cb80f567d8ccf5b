package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

var (
	payrollMonth  string
	payrollJSON   bool
	exportOutput  string
	payslipMonth  string
	payslipOutput string
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Run and review payroll",
	Long: `Generate monthly payroll, mark records paid, and export them.

Monthly basic salary is the annual salary divided by twelve; deductions
are a fixed share of basic (see 'hrcentral settings deduction').`,
}

var payrollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payroll records",
	Args:  cobra.NoArgs,
	RunE:  runPayrollList,
}

var payrollRunCmd = &cobra.Command{
	Use:   "run [month]",
	Short: "Generate payroll for every employee (administrator)",
	Long: `Generate a pending payroll record for every employee for the given
month (YYYY-MM). Employees who already have a record for that month are
skipped, so running the same month twice adds nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPayrollRun,
}

var payrollPayCmd = &cobra.Command{
	Use:   "pay [payroll-id]",
	Short: "Mark a payroll record as paid (administrator)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayrollPay,
}

var payrollExportCmd = &cobra.Command{
	Use:   "export [month]",
	Short: "Export a month's payroll as CSV",
	Long: `Write the month's payroll records as CSV to payroll_<month>.csv in the
current directory, or to --output. Use --output - to write to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runPayrollExport,
}

var payrollPayslipCmd = &cobra.Command{
	Use:   "payslip [payroll-id...]",
	Short: "Write payslips as a PDF",
	Long: `Write one PDF page per payroll record. Pass record IDs, or --month to
print every record of that month you may see.`,
	RunE: runPayrollPayslip,
}

func init() {
	payrollListCmd.Flags().StringVarP(&payrollMonth, "month", "m", "", "only records for this month (YYYY-MM)")
	payrollListCmd.Flags().BoolVar(&payrollJSON, "json", false, "output as JSON")

	payrollExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default payroll_<month>.csv)")

	payrollPayslipCmd.Flags().StringVarP(&payslipMonth, "month", "m", "", "print every visible record of this month")
	payrollPayslipCmd.Flags().StringVarP(&payslipOutput, "output", "o", "payslips.pdf", "output file")

	payrollCmd.AddCommand(payrollListCmd)
	payrollCmd.AddCommand(payrollRunCmd)
	payrollCmd.AddCommand(payrollPayCmd)
	payrollCmd.AddCommand(payrollExportCmd)
	payrollCmd.AddCommand(payrollPayslipCmd)
	rootCmd.AddCommand(payrollCmd)
}

func runPayrollList(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	records, err := store.Payrolls(user, payrollMonth)
	if err != nil {
		return fmt.Errorf("failed to list payroll: %w", err)
	}

	if payrollJSON {
		return writeJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("No payroll records.")
		return nil
	}

	cmd.Println(payrollTable(records))
	return nil
}

func payrollTable(records []domain.PayrollRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		paid := r.PaymentDate
		if paid == "" {
			paid = "-"
		}
		rows = append(rows, []string{
			r.ID,
			r.EmployeeName,
			r.Month,
			money(r.BasicSalary),
			money(r.Deductions),
			money(r.NetSalary),
			theme.PaymentStatus(r.Status),
			paid,
		})
	}
	return theme.Table([]string{"ID", "Employee", "Month", "Basic", "Deductions", "Net", "Status", "Paid"}, rows)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func runPayrollRun(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	added, err := store.RunPayroll(cmd.Context(), user, args[0])
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("failed to run payroll: %w", err)
	}

	if len(added) == 0 {
		cmd.Printf("Payroll for %s already generated; nothing added.\n", args[0])
		return nil
	}

	cmd.Println(payrollTable(added))
	cmd.Printf("Generated %d payroll record(s) for %s\n", len(added), args[0])
	return nil
}

func runPayrollPay(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	record, err := store.MarkPayrollPaid(cmd.Context(), user, args[0])
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("failed to mark payroll paid: %w", err)
	}

	cmd.Printf("Payroll %s for %s (%s) is %s on %s\n",
		record.ID, record.EmployeeName, record.Month, record.Status, record.PaymentDate)
	return nil
}

func runPayrollExport(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	month := args[0]
	if _, err := domain.ParseMonth(month); err != nil {
		return fmt.Errorf("%w: month must be YYYY-MM", domain.ErrInvalidInput)
	}

	path := exportOutput
	if path == "" {
		path = domain.PayrollCSVFileName(month)
	}
	if path == "-" {
		return store.ExportPayrollCSV(user, month, cmd.OutOrStdout())
	}

	if err := writeFile(path, func(w io.Writer) error {
		return store.ExportPayrollCSV(user, month, w)
	}); err != nil {
		return fmt.Errorf("failed to export payroll: %w", err)
	}

	cmd.Printf("Exported payroll for %s to %s\n", month, path)
	return nil
}

func runPayrollPayslip(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}
	if payslipRenderer == nil {
		return errors.New("payslip renderer not configured")
	}

	var records []domain.PayrollRecord
	switch {
	case len(args) > 0:
		for _, id := range args {
			r, err := store.Payslip(user, id)
			if err != nil {
				return fmt.Errorf("failed to get payslip: %w", err)
			}
			records = append(records, *r)
		}
	case payslipMonth != "":
		records, err = store.Payrolls(user, payslipMonth)
		if err != nil {
			return fmt.Errorf("failed to list payroll: %w", err)
		}
	default:
		return errors.New("pass payroll IDs or --month")
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: no payroll records for %s", domain.ErrNotFound, payslipMonth)
	}

	if err := writeFile(payslipOutput, func(w io.Writer) error {
		return payslipRenderer.Render(w, records)
	}); err != nil {
		return fmt.Errorf("failed to write payslips: %w", err)
	}

	cmd.Printf("Wrote %d payslip(s) to %s\n", len(records), payslipOutput)
	return nil
}

// writeFile creates path and fills it with write, removing the file when
// write fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
