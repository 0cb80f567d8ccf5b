package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// employeeFields binds the editable employee fields to command flags.
type employeeFields struct {
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department string
	Salary     float64
	HireDate   string
	Phone      string
	Address    string
	Status     string
	Avatar     string
}

func (f *employeeFields) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.FirstName, "first-name", "", "first name")
	flags.StringVar(&f.LastName, "last-name", "", "last name")
	flags.StringVar(&f.Email, "email", "", "email address")
	flags.StringVar(&f.Position, "position", "", "job title")
	flags.StringVar(&f.Department, "department", "", "department (Engineering, Design, Human Resources, Marketing, Sales)")
	flags.Float64Var(&f.Salary, "salary", 0, "annual salary")
	flags.StringVar(&f.HireDate, "hire-date", "", "hire date (YYYY-MM-DD)")
	flags.StringVar(&f.Phone, "phone", "", "phone number")
	flags.StringVar(&f.Address, "address", "", "postal address")
	flags.StringVar(&f.Status, "status", "", "Active or Inactive")
	flags.StringVar(&f.Avatar, "avatar", "", "avatar image URL")
}

// apply copies the flags that were set on the command line onto e.
func (f *employeeFields) apply(flags *pflag.FlagSet, e *domain.Employee) {
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("first-name", &e.FirstName, f.FirstName)
	set("last-name", &e.LastName, f.LastName)
	set("email", &e.Email, f.Email)
	set("position", &e.Position, f.Position)
	set("hire-date", &e.HireDate, f.HireDate)
	set("phone", &e.Phone, f.Phone)
	set("address", &e.Address, f.Address)
	set("avatar", &e.Avatar, f.Avatar)
	if flags.Changed("department") {
		e.Department = domain.Department(f.Department)
	}
	if flags.Changed("status") {
		e.Status = domain.EmployeeStatus(f.Status)
	}
	if flags.Changed("salary") {
		e.Salary = f.Salary
	}
}

var (
	employeeSearch string
	employeeJSON   bool
	employeeAdd    employeeFields
	employeeUpdate employeeFields
)

var employeeCmd = &cobra.Command{
	Use:     "employee",
	Aliases: []string{"employees", "emp"},
	Short:   "Manage employee records",
	Long: `List, inspect and maintain employee records.

Administrators see and edit every record. Employees see their own record
and may change only their phone, address and avatar.`,
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	Args:  cobra.NoArgs,
	RunE:  runEmployeeList,
}

var employeeShowCmd = &cobra.Command{
	Use:   "show [employee-id]",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeShow,
}

var employeeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an employee (administrator)",
	Args:  cobra.NoArgs,
	RunE:  runEmployeeAdd,
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update [employee-id]",
	Short: "Update an employee",
	Long: `Update the fields given as flags; other fields keep their values.

Example:
  hrcentral employee update 1 --phone 555-0199 --address "1 Main St"`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployeeUpdate,
}

var employeeDeleteCmd = &cobra.Command{
	Use:   "delete [employee-id]",
	Short: "Delete an employee (administrator)",
	Long: `Delete an employee record. Their leave requests and payroll records
are kept and shown as "Unknown/Deleted Employee".`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployeeDelete,
}

func init() {
	employeeListCmd.Flags().StringVarP(&employeeSearch, "search", "s", "", "filter by name or department")
	employeeListCmd.Flags().BoolVar(&employeeJSON, "json", false, "output as JSON")
	employeeAdd.bind(employeeAddCmd.Flags())
	employeeUpdate.bind(employeeUpdateCmd.Flags())

	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeShowCmd)
	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeDeleteCmd)
	rootCmd.AddCommand(employeeCmd)
}

func runEmployeeList(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	employees, err := store.Employees(user, employeeSearch)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	if employeeJSON {
		return writeJSON(cmd, employees)
	}

	if len(employees) == 0 {
		cmd.Println("No employees found.")
		return nil
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.ID, e.FullName(), e.Email, e.Position, string(e.Department), string(e.Status),
		})
	}
	cmd.Println(theme.Table([]string{"ID", "Name", "Email", "Position", "Department", "Status"}, rows))
	cmd.Printf("%d employee(s)\n", len(employees))
	return nil
}

func runEmployeeShow(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	e, err := store.Employee(user, args[0])
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	printEmployee(cmd, e)
	return nil
}

func runEmployeeAdd(cmd *cobra.Command, _ []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	var e domain.Employee
	employeeAdd.apply(cmd.Flags(), &e)

	added, err := store.AddEmployee(cmd.Context(), user, e)
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("failed to add employee: %w", err)
	}

	cmd.Printf("Added %s (ID: %s)\n", added.FullName(), added.ID)
	return nil
}

func runEmployeeUpdate(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	current, err := store.Employee(user, args[0])
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	next := *current
	employeeUpdate.apply(cmd.Flags(), &next)
	if next == *current {
		cmd.Println("Nothing to update.")
		return nil
	}

	updated, err := store.UpdateEmployee(cmd.Context(), user, next)
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	cmd.Printf("Updated %s\n", updated.FullName())
	return nil
}

func runEmployeeDelete(cmd *cobra.Command, args []string) error {
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	if err := saved(cmd, store.DeleteEmployee(cmd.Context(), user, args[0])); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	cmd.Printf("Deleted employee %s\n", args[0])
	return nil
}

func printEmployee(cmd *cobra.Command, e *domain.Employee) {
	cmd.Println(theme.Title.Render(e.FullName()))
	field := func(label, value string) {
		if value == "" {
			value = theme.Muted.Render("-")
		}
		cmd.Printf("  %-11s %s\n", label+":", value)
	}
	field("ID", e.ID)
	field("Email", e.Email)
	field("Position", e.Position)
	field("Department", string(e.Department))
	field("Salary", strconv.FormatFloat(e.Salary, 'f', 2, 64))
	field("Hire date", e.HireDate)
	field("Phone", e.Phone)
	field("Address", e.Address)
	field("Status", string(e.Status))
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
