package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// NoInput is the input schema for tools without arguments.
type NoInput struct{}

// EmployeeQueryInput is the input schema for list_employees.
type EmployeeQueryInput struct {
	Query string `json:"query,omitempty" jsonschema:"filter by first name, last name or department"`
}

// IDInput is the input schema for tools addressing one record.
type IDInput struct {
	ID string `json:"id" jsonschema:"the record id"`
}

// MonthInput is the input schema for month-scoped payroll tools.
type MonthInput struct {
	Month string `json:"month,omitempty" jsonschema:"payroll month as YYYY-MM"`
}

// EmployeeInput is the input schema for add_employee and update_employee.
// Empty fields keep their current value on update.
type EmployeeInput struct {
	ID         string  `json:"id,omitempty" jsonschema:"employee id (required for update)"`
	FirstName  string  `json:"firstName,omitempty"`
	LastName   string  `json:"lastName,omitempty"`
	Email      string  `json:"email,omitempty"`
	Position   string  `json:"position,omitempty"`
	Department string  `json:"department,omitempty" jsonschema:"Engineering, Design, Human Resources, Marketing, Sales or Unassigned"`
	Salary     float64 `json:"salary,omitempty" jsonschema:"annual salary"`
	HireDate   string  `json:"hireDate,omitempty" jsonschema:"YYYY-MM-DD"`
	Phone      string  `json:"phone,omitempty"`
	Address    string  `json:"address,omitempty"`
	Status     string  `json:"status,omitempty" jsonschema:"Active or Inactive"`
	Avatar     string  `json:"avatar,omitempty"`
}

// LeaveRequestInput is the input schema for request_leave.
type LeaveRequestInput struct {
	EmployeeID string `json:"employeeId,omitempty" jsonschema:"employee id (administrator only)"`
	StartDate  string `json:"startDate" jsonschema:"first day of leave, YYYY-MM-DD"`
	EndDate    string `json:"endDate" jsonschema:"last day of leave, YYYY-MM-DD"`
	Reason     string `json:"reason"`
}

// LeaveStatusInput is the input schema for decide_leave.
type LeaveStatusInput struct {
	ID     string `json:"id" jsonschema:"the leave request id"`
	Status string `json:"status" jsonschema:"APPROVED or REJECTED"`
}

// UserOutput describes the session user.
type UserOutput struct {
	User *domain.User `json:"user"`
}

// EmployeesOutput is the output schema for employee listings.
type EmployeesOutput struct {
	Employees []domain.Employee `json:"employees"`
	Count     int               `json:"count"`
}

// EmployeeOutput is the output schema for single-employee tools.
type EmployeeOutput struct {
	Employee *domain.Employee `json:"employee,omitempty"`
	Warning  string           `json:"warning,omitempty"`
}

// LeavesOutput is the output schema for leave listings.
type LeavesOutput struct {
	Leaves []domain.LeaveRequest `json:"leaves"`
	Count  int                   `json:"count"`
}

// LeaveOutput is the output schema for single-leave tools.
type LeaveOutput struct {
	Leave   *domain.LeaveRequest `json:"leave"`
	Warning string               `json:"warning,omitempty"`
}

// PayrollsOutput is the output schema for payroll listings and runs.
type PayrollsOutput struct {
	Records []domain.PayrollRecord `json:"records"`
	Count   int                    `json:"count"`
	Warning string                 `json:"warning,omitempty"`
}

// PayrollOutput is the output schema for single-record payroll tools.
type PayrollOutput struct {
	Record  *domain.PayrollRecord `json:"record"`
	Warning string                `json:"warning,omitempty"`
}

// CSVOutput carries an exported CSV document.
type CSVOutput struct {
	FileName string `json:"fileName"`
	CSV      string `json:"csv"`
}

// StatusOutput reports a change without a record.
type StatusOutput struct {
	OK      bool   `json:"ok"`
	Warning string `json:"warning,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "whoami",
		Description: "Show the user the HR tools act as",
	}, s.handleWhoami)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_employees",
		Description: "List the employees visible to the current user, optionally filtered",
	}, s.handleListEmployees)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_employee",
		Description: "Get one employee record by id",
	}, s.handleGetEmployee)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_employee",
		Description: "Add an employee record (administrator)",
	}, s.handleAddEmployee)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_employee",
		Description: "Update the given fields of an employee record",
	}, s.handleUpdateEmployee)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_employee",
		Description: "Delete an employee record (administrator); history is kept",
	}, s.handleDeleteEmployee)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_leaves",
		Description: "List leave requests visible to the current user, newest first",
	}, s.handleListLeaves)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "request_leave",
		Description: "File a leave request",
	}, s.handleRequestLeave)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "decide_leave",
		Description: "Approve or reject a pending leave request (administrator)",
	}, s.handleDecideLeave)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_payroll",
		Description: "List payroll records visible to the current user",
	}, s.handleListPayroll)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_payroll",
		Description: "Generate pending payroll for every employee for a month (administrator)",
	}, s.handleRunPayroll)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "mark_payroll_paid",
		Description: "Mark a payroll record as paid (administrator)",
	}, s.handleMarkPayrollPaid)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_payroll_csv",
		Description: "Export a month's payroll as CSV",
	}, s.handleExportPayrollCSV)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dashboard",
		Description: "Headline counts and recent leave requests for the current user",
	}, s.handleDashboard)
}

// actor returns the session user or ErrNotAuthenticated.
func (s *Server) actor() (*domain.User, error) {
	user := s.ports.Store.CurrentUser()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

// warning splits a persistence failure, which leaves the change applied,
// from a real error.
func warning(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if errors.Is(err, domain.ErrPersistenceUnavailable) {
		return "change applied but not saved: " + err.Error(), nil
	}
	return "", err
}

func (s *Server) handleWhoami(
	_ context.Context, _ *mcp.CallToolRequest, _ NoInput,
) (*mcp.CallToolResult, UserOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, UserOutput{}, err
	}
	return nil, UserOutput{User: user}, nil
}

func (s *Server) handleListEmployees(
	_ context.Context, _ *mcp.CallToolRequest, input EmployeeQueryInput,
) (*mcp.CallToolResult, EmployeesOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, EmployeesOutput{}, err
	}
	employees, err := s.ports.Store.Employees(user, input.Query)
	if err != nil {
		return nil, EmployeesOutput{}, err
	}
	return nil, EmployeesOutput{Employees: employees, Count: len(employees)}, nil
}

func (s *Server) handleGetEmployee(
	_ context.Context, _ *mcp.CallToolRequest, input IDInput,
) (*mcp.CallToolResult, EmployeeOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, EmployeeOutput{}, err
	}
	e, err := s.ports.Store.Employee(user, input.ID)
	if err != nil {
		return nil, EmployeeOutput{}, err
	}
	return nil, EmployeeOutput{Employee: e}, nil
}

func (s *Server) handleAddEmployee(
	ctx context.Context, _ *mcp.CallToolRequest, input EmployeeInput,
) (*mcp.CallToolResult, EmployeeOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, EmployeeOutput{}, err
	}

	var e domain.Employee
	input.applyTo(&e)
	added, err := s.ports.Store.AddEmployee(ctx, user, e)
	warn, err := warning(err)
	if err != nil {
		return nil, EmployeeOutput{}, err
	}
	return nil, EmployeeOutput{Employee: added, Warning: warn}, nil
}

func (s *Server) handleUpdateEmployee(
	ctx context.Context, _ *mcp.CallToolRequest, input EmployeeInput,
) (*mcp.CallToolResult, EmployeeOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, EmployeeOutput{}, err
	}

	current, err := s.ports.Store.Employee(user, input.ID)
	if err != nil {
		return nil, EmployeeOutput{}, err
	}
	next := *current
	input.applyTo(&next)

	updated, err := s.ports.Store.UpdateEmployee(ctx, user, next)
	warn, err := warning(err)
	if err != nil {
		return nil, EmployeeOutput{}, err
	}
	return nil, EmployeeOutput{Employee: updated, Warning: warn}, nil
}

func (s *Server) handleDeleteEmployee(
	ctx context.Context, _ *mcp.CallToolRequest, input IDInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, StatusOutput{}, err
	}
	warn, err := warning(s.ports.Store.DeleteEmployee(ctx, user, input.ID))
	if err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, StatusOutput{OK: true, Warning: warn}, nil
}

func (s *Server) handleListLeaves(
	_ context.Context, _ *mcp.CallToolRequest, _ NoInput,
) (*mcp.CallToolResult, LeavesOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, LeavesOutput{}, err
	}
	leaves, err := s.ports.Store.Leaves(user)
	if err != nil {
		return nil, LeavesOutput{}, err
	}
	return nil, LeavesOutput{Leaves: leaves, Count: len(leaves)}, nil
}

func (s *Server) handleRequestLeave(
	ctx context.Context, _ *mcp.CallToolRequest, input LeaveRequestInput,
) (*mcp.CallToolResult, LeaveOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, LeaveOutput{}, err
	}
	leave, err := s.ports.Store.AddLeaveRequest(ctx, user, domain.LeaveInput{
		EmployeeID: input.EmployeeID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Reason:     input.Reason,
	})
	warn, err := warning(err)
	if err != nil {
		return nil, LeaveOutput{}, err
	}
	return nil, LeaveOutput{Leave: leave, Warning: warn}, nil
}

func (s *Server) handleDecideLeave(
	ctx context.Context, _ *mcp.CallToolRequest, input LeaveStatusInput,
) (*mcp.CallToolResult, LeaveOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, LeaveOutput{}, err
	}
	status := domain.LeaveStatus(strings.ToUpper(strings.TrimSpace(input.Status)))
	leave, err := s.ports.Store.UpdateLeaveStatus(ctx, user, input.ID, status)
	warn, err := warning(err)
	if err != nil {
		return nil, LeaveOutput{}, err
	}
	return nil, LeaveOutput{Leave: leave, Warning: warn}, nil
}

func (s *Server) handleListPayroll(
	_ context.Context, _ *mcp.CallToolRequest, input MonthInput,
) (*mcp.CallToolResult, PayrollsOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, PayrollsOutput{}, err
	}
	records, err := s.ports.Store.Payrolls(user, input.Month)
	if err != nil {
		return nil, PayrollsOutput{}, err
	}
	return nil, PayrollsOutput{Records: records, Count: len(records)}, nil
}

func (s *Server) handleRunPayroll(
	ctx context.Context, _ *mcp.CallToolRequest, input MonthInput,
) (*mcp.CallToolResult, PayrollsOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, PayrollsOutput{}, err
	}
	added, err := s.ports.Store.RunPayroll(ctx, user, input.Month)
	warn, err := warning(err)
	if err != nil {
		return nil, PayrollsOutput{}, err
	}
	return nil, PayrollsOutput{Records: added, Count: len(added), Warning: warn}, nil
}

func (s *Server) handleMarkPayrollPaid(
	ctx context.Context, _ *mcp.CallToolRequest, input IDInput,
) (*mcp.CallToolResult, PayrollOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, PayrollOutput{}, err
	}
	record, err := s.ports.Store.MarkPayrollPaid(ctx, user, input.ID)
	warn, err := warning(err)
	if err != nil {
		return nil, PayrollOutput{}, err
	}
	return nil, PayrollOutput{Record: record, Warning: warn}, nil
}

func (s *Server) handleExportPayrollCSV(
	_ context.Context, _ *mcp.CallToolRequest, input MonthInput,
) (*mcp.CallToolResult, CSVOutput, error) {
	user, err := s.actor()
	if err != nil {
		return nil, CSVOutput{}, err
	}
	if _, err := domain.ParseMonth(input.Month); err != nil {
		return nil, CSVOutput{}, fmt.Errorf("%w: month must be YYYY-MM", domain.ErrInvalidInput)
	}

	var b strings.Builder
	if err := s.ports.Store.ExportPayrollCSV(user, input.Month, &b); err != nil {
		return nil, CSVOutput{}, err
	}
	return nil, CSVOutput{FileName: domain.PayrollCSVFileName(input.Month), CSV: b.String()}, nil
}

func (s *Server) handleDashboard(
	_ context.Context, _ *mcp.CallToolRequest, _ NoInput,
) (*mcp.CallToolResult, domain.DashboardStats, error) {
	user, err := s.actor()
	if err != nil {
		return nil, domain.DashboardStats{}, err
	}
	stats, err := s.ports.Store.Stats(user)
	if err != nil {
		return nil, domain.DashboardStats{}, err
	}
	return nil, *stats, nil
}

// applyTo copies the non-empty fields of the input onto e.
func (in EmployeeInput) applyTo(e *domain.Employee) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&e.ID, in.ID)
	set(&e.FirstName, in.FirstName)
	set(&e.LastName, in.LastName)
	set(&e.Email, in.Email)
	set(&e.Position, in.Position)
	set(&e.HireDate, in.HireDate)
	set(&e.Phone, in.Phone)
	set(&e.Address, in.Address)
	set(&e.Avatar, in.Avatar)
	if in.Department != "" {
		e.Department = domain.Department(in.Department)
	}
	if in.Status != "" {
		e.Status = domain.EmployeeStatus(in.Status)
	}
	if in.Salary != 0 {
		e.Salary = in.Salary
	}
}
