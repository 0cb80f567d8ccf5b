package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for HR Central resources.
	uriScheme = "hrcentral://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "employees",
		Name:        "employees",
		Description: "Employee records visible to the current user",
		MIMEType:    "application/json",
	}, s.handleEmployeesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "employees/{employeeId}",
		Name:        "employee",
		Description: "One employee record",
		MIMEType:    "application/json",
	}, s.handleEmployeeResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "leaves",
		Name:        "leaves",
		Description: "Leave requests visible to the current user, newest first",
		MIMEType:    "application/json",
	}, s.handleLeavesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "payrolls",
		Name:        "payrolls",
		Description: "Payroll records visible to the current user",
		MIMEType:    "application/json",
	}, s.handlePayrollsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "payrolls/{month}",
		Name:        "payroll-month",
		Description: "Payroll records of one month (YYYY-MM)",
		MIMEType:    "application/json",
	}, s.handlePayrollsResource)
}

// handleEmployeesResource returns the visible employees.
func (s *Server) handleEmployeesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	user, err := s.actor()
	if err != nil {
		return nil, err
	}

	employees, err := s.ports.Store.Employees(user, "")
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return jsonResource(req.Params.URI, employees)
}

// handleEmployeeResource returns one employee.
func (s *Server) handleEmployeeResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	user, err := s.actor()
	if err != nil {
		return nil, err
	}

	id := extractEmployeeID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	employee, err := s.ports.Store.Employee(user, id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, employee)
}

// handleLeavesResource returns the visible leave requests.
func (s *Server) handleLeavesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	user, err := s.actor()
	if err != nil {
		return nil, err
	}

	leaves, err := s.ports.Store.Leaves(user)
	if err != nil {
		return nil, fmt.Errorf("listing leave requests: %w", err)
	}
	return jsonResource(req.Params.URI, leaves)
}

// handlePayrollsResource returns the visible payroll records, limited to
// one month when the URI names it.
func (s *Server) handlePayrollsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	user, err := s.actor()
	if err != nil {
		return nil, err
	}

	records, err := s.ports.Store.Payrolls(user, extractMonth(req.Params.URI))
	if err != nil {
		return nil, fmt.Errorf("listing payroll: %w", err)
	}
	return jsonResource(req.Params.URI, records)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractEmployeeID extracts the employee ID from a URI like hrcentral://employees/{employeeId}.
func extractEmployeeID(uri string) string {
	const prefix = uriScheme + "employees/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

// extractMonth extracts the month from a URI like hrcentral://payrolls/{month}.
// The bare payrolls URI yields "".
func extractMonth(uri string) string {
	const prefix = uriScheme + "payrolls/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
