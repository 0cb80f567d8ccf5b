package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

func TestExtractEmployeeID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid employee URI",
			uri:      "hrcentral://employees/emp-123",
			expected: "emp-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://employees/emp-123",
			expected: "",
		},
		{
			name:     "collection URI",
			uri:      "hrcentral://employees",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractEmployeeID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractMonth(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "month URI",
			uri:      "hrcentral://payrolls/2024-06",
			expected: "2024-06",
		},
		{
			name:     "collection URI",
			uri:      "hrcentral://payrolls",
			expected: "",
		},
		{
			name:     "invalid prefix",
			uri:      "file://payrolls/2024-06",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractMonth(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestServer_handleEmployeesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns visible employees as JSON", func(t *testing.T) {
		server, _ := newTestServer(t, sarahEmail, domain.RoleEmployee)

		req := makeReadResourceRequest("hrcentral://employees")
		result, err := server.handleEmployeesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Equal(t, "hrcentral://employees", result.Contents[0].URI)

		var employees []domain.Employee
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &employees))
		require.Len(t, employees, 1)
		assert.Equal(t, "Sarah", employees[0].FirstName)
	})

	t.Run("no session returns error", func(t *testing.T) {
		server, _ := newTestServer(t, "", "")

		req := makeReadResourceRequest("hrcentral://employees")
		_, err := server.handleEmployeesResource(ctx, req)

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestServer_handleEmployeeResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t, adminEmail, domain.RoleAdmin)

	t.Run("returns the employee", func(t *testing.T) {
		req := makeReadResourceRequest("hrcentral://employees/2")
		result, err := server.handleEmployeeResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"firstName": "John"`)
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		req := makeReadResourceRequest("hrcentral://employees/missing")
		_, err := server.handleEmployeeResource(ctx, req)

		assert.Error(t, err)
	})
}

func TestServer_handleLeavesResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t, adminEmail, domain.RoleAdmin)

	req := makeReadResourceRequest("hrcentral://leaves")
	result, err := server.handleLeavesResource(ctx, req)

	require.NoError(t, err)
	var leaves []domain.LeaveRequest
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &leaves))
	assert.Len(t, leaves, 2)
}

func TestServer_handlePayrollsResource(t *testing.T) {
	ctx := context.Background()
	server, store := newTestServer(t, adminEmail, domain.RoleAdmin)
	_, err := store.RunPayroll(ctx, store.CurrentUser(), "2024-05")
	require.NoError(t, err)
	_, err = store.RunPayroll(ctx, store.CurrentUser(), "2024-06")
	require.NoError(t, err)

	tests := []struct {
		uri      string
		expected int
	}{
		{uri: "hrcentral://payrolls", expected: 6},
		{uri: "hrcentral://payrolls/2024-06", expected: 3},
		{uri: "hrcentral://payrolls/2023-01", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			result, err := server.handlePayrollsResource(ctx, makeReadResourceRequest(tt.uri))

			require.NoError(t, err)
			var records []domain.PayrollRecord
			require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &records))
			assert.Len(t, records, tt.expected)
		})
	}
}
