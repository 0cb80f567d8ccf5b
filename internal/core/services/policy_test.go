package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

func newTestPolicy(t *testing.T) *Policy {
	t.Helper()
	p, err := NewPolicy()
	require.NoError(t, err)
	return p
}

func adminUser() *domain.User {
	u := domain.NewAdminUser("admin@hrcentral.com")
	return &u
}

func employeeUser(id string) *domain.User {
	return &domain.User{ID: id, Name: "Employee " + id, Email: id + "@hrcentral.com", Role: domain.RoleEmployee}
}

func TestPolicy_Can(t *testing.T) {
	p := newTestPolicy(t)
	admin := adminUser()
	emp := employeeUser("1")

	tests := []struct {
		resource, action string
		admin, employee  bool
	}{
		{ResourceEmployee, ActionList, true, false},
		{ResourceEmployee, ActionCreate, true, false},
		{ResourceEmployee, ActionUpdate, true, false},
		{ResourceEmployee, ActionUpdateOwn, false, true},
		{ResourceEmployee, ActionDelete, true, false},
		{ResourceLeave, ActionCreate, true, false},
		{ResourceLeave, ActionCreateOwn, false, true},
		{ResourceLeave, ActionApprove, true, false},
		{ResourcePayroll, ActionGenerate, true, false},
		{ResourcePayroll, ActionPay, true, false},
		{ResourceStore, ActionReset, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.resource+":"+tt.action, func(t *testing.T) {
			assert.Equal(t, tt.admin, p.Can(admin, tt.resource, tt.action))
			assert.Equal(t, tt.employee, p.Can(emp, tt.resource, tt.action))
			assert.False(t, p.Can(nil, tt.resource, tt.action))
		})
	}
}

func TestPolicy_Authorize(t *testing.T) {
	p := newTestPolicy(t)

	assert.NoError(t, p.Authorize(adminUser(), ResourcePayroll, ActionPay))
	assert.ErrorIs(t, p.Authorize(nil, ResourcePayroll, ActionPay), domain.ErrNotAuthenticated)

	err := p.Authorize(employeeUser("1"), ResourcePayroll, ActionPay)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "employee may not pay payroll")
}

func TestPolicy_VisibilityFilter(t *testing.T) {
	p := newTestPolicy(t)
	me := employeeUser("2")

	employees := []domain.Employee{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	leaves := []domain.LeaveRequest{
		{ID: "a", EmployeeID: "2"},
		{ID: "b", EmployeeID: "1"},
		{ID: "c", EmployeeID: "2"},
		{ID: "d", EmployeeID: "3"},
	}
	payrolls := []domain.PayrollRecord{
		{ID: "p1", EmployeeID: "1"},
		{ID: "p2", EmployeeID: "2"},
		{ID: "p3", EmployeeID: "3"},
		{ID: "p4", EmployeeID: "1"},
		{ID: "p5", EmployeeID: "3"},
	}

	visibleEmployees := p.FilterEmployees(me, employees)
	visibleLeaves := p.FilterLeaves(me, leaves)
	visiblePayrolls := p.FilterPayrolls(me, payrolls)

	require.Len(t, visibleEmployees, 1)
	assert.Equal(t, "2", visibleEmployees[0].ID)
	require.Len(t, visibleLeaves, 2)
	assert.Equal(t, "a", visibleLeaves[0].ID)
	assert.Equal(t, "c", visibleLeaves[1].ID)
	require.Len(t, visiblePayrolls, 1)
	assert.Equal(t, "p2", visiblePayrolls[0].ID)

	admin := adminUser()
	assert.Len(t, p.FilterEmployees(admin, employees), 3)
	assert.Len(t, p.FilterLeaves(admin, leaves), 4)
	assert.Len(t, p.FilterPayrolls(admin, payrolls), 5)

	assert.Empty(t, p.FilterEmployees(nil, employees))
}

func TestPolicy_CheckEmployeeEdit(t *testing.T) {
	p := newTestPolicy(t)
	before := domain.Employee{
		ID: "1", FirstName: "Sarah", LastName: "Connor", Email: "sarah.c@hrcentral.com",
		Position: "Senior Engineer", Department: domain.DepartmentEngineering, Salary: 85000,
		HireDate: "2023-01-15", Phone: "555-0101", Address: "123 Tech Blvd", Status: domain.EmployeeActive,
	}

	t.Run("employee edits contact fields", func(t *testing.T) {
		after := before
		after.Phone = "555-9999"
		after.Address = "1 New St"
		after.Avatar = "https://example.com/me.png"
		assert.NoError(t, p.CheckEmployeeEdit(employeeUser("1"), before, after))
	})

	t.Run("employee changes salary", func(t *testing.T) {
		after := before
		after.Salary = 1_000_000
		after.Position = "CTO"
		err := p.CheckEmployeeEdit(employeeUser("1"), before, after)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Contains(t, err.Error(), "position, salary")
	})

	t.Run("employee email case only", func(t *testing.T) {
		after := before
		after.Email = "Sarah.C@HRCentral.com"
		assert.NoError(t, p.CheckEmployeeEdit(employeeUser("1"), before, after))
	})

	t.Run("employee edits someone else", func(t *testing.T) {
		after := before
		after.Phone = "555-0000"
		assert.ErrorIs(t, p.CheckEmployeeEdit(employeeUser("2"), before, after), domain.ErrForbidden)
	})

	t.Run("admin edits anything", func(t *testing.T) {
		after := before
		after.Salary = 90000
		after.Department = domain.DepartmentSales
		assert.NoError(t, p.CheckEmployeeEdit(adminUser(), before, after))
	})

	t.Run("nobody logged in", func(t *testing.T) {
		assert.ErrorIs(t, p.CheckEmployeeEdit(nil, before, before), domain.ErrNotAuthenticated)
	})
}

func TestPolicy_CheckLeaveCreate(t *testing.T) {
	p := newTestPolicy(t)

	assert.NoError(t, p.CheckLeaveCreate(employeeUser("1"), "1"))
	assert.ErrorIs(t, p.CheckLeaveCreate(employeeUser("1"), "2"), domain.ErrForbidden)
	assert.NoError(t, p.CheckLeaveCreate(adminUser(), "2"))
	assert.ErrorIs(t, p.CheckLeaveCreate(nil, "1"), domain.ErrNotAuthenticated)
}
