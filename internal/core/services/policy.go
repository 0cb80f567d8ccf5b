package services

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// Resources guarded by the policy.
const (
	ResourceEmployee = "employee"
	ResourceLeave    = "leave"
	ResourcePayroll  = "payroll"
	ResourceStore    = "store"
)

// Actions checked against the policy. The *Own actions apply only to
// records owned by the acting user.
const (
	ActionList      = "list"
	ActionCreate    = "create"
	ActionCreateOwn = "create_own"
	ActionUpdate    = "update"
	ActionUpdateOwn = "update_own"
	ActionDelete    = "delete"
	ActionApprove   = "approve"
	ActionGenerate  = "generate"
	ActionPay       = "pay"
	ActionReset     = "reset"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rolePermissions is the role/action table.
var rolePermissions = map[domain.Role][][2]string{
	domain.RoleAdmin: {
		{ResourceEmployee, ActionList},
		{ResourceEmployee, ActionCreate},
		{ResourceEmployee, ActionUpdate},
		{ResourceEmployee, ActionDelete},
		{ResourceLeave, ActionList},
		{ResourceLeave, ActionCreate},
		{ResourceLeave, ActionApprove},
		{ResourcePayroll, ActionList},
		{ResourcePayroll, ActionGenerate},
		{ResourcePayroll, ActionPay},
		{ResourceStore, ActionReset},
	},
	domain.RoleEmployee: {
		{ResourceEmployee, ActionUpdateOwn},
		{ResourceLeave, ActionCreateOwn},
	},
}

// Policy decides what a user may see and change.
// It holds no session state; every decision is a function of its arguments.
type Policy struct {
	enforcer *casbin.Enforcer
}

// NewPolicy builds the policy from the built-in role table.
func NewPolicy() (*Policy, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("loading policy model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("creating enforcer: %w", err)
	}

	var rules [][]string
	for role, perms := range rolePermissions {
		for _, p := range perms {
			rules = append(rules, []string{string(role), p[0], p[1]})
		}
	}
	if _, err := e.AddPolicies(rules); err != nil {
		return nil, fmt.Errorf("adding policies: %w", err)
	}

	return &Policy{enforcer: e}, nil
}

// Can reports whether user's role grants action on resource.
// A nil user can do nothing.
func (p *Policy) Can(user *domain.User, resource, action string) bool {
	if user == nil {
		return false
	}
	ok, err := p.enforcer.Enforce(string(user.Role), resource, action)
	return err == nil && ok
}

// Authorize returns nil when user may perform action on resource.
func (p *Policy) Authorize(user *domain.User, resource, action string) error {
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	if !p.Can(user, resource, action) {
		return fmt.Errorf("%w: %s may not %s %s", domain.ErrForbidden, strings.ToLower(string(user.Role)), action, resource)
	}
	return nil
}

// CanViewEmployee reports whether user may see e.
func (p *Policy) CanViewEmployee(user *domain.User, e domain.Employee) bool {
	return p.Can(user, ResourceEmployee, ActionList) || (user != nil && user.ID == e.ID)
}

// CanViewLeave reports whether user may see l.
func (p *Policy) CanViewLeave(user *domain.User, l domain.LeaveRequest) bool {
	return p.Can(user, ResourceLeave, ActionList) || (user != nil && user.ID == l.EmployeeID)
}

// CanViewPayroll reports whether user may see r.
func (p *Policy) CanViewPayroll(user *domain.User, r domain.PayrollRecord) bool {
	return p.Can(user, ResourcePayroll, ActionList) || (user != nil && user.ID == r.EmployeeID)
}

// FilterEmployees returns the employees user may see, in order.
func (p *Policy) FilterEmployees(user *domain.User, employees []domain.Employee) []domain.Employee {
	out := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if p.CanViewEmployee(user, e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterLeaves returns the leave requests user may see, in order.
func (p *Policy) FilterLeaves(user *domain.User, leaves []domain.LeaveRequest) []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, 0, len(leaves))
	for _, l := range leaves {
		if p.CanViewLeave(user, l) {
			out = append(out, l)
		}
	}
	return out
}

// FilterPayrolls returns the payroll records user may see, in order.
func (p *Policy) FilterPayrolls(user *domain.User, records []domain.PayrollRecord) []domain.PayrollRecord {
	out := make([]domain.PayrollRecord, 0, len(records))
	for _, r := range records {
		if p.CanViewPayroll(user, r) {
			out = append(out, r)
		}
	}
	return out
}

// CheckEmployeeEdit returns nil when user may turn before into after.
// Employees may change only the phone, address and avatar of their own record.
func (p *Policy) CheckEmployeeEdit(user *domain.User, before, after domain.Employee) error {
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	if p.Can(user, ResourceEmployee, ActionUpdate) {
		return nil
	}
	if !p.Can(user, ResourceEmployee, ActionUpdateOwn) || user.ID != before.ID {
		return fmt.Errorf("%w: cannot edit another employee's record", domain.ErrForbidden)
	}
	if changed := protectedChanges(before, after); len(changed) > 0 {
		return fmt.Errorf("%w: cannot change %s", domain.ErrForbidden, strings.Join(changed, ", "))
	}
	return nil
}

// CheckLeaveCreate returns nil when user may file leave for employeeID.
func (p *Policy) CheckLeaveCreate(user *domain.User, employeeID string) error {
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	if p.Can(user, ResourceLeave, ActionCreate) {
		return nil
	}
	if p.Can(user, ResourceLeave, ActionCreateOwn) && user.ID == employeeID {
		return nil
	}
	return fmt.Errorf("%w: cannot request leave for another employee", domain.ErrForbidden)
}

// protectedChanges lists the identity and HR fields that differ.
func protectedChanges(before, after domain.Employee) []string {
	var changed []string
	check := func(name string, differs bool) {
		if differs {
			changed = append(changed, name)
		}
	}
	check("id", before.ID != after.ID)
	check("firstName", before.FirstName != after.FirstName)
	check("lastName", before.LastName != after.LastName)
	check("email", !domain.SameEmail(before.Email, after.Email))
	check("position", before.Position != after.Position)
	check("department", before.Department != after.Department)
	check("salary", before.Salary != after.Salary)
	check("hireDate", before.HireDate != after.HireDate)
	check("status", before.Status != after.Status)
	return changed
}
