package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// RegisterEmployee signs up a new employee and logs them in.
// The email must not belong to an existing employee.
func (s *Store) RegisterEmployee(ctx context.Context, reg domain.Registration) (*domain.Employee, error) {
	reg.Email = domain.NormalizeEmail(reg.Email)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	if err := s.validator.Struct(reg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(reg.Email, "") {
		return nil, fmt.Errorf("%w: email %s is already registered", domain.ErrDuplicateKey, reg.Email)
	}

	employee := domain.Employee{
		ID:         s.newID(),
		FirstName:  reg.FirstName,
		LastName:   reg.LastName,
		Email:      reg.Email,
		Position:   domain.RegistrationPosition,
		Department: domain.DepartmentUnassigned,
		Salary:     0,
		HireDate:   s.today(),
		Phone:      reg.Phone,
		Address:    reg.Address,
		Status:     domain.EmployeeActive,
	}
	s.employees = append(s.employees, employee)

	user := domain.NewEmployeeUser(employee)
	s.user = &user
	logger.Debug("store: registered employee %s", employee.ID)

	err := s.warn(errors.Join(
		s.saveEmployeesLocked(ctx),
		s.persistence.SaveSession(ctx, user),
	))
	return &employee, err
}

// Employees returns the employees actor may see. A non-empty query keeps
// only employees whose first name, last name or department contains it,
// ignoring case.
func (s *Store) Employees(actor *domain.User, query string) ([]domain.Employee, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := s.policy.FilterEmployees(actor, s.employees)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return visible, nil
	}

	matches := make([]domain.Employee, 0, len(visible))
	for _, e := range visible {
		if strings.Contains(strings.ToLower(e.FirstName), query) ||
			strings.Contains(strings.ToLower(e.LastName), query) ||
			strings.Contains(strings.ToLower(string(e.Department)), query) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// Employee returns one employee visible to actor.
func (s *Store) Employee(actor *domain.User, id string) (*domain.Employee, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.employeeIndexLocked(id)
	if i < 0 || !s.policy.CanViewEmployee(actor, s.employees[i]) {
		return nil, fmt.Errorf("%w: employee %s", domain.ErrNotFound, id)
	}
	e := s.employees[i]
	return &e, nil
}

// AddEmployee appends an employee record. Administrators only.
// Missing id, status, department and hire date are filled in.
func (s *Store) AddEmployee(ctx context.Context, actor *domain.User, employee domain.Employee) (*domain.Employee, error) {
	if err := s.policy.Authorize(actor, ResourceEmployee, ActionCreate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if employee.ID == "" {
		employee.ID = s.newID()
	} else if s.employeeIndexLocked(employee.ID) >= 0 {
		return nil, fmt.Errorf("%w: employee id %s already exists", domain.ErrDuplicateKey, employee.ID)
	}
	if employee.Status == "" {
		employee.Status = domain.EmployeeActive
	}
	if employee.Department == "" {
		employee.Department = domain.DepartmentUnassigned
	}
	if employee.HireDate == "" {
		employee.HireDate = s.today()
	}
	employee.Email = domain.NormalizeEmail(employee.Email)

	if err := s.validator.Struct(employee); err != nil {
		return nil, err
	}
	if s.emailTakenLocked(employee.Email, "") {
		return nil, fmt.Errorf("%w: email %s is already registered", domain.ErrDuplicateKey, employee.Email)
	}

	s.employees = append(s.employees, employee)
	logger.Debug("store: added employee %s", employee.ID)

	return &employee, s.warn(s.saveEmployeesLocked(ctx))
}

// UpdateEmployee replaces an employee record. Administrators may change
// any field; employees may change the phone, address and avatar of their
// own record.
func (s *Store) UpdateEmployee(ctx context.Context, actor *domain.User, employee domain.Employee) (*domain.Employee, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.employeeIndexLocked(employee.ID)
	if i < 0 {
		return nil, fmt.Errorf("%w: employee %s", domain.ErrNotFound, employee.ID)
	}
	if err := s.policy.CheckEmployeeEdit(actor, s.employees[i], employee); err != nil {
		return nil, err
	}

	employee.Email = domain.NormalizeEmail(employee.Email)
	if err := s.validator.Struct(employee); err != nil {
		return nil, err
	}
	if s.emailTakenLocked(employee.Email, employee.ID) {
		return nil, fmt.Errorf("%w: email %s is already registered", domain.ErrDuplicateKey, employee.Email)
	}

	s.employees[i] = employee
	logger.Debug("store: updated employee %s", employee.ID)

	errs := []error{s.saveEmployeesLocked(ctx)}
	if s.user != nil && s.user.ID == employee.ID {
		u := domain.NewEmployeeUser(employee)
		s.user = &u
		errs = append(errs, s.persistence.SaveSession(ctx, u))
	}
	return &employee, s.warn(errors.Join(errs...))
}

// DeleteEmployee removes an employee record. Administrators only.
// Leave and payroll records that reference the employee are kept.
func (s *Store) DeleteEmployee(ctx context.Context, actor *domain.User, id string) error {
	if err := s.policy.Authorize(actor, ResourceEmployee, ActionDelete); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.employeeIndexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: employee %s", domain.ErrNotFound, id)
	}
	s.employees = append(s.employees[:i:i], s.employees[i+1:]...)
	logger.Debug("store: deleted employee %s", id)

	return s.warn(s.saveEmployeesLocked(ctx))
}
