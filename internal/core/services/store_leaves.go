package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// Leaves returns the leave requests actor may see, newest first, with
// employee names resolved from the current employee records.
func (s *Store) Leaves(actor *domain.User) ([]domain.LeaveRequest, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.visibleLeavesLocked(actor), nil
}

func (s *Store) visibleLeavesLocked(actor *domain.User) []domain.LeaveRequest {
	leaves := s.policy.FilterLeaves(actor, s.leaves)
	for i := range leaves {
		leaves[i].EmployeeName = s.employeeNameLocked(leaves[i].EmployeeID)
	}
	return leaves
}

// AddLeaveRequest files a pending leave request and places it first.
// Employees file for themselves. Administrators file for input.EmployeeID,
// or for the first employee on record when it is empty.
func (s *Store) AddLeaveRequest(
	ctx context.Context, actor *domain.User, input domain.LeaveInput,
) (*domain.LeaveRequest, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	start, _ := time.Parse(domain.DateLayout, input.StartDate)
	end, _ := time.Parse(domain.DateLayout, input.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate is before startDate", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employeeID := input.EmployeeID
	switch {
	case !actor.IsAdmin() && employeeID == "":
		employeeID = actor.ID
	case actor.IsAdmin() && employeeID == "":
		if len(s.employees) == 0 {
			return nil, fmt.Errorf("%w: no employee to attribute the request to", domain.ErrNotFound)
		}
		employeeID = s.employees[0].ID
	}
	if err := s.policy.CheckLeaveCreate(actor, employeeID); err != nil {
		return nil, err
	}
	i := s.employeeIndexLocked(employeeID)
	if i < 0 {
		return nil, fmt.Errorf("%w: employee %s", domain.ErrNotFound, employeeID)
	}

	leave := domain.LeaveRequest{
		ID:           s.newID(),
		EmployeeID:   employeeID,
		EmployeeName: s.employees[i].FullName(),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Reason:       input.Reason,
		Status:       domain.LeavePending,
		RequestedOn:  s.today(),
	}

	leaves := make([]domain.LeaveRequest, 0, len(s.leaves)+1)
	leaves = append(leaves, leave)
	s.leaves = append(leaves, s.leaves...)
	logger.Debug("store: leave %s filed for employee %s", leave.ID, employeeID)

	return &leave, s.warn(s.saveLeavesLocked(ctx))
}

// UpdateLeaveStatus moves a pending request to approved or rejected.
// Administrators only; decided requests cannot change again.
func (s *Store) UpdateLeaveStatus(
	ctx context.Context, actor *domain.User, id string, status domain.LeaveStatus,
) (*domain.LeaveRequest, error) {
	if err := s.policy.Authorize(actor, ResourceLeave, ActionApprove); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown leave status %q", domain.ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.leaveIndexLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: leave request %s", domain.ErrNotFound, id)
	}
	current := s.leaves[i].Status
	if !current.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: leave request %s is %s, cannot become %s",
			domain.ErrIllegalTransition, id, current, status)
	}

	s.leaves[i].Status = status
	leave := s.leaves[i]
	leave.EmployeeName = s.employeeNameLocked(leave.EmployeeID)
	logger.Debug("store: leave %s %s -> %s", id, current, status)

	return &leave, s.warn(s.saveLeavesLocked(ctx))
}

func (s *Store) leaveIndexLocked(id string) int {
	for i, l := range s.leaves {
		if l.ID == id {
			return i
		}
	}
	return -1
}
