package domain

// LeaveStatus is the review state of a leave request.
type LeaveStatus string

// Available leave statuses. Approved and Rejected are terminal.
const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// leaveTransitions lists the statuses reachable from each status.
var leaveTransitions = map[LeaveStatus][]LeaveStatus{
	LeavePending: {LeaveApproved, LeaveRejected},
}

// IsValid returns true if the status is recognised.
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once no further transition is allowed.
func (s LeaveStatus) IsTerminal() bool {
	return len(leaveTransitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	for _, allowed := range leaveTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (s LeaveStatus) String() string {
	return string(s)
}

// LeaveRequest is a time-off petition filed by or for an employee.
type LeaveRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`

	// EmployeeName is the name captured when the request was filed.
	// Readers resolve the current name through the employee collection.
	EmployeeName string `json:"employeeName"`

	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`

	// RequestedOn is the creation date in DateLayout.
	RequestedOn string `json:"requestedOn"`
}

// LeaveInput carries the caller-supplied fields of a new leave request.
// EmployeeID is only honoured for administrators filing on behalf of
// someone else.
type LeaveInput struct {
	EmployeeID string `json:"employeeId,omitempty"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required"`
}
