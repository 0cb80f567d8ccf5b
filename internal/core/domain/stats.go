package domain

// DashboardStats summarises the records visible to one user.
type DashboardStats struct {
	// Role is the role the figures were computed for.
	Role Role

	// Administrator figures.
	TotalEmployees  int
	PendingLeaves   int
	PendingPayrolls int

	// Employee figures.
	MyPendingLeaves  int
	MyApprovedLeaves int

	// LatestPayslip is the most recent paid payroll record, if any.
	LatestPayslip *PayrollRecord

	// RecentLeaves holds up to five most recent visible leave requests.
	RecentLeaves []LeaveRequest
}
