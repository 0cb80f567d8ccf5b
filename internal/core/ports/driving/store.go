package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// Store is the single owner of the session and the record collections.
//
// Mutations take the acting user and fail closed: a nil actor yields
// domain.ErrNotAuthenticated and a disallowed action domain.ErrForbidden.
// When a mutation succeeds in memory but cannot be flushed, the returned
// error wraps domain.ErrPersistenceUnavailable and the change stays applied.
type Store interface {
	// Initialize loads every collection and the saved session.
	Initialize(ctx context.Context) error

	// Shutdown flushes every collection and the session.
	Shutdown(ctx context.Context) error

	// Session.
	Login(ctx context.Context, identifier string, role domain.Role) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *domain.User
	RegisterEmployee(ctx context.Context, reg domain.Registration) (*domain.Employee, error)

	// Employees.
	Employees(actor *domain.User, query string) ([]domain.Employee, error)
	Employee(actor *domain.User, id string) (*domain.Employee, error)
	AddEmployee(ctx context.Context, actor *domain.User, employee domain.Employee) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, actor *domain.User, employee domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, actor *domain.User, id string) error

	// Leave requests.
	Leaves(actor *domain.User) ([]domain.LeaveRequest, error)
	AddLeaveRequest(ctx context.Context, actor *domain.User, input domain.LeaveInput) (*domain.LeaveRequest, error)
	UpdateLeaveStatus(
		ctx context.Context, actor *domain.User, id string, status domain.LeaveStatus,
	) (*domain.LeaveRequest, error)

	// Payroll.
	Payrolls(actor *domain.User, month string) ([]domain.PayrollRecord, error)
	Payslip(actor *domain.User, id string) (*domain.PayrollRecord, error)
	GeneratePayroll(
		ctx context.Context, actor *domain.User, records []domain.PayrollRecord,
	) ([]domain.PayrollRecord, error)
	RunPayroll(ctx context.Context, actor *domain.User, month string) ([]domain.PayrollRecord, error)
	MarkPayrollPaid(ctx context.Context, actor *domain.User, id string) (*domain.PayrollRecord, error)

	// Reporting.
	Stats(actor *domain.User) (*domain.DashboardStats, error)
	ExportPayrollCSV(actor *domain.User, month string, w io.Writer) error

	// Reset wipes persisted state and reloads the seed data.
	Reset(ctx context.Context, actor *domain.User) error
}
