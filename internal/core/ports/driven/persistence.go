package driven

import (
	"context"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// Persistence reads and writes the record collections and the session.
// Saves replace the whole collection. Loads return the seed set when the
// collection has never been saved.
//
// Backend failures are reported wrapped in domain.ErrPersistenceUnavailable.
type Persistence interface {
	LoadEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployees(ctx context.Context, employees []domain.Employee) error

	LoadLeaves(ctx context.Context) ([]domain.LeaveRequest, error)
	SaveLeaves(ctx context.Context, leaves []domain.LeaveRequest) error

	LoadPayrolls(ctx context.Context) ([]domain.PayrollRecord, error)
	SavePayrolls(ctx context.Context, payrolls []domain.PayrollRecord) error

	// LoadSession returns the saved user, or nil when no session exists.
	LoadSession(ctx context.Context) (*domain.User, error)
	SaveSession(ctx context.Context, user domain.User) error
	ClearSession(ctx context.Context) error

	// ResetAll wipes every persisted key.
	ResetAll(ctx context.Context) error
}
