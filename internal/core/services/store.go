package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driving.Store = (*Store)(nil)

// Store owns the current session and the employee, leave and payroll
// collections. Every mutation checks the policy, updates memory, then
// flushes the affected collection through the persistence port.
//
// A failed flush leaves the in-memory change in place and is reported
// as an error wrapping domain.ErrPersistenceUnavailable. A collection
// that could not be loaded is never flushed, so a read failure cannot
// erase what is stored under its key.
type Store struct {
	mu sync.RWMutex

	persistence driven.Persistence
	policy      *Policy
	calculator  *PayrollCalculator
	clock       driven.Clock
	validator   *inputValidator
	newID       func() string

	user      *domain.User
	employees []domain.Employee
	leaves    []domain.LeaveRequest
	payrolls  []domain.PayrollRecord

	// unloaded names the collections Initialize could not read.
	unloaded map[string]bool
}

// Collection names, as used in unloaded and in errors.
const (
	collEmployees = "employees"
	collLeaves    = "leaves"
	collPayrolls  = "payrolls"
)

// NewStore creates a store. Call Initialize before use.
// A nil calculator uses the default deduction rate; a nil clock reads system time.
func NewStore(
	persistence driven.Persistence,
	policy *Policy,
	calculator *PayrollCalculator,
	clock driven.Clock,
) *Store {
	if calculator == nil {
		calculator = NewPayrollCalculator(domain.DefaultDeductionRate)
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Store{
		persistence: persistence,
		policy:      policy,
		calculator:  calculator,
		clock:       clock,
		validator:   newInputValidator(),
		newID:       func() string { return uuid.New().String() },
		employees:   []domain.Employee{},
		leaves:      []domain.LeaveRequest{},
		payrolls:    []domain.PayrollRecord{},
	}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Initialize loads every collection and the saved session.
// Collections that cannot be loaded start empty; the returned error then
// wraps domain.ErrPersistenceUnavailable and the store remains usable.
func (s *Store) Initialize(ctx context.Context) error {
	if s.persistence == nil || s.policy == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Store")
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) error {
	var errs []error
	s.unloaded = map[string]bool{}
	failed := func(name string, err error) {
		errs = append(errs, err)
		s.unloaded[name] = true
	}

	employees, err := s.persistence.LoadEmployees(ctx)
	if err != nil {
		failed(collEmployees, err)
		employees = []domain.Employee{}
	}
	leaves, err := s.persistence.LoadLeaves(ctx)
	if err != nil {
		failed(collLeaves, err)
		leaves = []domain.LeaveRequest{}
	}
	payrolls, err := s.persistence.LoadPayrolls(ctx)
	if err != nil {
		failed(collPayrolls, err)
		payrolls = []domain.PayrollRecord{}
	}
	s.employees, s.leaves, s.payrolls = employees, leaves, payrolls

	user, err := s.persistence.LoadSession(ctx)
	if err != nil {
		errs = append(errs, err)
		user = nil
	}
	s.user = nil
	if user != nil {
		s.restoreSessionLocked(*user)
	}

	logger.Debug("store: loaded %d employees, %d leaves, %d payrolls",
		len(s.employees), len(s.leaves), len(s.payrolls))

	if len(errs) > 0 {
		err := errors.Join(errs...)
		logger.Warn("%v", err)
		return err
	}
	return nil
}

// restoreSessionLocked keeps a saved employee session only while the
// employee still exists.
func (s *Store) restoreSessionLocked(user domain.User) {
	if user.Role == domain.RoleAdmin {
		s.user = &user
		return
	}
	if i := s.employeeIndexLocked(user.ID); i >= 0 {
		u := domain.NewEmployeeUser(s.employees[i])
		s.user = &u
		return
	}
	logger.Debug("store: dropping session for missing employee %s", user.ID)
}

// Shutdown flushes every collection and the session.
func (s *Store) Shutdown(ctx context.Context) error {
	if s.persistence == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	errs := []error{
		s.saveEmployeesLocked(ctx),
		s.saveLeavesLocked(ctx),
		s.savePayrollsLocked(ctx),
	}
	if s.user != nil {
		errs = append(errs, s.persistence.SaveSession(ctx, *s.user))
	} else {
		errs = append(errs, s.persistence.ClearSession(ctx))
	}
	return errors.Join(errs...)
}

// Login starts a session. The administrator role always succeeds; the
// employee role requires an employee whose email matches identifier.
func (s *Store) Login(ctx context.Context, identifier string, role domain.Role) (*domain.User, error) {
	normalized := domain.NormalizeEmail(identifier)
	if normalized == "" {
		return nil, fmt.Errorf("%w: identifier is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user domain.User
	switch role {
	case domain.RoleAdmin:
		user = domain.NewAdminUser(normalized)
	case domain.RoleEmployee:
		i := s.employeeByEmailLocked(normalized)
		if i < 0 {
			return nil, fmt.Errorf("%w: no employee with email %s", domain.ErrNotFound, normalized)
		}
		user = domain.NewEmployeeUser(s.employees[i])
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	s.user = &user
	logger.Debug("store: %s logged in as %s", user.Email, user.Role)

	out := user
	return &out, s.warn(s.persistence.SaveSession(ctx, user))
}

// Logout ends the session and erases the saved session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.warn(s.persistence.ClearSession(ctx))
}

// CurrentUser returns a copy of the session user, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Reset wipes persisted state, reloads the seed data and ends the session.
func (s *Store) Reset(ctx context.Context, actor *domain.User) error {
	if err := s.policy.Authorize(actor, ResourceStore, ActionReset); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistence.ResetAll(ctx); err != nil {
		return s.warn(err)
	}
	logger.Info("store: factory reset")
	return s.loadLocked(ctx)
}

// errNotLoaded reports a flush skipped because the collection's saved
// value was never read.
func errNotLoaded(collection string) error {
	return fmt.Errorf("%w: %s were not loaded, saved copy left untouched",
		domain.ErrPersistenceUnavailable, collection)
}

func (s *Store) saveEmployeesLocked(ctx context.Context) error {
	if s.unloaded[collEmployees] {
		return errNotLoaded(collEmployees)
	}
	return s.persistence.SaveEmployees(ctx, s.employees)
}

func (s *Store) saveLeavesLocked(ctx context.Context) error {
	if s.unloaded[collLeaves] {
		return errNotLoaded(collLeaves)
	}
	return s.persistence.SaveLeaves(ctx, s.leaves)
}

func (s *Store) savePayrollsLocked(ctx context.Context) error {
	if s.unloaded[collPayrolls] {
		return errNotLoaded(collPayrolls)
	}
	return s.persistence.SavePayrolls(ctx, s.payrolls)
}

// warn logs a persistence failure and passes it through.
func (s *Store) warn(err error) error {
	if err != nil {
		logger.Warn("changes kept in memory only: %v", err)
	}
	return err
}

func (s *Store) today() string {
	return domain.FormatDate(s.clock.Now())
}

func (s *Store) employeeIndexLocked(id string) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) employeeByEmailLocked(email string) int {
	for i, e := range s.employees {
		if domain.SameEmail(e.Email, email) {
			return i
		}
	}
	return -1
}

// emailTakenLocked reports whether email belongs to an employee other than exceptID.
func (s *Store) emailTakenLocked(email, exceptID string) bool {
	i := s.employeeByEmailLocked(email)
	return i >= 0 && s.employees[i].ID != exceptID
}

// employeeNameLocked resolves the current display name for an employee id.
func (s *Store) employeeNameLocked(id string) string {
	if i := s.employeeIndexLocked(id); i >= 0 {
		return s.employees[i].FullName()
	}
	return domain.DeletedEmployeeName
}
