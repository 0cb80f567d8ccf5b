// Package persistence stores the HR collections and session as JSON values
// in a key-value store, supplying seed data for collections never saved.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// Storage keys, one per collection plus the session.
const (
	KeyEmployees = "hr_central_employees"
	KeyLeaves    = "hr_central_leaves"
	KeyPayrolls  = "hr_central_payrolls"
	KeySession   = "hr_central_user"
)

// Keys returns every key the adapter writes.
func Keys() []string {
	return []string{KeyEmployees, KeyLeaves, KeyPayrolls, KeySession}
}

// Ensure Adapter implements the interface.
var _ driven.Persistence = (*Adapter)(nil)

// Adapter implements driven.Persistence over a driven.KeyValueStore.
type Adapter struct {
	kv driven.KeyValueStore
}

// NewAdapter creates a persistence adapter backed by kv.
func NewAdapter(kv driven.KeyValueStore) *Adapter {
	return &Adapter{kv: kv}
}

// LoadEmployees returns the saved employees or the seed set.
func (a *Adapter) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	return load(ctx, a.kv, KeyEmployees, SeedEmployees)
}

// SaveEmployees replaces the saved employees.
func (a *Adapter) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	return save(ctx, a.kv, KeyEmployees, employees)
}

// LoadLeaves returns the saved leave requests or the seed set.
func (a *Adapter) LoadLeaves(ctx context.Context) ([]domain.LeaveRequest, error) {
	return load(ctx, a.kv, KeyLeaves, SeedLeaves)
}

// SaveLeaves replaces the saved leave requests.
func (a *Adapter) SaveLeaves(ctx context.Context, leaves []domain.LeaveRequest) error {
	return save(ctx, a.kv, KeyLeaves, leaves)
}

// LoadPayrolls returns the saved payroll records or the seed set.
func (a *Adapter) LoadPayrolls(ctx context.Context) ([]domain.PayrollRecord, error) {
	return load(ctx, a.kv, KeyPayrolls, SeedPayrolls)
}

// SavePayrolls replaces the saved payroll records.
func (a *Adapter) SavePayrolls(ctx context.Context, payrolls []domain.PayrollRecord) error {
	return save(ctx, a.kv, KeyPayrolls, payrolls)
}

// LoadSession returns the saved user, or nil when none was saved.
func (a *Adapter) LoadSession(ctx context.Context) (*domain.User, error) {
	data, err := a.kv.Get(ctx, KeySession)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading session: %w", domain.ErrPersistenceUnavailable, err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: decoding session: %w", domain.ErrPersistenceUnavailable, err)
	}
	return &user, nil
}

// SaveSession replaces the saved user.
func (a *Adapter) SaveSession(ctx context.Context, user domain.User) error {
	return save(ctx, a.kv, KeySession, user)
}

// ClearSession erases the saved user.
func (a *Adapter) ClearSession(ctx context.Context) error {
	if err := a.kv.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("%w: clearing session: %w", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

// ResetAll deletes every key the adapter owns.
func (a *Adapter) ResetAll(ctx context.Context) error {
	var errs []error
	for _, key := range Keys() {
		if err := a.kv.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("deleting %s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceUnavailable, errors.Join(errs...))
	}
	logger.Debug("persistence: reset %d keys", len(Keys()))
	return nil
}

func load[T any](ctx context.Context, kv driven.KeyValueStore, key string, seed func() []T) ([]T, error) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("persistence: %s not saved yet, using seed data", key)
		return seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %w", domain.ErrPersistenceUnavailable, key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", domain.ErrPersistenceUnavailable, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save(ctx context.Context, kv driven.KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: saving %s: %w", domain.ErrPersistenceUnavailable, key, err)
	}
	return nil
}
