package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hrcentral-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

// brokenKV fails every operation, like storage that is full or disabled.
type brokenKV struct{}

var errDiskFull = errors.New("disk full")

func (brokenKV) Get(context.Context, string) ([]byte, error) { return nil, errDiskFull }
func (brokenKV) Set(context.Context, string, []byte) error { return errDiskFull }
func (brokenKV) Delete(context.Context, string) error { return errDiskFull }
func (brokenKV) Keys(context.Context) ([]string, error) { return nil, errDiskFull }
func (brokenKV) Close() error { return nil }

func backends(t *testing.T) map[string]driven.KeyValueStore {
	t.Helper()

	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return map[string]driven.KeyValueStore{
		"memory": memory.NewKVStore(),
		"sqlite": store.KeyValueStore(),
	}
}

func TestAdapter_Load_SeedsWhenEmpty(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := NewAdapter(kv)

			employees, err := a.LoadEmployees(ctx)
			require.NoError(t, err)
			require.Len(t, employees, 3)
			assert.Equal(t, "Sarah Connor", employees[0].FullName())
			assert.Equal(t, "John Smith", employees[1].FullName())
			assert.Equal(t, "Emily Chen", employees[2].FullName())

			leaves, err := a.LoadLeaves(ctx)
			require.NoError(t, err)
			require.Len(t, leaves, 2)
			assert.Equal(t, domain.LeaveApproved, leaves[0].Status)
			assert.Equal(t, domain.LeavePending, leaves[1].Status)

			payrolls, err := a.LoadPayrolls(ctx)
			require.NoError(t, err)
			assert.Empty(t, payrolls)
			assert.NotNil(t, payrolls)

			user, err := a.LoadSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := NewAdapter(kv)

			employees := SeedEmployees()
			employees[1].Status = domain.EmployeeInactive
			employees[2].Avatar = ""
			require.NoError(t, a.SaveEmployees(ctx, employees))

			leaves := SeedLeaves()[:1]
			require.NoError(t, a.SaveLeaves(ctx, leaves))

			payrolls := []domain.PayrollRecord{{
				ID:          "p1",
				EmployeeID:  "1",
				Month:       "2024-05",
				BasicSalary: 7083.33,
				Deductions:  1062.5,
				NetSalary:   6020.83,
				Status:      domain.PaymentPaid,
				PaymentDate: "2024-05-31",
			}}
			require.NoError(t, a.SavePayrolls(ctx, payrolls))

			user := domain.NewEmployeeUser(employees[0])
			require.NoError(t, a.SaveSession(ctx, user))

			gotEmployees, err := a.LoadEmployees(ctx)
			require.NoError(t, err)
			assert.Equal(t, employees, gotEmployees)

			gotLeaves, err := a.LoadLeaves(ctx)
			require.NoError(t, err)
			assert.Equal(t, leaves, gotLeaves)

			gotPayrolls, err := a.LoadPayrolls(ctx)
			require.NoError(t, err)
			assert.Equal(t, payrolls, gotPayrolls)

			gotUser, err := a.LoadSession(ctx)
			require.NoError(t, err)
			require.NotNil(t, gotUser)
			assert.Equal(t, user, *gotUser)
		})
	}
}

func TestAdapter_SavedEmptyCollectionIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(memory.NewKVStore())

	require.NoError(t, a.SaveEmployees(ctx, []domain.Employee{}))

	employees, err := a.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestAdapter_AddedEmployeeSurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	a := NewAdapter(kv)

	employees, err := a.LoadEmployees(ctx)
	require.NoError(t, err)

	newRec := domain.Employee{
		ID:         "4",
		FirstName:  "Kyle",
		LastName:   "Reese",
		Email:      "kyle.r@hrcentral.com",
		Department: domain.DepartmentSales,
		HireDate:   "2024-02-01",
		Status:     domain.EmployeeActive,
	}
	require.NoError(t, a.SaveEmployees(ctx, append(employees, newRec)))

	reloaded, err := NewAdapter(kv).LoadEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 4)
	assert.Equal(t, SeedEmployees(), reloaded[:3])
	assert.Equal(t, newRec, reloaded[3])
}

func TestAdapter_ClearSession(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(memory.NewKVStore())

	require.NoError(t, a.SaveSession(ctx, domain.NewAdminUser("admin")))
	require.NoError(t, a.ClearSession(ctx))

	user, err := a.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAdapter_ResetAll(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	a := NewAdapter(kv)

	require.NoError(t, a.SaveEmployees(ctx, nil))
	require.NoError(t, a.SaveLeaves(ctx, nil))
	require.NoError(t, a.SaveSession(ctx, domain.NewAdminUser("admin")))
	require.NoError(t, kv.Set(ctx, "unrelated", []byte("keep")))

	require.NoError(t, a.ResetAll(ctx))

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"unrelated"}, keys)

	employees, err := a.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 3)
}

func TestAdapter_CorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, KeyLeaves, []byte("{not json")))
	require.NoError(t, kv.Set(ctx, KeySession, []byte("[]")))

	a := NewAdapter(kv)

	_, err := a.LoadLeaves(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)

	_, err = a.LoadSession(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
}

func TestAdapter_BackendUnavailable(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(brokenKV{})

	_, err := a.LoadEmployees(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
	assert.ErrorIs(t, err, errDiskFull)

	err = a.SavePayrolls(ctx, SeedPayrolls())
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)

	_, err = a.LoadSession(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)

	assert.ErrorIs(t, a.ClearSession(ctx), domain.ErrPersistenceUnavailable)
	assert.ErrorIs(t, a.ResetAll(ctx), domain.ErrPersistenceUnavailable)
}

func TestSeedFunctions_ReturnFreshCopies(t *testing.T) {
	first := SeedEmployees()
	first[0].FirstName = "Changed"

	assert.Equal(t, "Sarah", SeedEmployees()[0].FirstName)
}
