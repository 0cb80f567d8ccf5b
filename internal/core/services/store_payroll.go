package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

// Payrolls returns the payroll records actor may see in generation order.
// A non-empty month keeps only that month's records.
func (s *Store) Payrolls(actor *domain.User, month string) ([]domain.PayrollRecord, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.visiblePayrollsLocked(actor, month), nil
}

func (s *Store) visiblePayrollsLocked(actor *domain.User, month string) []domain.PayrollRecord {
	visible := s.policy.FilterPayrolls(actor, s.payrolls)
	out := visible[:0]
	for _, r := range visible {
		if month != "" && r.Month != month {
			continue
		}
		r.EmployeeName = s.employeeNameLocked(r.EmployeeID)
		out = append(out, r)
	}
	return out
}

// Payslip returns one payroll record visible to actor.
func (s *Store) Payslip(actor *domain.User, id string) (*domain.PayrollRecord, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.payrollIndexLocked(id)
	if i < 0 || !s.policy.CanViewPayroll(actor, s.payrolls[i]) {
		return nil, fmt.Errorf("%w: payroll record %s", domain.ErrNotFound, id)
	}
	r := s.payrolls[i]
	r.EmployeeName = s.employeeNameLocked(r.EmployeeID)
	return &r, nil
}

// GeneratePayroll appends a batch of pending records. Administrators only.
// Amounts must be non-negative and every employee must exist, otherwise
// the whole batch is rejected. Net salary is recomputed for every record.
// A record for an employee who already has one for the same month is
// skipped; the records actually added are returned.
func (s *Store) GeneratePayroll(
	ctx context.Context, actor *domain.User, records []domain.PayrollRecord,
) ([]domain.PayrollRecord, error) {
	if err := s.policy.Authorize(actor, ResourcePayroll, ActionGenerate); err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.EmployeeID == "" {
			return nil, fmt.Errorf("%w: employeeId is required", domain.ErrInvalidInput)
		}
		if _, err := domain.ParseMonth(r.Month); err != nil {
			return nil, fmt.Errorf("%w: month %q must be YYYY-MM", domain.ErrInvalidInput, r.Month)
		}
		if err := s.validator.Struct(r); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if s.employeeIndexLocked(r.EmployeeID) < 0 {
			return nil, fmt.Errorf("%w: employee %s", domain.ErrNotFound, r.EmployeeID)
		}
	}
	return s.generateLocked(ctx, records)
}

// RunPayroll computes and generates a record for every employee for month.
// Administrators only.
func (s *Store) RunPayroll(ctx context.Context, actor *domain.User, month string) ([]domain.PayrollRecord, error) {
	if err := s.policy.Authorize(actor, ResourcePayroll, ActionGenerate); err != nil {
		return nil, err
	}
	if _, err := domain.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: month %q must be YYYY-MM", domain.ErrInvalidInput, month)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.PayrollRecord, 0, len(s.employees))
	for _, e := range s.employees {
		records = append(records, s.calculator.Compute(e, month))
	}
	logger.Section("Payroll " + month)
	return s.generateLocked(ctx, records)
}

func (s *Store) generateLocked(ctx context.Context, records []domain.PayrollRecord) ([]domain.PayrollRecord, error) {
	type key struct{ employeeID, month string }
	existing := make(map[key]bool, len(s.payrolls))
	for _, r := range s.payrolls {
		existing[key{r.EmployeeID, r.Month}] = true
	}

	added := make([]domain.PayrollRecord, 0, len(records))
	for _, r := range records {
		k := key{r.EmployeeID, r.Month}
		if existing[k] {
			logger.Debug("store: payroll for %s in %s already exists, skipping", r.EmployeeID, r.Month)
			continue
		}
		existing[k] = true

		r.ID = s.newID()
		r.Status = domain.PaymentPending
		r.PaymentDate = ""
		r.NetSalary = netSalary(r.BasicSalary, r.Bonus, r.Deductions)
		if r.EmployeeName == "" {
			r.EmployeeName = s.employeeNameLocked(r.EmployeeID)
		}
		added = append(added, r)
	}
	if len(added) == 0 {
		return added, nil
	}

	s.payrolls = append(s.payrolls, added...)
	logger.Info("store: generated %d payroll records", len(added))

	out := make([]domain.PayrollRecord, len(added))
	copy(out, added)
	return out, s.warn(s.savePayrollsLocked(ctx))
}

// MarkPayrollPaid moves a pending record to paid and stamps today's date.
// Administrators only. Marking a paid record again changes nothing.
func (s *Store) MarkPayrollPaid(ctx context.Context, actor *domain.User, id string) (*domain.PayrollRecord, error) {
	if err := s.policy.Authorize(actor, ResourcePayroll, ActionPay); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.payrollIndexLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: payroll record %s", domain.ErrNotFound, id)
	}

	current := s.payrolls[i].Status
	if current == domain.PaymentPaid {
		r := s.payrolls[i]
		r.EmployeeName = s.employeeNameLocked(r.EmployeeID)
		return &r, nil
	}
	if !current.CanTransitionTo(domain.PaymentPaid) {
		return nil, fmt.Errorf("%w: payroll record %s is %s", domain.ErrIllegalTransition, id, current)
	}

	s.payrolls[i].Status = domain.PaymentPaid
	s.payrolls[i].PaymentDate = s.today()
	r := s.payrolls[i]
	r.EmployeeName = s.employeeNameLocked(r.EmployeeID)
	logger.Debug("store: payroll %s paid", id)

	return &r, s.warn(s.savePayrollsLocked(ctx))
}

func (s *Store) payrollIndexLocked(id string) int {
	for i, r := range s.payrolls {
		if r.ID == id {
			return i
		}
	}
	return -1
}
