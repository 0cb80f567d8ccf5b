package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// recentLeaveCount is how many leave requests the dashboard lists.
const recentLeaveCount = 5

// payrollCSVHeader is the header row of a payroll export.
var payrollCSVHeader = []string{"Employee", "Month", "Basic", "Deductions", "Net Salary", "Status", "Payment Date"}

// Stats summarises the records actor may see.
func (s *Store) Stats(actor *domain.User) (*domain.DashboardStats, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	leaves := s.visibleLeavesLocked(actor)
	stats := &domain.DashboardStats{Role: actor.Role}

	if actor.IsAdmin() {
		stats.TotalEmployees = len(s.employees)
		for _, l := range leaves {
			if l.Status == domain.LeavePending {
				stats.PendingLeaves++
			}
		}
		for _, r := range s.payrolls {
			if r.Status == domain.PaymentPending {
				stats.PendingPayrolls++
			}
		}
	} else {
		for _, l := range leaves {
			switch l.Status {
			case domain.LeavePending:
				stats.MyPendingLeaves++
			case domain.LeaveApproved:
				stats.MyApprovedLeaves++
			}
		}
		stats.LatestPayslip = latestPaid(s.visiblePayrollsLocked(actor, ""))
	}

	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].RequestedOn > leaves[j].RequestedOn
	})
	if len(leaves) > recentLeaveCount {
		leaves = leaves[:recentLeaveCount]
	}
	stats.RecentLeaves = leaves

	return stats, nil
}

// latestPaid returns the paid record with the latest month, or nil.
func latestPaid(records []domain.PayrollRecord) *domain.PayrollRecord {
	var latest *domain.PayrollRecord
	for i := range records {
		r := records[i]
		if r.Status != domain.PaymentPaid {
			continue
		}
		if latest == nil || r.Month > latest.Month ||
			(r.Month == latest.Month && r.PaymentDate > latest.PaymentDate) {
			latest = &r
		}
	}
	return latest
}

// ExportPayrollCSV writes the month's payroll records visible to actor
// as CSV. Amounts have two decimals; an unpaid record shows "-" as its
// payment date.
func (s *Store) ExportPayrollCSV(actor *domain.User, month string, w io.Writer) error {
	records, err := s.Payrolls(actor, month)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(payrollCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range records {
		paymentDate := r.PaymentDate
		if paymentDate == "" {
			paymentDate = "-"
		}
		row := []string{
			r.EmployeeName,
			r.Month,
			fmt.Sprintf("%.2f", r.BasicSalary),
			fmt.Sprintf("%.2f", r.Deductions),
			fmt.Sprintf("%.2f", r.NetSalary),
			string(r.Status),
			paymentDate,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
