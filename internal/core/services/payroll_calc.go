package services

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// PayrollCalculator derives monthly pay figures from annual salaries.
type PayrollCalculator struct {
	deductionRate decimal.Decimal
}

// NewPayrollCalculator creates a calculator withholding rate of basic pay.
// A rate outside [0, 1] falls back to domain.DefaultDeductionRate.
func NewPayrollCalculator(rate float64) *PayrollCalculator {
	if rate < 0 || rate > 1 {
		rate = domain.DefaultDeductionRate
	}
	return &PayrollCalculator{deductionRate: decimal.NewFromFloat(rate)}
}

// Compute returns a pending record for e in month.
// Basic pay is a twelfth of salary; amounts are rounded to cents.
func (c *PayrollCalculator) Compute(e domain.Employee, month string) domain.PayrollRecord {
	basic := decimal.NewFromFloat(e.Salary).Div(monthsPerYear).Round(2)
	deductions := basic.Mul(c.deductionRate).Round(2)
	bonus := decimal.Zero

	return domain.PayrollRecord{
		EmployeeID:   e.ID,
		EmployeeName: e.FullName(),
		Month:        month,
		BasicSalary:  basic.InexactFloat64(),
		Bonus:        bonus.InexactFloat64(),
		Deductions:   deductions.InexactFloat64(),
		NetSalary:    basic.Add(bonus).Sub(deductions).InexactFloat64(),
		Status:       domain.PaymentPending,
	}
}

// netSalary returns basic + bonus - deductions rounded to cents.
func netSalary(basic, bonus, deductions float64) float64 {
	return decimal.NewFromFloat(basic).
		Add(decimal.NewFromFloat(bonus)).
		Sub(decimal.NewFromFloat(deductions)).
		Round(2).
		InexactFloat64()
}
