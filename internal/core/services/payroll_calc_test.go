package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

func TestPayrollCalculator_Compute(t *testing.T) {
	tests := []struct {
		name       string
		salary     float64
		basic      float64
		deductions float64
		net        float64
	}{
		{"Sarah", 85000, 7083.33, 1062.50, 6020.83},
		{"John", 65000, 5416.67, 812.50, 4604.17},
		{"Emily", 72000, 6000, 900, 5100},
		{"new hire", 0, 0, 0, 0},
	}

	calc := NewPayrollCalculator(domain.DefaultDeductionRate)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := domain.Employee{ID: "x", FirstName: tt.name, LastName: "Test", Salary: tt.salary}
			r := calc.Compute(e, "2024-06")

			assert.Equal(t, "x", r.EmployeeID)
			assert.Equal(t, tt.name+" Test", r.EmployeeName)
			assert.Equal(t, "2024-06", r.Month)
			assert.InDelta(t, tt.basic, r.BasicSalary, 1e-9)
			assert.InDelta(t, tt.deductions, r.Deductions, 1e-9)
			assert.Zero(t, r.Bonus)
			assert.InDelta(t, tt.net, r.NetSalary, 1e-9)
			assert.InDelta(t, r.ComputeNet(), r.NetSalary, 0.005)
			assert.Equal(t, domain.PaymentPending, r.Status)
			assert.Empty(t, r.PaymentDate)
		})
	}
}

func TestPayrollCalculator_CustomRate(t *testing.T) {
	r := NewPayrollCalculator(0.1).Compute(domain.Employee{Salary: 120000}, "2024-01")

	assert.InDelta(t, 10000, r.BasicSalary, 1e-9)
	assert.InDelta(t, 1000, r.Deductions, 1e-9)
	assert.InDelta(t, 9000, r.NetSalary, 1e-9)
}

func TestPayrollCalculator_InvalidRateUsesDefault(t *testing.T) {
	r := NewPayrollCalculator(2).Compute(domain.Employee{Salary: 72000}, "2024-01")
	assert.InDelta(t, 900, r.Deductions, 1e-9)
}

func TestNetSalary(t *testing.T) {
	assert.InDelta(t, 4500.25, netSalary(5000.10, 250.15, 750), 1e-9)
	assert.InDelta(t, -10, netSalary(0, 0, 10), 1e-9)
}
