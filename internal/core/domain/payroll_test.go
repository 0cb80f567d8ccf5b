package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_Transitions(t *testing.T) {
	assert.True(t, PaymentPending.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentPending))
	assert.False(t, PaymentPending.CanTransitionTo(PaymentPending))

	assert.False(t, PaymentPending.IsTerminal())
	assert.True(t, PaymentPaid.IsTerminal())
	assert.False(t, PaymentStatus("VOID").IsValid())
}

func TestPayrollRecord_ComputeNet(t *testing.T) {
	p := PayrollRecord{BasicSalary: 5000, Bonus: 250, Deductions: 750}
	assert.InDelta(t, 4500.0, p.ComputeNet(), 1e-9)
}

func TestPayrollCSVFileName(t *testing.T) {
	assert.Equal(t, "payroll_2024-06.csv", PayrollCSVFileName("2024-06"))
}
