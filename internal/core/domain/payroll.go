package domain

// PaymentStatus is the payment state of a payroll record.
type PaymentStatus string

// Available payment statuses. Paid is terminal.
const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid},
}

// IsValid returns true if the status is recognised.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// IsTerminal returns true once no further transition is allowed.
func (s PaymentStatus) IsTerminal() bool {
	return len(paymentTransitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (s PaymentStatus) String() string {
	return string(s)
}

// PayrollRecord is one employee's computed pay for one calendar month.
type PayrollRecord struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`

	// Month is the year-month key in MonthLayout.
	Month string `json:"month"`

	BasicSalary float64       `json:"basicSalary" validate:"gte=0"`
	Bonus       float64       `json:"bonus" validate:"gte=0"`
	Deductions  float64       `json:"deductions" validate:"gte=0"`
	NetSalary   float64       `json:"netSalary"`
	Status      PaymentStatus `json:"status"`

	// PaymentDate is set only on the transition to PaymentPaid.
	PaymentDate string `json:"paymentDate,omitempty"`
}

// ComputeNet returns basic + bonus - deductions.
func (p PayrollRecord) ComputeNet() float64 {
	return p.BasicSalary + p.Bonus - p.Deductions
}

// PayrollCSVFileName returns the file name for a month's payroll export.
func PayrollCSVFileName(month string) string {
	return "payroll_" + month + ".csv"
}
