package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for every stored date.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format used to key payroll runs.
const MonthLayout = "2006-01"

// DeletedEmployeeName is shown in place of a name when a leave or payroll
// record points at an employee that no longer exists.
const DeletedEmployeeName = "Unknown/Deleted Employee"

// EmployeeStatus is the employment state of an employee.
type EmployeeStatus string

// Available employee statuses.
const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// IsValid returns true if the status is recognised.
func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeActive || s == EmployeeInactive
}

// Department names an organisational unit.
type Department string

// Known departments. DepartmentUnassigned is given to self-registered
// employees until an administrator places them.
const (
	DepartmentEngineering    Department = "Engineering"
	DepartmentDesign         Department = "Design"
	DepartmentHumanResources Department = "Human Resources"
	DepartmentMarketing      Department = "Marketing"
	DepartmentSales          Department = "Sales"
	DepartmentUnassigned     Department = "Unassigned"
)

// Departments returns every known department in display order.
func Departments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentDesign,
		DepartmentHumanResources,
		DepartmentMarketing,
		DepartmentSales,
		DepartmentUnassigned,
	}
}

// IsValid returns true if the department is one of Departments.
func (d Department) IsValid() bool {
	for _, known := range Departments() {
		if d == known {
			return true
		}
	}
	return false
}

// Employee is an identity plus HR profile.
// The email is the login key and must be unique ignoring case.
type Employee struct {
	// ID is the unique identifier, generated at creation.
	ID string `json:"id"`

	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`

	// Email is used as the login identifier.
	Email string `json:"email" validate:"required,email"`

	Position   string     `json:"position"`
	Department Department `json:"department" validate:"required,department"`

	// Salary is the annual salary figure.
	Salary float64 `json:"salary" validate:"gte=0"`

	// HireDate is a calendar date in DateLayout.
	HireDate string `json:"hireDate" validate:"required,datetime=2006-01-02"`

	Phone   string         `json:"phone"`
	Address string         `json:"address"`
	Status  EmployeeStatus `json:"status" validate:"required,oneof=Active Inactive"`

	// Avatar is an optional image URL.
	Avatar string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// FullName returns "First Last".
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Registration holds the profile fields supplied when a new employee
// signs themselves up.
type Registration struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Defaults applied to self-registered employees.
const (
	RegistrationPosition = "Applicant / New Hire"
)

// NormalizeEmail trims and lowercases an email or login identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail reports whether two emails match ignoring case and padding.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonth renders t in MonthLayout.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseMonth validates a YYYY-MM month key.
func ParseMonth(month string) (time.Time, error) {
	return time.Parse(MonthLayout, month)
}
