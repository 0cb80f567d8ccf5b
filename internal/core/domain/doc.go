// Package domain holds the HR Central entities and the rules that need
// nothing but the entities themselves:
//
//   - Employee: profile and salary, found by email at login
//   - LeaveRequest: time off moving from PENDING to APPROVED or REJECTED
//   - PayrollRecord: one employee's pay for one month, PENDING until PAID
//   - User: the session principal, admin or employee
//
// It imports only the standard library; every other package may import it.
package domain
