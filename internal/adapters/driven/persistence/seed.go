package persistence

import "github.com/custodia-labs/hrcentral-cli/internal/core/domain"

// SeedEmployees returns the employees present before anything is saved.
func SeedEmployees() []domain.Employee {
	return []domain.Employee{
		{
			ID:         "1",
			FirstName:  "Sarah",
			LastName:   "Connor",
			Email:      "sarah.c@hrcentral.com",
			Position:   "Senior Engineer",
			Department: domain.DepartmentEngineering,
			Salary:     85000,
			HireDate:   "2023-01-15",
			Phone:      "555-0101",
			Address:    "123 Tech Blvd, Silicon Valley",
			Status:     domain.EmployeeActive,
			Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
		},
		{
			ID:         "2",
			FirstName:  "John",
			LastName:   "Smith",
			Email:      "john.s@hrcentral.com",
			Position:   "HR Manager",
			Department: domain.DepartmentHumanResources,
			Salary:     65000,
			HireDate:   "2022-11-01",
			Phone:      "555-0102",
			Address:    "456 People Way, New York",
			Status:     domain.EmployeeActive,
			Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
		},
		{
			ID:         "3",
			FirstName:  "Emily",
			LastName:   "Chen",
			Email:      "emily.c@hrcentral.com",
			Position:   "Product Designer",
			Department: domain.DepartmentDesign,
			Salary:     72000,
			HireDate:   "2023-03-20",
			Phone:      "555-0103",
			Address:    "789 Creative Ln, San Francisco",
			Status:     domain.EmployeeActive,
			Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
		},
	}
}

// SeedLeaves returns the leave requests present before anything is saved,
// newest first.
func SeedLeaves() []domain.LeaveRequest {
	return []domain.LeaveRequest{
		{
			ID:           "l1",
			EmployeeID:   "1",
			EmployeeName: "Sarah Connor",
			StartDate:    "2023-11-10",
			EndDate:      "2023-11-12",
			Reason:       "Medical checkup",
			Status:       domain.LeaveApproved,
			RequestedOn:  "2023-11-01",
		},
		{
			ID:           "l2",
			EmployeeID:   "3",
			EmployeeName: "Emily Chen",
			StartDate:    "2023-12-24",
			EndDate:      "2024-01-02",
			Reason:       "Winter holidays",
			Status:       domain.LeavePending,
			RequestedOn:  "2023-12-01",
		},
	}
}

// SeedPayrolls returns the payroll records present before anything is saved.
func SeedPayrolls() []domain.PayrollRecord {
	return []domain.PayrollRecord{}
}
