package dto

import (
	"time"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// CreateEmployeeRequest registers a new employee or visitor.
type CreateEmployeeRequest struct {
	EmployeeType domain.EmployeeType `json:"employeeType" binding:"required,oneof=EMPLOYEE VISITOR"`
	EmployeeName string              `json:"employeeName" binding:"required"`
	JobTitle     string              `json:"jobTitle,omitempty"`
	Department   string              `json:"department,omitempty"`
	Section      string              `json:"section,omitempty"`
	Email        string              `json:"email,omitempty" binding:"omitempty,email"`
	Phone        string              `json:"phone,omitempty"`
	DateOfHire   *time.Time          `json:"dateOfHire,omitempty"`
	PointOfHire  string              `json:"pointOfHire,omitempty"`
}

// UpdateEmployeeRequest modifies an existing employee record. Nil fields are
// left unchanged.
type UpdateEmployeeRequest struct {
	EmployeeName *string `json:"employeeName,omitempty"`
	JobTitle     *string `json:"jobTitle,omitempty"`
	Department   *string `json:"department,omitempty"`
	Section      *string `json:"section,omitempty"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	PointOfHire  *string `json:"pointOfHire,omitempty"`
}

// EmployeeResponse is the API representation of an employee.
type EmployeeResponse struct {
	EmployeeID   string              `json:"employeeId"`
	UserID       *string             `json:"userId,omitempty"`
	EmployeeType domain.EmployeeType `json:"employeeType"`
	EmployeeName string              `json:"employeeName"`
	JobTitle     string              `json:"jobTitle,omitempty"`
	Department   string              `json:"department,omitempty"`
	Section      string              `json:"section,omitempty"`
	Email        string              `json:"email,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	DateOfHire   *time.Time          `json:"dateOfHire,omitempty"`
	PointOfHire  string              `json:"pointOfHire,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToEmployeeResponse maps a domain employee to its API shape.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		UserID:       e.UserID,
		EmployeeType: e.EmployeeType,
		EmployeeName: e.EmployeeName,
		JobTitle:     e.JobTitle,
		Department:   e.Department,
		Section:      e.Section,
		Email:        e.Email,
		Phone:        e.Phone,
		DateOfHire:   e.DateOfHire,
		PointOfHire:  e.PointOfHire,
		CreatedAt:    e.CreatedAt,
	}
}

// ToEmployeeResponses maps a slice of employees.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, ToEmployeeResponse(&employees[i]))
	}
	return out
}
