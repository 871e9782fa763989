package domain

import "time"

// EmployeeType distinguishes staff from site visitors.
type EmployeeType string

const (
	EmployeeTypeEmployee EmployeeType = "EMPLOYEE"
	EmployeeTypeVisitor  EmployeeType = "VISITOR"
)

// Employee is a person who can own travel requests. The workflow engine does
// not manage employees; they are reference data for ownership and
// departmental routing.
type Employee struct {
	EmployeeID   string       `json:"employeeID"`
	UserID       *string      `json:"userID,omitempty"` // login account, if any
	EmployeeType EmployeeType `json:"employeeType"`
	EmployeeName string       `json:"employeeName"`
	JobTitle     string       `json:"jobTitle,omitempty"`
	Department   string       `json:"department,omitempty"`
	Section      string       `json:"section,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	DateOfHire   *time.Time   `json:"dateOfHire,omitempty"`
	PointOfHire  string       `json:"pointOfHire,omitempty"`
	AuditFields
}
