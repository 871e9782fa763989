package repositories

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee reference data.
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee reference data.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
