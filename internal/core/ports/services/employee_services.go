package services

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/dto"
)

// EmployeeSvcFacade manages the employee registry.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error)
}
