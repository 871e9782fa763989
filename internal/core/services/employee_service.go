package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/dto"
)

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates the employee registry service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	now := time.Now()
	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		EmployeeType: req.EmployeeType,
		EmployeeName: req.EmployeeName,
		JobTitle:     req.JobTitle,
		Department:   req.Department,
		Section:      req.Section,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfHire:   req.DateOfHire,
		PointOfHire:  req.PointOfHire,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, employeeType)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.EmployeeName != nil {
		employee.EmployeeName = *req.EmployeeName
	}
	if req.JobTitle != nil {
		employee.JobTitle = *req.JobTitle
	}
	if req.Department != nil {
		// Existing TRFs keep their department snapshot; only new ones route
		// to the updated department.
		employee.Department = *req.Department
	}
	if req.Section != nil {
		employee.Section = *req.Section
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.PointOfHire != nil {
		employee.PointOfHire = *req.PointOfHire
	}
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = updaterUserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}
