package services

import (
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.TRF = NewTRFService(repos.TRFRepo, repos.AuditRepo, repos.EmployeeRepo)
	container.Approval = NewApprovalService(repos.TRFRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.User = NewUserService(repos.UserRepo, repos.EmployeeRepo)
	container.Hotel = NewHotelService(repos.HotelRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TRFSvcFacade      = (*trfService)(nil)
	_ portssvc.ApprovalSvcFacade = (*approvalService)(nil)
	_ portssvc.EmployeeSvcFacade = (*employeeService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.HotelSvcFacade    = (*hotelService)(nil)
	_ portssvc.TokenSvcFacade    = (*tokenService)(nil)
)
