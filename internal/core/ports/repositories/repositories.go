package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TRFRepo      TRFRepositoryFacade
	AuditRepo    AuditRepositoryFacade
	EmployeeRepo EmployeeRepositoryFacade
	UserRepo     UserRepositoryFacade
	HotelRepo    HotelRepositoryFacade
}
