package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TRFRepo:      newPgxTRFRepository(dbPool),
		AuditRepo:    newPgxAuditRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		HotelRepo:    newPgxHotelRepository(dbPool),
	}
}
