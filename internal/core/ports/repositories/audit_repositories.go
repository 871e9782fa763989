package repositories

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// AuditReader defines read operations on the status history trail.
type AuditReader interface {
	// ListAuditEntries retrieves the full trail for one TRF in
	// ascending timestamp order.
	ListAuditEntries(ctx context.Context, trfID string) ([]domain.AuditEntry, error)
}

// AuditRepositoryFacade is the full audit trail contract. There is
// deliberately no writer here: entries are appended only inside the TRF
// write transaction (see TRFWriter), never on their own.
type AuditRepositoryFacade interface {
	AuditReader
}
