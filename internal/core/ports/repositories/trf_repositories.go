package repositories

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// TRFFilter narrows a TRF listing. Zero values mean "no constraint".
type TRFFilter struct {
	EmployeeID string
	Department string
	Statuses   []domain.TRFStatus
}

// TRFReader defines read operations for travel requests.
type TRFReader interface {
	// FindTRFByID retrieves one travel request by its opaque id.
	FindTRFByID(ctx context.Context, trfID string) (*domain.TravelRequest, error)

	// ListTRFs retrieves travel requests matching the filter, newest first.
	ListTRFs(ctx context.Context, filter TRFFilter) ([]domain.TravelRequest, error)
}

// TRFWriter defines write operations for travel requests.
//
// SaveTRF and UpdateTRFWithAudit implement the optimistic-concurrency
// contract: a status-changing write succeeds only if the stored status still
// equals the status the caller read, and the audit entry is appended in the
// same transaction. A failed precondition surfaces as apperrors.ErrConflict.
type TRFWriter interface {
	// SaveTRF persists a brand-new travel request together with its
	// creation audit entry.
	SaveTRF(ctx context.Context, trf domain.TravelRequest, entry domain.AuditEntry) error

	// UpdateTRFWithAudit writes the mutated aggregate conditional on
	// expectedStatus and appends the audit entry atomically.
	UpdateTRFWithAudit(ctx context.Context, trf domain.TravelRequest, expectedStatus domain.TRFStatus, entry domain.AuditEntry) error

	// UpdateTRFContent updates only the request payload of a draft;
	// status and stage evidence are untouched.
	UpdateTRFContent(ctx context.Context, trf domain.TravelRequest) error
}

// TRFRepositoryFacade combines all TRF repository interfaces.
type TRFRepositoryFacade interface {
	TRFReader
	TRFWriter
}
