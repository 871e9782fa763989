package services

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/core/workflow"
	"github.com/trf-online/trf-backend/internal/dto"
)

// TRFQueue selects a role's work queue in ListVisibleTRFs.
type TRFQueue string

const (
	QueueAll          TRFQueue = ""
	QueueVerification TRFQueue = "verification"
	QueueApproval     TRFQueue = "approval"
	QueuePM           TRFQueue = "pm"
	QueueGA           TRFQueue = "ga"
)

// TRFReaderSvc defines read operations on travel requests.
type TRFReaderSvc interface {
	// GetTRF retrieves one TRF, enforcing the actor's visibility.
	GetTRF(ctx context.Context, actor domain.Actor, trfID string) (*domain.TravelRequest, error)

	// ListVisibleTRFs returns the TRFs the actor may see, optionally
	// narrowed to the actor's work queue, newest first.
	ListVisibleTRFs(ctx context.Context, actor domain.Actor, queue TRFQueue) ([]domain.TravelRequest, error)

	// GetStatusHistory returns the audit trail of a visible TRF in
	// ascending timestamp order.
	GetStatusHistory(ctx context.Context, actor domain.Actor, trfID string) ([]domain.AuditEntry, error)

	// AvailableActions reports what the actor may currently do to the TRF.
	AvailableActions(ctx context.Context, actor domain.Actor, trfID string) (workflow.ActionSet, error)
}

// TRFWriterSvc defines lifecycle operations driven by the owning employee.
type TRFWriterSvc interface {
	// CreateTRF creates a new draft owned by the actor's employee record.
	CreateTRF(ctx context.Context, actor domain.Actor, req dto.CreateTRFRequest) (*domain.TravelRequest, error)

	// UpdateDraft replaces the request payload of a DRAFT or
	// NEEDS_REVISION TRF. Owner only.
	UpdateDraft(ctx context.Context, actor domain.Actor, trfID string, req dto.CreateTRFRequest) (*domain.TravelRequest, error)

	// Submit moves a draft into the pipeline.
	Submit(ctx context.Context, actor domain.Actor, trfID string) (*domain.TravelRequest, error)

	// Resubmit re-enters a revised TRF at SUBMITTED.
	Resubmit(ctx context.Context, actor domain.Actor, trfID string) (*domain.TravelRequest, error)
}

// TRFSvcFacade combines the TRF lifecycle interfaces.
type TRFSvcFacade interface {
	TRFReaderSvc
	TRFWriterSvc
}
