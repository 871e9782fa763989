package services

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/core/workflow"
)

// ApprovalSvcFacade is the workflow orchestrator: every status-changing
// action flows through here. Each call loads the TRF, runs the pure
// validator, and persists the new state plus one audit entry atomically.
// Actors are passed explicitly on every call; there is no session state.
type ApprovalSvcFacade interface {
	// Verify records the admin department check. approved=false sends the
	// TRF back to the employee for revision.
	Verify(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error)

	// HODApprove records the head-of-department side of the parallel stage.
	HODApprove(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error)

	// HRApprove records the HR side of the parallel stage. An HR
	// rejection is recoverable: the TRF goes to NEEDS_REVISION.
	HRApprove(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error)

	// Revise sends the TRF back for correction without rejecting it.
	// Available to ADMIN_DEPT, HOD and HR on their pending stages.
	Revise(ctx context.Context, actor domain.Actor, trfID string, remarks string) (*domain.TravelRequest, error)

	// PMApprove records the project manager's final sign-off. A PM
	// rejection is terminal.
	PMApprove(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error)

	// GAProcess records fulfillment and closes the TRF.
	GAProcess(ctx context.Context, actor domain.Actor, trfID string, fulfillment workflow.Fulfillment, remarks string) (*domain.TravelRequest, error)
}
