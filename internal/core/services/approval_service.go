package services

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/core/workflow"
)

// approvalService orchestrates the approval pipeline. All decision logic
// lives in the workflow package; this service only loads, evaluates and
// persists, so every role's endpoint shares one concurrency-safe path.
type approvalService struct {
	trfRepo portsrepo.TRFRepositoryFacade
}

// NewApprovalService creates the workflow orchestration service.
func NewApprovalService(trfRepo portsrepo.TRFRepositoryFacade) portssvc.ApprovalSvcFacade {
	return &approvalService{trfRepo: trfRepo}
}

func (s *approvalService) Verify(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error) {
	// A failed verification is the admin department's revise action.
	action := workflow.ActionVerify
	if !approved {
		action = workflow.ActionRevise
	}
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: action, Remarks: remarks})
}

func (s *approvalService) HODApprove(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: decisionAction(approved), Remarks: remarks})
}

func (s *approvalService) HRApprove(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: decisionAction(approved), Remarks: remarks})
}

func (s *approvalService) Revise(ctx context.Context, actor domain.Actor, trfID string, remarks string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: workflow.ActionRevise, Remarks: remarks})
}

func (s *approvalService) PMApprove(ctx context.Context, actor domain.Actor, trfID string, approved bool, remarks string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: decisionAction(approved), Remarks: remarks})
}

func (s *approvalService) GAProcess(ctx context.Context, actor domain.Actor, trfID string, fulfillment workflow.Fulfillment, remarks string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{
		Action:      workflow.ActionProcess,
		Remarks:     remarks,
		Fulfillment: &fulfillment,
	})
}

func decisionAction(approved bool) workflow.Action {
	if approved {
		return workflow.ActionApprove
	}
	return workflow.ActionReject
}
