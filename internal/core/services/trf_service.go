package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/core/workflow"
	"github.com/trf-online/trf-backend/internal/dto"
	"github.com/trf-online/trf-backend/internal/middleware"
	"github.com/trf-online/trf-backend/internal/utils"
)

type trfService struct {
	trfRepo      portsrepo.TRFRepositoryFacade
	auditRepo    portsrepo.AuditRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewTRFService creates the travel request lifecycle service.
func NewTRFService(trfRepo portsrepo.TRFRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.TRFSvcFacade {
	return &trfService{
		trfRepo:      trfRepo,
		auditRepo:    auditRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *trfService) CreateTRF(ctx context.Context, actor domain.Actor, req dto.CreateTRFRequest) (*domain.TravelRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleEmployee || actor.EmployeeID == "" {
		return nil, apperrors.ErrForbidden
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee for new TRF: %w", err)
	}

	now := time.Now()
	trfNumber, err := utils.GenerateTRFNumber(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate TRF number: %w", err)
	}

	trf := domain.TravelRequest{
		TRFID:      uuid.NewString(),
		TRFNumber:  trfNumber,
		EmployeeID: employee.EmployeeID,
		// Department is snapshotted at creation and anchors departmental
		// routing even if the employee later transfers.
		Department: employee.Department,
		Status:     domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ID,
		},
	}
	applyPayload(&trf, req)

	entry := domain.AuditEntry{
		EntryID:       uuid.NewString(),
		TRFID:         trf.TRFID,
		ChangedBy:     actor.ID,
		ChangedByName: actor.DisplayName,
		ToStatus:      domain.StatusDraft, // FromStatus empty marks creation
		ChangedAt:     now,
	}

	if err := s.trfRepo.SaveTRF(ctx, trf, entry); err != nil {
		logger.Error("Failed to create TRF", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create TRF: %w", err)
	}

	logger.Info("TRF created", slog.String("trf_id", trf.TRFID), slog.String("trf_number", trf.TRFNumber))
	return &trf, nil
}

func (s *trfService) UpdateDraft(ctx context.Context, actor domain.Actor, trfID string, req dto.CreateTRFRequest) (*domain.TravelRequest, error) {
	trf, err := s.trfRepo.FindTRFByID(ctx, trfID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleEmployee || actor.EmployeeID == "" || actor.EmployeeID != trf.EmployeeID {
		return nil, apperrors.ErrForbidden
	}
	if trf.Status != domain.StatusDraft && trf.Status != domain.StatusNeedsRevision {
		return nil, apperrors.NewInvalidTransition(string(domain.StatusDraft), string(trf.Status))
	}

	updated := trf.Clone()
	applyPayload(&updated, req)
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = actor.ID

	if err := s.trfRepo.UpdateTRFContent(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update TRF content: %w", err)
	}
	return &updated, nil
}

func (s *trfService) Submit(ctx context.Context, actor domain.Actor, trfID string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: workflow.ActionSubmit})
}

func (s *trfService) Resubmit(ctx context.Context, actor domain.Actor, trfID string) (*domain.TravelRequest, error) {
	return applyTransition(ctx, s.trfRepo, actor, trfID, workflow.Command{Action: workflow.ActionResubmit})
}

func (s *trfService) GetTRF(ctx context.Context, actor domain.Actor, trfID string) (*domain.TravelRequest, error) {
	trf, err := s.trfRepo.FindTRFByID(ctx, trfID)
	if err != nil {
		return nil, err
	}
	if !workflow.Visible(*trf, actor) {
		return nil, apperrors.ErrForbidden
	}
	return trf, nil
}

func (s *trfService) ListVisibleTRFs(ctx context.Context, actor domain.Actor, queue portssvc.TRFQueue) ([]domain.TravelRequest, error) {
	filter := portsrepo.TRFFilter{}
	switch actor.Role {
	case domain.RoleEmployee:
		if actor.EmployeeID == "" {
			return nil, apperrors.ErrForbidden
		}
		filter.EmployeeID = actor.EmployeeID
	case domain.RoleAdminDept, domain.RoleHOD:
		if actor.Department == "" {
			return nil, apperrors.ErrForbidden
		}
		filter.Department = actor.Department
	case domain.RoleHR, domain.RolePM, domain.RoleGA, domain.RoleSuperAdmin:
		// organization-wide
	default:
		return nil, apperrors.ErrForbidden
	}

	trfs, err := s.trfRepo.ListTRFs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list TRFs: %w", err)
	}

	// The store filter already narrows by owner/department; this re-check is
	// what makes the visibility rule authoritative in one place.
	trfs = workflow.FilterVisible(trfs, actor)

	if queue == portssvc.QueueAll {
		return trfs, nil
	}
	pending := make([]domain.TravelRequest, 0, len(trfs))
	for _, t := range trfs {
		if workflow.AwaitingActionBy(t, actor) {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

func (s *trfService) GetStatusHistory(ctx context.Context, actor domain.Actor, trfID string) ([]domain.AuditEntry, error) {
	if _, err := s.GetTRF(ctx, actor, trfID); err != nil {
		return nil, err
	}
	entries, err := s.auditRepo.ListAuditEntries(ctx, trfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	return entries, nil
}

func (s *trfService) AvailableActions(ctx context.Context, actor domain.Actor, trfID string) (workflow.ActionSet, error) {
	trf, err := s.GetTRF(ctx, actor, trfID)
	if err != nil {
		return workflow.ActionSet{}, err
	}
	return workflow.AvailableActions(*trf, actor), nil
}

// applyPayload copies the request content onto the aggregate. Status, stage
// evidence and identity fields are never touched here.
func applyPayload(trf *domain.TravelRequest, req dto.CreateTRFRequest) {
	trf.TravelPurpose = req.TravelPurpose
	trf.StartDate = req.StartDate
	trf.EndDate = req.EndDate
	trf.PurposeRemarks = req.PurposeRemarks
	trf.EstimatedCost = req.EstimatedCost

	if req.Accommodation != nil {
		trf.Accommodation = &domain.Accommodation{
			HotelName:    req.Accommodation.HotelName,
			CheckInDate:  req.Accommodation.CheckInDate,
			CheckOutDate: req.Accommodation.CheckOutDate,
			Remarks:      req.Accommodation.Remarks,
		}
	} else {
		trf.Accommodation = nil
	}

	arrangements := make([]domain.TravelArrangement, 0, len(req.TravelArrangements))
	for _, a := range req.TravelArrangements {
		arrangements = append(arrangements, domain.TravelArrangement{
			TravelType:         a.TravelType,
			ArrangementType:    a.ArrangementType,
			Transportation:     a.Transportation,
			TravelDate:         a.TravelDate,
			FromLocation:       a.FromLocation,
			ToLocation:         a.ToLocation,
			SpecialArrangement: a.SpecialArrangement,
			Justification:      a.Justification,
			Remarks:            a.Remarks,
		})
	}
	trf.TravelArrangements = arrangements
}
