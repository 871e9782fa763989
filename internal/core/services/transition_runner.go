package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	"github.com/trf-online/trf-backend/internal/core/workflow"
	"github.com/trf-online/trf-backend/internal/middleware"
)

// applyTransition is the single funnel for every status-changing action:
// load the aggregate, run the pure validator, then persist the new state
// conditional on the status that was read, appending the audit entry in the
// same transaction. An apperrors.ErrConflict from the store means another
// actor won the race; callers reload and retry.
func applyTransition(ctx context.Context, trfRepo portsrepo.TRFRepositoryFacade, actor domain.Actor, trfID string, cmd workflow.Command) (*domain.TravelRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trf, err := trfRepo.FindTRFByID(ctx, trfID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next, err := workflow.Evaluate(*trf, actor, cmd, now)
	if err != nil {
		logger.Warn("Workflow action rejected",
			slog.String("trf_id", trfID),
			slog.String("action", string(cmd.Action)),
			slog.String("status", string(trf.Status)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	entry := domain.AuditEntry{
		EntryID:       uuid.NewString(),
		TRFID:         trfID,
		ChangedBy:     actor.ID,
		ChangedByName: actor.DisplayName,
		FromStatus:    trf.Status,
		ToStatus:      next.Status,
		Remarks:       cmd.Remarks,
		ChangedAt:     now,
	}

	if err := trfRepo.UpdateTRFWithAudit(ctx, next, trf.Status, entry); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Concurrent modification, transition not applied",
				slog.String("trf_id", trfID),
				slog.String("action", string(cmd.Action)),
			)
		} else {
			logger.Error("Failed to persist workflow transition",
				slog.String("trf_id", trfID),
				slog.String("action", string(cmd.Action)),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	logger.Info("TRF transitioned",
		slog.String("trf_id", trfID),
		slog.String("action", string(cmd.Action)),
		slog.String("from", string(entry.FromStatus)),
		slog.String("to", string(entry.ToStatus)),
	)
	return &next, nil
}
