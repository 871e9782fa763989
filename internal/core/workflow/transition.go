// Package workflow is the pure core of the TRF approval pipeline: the
// transition validator and the permission/visibility rules. It holds no
// state, performs no I/O and returns errors as values, so services can call
// it before persisting and tests can exercise every rule without wiring.
package workflow

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
)

// Fulfillment carries what GA issued when closing a TRF. Required for
// ActionProcess, ignored otherwise.
type Fulfillment struct {
	VoucherDetails    domain.VoucherDetails
	TotalAmount       *decimal.Decimal
	Files             []string
	RemarksToEmployee string
}

// Command is one requested transition.
type Command struct {
	Action      Action
	Remarks     string
	Fulfillment *Fulfillment
}

// Evaluate decides whether actor may apply cmd to trf and, if so, returns
// the resulting aggregate: new status, mutated stage evidence and updated
// audit fields. The input trf is never mutated. Evaluate is deterministic
// for fixed inputs and now.
//
// Checks run in order: department/ownership gate, remarks requirement,
// transition table. The HoD/HR merge rule lives here: after writing the
// acting side's sub-record the sibling is re-read from the same snapshot,
// and the status is promoted to PARALLEL_APPROVED only when both sides are
// APPROVED. Serializing that snapshot against concurrent writers is the
// store's job (conditional write on the status read here).
func Evaluate(trf domain.TravelRequest, actor domain.Actor, cmd Command, now time.Time) (domain.TravelRequest, error) {
	if err := authorize(trf, actor, cmd.Action); err != nil {
		return domain.TravelRequest{}, err
	}
	if cmd.Action.RequiresRemarks() && strings.TrimSpace(cmd.Remarks) == "" {
		return domain.TravelRequest{}, apperrors.ErrMissingRemarks
	}

	next := trf.Clone()
	var err error
	switch cmd.Action {
	case ActionSubmit:
		err = applySubmit(&next, now)
	case ActionResubmit:
		err = applyResubmit(&next)
	case ActionVerify:
		err = applyVerify(&next, actor, cmd.Remarks, now, true)
	case ActionApprove:
		err = applyApprove(&next, actor, cmd.Remarks, now)
	case ActionReject:
		err = applyReject(&next, actor, cmd.Remarks, now)
	case ActionRevise:
		err = applyRevise(&next, actor, cmd.Remarks, now)
	case ActionProcess:
		err = applyProcess(&next, actor, cmd, now)
	default:
		return domain.TravelRequest{}, apperrors.NewAppError(400, "unknown workflow action "+string(cmd.Action), apperrors.ErrValidation)
	}
	if err != nil {
		return domain.TravelRequest{}, err
	}

	next.LastUpdatedAt = now
	next.LastUpdatedBy = actor.ID

	if err := CheckConsistency(next); err != nil {
		return domain.TravelRequest{}, err
	}
	return next, nil
}

// authorize applies the role/department/ownership gate, before the
// transition table is consulted.
func authorize(trf domain.TravelRequest, actor domain.Actor, action Action) error {
	switch action {
	case ActionSubmit, ActionResubmit:
		if actor.Role != domain.RoleEmployee || actor.EmployeeID == "" || actor.EmployeeID != trf.EmployeeID {
			return apperrors.ErrForbidden
		}
	case ActionVerify:
		if actor.Role != domain.RoleAdminDept || actor.Department != trf.Department {
			return apperrors.ErrForbidden
		}
	case ActionApprove, ActionReject, ActionRevise:
		switch actor.Role {
		case domain.RoleHOD:
			if actor.Department != trf.Department {
				return apperrors.ErrForbidden
			}
		case domain.RoleHR:
			// organization-wide
		case domain.RolePM:
			if action == ActionRevise {
				return apperrors.ErrForbidden // PM never offers revise
			}
		case domain.RoleAdminDept:
			// ADMIN_DEPT "approve"/"revise" is the verify outcome pair
			if action == ActionReject || actor.Department != trf.Department {
				return apperrors.ErrForbidden
			}
		default:
			return apperrors.ErrForbidden
		}
	case ActionProcess:
		if actor.Role != domain.RoleGA {
			return apperrors.ErrForbidden
		}
	default:
		return apperrors.ErrForbidden
	}
	return nil
}

func applySubmit(trf *domain.TravelRequest, now time.Time) error {
	if trf.Status != domain.StatusDraft {
		return apperrors.NewInvalidTransition(string(domain.StatusDraft), string(trf.Status))
	}
	trf.Status = domain.StatusSubmitted
	trf.SubmittedAt = &now
	return nil
}

func applyResubmit(trf *domain.TravelRequest) error {
	if trf.Status != domain.StatusNeedsRevision {
		return apperrors.NewInvalidTransition(string(domain.StatusNeedsRevision), string(trf.Status))
	}
	// Earlier stage evidence is kept for the record; the next verification
	// seeds a fresh parallel block.
	trf.Status = domain.StatusSubmitted
	return nil
}

func applyVerify(trf *domain.TravelRequest, actor domain.Actor, remarks string, now time.Time, verified bool) error {
	if trf.Status != domain.StatusSubmitted {
		return apperrors.NewInvalidTransition(string(domain.StatusSubmitted), string(trf.Status))
	}
	trf.AdminDeptVerify = &domain.AdminDeptVerification{
		Verified:     verified,
		VerifiedBy:   actor.ID,
		VerifierName: actor.DisplayName,
		Remarks:      remarks,
		VerifiedAt:   now,
	}
	if verified {
		trf.Status = domain.StatusPendingApproval
		trf.ParallelApproval = &domain.ParallelApproval{
			HOD: domain.SubApproval{Status: domain.SubApprovalPending},
			HR:  domain.SubApproval{Status: domain.SubApprovalPending},
		}
	} else {
		trf.Status = domain.StatusNeedsRevision
	}
	return nil
}

func applyApprove(trf *domain.TravelRequest, actor domain.Actor, remarks string, now time.Time) error {
	switch actor.Role {
	case domain.RoleAdminDept:
		// verify-yes, reachable through the generic action entry point
		return applyVerify(trf, actor, remarks, now, true)
	case domain.RoleHOD:
		return applyParallel(trf, actor, remarks, now, true, hodSide)
	case domain.RoleHR:
		return applyParallel(trf, actor, remarks, now, true, hrSide)
	case domain.RolePM:
		if trf.Status != domain.StatusParallelApproved {
			return apperrors.NewInvalidTransition(string(domain.StatusParallelApproved), string(trf.Status))
		}
		trf.Status = domain.StatusPMApproved
		trf.PMApproval = &domain.PMApproval{
			Approved:     true,
			ApprovedBy:   actor.ID,
			ApproverName: actor.DisplayName,
			Remarks:      remarks,
			ApprovedAt:   now,
		}
		return nil
	}
	return apperrors.ErrForbidden
}

func applyReject(trf *domain.TravelRequest, actor domain.Actor, remarks string, now time.Time) error {
	switch actor.Role {
	case domain.RoleHOD:
		// HoD rejection is fatal
		return applyParallel(trf, actor, remarks, now, false, hodSide)
	case domain.RoleHR:
		// HR rejection is recoverable, not fatal
		return applyParallel(trf, actor, remarks, now, false, hrSide)
	case domain.RolePM:
		if trf.Status != domain.StatusParallelApproved {
			return apperrors.NewInvalidTransition(string(domain.StatusParallelApproved), string(trf.Status))
		}
		trf.Status = domain.StatusRejected
		trf.PMApproval = &domain.PMApproval{
			Approved:     false,
			ApprovedBy:   actor.ID,
			ApproverName: actor.DisplayName,
			Remarks:      remarks,
			ApprovedAt:   now,
		}
		return nil
	}
	return apperrors.ErrForbidden
}

func applyRevise(trf *domain.TravelRequest, actor domain.Actor, remarks string, now time.Time) error {
	switch actor.Role {
	case domain.RoleAdminDept:
		// verify-no
		return applyVerify(trf, actor, remarks, now, false)
	case domain.RoleHOD:
		return applyParallelRevise(trf, actor, remarks, now, hodSide)
	case domain.RoleHR:
		return applyParallelRevise(trf, actor, remarks, now, hrSide)
	}
	return apperrors.ErrForbidden
}

type parallelSide int

const (
	hodSide parallelSide = iota
	hrSide
)

// expectedFrom is the canonical waiting state for a side of the parallel
// stage, reported on invalid transitions.
func (s parallelSide) expectedFrom() domain.TRFStatus {
	return domain.StatusPendingApproval
}

func (s parallelSide) sub(p *domain.ParallelApproval) *domain.SubApproval {
	if s == hodSide {
		return &p.HOD
	}
	return &p.HR
}

func (s parallelSide) sibling(p *domain.ParallelApproval) *domain.SubApproval {
	if s == hodSide {
		return &p.HR
	}
	return &p.HOD
}

// actionable reports whether the side may still act in the given status:
// its own sub-record is pending and the overall status is the parallel
// stage or the sibling's completion.
func (s parallelSide) actionable(status domain.TRFStatus) bool {
	if status == domain.StatusPendingApproval {
		return true
	}
	if s == hodSide {
		return status == domain.StatusHRApproved
	}
	return status == domain.StatusHODApproved
}

func applyParallel(trf *domain.TravelRequest, actor domain.Actor, remarks string, now time.Time, approved bool, side parallelSide) error {
	if !side.actionable(trf.Status) || trf.ParallelApproval == nil {
		return apperrors.NewInvalidTransition(string(side.expectedFrom()), string(trf.Status))
	}
	sub := side.sub(trf.ParallelApproval)
	if sub.Status != domain.SubApprovalPending {
		return apperrors.NewInvalidTransition(string(side.expectedFrom()), string(trf.Status))
	}

	at := now
	sub.ActionBy = actor.ID
	sub.ActionByName = actor.DisplayName
	sub.Remarks = remarks
	sub.ActionAt = &at

	if !approved {
		sub.Status = domain.SubApprovalRejected
		if side == hodSide {
			trf.Status = domain.StatusRejected
		} else {
			trf.Status = domain.StatusNeedsRevision
		}
		return nil
	}

	sub.Status = domain.SubApprovalApproved
	// Merge rule: promote only when the sibling, re-read from the same
	// snapshot the store serialized for us, has also approved.
	if side.sibling(trf.ParallelApproval).Status == domain.SubApprovalApproved {
		trf.Status = domain.StatusParallelApproved
	} else if side == hodSide {
		trf.Status = domain.StatusHODApproved
	} else {
		trf.Status = domain.StatusHRApproved
	}
	return nil
}

func applyParallelRevise(trf *domain.TravelRequest, actor domain.Actor, remarks string, now time.Time, side parallelSide) error {
	if !side.actionable(trf.Status) || trf.ParallelApproval == nil {
		return apperrors.NewInvalidTransition(string(side.expectedFrom()), string(trf.Status))
	}
	sub := side.sub(trf.ParallelApproval)
	if sub.Status != domain.SubApprovalPending {
		return apperrors.NewInvalidTransition(string(side.expectedFrom()), string(trf.Status))
	}
	at := now
	sub.Status = domain.SubApprovalRejected
	sub.ActionBy = actor.ID
	sub.ActionByName = actor.DisplayName
	sub.Remarks = remarks
	sub.ActionAt = &at
	trf.Status = domain.StatusNeedsRevision
	return nil
}

func applyProcess(trf *domain.TravelRequest, actor domain.Actor, cmd Command, now time.Time) error {
	if trf.Status != domain.StatusPMApproved {
		return apperrors.NewInvalidTransition(string(domain.StatusPMApproved), string(trf.Status))
	}
	if cmd.Fulfillment == nil {
		return apperrors.NewAppError(400, "fulfillment details are required to process a TRF", apperrors.ErrValidation)
	}
	trf.Status = domain.StatusGAProcessed
	trf.GAProcess = &domain.GAProcess{
		Processed:         true,
		ProcessedBy:       actor.ID,
		ProcessorName:     actor.DisplayName,
		VoucherDetails:    cmd.Fulfillment.VoucherDetails,
		TotalAmount:       cmd.Fulfillment.TotalAmount,
		Files:             cmd.Fulfillment.Files,
		RemarksToEmployee: cmd.Fulfillment.RemarksToEmployee,
		ProcessedAt:       now,
	}
	return nil
}

// CheckConsistency verifies the status/evidence invariant: the status must be
// backed by exactly the stage evidence it implies. Any write violating this
// is rejected before it reaches the store.
func CheckConsistency(trf domain.TravelRequest) error {
	fail := func(msg string) error {
		return apperrors.NewAppError(500, "inconsistent TRF state: "+msg, apperrors.ErrValidation)
	}
	if !trf.Status.Valid() {
		return fail("unknown status " + string(trf.Status))
	}
	p := trf.ParallelApproval
	switch trf.Status {
	case domain.StatusDraft:
		if trf.SubmittedAt != nil {
			return fail("draft with submittedAt set")
		}
	case domain.StatusPendingApproval:
		if p == nil {
			return fail("pending approval without parallel block")
		}
		if p.HOD.Status == domain.SubApprovalApproved || p.HR.Status == domain.SubApprovalApproved {
			return fail("pending approval with a side already approved")
		}
	case domain.StatusHODApproved:
		if p == nil || p.HOD.Status != domain.SubApprovalApproved {
			return fail("HOD_APPROVED without HoD approval evidence")
		}
		if p.HR.Status == domain.SubApprovalApproved {
			return fail("HOD_APPROVED with HR already approved")
		}
	case domain.StatusHRApproved:
		if p == nil || p.HR.Status != domain.SubApprovalApproved {
			return fail("HR_APPROVED without HR approval evidence")
		}
		if p.HOD.Status == domain.SubApprovalApproved {
			return fail("HR_APPROVED with HoD already approved")
		}
	case domain.StatusParallelApproved:
		if p == nil || !p.BothApproved() {
			return fail("PARALLEL_APPROVED without both approvals")
		}
	case domain.StatusPMApproved:
		if trf.PMApproval == nil || !trf.PMApproval.Approved {
			return fail("PM_APPROVED without PM approval evidence")
		}
		if p == nil || !p.BothApproved() {
			return fail("PM_APPROVED without both parallel approvals")
		}
	case domain.StatusGAProcessed:
		if trf.GAProcess == nil || !trf.GAProcess.Processed {
			return fail("GA_PROCESSED without fulfillment evidence")
		}
	}
	return nil
}
