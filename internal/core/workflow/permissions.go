package workflow

import (
	"github.com/trf-online/trf-backend/internal/core/domain"
)

// ActionSet is what the acting user may currently do to a TRF. It is derived
// from the transition rules on every call, never stored, so the UI and the
// engine cannot disagree about what is allowed.
type ActionSet struct {
	CanApprove bool `json:"canApprove"`
	CanReject  bool `json:"canReject"`
	CanRevise  bool `json:"canRevise"`
}

// Visible reports whether actor may see trf at all.
//
//	EMPLOYEE            - own TRFs only
//	ADMIN_DEPT, HOD     - TRFs of their department
//	HR, PM, GA, SUPER_ADMIN - everything
func Visible(trf domain.TravelRequest, actor domain.Actor) bool {
	switch actor.Role {
	case domain.RoleEmployee:
		return actor.EmployeeID != "" && trf.EmployeeID == actor.EmployeeID
	case domain.RoleAdminDept, domain.RoleHOD:
		return actor.Department != "" && trf.Department == actor.Department
	case domain.RoleHR, domain.RolePM, domain.RoleGA, domain.RoleSuperAdmin:
		return true
	}
	return false
}

// FilterVisible returns the subset of trfs that actor may see, preserving
// order.
func FilterVisible(trfs []domain.TravelRequest, actor domain.Actor) []domain.TravelRequest {
	out := make([]domain.TravelRequest, 0, len(trfs))
	for _, t := range trfs {
		if Visible(t, actor) {
			out = append(out, t)
		}
	}
	return out
}

// AvailableActions computes the approve/reject/revise switches for actor on
// trf from the same rules Evaluate enforces.
func AvailableActions(trf domain.TravelRequest, actor domain.Actor) ActionSet {
	if trf.Status.Terminal() || !Visible(trf, actor) {
		return ActionSet{}
	}

	switch actor.Role {
	case domain.RoleAdminDept:
		if trf.Status == domain.StatusSubmitted && actor.Department == trf.Department {
			// approve = verify-yes, revise = verify-no; there is no hard
			// reject at the verification stage
			return ActionSet{CanApprove: true, CanRevise: true}
		}
	case domain.RoleHOD:
		if actor.Department == trf.Department && sidePending(trf, hodSide) {
			return ActionSet{CanApprove: true, CanReject: true, CanRevise: true}
		}
	case domain.RoleHR:
		if sidePending(trf, hrSide) {
			return ActionSet{CanApprove: true, CanReject: true, CanRevise: true}
		}
	case domain.RolePM:
		if trf.Status == domain.StatusParallelApproved {
			return ActionSet{CanApprove: true, CanReject: true}
		}
	case domain.RoleGA:
		if trf.Status == domain.StatusPMApproved {
			return ActionSet{CanApprove: true}
		}
	}
	return ActionSet{}
}

// sidePending reports whether the given parallel side still has an action to
// take on trf.
func sidePending(trf domain.TravelRequest, side parallelSide) bool {
	if !side.actionable(trf.Status) || trf.ParallelApproval == nil {
		return false
	}
	return side.sub(trf.ParallelApproval).Status == domain.SubApprovalPending
}

// AwaitingActionBy reports whether trf sits in actor's work queue: visible,
// and with at least one action currently available. Employees see their own
// TRFs needing revision or still in draft.
func AwaitingActionBy(trf domain.TravelRequest, actor domain.Actor) bool {
	if actor.Role == domain.RoleEmployee {
		return Visible(trf, actor) &&
			(trf.Status == domain.StatusDraft || trf.Status == domain.StatusNeedsRevision)
	}
	set := AvailableActions(trf, actor)
	return set.CanApprove || set.CanReject || set.CanRevise
}
