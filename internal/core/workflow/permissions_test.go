package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/core/workflow"
)

func trfWithStatus(t *testing.T, status domain.TRFStatus) domain.TravelRequest {
	t.Helper()
	switch status {
	case domain.StatusDraft:
		return draftTRF()
	case domain.StatusSubmitted:
		return advance(t, draftTRF(), step(newEmployee(), workflow.ActionSubmit, ""))
	case domain.StatusPendingApproval:
		return toPendingApproval(t)
	case domain.StatusHODApproved:
		return advance(t, toPendingApproval(t), step(newHOD("MINING"), workflow.ActionApprove, "ok"))
	case domain.StatusHRApproved:
		return advance(t, toPendingApproval(t), step(newHR(), workflow.ActionApprove, "ok"))
	case domain.StatusParallelApproved:
		return advance(t, toPendingApproval(t),
			step(newHOD("MINING"), workflow.ActionApprove, "ok"),
			step(newHR(), workflow.ActionApprove, "ok"))
	case domain.StatusPMApproved:
		return advance(t, toPendingApproval(t),
			step(newHOD("MINING"), workflow.ActionApprove, "ok"),
			step(newHR(), workflow.ActionApprove, "ok"),
			step(newPM(), workflow.ActionApprove, "ok"))
	}
	t.Fatalf("unsupported status %s", status)
	return domain.TravelRequest{}
}

func TestVisibility(t *testing.T) {
	trf := draftTRF() // emp-1, department MINING

	cases := []struct {
		name    string
		actor   domain.Actor
		visible bool
	}{
		{"owning employee", newEmployee(), true},
		{"other employee", domain.Actor{Role: domain.RoleEmployee, EmployeeID: "emp-2"}, false},
		{"admin dept same department", newAdminDept("MINING"), true},
		{"admin dept other department", newAdminDept("FINANCE"), false},
		{"hod same department", newHOD("MINING"), true},
		{"hod other department", newHOD("FINANCE"), false},
		{"hr sees all", newHR(), true},
		{"pm sees all", newPM(), true},
		{"ga sees all", newGA(), true},
		{"super admin sees all", domain.Actor{Role: domain.RoleSuperAdmin}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.visible, workflow.Visible(trf, tc.actor))
		})
	}
}

func TestFilterVisible(t *testing.T) {
	mine := draftTRF()
	other := draftTRF()
	other.TRFID = "trf-2"
	other.EmployeeID = "emp-2"
	other.Department = "FINANCE"

	got := workflow.FilterVisible([]domain.TravelRequest{mine, other}, newEmployee())
	assert.Len(t, got, 1)
	assert.Equal(t, "trf-1", got[0].TRFID)

	all := workflow.FilterVisible([]domain.TravelRequest{mine, other}, newHR())
	assert.Len(t, all, 2)
}

func TestAvailableActionsFollowTheTransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		status domain.TRFStatus
		actor  domain.Actor
		want   workflow.ActionSet
	}{
		{"admin dept on submitted", domain.StatusSubmitted, newAdminDept("MINING"), workflow.ActionSet{CanApprove: true, CanRevise: true}},
		{"admin dept wrong department", domain.StatusSubmitted, newAdminDept("FINANCE"), workflow.ActionSet{}},
		{"admin dept once verified", domain.StatusPendingApproval, newAdminDept("MINING"), workflow.ActionSet{}},
		{"hod on pending approval", domain.StatusPendingApproval, newHOD("MINING"), workflow.ActionSet{CanApprove: true, CanReject: true, CanRevise: true}},
		{"hod after hr approved", domain.StatusHRApproved, newHOD("MINING"), workflow.ActionSet{CanApprove: true, CanReject: true, CanRevise: true}},
		{"hod after own approval", domain.StatusHODApproved, newHOD("MINING"), workflow.ActionSet{}},
		{"hod wrong department", domain.StatusPendingApproval, newHOD("FINANCE"), workflow.ActionSet{}},
		{"hr on pending approval", domain.StatusPendingApproval, newHR(), workflow.ActionSet{CanApprove: true, CanReject: true, CanRevise: true}},
		{"hr after hod approved", domain.StatusHODApproved, newHR(), workflow.ActionSet{CanApprove: true, CanReject: true, CanRevise: true}},
		{"hr after own approval", domain.StatusHRApproved, newHR(), workflow.ActionSet{}},
		{"pm below parallel approved", domain.StatusHODApproved, newPM(), workflow.ActionSet{}},
		{"pm on parallel approved, no revise", domain.StatusParallelApproved, newPM(), workflow.ActionSet{CanApprove: true, CanReject: true}},
		{"ga on pm approved", domain.StatusPMApproved, newGA(), workflow.ActionSet{CanApprove: true}},
		{"ga below pm approved", domain.StatusParallelApproved, newGA(), workflow.ActionSet{}},
		{"employee never approves", domain.StatusPendingApproval, newEmployee(), workflow.ActionSet{}},
		{"super admin observes only", domain.StatusPendingApproval, domain.Actor{Role: domain.RoleSuperAdmin}, workflow.ActionSet{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trf := trfWithStatus(t, tc.status)
			assert.Equal(t, tc.want, workflow.AvailableActions(trf, tc.actor))
		})
	}
}

func TestTerminalStatesOfferNoActions(t *testing.T) {
	rejected := draftTRF()
	rejected.Status = domain.StatusRejected
	for _, actor := range []domain.Actor{newAdminDept("MINING"), newHOD("MINING"), newHR(), newPM(), newGA()} {
		assert.Equal(t, workflow.ActionSet{}, workflow.AvailableActions(rejected, actor))
	}
}

func TestAwaitingActionBy(t *testing.T) {
	pending := toPendingApproval(t)

	assert.True(t, workflow.AwaitingActionBy(pending, newHOD("MINING")))
	assert.True(t, workflow.AwaitingActionBy(pending, newHR()))
	assert.False(t, workflow.AwaitingActionBy(pending, newPM()))
	assert.False(t, workflow.AwaitingActionBy(pending, newEmployee()))

	revision := advance(t, pending, step(newHR(), workflow.ActionReject, "MCU expired"))
	assert.True(t, workflow.AwaitingActionBy(revision, newEmployee()))
	assert.False(t, workflow.AwaitingActionBy(revision, newHR()))
}
