package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/core/workflow"
)

var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func newEmployee() domain.Actor {
	return domain.Actor{ID: "user-emp", DisplayName: "Budi Santoso", Role: domain.RoleEmployee, EmployeeID: "emp-1"}
}

func newAdminDept(dept string) domain.Actor {
	return domain.Actor{ID: "user-admin", DisplayName: "Siti Admin", Role: domain.RoleAdminDept, Department: dept}
}

func newHOD(dept string) domain.Actor {
	return domain.Actor{ID: "user-hod", DisplayName: "Pak Kepala", Role: domain.RoleHOD, Department: dept}
}

func newHR() domain.Actor {
	return domain.Actor{ID: "user-hr", DisplayName: "Ibu HR", Role: domain.RoleHR}
}

func newPM() domain.Actor {
	return domain.Actor{ID: "user-pm", DisplayName: "Project Manager", Role: domain.RolePM}
}

func newGA() domain.Actor {
	return domain.Actor{ID: "user-ga", DisplayName: "General Affairs", Role: domain.RoleGA}
}

func draftTRF() domain.TravelRequest {
	return domain.TravelRequest{
		TRFID:         "trf-1",
		TRFNumber:     "TRF-20250615-123",
		EmployeeID:    "emp-1",
		Department:    "MINING",
		Status:        domain.StatusDraft,
		TravelPurpose: "Site audit",
		StartDate:     testNow.AddDate(0, 0, 7),
		EndDate:       testNow.AddDate(0, 0, 10),
	}
}

// advance runs a sequence of commands, failing the test on any error.
func advance(t *testing.T, trf domain.TravelRequest, steps ...struct {
	actor domain.Actor
	cmd   workflow.Command
}) domain.TravelRequest {
	t.Helper()
	for _, s := range steps {
		next, err := workflow.Evaluate(trf, s.actor, s.cmd, testNow)
		require.NoError(t, err)
		trf = next
	}
	return trf
}

func step(actor domain.Actor, action workflow.Action, remarks string) struct {
	actor domain.Actor
	cmd   workflow.Command
} {
	return struct {
		actor domain.Actor
		cmd   workflow.Command
	}{actor, workflow.Command{Action: action, Remarks: remarks}}
}

func toPendingApproval(t *testing.T) domain.TravelRequest {
	t.Helper()
	return advance(t, draftTRF(),
		step(newEmployee(), workflow.ActionSubmit, ""),
		step(newAdminDept("MINING"), workflow.ActionVerify, "documents complete"),
	)
}

func TestSubmitFromDraft(t *testing.T) {
	next, err := workflow.Evaluate(draftTRF(), newEmployee(), workflow.Command{Action: workflow.ActionSubmit}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSubmitted, next.Status)
	require.NotNil(t, next.SubmittedAt)
	assert.Equal(t, testNow, *next.SubmittedAt)
	assert.Equal(t, "user-emp", next.LastUpdatedBy)
}

func TestSubmitByNonOwnerForbidden(t *testing.T) {
	stranger := domain.Actor{ID: "user-x", Role: domain.RoleEmployee, EmployeeID: "emp-99"}
	_, err := workflow.Evaluate(draftTRF(), stranger, workflow.Command{Action: workflow.ActionSubmit}, testNow)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestVerifySeedsParallelBlock(t *testing.T) {
	trf := advance(t, draftTRF(), step(newEmployee(), workflow.ActionSubmit, ""))

	next, err := workflow.Evaluate(trf, newAdminDept("MINING"), workflow.Command{Action: workflow.ActionVerify, Remarks: "ok"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPendingApproval, next.Status)
	require.NotNil(t, next.AdminDeptVerify)
	assert.True(t, next.AdminDeptVerify.Verified)
	require.NotNil(t, next.ParallelApproval)
	assert.Equal(t, domain.SubApprovalPending, next.ParallelApproval.HOD.Status)
	assert.Equal(t, domain.SubApprovalPending, next.ParallelApproval.HR.Status)
}

func TestVerifyWrongDepartmentForbidden(t *testing.T) {
	trf := advance(t, draftTRF(), step(newEmployee(), workflow.ActionSubmit, ""))

	_, err := workflow.Evaluate(trf, newAdminDept("FINANCE"), workflow.Command{Action: workflow.ActionVerify, Remarks: "ok"}, testNow)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	// the original trf must be untouched
	assert.Equal(t, domain.StatusSubmitted, trf.Status)
}

func TestVerifyNoSendsBackForRevision(t *testing.T) {
	trf := advance(t, draftTRF(), step(newEmployee(), workflow.ActionSubmit, ""))

	next, err := workflow.Evaluate(trf, newAdminDept("MINING"), workflow.Command{Action: workflow.ActionRevise, Remarks: "MCU missing"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNeedsRevision, next.Status)
	require.NotNil(t, next.AdminDeptVerify)
	assert.False(t, next.AdminDeptVerify.Verified)
	assert.Nil(t, next.ParallelApproval)
}

func TestRemarksRequiredForEveryApprovalAction(t *testing.T) {
	pending := toPendingApproval(t)
	parallel := advance(t, pending,
		step(newHOD("MINING"), workflow.ActionApprove, "ok"),
		step(newHR(), workflow.ActionApprove, "ok"),
	)
	pmApproved := advance(t, parallel, step(newPM(), workflow.ActionApprove, "budget ok"))

	cases := []struct {
		name  string
		trf   domain.TravelRequest
		actor domain.Actor
		cmd   workflow.Command
	}{
		{"verify", advance(t, draftTRF(), step(newEmployee(), workflow.ActionSubmit, "")), newAdminDept("MINING"), workflow.Command{Action: workflow.ActionVerify}},
		{"hod approve", pending, newHOD("MINING"), workflow.Command{Action: workflow.ActionApprove}},
		{"hod reject", pending, newHOD("MINING"), workflow.Command{Action: workflow.ActionReject, Remarks: "   "}},
		{"hr revise", pending, newHR(), workflow.Command{Action: workflow.ActionRevise}},
		{"pm reject", parallel, newPM(), workflow.Command{Action: workflow.ActionReject}},
		{"ga process", pmApproved, newGA(), workflow.Command{Action: workflow.ActionProcess, Fulfillment: &workflow.Fulfillment{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := workflow.Evaluate(tc.trf, tc.actor, tc.cmd, testNow)
			assert.ErrorIs(t, err, apperrors.ErrMissingRemarks)
		})
	}
}

func TestParallelApprovalMergesInEitherOrder(t *testing.T) {
	pending := toPendingApproval(t)

	t.Run("hod first", func(t *testing.T) {
		afterHOD := advance(t, pending, step(newHOD("MINING"), workflow.ActionApprove, "approved"))
		assert.Equal(t, domain.StatusHODApproved, afterHOD.Status)

		both := advance(t, afterHOD, step(newHR(), workflow.ActionApprove, "mcu valid"))
		assert.Equal(t, domain.StatusParallelApproved, both.Status)
		assert.True(t, both.ParallelApproval.BothApproved())
	})

	t.Run("hr first", func(t *testing.T) {
		afterHR := advance(t, pending, step(newHR(), workflow.ActionApprove, "mcu valid"))
		assert.Equal(t, domain.StatusHRApproved, afterHR.Status)

		both := advance(t, afterHR, step(newHOD("MINING"), workflow.ActionApprove, "approved"))
		assert.Equal(t, domain.StatusParallelApproved, both.Status)
	})
}

func TestParallelApprovedOnlyViaBothApprovals(t *testing.T) {
	pending := toPendingApproval(t)

	afterHOD := advance(t, pending, step(newHOD("MINING"), workflow.ActionApprove, "ok"))
	assert.NotEqual(t, domain.StatusParallelApproved, afterHOD.Status)

	// a second HoD approval cannot promote the TRF
	_, err := workflow.Evaluate(afterHOD, newHOD("MINING"), workflow.Command{Action: workflow.ActionApprove, Remarks: "again"}, testNow)
	var ite *apperrors.InvalidTransitionError
	assert.ErrorAs(t, err, &ite)
}

func TestHODRejectionIsFatal(t *testing.T) {
	pending := toPendingApproval(t)

	next, err := workflow.Evaluate(pending, newHOD("MINING"), workflow.Command{Action: workflow.ActionReject, Remarks: "no budget"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, next.Status)
	assert.Equal(t, domain.SubApprovalRejected, next.ParallelApproval.HOD.Status)
	assert.True(t, next.Status.Terminal())
}

func TestHRRejectionIsRecoverable(t *testing.T) {
	pending := toPendingApproval(t)
	afterHOD := advance(t, pending, step(newHOD("MINING"), workflow.ActionApprove, "ok"))

	// Scenario D: HR rejects after HoD approved
	revised, err := workflow.Evaluate(afterHOD, newHR(), workflow.Command{Action: workflow.ActionReject, Remarks: "MCU expired"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedsRevision, revised.Status)
	// the earlier HoD evidence is retained
	assert.Equal(t, domain.SubApprovalApproved, revised.ParallelApproval.HOD.Status)

	resubmitted := advance(t, revised, step(newEmployee(), workflow.ActionResubmit, ""))
	assert.Equal(t, domain.StatusSubmitted, resubmitted.Status)

	// the next verification seeds a fresh parallel block
	verified := advance(t, resubmitted, step(newAdminDept("MINING"), workflow.ActionVerify, "re-checked"))
	assert.Equal(t, domain.SubApprovalPending, verified.ParallelApproval.HOD.Status)
	assert.Equal(t, domain.SubApprovalPending, verified.ParallelApproval.HR.Status)
}

func TestHODReviseSendsBackWithoutRejecting(t *testing.T) {
	pending := toPendingApproval(t)

	next, err := workflow.Evaluate(pending, newHOD("MINING"), workflow.Command{Action: workflow.ActionRevise, Remarks: "fix dates"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedsRevision, next.Status)
	assert.False(t, next.Status.Terminal())
}

func TestPMRejectionIsTerminal(t *testing.T) {
	parallel := advance(t, toPendingApproval(t),
		step(newHOD("MINING"), workflow.ActionApprove, "ok"),
		step(newHR(), workflow.ActionApprove, "ok"),
	)

	rejected, err := workflow.Evaluate(parallel, newPM(), workflow.Command{Action: workflow.ActionReject, Remarks: "budget cut"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)

	// Scenario E: no further calls succeed
	for _, actor := range []domain.Actor{newEmployee(), newAdminDept("MINING"), newHOD("MINING"), newHR(), newPM(), newGA()} {
		for _, action := range []workflow.Action{workflow.ActionSubmit, workflow.ActionResubmit, workflow.ActionVerify, workflow.ActionApprove, workflow.ActionReject, workflow.ActionProcess} {
			cmd := workflow.Command{Action: action, Remarks: "x", Fulfillment: &workflow.Fulfillment{}}
			_, err := workflow.Evaluate(rejected, actor, cmd, testNow)
			assert.Error(t, err, "actor %s action %s on terminal TRF", actor.Role, action)
		}
	}
}

func TestGAProcessCompletesPipeline(t *testing.T) {
	pmApproved := advance(t, toPendingApproval(t),
		step(newHOD("MINING"), workflow.ActionApprove, "ok"),
		step(newHR(), workflow.ActionApprove, "ok"),
		step(newPM(), workflow.ActionApprove, "ok"),
	)

	cmd := workflow.Command{
		Action:  workflow.ActionProcess,
		Remarks: "vouchers issued",
		Fulfillment: &workflow.Fulfillment{
			VoucherDetails:    domain.VoucherDetails{HotelVoucher: "HV-001", FlightTicket: "GA-412"},
			RemarksToEmployee: "pick up tickets at GA desk",
		},
	}
	done, err := workflow.Evaluate(pmApproved, newGA(), cmd, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusGAProcessed, done.Status)
	require.NotNil(t, done.GAProcess)
	assert.Equal(t, "HV-001", done.GAProcess.VoucherDetails.HotelVoucher)
	assert.True(t, done.Status.Terminal())
}

func TestGAProcessRequiresFulfillment(t *testing.T) {
	pmApproved := advance(t, toPendingApproval(t),
		step(newHOD("MINING"), workflow.ActionApprove, "ok"),
		step(newHR(), workflow.ActionApprove, "ok"),
		step(newPM(), workflow.ActionApprove, "ok"),
	)
	_, err := workflow.Evaluate(pmApproved, newGA(), workflow.Command{Action: workflow.ActionProcess, Remarks: "done"}, testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInvalidTransitionCarriesExpectedStatus(t *testing.T) {
	// PM acting on a TRF still in the parallel stage
	pending := toPendingApproval(t)
	_, err := workflow.Evaluate(pending, newPM(), workflow.Command{Action: workflow.ActionApprove, Remarks: "ok"}, testNow)

	ite, ok := apperrors.AsInvalidTransition(err)
	require.True(t, ok)
	assert.Equal(t, string(domain.StatusParallelApproved), ite.Expected)
	assert.Equal(t, string(domain.StatusPendingApproval), ite.Actual)
}

func TestEvaluateIsDeterministicAndPure(t *testing.T) {
	pending := toPendingApproval(t)
	cmd := workflow.Command{Action: workflow.ActionApprove, Remarks: "ok"}

	first, err1 := workflow.Evaluate(pending, newHOD("MINING"), cmd, testNow)
	second, err2 := workflow.Evaluate(pending, newHOD("MINING"), cmd, testNow)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	// input untouched
	assert.Equal(t, domain.StatusPendingApproval, pending.Status)
	assert.Equal(t, domain.SubApprovalPending, pending.ParallelApproval.HOD.Status)
}

func TestCheckConsistency(t *testing.T) {
	good := advance(t, toPendingApproval(t), step(newHOD("MINING"), workflow.ActionApprove, "ok"))
	assert.NoError(t, workflow.CheckConsistency(good))

	bad := good.Clone()
	bad.Status = domain.StatusParallelApproved // HR never approved
	assert.Error(t, workflow.CheckConsistency(bad))

	bad2 := good.Clone()
	bad2.ParallelApproval = nil
	assert.Error(t, workflow.CheckConsistency(bad2))
}
