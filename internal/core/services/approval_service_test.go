package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/core/services"
	"github.com/trf-online/trf-backend/internal/core/workflow"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockTRFRepo *MockTRFRepository
	service     portssvc.ApprovalSvcFacade
	ctx         context.Context
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockTRFRepo = new(MockTRFRepository)
	suite.service = services.NewApprovalService(suite.mockTRFRepo)
	suite.ctx = context.Background()
}

func (suite *ApprovalServiceTestSuite) TestVerify_SeedsParallelStage() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusSubmitted), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusPendingApproval &&
				trf.ParallelApproval != nil &&
				trf.ParallelApproval.HOD.Status == domain.SubApprovalPending &&
				trf.ParallelApproval.HR.Status == domain.SubApprovalPending
		}),
		domain.StatusSubmitted,
		mock.MatchedBy(func(entry domain.AuditEntry) bool {
			return entry.ToStatus == domain.StatusPendingApproval && entry.Remarks == "checked"
		}),
	).Return(nil)

	trf, err := suite.service.Verify(suite.ctx, adminDeptActor(), "trf-1", true, "checked")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingApproval, trf.Status)
	suite.mockTRFRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestVerify_NotOKSendsBackForRevision() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusSubmitted), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusNeedsRevision && trf.AdminDeptVerify != nil && !trf.AdminDeptVerify.Verified
		}),
		domain.StatusSubmitted,
		mock.Anything,
	).Return(nil)

	trf, err := suite.service.Verify(suite.ctx, adminDeptActor(), "trf-1", false, "budget code missing")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusNeedsRevision, trf.Status)
}

func (suite *ApprovalServiceTestSuite) TestVerify_BlankRemarksRejectedBeforePersist() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusSubmitted), nil)

	_, err := suite.service.Verify(suite.ctx, adminDeptActor(), "trf-1", true, "   ")

	suite.ErrorIs(err, apperrors.ErrMissingRemarks)
	suite.mockTRFRepo.AssertNotCalled(suite.T(), "UpdateTRFWithAudit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestHODApprove_FirstOfTwo() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusPendingApproval), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusHODApproved &&
				trf.ParallelApproval.HOD.Status == domain.SubApprovalApproved &&
				trf.ParallelApproval.HR.Status == domain.SubApprovalPending
		}),
		domain.StatusPendingApproval,
		mock.Anything,
	).Return(nil)

	trf, err := suite.service.HODApprove(suite.ctx, hodActor(), "trf-1", true, "ok for the team")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusHODApproved, trf.Status)
}

func (suite *ApprovalServiceTestSuite) TestHRApprove_CompletesParallelStage() {
	stored := storedTRF(domain.StatusPendingApproval)
	stored.Status = domain.StatusHODApproved
	stored.ParallelApproval.HOD.Status = domain.SubApprovalApproved
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(stored, nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusParallelApproved && trf.ParallelApproval.BothApproved()
		}),
		domain.StatusHODApproved,
		mock.Anything,
	).Return(nil)

	trf, err := suite.service.HRApprove(suite.ctx, hrActor(), "trf-1", true, "headcount confirmed")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusParallelApproved, trf.Status)
}

func (suite *ApprovalServiceTestSuite) TestHRReject_IsRecoverable() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusPendingApproval), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusNeedsRevision &&
				trf.ParallelApproval.HR.Status == domain.SubApprovalRejected
		}),
		domain.StatusPendingApproval,
		mock.Anything,
	).Return(nil)

	trf, err := suite.service.HRApprove(suite.ctx, hrActor(), "trf-1", false, "dates clash with leave")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusNeedsRevision, trf.Status)
}

func (suite *ApprovalServiceTestSuite) TestHODReject_IsFatal() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusPendingApproval), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusRejected &&
				trf.ParallelApproval.HOD.Status == domain.SubApprovalRejected
		}),
		domain.StatusPendingApproval,
		mock.Anything,
	).Return(nil)

	trf, err := suite.service.HODApprove(suite.ctx, hodActor(), "trf-1", false, "not justified")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, trf.Status)
}

func (suite *ApprovalServiceTestSuite) TestHODApprove_LosesRaceToSibling() {
	// Both sides read PENDING_APPROVAL; the store accepts the first write and
	// rejects the second on its stale expected status.
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusPendingApproval), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx, mock.Anything, domain.StatusPendingApproval, mock.Anything).
		Return(apperrors.ErrConflict)

	_, err := suite.service.HODApprove(suite.ctx, hodActor(), "trf-1", true, "ok")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ApprovalServiceTestSuite) TestGAProcess_RecordsFulfillment() {
	amount := decimal.NewFromInt(4500000)
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusPMApproved), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusGAProcessed &&
				trf.GAProcess != nil &&
				trf.GAProcess.VoucherDetails.HotelVoucher == "HV-1201" &&
				trf.GAProcess.TotalAmount != nil && trf.GAProcess.TotalAmount.Equal(amount)
		}),
		domain.StatusPMApproved,
		mock.Anything,
	).Return(nil)

	fulfillment := workflow.Fulfillment{
		VoucherDetails: domain.VoucherDetails{HotelVoucher: "HV-1201", FlightTicket: "GA-417"},
		TotalAmount:    &amount,
	}
	trf, err := suite.service.GAProcess(suite.ctx, gaActor(), "trf-1", fulfillment, "booked and issued")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusGAProcessed, trf.Status)
}

func (suite *ApprovalServiceTestSuite) TestRevise_ByHODKeepsTRFAlive() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusPendingApproval), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusNeedsRevision
		}),
		domain.StatusPendingApproval,
		mock.Anything,
	).Return(nil)

	trf, err := suite.service.Revise(suite.ctx, hodActor(), "trf-1", "split the trip into two requests")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusNeedsRevision, trf.Status)
}

func TestApprovalService(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
