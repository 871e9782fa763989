package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/core/services"
	"github.com/trf-online/trf-backend/internal/dto"
)

// --- Mock TRFRepository ---
type MockTRFRepository struct {
	mock.Mock
}

var _ portsrepo.TRFRepositoryFacade = (*MockTRFRepository)(nil)

func (m *MockTRFRepository) FindTRFByID(ctx context.Context, trfID string) (*domain.TravelRequest, error) {
	args := m.Called(ctx, trfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelRequest), args.Error(1)
}

func (m *MockTRFRepository) ListTRFs(ctx context.Context, filter portsrepo.TRFFilter) ([]domain.TravelRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelRequest), args.Error(1)
}

func (m *MockTRFRepository) SaveTRF(ctx context.Context, trf domain.TravelRequest, entry domain.AuditEntry) error {
	args := m.Called(ctx, trf, entry)
	return args.Error(0)
}

func (m *MockTRFRepository) UpdateTRFWithAudit(ctx context.Context, trf domain.TravelRequest, expectedStatus domain.TRFStatus, entry domain.AuditEntry) error {
	args := m.Called(ctx, trf, expectedStatus, entry)
	return args.Error(0)
}

func (m *MockTRFRepository) UpdateTRFContent(ctx context.Context, trf domain.TravelRequest) error {
	args := m.Called(ctx, trf)
	return args.Error(0)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) ListAuditEntries(ctx context.Context, trfID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, trfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error) {
	args := m.Called(ctx, employeeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// --- Shared builders ---

func ownerActor() domain.Actor {
	return domain.Actor{ID: "user-emp-1", DisplayName: "Asep Saputra", Role: domain.RoleEmployee, EmployeeID: "emp-1"}
}

func adminDeptActor() domain.Actor {
	return domain.Actor{ID: "user-admin-1", DisplayName: "Dewi Admin", Role: domain.RoleAdminDept, Department: "MINING"}
}

func hodActor() domain.Actor {
	return domain.Actor{ID: "user-hod-1", DisplayName: "Budi Santoso", Role: domain.RoleHOD, Department: "MINING"}
}

func hrActor() domain.Actor {
	return domain.Actor{ID: "user-hr-1", DisplayName: "Siti Rahma", Role: domain.RoleHR}
}

func gaActor() domain.Actor {
	return domain.Actor{ID: "user-ga-1", DisplayName: "Rina GA", Role: domain.RoleGA}
}

func storedTRF(status domain.TRFStatus) *domain.TravelRequest {
	trf := &domain.TravelRequest{
		TRFID:         "trf-1",
		TRFNumber:     "TRF-20260301-042",
		EmployeeID:    "emp-1",
		Department:    "MINING",
		Status:        status,
		TravelPurpose: "Site audit",
		StartDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TravelArrangements: []domain.TravelArrangement{{
			TravelType:      domain.TravelIn,
			ArrangementType: domain.BySiteService,
			Transportation:  domain.TransportFlight,
			TravelDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			FromLocation:    "Jakarta",
			ToLocation:      "Site A",
		}},
	}
	if status != domain.StatusDraft {
		at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		trf.SubmittedAt = &at
	}
	switch status {
	case domain.StatusPendingApproval:
		trf.AdminDeptVerify = &domain.AdminDeptVerification{Verified: true, VerifiedBy: "user-admin-1"}
		trf.ParallelApproval = &domain.ParallelApproval{
			HOD: domain.SubApproval{Status: domain.SubApprovalPending},
			HR:  domain.SubApproval{Status: domain.SubApprovalPending},
		}
	case domain.StatusPMApproved:
		trf.AdminDeptVerify = &domain.AdminDeptVerification{Verified: true, VerifiedBy: "user-admin-1"}
		trf.ParallelApproval = &domain.ParallelApproval{
			HOD: domain.SubApproval{Status: domain.SubApprovalApproved},
			HR:  domain.SubApproval{Status: domain.SubApprovalApproved},
		}
		trf.PMApproval = &domain.PMApproval{Approved: true, ApprovedBy: "user-pm-1"}
	}
	return trf
}

func draftPayload() dto.CreateTRFRequest {
	return dto.CreateTRFRequest{
		TravelPurpose: "Site audit",
		StartDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TravelArrangements: []dto.TravelArrangementRequest{{
			TravelType:      domain.TravelIn,
			ArrangementType: domain.BySiteService,
			Transportation:  domain.TransportFlight,
			TravelDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			FromLocation:    "Jakarta",
			ToLocation:      "Site A",
		}},
	}
}

// --- Test Suite ---

type TRFServiceTestSuite struct {
	suite.Suite
	mockTRFRepo      *MockTRFRepository
	mockAuditRepo    *MockAuditRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.TRFSvcFacade
	ctx              context.Context
}

func (suite *TRFServiceTestSuite) SetupTest() {
	suite.mockTRFRepo = new(MockTRFRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewTRFService(suite.mockTRFRepo, suite.mockAuditRepo, suite.mockEmployeeRepo)
	suite.ctx = context.Background()
}

func (suite *TRFServiceTestSuite) TestCreateTRF_SnapshotsDepartment() {
	employee := &domain.Employee{
		EmployeeID:   "emp-1",
		EmployeeType: domain.EmployeeTypeEmployee,
		EmployeeName: "Asep Saputra",
		Department:   "MINING",
	}
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-1").Return(employee, nil)
	suite.mockTRFRepo.On("SaveTRF", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusDraft &&
				trf.EmployeeID == "emp-1" &&
				trf.Department == "MINING" &&
				trf.TRFNumber != "" &&
				trf.SubmittedAt == nil
		}),
		mock.MatchedBy(func(entry domain.AuditEntry) bool {
			// creation entry has no FromStatus
			return entry.FromStatus == domain.TRFStatus("") && entry.ToStatus == domain.StatusDraft
		}),
	).Return(nil)

	trf, err := suite.service.CreateTRF(suite.ctx, ownerActor(), draftPayload())

	suite.Require().NoError(err)
	suite.Require().NotNil(trf)
	suite.Equal(domain.StatusDraft, trf.Status)
	suite.Equal("MINING", trf.Department)
	suite.mockTRFRepo.AssertExpectations(suite.T())
}

func (suite *TRFServiceTestSuite) TestCreateTRF_NonEmployeeForbidden() {
	_, err := suite.service.CreateTRF(suite.ctx, hodActor(), draftPayload())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTRFRepo.AssertNotCalled(suite.T(), "SaveTRF", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TRFServiceTestSuite) TestSubmit_MovesDraftIntoPipeline() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusDraft), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx,
		mock.MatchedBy(func(trf domain.TravelRequest) bool {
			return trf.Status == domain.StatusSubmitted && trf.SubmittedAt != nil
		}),
		domain.StatusDraft,
		mock.MatchedBy(func(entry domain.AuditEntry) bool {
			return entry.FromStatus == domain.StatusDraft && entry.ToStatus == domain.StatusSubmitted
		}),
	).Return(nil)

	trf, err := suite.service.Submit(suite.ctx, ownerActor(), "trf-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSubmitted, trf.Status)
	suite.mockTRFRepo.AssertExpectations(suite.T())
}

func (suite *TRFServiceTestSuite) TestSubmit_ConflictSurfacesToCaller() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusDraft), nil)
	suite.mockTRFRepo.On("UpdateTRFWithAudit", suite.ctx, mock.Anything, domain.StatusDraft, mock.Anything).
		Return(apperrors.ErrConflict)

	_, err := suite.service.Submit(suite.ctx, ownerActor(), "trf-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TRFServiceTestSuite) TestSubmit_NonOwnerForbidden() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusDraft), nil)

	other := domain.Actor{ID: "user-emp-2", Role: domain.RoleEmployee, EmployeeID: "emp-2"}
	_, err := suite.service.Submit(suite.ctx, other, "trf-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTRFRepo.AssertNotCalled(suite.T(), "UpdateTRFWithAudit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TRFServiceTestSuite) TestGetTRF_InvisibleToOtherDepartment() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusSubmitted), nil)

	otherDeptHOD := domain.Actor{ID: "user-hod-2", Role: domain.RoleHOD, Department: "LOGISTICS"}
	_, err := suite.service.GetTRF(suite.ctx, otherDeptHOD, "trf-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TRFServiceTestSuite) TestListVisibleTRFs_EmployeeScopedToOwn() {
	expected := portsrepo.TRFFilter{EmployeeID: "emp-1"}
	suite.mockTRFRepo.On("ListTRFs", suite.ctx, expected).
		Return([]domain.TravelRequest{*storedTRF(domain.StatusDraft)}, nil)

	trfs, err := suite.service.ListVisibleTRFs(suite.ctx, ownerActor(), portssvc.QueueAll)

	suite.Require().NoError(err)
	suite.Len(trfs, 1)
	suite.mockTRFRepo.AssertExpectations(suite.T())
}

func (suite *TRFServiceTestSuite) TestListVisibleTRFs_VerificationQueue() {
	submitted := *storedTRF(domain.StatusSubmitted)
	pending := *storedTRF(domain.StatusPendingApproval)
	pending.TRFID = "trf-2"
	suite.mockTRFRepo.On("ListTRFs", suite.ctx, portsrepo.TRFFilter{Department: "MINING"}).
		Return([]domain.TravelRequest{submitted, pending}, nil)

	trfs, err := suite.service.ListVisibleTRFs(suite.ctx, adminDeptActor(), portssvc.QueueVerification)

	suite.Require().NoError(err)
	// only the SUBMITTED one awaits the admin department
	suite.Require().Len(trfs, 1)
	suite.Equal("trf-1", trfs[0].TRFID)
}

func (suite *TRFServiceTestSuite) TestGetStatusHistory_ChecksVisibilityFirst() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusSubmitted), nil)
	entries := []domain.AuditEntry{
		{EntryID: "a-1", TRFID: "trf-1", ToStatus: domain.StatusDraft},
		{EntryID: "a-2", TRFID: "trf-1", FromStatus: domain.StatusDraft, ToStatus: domain.StatusSubmitted},
	}
	suite.mockAuditRepo.On("ListAuditEntries", suite.ctx, "trf-1").Return(entries, nil)

	got, err := suite.service.GetStatusHistory(suite.ctx, ownerActor(), "trf-1")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(domain.TRFStatus(""), got[0].FromStatus)
}

func (suite *TRFServiceTestSuite) TestUpdateDraft_RejectedAfterSubmission() {
	suite.mockTRFRepo.On("FindTRFByID", suite.ctx, "trf-1").Return(storedTRF(domain.StatusSubmitted), nil)

	_, err := suite.service.UpdateDraft(suite.ctx, ownerActor(), "trf-1", draftPayload())

	suite.Require().Error(err)
	_, ok := apperrors.AsInvalidTransition(err)
	suite.True(ok)
	suite.mockTRFRepo.AssertNotCalled(suite.T(), "UpdateTRFContent", mock.Anything, mock.Anything)
}

func TestTRFService(t *testing.T) {
	suite.Run(t, new(TRFServiceTestSuite))
}
