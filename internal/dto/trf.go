package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/core/workflow"
)

// AccommodationRequest is the optional lodging section of a TRF payload.
type AccommodationRequest struct {
	HotelName    string    `json:"hotelName" binding:"required"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required,gtfield=CheckInDate"`
	Remarks      string    `json:"remarks,omitempty"`
}

// TravelArrangementRequest is one leg of the requested itinerary.
type TravelArrangementRequest struct {
	TravelType         domain.TravelType         `json:"travelType" binding:"required,oneof=TRAVEL_IN TRAVEL_OUT"`
	ArrangementType    domain.ArrangementType    `json:"arrangementType" binding:"required,oneof=BY_SITE_SERVICE SELF_ARRANGEMENT"`
	Transportation     domain.TransportationType `json:"transportation" binding:"required"`
	TravelDate         time.Time                 `json:"travelDate" binding:"required"`
	FromLocation       string                    `json:"fromLocation" binding:"required"`
	ToLocation         string                    `json:"toLocation" binding:"required"`
	SpecialArrangement bool                      `json:"specialArrangement"`
	Justification      string                    `json:"justification,omitempty"`
	Remarks            string                    `json:"remarks,omitempty"`
}

// CreateTRFRequest is the payload for creating a draft or revising one.
type CreateTRFRequest struct {
	TravelPurpose      string                     `json:"travelPurpose" binding:"required"`
	StartDate          time.Time                  `json:"startDate" binding:"required"`
	EndDate            time.Time                  `json:"endDate" binding:"required,gtefield=StartDate"`
	PurposeRemarks     string                     `json:"purposeRemarks,omitempty"`
	EstimatedCost      *decimal.Decimal           `json:"estimatedCost,omitempty"`
	Accommodation      *AccommodationRequest      `json:"accommodation,omitempty"`
	TravelArrangements []TravelArrangementRequest `json:"travelArrangements" binding:"required,min=1,dive"`
}

// TRFResponse is the API representation of a travel request.
type TRFResponse struct {
	TRFID      string           `json:"trfId"`
	TRFNumber  string           `json:"trfNumber"`
	EmployeeID string           `json:"employeeId"`
	Department string           `json:"department"`
	Status     domain.TRFStatus `json:"status"`

	AdminDeptVerify  *domain.AdminDeptVerification `json:"adminDeptVerification,omitempty"`
	ParallelApproval *domain.ParallelApproval      `json:"parallelApproval,omitempty"`
	PMApproval       *domain.PMApproval            `json:"pmApproval,omitempty"`
	GAProcess        *domain.GAProcess             `json:"gaProcess,omitempty"`

	TravelPurpose      string                     `json:"travelPurpose"`
	StartDate          time.Time                  `json:"startDate"`
	EndDate            time.Time                  `json:"endDate"`
	PurposeRemarks     string                     `json:"purposeRemarks,omitempty"`
	EstimatedCost      *decimal.Decimal           `json:"estimatedCost,omitempty"`
	Accommodation      *domain.Accommodation      `json:"accommodation,omitempty"`
	TravelArrangements []domain.TravelArrangement `json:"travelArrangements"`

	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy string     `json:"lastUpdatedBy"`
}

// ActionsResponse reports what the caller may do to a TRF right now.
type ActionsResponse struct {
	CanApprove bool `json:"canApprove"`
	CanReject  bool `json:"canReject"`
	CanRevise  bool `json:"canRevise"`
}

// AuditEntryResponse is one line of a TRF's status history.
type AuditEntryResponse struct {
	EntryID       string    `json:"entryId"`
	TRFID         string    `json:"trfId"`
	ChangedBy     string    `json:"changedBy"`
	ChangedByName string    `json:"changedByName"`
	FromStatus    string    `json:"fromStatus,omitempty"`
	ToStatus      string    `json:"toStatus"`
	Remarks       string    `json:"remarks,omitempty"`
	ChangedAt     time.Time `json:"changedAt"`
}

// ToTRFResponse maps a domain travel request to its API shape.
func ToTRFResponse(trf *domain.TravelRequest) TRFResponse {
	return TRFResponse{
		TRFID:              trf.TRFID,
		TRFNumber:          trf.TRFNumber,
		EmployeeID:         trf.EmployeeID,
		Department:         trf.Department,
		Status:             trf.Status,
		AdminDeptVerify:    trf.AdminDeptVerify,
		ParallelApproval:   trf.ParallelApproval,
		PMApproval:         trf.PMApproval,
		GAProcess:          trf.GAProcess,
		TravelPurpose:      trf.TravelPurpose,
		StartDate:          trf.StartDate,
		EndDate:            trf.EndDate,
		PurposeRemarks:     trf.PurposeRemarks,
		EstimatedCost:      trf.EstimatedCost,
		Accommodation:      trf.Accommodation,
		TravelArrangements: trf.TravelArrangements,
		SubmittedAt:        trf.SubmittedAt,
		CreatedAt:          trf.CreatedAt,
		LastUpdatedAt:      trf.LastUpdatedAt,
		LastUpdatedBy:      trf.LastUpdatedBy,
	}
}

// ToTRFResponses maps a slice of travel requests.
func ToTRFResponses(trfs []domain.TravelRequest) []TRFResponse {
	out := make([]TRFResponse, 0, len(trfs))
	for i := range trfs {
		out = append(out, ToTRFResponse(&trfs[i]))
	}
	return out
}

// ToActionsResponse maps a workflow action set.
func ToActionsResponse(set workflow.ActionSet) ActionsResponse {
	return ActionsResponse{
		CanApprove: set.CanApprove,
		CanReject:  set.CanReject,
		CanRevise:  set.CanRevise,
	}
}

// ToAuditEntryResponse maps one audit entry.
func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		EntryID:       e.EntryID,
		TRFID:         e.TRFID,
		ChangedBy:     e.ChangedBy,
		ChangedByName: e.ChangedByName,
		FromStatus:    string(e.FromStatus),
		ToStatus:      string(e.ToStatus),
		Remarks:       e.Remarks,
		ChangedAt:     e.ChangedAt,
	}
}

// ToAuditEntryResponses maps a slice of audit entries.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, ToAuditEntryResponse(&entries[i]))
	}
	return out
}
