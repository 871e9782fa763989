package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TRFStatus is the closed set of lifecycle states a travel request moves
// through. GA_PROCESSED and REJECTED are terminal.
type TRFStatus string

const (
	StatusDraft            TRFStatus = "DRAFT"
	StatusSubmitted        TRFStatus = "SUBMITTED"
	StatusPendingApproval  TRFStatus = "PENDING_APPROVAL" // verified by admin dept, waiting HoD & HR
	StatusHODApproved      TRFStatus = "HOD_APPROVED"     // HoD done, waiting HR
	StatusHRApproved       TRFStatus = "HR_APPROVED"      // HR done, waiting HoD
	StatusParallelApproved TRFStatus = "PARALLEL_APPROVED"
	StatusPMApproved       TRFStatus = "PM_APPROVED"
	StatusGAProcessed      TRFStatus = "GA_PROCESSED"
	StatusRejected         TRFStatus = "REJECTED"
	StatusNeedsRevision    TRFStatus = "NEEDS_REVISION"
)

// Valid reports whether s is one of the known statuses.
func (s TRFStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusPendingApproval, StatusHODApproved,
		StatusHRApproved, StatusParallelApproved, StatusPMApproved,
		StatusGAProcessed, StatusRejected, StatusNeedsRevision:
		return true
	}
	return false
}

// Terminal reports whether no further transition is accepted from s.
func (s TRFStatus) Terminal() bool {
	return s == StatusGAProcessed || s == StatusRejected
}

// SubApprovalStatus is the state of one side of the parallel HoD/HR stage.
type SubApprovalStatus string

const (
	SubApprovalPending  SubApprovalStatus = "PENDING"
	SubApprovalApproved SubApprovalStatus = "APPROVED"
	SubApprovalRejected SubApprovalStatus = "REJECTED"
)

// TravelType distinguishes travel into and out of the site.
type TravelType string

const (
	TravelIn  TravelType = "TRAVEL_IN"
	TravelOut TravelType = "TRAVEL_OUT"
)

// ArrangementType says who books the trip.
type ArrangementType string

const (
	BySiteService   ArrangementType = "BY_SITE_SERVICE"
	SelfArrangement ArrangementType = "SELF_ARRANGEMENT"
)

// TransportationType is the means of transport for a travel leg.
type TransportationType string

const (
	TransportCar    TransportationType = "CAR"
	TransportFlight TransportationType = "FLIGHT"
	TransportTrain  TransportationType = "TRAIN"
	TransportSelf   TransportationType = "SELF_ARRANGEMENT"
)

// AdminDeptVerification records the outcome of the departmental check on a
// submitted TRF.
type AdminDeptVerification struct {
	Verified     bool      `json:"verified"`
	VerifiedBy   string    `json:"verifiedBy"`
	VerifierName string    `json:"verifierName"`
	Remarks      string    `json:"remarks,omitempty"`
	VerifiedAt   time.Time `json:"verifiedAt"`
}

// SubApproval is one independent half of the parallel approval stage.
type SubApproval struct {
	Status       SubApprovalStatus `json:"status"`
	ActionBy     string            `json:"actionBy,omitempty"`
	ActionByName string            `json:"actionByName,omitempty"`
	Remarks      string            `json:"remarks,omitempty"`
	ActionAt     *time.Time        `json:"actionAt,omitempty"`
}

// ParallelApproval holds the HoD and HR sub-records. Both are seeded PENDING
// when the admin department verifies the TRF, and each side mutates only its
// own record.
type ParallelApproval struct {
	HOD SubApproval `json:"hod"`
	HR  SubApproval `json:"hr"`
}

// BothApproved reports whether the TRF may advance past the parallel stage.
func (p ParallelApproval) BothApproved() bool {
	return p.HOD.Status == SubApprovalApproved && p.HR.Status == SubApprovalApproved
}

// PMApproval records the project manager's final sign-off.
type PMApproval struct {
	Approved     bool      `json:"approved"`
	ApprovedBy   string    `json:"approvedBy"`
	ApproverName string    `json:"approverName"`
	Remarks      string    `json:"remarks,omitempty"`
	ApprovedAt   time.Time `json:"approvedAt"`
}

// VoucherDetails lists what general affairs issued for the trip.
type VoucherDetails struct {
	HotelVoucher   string `json:"hotelVoucher,omitempty"`
	FlightTicket   string `json:"flightTicket,omitempty"`
	Transportation string `json:"transportation,omitempty"`
	Other          string `json:"other,omitempty"`
}

// GAProcess records the fulfillment step that closes a TRF.
type GAProcess struct {
	Processed         bool             `json:"processed"`
	ProcessedBy       string           `json:"processedBy"`
	ProcessorName     string           `json:"processorName"`
	VoucherDetails    VoucherDetails   `json:"voucherDetails"`
	TotalAmount       *decimal.Decimal `json:"totalAmount,omitempty"`
	Files             []string         `json:"files,omitempty"` // opaque URLs, storage is out of scope
	RemarksToEmployee string           `json:"remarksToEmployee,omitempty"`
	ProcessedAt       time.Time        `json:"processedAt"`
}

// Accommodation is an optional lodging request attached to a TRF.
type Accommodation struct {
	HotelName    string    `json:"hotelName"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Remarks      string    `json:"remarks,omitempty"`
}

// TravelArrangement is one leg of the requested trip.
type TravelArrangement struct {
	TravelType         TravelType         `json:"travelType"`
	ArrangementType    ArrangementType    `json:"arrangementType"`
	Transportation     TransportationType `json:"transportation"`
	TravelDate         time.Time          `json:"travelDate"`
	FromLocation       string             `json:"fromLocation"`
	ToLocation         string             `json:"toLocation"`
	SpecialArrangement bool               `json:"specialArrangement"`
	Justification      string             `json:"justification,omitempty"`
	Remarks            string             `json:"remarks,omitempty"`
}

// TravelRequest is the aggregate routed through the approval pipeline.
//
// EmployeeID and Department are immutable after creation: Department is a
// snapshot of the employee's department at creation time and anchors
// departmental routing even if the employee later transfers. The stage
// evidence pointers are nil until their stage completes; the workflow engine
// rejects any write where evidence and Status disagree.
type TravelRequest struct {
	TRFID      string `json:"trfID"`
	TRFNumber  string `json:"trfNumber"` // TRF-<YYYYMMDD>-<3 digits>, uniqueness is a store concern
	EmployeeID string `json:"employeeID"`
	Department string `json:"department"`

	Status TRFStatus `json:"status"`

	// Stage evidence, populated as the pipeline advances.
	AdminDeptVerify  *AdminDeptVerification `json:"adminDeptVerify,omitempty"`
	ParallelApproval *ParallelApproval      `json:"parallelApproval,omitempty"`
	PMApproval       *PMApproval            `json:"pmApproval,omitempty"`
	GAProcess        *GAProcess             `json:"gaProcess,omitempty"`

	// Request content, opaque to the workflow engine.
	TravelPurpose      string              `json:"travelPurpose"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	PurposeRemarks     string              `json:"purposeRemarks,omitempty"`
	EstimatedCost      *decimal.Decimal    `json:"estimatedCost,omitempty"`
	Accommodation      *Accommodation      `json:"accommodation,omitempty"`
	TravelArrangements []TravelArrangement `json:"travelArrangements"`

	SubmittedAt *time.Time `json:"submittedAt,omitempty"` // set once, on DRAFT -> SUBMITTED
	AuditFields
}

// Clone returns a deep copy so the validator can compute a candidate next
// state without mutating the loaded aggregate.
func (t TravelRequest) Clone() TravelRequest {
	out := t
	if t.AdminDeptVerify != nil {
		v := *t.AdminDeptVerify
		out.AdminDeptVerify = &v
	}
	if t.ParallelApproval != nil {
		p := *t.ParallelApproval
		out.ParallelApproval = &p
	}
	if t.PMApproval != nil {
		p := *t.PMApproval
		out.PMApproval = &p
	}
	if t.GAProcess != nil {
		g := *t.GAProcess
		if t.GAProcess.Files != nil {
			g.Files = append([]string(nil), t.GAProcess.Files...)
		}
		out.GAProcess = &g
	}
	if t.Accommodation != nil {
		a := *t.Accommodation
		out.Accommodation = &a
	}
	if t.TravelArrangements != nil {
		out.TravelArrangements = append([]TravelArrangement(nil), t.TravelArrangements...)
	}
	if t.SubmittedAt != nil {
		s := *t.SubmittedAt
		out.SubmittedAt = &s
	}
	return out
}
