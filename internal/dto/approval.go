package dto

import "github.com/shopspring/decimal"

// ActionRequest carries an approval decision. Remarks are mandatory for
// every decision and the workflow rejects blank ones.
type ActionRequest struct {
	Approved bool   `json:"approved"`
	Remarks  string `json:"remarks" binding:"required"`
}

// ReviseRequest sends a TRF back for correction.
type ReviseRequest struct {
	Remarks string `json:"remarks" binding:"required"`
}

// VoucherDetailsRequest lists what general affairs issued for the trip.
type VoucherDetailsRequest struct {
	HotelVoucher   string `json:"hotelVoucher,omitempty"`
	FlightTicket   string `json:"flightTicket,omitempty"`
	Transportation string `json:"transportation,omitempty"`
	Other          string `json:"other,omitempty"`
}

// ProcessRequest carries the GA fulfillment details that close a TRF.
type ProcessRequest struct {
	VoucherDetails    VoucherDetailsRequest `json:"voucherDetails" binding:"required"`
	TotalAmount       *decimal.Decimal      `json:"totalAmount,omitempty"`
	Files             []string              `json:"files,omitempty"`
	RemarksToEmployee string                `json:"remarksToEmployee,omitempty"`
	Remarks           string                `json:"remarks" binding:"required"`
}
