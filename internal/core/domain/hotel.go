package domain

// Hotel is reference data used by GA when issuing accommodation vouchers.
type Hotel struct {
	HotelID    string `json:"hotelID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalRooms int    `json:"totalRooms"`
	AuditFields
}
