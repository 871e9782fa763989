package dto

import "github.com/trf-online/trf-backend/internal/core/domain"

// CreateHotelRequest registers a hotel for GA fulfillment.
type CreateHotelRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Location   string `json:"location" binding:"required"`
	TotalRooms int    `json:"totalRooms" binding:"required,min=1"`
}

// HotelResponse is the API representation of a hotel.
type HotelResponse struct {
	HotelID    string `json:"hotelId"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalRooms int    `json:"totalRooms"`
}

// ToHotelResponse maps a domain hotel to its API shape.
func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		HotelID:    h.HotelID,
		Code:       h.Code,
		Name:       h.Name,
		Location:   h.Location,
		TotalRooms: h.TotalRooms,
	}
}

// ToHotelResponses maps a slice of hotels.
func ToHotelResponses(hotels []domain.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, ToHotelResponse(&hotels[i]))
	}
	return out
}
