package services

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
	"github.com/trf-online/trf-backend/internal/dto"
)

// HotelSvcFacade manages hotel reference data used by GA fulfillment.
type HotelSvcFacade interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	CreateHotel(ctx context.Context, req dto.CreateHotelRequest, creatorUserID string) (*domain.Hotel, error)
}
