package repositories

import (
	"context"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// HotelReader defines read operations for hotel reference data.
type HotelReader interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
}

// HotelWriter defines write operations for hotel reference data.
type HotelWriter interface {
	SaveHotel(ctx context.Context, hotel domain.Hotel) error
}

// HotelRepositoryFacade combines all hotel repository interfaces.
type HotelRepositoryFacade interface {
	HotelReader
	HotelWriter
}
