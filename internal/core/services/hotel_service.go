package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/dto"
)

type hotelService struct {
	hotelRepo portsrepo.HotelRepositoryFacade
}

// NewHotelService creates the hotel reference data service.
func NewHotelService(hotelRepo portsrepo.HotelRepositoryFacade) portssvc.HotelSvcFacade {
	return &hotelService{hotelRepo: hotelRepo}
}

func (s *hotelService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.hotelRepo.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *hotelService) CreateHotel(ctx context.Context, req dto.CreateHotelRequest, creatorUserID string) (*domain.Hotel, error) {
	now := time.Now()
	hotel := domain.Hotel{
		HotelID:    uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Location:   req.Location,
		TotalRooms: req.TotalRooms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.hotelRepo.SaveHotel(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}
