package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
)

type PgxHotelRepository struct {
	BaseRepository
}

func newPgxHotelRepository(db *pgxpool.Pool) portsrepo.HotelRepositoryFacade {
	return &PgxHotelRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.HotelRepositoryFacade = (*PgxHotelRepository)(nil)

func (r *PgxHotelRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	query := `
		SELECT hotel_id, code, name, location, total_rooms,
			created_at, created_by, last_updated_at, last_updated_by
		FROM hotels
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer rows.Close()

	hotels := []domain.Hotel{}
	for rows.Next() {
		var h domain.Hotel
		err := rows.Scan(
			&h.HotelID, &h.Code, &h.Name, &h.Location, &h.TotalRooms,
			&h.CreatedAt, &h.CreatedBy, &h.LastUpdatedAt, &h.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel row: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating hotel rows: %w", err)
	}
	return hotels, nil
}

func (r *PgxHotelRepository) SaveHotel(ctx context.Context, hotel domain.Hotel) error {
	query := `
		INSERT INTO hotels (hotel_id, code, name, location, total_rooms,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		hotel.HotelID, hotel.Code, hotel.Name, hotel.Location, hotel.TotalRooms,
		hotel.CreatedAt, hotel.CreatedBy, hotel.LastUpdatedAt, hotel.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.NewAppError(409, fmt.Sprintf("hotel code %s already exists", hotel.Code), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save hotel: %w", err)
	}
	return nil
}
