package repository

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-cli/internal/rentals/usecase"
)

type InMemoryRepository struct {
	rentals  []models.Rental
	capacity int
	nextID   int
	logger   *slog.Logger
}

func NewInMemoryRepository(capacity int, logger *slog.Logger) *InMemoryRepository {
	return &InMemoryRepository{
		rentals:  make([]models.Rental, 0, capacity),
		capacity: capacity,
		nextID:   1,
		logger:   logger,
	}
}

func (r *InMemoryRepository) Create(_ context.Context, params usecase.CreateParams) (models.Rental, error) {
	if len(r.rentals) >= r.capacity {
		return models.Rental{}, pkgErrors.ErrCapacityExceeded
	}

	rental := models.Rental{
		ID:        r.nextID,
		Customer:  params.Customer,
		CarID:     params.CarID,
		Days:      params.Days,
		TotalCost: params.TotalCost,
	}
	r.rentals = append(r.rentals, rental)
	r.nextID++

	r.logger.Debug("rental stored", slog.Int("id", rental.ID), slog.Int("car_id", rental.CarID))

	return rental, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id int) (models.Rental, error) {
	for _, rental := range r.rentals {
		if rental.ID == id {
			return rental, nil
		}
	}

	return models.Rental{}, pkgErrors.ErrRentalNotFound
}

func (r *InMemoryRepository) List(_ context.Context) []models.Rental {
	rentals := make([]models.Rental, len(r.rentals))
	copy(rentals, r.rentals)
	return rentals
}

func (r *InMemoryRepository) Snapshot(_ context.Context) []models.Rental {
	rentals := make([]models.Rental, len(r.rentals))
	copy(rentals, r.rentals)
	return rentals
}

// Restore replaces the collection and reseeds the id sequence past the
// highest loaded id so reloaded stores never reuse rental ids.
func (r *InMemoryRepository) Restore(_ context.Context, rentals []models.Rental) {
	r.rentals = r.rentals[:0]
	r.rentals = append(r.rentals, rentals...)

	r.nextID = 1
	for _, rental := range r.rentals {
		if rental.ID >= r.nextID {
			r.nextID = rental.ID + 1
		}
	}

	r.logger.Debug("rentals restored",
		slog.Int("count", len(r.rentals)),
		slog.Int("next_id", r.nextID),
	)
}
