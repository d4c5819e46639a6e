package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
)

type RentParams struct {
	Customer string
	CarID    int
	Days     int
}

type CreateParams struct {
	Customer  string
	CarID     int
	Days      int
	TotalCost float64
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (models.Rental, error)
	Get(ctx context.Context, id int) (models.Rental, error)
	List(ctx context.Context) []models.Rental
	Snapshot(ctx context.Context) []models.Rental
	Restore(ctx context.Context, rentals []models.Rental)
}

// CarRepository is the slice of the car store the rental operations need.
type CarRepository interface {
	Get(ctx context.Context, id int) (models.Car, error)
	GetAvailable(ctx context.Context, id int) (models.Car, error)
	SetAvailability(ctx context.Context, id int, available bool) error
}
