package usecase

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
)

type UseCase struct {
	repo   Repository
	cars   CarRepository
	logger *slog.Logger
}

func New(repo Repository, cars CarRepository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		cars:   cars,
		logger: logger,
	}
}

// Rent creates a rental for an available car. The total cost is computed
// once from the car's current price and frozen into the rental record.
func (u *UseCase) Rent(ctx context.Context, params RentParams) (RentReceipt, error) {
	if params.Days <= 0 {
		return RentReceipt{}, pkgErrors.ErrInvalidDuration
	}

	car, err := u.cars.GetAvailable(ctx, params.CarID)
	if err != nil {
		return RentReceipt{}, err
	}

	totalCost := float64(params.Days) * car.PricePerDay

	rental, err := u.repo.Create(ctx, CreateParams{
		Customer:  params.Customer,
		CarID:     car.ID,
		Days:      params.Days,
		TotalCost: totalCost,
	})
	if err != nil {
		return RentReceipt{}, err
	}

	if err = u.cars.SetAvailability(ctx, car.ID, false); err != nil {
		return RentReceipt{}, errors.Wrap(err, "mark car rented")
	}

	u.logger.Debug("car rented",
		slog.Int("rental_id", rental.ID),
		slog.Int("car_id", car.ID),
		slog.String("customer", rental.Customer),
	)

	return RentReceipt{
		RentalID:    rental.ID,
		Customer:    rental.Customer,
		CarID:       car.ID,
		Brand:       car.Brand,
		Model:       car.Model,
		Days:        rental.Days,
		PricePerDay: car.PricePerDay,
		TotalCost:   rental.TotalCost,
	}, nil
}

// Return makes the rented car available again. A car deleted while rented
// is tolerated: the receipt still carries the rental's frozen fields.
func (u *UseCase) Return(ctx context.Context, rentalID int) (ReturnReceipt, error) {
	rental, err := u.repo.Get(ctx, rentalID)
	if err != nil {
		return ReturnReceipt{}, err
	}

	receipt := ReturnReceipt{
		RentalID:  rental.ID,
		Customer:  rental.Customer,
		CarID:     rental.CarID,
		Days:      rental.Days,
		TotalCost: rental.TotalCost,
	}

	car, err := u.cars.Get(ctx, rental.CarID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrCarNotFound) {
			u.logger.Warn("rented car no longer exists",
				slog.Int("rental_id", rental.ID),
				slog.Int("car_id", rental.CarID),
			)
			return receipt, nil
		}
		return ReturnReceipt{}, err
	}

	if err = u.cars.SetAvailability(ctx, car.ID, true); err != nil {
		return ReturnReceipt{}, errors.Wrap(err, "mark car available")
	}

	receipt.Brand = car.Brand
	receipt.Model = car.Model
	receipt.PricePerDay = car.PricePerDay
	receipt.CarKnown = true

	u.logger.Debug("car returned",
		slog.Int("rental_id", rental.ID),
		slog.Int("car_id", car.ID),
	)

	return receipt, nil
}

func (u *UseCase) ListRentals(ctx context.Context) []models.Rental {
	return u.repo.List(ctx)
}

func (u *UseCase) Snapshot(ctx context.Context) []models.Rental {
	return u.repo.Snapshot(ctx)
}
