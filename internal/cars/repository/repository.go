package repository

import (
	"context"
	"log/slog"
	"sort"

	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-cli/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
)

type InMemoryRepository struct {
	cars     []models.Car
	capacity int
	logger   *slog.Logger
}

func NewInMemoryRepository(capacity int, logger *slog.Logger) *InMemoryRepository {
	return &InMemoryRepository{
		cars:     make([]models.Car, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

func (r *InMemoryRepository) Create(_ context.Context, params usecase.CreateParams) (models.Car, error) {
	if len(r.cars) >= r.capacity {
		return models.Car{}, pkgErrors.ErrCapacityExceeded
	}

	for _, c := range r.cars {
		if c.Brand == params.Brand && c.Model == params.Model {
			return models.Car{}, pkgErrors.ErrCarAlreadyExists
		}
	}

	car := models.Car{
		ID:          len(r.cars) + 1,
		Brand:       params.Brand,
		Model:       params.Model,
		Year:        params.Year,
		PricePerDay: params.PricePerDay,
		IsAvailable: true,
	}
	r.cars = append(r.cars, car)

	r.logger.Debug("car stored", slog.Int("id", car.ID), slog.Int("total", len(r.cars)))

	return car, nil
}

// Delete removes the car with the given id. Surviving cars keep their ids.
func (r *InMemoryRepository) Delete(_ context.Context, id int) error {
	for i, c := range r.cars {
		if c.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			r.logger.Debug("car removed", slog.Int("id", id), slog.Int("total", len(r.cars)))
			return nil
		}
	}

	return pkgErrors.ErrCarNotFound
}

func (r *InMemoryRepository) Get(_ context.Context, id int) (models.Car, error) {
	for _, c := range r.cars {
		if c.ID == id {
			return c, nil
		}
	}

	return models.Car{}, pkgErrors.ErrCarNotFound
}

// GetAvailable finds a car by id among the cars not currently rented.
func (r *InMemoryRepository) GetAvailable(_ context.Context, id int) (models.Car, error) {
	for _, c := range r.cars {
		if c.ID == id && c.IsAvailable {
			return c, nil
		}
	}

	return models.Car{}, pkgErrors.ErrCarNotFound
}

func (r *InMemoryRepository) SetAvailability(_ context.Context, id int, available bool) error {
	for i := range r.cars {
		if r.cars[i].ID == id {
			r.cars[i].IsAvailable = available
			return nil
		}
	}

	return pkgErrors.ErrCarNotFound
}

func (r *InMemoryRepository) List(_ context.Context) []models.Car {
	cars := make([]models.Car, len(r.cars))
	copy(cars, r.cars)
	return cars
}

// SortBy reorders the stored collection in place. The sort is stable, ties
// keep their prior relative order.
func (r *InMemoryRepository) SortBy(_ context.Context, key usecase.SortKey) error {
	switch key {
	case usecase.SortKeyID:
		sort.SliceStable(r.cars, func(i, j int) bool { return r.cars[i].ID < r.cars[j].ID })
	case usecase.SortKeyBrand:
		sort.SliceStable(r.cars, func(i, j int) bool { return r.cars[i].Brand < r.cars[j].Brand })
	case usecase.SortKeyModel:
		sort.SliceStable(r.cars, func(i, j int) bool { return r.cars[i].Model < r.cars[j].Model })
	case usecase.SortKeyYear:
		sort.SliceStable(r.cars, func(i, j int) bool { return r.cars[i].Year < r.cars[j].Year })
	case usecase.SortKeyPrice:
		sort.SliceStable(r.cars, func(i, j int) bool { return r.cars[i].PricePerDay < r.cars[j].PricePerDay })
	case usecase.SortKeyAvailability:
		// Available cars sort before rented ones.
		sort.SliceStable(r.cars, func(i, j int) bool { return r.cars[i].IsAvailable && !r.cars[j].IsAvailable })
	default:
		return errors.Errorf("unknown sort key %q", key)
	}

	return nil
}

func (r *InMemoryRepository) Snapshot(_ context.Context) []models.Car {
	cars := make([]models.Car, len(r.cars))
	copy(cars, r.cars)
	return cars
}

func (r *InMemoryRepository) Restore(_ context.Context, cars []models.Car) {
	r.cars = r.cars[:0]
	r.cars = append(r.cars, cars...)

	r.logger.Debug("cars restored", slog.Int("count", len(r.cars)))
}
