package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
)

type CreateParams struct {
	Brand       string
	Model       string
	Year        int
	PricePerDay float64
}

type SortKey string

const (
	SortKeyID           SortKey = "id"
	SortKeyBrand        SortKey = "brand"
	SortKeyModel        SortKey = "model"
	SortKeyYear         SortKey = "year"
	SortKeyPrice        SortKey = "price"
	SortKeyAvailability SortKey = "availability"
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (models.Car, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) []models.Car
	SortBy(ctx context.Context, key SortKey) error
	Snapshot(ctx context.Context) []models.Car
	Restore(ctx context.Context, cars []models.Car)
}
