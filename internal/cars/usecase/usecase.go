package usecase

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) AddCar(ctx context.Context, params CreateParams) (models.Car, error) {
	car, err := u.repo.Create(ctx, params)
	if err != nil {
		return models.Car{}, err
	}

	u.logger.Debug("car added",
		slog.Int("id", car.ID),
		slog.String("brand", car.Brand),
		slog.String("model", car.Model),
	)

	return car, nil
}

func (u *UseCase) DeleteCar(ctx context.Context, id int) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Debug("car deleted", slog.Int("id", id))

	return nil
}

func (u *UseCase) ListCars(ctx context.Context) []models.Car {
	return u.repo.List(ctx)
}

func (u *UseCase) SortCars(ctx context.Context, key SortKey) error {
	return u.repo.SortBy(ctx, key)
}

func (u *UseCase) Snapshot(ctx context.Context) []models.Car {
	return u.repo.Snapshot(ctx)
}
