package delivery

import (
	"context"

	carsUC "github.com/SlavaShagalov/car-rental-cli/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/storage"
	rentalsUC "github.com/SlavaShagalov/car-rental-cli/internal/rentals/usecase"
	usersUC "github.com/SlavaShagalov/car-rental-cli/internal/users/usecase"
)

type UsersUseCase interface {
	SignUp(ctx context.Context, params usersUC.SignUpParams) (models.User, error)
	SignIn(ctx context.Context, params usersUC.SignInParams) (models.User, error)
	Snapshot(ctx context.Context) []models.User
}

type CarsUseCase interface {
	AddCar(ctx context.Context, params carsUC.CreateParams) (models.Car, error)
	DeleteCar(ctx context.Context, id int) error
	ListCars(ctx context.Context) []models.Car
	SortCars(ctx context.Context, key carsUC.SortKey) error
	Snapshot(ctx context.Context) []models.Car
}

type RentalsUseCase interface {
	Rent(ctx context.Context, params rentalsUC.RentParams) (rentalsUC.RentReceipt, error)
	Return(ctx context.Context, rentalID int) (rentalsUC.ReturnReceipt, error)
	ListRentals(ctx context.Context) []models.Rental
	Snapshot(ctx context.Context) []models.Rental
}

type Storage interface {
	Save(ctx context.Context, snap storage.Snapshot) error
}
