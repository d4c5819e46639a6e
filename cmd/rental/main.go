package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	carsRepository "github.com/SlavaShagalov/car-rental-cli/internal/cars/repository"
	carsUsecase "github.com/SlavaShagalov/car-rental-cli/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-cli/internal/delivery"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/app"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/storage"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/terminal"
	rentalsRepository "github.com/SlavaShagalov/car-rental-cli/internal/rentals/repository"
	rentalsUsecase "github.com/SlavaShagalov/car-rental-cli/internal/rentals/usecase"
	usersRepository "github.com/SlavaShagalov/car-rental-cli/internal/users/repository"
	usersUsecase "github.com/SlavaShagalov/car-rental-cli/internal/users/usecase"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/rental.yaml", "Config file path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.Level(config.Logging.Level)}))
	logger = logger.With(slog.String("session", uuid.New().String()))

	ctx := context.Background()

	usersRepo := usersRepository.NewInMemoryRepository(config.Limits.Users, logger)
	carsRepo := carsRepository.NewInMemoryRepository(config.Limits.Cars, logger)
	rentalsRepo := rentalsRepository.NewInMemoryRepository(config.Limits.Rentals, logger)

	store := storage.NewFileStorage(config.Storage, logger)

	snap := store.Load(ctx)
	usersRepo.Restore(ctx, snap.Users)
	carsRepo.Restore(ctx, snap.Cars)
	rentalsRepo.Restore(ctx, snap.Rentals)

	usersUC := usersUsecase.New(usersRepo, config.Auth.AdminKey, logger)
	carsUC := carsUsecase.New(carsRepo, logger)
	rentalsUC := rentalsUsecase.New(rentalsRepo, carsRepo, logger)

	reader := terminal.NewTermReader(os.Stdin, os.Stdout, config.Auth.CredentialLength)

	shell := delivery.New(usersUC, carsUC, rentalsUC, store, reader, os.Stdout, logger)

	err = shell.Run(ctx)

	// Final flush so the on-disk state always matches the session.
	err = multierr.Append(err, store.Save(ctx, storage.Snapshot{
		Users:   usersRepo.Snapshot(ctx),
		Cars:    carsRepo.Snapshot(ctx),
		Rentals: rentalsRepo.Snapshot(ctx),
	}))
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
