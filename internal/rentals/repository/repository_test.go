package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-cli/internal/rentals/repository"
	"github.com/SlavaShagalov/car-rental-cli/internal/rentals/usecase"
)

func newRepo(capacity int) *repository.InMemoryRepository {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repository.NewInMemoryRepository(capacity, logger)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := newRepo(10)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		rental, err := repo.Create(ctx, usecase.CreateParams{Customer: "alice", CarID: 1, Days: i, TotalCost: float64(i) * 45})
		require.NoError(t, err)
		assert.Equal(t, i, rental.ID)
	}
}

func TestCreateCapacity(t *testing.T) {
	repo := newRepo(1)
	ctx := context.Background()

	_, err := repo.Create(ctx, usecase.CreateParams{Customer: "alice", CarID: 1, Days: 1, TotalCost: 45})
	require.NoError(t, err)

	_, err = repo.Create(ctx, usecase.CreateParams{Customer: "bob", CarID: 2, Days: 1, TotalCost: 50})
	assert.ErrorIs(t, err, pkgErrors.ErrCapacityExceeded)
}

func TestGet(t *testing.T) {
	repo := newRepo(10)
	ctx := context.Background()

	created, err := repo.Create(ctx, usecase.CreateParams{Customer: "alice", CarID: 1, Days: 3, TotalCost: 135})
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.Get(ctx, 99)
	assert.ErrorIs(t, err, pkgErrors.ErrRentalNotFound)
}

func TestRestoreReseedsIDSequence(t *testing.T) {
	repo := newRepo(10)
	ctx := context.Background()

	repo.Restore(ctx, []models.Rental{
		{ID: 3, Customer: "alice", CarID: 1, Days: 2, TotalCost: 90},
		{ID: 7, Customer: "bob", CarID: 2, Days: 1, TotalCost: 50},
	})

	rental, err := repo.Create(ctx, usecase.CreateParams{Customer: "carol", CarID: 3, Days: 1, TotalCost: 35})
	require.NoError(t, err)
	assert.Equal(t, 8, rental.ID)
}
