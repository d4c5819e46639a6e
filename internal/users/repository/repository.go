package repository

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-cli/internal/users/usecase"
)

type InMemoryRepository struct {
	users    []models.User
	capacity int
	logger   *slog.Logger
}

func NewInMemoryRepository(capacity int, logger *slog.Logger) *InMemoryRepository {
	return &InMemoryRepository{
		users:    make([]models.User, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

func (r *InMemoryRepository) Create(_ context.Context, params usecase.CreateParams) (models.User, error) {
	if len(r.users) >= r.capacity {
		return models.User{}, pkgErrors.ErrCapacityExceeded
	}

	for _, u := range r.users {
		if u.Username == params.Username {
			return models.User{}, pkgErrors.ErrUserAlreadyExists
		}
	}

	user := models.User{
		Username: params.Username,
		Password: params.Password,
		Role:     params.Role,
	}
	r.users = append(r.users, user)

	r.logger.Debug("user stored",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

func (r *InMemoryRepository) GetByCredentials(_ context.Context, username, password string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}

	return models.User{}, pkgErrors.ErrWrongLoginOrPassword
}

func (r *InMemoryRepository) Snapshot(_ context.Context) []models.User {
	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users
}

func (r *InMemoryRepository) Restore(_ context.Context, users []models.User) {
	r.users = r.users[:0]
	r.users = append(r.users, users...)

	r.logger.Debug("users restored", slog.Int("count", len(r.users)))
}
