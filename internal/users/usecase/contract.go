package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
)

type SignUpParams struct {
	Username   string
	Password   string
	AsAdmin    bool
	AdminProof string
}

type SignInParams struct {
	Username string
	Password string
}

type CreateParams struct {
	Username string
	Password string
	Role     models.Role
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByCredentials(ctx context.Context, username, password string) (models.User, error)
	Snapshot(ctx context.Context) []models.User
	Restore(ctx context.Context, users []models.User)
}
