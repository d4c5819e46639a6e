package usecase

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
)

type UseCase struct {
	repo     Repository
	adminKey string
	logger   *slog.Logger
}

func New(repo Repository, adminKey string, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:     repo,
		adminKey: adminKey,
		logger:   logger,
	}
}

// SignUp registers a new user. An admin registration with a wrong proof is
// silently downgraded to customer; the caller learns the granted role from
// the returned user.
func (u *UseCase) SignUp(ctx context.Context, params SignUpParams) (models.User, error) {
	role := models.RoleCustomer
	if params.AsAdmin {
		if params.AdminProof == u.adminKey {
			role = models.RoleAdmin
		} else {
			u.logger.Warn("invalid admin key, registering as customer",
				slog.String("username", params.Username))
		}
	}

	user, err := u.repo.Create(ctx, CreateParams{
		Username: params.Username,
		Password: params.Password,
		Role:     role,
	})
	if err != nil {
		return models.User{}, err
	}

	u.logger.Debug("user registered",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

func (u *UseCase) SignIn(ctx context.Context, params SignInParams) (models.User, error) {
	user, err := u.repo.GetByCredentials(ctx, params.Username, params.Password)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (u *UseCase) Snapshot(ctx context.Context) []models.User {
	return u.repo.Snapshot(ctx)
}
