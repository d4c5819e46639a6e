package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-cli/internal/users/repository"
	"github.com/SlavaShagalov/car-rental-cli/internal/users/usecase"
)

const adminKey = "admin123"

type UsersSuite struct {
	suite.Suite
}

func newUseCase(capacity int) *usecase.UseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewInMemoryRepository(capacity, logger)
	return usecase.New(repo, adminKey, logger)
}

func (s *UsersSuite) TestSignUpCustomer(t provider.T) {
	t.Title("sign up without admin request registers a customer")

	uc := newUseCase(10)

	user, err := uc.SignUp(context.Background(), usecase.SignUpParams{
		Username: "alice",
		Password: "secret1",
	})
	t.Require().NoError(err)
	t.Assert().Equal("alice", user.Username)
	t.Assert().Equal(models.RoleCustomer, user.Role)
}

func (s *UsersSuite) TestSignUpAdmin(t provider.T) {
	t.Title("sign up with the correct admin key grants admin")

	uc := newUseCase(10)

	user, err := uc.SignUp(context.Background(), usecase.SignUpParams{
		Username:   "boss",
		Password:   "secret1",
		AsAdmin:    true,
		AdminProof: adminKey,
	})
	t.Require().NoError(err)
	t.Assert().Equal(models.RoleAdmin, user.Role)
}

func (s *UsersSuite) TestSignUpAdminDowngrade(t provider.T) {
	t.Title("sign up with a wrong admin key silently registers a customer")

	uc := newUseCase(10)

	user, err := uc.SignUp(context.Background(), usecase.SignUpParams{
		Username:   "mallory",
		Password:   "secret1",
		AsAdmin:    true,
		AdminProof: "wrong-key",
	})
	t.Require().NoError(err)
	t.Assert().Equal(models.RoleCustomer, user.Role)
}

func (s *UsersSuite) TestSignUpDuplicate(t provider.T) {
	t.Title("duplicate username is rejected and the user count stays at one")

	uc := newUseCase(10)
	ctx := context.Background()

	_, err := uc.SignUp(ctx, usecase.SignUpParams{Username: "alice", Password: "secret1"})
	t.Require().NoError(err)

	_, err = uc.SignUp(ctx, usecase.SignUpParams{Username: "alice", Password: "secret2"})
	t.Require().ErrorIs(err, pkgErrors.ErrUserAlreadyExists)
	t.Assert().Len(uc.Snapshot(ctx), 1)
}

func (s *UsersSuite) TestSignUpCapacity(t provider.T) {
	t.Title("a full user collection rejects further registrations")

	uc := newUseCase(1)
	ctx := context.Background()

	_, err := uc.SignUp(ctx, usecase.SignUpParams{Username: "alice", Password: "secret1"})
	t.Require().NoError(err)

	_, err = uc.SignUp(ctx, usecase.SignUpParams{Username: "bob", Password: "secret2"})
	t.Require().ErrorIs(err, pkgErrors.ErrCapacityExceeded)
}

func (s *UsersSuite) TestSignIn(t provider.T) {
	t.Title("sign in matches username and password exactly")

	uc := newUseCase(10)
	ctx := context.Background()

	_, err := uc.SignUp(ctx, usecase.SignUpParams{Username: "alice", Password: "secret1"})
	t.Require().NoError(err)

	user, err := uc.SignIn(ctx, usecase.SignInParams{Username: "alice", Password: "secret1"})
	t.Require().NoError(err)
	t.Assert().Equal("alice", user.Username)

	_, err = uc.SignIn(ctx, usecase.SignInParams{Username: "alice", Password: "Secret1"})
	t.Require().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)

	_, err = uc.SignIn(ctx, usecase.SignInParams{Username: "nobody", Password: "secret1"})
	t.Require().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)
}

func TestUsersSuite(t *testing.T) {
	suite.RunSuite(t, new(UsersSuite))
}
