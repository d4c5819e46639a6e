package delivery_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carsRepository "github.com/SlavaShagalov/car-rental-cli/internal/cars/repository"
	carsUsecase "github.com/SlavaShagalov/car-rental-cli/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-cli/internal/delivery"
	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/storage"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/terminal/mocks"
	rentalsRepository "github.com/SlavaShagalov/car-rental-cli/internal/rentals/repository"
	rentalsUsecase "github.com/SlavaShagalov/car-rental-cli/internal/rentals/usecase"
	usersRepository "github.com/SlavaShagalov/car-rental-cli/internal/users/repository"
	usersUsecase "github.com/SlavaShagalov/car-rental-cli/internal/users/usecase"
)

type stubStorage struct {
	saves int
	last  storage.Snapshot
}

func (s *stubStorage) Save(_ context.Context, snap storage.Snapshot) error {
	s.saves++
	s.last = snap
	return nil
}

type fixture struct {
	users   *usersRepository.InMemoryRepository
	cars    *carsRepository.InMemoryRepository
	rentals *rentalsRepository.InMemoryRepository
	storage *stubStorage
	reader  *mocks.MockReader
	out     *bytes.Buffer
	shell   *delivery.Delivery
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := gomock.NewController(t)

	usersRepo := usersRepository.NewInMemoryRepository(100, logger)
	carsRepo := carsRepository.NewInMemoryRepository(100, logger)
	rentalsRepo := rentalsRepository.NewInMemoryRepository(100, logger)

	store := &stubStorage{}
	reader := mocks.NewMockReader(ctrl)
	out := &bytes.Buffer{}

	shell := delivery.New(
		usersUsecase.New(usersRepo, "admin123", logger),
		carsUsecase.New(carsRepo, logger),
		rentalsUsecase.New(rentalsRepo, carsRepo, logger),
		store,
		reader,
		out,
		logger,
	)

	return fixture{
		users:   usersRepo,
		cars:    carsRepo,
		rentals: rentalsRepo,
		storage: store,
		reader:  reader,
		out:     out,
		shell:   shell,
	}
}

// script queues line and secret answers in the order the shell will ask.
func (f fixture) script(lines []string, secrets []string) {
	for _, line := range lines {
		f.reader.EXPECT().ReadLine(gomock.Any()).Return(line, nil)
	}
	for _, secret := range secrets {
		f.reader.EXPECT().ReadSecret(gomock.Any()).Return(secret, nil)
	}
}

func TestRegisterAndExit(t *testing.T) {
	f := newFixture(t)
	f.script(
		[]string{"1", "alice", "0", "3"},
		[]string{"secret1"},
	)

	require.NoError(t, f.shell.Run(context.Background()))

	assert.Contains(t, f.out.String(), "Registered as Customer.")
	assert.Contains(t, f.out.String(), "Registration Completed!")

	require.Equal(t, 1, f.storage.saves)
	require.Len(t, f.storage.last.Users, 1)
	assert.Equal(t, "alice", f.storage.last.Users[0].Username)
	assert.Equal(t, models.RoleCustomer, f.storage.last.Users[0].Role)
}

// A comma in a stored credential would split its persisted record into four
// fields, so the shell must re-prompt instead of accepting it.
func TestRegisterRejectsCommaPassword(t *testing.T) {
	f := newFixture(t)
	f.script(
		[]string{"1", "alice", "0", "3"},
		[]string{"se,cret", "secret1"},
	)

	require.NoError(t, f.shell.Run(context.Background()))

	assert.Contains(t, f.out.String(), "Value must be non-empty and must not contain commas.")
	require.Len(t, f.storage.last.Users, 1)
	assert.Equal(t, "secret1", f.storage.last.Users[0].Password)
}

func TestRegisterAdminWithWrongKey(t *testing.T) {
	f := newFixture(t)
	f.script(
		[]string{"1", "mallory", "1", "not-the-key", "3"},
		[]string{"secret1"},
	)

	require.NoError(t, f.shell.Run(context.Background()))

	assert.Contains(t, f.out.String(), "Invalid key! Registered as Customer.")
	require.Len(t, f.storage.last.Users, 1)
	assert.Equal(t, models.RoleCustomer, f.storage.last.Users[0].Role)
}

func TestCustomerRentFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, usersUsecase.CreateParams{
		Username: "alice",
		Password: "secret1",
		Role:     models.RoleCustomer,
	})
	require.NoError(t, err)
	_, err = f.cars.Create(ctx, carsUsecase.CreateParams{
		Brand:       "Toyota",
		Model:       "Corolla",
		Year:        2020,
		PricePerDay: 45.00,
	})
	require.NoError(t, err)

	// Login, rent car 1 for 3 days, back, exit.
	f.script(
		[]string{"2", "alice", "2", "1", "3", "5", "3"},
		[]string{"secret1"},
	)

	require.NoError(t, f.shell.Run(ctx))

	assert.Contains(t, f.out.String(), "Login Successful! Welcome alice.")
	assert.Contains(t, f.out.String(), "CAR RENTAL BILL")
	assert.Contains(t, f.out.String(), "Total Cost      : 135.00")

	require.Equal(t, 1, f.storage.saves)
	require.Len(t, f.storage.last.Cars, 1)
	assert.False(t, f.storage.last.Cars[0].IsAvailable)
	require.Len(t, f.storage.last.Rentals, 1)
	assert.InDelta(t, 135.00, f.storage.last.Rentals[0].TotalCost, 1e-9)
}

func TestLoginFailure(t *testing.T) {
	f := newFixture(t)
	f.script(
		[]string{"2", "alice", "3"},
		[]string{"wrong"},
	)

	require.NoError(t, f.shell.Run(context.Background()))

	assert.Contains(t, f.out.String(), "Login Failed! Incorrect Username or Password.")
	assert.Zero(t, f.storage.saves)
}

func TestInvalidMenuInputReprompts(t *testing.T) {
	f := newFixture(t)
	f.script(
		[]string{"abc", "3"},
		nil,
	)

	require.NoError(t, f.shell.Run(context.Background()))

	assert.Contains(t, f.out.String(), "Invalid input! Enter a number.")
}

func TestEOFExitsCleanly(t *testing.T) {
	f := newFixture(t)
	f.reader.EXPECT().ReadLine(gomock.Any()).Return("", io.EOF)

	assert.NoError(t, f.shell.Run(context.Background()))
}
