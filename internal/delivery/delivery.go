package delivery

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/storage"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/terminal"
	usersUC "github.com/SlavaShagalov/car-rental-cli/internal/users/usecase"
)

// Delivery is the interactive shell: a thin menu dispatcher over the
// usecases. It flushes state to storage after every mutating operation.
type Delivery struct {
	users   UsersUseCase
	cars    CarsUseCase
	rentals RentalsUseCase
	storage Storage
	reader  terminal.Reader
	out     io.Writer
	logger  *slog.Logger
}

func New(
	users UsersUseCase,
	cars CarsUseCase,
	rentals RentalsUseCase,
	store Storage,
	reader terminal.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Delivery {
	return &Delivery{
		users:   users,
		cars:    cars,
		rentals: rentals,
		storage: store,
		reader:  reader,
		out:     out,
		logger:  logger,
	}
}

// Run drives the top-level menu until the user exits or input ends.
func (d *Delivery) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(d.out, "\n===== Car Rental System =====")
		fmt.Fprintln(d.out, "1. Register")
		fmt.Fprintln(d.out, "2. Login")
		fmt.Fprintln(d.out, "3. Exit")

		choice, err := d.readInt("Select an option: ")
		if err != nil {
			return exitErr(err)
		}

		switch choice {
		case 1:
			if err = d.register(ctx); err != nil {
				return exitErr(err)
			}
		case 2:
			if err = d.login(ctx); err != nil {
				return exitErr(err)
			}
		case 3:
			fmt.Fprintln(d.out, "\nExiting...")
			return nil
		default:
			fmt.Fprintln(d.out, "\nInvalid choice. Try again.")
		}
	}
}

func (d *Delivery) register(ctx context.Context) error {
	username, err := d.readField("\nEnter username: ")
	if err != nil {
		return err
	}
	password, err := d.readSecret("Enter password: ")
	if err != nil {
		return err
	}

	asAdmin, err := d.readInt("Do you want to register as Admin? (1=Yes, 0=No): ")
	if err != nil {
		return err
	}

	params := usersUC.SignUpParams{
		Username: username,
		Password: password,
		AsAdmin:  asAdmin == 1,
	}
	if params.AsAdmin {
		params.AdminProof, err = d.reader.ReadLine("Enter Admin Authentication Key: ")
		if err != nil {
			return err
		}
	}

	user, err := d.users.SignUp(ctx, params)
	switch {
	case errors.Is(err, pkgErrors.ErrUserAlreadyExists):
		fmt.Fprintln(d.out, "Username already exists! Try another.")
		return nil
	case errors.Is(err, pkgErrors.ErrCapacityExceeded):
		fmt.Fprintln(d.out, "Maximum number of users reached.")
		return nil
	case err != nil:
		return err
	}

	switch {
	case user.Role == models.RoleAdmin:
		fmt.Fprintln(d.out, "\nAdmin registration successful!")
	case params.AsAdmin:
		fmt.Fprintln(d.out, "\nInvalid key! Registered as Customer.")
	default:
		fmt.Fprintln(d.out, "\nRegistered as Customer.")
	}
	fmt.Fprintln(d.out, "\nRegistration Completed!")

	d.save(ctx)

	return nil
}

func (d *Delivery) login(ctx context.Context) error {
	username, err := d.readField("\nEnter username: ")
	if err != nil {
		return err
	}
	password, err := d.readSecret("Enter password: ")
	if err != nil {
		return err
	}

	user, err := d.users.SignIn(ctx, usersUC.SignInParams{
		Username: username,
		Password: password,
	})
	if errors.Is(err, pkgErrors.ErrWrongLoginOrPassword) {
		fmt.Fprintln(d.out, "\nLogin Failed! Incorrect Username or Password.")
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "\nLogin Successful! Welcome %s.\n", user.Username)

	if user.Role == models.RoleAdmin {
		return d.adminMenu(ctx)
	}
	return d.customerMenu(ctx, user.Username)
}

func (d *Delivery) adminMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(d.out, "\nAdmin Menu")
		fmt.Fprintln(d.out, "1. Add Car")
		fmt.Fprintln(d.out, "2. List Cars")
		fmt.Fprintln(d.out, "3. Delete Car")
		fmt.Fprintln(d.out, "4. Back to Main Menu")

		choice, err := d.readInt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err = d.addCar(ctx); err != nil {
				return err
			}
		case 2:
			if err = d.listCars(ctx); err != nil {
				return err
			}
		case 3:
			if err = d.deleteCar(ctx); err != nil {
				return err
			}
		case 4:
			return nil
		default:
			fmt.Fprintln(d.out, "Invalid choice!")
		}
	}
}

func (d *Delivery) customerMenu(ctx context.Context, username string) error {
	for {
		fmt.Fprintln(d.out, "\nCustomer Menu")
		fmt.Fprintln(d.out, "1. List Cars")
		fmt.Fprintln(d.out, "2. Rent Car")
		fmt.Fprintln(d.out, "3. Return Car")
		fmt.Fprintln(d.out, "4. List Rentals")
		fmt.Fprintln(d.out, "5. Back to Main Menu")

		choice, err := d.readInt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err = d.listCars(ctx); err != nil {
				return err
			}
		case 2:
			if err = d.rentCar(ctx, username); err != nil {
				return err
			}
		case 3:
			if err = d.returnCar(ctx); err != nil {
				return err
			}
		case 4:
			d.listRentals(ctx)
		case 5:
			return nil
		default:
			fmt.Fprintln(d.out, "Invalid choice!")
		}
	}
}

func (d *Delivery) save(ctx context.Context) {
	snap := storage.Snapshot{
		Users:   d.users.Snapshot(ctx),
		Cars:    d.cars.Snapshot(ctx),
		Rentals: d.rentals.Snapshot(ctx),
	}

	if err := d.storage.Save(ctx, snap); err != nil {
		d.logger.Error(err.Error())
		fmt.Fprintln(d.out, "Warning: failed to save data.")
	}
}

func exitErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
