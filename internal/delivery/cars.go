package delivery

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	carsUC "github.com/SlavaShagalov/car-rental-cli/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
)

func (d *Delivery) addCar(ctx context.Context) error {
	brand, err := d.readField("Enter Car Brand: ")
	if err != nil {
		return err
	}
	model, err := d.readField("Enter Car Model: ")
	if err != nil {
		return err
	}
	year, err := d.readInt("Enter Year: ")
	if err != nil {
		return err
	}
	price, err := d.readFloat("Enter Price per Day: ")
	if err != nil {
		return err
	}

	_, err = d.cars.AddCar(ctx, carsUC.CreateParams{
		Brand:       brand,
		Model:       model,
		Year:        year,
		PricePerDay: price,
	})
	switch {
	case errors.Is(err, pkgErrors.ErrCarAlreadyExists):
		fmt.Fprintln(d.out, "This car is already added!")
		return nil
	case errors.Is(err, pkgErrors.ErrCapacityExceeded):
		fmt.Fprintln(d.out, "Car list full!")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(d.out, "Car Added Successfully!")
	d.save(ctx)

	return nil
}

func (d *Delivery) deleteCar(ctx context.Context) error {
	id, err := d.readInt("Enter Car ID to Delete: ")
	if err != nil {
		return err
	}

	err = d.cars.DeleteCar(ctx, id)
	if errors.Is(err, pkgErrors.ErrCarNotFound) {
		fmt.Fprintln(d.out, "Car not found!")
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintln(d.out, "Car Deleted!")
	d.save(ctx)

	return nil
}

// listCars drives the list & sort submenu.
func (d *Delivery) listCars(ctx context.Context) error {
	if len(d.cars.ListCars(ctx)) == 0 {
		fmt.Fprintln(d.out, "No cars available!")
		return nil
	}

	for {
		fmt.Fprintln(d.out, "\n----------------------------------------------------")
		fmt.Fprintln(d.out, "List & Sort Cars")
		fmt.Fprintln(d.out, "----------------------------------------------------")
		fmt.Fprintln(d.out, "1. Sort by Car ID")
		fmt.Fprintln(d.out, "2. Sort by Brand")
		fmt.Fprintln(d.out, "3. Sort by Model")
		fmt.Fprintln(d.out, "4. Sort by Year")
		fmt.Fprintln(d.out, "5. Sort by Cost/Day")
		fmt.Fprintln(d.out, "6. Sort by Status")
		fmt.Fprintln(d.out, "7. Exit to Menu")

		choice, err := d.readInt("\nEnter your choice: ")
		if err != nil {
			return err
		}

		var key carsUC.SortKey
		switch choice {
		case 1:
			key = carsUC.SortKeyID
		case 2:
			key = carsUC.SortKeyBrand
		case 3:
			key = carsUC.SortKeyModel
		case 4:
			key = carsUC.SortKeyYear
		case 5:
			key = carsUC.SortKeyPrice
		case 6:
			key = carsUC.SortKeyAvailability
		case 7:
			return nil
		default:
			fmt.Fprintln(d.out, "Invalid choice! Try again.")
			continue
		}

		if err = d.cars.SortCars(ctx, key); err != nil {
			return err
		}

		d.printCars(d.cars.ListCars(ctx))
	}
}

func (d *Delivery) printCars(cars []models.Car) {
	line := "---------------------------------------------------------------------------------"

	fmt.Fprintln(d.out, line)
	fmt.Fprintf(d.out, "%-8s %-15s %-15s %-10s %10s %15s\n",
		"Car ID", "Brand", "Model", "Year", "Cost/Day", "Status")
	fmt.Fprintln(d.out, line)
	for _, c := range cars {
		status := "Available"
		if !c.IsAvailable {
			status = "Rented"
		}
		fmt.Fprintf(d.out, "%-8d %-15s %-15s %-10d %10.2f %15s\n",
			c.ID, c.Brand, c.Model, c.Year, c.PricePerDay, status)
	}
	fmt.Fprintln(d.out, line)
}
