package delivery

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
	rentalsUC "github.com/SlavaShagalov/car-rental-cli/internal/rentals/usecase"
)

func (d *Delivery) rentCar(ctx context.Context, username string) error {
	carID, err := d.readInt("Enter Car ID to Rent: ")
	if err != nil {
		return err
	}
	days, err := d.readInt("Enter Number of Days: ")
	if err != nil {
		return err
	}

	receipt, err := d.rentals.Rent(ctx, rentalsUC.RentParams{
		Customer: username,
		CarID:    carID,
		Days:     days,
	})
	switch {
	case errors.Is(err, pkgErrors.ErrCarNotFound):
		fmt.Fprintln(d.out, "Car not available!")
		return nil
	case errors.Is(err, pkgErrors.ErrInvalidDuration):
		fmt.Fprintln(d.out, "Number of days must be positive!")
		return nil
	case errors.Is(err, pkgErrors.ErrCapacityExceeded):
		fmt.Fprintln(d.out, "Rental list full!")
		return nil
	case err != nil:
		return err
	}

	d.printBill(receipt)
	d.save(ctx)

	return nil
}

func (d *Delivery) returnCar(ctx context.Context) error {
	rentalID, err := d.readInt("Enter Rental ID to Return: ")
	if err != nil {
		return err
	}

	receipt, err := d.rentals.Return(ctx, rentalID)
	if errors.Is(err, pkgErrors.ErrRentalNotFound) {
		fmt.Fprintln(d.out, "Rental not found!")
		return nil
	} else if err != nil {
		return err
	}

	d.printReturnReceipt(receipt)
	fmt.Fprintln(d.out, "Car Returned Successfully!")
	d.save(ctx)

	return nil
}

func (d *Delivery) listRentals(ctx context.Context) {
	rentals := d.rentals.ListRentals(ctx)
	if len(rentals) == 0 {
		fmt.Fprintln(d.out, "No rentals yet!")
		return
	}

	line := "---------------------------------------------------------------------------------"

	fmt.Fprintln(d.out, "\n"+line)
	fmt.Fprintln(d.out, "Rental List")
	fmt.Fprintln(d.out, line)
	fmt.Fprintf(d.out, "%-10s %-30s %-10s %-10s %20s\n",
		"Rental ID", "User", "CarID", "Days", "Total Cost")
	fmt.Fprintln(d.out, line)
	for _, r := range rentals {
		fmt.Fprintf(d.out, "%-10d %-30s %-10d %-10d %20.2f\n",
			r.ID, r.Customer, r.CarID, r.Days, r.TotalCost)
	}
	fmt.Fprintln(d.out, line)
}

func (d *Delivery) printBill(receipt rentalsUC.RentReceipt) {
	line := "========================================"

	fmt.Fprintln(d.out, "\n"+line)
	fmt.Fprintln(d.out, "            CAR RENTAL BILL             ")
	fmt.Fprintln(d.out, line)
	fmt.Fprintf(d.out, "Rental ID       : %d\n", receipt.RentalID)
	fmt.Fprintf(d.out, "Customer Name   : %s\n", receipt.Customer)
	fmt.Fprintf(d.out, "Car ID          : %d\n", receipt.CarID)
	fmt.Fprintf(d.out, "Car Brand       : %s\n", receipt.Brand)
	fmt.Fprintf(d.out, "Car Model       : %s\n", receipt.Model)
	fmt.Fprintf(d.out, "Rental Days     : %d\n", receipt.Days)
	fmt.Fprintf(d.out, "Price per Day   : %.2f\n", receipt.PricePerDay)
	fmt.Fprintln(d.out, "----------------------------------------")
	fmt.Fprintf(d.out, "Total Cost      : %.2f\n", receipt.TotalCost)
	fmt.Fprintln(d.out, "Status          : Rented")
	fmt.Fprintln(d.out, line+"\n")
}

func (d *Delivery) printReturnReceipt(receipt rentalsUC.ReturnReceipt) {
	line := "========================================"

	fmt.Fprintln(d.out, "\n"+line)
	fmt.Fprintln(d.out, "         CAR RETURN RECEIPT             ")
	fmt.Fprintln(d.out, line)
	fmt.Fprintf(d.out, "Rental ID       : %d\n", receipt.RentalID)
	fmt.Fprintf(d.out, "Customer Name   : %s\n", receipt.Customer)
	fmt.Fprintf(d.out, "Car ID          : %d\n", receipt.CarID)
	if receipt.CarKnown {
		fmt.Fprintf(d.out, "Car Brand       : %s\n", receipt.Brand)
		fmt.Fprintf(d.out, "Car Model       : %s\n", receipt.Model)
		fmt.Fprintf(d.out, "Price per Day   : %.2f\n", receipt.PricePerDay)
	}
	fmt.Fprintf(d.out, "Rental Days     : %d\n", receipt.Days)
	fmt.Fprintln(d.out, "----------------------------------------")
	fmt.Fprintf(d.out, "Total Cost      : %.2f\n", receipt.TotalCost)
	fmt.Fprintln(d.out, "Status          : Returned")
	fmt.Fprintln(d.out, line+"\n")
}
