// Package storage persists the three record collections as line-oriented
// comma-separated text files. The layout is count-prefixed: the first line
// holds the record count, each following line one record. Field values must
// not contain commas, the format has no escaping.
package storage

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-cli/internal/models"
	"github.com/SlavaShagalov/car-rental-cli/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/car-rental-cli/internal/pkg/errors"
)

type Snapshot struct {
	Users   []models.User
	Cars    []models.Car
	Rentals []models.Rental
}

type FileStorage struct {
	cfg    app.StorageConfig
	logger *slog.Logger
}

func NewFileStorage(cfg app.StorageConfig, logger *slog.Logger) *FileStorage {
	return &FileStorage{
		cfg:    cfg,
		logger: logger,
	}
}

// Save rewrites all three files. A failure on one file does not stop the
// others; errors are aggregated.
func (s *FileStorage) Save(_ context.Context, snap Snapshot) error {
	var result *multierror.Error

	err := writeFile(s.cfg.UsersFile, len(snap.Users), func(w *bufio.Writer) {
		for _, u := range snap.Users {
			fmt.Fprintf(w, "%s,%s,%d\n", u.Username, u.Password, roleFlag(u.Role))
		}
	})
	if err != nil {
		result = multierror.Append(result, errors.Wrap(err, "save users"))
	}

	err = writeFile(s.cfg.CarsFile, len(snap.Cars), func(w *bufio.Writer) {
		for _, c := range snap.Cars {
			fmt.Fprintf(w, "%d,%s,%s,%d,%.2f,%d\n",
				c.ID, c.Brand, c.Model, c.Year, c.PricePerDay, boolFlag(c.IsAvailable))
		}
	})
	if err != nil {
		result = multierror.Append(result, errors.Wrap(err, "save cars"))
	}

	err = writeFile(s.cfg.RentalsFile, len(snap.Rentals), func(w *bufio.Writer) {
		for _, r := range snap.Rentals {
			fmt.Fprintf(w, "%d,%s,%d,%d,%.2f\n",
				r.ID, r.Customer, r.CarID, r.Days, r.TotalCost)
		}
	})
	if err != nil {
		result = multierror.Append(result, errors.Wrap(err, "save rentals"))
	}

	return result.ErrorOrNil()
}

// Load reads all three files. A missing or unreadable file yields an empty
// collection. A malformed record stops the rest of that file only.
func (s *FileStorage) Load(_ context.Context) Snapshot {
	var snap Snapshot

	s.readFile(s.cfg.UsersFile, "users", 3, func(fields []string) error {
		user, err := parseUser(fields)
		if err != nil {
			return err
		}
		snap.Users = append(snap.Users, user)
		return nil
	})

	s.readFile(s.cfg.CarsFile, "cars", 6, func(fields []string) error {
		car, err := parseCar(fields)
		if err != nil {
			return err
		}
		snap.Cars = append(snap.Cars, car)
		return nil
	})

	s.readFile(s.cfg.RentalsFile, "rentals", 5, func(fields []string) error {
		rental, err := parseRental(fields)
		if err != nil {
			return err
		}
		snap.Rentals = append(snap.Rentals, rental)
		return nil
	})

	return snap
}

func writeFile(path string, count int, writeRecords func(w *bufio.Writer)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", count)
	writeRecords(w)

	return w.Flush()
}

func (s *FileStorage) readFile(path, label string, fieldCount int, apply func(fields []string) error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Debug("storage file not available, collection starts empty",
			slog.String("collection", label),
			slog.String("file", path),
		)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return
	}

	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		s.logger.Warn("malformed record count, collection starts empty",
			slog.String("collection", label),
			slog.String("file", path),
		)
		return
	}

	for i := 0; i < count && scanner.Scan(); i++ {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) != fieldCount {
			s.logger.Warn("malformed record, skipping rest of file",
				slog.String("collection", label),
				slog.Int("line", i+2),
			)
			return
		}
		if err = apply(fields); err != nil {
			s.logger.Warn("malformed record, skipping rest of file",
				slog.String("collection", label),
				slog.Int("line", i+2),
				slog.String("error", err.Error()),
			)
			return
		}
	}
}

func parseUser(fields []string) (models.User, error) {
	flag, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.User{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "role flag")
	}

	role := models.RoleCustomer
	if flag == 1 {
		role = models.RoleAdmin
	}

	return models.User{
		Username: fields[0],
		Password: fields[1],
		Role:     role,
	}, nil
}

func parseCar(fields []string) (models.Car, error) {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Car{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "car id")
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Car{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "car year")
	}
	price, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return models.Car{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "car price")
	}
	available, err := strconv.Atoi(fields[5])
	if err != nil {
		return models.Car{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "car availability")
	}

	return models.Car{
		ID:          id,
		Brand:       fields[1],
		Model:       fields[2],
		Year:        year,
		PricePerDay: price,
		IsAvailable: available == 1,
	}, nil
}

func parseRental(fields []string) (models.Rental, error) {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Rental{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "rental id")
	}
	carID, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.Rental{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "rental car id")
	}
	days, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Rental{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "rental days")
	}
	totalCost, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return models.Rental{}, errors.Wrap(pkgErrors.ErrMalformedRecord, "rental total cost")
	}

	return models.Rental{
		ID:        id,
		Customer:  fields[1],
		CarID:     carID,
		Days:      days,
		TotalCost: totalCost,
	}, nil
}

func roleFlag(role models.Role) int {
	if role == models.RoleAdmin {
		return 1
	}
	return 0
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}
