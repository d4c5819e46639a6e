package models

type Car struct {
	ID          int
	Brand       string
	Model       string
	Year        int
	PricePerDay float64
	IsAvailable bool
}
