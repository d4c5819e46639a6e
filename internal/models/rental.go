package models

// Rental is immutable after creation. Returning a car only flips the
// car's availability, the rental record keeps its frozen fields.
type Rental struct {
	ID        int
	Customer  string
	CarID     int
	Days      int
	TotalCost float64
}
