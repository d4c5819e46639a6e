package usecase

// RentReceipt is a read-only summary of a freshly created rental. It is
// rendered by the shell and never persisted.
type RentReceipt struct {
	RentalID    int
	Customer    string
	CarID       int
	Brand       string
	Model       string
	Days        int
	PricePerDay float64
	TotalCost   float64
}

// ReturnReceipt reports the frozen rental fields. Car details are filled
// only when the referenced car still exists.
type ReturnReceipt struct {
	RentalID    int
	Customer    string
	CarID       int
	Brand       string
	Model       string
	Days        int
	PricePerDay float64
	TotalCost   float64
	CarKnown    bool
}
