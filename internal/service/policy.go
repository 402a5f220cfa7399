package service

// Policy holds the lending rules applied by the loan and reservation
// services. Values come from configuration; zero limits disable the
// corresponding check.
type Policy struct {
	// LoanDays is the default loan duration when the caller passes none.
	LoanDays int

	// ReservationDays is the default reservation lifetime.
	ReservationDays int

	// FinePerDay is the fine amount charged per whole day of late return.
	FinePerDay float64

	// MaxLoans caps a user's simultaneous active loans. Zero means no cap.
	MaxLoans int

	// MaxReservations caps a user's simultaneous active reservations.
	// Zero means no cap.
	MaxReservations int
}

// DefaultPolicy returns the standard lending rules.
func DefaultPolicy() Policy {
	return Policy{
		LoanDays:        15,
		ReservationDays: 3,
		FinePerDay:      50.0,
		MaxLoans:        3,
		MaxReservations: 2,
	}
}
