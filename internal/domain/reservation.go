package domain

import "time"

// Reservation is a hold placed on a currently-unavailable item.
// Conversion of a reservation into a loan is an unimplemented extension point.
type Reservation struct {
	// ID is the unique identifier for the reservation (auto-generated).
	ID int64

	// UserID references the reserving user.
	UserID int64

	// ItemID references the reserved item.
	ItemID int64

	// EmployeeID references the employee who processed the reservation.
	EmployeeID int64

	// ReservedAt is the timestamp when the reservation was placed.
	ReservedAt time.Time

	// ExpiresAt is the timestamp after which the hold lapses.
	ExpiresAt time.Time

	// Active is true until the reservation is cancelled.
	Active bool
}

// NewReservation creates an active Reservation placed now that expires
// after the given duration.
func NewReservation(userID, itemID, employeeID int64, duration time.Duration) *Reservation {
	now := time.Now().UTC()
	return &Reservation{
		UserID:     userID,
		ItemID:     itemID,
		EmployeeID: employeeID,
		ReservedAt: now,
		ExpiresAt:  now.Add(duration),
		Active:     true,
	}
}
