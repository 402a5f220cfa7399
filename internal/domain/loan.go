package domain

import "time"

// Loan records an item being lent to a user for a bounded period.
// While Active is true, the referenced item's status must be loaned;
// at most one active loan exists per item at a time.
type Loan struct {
	// ID is the unique identifier for the loan (auto-generated).
	ID int64

	// UserID references the borrowing user.
	UserID int64

	// ItemID references the loaned item.
	ItemID int64

	// EmployeeID references the employee who processed the loan.
	EmployeeID int64

	// LoanedAt is the timestamp when the loan was issued.
	LoanedAt time.Time

	// DueAt is the expected return timestamp.
	DueAt time.Time

	// ReturnedAt is the actual return timestamp, nil until returned.
	ReturnedAt *time.Time

	// Notes holds optional remarks recorded at return time.
	Notes string

	// Active is true until the item is returned. A loan becomes inactive
	// exactly once and is never deleted.
	Active bool
}

// NewLoan creates an active Loan issued now and due after the given duration.
func NewLoan(userID, itemID, employeeID int64, duration time.Duration) *Loan {
	now := time.Now().UTC()
	return &Loan{
		UserID:     userID,
		ItemID:     itemID,
		EmployeeID: employeeID,
		LoanedAt:   now,
		DueAt:      now.Add(duration),
		Active:     true,
	}
}

// DaysLate returns the number of whole days the return happened after the
// due timestamp. Partial days floor to zero, so a return 23 hours past the
// deadline counts as zero days late.
func (l *Loan) DaysLate() int {
	if l.ReturnedAt == nil || !l.ReturnedAt.After(l.DueAt) {
		return 0
	}
	return int(l.ReturnedAt.Sub(l.DueAt).Hours() / 24)
}
