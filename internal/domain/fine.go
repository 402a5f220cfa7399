package domain

import "time"

// Fine is a monetary penalty generated automatically for a late return.
// A fine is created unpaid, becomes paid exactly once and is never deleted.
type Fine struct {
	// ID is the unique identifier for the fine (auto-generated).
	ID int64

	// UserID references the fined user.
	UserID int64

	// LoanID references the late loan that produced the fine.
	LoanID int64

	// EmployeeID references the employee who processed the original loan.
	EmployeeID int64

	// Amount is the non-negative fine amount (days late times per-day rate).
	Amount float64

	// Description explains the fine, e.g. "Late return: 3 days late".
	Description string

	// IssuedAt is the timestamp when the fine was created.
	IssuedAt time.Time

	// Paid is false until the fine is settled.
	Paid bool
}

// NewFine creates an unpaid Fine issued now.
func NewFine(userID, loanID, employeeID int64, amount float64, description string) *Fine {
	return &Fine{
		UserID:      userID,
		LoanID:      loanID,
		EmployeeID:  employeeID,
		Amount:      amount,
		Description: description,
		IssuedAt:    time.Now().UTC(),
	}
}
