// Package domain contains the core business entities for Libris.
// These are pure Go structs with no external dependencies, representing
// the fundamental concepts of the library management system.
package domain

import (
	"fmt"
	"time"
)

// UserType classifies a registered library user.
type UserType string

// Valid user types.
const (
	UserTypeStudent    UserType = "student"
	UserTypeInstructor UserType = "instructor"
	UserTypeLibrarian  UserType = "librarian"
)

// ParseUserType converts a stored string into a UserType.
// Unknown values are rejected so bad rows fail fast at the repository boundary.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeStudent, UserTypeInstructor, UserTypeLibrarian:
		return UserType(s), nil
	}
	return "", fmt.Errorf("%w: unknown user type %q", ErrInvalidEnumValue, s)
}

// String returns the stored string form of the user type.
func (t UserType) String() string {
	return string(t)
}

// User represents a registered library user (a borrower, not an operator).
// Email and IDNumber are unique across all users.
type User struct {
	// ID is the unique identifier for the user (auto-generated).
	ID int64

	// FirstName is the user's given name.
	FirstName string

	// LastName is the user's family name.
	LastName string

	// Email is the unique email address for the user.
	Email string

	// Type classifies the user (student, instructor, librarian).
	Type UserType

	// IDNumber is the unique identification number presented at registration.
	IDNumber string

	// Phone is an optional contact number.
	Phone string

	// Active indicates whether the user may borrow or reserve items.
	Active bool

	// RegisteredAt is the timestamp when the user was registered.
	RegisteredAt time.Time
}

// NewUser creates a new active User registered now.
func NewUser(firstName, lastName, email string, userType UserType, idNumber string) *User {
	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Type:         userType,
		IDNumber:     idNumber,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
