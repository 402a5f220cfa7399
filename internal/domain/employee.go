package domain

import "time"

// Employee represents a staff member who operates the system.
// LoginName is unique; the password is only ever stored as a bcrypt hash.
type Employee struct {
	// ID is the unique identifier for the employee (auto-generated).
	ID int64

	// FirstName is the employee's given name.
	FirstName string

	// LastName is the employee's family name.
	LastName string

	// Email is the unique email address for the employee.
	Email string

	// LoginName is the unique system login name.
	LoginName string

	// PasswordHash is the bcrypt hash of the employee's password.
	// This should never be exposed outside the auth service.
	PasswordHash string

	// Role is the employee's job title.
	Role string

	// Shift is the employee's working shift (morning, afternoon, night).
	Shift string

	// Active indicates whether the employee may log in.
	Active bool

	// RegisteredAt is the timestamp when the employee was created.
	RegisteredAt time.Time
}

// DefaultEmployeeRole is assigned when no role is given.
const DefaultEmployeeRole = "Librarian"

// NewEmployee creates a new active Employee registered now.
func NewEmployee(firstName, lastName, email, loginName, passwordHash string) *Employee {
	return &Employee{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		LoginName:    loginName,
		PasswordHash: passwordHash,
		Role:         DefaultEmployeeRole,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}
}

// CanAuthenticate returns true if the employee is allowed to log in.
func (e *Employee) CanAuthenticate() bool {
	return e.Active
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Session is the single process-wide authenticated context of an employee.
type Session struct {
	// Employee is the authenticated staff member.
	Employee *Employee

	// Token identifies this session instance.
	Token string

	// LoggedInAt is the timestamp of the successful login.
	LoggedInAt time.Time
}
