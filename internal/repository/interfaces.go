// Package repository defines data access interfaces for Libris.
// These interfaces abstract database operations, allowing for different
// implementations (SQLite, in-memory for testing) while keeping the
// service layer clean.
package repository

import (
	"context"

	"github.com/openlibro/libris/internal/domain"
)

// =============================================================================
// User Repository
// =============================================================================

// UserRepository defines the interface for library user data access.
type UserRepository interface {
	// Create creates a new user and assigns its ID.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByIDNumber retrieves a user by identification number.
	GetByIDNumber(ctx context.Context, idNumber string) (*domain.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *domain.User) error

	// Delete deletes a user by ID.
	Delete(ctx context.Context, id int64) error

	// List returns all users.
	List(ctx context.Context) ([]*domain.User, error)
}

// =============================================================================
// Employee Repository
// =============================================================================

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	// Create creates a new employee and assigns its ID.
	Create(ctx context.Context, employee *domain.Employee) error

	// GetByID retrieves an employee by ID.
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)

	// GetByLoginName retrieves an employee by system login name.
	GetByLoginName(ctx context.Context, loginName string) (*domain.Employee, error)

	// GetByEmail retrieves an employee by email.
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// Update updates an existing employee.
	Update(ctx context.Context, employee *domain.Employee) error

	// Delete deletes an employee by ID.
	Delete(ctx context.Context, id int64) error

	// ListActive returns all employees that may log in.
	ListActive(ctx context.Context) ([]*domain.Employee, error)
}

// =============================================================================
// Item Repository
// =============================================================================

// ItemRepository defines the interface for catalog item data access.
type ItemRepository interface {
	// Create creates a new item and assigns its ID.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by ID.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// Update updates an existing item.
	Update(ctx context.Context, item *domain.Item) error

	// Delete deletes an item by ID.
	Delete(ctx context.Context, id int64) error

	// List returns the whole catalog.
	List(ctx context.Context) ([]*domain.Item, error)

	// FindByTitle returns items whose title contains the given substring.
	FindByTitle(ctx context.Context, title string) ([]*domain.Item, error)

	// FindByAuthor returns items whose author contains the given substring.
	FindByAuthor(ctx context.Context, author string) ([]*domain.Item, error)

	// ListByCategory returns all items in a category.
	ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error)

	// ListByStatus returns all items in a lifecycle state.
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]*domain.Item, error)
}

// =============================================================================
// Loan Repository
// =============================================================================

// LoanRepository defines the interface for loan data access.
type LoanRepository interface {
	// Create creates a new loan and assigns its ID.
	Create(ctx context.Context, loan *domain.Loan) error

	// GetByID retrieves a loan by ID.
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)

	// Update updates an existing loan.
	Update(ctx context.Context, loan *domain.Loan) error

	// ListActive returns all loans that have not been returned.
	ListActive(ctx context.Context) ([]*domain.Loan, error)

	// ListByUser returns all loans ever issued to a user.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Loan, error)

	// ListActiveByUser returns a user's outstanding loans.
	ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Loan, error)

	// ListByItem returns all loans ever issued for an item.
	ListByItem(ctx context.Context, itemID int64) ([]*domain.Loan, error)
}

// =============================================================================
// Reservation Repository
// =============================================================================

// ReservationRepository defines the interface for reservation data access.
type ReservationRepository interface {
	// Create creates a new reservation and assigns its ID.
	Create(ctx context.Context, reservation *domain.Reservation) error

	// GetByID retrieves a reservation by ID.
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)

	// Update updates an existing reservation.
	Update(ctx context.Context, reservation *domain.Reservation) error

	// ListActive returns all uncancelled reservations.
	ListActive(ctx context.Context) ([]*domain.Reservation, error)

	// ListByUser returns all reservations ever placed by a user.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)

	// ListActiveByUser returns a user's uncancelled reservations.
	ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)
}

// =============================================================================
// Fine Repository
// =============================================================================

// FineRepository defines the interface for fine data access.
type FineRepository interface {
	// Create creates a new fine and assigns its ID.
	Create(ctx context.Context, fine *domain.Fine) error

	// GetByID retrieves a fine by ID.
	GetByID(ctx context.Context, id int64) (*domain.Fine, error)

	// Update updates an existing fine.
	Update(ctx context.Context, fine *domain.Fine) error

	// ListUnpaid returns all unsettled fines.
	ListUnpaid(ctx context.Context) ([]*domain.Fine, error)

	// ListByUser returns all fines ever issued to a user.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Fine, error)

	// ListByLoan returns the fines produced by a loan.
	ListByLoan(ctx context.Context, loanID int64) ([]*domain.Fine, error)
}

// =============================================================================
// Unit of Work
// =============================================================================

// Set bundles one repository per entity, all bound to the same backing
// store or transaction.
type Set struct {
	Users        UserRepository
	Employees    EmployeeRepository
	Items        ItemRepository
	Loans        LoanRepository
	Reservations ReservationRepository
	Fines        FineRepository
}

// UnitOfWork runs a function against a Set whose writes either all commit
// or all roll back. Multi-write service operations (issuing a loan, returning
// an item) run through this so a failure between steps cannot leave the
// catalog inconsistent.
type UnitOfWork interface {
	// Do executes fn within a single transaction.
	Do(ctx context.Context, fn func(repos Set) error) error
}
