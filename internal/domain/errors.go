package domain

import "errors"

// Domain errors - these represent business rule violations.
// They are distinct from infrastructure errors (database, I/O, etc.).

var (
	// ===========================================
	// Not-found errors
	// ===========================================

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmployeeNotFound indicates the requested employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrItemNotFound indicates the requested catalog item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrLoanNotFound indicates the requested loan does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrReservationNotFound indicates the requested reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrFineNotFound indicates the requested fine does not exist.
	ErrFineNotFound = errors.New("fine not found")

	// ===========================================
	// Conflict errors
	// ===========================================

	// ErrDuplicateEmail indicates a user or employee with the email exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateIDNumber indicates a user with the identification number exists.
	ErrDuplicateIDNumber = errors.New("identification number already registered")

	// ErrDuplicateLoginName indicates an employee with the login name exists.
	ErrDuplicateLoginName = errors.New("login name already taken")

	// ErrItemNotAvailable indicates the item cannot be loaned in its current state.
	ErrItemNotAvailable = errors.New("item is not available")

	// ErrItemAlreadyAvailable indicates a reservation was attempted on an
	// available item; reservations exist only for unavailable items.
	ErrItemAlreadyAvailable = errors.New("item is available and needs no reservation")

	// ErrLoanAlreadyReturned indicates the loan was already returned.
	ErrLoanAlreadyReturned = errors.New("loan has already been returned")

	// ErrReservationNotActive indicates the reservation was already cancelled.
	ErrReservationNotActive = errors.New("reservation is not active")

	// ErrFineAlreadyPaid indicates the fine was already settled.
	ErrFineAlreadyPaid = errors.New("fine has already been paid")

	// ErrLoanLimitReached indicates the user is at the simultaneous-loan limit.
	ErrLoanLimitReached = errors.New("simultaneous loan limit reached")

	// ErrReservationLimitReached indicates the user is at the simultaneous-reservation limit.
	ErrReservationLimitReached = errors.New("simultaneous reservation limit reached")

	// ===========================================
	// Validation errors
	// ===========================================

	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidAmount indicates a negative monetary amount.
	ErrInvalidAmount = errors.New("amount cannot be negative")

	// ErrInvalidISBN indicates a malformed ISBN code.
	ErrInvalidISBN = errors.New("invalid ISBN format")

	// ErrInvalidIDNumber indicates a malformed identification number.
	ErrInvalidIDNumber = errors.New("invalid identification number")

	// ErrInvalidEnumValue indicates a stored enum string that is not part of
	// the closed value set. Raised at the repository boundary on read.
	ErrInvalidEnumValue = errors.New("invalid enumerated value")

	// ErrInvalidTable indicates a table name outside the persistence whitelist.
	ErrInvalidTable = errors.New("invalid table name")

	// ErrInvalidColumn indicates a column name that failed sanitization.
	ErrInvalidColumn = errors.New("invalid column name")

	// ===========================================
	// Authentication errors
	// ===========================================

	// ErrInvalidCredentials indicates authentication failed. The same error is
	// returned for an unknown login name and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmployeeInactive indicates the employee account is disabled.
	ErrEmployeeInactive = errors.New("employee account is inactive")
)
