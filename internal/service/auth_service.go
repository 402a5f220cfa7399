package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// AuthService authenticates employees and tracks the single process-wide
// session. Passwords are stored as bcrypt hashes, which carry a per-password
// salt.
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	logger       zerolog.Logger

	mu      sync.Mutex
	session *domain.Session
}

// NewAuthService creates a new AuthService with no active session.
func NewAuthService(employeeRepo repository.EmployeeRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		logger:       logger.With().Str("service", "auth").Logger(),
	}
}

// HashPassword produces a bcrypt hash of the password.
func (s *AuthService) HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login authenticates an employee and opens the process-wide session,
// replacing any previous one. It fails closed: an unknown login name and a
// wrong password both produce ErrInvalidCredentials, and nothing sensitive
// is logged.
func (s *AuthService) Login(ctx context.Context, loginName, password string) (*domain.Session, error) {
	employee, err := s.employeeRepo.GetByLoginName(ctx, loginName)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			s.logger.Debug().Str("login_name", loginName).Msg("login attempt for unknown account")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !employee.CanAuthenticate() {
		s.logger.Debug().Str("login_name", loginName).Msg("login attempt for inactive account")
		return nil, domain.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug().Str("login_name", loginName).Msg("login attempt with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Employee:   employee,
		Token:      uuid.NewString(),
		LoggedInAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info().
		Int64("employee_id", employee.ID).
		Str("login_name", employee.LoginName).
		Msg("employee logged in")

	return session, nil
}

// Logout invalidates the current session. Logging out with no session is a
// no-op.
func (s *AuthService) Logout() {
	s.mu.Lock()
	session := s.session
	s.session = nil
	s.mu.Unlock()

	if session != nil {
		s.logger.Info().
			Int64("employee_id", session.Employee.ID).
			Msg("employee logged out")
	}
}

// CurrentSession returns the active session, or nil when nobody is logged in.
func (s *AuthService) CurrentSession() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// CurrentEmployee returns the logged-in employee, or nil.
func (s *AuthService) CurrentEmployee() *domain.Employee {
	if session := s.CurrentSession(); session != nil {
		return session.Employee
	}
	return nil
}

// IsLoggedIn reports whether a session is active.
func (s *AuthService) IsLoggedIn() bool {
	return s.CurrentSession() != nil
}

// ChangePassword replaces an employee's password after verifying the old
// one. A missing employee and a wrong old password both fail without
// revealing which check tripped.
func (s *AuthService) ChangePassword(ctx context.Context, employeeID int64, oldPassword, newPassword string) error {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	newHash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	employee.PasswordHash = newHash
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return err
	}

	s.logger.Info().Int64("employee_id", employee.ID).Msg("password changed")
	return nil
}

// CreateEmployeeInput contains the data needed to create an employee.
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	LoginName string
	Password  string
	Role      string
	Shift     string
}

// CreateEmployee creates a new staff account with a unique login name.
func (s *AuthService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByLoginName(ctx, input.LoginName); err == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateLoginName, input.LoginName)
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	employee := domain.NewEmployee(input.FirstName, input.LastName, input.Email, input.LoginName, hash)
	if input.Role != "" {
		employee.Role = input.Role
	}
	employee.Shift = input.Shift

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("employee_id", employee.ID).
		Str("login_name", employee.LoginName).
		Msg("employee created")

	return employee, nil
}

// ListActiveEmployees returns all employees that may log in.
func (s *AuthService) ListActiveEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.employeeRepo.ListActive(ctx)
}
