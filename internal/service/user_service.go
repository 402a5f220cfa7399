package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// UserService handles registration and management of library users.
type UserService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// RegisterUserInput contains the data needed to register a user.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Type      domain.UserType
	IDNumber  string
	Phone     string
}

// Register creates a new library user. Email and identification number must
// be unique across all users; both are validated before any write.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidateIDNumber(input.IDNumber); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, input.Email)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByIDNumber(ctx, input.IDNumber); err == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateIDNumber, input.IDNumber)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := domain.NewUser(input.FirstName, input.LastName, input.Email, input.Type, input.IDNumber)
	user.Phone = input.Phone

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Str("type", user.Type.String()).
		Msg("user registered")

	return user, nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// Update persists changes to a user.
func (s *UserService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := domain.ValidateEmail(user.Email); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive toggles whether a user may borrow or reserve items.
func (s *UserService) SetActive(ctx context.Context, userID int64, active bool) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Active = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Bool("active", active).
		Msg("user active status updated")

	return nil
}
