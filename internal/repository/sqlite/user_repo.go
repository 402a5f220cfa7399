package sqlite

import (
	"context"
	"fmt"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// userRepository implements repository.UserRepository on top of the store.
type userRepository struct {
	store *Store
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// userToRow serializes a user for writing. Optional fields are omitted when
// empty so they stay NULL in the row.
func userToRow(user *domain.User) Row {
	row := Row{
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"email":         user.Email,
		"type":          user.Type.String(),
		"id_number":     user.IDNumber,
		"active":        boolToInt(user.Active),
		"registered_at": formatTime(user.RegisteredAt),
	}
	if user.Phone != "" {
		row["phone"] = user.Phone
	}
	return row
}

// userFromRow rebuilds a user from a stored row. An unrecognized type value
// is an error; optional columns default to the zero value.
func userFromRow(row Row) (*domain.User, error) {
	userType, err := domain.ParseUserType(rowString(row, "type"))
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           rowInt64(row, "id"),
		FirstName:    rowString(row, "first_name"),
		LastName:     rowString(row, "last_name"),
		Email:        rowString(row, "email"),
		Type:         userType,
		IDNumber:     rowString(row, "id_number"),
		Phone:        rowString(row, "phone"),
		Active:       rowBool(row, "active"),
		RegisteredAt: rowTime(row, "registered_at"),
	}, nil
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	id, err := r.store.Insert(ctx, TableUsers, userToRow(user))
	if err != nil {
		if isUniqueViolationOn(err, "users.id_number") {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateIDNumber, user.IDNumber)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, user.Email)
		}
		return err
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByIDNumber retrieves a user by identification number.
func (r *userRepository) GetByIDNumber(ctx context.Context, idNumber string) (*domain.User, error) {
	return r.getOne(ctx, "id_number = ?", idNumber)
}

func (r *userRepository) getOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	rows, err := r.store.Select(ctx, TableUsers, where, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return userFromRow(rows[0])
}

// Update updates an existing user.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	affected, err := r.store.Update(ctx, TableUsers, userToRow(user), "id = ?", user.ID)
	if err != nil {
		if isUniqueViolationOn(err, "users.id_number") {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateIDNumber, user.IDNumber)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, user.Email)
		}
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete deletes a user by ID.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.store.Delete(ctx, TableUsers, "id = ?", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List returns all users.
func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.store.Select(ctx, TableUsers, "")
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		user, err := userFromRow(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

var _ repository.UserRepository = (*userRepository)(nil)
