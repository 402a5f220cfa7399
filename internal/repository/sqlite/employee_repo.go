package sqlite

import (
	"context"
	"fmt"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// employeeRepository implements repository.EmployeeRepository on top of the store.
type employeeRepository struct {
	store *Store
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(store *Store) repository.EmployeeRepository {
	return &employeeRepository{store: store}
}

func employeeToRow(employee *domain.Employee) Row {
	row := Row{
		"first_name":    employee.FirstName,
		"last_name":     employee.LastName,
		"email":         employee.Email,
		"login_name":    employee.LoginName,
		"password_hash": employee.PasswordHash,
		"role":          employee.Role,
		"active":        boolToInt(employee.Active),
		"registered_at": formatTime(employee.RegisteredAt),
	}
	if employee.Shift != "" {
		row["shift"] = employee.Shift
	}
	return row
}

func employeeFromRow(row Row) (*domain.Employee, error) {
	return &domain.Employee{
		ID:           rowInt64(row, "id"),
		FirstName:    rowString(row, "first_name"),
		LastName:     rowString(row, "last_name"),
		Email:        rowString(row, "email"),
		LoginName:    rowString(row, "login_name"),
		PasswordHash: rowString(row, "password_hash"),
		Role:         rowString(row, "role"),
		Shift:        rowString(row, "shift"),
		Active:       rowBool(row, "active"),
		RegisteredAt: rowTime(row, "registered_at"),
	}, nil
}

// Create creates a new employee.
func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	id, err := r.store.Insert(ctx, TableEmployees, employeeToRow(employee))
	if err != nil {
		if isUniqueViolationOn(err, "employees.login_name") {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateLoginName, employee.LoginName)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, employee.Email)
		}
		return err
	}
	employee.ID = id
	return nil
}

// GetByID retrieves an employee by ID.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByLoginName retrieves an employee by system login name.
func (r *employeeRepository) GetByLoginName(ctx context.Context, loginName string) (*domain.Employee, error) {
	return r.getOne(ctx, "login_name = ?", loginName)
}

// GetByEmail retrieves an employee by email.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *employeeRepository) getOne(ctx context.Context, where string, args ...any) (*domain.Employee, error) {
	rows, err := r.store.Select(ctx, TableEmployees, where, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return employeeFromRow(rows[0])
}

// Update updates an existing employee.
func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	affected, err := r.store.Update(ctx, TableEmployees, employeeToRow(employee), "id = ?", employee.ID)
	if err != nil {
		if isUniqueViolationOn(err, "employees.login_name") {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateLoginName, employee.LoginName)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, employee.Email)
		}
		return err
	}
	if affected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete deletes an employee by ID.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.store.Delete(ctx, TableEmployees, "id = ?", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// ListActive returns all employees that may log in.
func (r *employeeRepository) ListActive(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.store.Select(ctx, TableEmployees, "active = 1")
	if err != nil {
		return nil, err
	}
	employees := make([]*domain.Employee, 0, len(rows))
	for _, row := range rows {
		employee, err := employeeFromRow(row)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

var _ repository.EmployeeRepository = (*employeeRepository)(nil)
