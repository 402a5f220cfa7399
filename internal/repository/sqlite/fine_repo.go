package sqlite

import (
	"context"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// fineRepository implements repository.FineRepository on top of the store.
type fineRepository struct {
	store *Store
}

// NewFineRepository creates a new SQLite fine repository.
func NewFineRepository(store *Store) repository.FineRepository {
	return &fineRepository{store: store}
}

func fineToRow(fine *domain.Fine) Row {
	return Row{
		"user_id":     fine.UserID,
		"loan_id":     fine.LoanID,
		"employee_id": fine.EmployeeID,
		"amount":      fine.Amount,
		"description": fine.Description,
		"issued_at":   formatTime(fine.IssuedAt),
		"paid":        boolToInt(fine.Paid),
	}
}

func fineFromRow(row Row) *domain.Fine {
	return &domain.Fine{
		ID:          rowInt64(row, "id"),
		UserID:      rowInt64(row, "user_id"),
		LoanID:      rowInt64(row, "loan_id"),
		EmployeeID:  rowInt64(row, "employee_id"),
		Amount:      rowFloat64(row, "amount"),
		Description: rowString(row, "description"),
		IssuedAt:    rowTime(row, "issued_at"),
		Paid:        rowBool(row, "paid"),
	}
}

// Create creates a new fine.
func (r *fineRepository) Create(ctx context.Context, fine *domain.Fine) error {
	id, err := r.store.Insert(ctx, TableFines, fineToRow(fine))
	if err != nil {
		return err
	}
	fine.ID = id
	return nil
}

// GetByID retrieves a fine by ID.
func (r *fineRepository) GetByID(ctx context.Context, id int64) (*domain.Fine, error) {
	rows, err := r.store.Select(ctx, TableFines, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrFineNotFound
	}
	return fineFromRow(rows[0]), nil
}

// Update updates an existing fine.
func (r *fineRepository) Update(ctx context.Context, fine *domain.Fine) error {
	affected, err := r.store.Update(ctx, TableFines, fineToRow(fine), "id = ?", fine.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFineNotFound
	}
	return nil
}

// ListUnpaid returns all unsettled fines.
func (r *fineRepository) ListUnpaid(ctx context.Context) ([]*domain.Fine, error) {
	return r.list(ctx, "paid = 0")
}

// ListByUser returns all fines ever issued to a user.
func (r *fineRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Fine, error) {
	return r.list(ctx, "user_id = ?", userID)
}

// ListByLoan returns the fines produced by a loan.
func (r *fineRepository) ListByLoan(ctx context.Context, loanID int64) ([]*domain.Fine, error) {
	return r.list(ctx, "loan_id = ?", loanID)
}

func (r *fineRepository) list(ctx context.Context, where string, args ...any) ([]*domain.Fine, error) {
	rows, err := r.store.Select(ctx, TableFines, where, args...)
	if err != nil {
		return nil, err
	}
	fines := make([]*domain.Fine, 0, len(rows))
	for _, row := range rows {
		fines = append(fines, fineFromRow(row))
	}
	return fines, nil
}

var _ repository.FineRepository = (*fineRepository)(nil)
