package sqlite

import (
	"context"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// loanRepository implements repository.LoanRepository on top of the store.
type loanRepository struct {
	store *Store
}

// NewLoanRepository creates a new SQLite loan repository.
func NewLoanRepository(store *Store) repository.LoanRepository {
	return &loanRepository{store: store}
}

func loanToRow(loan *domain.Loan) Row {
	row := Row{
		"user_id":     loan.UserID,
		"item_id":     loan.ItemID,
		"employee_id": loan.EmployeeID,
		"loaned_at":   formatTime(loan.LoanedAt),
		"due_at":      formatTime(loan.DueAt),
		"active":      boolToInt(loan.Active),
	}
	if loan.ReturnedAt != nil {
		row["returned_at"] = formatTime(*loan.ReturnedAt)
	}
	if loan.Notes != "" {
		row["notes"] = loan.Notes
	}
	return row
}

func loanFromRow(row Row) *domain.Loan {
	return &domain.Loan{
		ID:         rowInt64(row, "id"),
		UserID:     rowInt64(row, "user_id"),
		ItemID:     rowInt64(row, "item_id"),
		EmployeeID: rowInt64(row, "employee_id"),
		LoanedAt:   rowTime(row, "loaned_at"),
		DueAt:      rowTime(row, "due_at"),
		ReturnedAt: rowTimePtr(row, "returned_at"),
		Notes:      rowString(row, "notes"),
		Active:     rowBool(row, "active"),
	}
}

// Create creates a new loan.
func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	id, err := r.store.Insert(ctx, TableLoans, loanToRow(loan))
	if err != nil {
		return err
	}
	loan.ID = id
	return nil
}

// GetByID retrieves a loan by ID.
func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	rows, err := r.store.Select(ctx, TableLoans, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrLoanNotFound
	}
	return loanFromRow(rows[0]), nil
}

// Update updates an existing loan.
func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	affected, err := r.store.Update(ctx, TableLoans, loanToRow(loan), "id = ?", loan.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLoanNotFound
	}
	return nil
}

// ListActive returns all loans that have not been returned.
func (r *loanRepository) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	return r.list(ctx, "active = 1")
}

// ListByUser returns all loans ever issued to a user.
func (r *loanRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Loan, error) {
	return r.list(ctx, "user_id = ?", userID)
}

// ListActiveByUser returns a user's outstanding loans.
func (r *loanRepository) ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Loan, error) {
	return r.list(ctx, "user_id = ? AND active = 1", userID)
}

// ListByItem returns all loans ever issued for an item.
func (r *loanRepository) ListByItem(ctx context.Context, itemID int64) ([]*domain.Loan, error) {
	return r.list(ctx, "item_id = ?", itemID)
}

func (r *loanRepository) list(ctx context.Context, where string, args ...any) ([]*domain.Loan, error) {
	rows, err := r.store.Select(ctx, TableLoans, where, args...)
	if err != nil {
		return nil, err
	}
	loans := make([]*domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, loanFromRow(row))
	}
	return loans, nil
}

var _ repository.LoanRepository = (*loanRepository)(nil)
