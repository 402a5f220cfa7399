package sqlite

import (
	"context"
	"database/sql"

	"github.com/openlibro/libris/internal/repository"
)

// unitOfWork implements repository.UnitOfWork over a SQLite transaction.
// Every repository handed to the callback shares the same transaction, so
// multi-step operations like issuing a loan either commit both writes or
// neither.
type unitOfWork struct {
	db    *DB
	store *Store
}

// NewUnitOfWork creates a new SQLite unit of work.
func NewUnitOfWork(db *DB, store *Store) repository.UnitOfWork {
	return &unitOfWork{db: db, store: store}
}

// Do executes fn within a single transaction.
func (u *unitOfWork) Do(ctx context.Context, fn func(repos repository.Set) error) error {
	return u.db.WithTx(ctx, func(tx *sql.Tx) error {
		txStore := u.store.withTx(tx)
		return fn(NewRepositorySet(txStore))
	})
}

// NewRepositorySet builds one repository per entity, all bound to the same
// store.
func NewRepositorySet(store *Store) repository.Set {
	return repository.Set{
		Users:        NewUserRepository(store),
		Employees:    NewEmployeeRepository(store),
		Items:        NewItemRepository(store),
		Loans:        NewLoanRepository(store),
		Reservations: NewReservationRepository(store),
		Fines:        NewFineRepository(store),
	}
}

var _ repository.UnitOfWork = (*unitOfWork)(nil)
