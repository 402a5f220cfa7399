package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository/sqlite"
)

// TestLateReturnFlow walks the full circulation path against a real
// database: register, catalog, issue, overdue return, fine settlement.
func TestLateReturnFlow(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, sqlite.DefaultConfig(":memory:"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := sqlite.NewStore(db, zerolog.Nop())
	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}

	repos := sqlite.NewRepositorySet(store)
	uow := sqlite.NewUnitOfWork(db, store)

	users := NewUserService(repos.Users, zerolog.Nop())
	items := NewItemService(repos.Items, zerolog.Nop())
	auth := NewAuthService(repos.Employees, zerolog.Nop())
	loans := NewLoanService(repos.Loans, uow, DefaultPolicy(), zerolog.Nop())
	fines := NewFineService(repos.Fines, zerolog.Nop())

	user, err := users.Register(ctx, RegisterUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Type:      domain.UserTypeStudent,
		IDNumber:  "STU-001",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	item, err := items.Add(ctx, AddItemInput{
		Title:    "The Go Programming Language",
		Author:   "Donovan, Kernighan",
		ISBN:     "978-0134190440",
		Category: domain.ItemCategoryBook,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	employee, err := auth.CreateEmployee(ctx, CreateEmployeeInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		LoginName: "ghopper",
		Password:  "correct-horse",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}

	loan, err := loans.Issue(ctx, user.ID, item.ID, employee.ID, 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// The item is out, so a second issue must be refused.
	if _, err := loans.Issue(ctx, user.ID, item.ID, employee.ID, 0); !errors.Is(err, domain.ErrItemNotAvailable) {
		t.Fatalf("second Issue() error = %v, want ErrItemNotAvailable", err)
	}

	// Backdate the due timestamp to make the return two days late.
	loan.DueAt = time.Now().UTC().Add(-49 * time.Hour)
	if err := repos.Loans.Update(ctx, loan); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	returned, err := loans.Return(ctx, loan.ID, "")
	if err != nil {
		t.Fatalf("Return() error = %v", err)
	}
	if returned.Active {
		t.Error("returned loan should not be active")
	}

	got, err := items.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("ListAvailable() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListAvailable() = %d items after return, want 1", len(got))
	}

	unpaid, err := fines.ListUnpaid(ctx)
	if err != nil {
		t.Fatalf("ListUnpaid() error = %v", err)
	}
	if len(unpaid) != 1 {
		t.Fatalf("ListUnpaid() = %d fines, want 1", len(unpaid))
	}
	fine := unpaid[0]
	if fine.Amount != 100.0 {
		t.Errorf("fine amount = %v, want 100.0 for two days late", fine.Amount)
	}
	if fine.Description != "Late return: 2 days late" {
		t.Errorf("fine description = %q", fine.Description)
	}

	if _, err := fines.Pay(ctx, fine.ID); err != nil {
		t.Fatalf("Pay() error = %v", err)
	}

	unpaid, err = fines.ListUnpaid(ctx)
	if err != nil {
		t.Fatalf("ListUnpaid() error = %v", err)
	}
	if len(unpaid) != 0 {
		t.Errorf("ListUnpaid() = %d fines after payment, want 0", len(unpaid))
	}
}

// TestIssueRollsBackOnFailure proves the loan row and the item flip share
// one transaction: when the limit check trips, no partial writes survive.
func TestIssueRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, sqlite.DefaultConfig(":memory:"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := sqlite.NewStore(db, zerolog.Nop())
	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}

	repos := sqlite.NewRepositorySet(store)
	uow := sqlite.NewUnitOfWork(db, store)
	loans := NewLoanService(repos.Loans, uow, Policy{LoanDays: 15, FinePerDay: 50, MaxLoans: 1}, zerolog.Nop())

	users := NewUserService(repos.Users, zerolog.Nop())
	items := NewItemService(repos.Items, zerolog.Nop())
	auth := NewAuthService(repos.Employees, zerolog.Nop())

	user, err := users.Register(ctx, RegisterUserInput{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Type: domain.UserTypeStudent, IDNumber: "STU-001",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	employee, err := auth.CreateEmployee(ctx, CreateEmployeeInput{
		FirstName: "Grace", LastName: "Hopper",
		Email: "grace@example.com", LoginName: "ghopper", Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}

	first, err := items.Add(ctx, AddItemInput{Title: "First", Category: domain.ItemCategoryBook})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := items.Add(ctx, AddItemInput{Title: "Second", Category: domain.ItemCategoryBook})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if _, err := loans.Issue(ctx, user.ID, first.ID, employee.ID, 0); err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := loans.Issue(ctx, user.ID, second.ID, employee.ID, 0); !errors.Is(err, domain.ErrLoanLimitReached) {
		t.Fatalf("Issue() error = %v, want ErrLoanLimitReached", err)
	}

	stored, err := repos.Items.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Status != domain.ItemStatusAvailable {
		t.Errorf("item status = %s after refused issue, want %s", stored.Status, domain.ItemStatusAvailable)
	}

	active, err := repos.Loans.ListActiveByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListActiveByUser() error = %v", err)
	}
	if len(active) != 1 {
		t.Errorf("active loans = %d after refused issue, want 1", len(active))
	}

}
