package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// LoanService handles issuing and returning loans, including automatic
// fine creation for late returns.
type LoanService struct {
	loanRepo repository.LoanRepository
	uow      repository.UnitOfWork
	policy   Policy
	logger   zerolog.Logger
}

// NewLoanService creates a new LoanService.
func NewLoanService(loanRepo repository.LoanRepository, uow repository.UnitOfWork, policy Policy, logger zerolog.Logger) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		uow:      uow,
		policy:   policy,
		logger:   logger.With().Str("service", "loan").Logger(),
	}
}

// Issue lends an item to a user. A non-positive durationDays falls back to
// the configured default. The loan row is written before the item flips to
// loaned, and both writes share one transaction, so a failure between steps
// leaves the item available rather than falsely loaned.
func (s *LoanService) Issue(ctx context.Context, userID, itemID, employeeID int64, durationDays int) (*domain.Loan, error) {
	if durationDays <= 0 {
		durationDays = s.policy.LoanDays
	}

	var loan *domain.Loan
	err := s.uow.Do(ctx, func(repos repository.Set) error {
		if _, err := repos.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		item, err := repos.Items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !item.IsAvailable() {
			return fmt.Errorf("%w: %q is %s", domain.ErrItemNotAvailable, item.Title, item.Status)
		}

		if s.policy.MaxLoans > 0 {
			active, err := repos.Loans.ListActiveByUser(ctx, userID)
			if err != nil {
				return err
			}
			if len(active) >= s.policy.MaxLoans {
				return fmt.Errorf("%w: limit is %d", domain.ErrLoanLimitReached, s.policy.MaxLoans)
			}
		}

		loan = domain.NewLoan(userID, itemID, employeeID, time.Duration(durationDays)*24*time.Hour)
		if err := repos.Loans.Create(ctx, loan); err != nil {
			return err
		}

		item.Status = domain.ItemStatusLoaned
		return repos.Items.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("loan_id", loan.ID).
		Int64("user_id", userID).
		Int64("item_id", itemID).
		Time("due_at", loan.DueAt).
		Msg("loan issued")

	return loan, nil
}

// Return records the return of a loaned item. The item flips back to
// available; if the item row is missing that step is skipped, since item
// repair or loss is not reconciled here. A return one or more whole days
// past the due timestamp creates exactly one unpaid fine, charged to the
// employee who processed the original loan. Partial days floor to zero and
// produce no fine.
func (s *LoanService) Return(ctx context.Context, loanID int64, notes string) (*domain.Loan, error) {
	var loan *domain.Loan
	var daysLate int

	err := s.uow.Do(ctx, func(repos repository.Set) error {
		var err error
		loan, err = repos.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if !loan.Active {
			return domain.ErrLoanAlreadyReturned
		}

		now := time.Now().UTC()
		loan.ReturnedAt = &now
		loan.Notes = notes
		loan.Active = false

		item, err := repos.Items.GetByID(ctx, loan.ItemID)
		switch {
		case err == nil:
			item.Status = domain.ItemStatusAvailable
			if err := repos.Items.Update(ctx, item); err != nil {
				return err
			}
		case errors.Is(err, domain.ErrItemNotFound):
			// Item row gone; nothing to flip.
		default:
			return err
		}

		daysLate = loan.DaysLate()
		if daysLate >= 1 {
			fine := domain.NewFine(
				loan.UserID,
				loan.ID,
				loan.EmployeeID,
				float64(daysLate)*s.policy.FinePerDay,
				fmt.Sprintf("Late return: %d days late", daysLate),
			)
			if err := repos.Fines.Create(ctx, fine); err != nil {
				return err
			}
		}

		return repos.Loans.Update(ctx, loan)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("loan_id", loan.ID).
		Int("days_late", daysLate).
		Msg("item returned")

	return loan, nil
}

// ListActive returns all outstanding loans.
func (s *LoanService) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	return s.loanRepo.ListActive(ctx)
}

// ListByUser returns all loans ever issued to a user.
func (s *LoanService) ListByUser(ctx context.Context, userID int64) ([]*domain.Loan, error) {
	return s.loanRepo.ListByUser(ctx, userID)
}
