package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// FineService handles settlement and listing of fines. Fines are only ever
// created by the loan service on late returns.
type FineService struct {
	fineRepo repository.FineRepository
	logger   zerolog.Logger
}

// NewFineService creates a new FineService.
func NewFineService(fineRepo repository.FineRepository, logger zerolog.Logger) *FineService {
	return &FineService{
		fineRepo: fineRepo,
		logger:   logger.With().Str("service", "fine").Logger(),
	}
}

// Pay marks a fine as settled. Paying an already-paid fine is a conflict
// and leaves the fine unchanged.
func (s *FineService) Pay(ctx context.Context, fineID int64) (*domain.Fine, error) {
	fine, err := s.fineRepo.GetByID(ctx, fineID)
	if err != nil {
		return nil, err
	}
	if fine.Paid {
		return nil, domain.ErrFineAlreadyPaid
	}

	fine.Paid = true
	if err := s.fineRepo.Update(ctx, fine); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("fine_id", fine.ID).
		Float64("amount", fine.Amount).
		Msg("fine paid")

	return fine, nil
}

// ListUnpaid returns all unsettled fines.
func (s *FineService) ListUnpaid(ctx context.Context) ([]*domain.Fine, error) {
	return s.fineRepo.ListUnpaid(ctx)
}

// ListByUser returns all fines ever issued to a user.
func (s *FineService) ListByUser(ctx context.Context, userID int64) ([]*domain.Fine, error) {
	return s.fineRepo.ListByUser(ctx, userID)
}
