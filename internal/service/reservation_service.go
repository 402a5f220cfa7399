package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// ReservationService handles holds on currently-unavailable items.
type ReservationService struct {
	reservationRepo repository.ReservationRepository
	uow             repository.UnitOfWork
	policy          Policy
	logger          zerolog.Logger
}

// NewReservationService creates a new ReservationService.
func NewReservationService(reservationRepo repository.ReservationRepository, uow repository.UnitOfWork, policy Policy, logger zerolog.Logger) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		uow:             uow,
		policy:          policy,
		logger:          logger.With().Str("service", "reservation").Logger(),
	}
}

// Reserve places a hold on an unavailable item. Reserving an available item
// is a conflict: the user should simply borrow it. A non-positive
// expirationDays falls back to the configured default. No queueing policy
// exists beyond this check; multiple simultaneous reservations on the same
// item are allowed.
func (s *ReservationService) Reserve(ctx context.Context, userID, itemID, employeeID int64, expirationDays int) (*domain.Reservation, error) {
	if expirationDays <= 0 {
		expirationDays = s.policy.ReservationDays
	}

	var reservation *domain.Reservation
	err := s.uow.Do(ctx, func(repos repository.Set) error {
		if _, err := repos.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		item, err := repos.Items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.IsAvailable() {
			return fmt.Errorf("%w: %q", domain.ErrItemAlreadyAvailable, item.Title)
		}

		if s.policy.MaxReservations > 0 {
			active, err := repos.Reservations.ListActiveByUser(ctx, userID)
			if err != nil {
				return err
			}
			if len(active) >= s.policy.MaxReservations {
				return fmt.Errorf("%w: limit is %d", domain.ErrReservationLimitReached, s.policy.MaxReservations)
			}
		}

		reservation = domain.NewReservation(userID, itemID, employeeID, time.Duration(expirationDays)*24*time.Hour)
		return repos.Reservations.Create(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("reservation_id", reservation.ID).
		Int64("user_id", userID).
		Int64("item_id", itemID).
		Time("expires_at", reservation.ExpiresAt).
		Msg("reservation placed")

	return reservation, nil
}

// Cancel deactivates a reservation. Cancelling an already-cancelled
// reservation is a conflict.
func (s *ReservationService) Cancel(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.Active {
		return nil, domain.ErrReservationNotActive
	}

	reservation.Active = false
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reservation_id", reservation.ID).Msg("reservation cancelled")
	return reservation, nil
}

// ListActive returns all uncancelled reservations.
func (s *ReservationService) ListActive(ctx context.Context) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListActive(ctx)
}

// ListByUser returns all reservations ever placed by a user.
func (s *ReservationService) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}
