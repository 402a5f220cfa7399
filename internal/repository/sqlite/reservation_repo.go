package sqlite

import (
	"context"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// reservationRepository implements repository.ReservationRepository on top of the store.
type reservationRepository struct {
	store *Store
}

// NewReservationRepository creates a new SQLite reservation repository.
func NewReservationRepository(store *Store) repository.ReservationRepository {
	return &reservationRepository{store: store}
}

func reservationToRow(reservation *domain.Reservation) Row {
	return Row{
		"user_id":     reservation.UserID,
		"item_id":     reservation.ItemID,
		"employee_id": reservation.EmployeeID,
		"reserved_at": formatTime(reservation.ReservedAt),
		"expires_at":  formatTime(reservation.ExpiresAt),
		"active":      boolToInt(reservation.Active),
	}
}

func reservationFromRow(row Row) *domain.Reservation {
	return &domain.Reservation{
		ID:         rowInt64(row, "id"),
		UserID:     rowInt64(row, "user_id"),
		ItemID:     rowInt64(row, "item_id"),
		EmployeeID: rowInt64(row, "employee_id"),
		ReservedAt: rowTime(row, "reserved_at"),
		ExpiresAt:  rowTime(row, "expires_at"),
		Active:     rowBool(row, "active"),
	}
}

// Create creates a new reservation.
func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	id, err := r.store.Insert(ctx, TableReservations, reservationToRow(reservation))
	if err != nil {
		return err
	}
	reservation.ID = id
	return nil
}

// GetByID retrieves a reservation by ID.
func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	rows, err := r.store.Select(ctx, TableReservations, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrReservationNotFound
	}
	return reservationFromRow(rows[0]), nil
}

// Update updates an existing reservation.
func (r *reservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	affected, err := r.store.Update(ctx, TableReservations, reservationToRow(reservation), "id = ?", reservation.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// ListActive returns all uncancelled reservations.
func (r *reservationRepository) ListActive(ctx context.Context) ([]*domain.Reservation, error) {
	return r.list(ctx, "active = 1")
}

// ListByUser returns all reservations ever placed by a user.
func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return r.list(ctx, "user_id = ?", userID)
}

// ListActiveByUser returns a user's uncancelled reservations.
func (r *reservationRepository) ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return r.list(ctx, "user_id = ? AND active = 1", userID)
}

func (r *reservationRepository) list(ctx context.Context, where string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.store.Select(ctx, TableReservations, where, args...)
	if err != nil {
		return nil, err
	}
	reservations := make([]*domain.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, reservationFromRow(row))
	}
	return reservations, nil
}

var _ repository.ReservationRepository = (*reservationRepository)(nil)
