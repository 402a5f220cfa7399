package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlibro/libris/internal/domain"
)

func seedTestReservation(t *testing.T, store *Store, userID, itemID, employeeID int64) *domain.Reservation {
	t.Helper()
	reservation := domain.NewReservation(userID, itemID, employeeID, 3*24*time.Hour)
	reservation.ReservedAt = reservation.ReservedAt.Truncate(time.Second)
	reservation.ExpiresAt = reservation.ExpiresAt.Truncate(time.Second)
	require.NoError(t, NewReservationRepository(store).Create(context.Background(), reservation))
	return reservation
}

func TestReservationRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewReservationRepository(store)

	user := seedTestUser(t, store, "ada@example.com", "STU-001")
	item := seedTestItem(t, store, "The Go Programming Language")
	employee := seedTestEmployee(t, store, "ghopper")

	reservation := seedTestReservation(t, store, user.ID, item.ID, employee.ID)

	got, err := repo.GetByID(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation, got)

	reservation.Active = false
	require.NoError(t, repo.Update(ctx, reservation))

	got, err = repo.GetByID(ctx, reservation.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestReservationRepositoryLists(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewReservationRepository(store)

	user := seedTestUser(t, store, "ada@example.com", "STU-001")
	other := seedTestUser(t, store, "alan@example.com", "STU-002")
	item := seedTestItem(t, store, "The Go Programming Language")
	employee := seedTestEmployee(t, store, "ghopper")

	open := seedTestReservation(t, store, user.ID, item.ID, employee.ID)
	cancelled := seedTestReservation(t, store, user.ID, item.ID, employee.ID)
	cancelled.Active = false
	require.NoError(t, repo.Update(ctx, cancelled))
	seedTestReservation(t, store, other.ID, item.ID, employee.ID)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	byUser, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	activeByUser, err := repo.ListActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, activeByUser, 1)
	assert.Equal(t, open.ID, activeByUser[0].ID)
}

func TestReservationRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewReservationRepository(store)

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	err = repo.Update(ctx, &domain.Reservation{ID: 999, UserID: 1, ItemID: 1, EmployeeID: 1})
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}
