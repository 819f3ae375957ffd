package reservation_test

import (
	"testing"
	"time"

	"github.com/HugoFdezTbres/fairplay/internal/database"
	"github.com/HugoFdezTbres/fairplay/internal/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (reservation.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return reservation.NewStore(db), dbTeardown
}

func storedReservation(id, courtID string, start, end time.Time, status reservation.Status) *reservation.Reservation {
	r := newReservation(courtID, start, end)
	r.ID = id
	r.Status = status
	r.PaymentStatus = reservation.PaymentPending
	r.CreatedAt = time.Now().UTC()
	return r
}

func TestStoreInsertAndGetByID(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	r := storedReservation("res-1", "court-1", at(9, 0), at(10, 0), reservation.StatusConfirmed)
	require.NoError(t, store.Insert(r))

	got, err := store.GetByID("res-1")
	require.NoError(t, err)
	assert.Equal(t, "court-1", got.CourtID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, testDate, got.Date)
	assert.Equal(t, at(9, 0).Unix(), got.StartTime.Unix())
	assert.Equal(t, at(10, 0).Unix(), got.EndTime.Unix())
	assert.Equal(t, reservation.StatusConfirmed, got.Status)
	assert.Equal(t, int64(2000), got.Price)
	assert.True(t, got.CanModify)
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	_, err := store.GetByID("missing")
	assert.ErrorIs(t, err, reservation.ErrNotFound)
}

func TestStoreGetActiveByCourtDateExcludesCancelled(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	require.NoError(t, store.Insert(storedReservation("res-1", "court-1", at(9, 0), at(10, 0), reservation.StatusConfirmed)))
	require.NoError(t, store.Insert(storedReservation("res-2", "court-1", at(10, 0), at(11, 0), reservation.StatusCancelled)))
	require.NoError(t, store.Insert(storedReservation("res-3", "court-1", at(11, 0), at(12, 0), reservation.StatusCompleted)))
	require.NoError(t, store.Insert(storedReservation("res-4", "court-2", at(9, 0), at(10, 0), reservation.StatusConfirmed)))

	active, err := store.GetActiveByCourtDate("court-1", testDate)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "res-1", active[0].ID)
	assert.Equal(t, "res-3", active[1].ID)
}

func TestStoreLookups(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	r1 := storedReservation("res-1", "court-1", at(9, 0), at(10, 0), reservation.StatusConfirmed)
	r2 := storedReservation("res-2", "court-2", at(10, 0), at(11, 0), reservation.StatusConfirmed)
	r2.UserID = "user-2"
	require.NoError(t, store.Insert(r1))
	require.NoError(t, store.Insert(r2))

	byUser, err := store.GetByUser("user-2")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "res-2", byUser[0].ID)

	byCourt, err := store.GetByCourt("court-1")
	require.NoError(t, err)
	require.Len(t, byCourt, 1)

	byDate, err := store.GetByDate(testDate)
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStoreReplaceAndDelete(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	r := storedReservation("res-1", "court-1", at(9, 0), at(10, 0), reservation.StatusConfirmed)
	require.NoError(t, store.Insert(r))

	r.Status = reservation.StatusCancelled
	require.NoError(t, store.Replace("res-1", r))

	got, err := store.GetByID("res-1")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelled, got.Status)

	assert.ErrorIs(t, store.Replace("missing", r), reservation.ErrNotFound)

	require.NoError(t, store.Delete("res-1"))
	assert.ErrorIs(t, store.Delete("res-1"), reservation.ErrNotFound)
}
