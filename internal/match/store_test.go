package match_test

import (
	"testing"
	"time"

	"github.com/HugoFdezTbres/fairplay/internal/database"
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (match.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return match.NewStore(db), dbTeardown
}

func storedMatch(id, createdBy string, players []string) *match.Match {
	return &match.Match{
		ID:         id,
		CourtID:    "court-1",
		Date:       "2025-03-14",
		StartTime:  "18:00",
		EndTime:    "19:00",
		Sport:      "Padel",
		Players:    players,
		MaxPlayers: 4,
		Status:     match.StatusOpen,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestStoreInsertAndGetByID(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	m := storedMatch("m1", "creator-1", []string{"creator-1", "user-2"})
	require.NoError(t, store.Insert(m))

	got, err := store.GetByID("m1")
	require.NoError(t, err)
	assert.Equal(t, "court-1", got.CourtID)
	assert.Equal(t, []string{"creator-1", "user-2"}, got.Players)
	assert.Equal(t, 4, got.MaxPlayers)
	assert.Equal(t, match.StatusOpen, got.Status)
	assert.Equal(t, "creator-1", got.CreatedBy)
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	_, err := store.GetByID("missing")
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestStoreGetByUserMatchesPlayersAndCreator(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	require.NoError(t, store.Insert(storedMatch("m1", "creator-1", []string{"creator-1", "user-2"})))
	require.NoError(t, store.Insert(storedMatch("m2", "user-2", []string{"user-2"})))
	require.NoError(t, store.Insert(storedMatch("m3", "creator-3", []string{"creator-3"})))

	// user-2 plays in m1 and created m2.
	matches, err := store.GetByUser("user-2")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// A user whose id is a substring of another id must not match.
	matches, err = store.GetByUser("user")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStoreGetOpen(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	open := storedMatch("m1", "creator-1", []string{"creator-1"})
	closed := storedMatch("m2", "creator-2", []string{"creator-2"})
	closed.Status = match.StatusClosed
	require.NoError(t, store.Insert(open))
	require.NoError(t, store.Insert(closed))

	matches, err := store.GetOpen()
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "m1", matches[0].ID)
}

func TestStoreReplaceAndDelete(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	m := storedMatch("m1", "creator-1", []string{"creator-1"})
	require.NoError(t, store.Insert(m))

	m.Players = []string{"creator-1", "user-2"}
	require.NoError(t, store.Replace("m1", m))

	got, err := store.GetByID("m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-1", "user-2"}, got.Players)

	assert.ErrorIs(t, store.Replace("missing", m), match.ErrNotFound)

	require.NoError(t, store.Delete("m1"))
	assert.ErrorIs(t, store.Delete("m1"), match.ErrNotFound)
}
