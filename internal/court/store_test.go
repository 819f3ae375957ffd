package court_test

import (
	"testing"

	"github.com/HugoFdezTbres/fairplay/internal/court"
	"github.com/HugoFdezTbres/fairplay/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (court.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return court.NewStore(db), dbTeardown
}

func testCourt(id string) *court.Court {
	return &court.Court{
		ID:   id,
		Name: "FairPlay Center",
		Address: court.Address{
			Street:     "Calle Mayor",
			Number:     "1",
			Town:       "Centro",
			City:       "Madrid",
			Country:    "Spain",
			PostalCode: "28013",
		},
		Sports:      []court.SportInfo{{Name: "Padel"}, {Name: "Tennis"}},
		OpeningHour: "08:00",
		ClosingHour: "22:00",
		Units: []court.Unit{
			{ID: "u1", Name: "Court 1"},
			{ID: "u2", Name: "Court 2"},
		},
		Price: 2000,
	}
}

func TestCourtRoundTrip(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	require.NoError(t, store.Insert(testCourt("c1")))

	got, err := store.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "FairPlay Center", got.Name)
	assert.Equal(t, "Madrid", got.Address.City)
	require.Len(t, got.Units, 2)
	assert.Equal(t, "Court 1", got.Units[0].Name)
	require.Len(t, got.Sports, 2)
	assert.Equal(t, int64(2000), got.Price)
}

func TestCourtReplaceAndDelete(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	c := testCourt("c1")
	require.NoError(t, store.Insert(c))

	c.ClosingHour = "23:00"
	require.NoError(t, store.Replace("c1", c))

	got, err := store.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "23:00", got.ClosingHour)

	require.NoError(t, store.Delete("c1"))
	_, err = store.GetByID("c1")
	assert.ErrorIs(t, err, court.ErrNotFound)
}

func TestCourtGetAll(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	require.NoError(t, store.Insert(testCourt("c1")))
	c2 := testCourt("c2")
	c2.Name = "Arena Norte"
	require.NoError(t, store.Insert(c2))

	all, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Arena Norte", all[0].Name)
}
