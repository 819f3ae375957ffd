package user_test

import (
	"testing"
	"time"

	"github.com/HugoFdezTbres/fairplay/internal/database"
	"github.com/HugoFdezTbres/fairplay/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (user.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return user.NewStore(db), dbTeardown
}

func TestUserInsertAndLookups(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	u := &user.User{
		ID:           "u1",
		Name:         "Hugo",
		Email:        "hugo@example.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.Insert(u))

	byID, err := store.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "hugo@example.com", byID.Email)

	byEmail, err := store.GetByEmail("hugo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = store.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserDuplicateEmail(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	u := &user.User{ID: "u1", Name: "Hugo", Email: "hugo@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, store.Insert(u))

	dup := &user.User{ID: "u2", Name: "Other", Email: "hugo@example.com", PasswordHash: "y", CreatedAt: time.Now()}
	assert.ErrorIs(t, store.Insert(dup), user.ErrEmailTaken)
}

func TestUserDelete(t *testing.T) {
	store, teardown := setupStore(t)
	defer teardown()

	u := &user.User{ID: "u1", Name: "Hugo", Email: "hugo@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, store.Insert(u))

	require.NoError(t, store.Delete("u1"))
	assert.ErrorIs(t, store.Delete("u1"), user.ErrNotFound)
}
