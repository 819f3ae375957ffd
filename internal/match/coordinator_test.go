package match_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/HugoFdezTbres/fairplay/internal/database"
	"github.com/HugoFdezTbres/fairplay/internal/events"
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/HugoFdezTbres/fairplay/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCoordinator creates a coordinator over a fresh in-memory database.
func setupCoordinator(t *testing.T) (*match.Coordinator, *metrics.Mock, *events.MockPublisher, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	metricsSvc := metrics.NewMock()
	publisher := events.NewMock()
	coordinator := match.NewCoordinator(match.NewStore(db), metricsSvc, publisher)

	return coordinator, metricsSvc, publisher, dbTeardown
}

func newMatch(maxPlayers int) *match.Match {
	return &match.Match{
		CourtID:    "court-1",
		Date:       "2025-03-14",
		StartTime:  "18:00",
		EndTime:    "19:00",
		Sport:      "Padel",
		MaxPlayers: maxPlayers,
	}
}

func TestCreateAdmitsCreatorOnly(t *testing.T) {
	coordinator, _, publisher, teardown := setupCoordinator(t)
	defer teardown()

	m := newMatch(4)
	// A caller-supplied player list must be discarded.
	m.Players = []string{"mallory", "trent"}

	created, err := coordinator.Create(m, "creator-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "creator-1", created.CreatedBy)
	assert.Equal(t, []string{"creator-1"}, created.Players)
	assert.Equal(t, match.StatusOpen, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, publisher.PublishCalls, 1)
	assert.Equal(t, events.EventMatchCreated, publisher.PublishCalls[0].Topic)
}

func TestCreateRejectsNonPositiveCapacity(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	_, err := coordinator.Create(newMatch(0), "creator-1")
	assert.ErrorIs(t, err, match.ErrInvalidCapacity)

	_, err = coordinator.Create(newMatch(-2), "creator-1")
	assert.ErrorIs(t, err, match.ErrInvalidCapacity)
}

func TestJoinHonorsCapacity(t *testing.T) {
	coordinator, metricsSvc, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(3), "creator-1")
	require.NoError(t, err)

	for i, userID := range []string{"user-2", "user-3"} {
		ok, err := coordinator.Join(created.ID, userID)
		require.NoError(t, err)
		assert.True(t, ok, "join %d should succeed", i)
	}

	// Capacity reached: the next distinct user is refused.
	ok, err := coordinator.Join(created.ID, "user-4")
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := coordinator.ByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Players, 3)
	assert.Equal(t, 2, metricsSvc.MatchJoinsCalls)
	assert.Equal(t, 1, metricsSvc.MatchJoinRejectionsCalls)
}

func TestJoinRejectsDuplicatePlayer(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	ok, err := coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)
	assert.False(t, ok, "second join by the same user must be refused")

	// The creator is already a player.
	ok, err = coordinator.Join(created.ID, "creator-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJoinSingleSlotMatch(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(1), "creator-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-1"}, created.Players)

	ok, err := coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)
	assert.False(t, ok, "a maxPlayers=1 match is full at creation")
}

func TestJoinRefusesNonOpenMatch(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	patch := newMatch(4)
	patch.Status = match.StatusClosed
	_, err = coordinator.Update(created.ID, patch)
	require.NoError(t, err)

	ok, err := coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJoinMissingMatch(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	ok, err := coordinator.Join("missing", "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLeave(t *testing.T) {
	coordinator, metricsSvc, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	ok, err := coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = coordinator.Leave(created.ID, "user-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, metricsSvc.MatchLeavesCalls)

	stored, err := coordinator.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-1"}, stored.Players)
	assert.Equal(t, match.StatusOpen, stored.Status, "leave never changes status")
}

func TestLeaveNonMemberLeavesPlayersUnchanged(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	ok, err := coordinator.Leave(created.ID, "stranger")
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := coordinator.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-1"}, stored.Players)
}

func TestLeaveMissingMatch(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	ok, err := coordinator.Leave("missing", "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreatorLeavingKeepsCreatedBy(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	_, err = coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)

	ok, err := coordinator.Leave(created.ID, "creator-1")
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := coordinator.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "creator-1", stored.CreatedBy, "ownership is not reassigned")
	assert.Equal(t, []string{"user-2"}, stored.Players)
}

func TestUpdatePreservesImmutableFields(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	patch := newMatch(6)
	patch.CreatedBy = "attacker"
	patch.Sport = "Tennis"

	updated, err := coordinator.Update(created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "creator-1", updated.CreatedBy)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "Tennis", updated.Sport)
	assert.Equal(t, 6, updated.MaxPlayers)
}

func TestUpdateRejectsNonPositiveCapacity(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	joined, err := coordinator.Join(created.ID, "user-2")
	require.NoError(t, err)
	require.True(t, joined)

	_, err = coordinator.Update(created.ID, newMatch(0))
	assert.ErrorIs(t, err, match.ErrInvalidCapacity)

	_, err = coordinator.Update(created.ID, newMatch(-2))
	assert.ErrorIs(t, err, match.ErrInvalidCapacity)

	after, err := coordinator.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, after.MaxPlayers)
	assert.LessOrEqual(t, len(after.Players), after.MaxPlayers)
}

func TestUpdateRejectsCapacityBelowPlayerCount(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(3), "creator-1")
	require.NoError(t, err)

	for _, userID := range []string{"user-2", "user-3"} {
		joined, err := coordinator.Join(created.ID, userID)
		require.NoError(t, err)
		require.True(t, joined)
	}

	// Three players are in; capacity cannot shrink under them.
	_, err = coordinator.Update(created.ID, newMatch(2))
	assert.ErrorIs(t, err, match.ErrInvalidCapacity)

	// Shrinking to exactly the player count is allowed.
	updated, err := coordinator.Update(created.ID, newMatch(3))
	require.NoError(t, err)
	assert.Equal(t, 3, updated.MaxPlayers)
}

func TestUpdateNotFound(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	_, err := coordinator.Update("missing", newMatch(4))
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestDelete(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	require.NoError(t, coordinator.Delete(created.ID))
	assert.ErrorIs(t, coordinator.Delete(created.ID), match.ErrNotFound)
}

func TestListAvailable(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	// Open with room.
	withRoom, err := coordinator.Create(newMatch(4), "creator-1")
	require.NoError(t, err)

	// Open but full.
	full, err := coordinator.Create(newMatch(1), "creator-2")
	require.NoError(t, err)

	// Closed.
	closed, err := coordinator.Create(newMatch(4), "creator-3")
	require.NoError(t, err)
	patch := newMatch(4)
	patch.Status = match.StatusCancelled
	_, err = coordinator.Update(closed.ID, patch)
	require.NoError(t, err)

	available, err := coordinator.ListAvailable()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, withRoom.ID, available[0].ID)
	assert.NotEqual(t, full.ID, available[0].ID)
}

// Concurrent joins at maxPlayers-1 occupancy must admit exactly one player.
func TestConcurrentJoinsNeverExceedCapacity(t *testing.T) {
	coordinator, _, _, teardown := setupCoordinator(t)
	defer teardown()

	created, err := coordinator.Create(newMatch(2), "creator-1")
	require.NoError(t, err)

	type result struct {
		ok  bool
		err error
	}

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan result, attempts)

	for i := 0; i < attempts; i++ {
		userID := fmt.Sprintf("user-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := coordinator.Join(created.ID, userID)
			results <- result{ok, err}
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for res := range results {
		require.NoError(t, res.err)
		if res.ok {
			admitted++
		}
	}
	assert.Equal(t, 1, admitted)

	stored, err := coordinator.ByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Players, 2)
}
