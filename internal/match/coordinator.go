package match

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/HugoFdezTbres/fairplay/internal/events"
	"github.com/HugoFdezTbres/fairplay/internal/locking"
	"github.com/HugoFdezTbres/fairplay/internal/metrics"
)

// Coordinator owns the capacity invariant of open matches: the player list
// never exceeds MaxPlayers, never contains duplicates, and always contains
// the creator. Join and leave re-read the match, validate, then write a full
// replacement while holding the per-match lock.
type Coordinator struct {
	store   Store
	locks   *locking.KeyedMutex
	metrics metrics.Metrics
	events  events.Publisher
}

// NewCoordinator creates a match Coordinator.
func NewCoordinator(store Store, metricsSvc metrics.Metrics, publisher events.Publisher) *Coordinator {
	return &Coordinator{
		store:   store,
		locks:   locking.NewKeyedMutex(),
		metrics: metricsSvc,
		events:  publisher,
	}
}

// Create persists a new match. The creator is always the sole initial player;
// any caller-supplied player list is discarded.
func (c *Coordinator) Create(m *Match, creatorID string) (*Match, error) {
	if m.MaxPlayers <= 0 {
		return nil, ErrInvalidCapacity
	}

	stored := *m
	stored.ID = uuid.New().String()
	stored.CreatedBy = creatorID
	stored.Players = []string{creatorID}
	stored.Status = StatusOpen
	stored.CreatedAt = time.Now().UTC()

	if err := c.store.Insert(&stored); err != nil {
		return nil, err
	}

	if err := c.events.Publish(events.EventMatchCreated, &stored); err != nil {
		log.Error("Failed to publish match-created event", "error", err, "matchID", stored.ID)
	}

	log.Info("Match created", "matchID", stored.ID, "courtID", stored.CourtID, "maxPlayers", stored.MaxPlayers)
	return &stored, nil
}

// Join adds the user to the match. It returns false, without error, when the
// match is absent, not open, full, or already contains the user.
func (c *Coordinator) Join(matchID, userID string) (bool, error) {
	c.locks.Lock(matchID)
	defer c.locks.Unlock(matchID)

	m, err := c.store.GetByID(matchID)
	if err != nil {
		if err == ErrNotFound {
			c.metrics.IncMatchJoinRejections()
			return false, nil
		}
		return false, err
	}

	if m.Status != StatusOpen || len(m.Players) >= m.MaxPlayers || m.HasPlayer(userID) {
		c.metrics.IncMatchJoinRejections()
		return false, nil
	}

	updated := *m
	updated.Players = append(append([]string{}, m.Players...), userID)
	if err := c.store.Replace(matchID, &updated); err != nil {
		return false, err
	}

	c.metrics.IncMatchJoins()
	if err := c.events.Publish(events.EventMatchJoined, &updated); err != nil {
		log.Error("Failed to publish match-joined event", "error", err, "matchID", matchID)
	}

	log.Info("Player joined match", "matchID", matchID, "userID", userID, "players", len(updated.Players))
	return true, nil
}

// Leave removes the user from the match. It returns false when the match is
// absent or the user is not a player. Leaving never changes the match status,
// and a departing creator keeps the CreatedBy reference; reassignment is a
// product decision that has not been made.
func (c *Coordinator) Leave(matchID, userID string) (bool, error) {
	c.locks.Lock(matchID)
	defer c.locks.Unlock(matchID)

	m, err := c.store.GetByID(matchID)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}

	if !m.HasPlayer(userID) {
		return false, nil
	}

	updated := *m
	updated.Players = make([]string, 0, len(m.Players)-1)
	for _, p := range m.Players {
		if p != userID {
			updated.Players = append(updated.Players, p)
		}
	}

	if err := c.store.Replace(matchID, &updated); err != nil {
		return false, err
	}

	c.metrics.IncMatchLeaves()
	if err := c.events.Publish(events.EventMatchLeft, &updated); err != nil {
		log.Error("Failed to publish match-left event", "error", err, "matchID", matchID)
	}

	log.Info("Player left match", "matchID", matchID, "userID", userID, "players", len(updated.Players))
	return true, nil
}

// Update applies the patch to an existing match. The identifier, creator and
// creation timestamp always come from the stored record. Capacity is held to
// the same rule as Create, and can never drop below the current player count.
func (c *Coordinator) Update(id string, patch *Match) (*Match, error) {
	c.locks.Lock(id)
	defer c.locks.Unlock(id)

	existing, err := c.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated := *patch
	updated.ID = existing.ID
	updated.CreatedBy = existing.CreatedBy
	updated.CreatedAt = existing.CreatedAt
	if updated.Status == "" {
		updated.Status = existing.Status
	}
	if updated.Players == nil {
		updated.Players = existing.Players
	}
	if updated.MaxPlayers <= 0 || updated.MaxPlayers < len(updated.Players) {
		return nil, ErrInvalidCapacity
	}

	if err := c.store.Replace(id, &updated); err != nil {
		return nil, err
	}

	log.Info("Match updated", "matchID", id, "status", updated.Status)
	return &updated, nil
}

// Delete removes the match permanently.
func (c *Coordinator) Delete(id string) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}
	log.Info("Match deleted", "matchID", id)
	return nil
}

// ListAvailable returns a snapshot of the matches still accepting players:
// status Open and under capacity.
func (c *Coordinator) ListAvailable() ([]*Match, error) {
	open, err := c.store.GetOpen()
	if err != nil {
		return nil, err
	}

	available := make([]*Match, 0, len(open))
	for _, m := range open {
		if len(m.Players) < m.MaxPlayers {
			available = append(available, m)
		}
	}
	return available, nil
}

// ByID returns a single match.
func (c *Coordinator) ByID(id string) (*Match, error) {
	return c.store.GetByID(id)
}

// ByCourt returns the matches on a court.
func (c *Coordinator) ByCourt(courtID string) ([]*Match, error) {
	return c.store.GetByCourt(courtID)
}

// ByUser returns the matches the user plays in or created.
func (c *Coordinator) ByUser(userID string) ([]*Match, error) {
	return c.store.GetByUser(userID)
}

// All returns every stored match.
func (c *Coordinator) All() ([]*Match, error) {
	return c.store.GetAll()
}
