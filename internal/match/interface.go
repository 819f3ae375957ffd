package match

// Store defines the persistence operations the coordinator needs. Player
// lists are replaced wholesale on write; the coordinator builds a new list
// and performs one replace rather than mutating shared state.
type Store interface {
	Insert(m *Match) error
	GetByID(id string) (*Match, error)
	GetByCourt(courtID string) ([]*Match, error)
	// GetByUser returns matches the user plays in or created.
	GetByUser(userID string) ([]*Match, error)
	// GetOpen returns matches with status Open regardless of occupancy.
	GetOpen() ([]*Match, error)
	GetAll() ([]*Match, error)
	Replace(id string, m *Match) error
	Delete(id string) error
}
