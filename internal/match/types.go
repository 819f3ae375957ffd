package match

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// Status is the lifecycle state of a match. Closed and Cancelled are terminal
// for joining; there is no transition back to Open.
type Status string

const (
	StatusOpen      Status = "Open"
	StatusClosed    Status = "Closed"
	StatusCancelled Status = "Cancelled"
)

var (
	// ErrNotFound is returned when the referenced match does not exist.
	ErrNotFound = errors.New("match: not found")
	// ErrInvalidCapacity is returned when max players is not positive.
	ErrInvalidCapacity = errors.New("match: max players must be positive")
)

// Match is an open game other users can join until capacity is reached.
// Start and end times are display labels ("18:00"); the court's reservation
// carries the authoritative window.
type Match struct {
	ID         string    `json:"id"`
	CourtID    string    `json:"court_id"`
	Date       string    `json:"date"` // "2006-01-02"
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Sport      string    `json:"sport"`
	Players    []string  `json:"players"`
	MaxPlayers int       `json:"max_players"`
	Status     Status    `json:"status"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasPlayer reports whether the user is in the player list.
func (m *Match) HasPlayer(userID string) bool {
	for _, p := range m.Players {
		if p == userID {
			return true
		}
	}
	return false
}

// store handles all database operations for matches.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
