package sport

import (
	"database/sql"
	"errors"
	"sync"
)

// ErrNotFound is returned when the referenced sport does not exist.
var ErrNotFound = errors.New("sport: not found")

// Sport is a catalog entry for a bookable sport.
type Sport struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// store handles all database operations for the sport catalog.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
