package user

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when the referenced user does not exist.
	ErrNotFound = errors.New("user: not found")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("user: email already registered")
)

// User is a registered account. The password hash never leaves the store
// except for credential verification.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// store handles all database operations for users.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
