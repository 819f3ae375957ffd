package court

import (
	"database/sql"
	"errors"
	"sync"
)

// ErrNotFound is returned when the referenced facility does not exist.
var ErrNotFound = errors.New("court: not found")

// Court is a facility listing: a venue with one or more bookable court units.
type Court struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Address       Address     `json:"address"`
	Sports        []SportInfo `json:"sports,omitempty"`
	OpeningHour   string      `json:"opening_hour"`
	ClosingHour   string      `json:"closing_hour"`
	Units         []Unit      `json:"courts,omitempty"`
	FacilityImage string      `json:"facility_image,omitempty"`
	Price         int64       `json:"price"` // cents per slot
}

// Address is the facility's postal address.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Town       string `json:"town"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// SportInfo names a sport offered at the facility.
type SportInfo struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Unit is an individual bookable court inside the facility.
type Unit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// store handles all database operations for the court catalog.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
