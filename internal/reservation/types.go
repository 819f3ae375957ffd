package reservation

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// Status is the lifecycle state of a reservation.
type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// PaymentStatus tracks payment state. It is carried for display only; payment
// processing happens outside this system.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

var (
	// ErrNotFound is returned when the referenced reservation does not exist.
	ErrNotFound = errors.New("reservation: not found")
	// ErrSlotUnavailable is returned when the requested window conflicts with
	// an active reservation on the same court and date.
	ErrSlotUnavailable = errors.New("reservation: slot unavailable")
	// ErrInvalidInterval is returned when start is not strictly before end.
	ErrInvalidInterval = errors.New("reservation: start must be before end")
)

// Reservation is a booked time window on a court. Facility name, address and
// court image are denormalized from the court catalog for display.
type Reservation struct {
	ID              string        `json:"id"`
	CourtID         string        `json:"court_id"`
	UserID          string        `json:"user_id"`
	Date            string        `json:"date"` // "2006-01-02"
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	Sport           string        `json:"sport"`
	FacilityName    string        `json:"facility_name"`
	FacilityAddress string        `json:"facility_address"`
	CourtImage      string        `json:"court_image,omitempty"`
	CanModify       bool          `json:"can_modify"`
	Status          Status        `json:"status"`
	Price           int64         `json:"price"` // cents
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// store handles all database operations for reservations.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
