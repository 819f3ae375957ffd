package reservation

// Store defines the persistence operations the engine needs. The engine never
// caches reservations across calls; every operation re-reads current state
// through this interface before validating and writing.
type Store interface {
	Insert(r *Reservation) error
	GetByID(id string) (*Reservation, error)
	GetByUser(userID string) ([]*Reservation, error)
	GetByCourt(courtID string) ([]*Reservation, error)
	GetByDate(date string) ([]*Reservation, error)
	// GetActiveByCourtDate returns the non-Cancelled reservations for a court
	// on a date; this is the conflict scan set for availability checks.
	GetActiveByCourtDate(courtID, date string) ([]*Reservation, error)
	GetAll() ([]*Reservation, error)
	Replace(id string, r *Reservation) error
	Delete(id string) error
}
