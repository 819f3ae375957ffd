package reservation

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/HugoFdezTbres/fairplay/internal/events"
	"github.com/HugoFdezTbres/fairplay/internal/locking"
	"github.com/HugoFdezTbres/fairplay/internal/metrics"
	"github.com/HugoFdezTbres/fairplay/internal/timeslot"
)

// Engine owns the no-double-booking invariant: for a given court and date, at
// most one non-Cancelled reservation covers any instant. Every mutation
// re-reads current state from the store, validates, then writes, holding the
// court+date lock across the whole sequence.
type Engine struct {
	store   Store
	locks   *locking.KeyedMutex
	metrics metrics.Metrics
	events  events.Publisher
}

// NewEngine creates a reservation Engine.
func NewEngine(store Store, metricsSvc metrics.Metrics, publisher events.Publisher) *Engine {
	return &Engine{
		store:   store,
		locks:   locking.NewKeyedMutex(),
		metrics: metricsSvc,
		events:  publisher,
	}
}

// slotKey is the serialization key for check-then-write sequences. All writes
// that could affect availability on one court+date contend on this key.
func slotKey(courtID, date string) string {
	return courtID + "|" + date
}

// IsSlotAvailable reports whether the half-open window [start, end) on the
// given court and date is free of active reservations. Side-effect free.
func (e *Engine) IsSlotAvailable(courtID, date string, start, end time.Time) (bool, error) {
	return e.isSlotAvailable(courtID, date, start, end, "")
}

// isSlotAvailable is the conflict scan. excludeID, when non-empty, skips that
// reservation so an entity never conflicts with itself during updates.
func (e *Engine) isSlotAvailable(courtID, date string, start, end time.Time, excludeID string) (bool, error) {
	if !start.Before(end) {
		return false, ErrInvalidInterval
	}

	existing, err := e.store.GetActiveByCourtDate(courtID, date)
	if err != nil {
		return false, fmt.Errorf("availability check failed: %w", err)
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if timeslot.Overlaps(start, end, r.StartTime, r.EndTime) {
			return false, nil
		}
	}
	return true, nil
}

// Create books the reservation's window. It assigns the identifier, forces
// status to Confirmed and stamps the creation time; on conflict nothing is
// written and ErrSlotUnavailable is returned.
func (e *Engine) Create(r *Reservation) (*Reservation, error) {
	if !r.StartTime.Before(r.EndTime) {
		return nil, ErrInvalidInterval
	}

	key := slotKey(r.CourtID, r.Date)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	available, err := e.isSlotAvailable(r.CourtID, r.Date, r.StartTime, r.EndTime, "")
	if err != nil {
		return nil, err
	}
	if !available {
		e.metrics.IncReservationConflicts()
		return nil, ErrSlotUnavailable
	}

	stored := *r
	stored.ID = uuid.New().String()
	stored.Status = StatusConfirmed
	stored.CreatedAt = time.Now().UTC()
	if stored.PaymentStatus == "" {
		stored.PaymentStatus = PaymentPending
	}

	if err := e.store.Insert(&stored); err != nil {
		return nil, err
	}

	e.metrics.IncReservationsCreated()
	if err := e.events.Publish(events.EventReservationCreated, &stored); err != nil {
		log.Error("Failed to publish reservation-created event", "error", err, "reservationID", stored.ID)
	}

	log.Info("Reservation created", "reservationID", stored.ID, "courtID", stored.CourtID, "date", stored.Date)
	return &stored, nil
}

// Update applies the patch to an existing reservation. The identifier, owning
// user and creation timestamp always come from the stored record; callers
// cannot reassign them. A change to court, date or time re-runs the
// availability check excluding the reservation itself.
func (e *Engine) Update(id string, patch *Reservation) (*Reservation, error) {
	key := slotKey(patch.CourtID, patch.Date)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	existing, err := e.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	slotChanged := patch.CourtID != existing.CourtID ||
		patch.Date != existing.Date ||
		!patch.StartTime.Equal(existing.StartTime) ||
		!patch.EndTime.Equal(existing.EndTime)

	if slotChanged {
		available, err := e.isSlotAvailable(patch.CourtID, patch.Date, patch.StartTime, patch.EndTime, id)
		if err != nil {
			return nil, err
		}
		if !available {
			e.metrics.IncReservationConflicts()
			return nil, ErrSlotUnavailable
		}
	}

	updated := *patch
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	if updated.Status == "" {
		updated.Status = existing.Status
	}
	if updated.PaymentStatus == "" {
		updated.PaymentStatus = existing.PaymentStatus
	}

	if err := e.store.Replace(id, &updated); err != nil {
		return nil, err
	}

	log.Info("Reservation updated", "reservationID", id, "slotChanged", slotChanged)
	return &updated, nil
}

// Cancel soft-deletes the reservation, freeing its window. Cancelling an
// already-cancelled reservation is a no-op.
func (e *Engine) Cancel(id string) error {
	r, err := e.store.GetByID(id)
	if err != nil {
		return err
	}
	if r.Status == StatusCancelled {
		return nil
	}

	r.Status = StatusCancelled
	if err := e.store.Replace(id, r); err != nil {
		return err
	}

	e.metrics.IncReservationsCancelled()
	if err := e.events.Publish(events.EventReservationCancelled, r); err != nil {
		log.Error("Failed to publish reservation-cancelled event", "error", err, "reservationID", id)
	}

	log.Info("Reservation cancelled", "reservationID", id)
	return nil
}

// Delete removes the reservation permanently.
func (e *Engine) Delete(id string) error {
	if err := e.store.Delete(id); err != nil {
		return err
	}
	log.Info("Reservation deleted", "reservationID", id)
	return nil
}

// ByID returns a single reservation.
func (e *Engine) ByID(id string) (*Reservation, error) {
	return e.store.GetByID(id)
}

// ByUser returns the reservations owned by a user.
func (e *Engine) ByUser(userID string) ([]*Reservation, error) {
	return e.store.GetByUser(userID)
}

// ByCourt returns the reservations on a court.
func (e *Engine) ByCourt(courtID string) ([]*Reservation, error) {
	return e.store.GetByCourt(courtID)
}

// ByDate returns the reservations on a calendar date.
func (e *Engine) ByDate(date string) ([]*Reservation, error) {
	return e.store.GetByDate(date)
}

// All returns every stored reservation.
func (e *Engine) All() ([]*Reservation, error) {
	return e.store.GetAll()
}
