// Package lifecycle advances stored entities whose time has passed: confirmed
// reservations become Completed once their window ends, and open matches on a
// past date are Closed. Nothing here creates or deletes entities.
package lifecycle

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/HugoFdezTbres/fairplay/internal/events"
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/HugoFdezTbres/fairplay/internal/metrics"
	"github.com/HugoFdezTbres/fairplay/internal/reservation"
)

// Sweeper walks stored reservations and matches and applies the time-based
// transitions.
type Sweeper struct {
	reservations ReservationStore
	matches      MatchStore
	metrics      metrics.Metrics
	events       events.Publisher
	now          func() time.Time
}

// New creates a Sweeper.
func New(reservations ReservationStore, matches MatchStore, metricsSvc metrics.Metrics, publisher events.Publisher) *Sweeper {
	return &Sweeper{
		reservations: reservations,
		matches:      matches,
		metrics:      metricsSvc,
		events:       publisher,
		now:          time.Now,
	}
}

// Run performs one sweep. With dryRun set, transitions are logged but not
// written. It returns the number of entities transitioned.
func (s *Sweeper) Run(dryRun bool) (int, error) {
	log.Info("Starting lifecycle sweep", "dryRun", dryRun)
	s.metrics.IncSweeperRuns()

	transitioned := 0

	completed, err := s.completeReservations(dryRun)
	if err != nil {
		return transitioned, err
	}
	transitioned += completed

	closed, err := s.closeMatches(dryRun)
	if err != nil {
		return transitioned, err
	}
	transitioned += closed

	log.Info("Lifecycle sweep finished", "transitioned", transitioned)
	return transitioned, nil
}

func (s *Sweeper) completeReservations(dryRun bool) (int, error) {
	all, err := s.reservations.GetAll()
	if err != nil {
		return 0, err
	}

	now := s.now()
	count := 0
	for _, r := range all {
		if r.Status != reservation.StatusConfirmed || !r.EndTime.Before(now) {
			continue
		}

		log.Info("Completing past reservation", "reservationID", r.ID, "end", r.EndTime)
		if dryRun {
			count++
			continue
		}

		r.Status = reservation.StatusCompleted
		if err := s.reservations.Replace(r.ID, r); err != nil {
			log.Error("Failed to complete reservation", "error", err, "reservationID", r.ID)
			continue
		}
		if err := s.events.Publish(events.EventReservationCompleted, r); err != nil {
			log.Error("Failed to publish reservation-completed event", "error", err, "reservationID", r.ID)
		}
		count++
	}
	return count, nil
}

func (s *Sweeper) closeMatches(dryRun bool) (int, error) {
	open, err := s.matches.GetOpen()
	if err != nil {
		return 0, err
	}

	today := s.now().Format("2006-01-02")
	count := 0
	for _, m := range open {
		if m.Date >= today {
			continue
		}

		log.Info("Closing past match", "matchID", m.ID, "date", m.Date)
		if dryRun {
			count++
			continue
		}

		m.Status = match.StatusClosed
		if err := s.matches.Replace(m.ID, m); err != nil {
			log.Error("Failed to close match", "error", err, "matchID", m.ID)
			continue
		}
		if err := s.events.Publish(events.EventMatchClosed, m); err != nil {
			log.Error("Failed to publish match-closed event", "error", err, "matchID", m.ID)
		}
		count++
	}
	return count, nil
}
