package lifecycle

import (
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/HugoFdezTbres/fairplay/internal/reservation"
)

// ReservationStore defines the reservation operations required by the sweeper.
type ReservationStore interface {
	GetAll() ([]*reservation.Reservation, error)
	Replace(id string, r *reservation.Reservation) error
}

// MatchStore defines the match operations required by the sweeper.
type MatchStore interface {
	GetOpen() ([]*match.Match, error)
	Replace(id string, m *match.Match) error
}
