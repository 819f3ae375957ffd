package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/HugoFdezTbres/fairplay/internal/reservation"
)

func (s *Server) CreateReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reservation.Reservation
		if !decodeJSON(w, r, &req) {
			return
		}
		// The booking always belongs to the authenticated caller, whatever the
		// body claims.
		req.UserID = callerFromContext(r)
		s.denormalizeFacility(&req)

		created, err := s.Engine.Create(&req)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		log.Info("Reservation created", "reservationID", created.ID, "courtID", created.CourtID, "date", created.Date)
		respondJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) ListReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := s.Engine.All()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) UserReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := s.Engine.ByUser(callerFromContext(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) CourtReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := s.Engine.ByCourt(r.PathValue("courtID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) DateReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.PathValue("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		reservations, err := s.Engine.ByDate(date)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) GetReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.Engine.ByID(r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

func (s *Server) UpdateReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !s.callerOwnsReservation(w, r, id) {
			return
		}

		var patch reservation.Reservation
		if !decodeJSON(w, r, &patch) {
			return
		}

		updated, err := s.Engine.Update(id, &patch)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) CancelReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !s.callerOwnsReservation(w, r, id) {
			return
		}

		if err := s.Engine.Cancel(id); err != nil {
			writeDomainError(w, err)
			return
		}
		log.Info("Reservation cancelled", "reservationID", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) DeleteReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !s.callerOwnsReservation(w, r, id) {
			return
		}

		if err := s.Engine.Delete(id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// AvailabilityHandler answers whether a court is free for the requested
// window. Start and end are RFC 3339 timestamps.
func (s *Server) AvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		courtID := q.Get("court_id")
		date := q.Get("date")
		if courtID == "" || date == "" {
			http.Error(w, "court_id and date are required", http.StatusBadRequest)
			return
		}

		start, err := time.Parse(time.RFC3339, q.Get("start"))
		if err != nil {
			http.Error(w, "Invalid start, expected RFC 3339", http.StatusBadRequest)
			return
		}
		end, err := time.Parse(time.RFC3339, q.Get("end"))
		if err != nil {
			http.Error(w, "Invalid end, expected RFC 3339", http.StatusBadRequest)
			return
		}

		available, err := s.Engine.IsSlotAvailable(courtID, date, start, end)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"available": available})
	}
}

// denormalizeFacility copies display fields from the court catalog onto the
// reservation, so listings render without extra lookups. The catalog is
// advisory: bookings against courts the catalog does not know keep whatever
// the client sent.
func (s *Server) denormalizeFacility(res *reservation.Reservation) {
	c, err := s.Courts.GetByID(res.CourtID)
	if err != nil {
		log.Debug("Court not in catalog, keeping client-provided display fields", "courtID", res.CourtID)
		return
	}
	res.FacilityName = c.Name
	res.FacilityAddress = fmt.Sprintf("%s %s, %s", c.Address.Street, c.Address.Number, c.Address.City)
	if res.CourtImage == "" {
		res.CourtImage = c.FacilityImage
	}
	if res.Price == 0 {
		res.Price = c.Price
	}
}

// callerOwnsReservation loads the reservation and rejects the request with a
// 403 when it belongs to a different user. It writes the response on failure.
func (s *Server) callerOwnsReservation(w http.ResponseWriter, r *http.Request, id string) bool {
	existing, err := s.Engine.ByID(id)
	if err != nil {
		if errors.Is(err, reservation.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			writeDomainError(w, err)
		}
		return false
	}
	if existing.UserID != callerFromContext(r) {
		http.Error(w, "Reservation belongs to another user", http.StatusForbidden)
		return false
	}
	return true
}
