package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/HugoFdezTbres/fairplay/internal/court"
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/HugoFdezTbres/fairplay/internal/reservation"
	"github.com/HugoFdezTbres/fairplay/internal/sport"
	"github.com/HugoFdezTbres/fairplay/internal/user"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// SweepHandler runs one lifecycle pass over stored reservations and matches.
func (s *Server) SweepHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		transitioned, err := s.Sweeper.Run(isDryRun)
		if err != nil {
			log.Error("Lifecycle sweep failed", "error", err)
			http.Error(w, "Sweep failed", http.StatusInternalServerError)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"transitioned": transitioned,
			"dry_run":      isDryRun,
		})
	}
}

// respondJSON writes v as a JSON response body with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// decodeJSON reads the request body into v, returning false after writing a
// 400 if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// writeDomainError maps domain sentinel errors to HTTP status codes. Anything
// unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reservation.ErrNotFound),
		errors.Is(err, match.ErrNotFound),
		errors.Is(err, court.ErrNotFound),
		errors.Is(err, sport.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, reservation.ErrSlotUnavailable),
		errors.Is(err, user.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, reservation.ErrInvalidInterval),
		errors.Is(err, match.ErrInvalidCapacity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error("Unhandled error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
