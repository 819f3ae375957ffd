package http

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/HugoFdezTbres/fairplay/internal/match"
)

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req match.Match
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := s.Coordinator.Create(&req, callerFromContext(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		log.Info("Match created", "matchID", created.ID, "courtID", created.CourtID, "maxPlayers", created.MaxPlayers)
		respondJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Coordinator.All()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

// AvailableMatchesHandler lists open matches with at least one free seat.
func (s *Server) AvailableMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Coordinator.ListAvailable()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) UserMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Coordinator.ByUser(callerFromContext(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) CourtMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Coordinator.ByCourt(r.PathValue("courtID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := s.Coordinator.ByID(r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

func (s *Server) UpdateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !s.callerCreatedMatch(w, r, id) {
			return
		}

		var patch match.Match
		if !decodeJSON(w, r, &patch) {
			return
		}

		updated, err := s.Coordinator.Update(id, &patch)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !s.callerCreatedMatch(w, r, id) {
			return
		}

		if err := s.Coordinator.Delete(id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// JoinMatchHandler admits the caller into a match. A refused join is not an
// error: the response reports joined=false and the match is unchanged.
func (s *Server) JoinMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		joined, err := s.Coordinator.Join(id, callerFromContext(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"joined": joined})
	}
}

func (s *Server) LeaveMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		left, err := s.Coordinator.Leave(id, callerFromContext(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"left": left})
	}
}

// callerCreatedMatch loads the match and rejects the request with a 403 when
// the caller is not its creator. It writes the response on failure.
func (s *Server) callerCreatedMatch(w http.ResponseWriter, r *http.Request, id string) bool {
	existing, err := s.Coordinator.ByID(id)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			writeDomainError(w, err)
		}
		return false
	}
	if existing.CreatedBy != callerFromContext(r) {
		http.Error(w, "Match belongs to another user", http.StatusForbidden)
		return false
	}
	return true
}
