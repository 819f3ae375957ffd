package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/HugoFdezTbres/fairplay/internal/court"
	"github.com/HugoFdezTbres/fairplay/internal/sport"
)

func (s *Server) ListCourtsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courts, err := s.Courts.GetAll()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, courts)
	}
}

func (s *Server) GetCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := s.Courts.GetByID(r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

func (s *Server) CreateCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c court.Court
		if !decodeJSON(w, r, &c) {
			return
		}
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if err := s.Courts.Insert(&c); err != nil {
			writeDomainError(w, err)
			return
		}
		log.Info("Court created", "courtID", c.ID, "name", c.Name)
		respondJSON(w, http.StatusCreated, &c)
	}
}

func (s *Server) UpdateCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var c court.Court
		if !decodeJSON(w, r, &c) {
			return
		}
		c.ID = id
		if err := s.Courts.Replace(id, &c); err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, &c)
	}
}

func (s *Server) DeleteCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Courts.Delete(r.PathValue("id")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListSportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sports, err := s.Sports.GetAll()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, sports)
	}
}

func (s *Server) GetSportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := s.Sports.GetByID(r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, sp)
	}
}

func (s *Server) CreateSportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sp sport.Sport
		if !decodeJSON(w, r, &sp) {
			return
		}
		if sp.ID == "" {
			sp.ID = uuid.New().String()
		}
		if err := s.Sports.Insert(&sp); err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, &sp)
	}
}

func (s *Server) UpdateSportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var sp sport.Sport
		if !decodeJSON(w, r, &sp) {
			return
		}
		sp.ID = id
		if err := s.Sports.Replace(id, &sp); err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, &sp)
	}
}

func (s *Server) DeleteSportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Sports.Delete(r.PathValue("id")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
