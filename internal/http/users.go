package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/HugoFdezTbres/fairplay/internal/auth"
	"github.com/HugoFdezTbres/fairplay/internal/user"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			http.Error(w, "email and password are required", http.StatusBadRequest)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		u := &user.User{
			ID:           uuid.New().String(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.Users.Insert(u); err != nil {
			writeDomainError(w, err)
			return
		}

		token, err := s.Tokens.Issue(u.ID)
		if err != nil {
			log.Error("Failed to issue token", "error", err, "userID", u.ID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("User registered", "userID", u.ID)
		respondJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		u, err := s.Users.GetByEmail(req.Email)
		if err != nil {
			// An unknown email and a wrong password produce the same answer.
			if errors.Is(err, user.ErrNotFound) {
				http.Error(w, "Invalid credentials", http.StatusUnauthorized)
				return
			}
			writeDomainError(w, err)
			return
		}
		if !auth.CheckPassword(u.PasswordHash, req.Password) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := s.Tokens.Issue(u.ID)
		if err != nil {
			log.Error("Failed to issue token", "error", err, "userID", u.ID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		respondJSON(w, http.StatusOK, authResponse{Token: token, User: u})
	}
}

func (s *Server) CurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := s.Users.GetByID(callerFromContext(r))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}
