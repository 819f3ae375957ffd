package http

import (
	"net/http"

	"github.com/HugoFdezTbres/fairplay/internal/auth"
	"github.com/HugoFdezTbres/fairplay/internal/config"
	"github.com/HugoFdezTbres/fairplay/internal/court"
	"github.com/HugoFdezTbres/fairplay/internal/lifecycle"
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/HugoFdezTbres/fairplay/internal/metrics"
	"github.com/HugoFdezTbres/fairplay/internal/reservation"
	"github.com/HugoFdezTbres/fairplay/internal/sport"
	"github.com/HugoFdezTbres/fairplay/internal/user"
)

func NewServer(engine *reservation.Engine, coordinator *match.Coordinator, courts court.Store, sports sport.Store, users user.Store, sweeper *lifecycle.Sweeper, tokens *auth.TokenIssuer, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Engine:         engine,
		Coordinator:    coordinator,
		Courts:         courts,
		Sports:         sports,
		Users:          users,
		Sweeper:        sweeper,
		Tokens:         tokens,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Routes touching caller-owned data additionally go through s.authMiddleware,
	// which verifies the bearer token and puts the caller's user ID on the context.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /sweep", Chain(s.SweepHandler(), s.metricsMiddleware, paramsMiddleware))

	s.Router.Handle("POST /api/users/register", Chain(s.RegisterHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/users/login", Chain(s.LoginHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/users/me", Chain(s.CurrentUserHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))

	s.Router.Handle("POST /api/reservations", Chain(s.CreateReservationHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/reservations", Chain(s.ListReservationsHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/reservations/available", Chain(s.AvailabilityHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/reservations/user", Chain(s.UserReservationsHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/reservations/court/{courtID}", Chain(s.CourtReservationsHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/reservations/date/{date}", Chain(s.DateReservationsHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/reservations/{id}", Chain(s.GetReservationHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /api/reservations/{id}", Chain(s.UpdateReservationHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /api/reservations/{id}/cancel", Chain(s.CancelReservationHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /api/reservations/{id}", Chain(s.DeleteReservationHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))

	s.Router.Handle("POST /api/matches", Chain(s.CreateMatchHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/matches", Chain(s.ListMatchesHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/matches/available", Chain(s.AvailableMatchesHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/matches/user", Chain(s.UserMatchesHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /api/matches/court/{courtID}", Chain(s.CourtMatchesHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/matches/{id}", Chain(s.GetMatchHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("PUT /api/matches/{id}", Chain(s.UpdateMatchHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /api/matches/{id}", Chain(s.DeleteMatchHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /api/matches/{id}/join", Chain(s.JoinMatchHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /api/matches/{id}/leave", Chain(s.LeaveMatchHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))

	s.Router.Handle("GET /api/courts", Chain(s.ListCourtsHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/courts/{id}", Chain(s.GetCourtHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/courts", Chain(s.CreateCourtHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /api/courts/{id}", Chain(s.UpdateCourtHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /api/courts/{id}", Chain(s.DeleteCourtHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))

	s.Router.Handle("GET /api/sports", Chain(s.ListSportsHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/sports/{id}", Chain(s.GetSportHandler(), s.metricsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/sports", Chain(s.CreateSportHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /api/sports/{id}", Chain(s.UpdateSportHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
	s.Router.Handle("DELETE /api/sports/{id}", Chain(s.DeleteSportHandler(), s.metricsMiddleware, paramsMiddleware, s.authMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
