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

type Server struct {
	Engine         *reservation.Engine
	Coordinator    *match.Coordinator
	Courts         court.Store
	Sports         sport.Store
	Users          user.Store
	Sweeper        *lifecycle.Sweeper
	Tokens         *auth.TokenIssuer
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
