package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	ReservationsCreated   prometheus.Counter
	ReservationConflicts  prometheus.Counter
	ReservationsCancelled prometheus.Counter
	MatchJoins            prometheus.Counter
	MatchJoinRejections   prometheus.Counter
	MatchLeaves           prometheus.Counter
	SweeperRuns           prometheus.Counter
	RequestDuration       prometheus.Histogram
	StartupTimeSeconds    prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ReservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_reservations_created_total",
			Help: "The total number of reservations successfully created.",
		}),
		ReservationConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_reservation_conflicts_total",
			Help: "The total number of reservation attempts rejected for an occupied slot.",
		}),
		ReservationsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_reservations_cancelled_total",
			Help: "The total number of reservations cancelled.",
		}),
		MatchJoins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_match_joins_total",
			Help: "The total number of successful match joins.",
		}),
		MatchJoinRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_match_join_rejections_total",
			Help: "The total number of match join attempts that were refused.",
		}),
		MatchLeaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_match_leaves_total",
			Help: "The total number of players that left a match.",
		}),
		SweeperRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fairplay_sweeper_runs_total",
			Help: "The total number of times the lifecycle sweeper has run.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fairplay_request_duration_seconds",
			Help:    "The duration of HTTP requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fairplay_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ReservationsCreated,
		s.ReservationConflicts,
		s.ReservationsCancelled,
		s.MatchJoins,
		s.MatchJoinRejections,
		s.MatchLeaves,
		s.SweeperRuns,
		s.RequestDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncReservationsCreated() {
	s.ReservationsCreated.Inc()
}

func (s *Service) IncReservationConflicts() {
	s.ReservationConflicts.Inc()
}

func (s *Service) IncReservationsCancelled() {
	s.ReservationsCancelled.Inc()
}

func (s *Service) IncMatchJoins() {
	s.MatchJoins.Inc()
}

func (s *Service) IncMatchJoinRejections() {
	s.MatchJoinRejections.Inc()
}

func (s *Service) IncMatchLeaves() {
	s.MatchLeaves.Inc()
}

func (s *Service) IncSweeperRuns() {
	s.SweeperRuns.Inc()
}

func (s *Service) ObserveRequestDuration(duration float64) {
	s.RequestDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
