package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncReservationsCreated()
	IncReservationConflicts()
	IncReservationsCancelled()
	IncMatchJoins()
	IncMatchJoinRejections()
	IncMatchLeaves()
	IncSweeperRuns()
	ObserveRequestDuration(duration float64)
	SetStartupTime(duration float64)
}
