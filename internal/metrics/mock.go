package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a no-op Metrics implementation that records call counts for tests.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	ReservationsCreatedCalls   int
	ReservationConflictsCalls  int
	ReservationsCancelledCalls int
	MatchJoinsCalls            int
	MatchJoinRejectionsCalls   int
	MatchLeavesCalls           int
	SweeperRunsCalls           int
	RequestDurations           []float64
	StartupTimes               []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncReservationsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReservationsCreatedCalls++
}

func (m *Mock) IncReservationConflicts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReservationConflictsCalls++
}

func (m *Mock) IncReservationsCancelled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReservationsCancelledCalls++
}

func (m *Mock) IncMatchJoins() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchJoinsCalls++
}

func (m *Mock) IncMatchJoinRejections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchJoinRejectionsCalls++
}

func (m *Mock) IncMatchLeaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchLeavesCalls++
}

func (m *Mock) IncSweeperRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SweeperRunsCalls++
}

func (m *Mock) ObserveRequestDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestDurations = append(m.RequestDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
