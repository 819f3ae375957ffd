package reservation

import "sync"

var _ Store = (*MockStore)(nil)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	InsertFunc               func(r *Reservation) error
	GetByIDFunc              func(id string) (*Reservation, error)
	GetByUserFunc            func(userID string) ([]*Reservation, error)
	GetByCourtFunc           func(courtID string) ([]*Reservation, error)
	GetByDateFunc            func(date string) ([]*Reservation, error)
	GetActiveByCourtDateFunc func(courtID, date string) ([]*Reservation, error)
	GetAllFunc               func() ([]*Reservation, error)
	ReplaceFunc              func(id string, r *Reservation) error
	DeleteFunc               func(id string) error

	// Call records
	InsertCalls  []*Reservation
	ReplaceCalls []struct {
		ID          string
		Reservation *Reservation
	}
	DeleteCalls               []string
	GetActiveByCourtDateCalls []struct {
		CourtID string
		Date    string
	}
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Insert(r *Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls = append(m.InsertCalls, r)
	if m.InsertFunc != nil {
		return m.InsertFunc(r)
	}
	return nil
}

func (m *MockStore) GetByID(id string) (*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetByUser(userID string) ([]*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(userID)
	}
	return nil, nil
}

func (m *MockStore) GetByCourt(courtID string) ([]*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByCourtFunc != nil {
		return m.GetByCourtFunc(courtID)
	}
	return nil, nil
}

func (m *MockStore) GetByDate(date string) ([]*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(date)
	}
	return nil, nil
}

func (m *MockStore) GetActiveByCourtDate(courtID, date string) ([]*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetActiveByCourtDateCalls = append(m.GetActiveByCourtDateCalls, struct {
		CourtID string
		Date    string
	}{courtID, date})
	if m.GetActiveByCourtDateFunc != nil {
		return m.GetActiveByCourtDateFunc(courtID, date)
	}
	return nil, nil
}

func (m *MockStore) GetAll() ([]*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockStore) Replace(id string, r *Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCalls = append(m.ReplaceCalls, struct {
		ID          string
		Reservation *Reservation
	}{id, r})
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(id, r)
	}
	return nil
}

func (m *MockStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
