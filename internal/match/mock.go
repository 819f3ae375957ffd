package match

import "sync"

var _ Store = (*MockStore)(nil)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	InsertFunc     func(m *Match) error
	GetByIDFunc    func(id string) (*Match, error)
	GetByCourtFunc func(courtID string) ([]*Match, error)
	GetByUserFunc  func(userID string) ([]*Match, error)
	GetOpenFunc    func() ([]*Match, error)
	GetAllFunc     func() ([]*Match, error)
	ReplaceFunc    func(id string, m *Match) error
	DeleteFunc     func(id string) error

	// Call records
	InsertCalls  []*Match
	ReplaceCalls []struct {
		ID    string
		Match *Match
	}
	DeleteCalls []string
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Insert(mt *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls = append(m.InsertCalls, mt)
	if m.InsertFunc != nil {
		return m.InsertFunc(mt)
	}
	return nil
}

func (m *MockStore) GetByID(id string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetByCourt(courtID string) ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByCourtFunc != nil {
		return m.GetByCourtFunc(courtID)
	}
	return nil, nil
}

func (m *MockStore) GetByUser(userID string) ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(userID)
	}
	return nil, nil
}

func (m *MockStore) GetOpen() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetOpenFunc != nil {
		return m.GetOpenFunc()
	}
	return nil, nil
}

func (m *MockStore) GetAll() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockStore) Replace(id string, mt *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCalls = append(m.ReplaceCalls, struct {
		ID    string
		Match *Match
	}{id, mt})
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(id, mt)
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
