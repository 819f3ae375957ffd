package events

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

var _ Publisher = (*MockPublisher)(nil)

// MockPublisher is a mock implementation of Publisher for testing.
// It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	// Spies for method calls
	PublishFunc func(topic EventType, data any) error
	DecodeFunc  func(data []byte, returnValue any) error

	// Call records
	PublishCalls []PublishCall
	DecodeCalls  []DecodeCall
}

// PublishCall holds the arguments for a call to Publish.
type PublishCall struct {
	Topic EventType
	Data  any
}

// DecodeCall holds the arguments for a call to Decode.
type DecodeCall struct {
	Data        []byte
	ReturnValue any
}

// NewMock creates a new mock Publisher.
func NewMock() *MockPublisher {
	return &MockPublisher{}
}

// Reset clears all call records.
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = nil
	m.DecodeCalls = nil
}

// Publish records the call and executes the mock function if provided.
func (m *MockPublisher) Publish(topic EventType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, PublishCall{Topic: topic, Data: data})
	if m.PublishFunc != nil {
		return m.PublishFunc(topic, data)
	}
	return nil
}

// Decode records the call and executes the mock function if provided, falling
// back to real MessagePack decoding so round-trip tests work out of the box.
func (m *MockPublisher) Decode(data []byte, returnValue any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DecodeCalls = append(m.DecodeCalls, DecodeCall{Data: data, ReturnValue: returnValue})
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data, returnValue)
	}
	return msgpack.Unmarshal(data, returnValue)
}
