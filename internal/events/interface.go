package events

// Publisher is the interface for emitting domain events to the message bus.
type Publisher interface {
	Publish(topic EventType, data any) error
	Decode(data []byte, returnValue any) error
}
