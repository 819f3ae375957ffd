package events

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventReservationCreated   EventType = "reservation-created"
	EventReservationCancelled EventType = "reservation-cancelled"
	EventReservationCompleted EventType = "reservation-completed"
	EventMatchCreated         EventType = "match-created"
	EventMatchJoined          EventType = "match-joined"
	EventMatchLeft            EventType = "match-left"
	EventMatchClosed          EventType = "match-closed"
)
