package events

import "time"

// Event type codes emitted by the core services.
const (
	TypeUserSignedUp  = "USER_SIGNED_UP"
	TypeUserLoggedIn  = "USER_LOGGED_IN"
	TypeUserLoggedOut = "USER_LOGGED_OUT"
	TypeMessageSent   = "MESSAGE_SENT"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MESSAGE_SENT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by services that do not need
// a dedicated event type.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
