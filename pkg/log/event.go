package log

import "time"

// Event represents a protocol log event captured during an instrument
// session. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the session (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates command (out) or response (in) flow.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// RemoteAddr is the instrument address (host:port), if known.
	RemoteAddr string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Command     *CommandEvent     `cbor:"6,keyasint,omitempty"` // command sent
	Response    *ResponseEvent    `cbor:"7,keyasint,omitempty"` // response received
	StateChange *StateChangeEvent `cbor:"8,keyasint,omitempty"` // session lifecycle
	Error       *ErrorEventData   `cbor:"9,keyasint,omitempty"` // failures
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the instrument.
	DirectionIn Direction = 0
	// DirectionOut indicates data sent to the instrument.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryExchange indicates a command or response line.
	CategoryExchange Category = 0
	// CategoryState indicates a session state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryExchange:
		return "EXCHANGE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures one command line sent to the instrument.
type CommandEvent struct {
	// Line is the command without its trailing terminator.
	Line string `cbor:"1,keyasint"`
}

// ResponseEvent captures one decoded-for-logging response.
type ResponseEvent struct {
	// Line is the trimmed response text.
	Line string `cbor:"1,keyasint"`

	// Command is the command line this response answers.
	Command string `cbor:"2,keyasint,omitempty"`

	// Latency is the duration from command write to response read.
	// Stored as nanoseconds.
	Latency time.Duration `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent captures session lifecycle events.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures failures at any layer.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
