package log

import (
	"time"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

// Event represents one trace entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// InstanceID identifies the coordinator instance (UUID).
	InstanceID string `cbor:"2,keyasint"`

	// Direction is Out for commands and In for callbacks.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// ClientID is the client the event belongs to, if any.
	ClientID int `cbor:"5,keyasint,omitempty"`

	// SessionID is the client-scoped session the event belongs to, if any.
	SessionID int `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Command     *CommandEvent     `cbor:"10,keyasint,omitempty"`
	Callback    *CallbackEvent    `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction indicates the direction of the traffic.
type Direction uint8

const (
	// DirectionIn indicates a callback from the HAL.
	DirectionIn Direction = 0
	// DirectionOut indicates a command to the HAL.
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
	// CategoryCommand indicates a HAL command.
	CategoryCommand Category = 0
	// CategoryCallback indicates a HAL callback.
	CategoryCallback Category = 1
	// CategoryState indicates a lifecycle change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryCallback:
		return "CALLBACK"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures an outgoing HAL command.
type CommandEvent struct {
	// TxID is the transaction id the response will carry.
	TxID uint16 `cbor:"1,keyasint"`

	// Op is the command.
	Op hal.Op `cbor:"2,keyasint"`

	// PubSubID is the publish/subscribe id (0 requests a new session).
	PubSubID uint32 `cbor:"3,keyasint,omitempty"`

	// PeerID is the destination peer instance id (SendMessage only).
	PeerID uint32 `cbor:"4,keyasint,omitempty"`

	// MAC is the destination address (SendMessage only).
	MAC string `cbor:"5,keyasint,omitempty"`

	// Config is the merged configuration (EnableAndConfigure only).
	Config *hal.ConfigRequest `cbor:"6,keyasint,omitempty"`

	// PayloadSize is the message length (SendMessage only).
	PayloadSize int `cbor:"7,keyasint,omitempty"`

	// Rejected is set when the HAL refused the command synchronously.
	Rejected bool `cbor:"8,keyasint,omitempty"`
}

// CallbackEvent captures an incoming HAL callback.
type CallbackEvent struct {
	// Kind is the callback.
	Kind hal.CallbackKind `cbor:"1,keyasint"`

	// TxID is the correlated transaction id (correlated callbacks only).
	TxID uint16 `cbor:"2,keyasint,omitempty"`

	// PubSubID is the publish/subscribe id, if the callback carries one.
	PubSubID uint32 `cbor:"3,keyasint,omitempty"`

	// PeerID is the peer instance id (match and message callbacks).
	PeerID uint32 `cbor:"4,keyasint,omitempty"`

	// MAC is the peer or interface address, if the callback carries one.
	MAC string `cbor:"5,keyasint,omitempty"`

	// Status is the failure status for Fail callbacks.
	Status *hal.Status `cbor:"6,keyasint,omitempty"`

	// Reason is the terminate reason for Terminated callbacks.
	Reason *hal.TerminateReason `cbor:"7,keyasint,omitempty"`

	// Unknown is set when the transaction id matched no pending command.
	Unknown bool `cbor:"8,keyasint,omitempty"`

	// Delivered is set when a listener was invoked.
	Delivered bool `cbor:"9,keyasint,omitempty"`
}

// StateChangeEvent captures client, session and device lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityClient indicates a client connect/disconnect.
	StateEntityClient StateEntity = 0
	// StateEntitySession indicates a session lifecycle change.
	StateEntitySession StateEntity = 1
	// StateEntityDevice indicates a device-wide configuration change.
	StateEntityDevice StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityClient:
		return "CLIENT"
	case StateEntitySession:
		return "SESSION"
	case StateEntityDevice:
		return "DEVICE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures coordinator-level errors.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// TxID is the transaction involved, if any.
	TxID uint16 `cbor:"2,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
