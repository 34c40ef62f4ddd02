package log

import (
	"time"
)

// Event is a routing event captured by a hardware module.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ModuleID uniquely identifies the opened hardware module instance (UUID).
	ModuleID string `cbor:"2,keyasint"`

	// Module is the hardware module name ("primary", "a2dp", ...).
	Module string `cbor:"3,keyasint,omitempty"`

	// Direction of the stream or route the event concerns.
	Direction Direction `cbor:"4,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// StreamID is the driver stream handle, 0 when no stream is involved.
	StreamID int32 `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Stream *StreamEvent    `cbor:"10,keyasint,omitempty"`
	Route  *RouteEvent     `cbor:"11,keyasint,omitempty"`
	Mode   *ModeEvent      `cbor:"12,keyasint,omitempty"`
	Error  *ErrorEventData `cbor:"13,keyasint,omitempty"`
}

// Direction indicates the audio direction of an event.
type Direction uint8

const (
	// DirectionNone is used for module wide events.
	DirectionNone Direction = 0
	// DirectionOutput indicates playback.
	DirectionOutput Direction = 1
	// DirectionInput indicates capture.
	DirectionInput Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "NONE"
	case DirectionOutput:
		return "OUTPUT"
	case DirectionInput:
		return "INPUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryStream indicates a stream lifecycle change.
	CategoryStream Category = 0
	// CategoryRoute indicates a patch change.
	CategoryRoute Category = 1
	// CategoryMode indicates an audio mode change.
	CategoryMode Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryStream:
		return "STREAM"
	case CategoryRoute:
		return "ROUTE"
	case CategoryMode:
		return "MODE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StreamAction is what happened to a stream.
type StreamAction uint8

const (
	StreamOpen        StreamAction = 0
	StreamClose       StreamAction = 1
	StreamStandby     StreamAction = 2
	StreamResume      StreamAction = 3
	StreamReconfigure StreamAction = 4
)

// String returns the action name.
func (a StreamAction) String() string {
	switch a {
	case StreamOpen:
		return "OPEN"
	case StreamClose:
		return "CLOSE"
	case StreamStandby:
		return "STANDBY"
	case StreamResume:
		return "RESUME"
	case StreamReconfigure:
		return "RECONFIGURE"
	default:
		return "UNKNOWN"
	}
}

// StreamEvent captures stream opens, closes and state transitions.
type StreamEvent struct {
	Action StreamAction `cbor:"1,keyasint"`

	// MixPort and DevicePort name the ports the stream uses.
	MixPort    string `cbor:"2,keyasint,omitempty"`
	DevicePort string `cbor:"3,keyasint,omitempty"`

	// Negotiated sample spec.
	Format   string `cbor:"4,keyasint,omitempty"`
	Rate     uint32 `cbor:"5,keyasint,omitempty"`
	Channels uint8  `cbor:"6,keyasint,omitempty"`

	// RequestedRate is set when the driver chose a different rate.
	RequestedRate uint32 `cbor:"7,keyasint,omitempty"`

	// Attempts is the number of open attempts (inputs only).
	Attempts int `cbor:"8,keyasint,omitempty"`
}

// RouteEvent captures a device port change.
type RouteEvent struct {
	// OldDevice is the previous device port (may be empty).
	OldDevice string `cbor:"1,keyasint,omitempty"`

	// NewDevice is the device port now in use.
	NewDevice string `cbor:"2,keyasint"`

	// Patch is the driver patch handle of the primary stream.
	Patch int32 `cbor:"3,keyasint,omitempty"`

	// Mirrored is the number of secondary streams that followed.
	Mirrored int `cbor:"4,keyasint,omitempty"`
}

// ModeEvent captures audio mode changes.
type ModeEvent struct {
	OldMode string `cbor:"1,keyasint"`
	NewMode string `cbor:"2,keyasint"`

	// Reconfigure is the number of input streams marked for reconfiguration.
	Reconfigure int `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures driver and negotiation errors.
type ErrorEventData struct {
	// Op is the operation that failed.
	Op string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the negative errno value (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes which port or stream was involved.
	Context string `cbor:"4,keyasint,omitempty"`
}

// Ports returns the port names the event mentions. Module wide events
// mention none.
func (e Event) Ports() []string {
	var ports []string
	add := func(name string) {
		if name != "" {
			ports = append(ports, name)
		}
	}
	switch {
	case e.Stream != nil:
		add(e.Stream.MixPort)
		add(e.Stream.DevicePort)
	case e.Route != nil:
		add(e.Route.OldDevice)
		add(e.Route.NewDevice)
	}
	return ports
}

// Label is a one word summary: the stream action, "Route", "Mode" or the
// failed operation.
func (e Event) Label() string {
	switch {
	case e.Stream != nil:
		return e.Stream.Action.String()
	case e.Route != nil:
		return "Route"
	case e.Mode != nil:
		return "Mode"
	case e.Error != nil:
		return e.Error.Op
	}
	return e.Category.String()
}
