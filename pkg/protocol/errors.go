package protocol

import "errors"

// Sentinel errors for wire-level failures. Callers match them with errors.Is.
var (
	// ErrBadMagic reports a message that does not open with MagicMarker.
	ErrBadMagic = errors.New("protocol: bad magic marker")

	// ErrBadDecision reports a received decision token other than Hittt
	// or Stand.
	ErrBadDecision = errors.New("protocol: bad decision token")

	// ErrInvalidArgument reports an encode call with an out-of-range or
	// disallowed value. Nothing is written to the wire.
	ErrInvalidArgument = errors.New("protocol: invalid argument")

	// ErrShortMessage reports a decode buffer smaller than the message layout.
	ErrShortMessage = errors.New("protocol: short message")

	// ErrConnectionClosed reports a stream that ended before a full message
	// arrived, or a write against a closed peer.
	ErrConnectionClosed = errors.New("protocol: connection closed")
)
