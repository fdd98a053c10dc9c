package session

import (
	"errors"
	"fmt"

	"github.com/gg-glitch-88/meshlink/internal/frame"
)

var (
	// ErrNotConnected is returned by Send and Configure outside the states
	// that allow them.
	ErrNotConnected = errors.New("session: not connected")
	// ErrConfigurationTimeout ends a handshake whose marker never arrived.
	ErrConfigurationTimeout = errors.New("session: configuration timeout")
	// ErrCorrelationMismatch is logged when a config-complete marker carries
	// an id other than the one awaited. It is never returned.
	ErrCorrelationMismatch = errors.New("session: correlation id mismatch")
	// ErrHandshakeInProgress is returned by Configure while another handshake
	// is awaiting its marker.
	ErrHandshakeInProgress = errors.New("session: handshake in progress")
	// ErrWriteQueueFull is returned by Send when a bounded write queue is full.
	ErrWriteQueueFull = errors.New("session: write queue full")
	// ErrAlreadyConnected is returned by Connect on a session that left Idle.
	ErrAlreadyConnected = errors.New("session: already connected")
	// ErrEncoding is frame.ErrEncoding, re-exported for callers of Send.
	ErrEncoding = frame.ErrEncoding
)

// TransportError reports a byte-level failure that ended the session.
type TransportError struct {
	Op  string // "open", "read" or "write"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("session: transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
