package halsim

import "errors"

// Simulator errors.
var (
	// ErrNotAttached is returned when a command arrives before Attach.
	ErrNotAttached = errors.New("no callbacks attached")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("simulator closed")

	// ErrPeerNotFound is returned for an unknown peer instance id.
	ErrPeerNotFound = errors.New("peer not found")

	// ErrSessionNotFound is returned for an unknown publish/subscribe id.
	ErrSessionNotFound = errors.New("session not found")
)
