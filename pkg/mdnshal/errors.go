package mdnshal

import "errors"

// Errors returned by the mDNS backend.
var (
	ErrMissingRequired = errors.New("missing required TXT record")
	ErrInvalidTXT      = errors.New("invalid TXT record")
	ErrNotAttached     = errors.New("no callbacks attached")
	ErrClosed          = errors.New("mdns backend closed")
)
