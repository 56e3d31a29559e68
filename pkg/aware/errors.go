package aware

import "errors"

// Manager errors.
var (
	ErrStopped               = errors.New("manager stopped")
	ErrAlreadyStarted        = errors.New("manager already started")
	ErrInvalidClient         = errors.New("invalid client id")
	ErrInvalidSession        = errors.New("invalid session id")
	ErrInvalidSessionKind    = errors.New("invalid session kind")
	ErrTransactionsExhausted = errors.New("no free transaction id")
)
