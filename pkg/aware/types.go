package aware

// ClientID identifies a connected application (its uid). Valid ids are
// positive.
type ClientID int

// SessionID identifies a session within its client. Valid ids are positive.
type SessionID int

// SessionKind is the discovery role of a session.
type SessionKind uint8

const (
	// SessionPublish advertises a service.
	SessionPublish SessionKind = 1

	// SessionSubscribe looks for a service.
	SessionSubscribe SessionKind = 2
)

// String returns the session kind name.
func (k SessionKind) String() string {
	switch k {
	case SessionPublish:
		return "PUBLISH"
	case SessionSubscribe:
		return "SUBSCRIBE"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true for a known session kind.
func (k SessionKind) IsValid() bool {
	return k == SessionPublish || k == SessionSubscribe
}

// EventMask selects which client events are delivered to an EventListener.
type EventMask uint32

const (
	ListenConfigCompleted EventMask = 1 << iota
	ListenConfigFailed
	ListenIdentityChanged
	ListenNanDown

	// ListenAllEvents enables every client event.
	ListenAllEvents = ListenConfigCompleted | ListenConfigFailed | ListenIdentityChanged | ListenNanDown
)

// Has returns true if every bit of e is set in m.
func (m EventMask) Has(e EventMask) bool {
	return m&e == e
}

// SessionMask selects which session events are delivered to a
// SessionListener.
type SessionMask uint32

const (
	ListenPublishFail SessionMask = 1 << iota
	ListenPublishTerminated
	ListenSubscribeFail
	ListenSubscribeTerminated
	ListenMatch
	ListenMessageReceived
	ListenMessageSendSuccess
	ListenMessageSendFail

	// ListenAllSessionEvents enables every session event.
	ListenAllSessionEvents = ListenPublishFail | ListenPublishTerminated |
		ListenSubscribeFail | ListenSubscribeTerminated |
		ListenMatch | ListenMessageReceived |
		ListenMessageSendSuccess | ListenMessageSendFail
)

// Has returns true if every bit of e is set in m.
func (m SessionMask) Has(e SessionMask) bool {
	return m&e == e
}
