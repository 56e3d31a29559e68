package aware

import (
	"cmp"
	"maps"
	"slices"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

type sessionKey struct {
	clientID  ClientID
	sessionID SessionID
}

// session is a client's publish or subscribe context.
type session struct {
	clientID ClientID
	id       SessionID
	kind     SessionKind
	listener SessionListener
	mask     SessionMask

	// halID is 0 until the HAL accepts the first publish/subscribe and
	// again after the HAL terminates the session.
	halID uint32

	// Last settings sent to the HAL.
	publishSettings   *hal.PublishSettings
	subscribeSettings *hal.SubscribeSettings
}

func (s *session) key() sessionKey {
	return sessionKey{s.clientID, s.id}
}

// wants returns true if the session has a listener interested in e.
func (s *session) wants(e SessionMask) bool {
	return s.listener != nil && s.mask.Has(e)
}

// stopOp returns the command that ends the session on the HAL.
func (s *session) stopOp() hal.Op {
	if s.kind == SessionSubscribe {
		return hal.OpStopSubscribe
	}
	return hal.OpStopPublish
}

// sessionRegistry tracks sessions by owner and by HAL id.
type sessionRegistry struct {
	sessions map[sessionKey]*session
	byHalID  map[uint32]sessionKey
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[sessionKey]*session),
		byHalID:  make(map[uint32]sessionKey),
	}
}

// add registers s. It returns false if the key is taken.
func (r *sessionRegistry) add(s *session) bool {
	if _, exists := r.sessions[s.key()]; exists {
		return false
	}
	r.sessions[s.key()] = s
	return true
}

func (r *sessionRegistry) get(clientID ClientID, sessionID SessionID) (*session, bool) {
	s, ok := r.sessions[sessionKey{clientID, sessionID}]
	return s, ok
}

// remove deletes the session and its HAL id index entry.
func (r *sessionRegistry) remove(clientID ClientID, sessionID SessionID) (*session, bool) {
	key := sessionKey{clientID, sessionID}
	s, ok := r.sessions[key]
	if !ok {
		return nil, false
	}
	delete(r.sessions, key)
	r.unindex(s)
	return s, true
}

// lookupHalID returns the live session the HAL knows by halID.
func (r *sessionRegistry) lookupHalID(halID uint32) (*session, bool) {
	if halID == 0 {
		return nil, false
	}
	key, ok := r.byHalID[halID]
	if !ok {
		return nil, false
	}
	return r.sessions[key], true
}

// assignHalID records the HAL id of s. A stale owner of the same id loses it.
func (r *sessionRegistry) assignHalID(s *session, halID uint32) {
	if s.halID == halID {
		return
	}
	r.unindex(s)
	if prev, ok := r.lookupHalID(halID); ok && prev != s {
		prev.halID = 0
	}
	s.halID = halID
	if halID != 0 {
		r.byHalID[halID] = s.key()
	}
}

// clearHalID marks s as no longer known to the HAL.
func (r *sessionRegistry) clearHalID(s *session) {
	r.unindex(s)
	s.halID = 0
}

// clearAllHalIDs forgets every HAL id, e.g. after the radio went down.
func (r *sessionRegistry) clearAllHalIDs() {
	for _, s := range r.sessions {
		s.halID = 0
	}
	clear(r.byHalID)
}

func (r *sessionRegistry) unindex(s *session) {
	if s.halID == 0 {
		return
	}
	if key, ok := r.byHalID[s.halID]; ok && key == s.key() {
		delete(r.byHalID, s.halID)
	}
}

func (r *sessionRegistry) len() int {
	return len(r.sessions)
}

// keys returns all session keys ordered by client, then session.
func (r *sessionRegistry) keys() []sessionKey {
	return slices.SortedFunc(maps.Keys(r.sessions), func(a, b sessionKey) int {
		if c := cmp.Compare(a.clientID, b.clientID); c != 0 {
			return c
		}
		return cmp.Compare(a.sessionID, b.sessionID)
	})
}
