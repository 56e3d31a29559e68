package aware

import (
	"maps"
	"slices"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

// client is a connected application.
type client struct {
	id       ClientID
	listener EventListener
	mask     EventMask

	// config is nil until the client requests a configuration.
	config *hal.ConfigRequest

	sessions map[SessionID]struct{}
}

// wants returns true if the client has a listener interested in e.
func (c *client) wants(e EventMask) bool {
	return c.listener != nil && c.mask.Has(e)
}

// clientRegistry tracks connected clients.
type clientRegistry struct {
	clients map[ClientID]*client
}

func newClientRegistry() *clientRegistry {
	return &clientRegistry{clients: make(map[ClientID]*client)}
}

// add registers c. It returns false if the id is already connected.
func (r *clientRegistry) add(c *client) bool {
	if _, exists := r.clients[c.id]; exists {
		return false
	}
	if c.sessions == nil {
		c.sessions = make(map[SessionID]struct{})
	}
	r.clients[c.id] = c
	return true
}

func (r *clientRegistry) get(id ClientID) (*client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

func (r *clientRegistry) remove(id ClientID) (*client, bool) {
	c, ok := r.clients[id]
	if ok {
		delete(r.clients, id)
	}
	return c, ok
}

func (r *clientRegistry) len() int {
	return len(r.clients)
}

// ids returns the connected client ids in ascending order so that events
// fan out deterministically.
func (r *clientRegistry) ids() []ClientID {
	return slices.Sorted(maps.Keys(r.clients))
}

// configRequests returns the requests of all clients that made one, in
// client id order.
func (r *clientRegistry) configRequests() []hal.ConfigRequest {
	var reqs []hal.ConfigRequest
	for _, id := range r.ids() {
		if c := r.clients[id]; c.config != nil {
			reqs = append(reqs, *c.config)
		}
	}
	return reqs
}
