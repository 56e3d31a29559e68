package halsim

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

// AddPeer puts a remote publisher in range and returns its instance id.
// Live subscribe sessions for the same service discover it at once.
func (h *HAL) AddPeer(p Peer) (uint32, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, ErrClosed
	}
	h.nextPeer++
	p.InstanceID = h.nextPeer
	p.ServiceSpecificInfo = bytes.Clone(p.ServiceSpecificInfo)
	h.peers[p.InstanceID] = &p

	h.announce(&p)
	return p.InstanceID, nil
}

// RotatePeerMAC gives a peer a new address and re-announces it.
func (h *HAL) RotatePeerMAC(instanceID uint32, mac hal.MAC) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	p, ok := h.peers[instanceID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPeerNotFound, instanceID)
	}
	h.logger.Debug("halsim: peer MAC rotated", "peer", instanceID, "old", p.MAC, "new", mac)
	p.MAC = mac
	h.announce(p)
	return nil
}

// SendFromPeer delivers a message from a peer to every live session of
// its service.
func (h *HAL) SendFromPeer(instanceID uint32, message []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	p, ok := h.peers[instanceID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPeerNotFound, instanceID)
	}
	if h.cb == nil {
		return ErrNotAttached
	}
	cb, peer, msg := h.cb, *p, bytes.Clone(message)
	for _, id := range h.sessionsFor(p.ServiceName, 0) {
		h.answer(func() { cb.OnMessageReceived(id, peer.InstanceID, peer.MAC, msg) })
	}
	return nil
}

// announce emits a match on every subscribe session looking for the peer's
// service. Called with h.mu held.
func (h *HAL) announce(p *Peer) {
	if h.cb == nil || !h.enabled {
		return
	}
	cb, peer := h.cb, *p
	for _, id := range h.sessionsFor(p.ServiceName, hal.OpSubscribe) {
		h.answer(func() { cb.OnMatch(id, peer.InstanceID, peer.MAC, peer.ServiceSpecificInfo, nil) })
	}
}

// sessionsFor returns the ids of live sessions for service, limited to op
// unless op is 0. Called with h.mu held.
func (h *HAL) sessionsFor(service string, op hal.Op) []uint32 {
	var ids []uint32
	for id, s := range h.sessions {
		if s.serviceName == service && (op == 0 || s.op == op) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// matchingPeers returns the peers publishing service. Called with h.mu
// held.
func (h *HAL) matchingPeers(service string) []Peer {
	var out []Peer
	for _, p := range h.peers {
		if p.ServiceName == service {
			out = append(out, *p)
		}
	}
	slices.SortFunc(out, func(a, b Peer) int { return cmp.Compare(a.InstanceID, b.InstanceID) })
	return out
}

// Terminate ends a session as the firmware would, e.g. when its count or
// TTL ran out.
func (h *HAL) Terminate(pubSubID uint32, reason hal.TerminateReason) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	s, ok := h.sessions[pubSubID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrSessionNotFound, pubSubID)
	}
	if h.cb == nil {
		return ErrNotAttached
	}
	delete(h.sessions, pubSubID)

	cb := h.cb
	if s.op == hal.OpSubscribe {
		h.answer(func() { cb.OnSubscribeTerminated(pubSubID, reason) })
	} else {
		h.answer(func() { cb.OnPublishTerminated(pubSubID, reason) })
	}
	return nil
}

// NanDown drops the radio: every session is lost and the coordinator is
// told why.
func (h *HAL) NanDown(status hal.Status) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.cb == nil {
		return ErrNotAttached
	}
	h.enabled = false
	clear(h.sessions)

	cb := h.cb
	h.answer(func() { cb.OnNanDown(status) })
	return nil
}

// JoinCluster reports that the radio merged into another cluster.
func (h *HAL) JoinCluster(clusterMAC hal.MAC) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.cb == nil {
		return ErrNotAttached
	}
	cb := h.cb
	h.answer(func() { cb.OnClusterChange(hal.ClusterJoined, clusterMAC) })
	return nil
}
