package aware

import "github.com/awaremux/awaremux-go/pkg/hal"

type peerKey struct {
	pubSubID uint32
	peerID   uint32
}

// PeerIdentityMap remembers the last MAC address seen for each
// (publish/subscribe id, peer instance id) pair. Entries never expire: a
// peer that goes quiet keeps its last known address, so MAC rotation stays
// invisible to applications that address peers by instance id.
type PeerIdentityMap struct {
	peers map[peerKey]hal.MAC
}

// NewPeerIdentityMap creates an empty map.
func NewPeerIdentityMap() *PeerIdentityMap {
	return &PeerIdentityMap{peers: make(map[peerKey]hal.MAC)}
}

// Observe records mac as the current address of the peer, replacing any
// earlier one.
func (p *PeerIdentityMap) Observe(pubSubID, peerID uint32, mac hal.MAC) {
	p.peers[peerKey{pubSubID, peerID}] = mac
}

// Resolve returns the peer's current address.
func (p *PeerIdentityMap) Resolve(pubSubID, peerID uint32) (hal.MAC, bool) {
	mac, ok := p.peers[peerKey{pubSubID, peerID}]
	return mac, ok
}

// Len returns the number of known peers.
func (p *PeerIdentityMap) Len() int {
	return len(p.peers)
}
