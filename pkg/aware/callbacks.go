package aware

import (
	"bytes"

	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

// The exported methods below implement hal.Callbacks. They only enqueue;
// the unexported handlers run on the dispatch goroutine.

func (m *Manager) postCallback(kind hal.CallbackKind, step func()) {
	if err := m.post(step); err != nil {
		m.logger.Debug("aware: dropping HAL callback", "callback", kind, "error", err)
	}
}

// OnConfigCompleted implements hal.Callbacks.
func (m *Manager) OnConfigCompleted(txID uint16) {
	m.postCallback(hal.CallbackConfigCompleted, func() { m.onConfigCompleted(txID) })
}

// OnConfigFailed implements hal.Callbacks.
func (m *Manager) OnConfigFailed(txID uint16, status hal.Status) {
	m.postCallback(hal.CallbackConfigFailed, func() { m.onConfigFailed(txID, status) })
}

// OnDisableCompleted implements hal.Callbacks.
func (m *Manager) OnDisableCompleted(txID uint16) {
	m.postCallback(hal.CallbackDisableCompleted, func() { m.onDisableCompleted(txID) })
}

// OnPublishSuccess implements hal.Callbacks.
func (m *Manager) OnPublishSuccess(txID uint16, pubSubID uint32) {
	m.postCallback(hal.CallbackPublishSuccess, func() {
		m.onSessionSuccess(hal.CallbackPublishSuccess, hal.OpPublish, txID, pubSubID)
	})
}

// OnPublishFail implements hal.Callbacks.
func (m *Manager) OnPublishFail(txID uint16, status hal.Status) {
	m.postCallback(hal.CallbackPublishFail, func() {
		m.onSessionFail(hal.CallbackPublishFail, hal.OpPublish, txID, status)
	})
}

// OnPublishTerminated implements hal.Callbacks.
func (m *Manager) OnPublishTerminated(pubSubID uint32, reason hal.TerminateReason) {
	m.postCallback(hal.CallbackPublishTerminated, func() {
		m.onSessionTerminated(hal.CallbackPublishTerminated, SessionPublish, pubSubID, reason)
	})
}

// OnSubscribeSuccess implements hal.Callbacks.
func (m *Manager) OnSubscribeSuccess(txID uint16, pubSubID uint32) {
	m.postCallback(hal.CallbackSubscribeSuccess, func() {
		m.onSessionSuccess(hal.CallbackSubscribeSuccess, hal.OpSubscribe, txID, pubSubID)
	})
}

// OnSubscribeFail implements hal.Callbacks.
func (m *Manager) OnSubscribeFail(txID uint16, status hal.Status) {
	m.postCallback(hal.CallbackSubscribeFail, func() {
		m.onSessionFail(hal.CallbackSubscribeFail, hal.OpSubscribe, txID, status)
	})
}

// OnSubscribeTerminated implements hal.Callbacks.
func (m *Manager) OnSubscribeTerminated(pubSubID uint32, reason hal.TerminateReason) {
	m.postCallback(hal.CallbackSubscribeTerminated, func() {
		m.onSessionTerminated(hal.CallbackSubscribeTerminated, SessionSubscribe, pubSubID, reason)
	})
}

// OnStopCompleted implements hal.Callbacks.
func (m *Manager) OnStopCompleted(txID uint16) {
	m.postCallback(hal.CallbackStopCompleted, func() { m.onStopCompleted(txID) })
}

// OnMessageSendSuccess implements hal.Callbacks.
func (m *Manager) OnMessageSendSuccess(txID uint16) {
	m.postCallback(hal.CallbackMessageSendSuccess, func() {
		m.onMessageSendResult(hal.CallbackMessageSendSuccess, txID, hal.StatusSuccess)
	})
}

// OnMessageSendFail implements hal.Callbacks.
func (m *Manager) OnMessageSendFail(txID uint16, status hal.Status) {
	m.postCallback(hal.CallbackMessageSendFail, func() {
		m.onMessageSendResult(hal.CallbackMessageSendFail, txID, status)
	})
}

// OnMatch implements hal.Callbacks.
func (m *Manager) OnMatch(pubSubID uint32, peerID uint32, mac hal.MAC, serviceSpecificInfo []byte, matchFilter []byte) {
	ssi, filter := bytes.Clone(serviceSpecificInfo), bytes.Clone(matchFilter)
	m.postCallback(hal.CallbackMatch, func() { m.onMatch(pubSubID, peerID, mac, ssi, filter) })
}

// OnMessageReceived implements hal.Callbacks.
func (m *Manager) OnMessageReceived(pubSubID uint32, peerID uint32, mac hal.MAC, message []byte) {
	msg := bytes.Clone(message)
	m.postCallback(hal.CallbackMessageReceived, func() { m.onMessageReceived(pubSubID, peerID, mac, msg) })
}

// OnInterfaceAddressChange implements hal.Callbacks.
func (m *Manager) OnInterfaceAddressChange(mac hal.MAC) {
	m.postCallback(hal.CallbackInterfaceAddressChange, func() { m.onInterfaceAddressChange(mac) })
}

// OnClusterChange implements hal.Callbacks.
func (m *Manager) OnClusterChange(event hal.ClusterEvent, mac hal.MAC) {
	m.postCallback(hal.CallbackClusterChange, func() { m.onClusterChange(event, mac) })
}

// OnNanDown implements hal.Callbacks.
func (m *Manager) OnNanDown(status hal.Status) {
	m.postCallback(hal.CallbackNanDown, func() { m.onNanDown(status) })
}

// OnCapabilitiesUpdate implements hal.Callbacks.
func (m *Manager) OnCapabilitiesUpdate(txID uint16, caps hal.Capabilities) {
	m.postCallback(hal.CallbackCapabilitiesUpdate, func() { m.onCapabilitiesUpdate(txID, caps) })
}

// resolve removes the transaction a callback answers. Unknown ids and
// callbacks that do not fit the transaction's command are logged and
// ignored; in both cases the id is no longer pending afterwards.
func (m *Manager) resolve(cb *log.CallbackEvent, ops ...hal.Op) (Transaction, bool) {
	m.metrics.CallbackReceived(cb.Kind)

	tx, ok := m.transactions.Resolve(cb.TxID)
	m.metrics.SetPendingTransactions(m.transactions.Len())
	if !ok {
		m.logger.Warn("aware: callback for unknown transaction", "callback", cb.Kind, "tx", cb.TxID)
		m.metrics.UnknownTransaction(cb.Kind)
		cb.Unknown = true
		m.traceCallback(0, 0, cb)
		m.traceError(cb.TxID, "unknown transaction", cb.Kind.String())
		return Transaction{}, false
	}

	for _, op := range ops {
		if tx.Op == op {
			return tx, true
		}
	}
	m.logger.Warn("aware: callback does not match transaction", "callback", cb.Kind, "tx", cb.TxID, "op", tx.Op)
	m.traceCallback(tx.ClientID, tx.SessionID, cb)
	m.traceError(cb.TxID, "callback does not match command "+tx.Op.String(), cb.Kind.String())
	return Transaction{}, false
}

func (m *Manager) onConfigCompleted(txID uint16) {
	cb := &log.CallbackEvent{Kind: hal.CallbackConfigCompleted, TxID: txID}
	tx, ok := m.resolve(cb, hal.OpEnableAndConfigure)
	if !ok {
		return
	}

	if txID != m.configTx {
		m.logger.Debug("aware: superseded configuration completed", "tx", txID, "config", tx.Config)
		m.delivered(cb, false)
		m.traceCallback(tx.ClientID, 0, cb)
		return
	}
	m.configTx = 0

	config := tx.Config
	m.current = &config
	m.traceState(log.StateEntityDevice, 0, 0, "", "configured", config.String())

	n := 0
	for _, id := range m.clients.ids() {
		c, _ := m.clients.get(id)
		if c.wants(ListenConfigCompleted) {
			c.listener.OnConfigCompleted(config)
			n++
		}
	}
	m.delivered(cb, n > 0)
	m.traceCallback(tx.ClientID, 0, cb)
}

func (m *Manager) onConfigFailed(txID uint16, status hal.Status) {
	cb := &log.CallbackEvent{Kind: hal.CallbackConfigFailed, TxID: txID, Status: statusPtr(status)}
	tx, ok := m.resolve(cb, hal.OpEnableAndConfigure)
	if !ok {
		return
	}
	m.configFailed(tx, cb, status)
}

func (m *Manager) configFailed(tx Transaction, cb *log.CallbackEvent, status hal.Status) {
	// A newer configuration may already be in flight; only roll back our own.
	if m.requested != nil && *m.requested == tx.Config {
		m.requested = cloneConfig(m.current)
	}

	c, ok := m.clients.get(tx.ClientID)
	deliver := ok && c.wants(ListenConfigFailed)
	if deliver {
		c.listener.OnConfigFailed(failReasonFor(status))
	}
	m.delivered(cb, deliver)
	m.traceCallback(tx.ClientID, 0, cb)
}

func (m *Manager) onDisableCompleted(txID uint16) {
	cb := &log.CallbackEvent{Kind: hal.CallbackDisableCompleted, TxID: txID}
	if _, ok := m.resolve(cb, hal.OpDisable); !ok {
		return
	}
	// A configuration issued after the disable keeps the radio enabled.
	if m.requested == nil {
		m.current = nil
		m.traceState(log.StateEntityDevice, 0, 0, "disabling", "disabled", "")
	}
	m.delivered(cb, false)
	m.traceCallback(0, 0, cb)
}

func (m *Manager) onSessionSuccess(kind hal.CallbackKind, op hal.Op, txID uint16, pubSubID uint32) {
	cb := &log.CallbackEvent{Kind: kind, TxID: txID, PubSubID: pubSubID}
	tx, ok := m.resolve(cb, op)
	if !ok {
		return
	}
	m.delivered(cb, false)
	m.traceCallback(tx.ClientID, tx.SessionID, cb)

	s, ok := m.sessions.get(tx.ClientID, tx.SessionID)
	if !ok {
		// The session went away while the command was in flight. The HAL
		// now runs a session nobody owns; stop it unless a live session
		// holds the same id.
		if _, owned := m.sessions.lookupHalID(pubSubID); pubSubID != 0 && !owned {
			m.logger.Debug("aware: stopping orphaned HAL session", "op", op, "pubsub_id", pubSubID)
			stop := hal.OpStopPublish
			if op == hal.OpSubscribe {
				stop = hal.OpStopSubscribe
			}
			m.stopHalID(stop, pubSubID, 0, 0)
		}
		return
	}

	if s.halID != pubSubID {
		old := s.halID
		m.sessions.assignHalID(s, pubSubID)
		m.logger.Debug("aware: session assigned HAL id",
			"client", s.clientID, "session", s.id, "pubsub_id", pubSubID, "previous", old)
		m.traceState(log.StateEntitySession, s.clientID, s.id, "", "active", s.kind.String())
	}
}

func (m *Manager) onSessionFail(kind hal.CallbackKind, op hal.Op, txID uint16, status hal.Status) {
	cb := &log.CallbackEvent{Kind: kind, TxID: txID, Status: statusPtr(status)}
	tx, ok := m.resolve(cb, op)
	if !ok {
		return
	}
	m.sessionFailed(tx, cb, status)
}

func (m *Manager) sessionFailed(tx Transaction, cb *log.CallbackEvent, status hal.Status) {
	reason := failReasonFor(status)
	s, ok := m.sessions.get(tx.ClientID, tx.SessionID)

	deliver := false
	if ok {
		switch tx.Op {
		case hal.OpPublish:
			if deliver = s.wants(ListenPublishFail); deliver {
				s.listener.OnPublishFail(reason)
			}
		case hal.OpSubscribe:
			if deliver = s.wants(ListenSubscribeFail); deliver {
				s.listener.OnSubscribeFail(reason)
			}
		}
	}
	m.delivered(cb, deliver)
	m.traceCallback(tx.ClientID, tx.SessionID, cb)
}

func (m *Manager) onSessionTerminated(kind hal.CallbackKind, sessionKind SessionKind, pubSubID uint32, reason hal.TerminateReason) {
	m.metrics.CallbackReceived(kind)
	cb := &log.CallbackEvent{Kind: kind, PubSubID: pubSubID, Reason: reasonPtr(reason)}

	s, ok := m.sessions.lookupHalID(pubSubID)
	if !ok || s.kind != sessionKind {
		m.logger.Debug("aware: termination for unknown session", "callback", kind, "pubsub_id", pubSubID)
		m.delivered(cb, false)
		m.traceCallback(0, 0, cb)
		return
	}

	m.sessions.clearHalID(s)
	m.traceState(log.StateEntitySession, s.clientID, s.id, "active", "terminated", reason.String())

	mapped := terminateReasonFor(reason)
	deliver := false
	switch sessionKind {
	case SessionPublish:
		if deliver = s.wants(ListenPublishTerminated); deliver {
			s.listener.OnPublishTerminated(mapped)
		}
	case SessionSubscribe:
		if deliver = s.wants(ListenSubscribeTerminated); deliver {
			s.listener.OnSubscribeTerminated(mapped)
		}
	}
	m.delivered(cb, deliver)
	m.traceCallback(s.clientID, s.id, cb)
}

func (m *Manager) onStopCompleted(txID uint16) {
	cb := &log.CallbackEvent{Kind: hal.CallbackStopCompleted, TxID: txID}
	tx, ok := m.resolve(cb, hal.OpStopPublish, hal.OpStopSubscribe)
	if !ok {
		return
	}
	m.delivered(cb, false)
	m.traceCallback(tx.ClientID, tx.SessionID, cb)
}

func (m *Manager) onMessageSendResult(kind hal.CallbackKind, txID uint16, status hal.Status) {
	cb := &log.CallbackEvent{Kind: kind, TxID: txID}
	if !status.IsSuccess() {
		cb.Status = statusPtr(status)
	}
	tx, ok := m.resolve(cb, hal.OpSendMessage)
	if !ok {
		return
	}
	m.messageSent(tx, cb, status)
}

func (m *Manager) messageSent(tx Transaction, cb *log.CallbackEvent, status hal.Status) {
	s, ok := m.sessions.get(tx.ClientID, tx.SessionID)

	deliver := false
	if ok {
		if status.IsSuccess() {
			if deliver = s.wants(ListenMessageSendSuccess); deliver {
				s.listener.OnMessageSendSuccess(tx.MessageID)
			}
		} else if deliver = s.wants(ListenMessageSendFail); deliver {
			s.listener.OnMessageSendFail(tx.MessageID, failReasonFor(status))
		}
	}
	m.delivered(cb, deliver)
	m.traceCallback(tx.ClientID, tx.SessionID, cb)
}

func (m *Manager) onMatch(pubSubID, peerID uint32, mac hal.MAC, ssi, filter []byte) {
	m.metrics.CallbackReceived(hal.CallbackMatch)
	m.peers.Observe(pubSubID, peerID, mac)

	cb := &log.CallbackEvent{Kind: hal.CallbackMatch, PubSubID: pubSubID, PeerID: peerID, MAC: macString(mac)}
	s, ok := m.sessions.lookupHalID(pubSubID)
	deliver := ok && s.wants(ListenMatch)
	if deliver {
		s.listener.OnMatch(peerID, ssi, filter)
	}
	m.delivered(cb, deliver)
	if ok {
		m.traceCallback(s.clientID, s.id, cb)
	} else {
		m.traceCallback(0, 0, cb)
	}
}

func (m *Manager) onMessageReceived(pubSubID, peerID uint32, mac hal.MAC, message []byte) {
	m.metrics.CallbackReceived(hal.CallbackMessageReceived)
	m.peers.Observe(pubSubID, peerID, mac)

	cb := &log.CallbackEvent{Kind: hal.CallbackMessageReceived, PubSubID: pubSubID, PeerID: peerID, MAC: macString(mac)}
	s, ok := m.sessions.lookupHalID(pubSubID)
	deliver := ok && s.wants(ListenMessageReceived)
	if deliver {
		s.listener.OnMessageReceived(peerID, message)
	}
	m.delivered(cb, deliver)
	if ok {
		m.traceCallback(s.clientID, s.id, cb)
	} else {
		m.traceCallback(0, 0, cb)
	}
}

func (m *Manager) onInterfaceAddressChange(mac hal.MAC) {
	m.metrics.CallbackReceived(hal.CallbackInterfaceAddressChange)
	m.interfaceAddress = mac

	cb := &log.CallbackEvent{Kind: hal.CallbackInterfaceAddressChange, MAC: macString(mac)}
	m.delivered(cb, m.notifyIdentityChanged() > 0)
	m.traceCallback(0, 0, cb)
}

func (m *Manager) onClusterChange(event hal.ClusterEvent, mac hal.MAC) {
	m.metrics.CallbackReceived(hal.CallbackClusterChange)
	cb := &log.CallbackEvent{Kind: hal.CallbackClusterChange, MAC: macString(mac)}

	switch event {
	case hal.ClusterStarted, hal.ClusterJoined:
		m.clusterID = mac
		m.traceState(log.StateEntityDevice, 0, 0, "", "cluster "+event.String(), macString(mac))
		m.delivered(cb, m.notifyIdentityChanged() > 0)
	default:
		m.logger.Warn("aware: unknown cluster event", "event", event)
		m.delivered(cb, false)
	}
	m.traceCallback(0, 0, cb)
}

// notifyIdentityChanged tells every interested client and returns how many
// were told.
func (m *Manager) notifyIdentityChanged() int {
	n := 0
	for _, id := range m.clients.ids() {
		c, _ := m.clients.get(id)
		if c.wants(ListenIdentityChanged) {
			c.listener.OnIdentityChanged()
			n++
		}
	}
	return n
}

func (m *Manager) onNanDown(status hal.Status) {
	m.metrics.CallbackReceived(hal.CallbackNanDown)
	cb := &log.CallbackEvent{Kind: hal.CallbackNanDown, Status: statusPtr(status)}

	m.logger.Info("aware: NAN down", "status", status)
	m.sessions.clearAllHalIDs()
	m.current = nil
	m.requested = nil
	m.configTx = 0
	m.traceState(log.StateEntityDevice, 0, 0, "", "down", status.String())

	reason := failReasonFor(status)
	n := 0
	for _, id := range m.clients.ids() {
		c, _ := m.clients.get(id)
		if c.wants(ListenNanDown) {
			c.listener.OnNanDown(reason)
			n++
		}
	}
	m.delivered(cb, n > 0)
	m.traceCallback(0, 0, cb)
}

func (m *Manager) onCapabilitiesUpdate(txID uint16, caps hal.Capabilities) {
	cb := &log.CallbackEvent{Kind: hal.CallbackCapabilitiesUpdate, TxID: txID}
	tx, ok := m.resolve(cb, hal.OpGetCapabilities)
	if !ok {
		return
	}

	m.capabilities = &caps
	deliver := tx.OnCapabilities != nil
	if deliver {
		tx.OnCapabilities(caps)
	}
	m.delivered(cb, deliver)
	m.traceCallback(0, 0, cb)
}
