package aware

import (
	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

// Handlers in this file run on the dispatch goroutine.

// issue mints a transaction for tx, traces the command and hands it to the
// HAL through send. If the HAL refuses the command, the transaction is
// resolved at once and the originator gets the failure a HAL
// StatusInternalFailure would have produced.
func (m *Manager) issue(tx Transaction, cmd log.CommandEvent, send func(txID uint16) error) {
	txID, err := m.transactions.Allocate(tx)
	if err != nil {
		m.logger.Error("aware: cannot allocate transaction", "op", tx.Op, "error", err)
		m.traceError(0, err.Error(), tx.Op.String())
		m.metrics.CommandRejected(tx.Op)
		m.failTransaction(tx, hal.StatusInternalFailure)
		return
	}

	cmd.TxID = txID
	cmd.Op = tx.Op
	if tx.Op == hal.OpEnableAndConfigure {
		m.configTx = txID
	}

	if err := send(txID); err != nil {
		m.transactions.Resolve(txID)
		m.logger.Warn("aware: HAL rejected command", "op", tx.Op, "tx", txID, "error", err)
		cmd.Rejected = true
		m.traceCommand(tx.ClientID, tx.SessionID, &cmd)
		m.metrics.CommandRejected(tx.Op)
		m.failTransaction(tx, hal.StatusInternalFailure)
		m.updateGauges()
		return
	}

	m.traceCommand(tx.ClientID, tx.SessionID, &cmd)
	m.metrics.CommandIssued(tx.Op)
	m.updateGauges()
}

// failTransaction reports a command that never reached the radio as if the
// HAL had answered with status.
func (m *Manager) failTransaction(tx Transaction, status hal.Status) {
	switch tx.Op {
	case hal.OpEnableAndConfigure:
		m.configFailed(tx, &log.CallbackEvent{Kind: hal.CallbackConfigFailed, Status: statusPtr(status)}, status)
	case hal.OpPublish:
		m.sessionFailed(tx, &log.CallbackEvent{Kind: hal.CallbackPublishFail, Status: statusPtr(status)}, status)
	case hal.OpSubscribe:
		m.sessionFailed(tx, &log.CallbackEvent{Kind: hal.CallbackSubscribeFail, Status: statusPtr(status)}, status)
	case hal.OpSendMessage:
		m.messageSent(tx, &log.CallbackEvent{Kind: hal.CallbackMessageSendFail, Status: statusPtr(status)}, status)
	case hal.OpDisable:
		m.requested = nil
	}
}

func (m *Manager) connect(clientID ClientID, listener EventListener, mask EventMask) {
	if !m.clients.add(&client{id: clientID, listener: listener, mask: mask}) {
		m.logger.Warn("aware: client already connected", "client", clientID)
		return
	}
	m.logger.Debug("aware: client connected", "client", clientID, "mask", mask)
	m.traceState(log.StateEntityClient, clientID, 0, "", "connected", "")
	m.updateGauges()
}

func (m *Manager) disconnect(clientID ClientID) {
	c, ok := m.clients.remove(clientID)
	if !ok {
		m.logger.Debug("aware: disconnect of unknown client", "client", clientID)
		return
	}

	for sessionID := range c.sessions {
		if s, ok := m.sessions.remove(clientID, sessionID); ok {
			m.stopSession(s)
		}
	}

	m.logger.Debug("aware: client disconnected", "client", clientID, "sessions", len(c.sessions))
	m.traceState(log.StateEntityClient, clientID, 0, "connected", "disconnected", "")
	m.updateGauges()

	if c.config != nil {
		m.reconfigure()
	}
}

func (m *Manager) requestConfig(clientID ClientID, request hal.ConfigRequest) {
	c, ok := m.clients.get(clientID)
	if !ok {
		m.logger.Debug("aware: config request from unknown client", "client", clientID)
		return
	}
	c.config = &request

	merged, _ := MergeConfigs(m.clients.configRequests()...)
	m.issueConfig(clientID, merged)
}

// reconfigure brings the radio in line with the remaining clients after the
// set of configuration contributors changed.
func (m *Manager) reconfigure() {
	merged, ok := MergeConfigs(m.clients.configRequests()...)
	if !ok {
		if m.requested != nil || m.current != nil {
			m.issueDisable()
		}
		return
	}
	if m.requested != nil && *m.requested == merged {
		return
	}
	m.issueConfig(0, merged)
}

func (m *Manager) issueConfig(origin ClientID, merged hal.ConfigRequest) {
	m.logger.Debug("aware: configuring radio", "client", origin, "config", merged)
	m.requested = &merged
	m.configTx = 0
	m.issue(
		Transaction{Op: hal.OpEnableAndConfigure, ClientID: origin, Config: merged},
		log.CommandEvent{Config: &merged},
		func(txID uint16) error { return m.hal.EnableAndConfigure(txID, merged) },
	)
}

func (m *Manager) issueDisable() {
	m.logger.Debug("aware: disabling radio")
	m.requested = nil
	m.configTx = 0
	m.traceState(log.StateEntityDevice, 0, 0, "enabled", "disabling", "no configuration requests")
	m.issue(
		Transaction{Op: hal.OpDisable},
		log.CommandEvent{},
		func(txID uint16) error { return m.hal.Disable(txID) },
	)
}

func (m *Manager) createSession(clientID ClientID, sessionID SessionID, kind SessionKind, listener SessionListener, mask SessionMask) {
	c, ok := m.clients.get(clientID)
	if !ok {
		m.logger.Debug("aware: session for unknown client", "client", clientID, "session", sessionID)
		return
	}
	s := &session{
		clientID: clientID,
		id:       sessionID,
		kind:     kind,
		listener: listener,
		mask:     mask,
	}
	if !m.sessions.add(s) {
		m.logger.Warn("aware: session already exists", "client", clientID, "session", sessionID)
		return
	}
	c.sessions[sessionID] = struct{}{}

	m.traceState(log.StateEntitySession, clientID, sessionID, "", "created", kind.String())
	m.updateGauges()
}

func (m *Manager) destroySession(clientID ClientID, sessionID SessionID) {
	s, ok := m.sessions.remove(clientID, sessionID)
	if !ok {
		m.logger.Debug("aware: destroy of unknown session", "client", clientID, "session", sessionID)
		return
	}
	if c, ok := m.clients.get(clientID); ok {
		delete(c.sessions, sessionID)
	}

	m.stopSession(s)
	m.traceState(log.StateEntitySession, clientID, sessionID, "", "destroyed", "")
	m.updateGauges()
}

// stopSession issues a fire-and-forget stop for a session the HAL knows.
// Local state must already be gone.
func (m *Manager) stopSession(s *session) {
	if s.halID == 0 {
		return
	}
	m.stopHalID(s.stopOp(), s.halID, s.clientID, s.id)
}

func (m *Manager) stopHalID(op hal.Op, halID uint32, clientID ClientID, sessionID SessionID) {
	m.issue(
		Transaction{Op: op, ClientID: clientID, SessionID: sessionID},
		log.CommandEvent{PubSubID: halID},
		func(txID uint16) error {
			if op == hal.OpStopSubscribe {
				return m.hal.StopSubscribe(txID, halID)
			}
			return m.hal.StopPublish(txID, halID)
		},
	)
}

// liveSession returns the session if it exists and has the expected kind.
func (m *Manager) liveSession(clientID ClientID, sessionID SessionID, kind SessionKind) (*session, bool) {
	s, ok := m.sessions.get(clientID, sessionID)
	if !ok {
		m.logger.Debug("aware: operation on unknown session", "client", clientID, "session", sessionID)
		return nil, false
	}
	if s.kind != kind {
		m.logger.Warn("aware: operation does not match session kind",
			"client", clientID, "session", sessionID, "kind", s.kind, "want", kind)
		return nil, false
	}
	return s, true
}

func (m *Manager) publish(clientID ClientID, sessionID SessionID, data hal.PublishData, settings hal.PublishSettings) {
	s, ok := m.liveSession(clientID, sessionID, SessionPublish)
	if !ok {
		return
	}
	s.publishSettings = &settings

	halID := s.halID
	m.issue(
		Transaction{Op: hal.OpPublish, ClientID: clientID, SessionID: sessionID},
		log.CommandEvent{PubSubID: halID},
		func(txID uint16) error { return m.hal.Publish(txID, halID, data, settings) },
	)
}

func (m *Manager) subscribe(clientID ClientID, sessionID SessionID, data hal.SubscribeData, settings hal.SubscribeSettings) {
	s, ok := m.liveSession(clientID, sessionID, SessionSubscribe)
	if !ok {
		return
	}
	s.subscribeSettings = &settings

	halID := s.halID
	m.issue(
		Transaction{Op: hal.OpSubscribe, ClientID: clientID, SessionID: sessionID},
		log.CommandEvent{PubSubID: halID},
		func(txID uint16) error { return m.hal.Subscribe(txID, halID, data, settings) },
	)
}

func (m *Manager) sendMessage(clientID ClientID, sessionID SessionID, peerID uint32, payload []byte, messageID int) {
	s, ok := m.sessions.get(clientID, sessionID)
	if !ok {
		m.logger.Debug("aware: message on unknown session", "client", clientID, "session", sessionID)
		return
	}

	tx := Transaction{Op: hal.OpSendMessage, ClientID: clientID, SessionID: sessionID, MessageID: messageID}

	// Nothing to address without a HAL session or a known peer; fail locally.
	if s.halID == 0 {
		m.logger.Debug("aware: message on session without HAL id", "client", clientID, "session", sessionID)
		m.failTransaction(tx, hal.StatusInvalidPublishSubscribeID)
		return
	}
	halID := s.halID
	mac, ok := m.peers.Resolve(halID, peerID)
	if !ok {
		m.logger.Debug("aware: message to unknown peer", "client", clientID, "session", sessionID, "peer", peerID)
		m.failTransaction(tx, hal.StatusInvalidRequestorInstanceID)
		return
	}

	m.issue(
		tx,
		log.CommandEvent{PubSubID: halID, PeerID: peerID, MAC: mac.String(), PayloadSize: len(payload)},
		func(txID uint16) error { return m.hal.SendMessage(txID, halID, peerID, mac, payload) },
	)
}

func (m *Manager) requestCapabilities(fn func(hal.Capabilities)) {
	m.issue(
		Transaction{Op: hal.OpGetCapabilities, OnCapabilities: fn},
		log.CommandEvent{},
		func(txID uint16) error { return m.hal.GetCapabilities(txID) },
	)
}
