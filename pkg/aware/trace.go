package aware

import (
	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

func (m *Manager) trace(event log.Event) {
	event.Timestamp = m.now()
	event.InstanceID = m.instanceID
	m.plog.Log(event)
}

func (m *Manager) traceCommand(clientID ClientID, sessionID SessionID, cmd *log.CommandEvent) {
	m.trace(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryCommand,
		ClientID:  int(clientID),
		SessionID: int(sessionID),
		Command:   cmd,
	})
}

func (m *Manager) traceCallback(clientID ClientID, sessionID SessionID, cb *log.CallbackEvent) {
	m.trace(log.Event{
		Direction: log.DirectionIn,
		Category:  log.CategoryCallback,
		ClientID:  int(clientID),
		SessionID: int(sessionID),
		Callback:  cb,
	})
}

func (m *Manager) traceState(entity log.StateEntity, clientID ClientID, sessionID SessionID, oldState, newState, reason string) {
	m.trace(log.Event{
		Category:  log.CategoryState,
		ClientID:  int(clientID),
		SessionID: int(sessionID),
		StateChange: &log.StateChangeEvent{
			Entity:   entity,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

func (m *Manager) traceError(txID uint16, message, context string) {
	m.trace(log.Event{
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Message: message,
			TxID:    txID,
			Context: context,
		},
	})
}

// delivered records whether a callback reached a listener.
func (m *Manager) delivered(cb *log.CallbackEvent, ok bool) {
	cb.Delivered = ok
	if ok {
		m.metrics.CallbackDelivered(cb.Kind)
	} else {
		m.metrics.CallbackSuppressed(cb.Kind)
	}
}

func statusPtr(s hal.Status) *hal.Status {
	return &s
}

func reasonPtr(r hal.TerminateReason) *hal.TerminateReason {
	return &r
}

func macString(mac hal.MAC) string {
	if mac.IsZero() {
		return ""
	}
	return mac.String()
}

func (m *Manager) updateGauges() {
	m.metrics.SetPendingTransactions(m.transactions.Len())
	m.metrics.SetClients(m.clients.len())
	m.metrics.SetSessions(m.sessions.len())
}
