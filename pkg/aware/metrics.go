package aware

import "github.com/awaremux/awaremux-go/pkg/hal"

// Metrics receives coordinator measurements. Methods are called from the
// dispatch goroutine and must not block.
type Metrics interface {
	CommandIssued(op hal.Op)
	CommandRejected(op hal.Op)
	CallbackReceived(kind hal.CallbackKind)

	// CallbackDelivered and CallbackSuppressed count results that did or
	// did not reach a listener.
	CallbackDelivered(kind hal.CallbackKind)
	CallbackSuppressed(kind hal.CallbackKind)

	UnknownTransaction(kind hal.CallbackKind)

	SetPendingTransactions(n int)
	SetClients(n int)
	SetSessions(n int)
}

type noopMetrics struct{}

func (noopMetrics) CommandIssued(hal.Op)                {}
func (noopMetrics) CommandRejected(hal.Op)              {}
func (noopMetrics) CallbackReceived(hal.CallbackKind)   {}
func (noopMetrics) CallbackDelivered(hal.CallbackKind)  {}
func (noopMetrics) CallbackSuppressed(hal.CallbackKind) {}
func (noopMetrics) UnknownTransaction(hal.CallbackKind) {}
func (noopMetrics) SetPendingTransactions(int)          {}
func (noopMetrics) SetClients(int)                      {}
func (noopMetrics) SetSessions(int)                     {}
