package aware

import "github.com/awaremux/awaremux-go/pkg/hal"

// EventListener receives device-wide events for one client. Methods run on
// the Manager's goroutine and must not block or call back into the Manager
// synchronously waiting for a result (Flush, Snapshot).
type EventListener interface {
	// OnConfigCompleted reports the merged configuration now in effect.
	OnConfigCompleted(config hal.ConfigRequest)
	OnConfigFailed(reason FailReason)

	// OnIdentityChanged reports that this device's discovery identity
	// (interface address or cluster) changed.
	OnIdentityChanged()

	OnNanDown(reason FailReason)
}

// SessionListener receives events for one publish or subscribe session.
// The same threading rules as EventListener apply.
type SessionListener interface {
	OnPublishFail(reason FailReason)
	OnPublishTerminated(reason TerminateReason)
	OnSubscribeFail(reason FailReason)
	OnSubscribeTerminated(reason TerminateReason)

	// OnMatch reports a discovered peer. peerID addresses the peer in
	// SendMessage independent of its current MAC address.
	OnMatch(peerID uint32, serviceSpecificInfo []byte, matchFilter []byte)
	OnMessageReceived(peerID uint32, message []byte)

	// OnMessageSendSuccess and OnMessageSendFail echo the application's
	// message id passed to SendMessage.
	OnMessageSendSuccess(messageID int)
	OnMessageSendFail(messageID int, reason FailReason)
}
