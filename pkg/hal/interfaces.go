package hal

// Commander issues commands to the radio. Every method returns as soon as
// the command is handed to the driver; the outcome arrives later through
// Callbacks, tagged with the same transaction id. A non-nil error means the
// command was not accepted at all and no callback will follow.
type Commander interface {
	EnableAndConfigure(txID uint16, config ConfigRequest) error
	Disable(txID uint16) error

	// Publish creates a publish session when pubSubID is 0 and updates the
	// existing session otherwise.
	Publish(txID uint16, pubSubID uint32, data PublishData, settings PublishSettings) error

	// Subscribe creates a subscribe session when pubSubID is 0 and updates
	// the existing session otherwise.
	Subscribe(txID uint16, pubSubID uint32, data SubscribeData, settings SubscribeSettings) error

	StopPublish(txID uint16, pubSubID uint32) error
	StopSubscribe(txID uint16, pubSubID uint32) error

	// SendMessage transmits payload to the peer at mac. The payload length is
	// len(payload).
	SendMessage(txID uint16, pubSubID uint32, peerID uint32, mac MAC, payload []byte) error

	GetCapabilities(txID uint16) error
}

// Callbacks receives HAL results and unsolicited events. Implementations
// must return quickly; the coordinator only enqueues them.
type Callbacks interface {
	OnConfigCompleted(txID uint16)
	OnConfigFailed(txID uint16, status Status)
	OnDisableCompleted(txID uint16)

	OnPublishSuccess(txID uint16, pubSubID uint32)
	OnPublishFail(txID uint16, status Status)
	OnPublishTerminated(pubSubID uint32, reason TerminateReason)

	OnSubscribeSuccess(txID uint16, pubSubID uint32)
	OnSubscribeFail(txID uint16, status Status)
	OnSubscribeTerminated(pubSubID uint32, reason TerminateReason)

	// OnStopCompleted answers StopPublish and StopSubscribe.
	OnStopCompleted(txID uint16)

	OnMessageSendSuccess(txID uint16)
	OnMessageSendFail(txID uint16, status Status)

	OnMatch(pubSubID uint32, peerID uint32, mac MAC, serviceSpecificInfo []byte, matchFilter []byte)
	OnMessageReceived(pubSubID uint32, peerID uint32, mac MAC, message []byte)

	OnInterfaceAddressChange(mac MAC)
	OnClusterChange(event ClusterEvent, mac MAC)
	OnNanDown(status Status)

	OnCapabilitiesUpdate(txID uint16, caps Capabilities)
}
