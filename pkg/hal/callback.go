package hal

// CallbackKind identifies a Callbacks method. It labels trace events and
// metrics.
type CallbackKind uint8

const (
	CallbackConfigCompleted        CallbackKind = 1
	CallbackConfigFailed           CallbackKind = 2
	CallbackDisableCompleted       CallbackKind = 3
	CallbackPublishSuccess         CallbackKind = 4
	CallbackPublishFail            CallbackKind = 5
	CallbackPublishTerminated      CallbackKind = 6
	CallbackSubscribeSuccess       CallbackKind = 7
	CallbackSubscribeFail          CallbackKind = 8
	CallbackSubscribeTerminated    CallbackKind = 9
	CallbackStopCompleted          CallbackKind = 10
	CallbackMessageSendSuccess     CallbackKind = 11
	CallbackMessageSendFail        CallbackKind = 12
	CallbackMatch                  CallbackKind = 13
	CallbackMessageReceived        CallbackKind = 14
	CallbackInterfaceAddressChange CallbackKind = 15
	CallbackClusterChange          CallbackKind = 16
	CallbackNanDown                CallbackKind = 17
	CallbackCapabilitiesUpdate     CallbackKind = 18
)

var callbackNames = map[CallbackKind]string{
	CallbackConfigCompleted:        "ConfigCompleted",
	CallbackConfigFailed:           "ConfigFailed",
	CallbackDisableCompleted:       "DisableCompleted",
	CallbackPublishSuccess:         "PublishSuccess",
	CallbackPublishFail:            "PublishFail",
	CallbackPublishTerminated:      "PublishTerminated",
	CallbackSubscribeSuccess:       "SubscribeSuccess",
	CallbackSubscribeFail:          "SubscribeFail",
	CallbackSubscribeTerminated:    "SubscribeTerminated",
	CallbackStopCompleted:          "StopCompleted",
	CallbackMessageSendSuccess:     "MessageSendSuccess",
	CallbackMessageSendFail:        "MessageSendFail",
	CallbackMatch:                  "Match",
	CallbackMessageReceived:        "MessageReceived",
	CallbackInterfaceAddressChange: "InterfaceAddressChange",
	CallbackClusterChange:          "ClusterChange",
	CallbackNanDown:                "NanDown",
	CallbackCapabilitiesUpdate:     "CapabilitiesUpdate",
}

// String returns the callback name.
func (k CallbackKind) String() string {
	if name, ok := callbackNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Correlated returns true if the callback answers a command and carries a
// transaction id.
func (k CallbackKind) Correlated() bool {
	switch k {
	case CallbackPublishTerminated, CallbackSubscribeTerminated,
		CallbackMatch, CallbackMessageReceived,
		CallbackInterfaceAddressChange, CallbackClusterChange, CallbackNanDown:
		return false
	default:
		return k >= CallbackConfigCompleted && k <= CallbackCapabilitiesUpdate
	}
}
