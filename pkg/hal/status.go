package hal

// Status is a HAL command status code.
type Status uint8

const (
	// StatusSuccess indicates the command completed successfully.
	StatusSuccess Status = 0

	// StatusNoSpaceAvailable indicates the radio has no room for another
	// publish, subscribe or queued message.
	StatusNoSpaceAvailable Status = 1

	// StatusTimeout indicates the firmware did not answer in time.
	StatusTimeout Status = 2

	// StatusDisabled indicates NAN is not enabled.
	StatusDisabled Status = 3

	// StatusInvalidPublishSubscribeID indicates an unknown publish/subscribe id.
	StatusInvalidPublishSubscribeID Status = 4

	// StatusInvalidRequestorInstanceID indicates an unknown peer instance id.
	StatusInvalidRequestorInstanceID Status = 5

	// StatusUnsupportedConcurrency indicates a conflict with another
	// radio mode (e.g. soft AP).
	StatusUnsupportedConcurrency Status = 6

	// StatusInvalidParam indicates a malformed command parameter.
	StatusInvalidParam Status = 7

	// StatusInvalidBandConfigFlags indicates the requested band
	// configuration is not supported.
	StatusInvalidBandConfigFlags Status = 8

	// StatusProtocolFailure indicates a NAN protocol level failure.
	StatusProtocolFailure Status = 9

	// StatusInternalFailure indicates a HAL or driver failure, including
	// a command the HAL refused to accept.
	StatusInternalFailure Status = 10
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusNoSpaceAvailable:
		return "NO_SPACE_AVAILABLE"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusDisabled:
		return "DISABLED"
	case StatusInvalidPublishSubscribeID:
		return "INVALID_PUBLISH_SUBSCRIBE_ID"
	case StatusInvalidRequestorInstanceID:
		return "INVALID_REQUESTOR_INSTANCE_ID"
	case StatusUnsupportedConcurrency:
		return "UNSUPPORTED_CONCURRENCY"
	case StatusInvalidParam:
		return "INVALID_PARAM"
	case StatusInvalidBandConfigFlags:
		return "INVALID_BAND_CONFIG_FLAGS"
	case StatusProtocolFailure:
		return "PROTOCOL_FAILURE"
	case StatusInternalFailure:
		return "INTERNAL_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// TerminateReason is the reason the HAL gives when a publish or subscribe
// session ends without being stopped by the coordinator.
type TerminateReason uint8

const (
	// TerminateCountReached indicates the configured transmission count
	// was exhausted.
	TerminateCountReached TerminateReason = 0

	// TerminateTimeout indicates the session TTL expired.
	TerminateTimeout TerminateReason = 1

	// TerminateUserRequest indicates a stop command ended the session.
	TerminateUserRequest TerminateReason = 2

	// TerminateFailure indicates the firmware ended the session on error.
	TerminateFailure TerminateReason = 3
)

// String returns the terminate reason name.
func (r TerminateReason) String() string {
	switch r {
	case TerminateCountReached:
		return "COUNT_REACHED"
	case TerminateTimeout:
		return "TIMEOUT"
	case TerminateUserRequest:
		return "USER_REQUEST"
	case TerminateFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// ClusterEvent reports a change of cluster membership.
type ClusterEvent uint8

const (
	// ClusterStarted indicates this device started a new cluster.
	ClusterStarted ClusterEvent = 0

	// ClusterJoined indicates this device joined an existing cluster.
	ClusterJoined ClusterEvent = 1
)

// String returns the cluster event name.
func (e ClusterEvent) String() string {
	switch e {
	case ClusterStarted:
		return "STARTED"
	case ClusterJoined:
		return "JOINED"
	default:
		return "UNKNOWN"
	}
}
