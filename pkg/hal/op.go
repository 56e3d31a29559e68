package hal

// Op identifies a HAL command.
type Op uint8

const (
	// OpEnableAndConfigure enables NAN (or reconfigures it) with a merged
	// configuration.
	OpEnableAndConfigure Op = 1

	// OpDisable disables NAN.
	OpDisable Op = 2

	// OpPublish creates or updates a publish session.
	OpPublish Op = 3

	// OpSubscribe creates or updates a subscribe session.
	OpSubscribe Op = 4

	// OpStopPublish ends a publish session.
	OpStopPublish Op = 5

	// OpStopSubscribe ends a subscribe session.
	OpStopSubscribe Op = 6

	// OpSendMessage transmits a follow-up message to a peer.
	OpSendMessage Op = 7

	// OpGetCapabilities queries the radio's capability record.
	OpGetCapabilities Op = 8
)

// String returns the command name.
func (o Op) String() string {
	switch o {
	case OpEnableAndConfigure:
		return "EnableAndConfigure"
	case OpDisable:
		return "Disable"
	case OpPublish:
		return "Publish"
	case OpSubscribe:
		return "Subscribe"
	case OpStopPublish:
		return "StopPublish"
	case OpStopSubscribe:
		return "StopSubscribe"
	case OpSendMessage:
		return "SendMessage"
	case OpGetCapabilities:
		return "GetCapabilities"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the op is a known HAL command.
func (o Op) IsValid() bool {
	return o >= OpEnableAndConfigure && o <= OpGetCapabilities
}
