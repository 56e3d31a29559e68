package aware

import "github.com/awaremux/awaremux-go/pkg/hal"

// FailReason is the application-visible reason for a failed operation.
type FailReason uint8

const (
	// ReasonOther covers every failure without a dedicated reason.
	ReasonOther FailReason = 0

	// ReasonNoResources indicates the radio ran out of room.
	ReasonNoResources FailReason = 1

	// ReasonInvalidArgs indicates the request was not acceptable.
	ReasonInvalidArgs FailReason = 2
)

// String returns the reason name.
func (r FailReason) String() string {
	switch r {
	case ReasonOther:
		return "OTHER"
	case ReasonNoResources:
		return "NO_RESOURCES"
	case ReasonInvalidArgs:
		return "INVALID_ARGS"
	default:
		return "UNKNOWN"
	}
}

// TerminateReason is the application-visible reason a session ended.
type TerminateReason uint8

const (
	// TerminateDone indicates the session ran its configured course.
	TerminateDone TerminateReason = 0

	// TerminateFail indicates the session ended for any other reason.
	TerminateFail TerminateReason = 1
)

// String returns the reason name.
func (r TerminateReason) String() string {
	switch r {
	case TerminateDone:
		return "DONE"
	case TerminateFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// failReasonFor collapses a HAL status into a FailReason.
func failReasonFor(status hal.Status) FailReason {
	switch status {
	case hal.StatusNoSpaceAvailable:
		return ReasonNoResources
	case hal.StatusInvalidBandConfigFlags:
		return ReasonInvalidArgs
	default:
		return ReasonOther
	}
}

// terminateReasonFor collapses a HAL terminate reason.
func terminateReasonFor(reason hal.TerminateReason) TerminateReason {
	if reason == hal.TerminateCountReached {
		return TerminateDone
	}
	return TerminateFail
}
