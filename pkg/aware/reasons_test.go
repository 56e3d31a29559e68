package aware

import (
	"testing"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

func TestFailReasonFor(t *testing.T) {
	tests := []struct {
		status hal.Status
		want   FailReason
	}{
		{hal.StatusNoSpaceAvailable, ReasonNoResources},
		{hal.StatusInvalidBandConfigFlags, ReasonInvalidArgs},
		{hal.StatusTimeout, ReasonOther},
		{hal.StatusInvalidParam, ReasonOther},
		{hal.StatusInternalFailure, ReasonOther},
		{hal.Status(200), ReasonOther},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := failReasonFor(tt.status); got != tt.want {
				t.Errorf("failReasonFor(%v) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTerminateReasonFor(t *testing.T) {
	tests := []struct {
		reason hal.TerminateReason
		want   TerminateReason
	}{
		{hal.TerminateCountReached, TerminateDone},
		{hal.TerminateTimeout, TerminateFail},
		{hal.TerminateUserRequest, TerminateFail},
		{hal.TerminateFailure, TerminateFail},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			if got := terminateReasonFor(tt.reason); got != tt.want {
				t.Errorf("terminateReasonFor(%v) = %v, want %v", tt.reason, got, tt.want)
			}
		})
	}
}
