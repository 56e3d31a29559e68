package aware

import (
	"testing"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

func TestMergeConfigs(t *testing.T) {
	a := hal.ConfigRequest{ClusterLow: 5, ClusterHigh: 100, MasterPreference: 111}
	b := hal.ConfigRequest{ClusterLow: 7, ClusterHigh: 155, MasterPreference: 0, Support5g: true}
	want := hal.ConfigRequest{ClusterLow: 5, ClusterHigh: 155, MasterPreference: 111, Support5g: true}

	tests := []struct {
		name     string
		requests []hal.ConfigRequest
		want     hal.ConfigRequest
		wantOK   bool
	}{
		{name: "empty", wantOK: false},
		{name: "single", requests: []hal.ConfigRequest{a}, want: a, wantOK: true},
		{name: "two", requests: []hal.ConfigRequest{a, b}, want: want, wantOK: true},
		{name: "order independent", requests: []hal.ConfigRequest{b, a}, want: want, wantOK: true},
		{name: "duplicate", requests: []hal.ConfigRequest{a, b, a}, want: want, wantOK: true},
		{
			name: "defaults widen range",
			requests: []hal.ConfigRequest{
				a,
				hal.DefaultConfigRequest(),
			},
			want:   hal.ConfigRequest{ClusterLow: 0, ClusterHigh: hal.ClusterIDMax, MasterPreference: 111},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MergeConfigs(tt.requests...)
			if ok != tt.wantOK {
				t.Fatalf("MergeConfigs ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MergeConfigs = %v, want %v", got, tt.want)
			}
		})
	}
}
