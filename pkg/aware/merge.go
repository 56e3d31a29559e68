package aware

import "github.com/awaremux/awaremux-go/pkg/hal"

// MergeConfigs reduces the clients' requests to one device-wide request:
// 5 GHz support is ORed, master preference and the cluster high bound take
// the maximum and the cluster low bound takes the minimum. The result does
// not depend on order. ok is false when there is nothing to merge, in which
// case the radio should be disabled.
func MergeConfigs(requests ...hal.ConfigRequest) (merged hal.ConfigRequest, ok bool) {
	if len(requests) == 0 {
		return hal.ConfigRequest{}, false
	}

	merged = requests[0]
	for _, r := range requests[1:] {
		merged.Support5g = merged.Support5g || r.Support5g
		merged.MasterPreference = max(merged.MasterPreference, r.MasterPreference)
		merged.ClusterLow = min(merged.ClusterLow, r.ClusterLow)
		merged.ClusterHigh = max(merged.ClusterHigh, r.ClusterHigh)
	}
	return merged, true
}
