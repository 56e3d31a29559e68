package hal

import (
	"errors"
	"fmt"
	"net"
)

// Boundary errors.
var (
	ErrInvalidConfig = errors.New("invalid NAN configuration")
	ErrInvalidMAC    = errors.New("invalid MAC address")
)

// ClusterIDMax is the largest cluster id value a ConfigRequest may carry.
const ClusterIDMax = 0xFFFF

// MAC is a link-layer (EUI-48) address.
type MAC [6]byte

// ParseMAC parses a colon or dash separated EUI-48 address.
func ParseMAC(s string) (MAC, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MAC{}, fmt.Errorf("%w: %v", ErrInvalidMAC, err)
	}
	if len(hw) != 6 {
		return MAC{}, fmt.Errorf("%w: %q is not EUI-48", ErrInvalidMAC, s)
	}
	var m MAC
	copy(m[:], hw)
	return m, nil
}

// String returns the address in aa:bb:cc:dd:ee:ff form.
func (m MAC) String() string {
	return net.HardwareAddr(m[:]).String()
}

// IsZero returns true for the all-zero address.
func (m MAC) IsZero() bool {
	return m == MAC{}
}

// ConfigRequest carries the radio configuration a client asks for. The
// coordinator merges the requests of all clients into one before sending it
// to the HAL.
type ConfigRequest struct {
	// Support5g requests 5 GHz band support.
	Support5g bool `cbor:"1,keyasint,omitempty" yaml:"support5g"`

	// MasterPreference is the NAN master preference value.
	MasterPreference uint8 `cbor:"2,keyasint,omitempty" yaml:"masterPreference"`

	// ClusterLow is the lower bound of the acceptable cluster id range.
	ClusterLow uint16 `cbor:"3,keyasint,omitempty" yaml:"clusterLow"`

	// ClusterHigh is the upper bound of the acceptable cluster id range.
	ClusterHigh uint16 `cbor:"4,keyasint,omitempty" yaml:"clusterHigh"`
}

// DefaultConfigRequest returns a request that accepts any cluster.
func DefaultConfigRequest() ConfigRequest {
	return ConfigRequest{
		ClusterLow:  0,
		ClusterHigh: ClusterIDMax,
	}
}

// Validate checks the request for internal consistency.
func (c ConfigRequest) Validate() error {
	if c.ClusterLow > c.ClusterHigh {
		return fmt.Errorf("%w: clusterLow %d > clusterHigh %d", ErrInvalidConfig, c.ClusterLow, c.ClusterHigh)
	}
	return nil
}

// String returns a compact representation for logs.
func (c ConfigRequest) String() string {
	return fmt.Sprintf("{5g=%t pref=%d cluster=[%d,%d]}", c.Support5g, c.MasterPreference, c.ClusterLow, c.ClusterHigh)
}

// PublishType selects how a service is advertised.
type PublishType uint8

const (
	// PublishUnsolicited broadcasts the service in discovery windows.
	PublishUnsolicited PublishType = 0

	// PublishSolicited only answers matching active subscribers.
	PublishSolicited PublishType = 1

	// PublishUnsolicitedSolicited does both.
	PublishUnsolicitedSolicited PublishType = 2
)

// String returns the publish type name.
func (t PublishType) String() string {
	switch t {
	case PublishUnsolicited:
		return "UNSOLICITED"
	case PublishSolicited:
		return "SOLICITED"
	case PublishUnsolicitedSolicited:
		return "UNSOLICITED_SOLICITED"
	default:
		return "UNKNOWN"
	}
}

// SubscribeType selects how a service is looked for.
type SubscribeType uint8

const (
	// SubscribePassive listens for unsolicited publishes.
	SubscribePassive SubscribeType = 0

	// SubscribeActive transmits subscribe messages.
	SubscribeActive SubscribeType = 1
)

// String returns the subscribe type name.
func (t SubscribeType) String() string {
	switch t {
	case SubscribePassive:
		return "PASSIVE"
	case SubscribeActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// PublishData describes the service being published.
type PublishData struct {
	ServiceName         string `cbor:"1,keyasint"`
	ServiceSpecificInfo []byte `cbor:"2,keyasint,omitempty"`
	TxFilter            []byte `cbor:"3,keyasint,omitempty"`
	RxFilter            []byte `cbor:"4,keyasint,omitempty"`
}

// PublishSettings controls how long and how often a service is published.
type PublishSettings struct {
	Type PublishType `cbor:"1,keyasint"`

	// Count is the number of transmissions; 0 means unlimited.
	Count uint16 `cbor:"2,keyasint,omitempty"`

	// TTLSeconds is the session lifetime; 0 means until stopped.
	TTLSeconds uint16 `cbor:"3,keyasint,omitempty"`
}

// SubscribeData describes the service being looked for.
type SubscribeData struct {
	ServiceName         string `cbor:"1,keyasint"`
	ServiceSpecificInfo []byte `cbor:"2,keyasint,omitempty"`
	TxFilter            []byte `cbor:"3,keyasint,omitempty"`
	RxFilter            []byte `cbor:"4,keyasint,omitempty"`
}

// SubscribeSettings controls how long and how often a service is looked for.
type SubscribeSettings struct {
	Type SubscribeType `cbor:"1,keyasint"`

	// Count is the number of transmissions; 0 means unlimited.
	Count uint16 `cbor:"2,keyasint,omitempty"`

	// TTLSeconds is the session lifetime; 0 means until stopped.
	TTLSeconds uint16 `cbor:"3,keyasint,omitempty"`
}

// Capabilities is the radio's capability record. The coordinator forwards
// it verbatim.
type Capabilities struct {
	MaxConcurrentClusters        uint32 `cbor:"1,keyasint"`
	MaxPublishes                 uint32 `cbor:"2,keyasint"`
	MaxSubscribes                uint32 `cbor:"3,keyasint"`
	MaxServiceNameLen            uint32 `cbor:"4,keyasint"`
	MaxMatchFilterLen            uint32 `cbor:"5,keyasint"`
	MaxTotalMatchFilterLen       uint32 `cbor:"6,keyasint"`
	MaxServiceSpecificInfoLen    uint32 `cbor:"7,keyasint"`
	MaxVsaDataLen                uint32 `cbor:"8,keyasint"`
	MaxMeshDataLen               uint32 `cbor:"9,keyasint"`
	MaxNdiInterfaces             uint32 `cbor:"10,keyasint"`
	MaxNdpSessions               uint32 `cbor:"11,keyasint"`
	MaxAppInfoLen                uint32 `cbor:"12,keyasint"`
	MaxQueuedTransmitFollowupMsg uint32 `cbor:"13,keyasint"`
}
