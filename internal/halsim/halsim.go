// Package halsim provides an in-process NAN radio for tests and the
// aware-sim tool. It answers every command asynchronously, the way a
// driver would, and simulates remote publishers that subscribers discover.
package halsim

import (
	"bytes"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

// Config configures a simulated radio.
type Config struct {
	// Logger receives driver-level logs. If nil, logging is disabled.
	Logger *slog.Logger

	// Capabilities is reported for GetCapabilities and bounds the number
	// of sessions. Zero limits fall back to DefaultCapabilities.
	Capabilities hal.Capabilities

	// Latency delays every answer.
	Latency time.Duration

	// InterfaceAddress is the radio's own MAC. If zero, one is derived
	// from a random UUID.
	InterfaceAddress hal.MAC
}

// DefaultCapabilities returns the record of a typical single-cluster radio.
func DefaultCapabilities() hal.Capabilities {
	return hal.Capabilities{
		MaxConcurrentClusters:        1,
		MaxPublishes:                 8,
		MaxSubscribes:                8,
		MaxServiceNameLen:            255,
		MaxMatchFilterLen:            255,
		MaxTotalMatchFilterLen:       255,
		MaxServiceSpecificInfoLen:    255,
		MaxNdiInterfaces:             1,
		MaxNdpSessions:               1,
		MaxAppInfoLen:                255,
		MaxQueuedTransmitFollowupMsg: 6,
	}
}

// Peer is a remote device publishing a service.
type Peer struct {
	// InstanceID is the requestor instance id the radio reports for the
	// peer. Assigned by AddPeer.
	InstanceID uint32

	ServiceName         string
	ServiceSpecificInfo []byte
	MAC                 hal.MAC

	// Echo makes the peer send every message it receives straight back.
	Echo bool
}

type simSession struct {
	id          uint32
	op          hal.Op
	serviceName string
	ssi         []byte
}

// HAL is a simulated radio. It implements hal.Commander; results are
// reported to the hal.Callbacks set with Attach.
type HAL struct {
	logger  *slog.Logger
	caps    hal.Capabilities
	latency time.Duration
	ownMAC  hal.MAC

	mu       sync.Mutex
	cb       hal.Callbacks
	closed   bool
	enabled  bool
	config   hal.ConfigRequest
	nextID   uint32
	sessions map[uint32]*simSession
	peers    map[uint32]*Peer
	nextPeer uint32
	failNext map[hal.Op]hal.Status
	rejects  map[hal.Op]error
	issued   map[hal.Op]int

	wg sync.WaitGroup
}

// New creates a simulated radio.
func New(config Config) *HAL {
	h := &HAL{
		logger:   config.Logger,
		caps:     config.Capabilities,
		latency:  config.Latency,
		ownMAC:   config.InterfaceAddress,
		sessions: make(map[uint32]*simSession),
		peers:    make(map[uint32]*Peer),
		failNext: make(map[hal.Op]hal.Status),
		rejects:  make(map[hal.Op]error),
		issued:   make(map[hal.Op]int),
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if h.caps.MaxPublishes == 0 && h.caps.MaxSubscribes == 0 {
		h.caps = DefaultCapabilities()
	}
	if h.ownMAC.IsZero() {
		h.ownMAC = macFromUUID(uuid.New())
	}
	return h
}

// macFromUUID derives a locally administered unicast MAC.
func macFromUUID(id uuid.UUID) hal.MAC {
	var mac hal.MAC
	copy(mac[:], id[:6])
	mac[0] = mac[0]&0xFC | 0x02
	return mac
}

// Attach sets the receiver of all results and events.
func (h *HAL) Attach(cb hal.Callbacks) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb = cb
}

// InterfaceAddress returns the radio's own MAC.
func (h *HAL) InterfaceAddress() hal.MAC {
	return h.ownMAC
}

// Close stops accepting commands and waits for pending answers.
func (h *HAL) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.wg.Wait()
}

// FailNext makes the next command of op answer with status.
func (h *HAL) FailNext(op hal.Op, status hal.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failNext[op] = status
}

// RejectNext makes the next command of op return err synchronously.
func (h *HAL) RejectNext(op hal.Op, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejects[op] = err
}

// Issued returns how many commands of op were accepted.
func (h *HAL) Issued(op hal.Op) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.issued[op]
}

// Enabled returns true while NAN is up, with the applied configuration.
func (h *HAL) Enabled() (hal.ConfigRequest, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config, h.enabled
}

// Sessions returns the ids of all live sessions in ascending order.
func (h *HAL) Sessions() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Sorted(maps.Keys(h.sessions))
}

// accept runs the shared command prologue under the lock. It returns the
// callbacks to answer on and the failure status scheduled for op, if any.
func (h *HAL) accept(op hal.Op, txID uint16) (hal.Callbacks, hal.Status, error) {
	if h.closed {
		return nil, 0, ErrClosed
	}
	if h.cb == nil {
		return nil, 0, ErrNotAttached
	}
	if err, ok := h.rejects[op]; ok {
		delete(h.rejects, op)
		h.logger.Debug("halsim: rejecting command", "op", op, "tx", txID, "error", err)
		return nil, 0, err
	}
	h.issued[op]++

	status := hal.StatusSuccess
	if s, ok := h.failNext[op]; ok {
		delete(h.failNext, op)
		status = s
	}
	h.logger.Debug("halsim: command", "op", op, "tx", txID)
	return h.cb, status, nil
}

// answer runs fn on its own goroutine after the configured latency.
// Answers to different commands may overtake each other.
func (h *HAL) answer(fn func()) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if h.latency > 0 {
			time.Sleep(h.latency)
		}
		fn()
	}()
}

// EnableAndConfigure implements hal.Commander.
func (h *HAL) EnableAndConfigure(txID uint16, config hal.ConfigRequest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, status, err := h.accept(hal.OpEnableAndConfigure, txID)
	if err != nil {
		return err
	}
	if status.IsSuccess() && config.Validate() != nil {
		status = hal.StatusInvalidParam
	}
	if !status.IsSuccess() {
		h.answer(func() { cb.OnConfigFailed(txID, status) })
		return nil
	}

	started := !h.enabled
	h.enabled = true
	h.config = config
	mac := h.ownMAC
	h.answer(func() {
		cb.OnConfigCompleted(txID)
		if started {
			cb.OnInterfaceAddressChange(mac)
			cb.OnClusterChange(hal.ClusterStarted, mac)
		}
	})
	return nil
}

// Disable implements hal.Commander.
func (h *HAL) Disable(txID uint16) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, _, err := h.accept(hal.OpDisable, txID)
	if err != nil {
		return err
	}
	h.enabled = false
	clear(h.sessions)
	h.answer(func() { cb.OnDisableCompleted(txID) })
	return nil
}

// Publish implements hal.Commander.
func (h *HAL) Publish(txID uint16, pubSubID uint32, data hal.PublishData, _ hal.PublishSettings) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, status, err := h.accept(hal.OpPublish, txID)
	if err != nil {
		return err
	}
	id, status := h.openSession(hal.OpPublish, pubSubID, data.ServiceName, data.ServiceSpecificInfo, status)
	if !status.IsSuccess() {
		h.answer(func() { cb.OnPublishFail(txID, status) })
		return nil
	}
	h.answer(func() { cb.OnPublishSuccess(txID, id) })
	return nil
}

// Subscribe implements hal.Commander. A successful subscribe is followed by
// a match for every simulated peer publishing the same service.
func (h *HAL) Subscribe(txID uint16, pubSubID uint32, data hal.SubscribeData, _ hal.SubscribeSettings) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, status, err := h.accept(hal.OpSubscribe, txID)
	if err != nil {
		return err
	}
	id, status := h.openSession(hal.OpSubscribe, pubSubID, data.ServiceName, data.ServiceSpecificInfo, status)
	if !status.IsSuccess() {
		h.answer(func() { cb.OnSubscribeFail(txID, status) })
		return nil
	}

	matches := h.matchingPeers(data.ServiceName)
	h.answer(func() {
		cb.OnSubscribeSuccess(txID, id)
		for _, p := range matches {
			cb.OnMatch(id, p.InstanceID, p.MAC, p.ServiceSpecificInfo, nil)
		}
	})
	return nil
}

// openSession creates or updates a session. Called with h.mu held.
func (h *HAL) openSession(op hal.Op, pubSubID uint32, service string, ssi []byte, status hal.Status) (uint32, hal.Status) {
	if !status.IsSuccess() {
		return 0, status
	}
	if !h.enabled {
		return 0, hal.StatusDisabled
	}

	if pubSubID != 0 {
		s, ok := h.sessions[pubSubID]
		if !ok || s.op != op {
			return 0, hal.StatusInvalidPublishSubscribeID
		}
		s.serviceName = service
		s.ssi = bytes.Clone(ssi)
		return pubSubID, hal.StatusSuccess
	}

	limit := h.caps.MaxPublishes
	if op == hal.OpSubscribe {
		limit = h.caps.MaxSubscribes
	}
	if uint32(h.countSessions(op)) >= limit {
		return 0, hal.StatusNoSpaceAvailable
	}

	h.nextID++
	s := &simSession{id: h.nextID, op: op, serviceName: service, ssi: bytes.Clone(ssi)}
	h.sessions[s.id] = s
	return s.id, hal.StatusSuccess
}

func (h *HAL) countSessions(op hal.Op) int {
	n := 0
	for _, s := range h.sessions {
		if s.op == op {
			n++
		}
	}
	return n
}

// StopPublish implements hal.Commander.
func (h *HAL) StopPublish(txID uint16, pubSubID uint32) error {
	return h.stop(hal.OpStopPublish, txID, pubSubID)
}

// StopSubscribe implements hal.Commander.
func (h *HAL) StopSubscribe(txID uint16, pubSubID uint32) error {
	return h.stop(hal.OpStopSubscribe, txID, pubSubID)
}

func (h *HAL) stop(op hal.Op, txID uint16, pubSubID uint32) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, _, err := h.accept(op, txID)
	if err != nil {
		return err
	}
	delete(h.sessions, pubSubID)
	h.answer(func() { cb.OnStopCompleted(txID) })
	return nil
}

// SendMessage implements hal.Commander. The message reaches the peer that
// currently owns mac; an echoing peer answers on the same session.
func (h *HAL) SendMessage(txID uint16, pubSubID uint32, peerID uint32, mac hal.MAC, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, status, err := h.accept(hal.OpSendMessage, txID)
	if err != nil {
		return err
	}
	if status.IsSuccess() {
		if _, ok := h.sessions[pubSubID]; !ok {
			status = hal.StatusInvalidPublishSubscribeID
		}
	}
	var (
		echo    Peer
		echoing bool
	)
	if status.IsSuccess() {
		p, ok := h.peers[peerID]
		switch {
		case !ok:
			status = hal.StatusInvalidRequestorInstanceID
		case p.MAC != mac:
			// Sent to a stale address; nobody acknowledges it.
			status = hal.StatusProtocolFailure
		case p.Echo:
			echo, echoing = *p, true
		}
	}

	if !status.IsSuccess() {
		h.answer(func() { cb.OnMessageSendFail(txID, status) })
		return nil
	}
	msg := bytes.Clone(payload)
	h.answer(func() {
		cb.OnMessageSendSuccess(txID)
		if echoing {
			cb.OnMessageReceived(pubSubID, echo.InstanceID, echo.MAC, msg)
		}
	})
	return nil
}

// GetCapabilities implements hal.Commander.
func (h *HAL) GetCapabilities(txID uint16) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, _, err := h.accept(hal.OpGetCapabilities, txID)
	if err != nil {
		return err
	}
	caps := h.caps
	h.answer(func() { cb.OnCapabilitiesUpdate(txID, caps) })
	return nil
}

var _ hal.Commander = (*HAL)(nil)
