package mdnshal

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/google/uuid"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

const (
	// ServiceType is the DNS-SD type every emulated publish registers.
	ServiceType = "_nan._udp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultPort is advertised in SRV records. Nothing listens on it.
	DefaultPort = 9
)

// Config configures the mDNS backend.
type Config struct {
	// Logger receives backend logs. If nil, logging is disabled.
	Logger *slog.Logger

	// Interface restricts advertising and browsing to one network
	// interface. Empty means all interfaces.
	Interface string

	// TTL overrides the record TTL. Zero uses the zeroconf default.
	TTL time.Duration

	// Port is advertised in SRV records. Defaults to DefaultPort.
	Port int

	// Capabilities is reported for GetCapabilities.
	Capabilities hal.Capabilities
}

// advertisement is a running registration.
type advertisement interface {
	Shutdown()
}

type registerFunc func(instance, service, domain string, port int, txt []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (advertisement, error)

type browseFunc func(ctx context.Context, service, domain string, entries, removed chan<- *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error

func zeroconfRegister(instance, service, domain string, port int, txt []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (advertisement, error) {
	return zeroconf.Register(instance, service, domain, port, txt, ifaces, opts...)
}

type session struct {
	id      uint32
	op      hal.Op
	service string
	ad      advertisement
	cancel  context.CancelFunc
}

type peer struct {
	id  uint32
	mac hal.MAC
}

// HAL emulates a NAN radio on top of mDNS.
type HAL struct {
	config   Config
	logger   *slog.Logger
	node     string
	mac      hal.MAC
	register registerFunc
	browse   browseFunc

	mu       sync.Mutex
	cb       hal.Callbacks
	closed   bool
	enabled  bool
	nextID   uint32
	sessions map[uint32]*session
	peers    map[string]peer
	nextPeer uint32

	wg sync.WaitGroup
}

// New creates an mDNS backend. Nothing is sent on the network until the
// first publish or subscribe.
func New(config Config) *HAL {
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	h := &HAL{
		config:   config,
		logger:   config.Logger,
		node:     uuid.New().String(),
		register: zeroconfRegister,
		browse:   zeroconf.Browse,
		sessions: make(map[uint32]*session),
		peers:    make(map[string]peer),
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h.mac = deriveMAC(h.node)
	return h
}

// deriveMAC maps a name to a stable locally administered unicast MAC.
func deriveMAC(name string) hal.MAC {
	sum := sha256.Sum256([]byte(name))
	var mac hal.MAC
	copy(mac[:], sum[:6])
	mac[0] = mac[0]&0xFC | 0x02
	return mac
}

// Attach sets the receiver of all results and events.
func (h *HAL) Attach(cb hal.Callbacks) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb = cb
}

// Node returns the id this backend advertises in its TXT records.
func (h *HAL) Node() string {
	return h.node
}

// Close withdraws every registration, stops every browse and waits for
// pending answers.
func (h *HAL) Close() {
	h.mu.Lock()
	h.closed = true
	h.teardown()
	h.mu.Unlock()
	h.wg.Wait()
}

// teardown stops all sessions. Called with h.mu held.
func (h *HAL) teardown() {
	for id, s := range h.sessions {
		h.stopSession(s)
		delete(h.sessions, id)
	}
}

func (h *HAL) stopSession(s *session) {
	if s.ad != nil {
		s.ad.Shutdown()
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (h *HAL) callbacks() (hal.Callbacks, error) {
	if h.closed {
		return nil, ErrClosed
	}
	if h.cb == nil {
		return nil, ErrNotAttached
	}
	return h.cb, nil
}

func (h *HAL) async(fn func()) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		fn()
	}()
}

func (h *HAL) interfaces() []net.Interface {
	if h.config.Interface == "" {
		return nil
	}
	iface, err := net.InterfaceByName(h.config.Interface)
	if err != nil {
		h.logger.Warn("mdnshal: interface not found, using all", "interface", h.config.Interface, "error", err)
		return nil
	}
	return []net.Interface{*iface}
}

// EnableAndConfigure implements hal.Commander. The configuration only
// matters to real radios; the backend just reports itself up.
func (h *HAL) EnableAndConfigure(txID uint16, config hal.ConfigRequest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		h.async(func() { cb.OnConfigFailed(txID, hal.StatusInvalidParam) })
		return nil
	}

	started := !h.enabled
	h.enabled = true
	mac := h.mac
	h.logger.Debug("mdnshal: enabled", "tx", txID, "config", config)
	h.async(func() {
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

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	h.enabled = false
	h.teardown()
	h.async(func() { cb.OnDisableCompleted(txID) })
	return nil
}

// Publish implements hal.Commander. An update re-registers the service
// with the new TXT records.
func (h *HAL) Publish(txID uint16, pubSubID uint32, data hal.PublishData, settings hal.PublishSettings) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	s, status := h.session(hal.OpPublish, pubSubID, data.ServiceName)
	if !status.IsSuccess() {
		h.async(func() { cb.OnPublishFail(txID, status) })
		return nil
	}

	txt := TXTRecordsToStrings(EncodeServiceTXT(ServiceInfo{
		ServiceName:         data.ServiceName,
		ServiceSpecificInfo: data.ServiceSpecificInfo,
		Node:                h.node,
	}))
	instance := fmt.Sprintf("%s-%s-%d", data.ServiceName, h.node[:8], s.id)

	var opts []zeroconf.ServerOption
	if h.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(h.config.TTL.Seconds())))
	} else if settings.TTLSeconds > 0 {
		opts = append(opts, zeroconf.TTL(uint32(settings.TTLSeconds)))
	}

	if s.ad != nil {
		s.ad.Shutdown()
		s.ad = nil
	}
	ad, err := h.register(instance, ServiceType, Domain, h.config.Port, txt, h.interfaces(), opts...)
	if err != nil {
		h.logger.Warn("mdnshal: register failed", "instance", instance, "error", err)
		if pubSubID == 0 {
			delete(h.sessions, s.id)
		}
		h.async(func() { cb.OnPublishFail(txID, hal.StatusInternalFailure) })
		return nil
	}
	s.ad = ad
	h.sessions[s.id] = s

	id := s.id
	h.logger.Debug("mdnshal: published", "instance", instance, "pubsub_id", id)
	h.async(func() { cb.OnPublishSuccess(txID, id) })
	return nil
}

// Subscribe implements hal.Commander. Matches are reported as instances of
// the service appear on the network.
func (h *HAL) Subscribe(txID uint16, pubSubID uint32, data hal.SubscribeData, _ hal.SubscribeSettings) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	s, status := h.session(hal.OpSubscribe, pubSubID, data.ServiceName)
	if !status.IsSuccess() {
		h.async(func() { cb.OnSubscribeFail(txID, status) })
		return nil
	}
	if s.cancel != nil {
		s.cancel()
	}
	h.sessions[s.id] = s

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	id, service := s.id, data.ServiceName

	var opts []zeroconf.ClientOption
	if ifaces := h.interfaces(); ifaces != nil {
		opts = append(opts, zeroconf.SelectIfaces(ifaces))
	}

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	h.async(func() {
		cb.OnSubscribeSuccess(txID, id)
		h.watch(ctx, cb, id, service, entries, removed)
	})
	h.async(func() {
		if err := h.browse(ctx, ServiceType, Domain, entries, removed, opts...); err != nil && ctx.Err() == nil {
			h.logger.Warn("mdnshal: browse failed", "service", service, "error", err)
		}
	})
	return nil
}

// watch turns browse results into matches until ctx is done.
func (h *HAL) watch(ctx context.Context, cb hal.Callbacks, id uint32, service string, entries, removed <-chan *zeroconf.ServiceEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-removed:
		case entry, ok := <-entries:
			if !ok {
				return
			}
			info, err := DecodeServiceTXT(StringsToTXTRecords(entry.Text))
			if err != nil {
				h.logger.Debug("mdnshal: ignoring entry", "instance", entry.Instance, "error", err)
				continue
			}
			if info.ServiceName != service || info.Node == h.node {
				continue
			}
			p := h.peer(entry.Instance)
			cb.OnMatch(id, p.id, p.mac, info.ServiceSpecificInfo, nil)
		}
	}
}

// peer returns the stable identity of a discovered instance.
func (h *HAL) peer(instance string) peer {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.peers[instance]
	if !ok {
		h.nextPeer++
		p = peer{id: h.nextPeer, mac: deriveMAC(instance)}
		h.peers[instance] = p
	}
	return p
}

// session returns the session to create or update. Called with h.mu held.
func (h *HAL) session(op hal.Op, pubSubID uint32, service string) (*session, hal.Status) {
	if !h.enabled {
		return nil, hal.StatusDisabled
	}
	if service == "" {
		return nil, hal.StatusInvalidParam
	}
	if pubSubID != 0 {
		s, ok := h.sessions[pubSubID]
		if !ok || s.op != op {
			return nil, hal.StatusInvalidPublishSubscribeID
		}
		s.service = service
		return s, hal.StatusSuccess
	}

	limit := h.config.Capabilities.MaxPublishes
	if op == hal.OpSubscribe {
		limit = h.config.Capabilities.MaxSubscribes
	}
	if limit > 0 {
		n := uint32(0)
		for _, s := range h.sessions {
			if s.op == op {
				n++
			}
		}
		if n >= limit {
			return nil, hal.StatusNoSpaceAvailable
		}
	}

	h.nextID++
	return &session{id: h.nextID, op: op, service: service}, hal.StatusSuccess
}

// StopPublish implements hal.Commander.
func (h *HAL) StopPublish(txID uint16, pubSubID uint32) error {
	return h.stop(txID, pubSubID)
}

// StopSubscribe implements hal.Commander.
func (h *HAL) StopSubscribe(txID uint16, pubSubID uint32) error {
	return h.stop(txID, pubSubID)
}

func (h *HAL) stop(txID uint16, pubSubID uint32) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	if s, ok := h.sessions[pubSubID]; ok {
		h.stopSession(s)
		delete(h.sessions, pubSubID)
	}
	h.async(func() { cb.OnStopCompleted(txID) })
	return nil
}

// SendMessage implements hal.Commander. It always fails.
func (h *HAL) SendMessage(txID uint16, _ uint32, _ uint32, _ hal.MAC, _ []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	h.async(func() { cb.OnMessageSendFail(txID, hal.StatusProtocolFailure) })
	return nil
}

// GetCapabilities implements hal.Commander.
func (h *HAL) GetCapabilities(txID uint16) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cb, err := h.callbacks()
	if err != nil {
		return err
	}
	caps := h.config.Capabilities
	h.async(func() { cb.OnCapabilitiesUpdate(txID, caps) })
	return nil
}

var _ hal.Commander = (*HAL)(nil)
