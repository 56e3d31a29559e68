package aware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

// Config configures a Manager.
type Config struct {
	// Logger receives operational logs. If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger receives the HAL command/callback trace. If nil,
	// tracing is disabled.
	ProtocolLogger log.Logger

	// Metrics receives measurements. If nil, nothing is recorded.
	Metrics Metrics

	// InstanceID tags trace events. If empty, a random UUID is used.
	InstanceID string

	// Now returns the trace timestamp. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Config with logging, tracing and metrics disabled.
func DefaultConfig() Config {
	return Config{}
}

// Manager is the NAN coordinator. Construct one per radio with NewManager,
// hand it to the HAL driver as its hal.Callbacks, and Start it.
type Manager struct {
	hal        hal.Commander
	logger     *slog.Logger
	plog       log.Logger
	metrics    Metrics
	instanceID string
	now        func() time.Time

	mailbox *mailbox

	startMu sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	// State below is owned by the dispatch goroutine.
	transactions *TransactionTable
	peers        *PeerIdentityMap
	clients      *clientRegistry
	sessions     *sessionRegistry

	// requested is the merged configuration most recently sent to the HAL
	// (nil after a disable); current is the one the HAL last confirmed.
	requested *hal.ConfigRequest
	current   *hal.ConfigRequest

	// configTx is the transaction of the newest configuration command, 0
	// when none is in flight. Only its completion updates current.
	configTx uint16

	capabilities     *hal.Capabilities
	interfaceAddress hal.MAC
	clusterID        hal.MAC
}

// NewManager creates a Manager that issues commands through commander.
func NewManager(commander hal.Commander, config Config) *Manager {
	m := &Manager{
		hal:          commander,
		logger:       config.Logger,
		plog:         config.ProtocolLogger,
		metrics:      config.Metrics,
		instanceID:   config.InstanceID,
		now:          config.Now,
		mailbox:      newMailbox(),
		done:         make(chan struct{}),
		transactions: NewTransactionTable(),
		peers:        NewPeerIdentityMap(),
		clients:      newClientRegistry(),
		sessions:     newSessionRegistry(),
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.plog == nil {
		m.plog = log.NoopLogger{}
	}
	if m.metrics == nil {
		m.metrics = noopMetrics{}
	}
	if m.instanceID == "" {
		m.instanceID = uuid.New().String()
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// InstanceID returns the id stamped on this Manager's trace events.
func (m *Manager) InstanceID() string {
	return m.instanceID
}

// Start launches the dispatch goroutine. Operations posted before Start are
// processed once it runs. The goroutine exits when ctx is cancelled or Stop
// is called.
func (m *Manager) Start(ctx context.Context) error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.started {
		return ErrAlreadyStarted
	}
	if m.mailbox.isClosed() {
		return ErrStopped
	}
	m.started = true

	ctx, m.cancel = context.WithCancel(ctx)
	go m.run(ctx)
	return nil
}

// Stop terminates the dispatch goroutine and waits for it. Queued steps
// are discarded; later operations fail with ErrStopped.
func (m *Manager) Stop() {
	m.startMu.Lock()
	started := m.started
	cancel := m.cancel
	m.startMu.Unlock()

	if !started {
		m.mailbox.close()
		return
	}
	cancel()
	<-m.done
}

// Done is closed when the dispatch goroutine has exited.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

func (m *Manager) run(ctx context.Context) {
	defer close(m.done)
	defer m.mailbox.close()

	m.logger.Debug("aware: dispatcher started", "instance", m.instanceID)
	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("aware: dispatcher stopped",
				"instance", m.instanceID,
				"pending_transactions", m.transactions.Len(),
				"dropped_steps", m.mailbox.len())
			return
		case <-m.mailbox.wake:
		}

		for _, step := range m.mailbox.take() {
			if ctx.Err() != nil {
				break
			}
			step()
		}
	}
}

// post queues a step for the dispatch goroutine.
func (m *Manager) post(step func()) error {
	return m.mailbox.post(step)
}

// call runs step on the dispatch goroutine and waits for it to finish.
func (m *Manager) call(ctx context.Context, step func()) error {
	finished := make(chan struct{})
	if err := m.post(func() {
		step()
		close(finished)
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-m.done:
		// The step may have run just before the goroutine exited.
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush waits until every step posted before the call has been processed.
func (m *Manager) Flush(ctx context.Context) error {
	return m.call(ctx, func() {})
}

// Snapshot is a point-in-time view of the coordinator state.
type Snapshot struct {
	Clients             []ClientID
	Sessions            []SessionInfo
	PendingTransactions int
	KnownPeers          int

	// RequestedConfig is the merged configuration last sent to the HAL.
	RequestedConfig *hal.ConfigRequest

	// CurrentConfig is the configuration the HAL last confirmed.
	CurrentConfig *hal.ConfigRequest

	Capabilities     *hal.Capabilities
	InterfaceAddress hal.MAC
	ClusterID        hal.MAC
}

// Snapshot returns the coordinator state as seen by the dispatch goroutine.
func (m *Manager) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := m.call(ctx, func() {
		snap = Snapshot{
			Clients:             m.clients.ids(),
			Sessions:            m.sessionInfos(),
			PendingTransactions: m.transactions.Len(),
			KnownPeers:          m.peers.Len(),
			RequestedConfig:     cloneConfig(m.requested),
			CurrentConfig:       cloneConfig(m.current),
			InterfaceAddress:    m.interfaceAddress,
			ClusterID:           m.clusterID,
		}
		if m.capabilities != nil {
			caps := *m.capabilities
			snap.Capabilities = &caps
		}
	})
	return snap, err
}

// SessionInfo describes a live session.
type SessionInfo struct {
	ClientID  ClientID
	SessionID SessionID
	Kind      SessionKind

	// HalID is 0 while the HAL does not know the session.
	HalID uint32
}

func (m *Manager) sessionInfos() []SessionInfo {
	keys := m.sessions.keys()
	infos := make([]SessionInfo, 0, len(keys))
	for _, k := range keys {
		s := m.sessions.sessions[k]
		infos = append(infos, SessionInfo{ClientID: s.clientID, SessionID: s.id, Kind: s.kind, HalID: s.halID})
	}
	return infos
}

func cloneConfig(c *hal.ConfigRequest) *hal.ConfigRequest {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Connect registers a client. listener may be nil; mask selects the events
// it receives. Connecting does not touch the radio until the client
// requests a configuration.
func (m *Manager) Connect(clientID ClientID, listener EventListener, mask EventMask) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClient, clientID)
	}
	return m.post(func() { m.connect(clientID, listener, mask) })
}

// Disconnect removes a client and all of its sessions without notifying
// its listeners, then reconfigures or disables the radio.
func (m *Manager) Disconnect(clientID ClientID) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClient, clientID)
	}
	return m.post(func() { m.disconnect(clientID) })
}

// RequestConfig replaces the client's configuration request and sends the
// new merged configuration to the HAL. It supersedes any configuration
// still in flight.
func (m *Manager) RequestConfig(clientID ClientID, request hal.ConfigRequest) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClient, clientID)
	}
	if err := request.Validate(); err != nil {
		return err
	}
	return m.post(func() { m.requestConfig(clientID, request) })
}

// CreateSession registers a publish or subscribe session for a client.
func (m *Manager) CreateSession(clientID ClientID, sessionID SessionID, kind SessionKind, listener SessionListener, mask SessionMask) error {
	if err := validateIDs(clientID, sessionID); err != nil {
		return err
	}
	if !kind.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidSessionKind, kind)
	}
	return m.post(func() { m.createSession(clientID, sessionID, kind, listener, mask) })
}

// DestroySession removes a session at once and, if the HAL knows it,
// issues the matching stop command without waiting for the answer.
func (m *Manager) DestroySession(clientID ClientID, sessionID SessionID) error {
	if err := validateIDs(clientID, sessionID); err != nil {
		return err
	}
	return m.post(func() { m.destroySession(clientID, sessionID) })
}

// Publish starts the session's publish or updates it if the HAL already
// knows the session.
func (m *Manager) Publish(clientID ClientID, sessionID SessionID, data hal.PublishData, settings hal.PublishSettings) error {
	if err := validateIDs(clientID, sessionID); err != nil {
		return err
	}
	data = clonePublishData(data)
	return m.post(func() { m.publish(clientID, sessionID, data, settings) })
}

// Subscribe starts the session's subscribe or updates it if the HAL already
// knows the session.
func (m *Manager) Subscribe(clientID ClientID, sessionID SessionID, data hal.SubscribeData, settings hal.SubscribeSettings) error {
	if err := validateIDs(clientID, sessionID); err != nil {
		return err
	}
	data = cloneSubscribeData(data)
	return m.post(func() { m.subscribe(clientID, sessionID, data, settings) })
}

// SendMessage sends payload to a peer discovered by the session. The
// outcome is reported to the session listener with messageID.
func (m *Manager) SendMessage(clientID ClientID, sessionID SessionID, peerID uint32, payload []byte, messageID int) error {
	if err := validateIDs(clientID, sessionID); err != nil {
		return err
	}
	payload = bytes.Clone(payload)
	return m.post(func() { m.sendMessage(clientID, sessionID, peerID, payload, messageID) })
}

// RequestCapabilities asks the HAL for its capability record and passes it
// to fn on the dispatch goroutine.
func (m *Manager) RequestCapabilities(fn func(hal.Capabilities)) error {
	return m.post(func() { m.requestCapabilities(fn) })
}

func validateIDs(clientID ClientID, sessionID SessionID) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClient, clientID)
	}
	if sessionID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSession, sessionID)
	}
	return nil
}

func clonePublishData(d hal.PublishData) hal.PublishData {
	d.ServiceSpecificInfo = bytes.Clone(d.ServiceSpecificInfo)
	d.TxFilter = bytes.Clone(d.TxFilter)
	d.RxFilter = bytes.Clone(d.RxFilter)
	return d
}

func cloneSubscribeData(d hal.SubscribeData) hal.SubscribeData {
	d.ServiceSpecificInfo = bytes.Clone(d.ServiceSpecificInfo)
	d.TxFilter = bytes.Clone(d.TxFilter)
	d.RxFilter = bytes.Clone(d.RxFilter)
	return d
}

var _ hal.Callbacks = (*Manager)(nil)
