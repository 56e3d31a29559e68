package aware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

// command is one call made to a recordingCommander.
type command struct {
	Op       hal.Op
	TxID     uint16
	PubSubID uint32
	PeerID   uint32
	MAC      hal.MAC
	Config   hal.ConfigRequest
	Payload  []byte
}

// recordingCommander accepts every command and remembers it. Setting
// reject makes the next commands of that op fail synchronously.
type recordingCommander struct {
	mu       sync.Mutex
	commands []command
	reject   map[hal.Op]error
}

func newRecordingCommander() *recordingCommander {
	return &recordingCommander{reject: make(map[hal.Op]error)}
}

func (c *recordingCommander) record(cmd command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.reject[cmd.Op]; err != nil {
		return err
	}
	c.commands = append(c.commands, cmd)
	return nil
}

func (c *recordingCommander) rejectOp(op hal.Op, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reject[op] = err
}

func (c *recordingCommander) all() []command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]command(nil), c.commands...)
}

func (c *recordingCommander) ofOp(op hal.Op) []command {
	var out []command
	for _, cmd := range c.all() {
		if cmd.Op == op {
			out = append(out, cmd)
		}
	}
	return out
}

// last returns the most recent command, which must be of the given op.
func (c *recordingCommander) last(t *testing.T, op hal.Op) command {
	t.Helper()
	cmds := c.all()
	require.NotEmpty(t, cmds, "no command issued")
	cmd := cmds[len(cmds)-1]
	require.Equal(t, op, cmd.Op, "last command")
	return cmd
}

func (c *recordingCommander) EnableAndConfigure(txID uint16, config hal.ConfigRequest) error {
	return c.record(command{Op: hal.OpEnableAndConfigure, TxID: txID, Config: config})
}

func (c *recordingCommander) Disable(txID uint16) error {
	return c.record(command{Op: hal.OpDisable, TxID: txID})
}

func (c *recordingCommander) Publish(txID uint16, pubSubID uint32, _ hal.PublishData, _ hal.PublishSettings) error {
	return c.record(command{Op: hal.OpPublish, TxID: txID, PubSubID: pubSubID})
}

func (c *recordingCommander) Subscribe(txID uint16, pubSubID uint32, _ hal.SubscribeData, _ hal.SubscribeSettings) error {
	return c.record(command{Op: hal.OpSubscribe, TxID: txID, PubSubID: pubSubID})
}

func (c *recordingCommander) StopPublish(txID uint16, pubSubID uint32) error {
	return c.record(command{Op: hal.OpStopPublish, TxID: txID, PubSubID: pubSubID})
}

func (c *recordingCommander) StopSubscribe(txID uint16, pubSubID uint32) error {
	return c.record(command{Op: hal.OpStopSubscribe, TxID: txID, PubSubID: pubSubID})
}

func (c *recordingCommander) SendMessage(txID uint16, pubSubID uint32, peerID uint32, mac hal.MAC, payload []byte) error {
	return c.record(command{Op: hal.OpSendMessage, TxID: txID, PubSubID: pubSubID, PeerID: peerID, MAC: mac, Payload: payload})
}

func (c *recordingCommander) GetCapabilities(txID uint16) error {
	return c.record(command{Op: hal.OpGetCapabilities, TxID: txID})
}

var errBusy = errors.New("driver busy")

// eventRecorder is an EventListener that remembers what it was told.
type eventRecorder struct {
	mu              sync.Mutex
	configCompleted []hal.ConfigRequest
	configFailed    []FailReason
	identityChanged int
	nanDown         []FailReason
}

func (r *eventRecorder) OnConfigCompleted(config hal.ConfigRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configCompleted = append(r.configCompleted, config)
}

func (r *eventRecorder) OnConfigFailed(reason FailReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configFailed = append(r.configFailed, reason)
}

func (r *eventRecorder) OnIdentityChanged() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identityChanged++
}

func (r *eventRecorder) OnNanDown(reason FailReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nanDown = append(r.nanDown, reason)
}

func (r *eventRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.configCompleted) + len(r.configFailed) + r.identityChanged + len(r.nanDown)
}

type match struct {
	peerID uint32
	ssi    []byte
	filter []byte
}

type received struct {
	peerID  uint32
	message []byte
}

type sendFailure struct {
	messageID int
	reason    FailReason
}

// sessionRecorder is a SessionListener that remembers what it was told.
type sessionRecorder struct {
	mu                  sync.Mutex
	publishFail         []FailReason
	publishTerminated   []TerminateReason
	subscribeFail       []FailReason
	subscribeTerminated []TerminateReason
	matches             []match
	messages            []received
	sendSuccess         []int
	sendFail            []sendFailure
}

func (r *sessionRecorder) OnPublishFail(reason FailReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishFail = append(r.publishFail, reason)
}

func (r *sessionRecorder) OnPublishTerminated(reason TerminateReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishTerminated = append(r.publishTerminated, reason)
}

func (r *sessionRecorder) OnSubscribeFail(reason FailReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribeFail = append(r.subscribeFail, reason)
}

func (r *sessionRecorder) OnSubscribeTerminated(reason TerminateReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribeTerminated = append(r.subscribeTerminated, reason)
}

func (r *sessionRecorder) OnMatch(peerID uint32, ssi, filter []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, match{peerID, ssi, filter})
}

func (r *sessionRecorder) OnMessageReceived(peerID uint32, message []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, received{peerID, message})
}

func (r *sessionRecorder) OnMessageSendSuccess(messageID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendSuccess = append(r.sendSuccess, messageID)
}

func (r *sessionRecorder) OnMessageSendFail(messageID int, reason FailReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendFail = append(r.sendFail, sendFailure{messageID, reason})
}

func (r *sessionRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.publishFail) + len(r.publishTerminated) + len(r.subscribeFail) +
		len(r.subscribeTerminated) + len(r.matches) + len(r.messages) +
		len(r.sendSuccess) + len(r.sendFail)
}

// traceRecorder is a log.Logger that keeps every event.
type traceRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *traceRecorder) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *traceRecorder) category(c log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// newTestManager starts a Manager on a recording commander.
func newTestManager(t *testing.T, config Config) (*Manager, *recordingCommander) {
	t.Helper()
	cmd := newRecordingCommander()
	m := NewManager(cmd, config)
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)
	return m, cmd
}

// flush waits for the dispatch goroutine to drain everything posted so far.
func flush(t *testing.T, m *Manager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.Flush(ctx))
}

func snapshot(t *testing.T, m *Manager) Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	snap, err := m.Snapshot(ctx)
	require.NoError(t, err)
	return snap
}

// connect registers a client listening to every event and returns its
// recorder.
func connect(t *testing.T, m *Manager, clientID ClientID) *eventRecorder {
	t.Helper()
	rec := &eventRecorder{}
	require.NoError(t, m.Connect(clientID, rec, ListenAllEvents))
	return rec
}

// createSession adds a session listening to every event and returns its
// recorder.
func createSession(t *testing.T, m *Manager, clientID ClientID, sessionID SessionID, kind SessionKind) *sessionRecorder {
	t.Helper()
	rec := &sessionRecorder{}
	require.NoError(t, m.CreateSession(clientID, sessionID, kind, rec, ListenAllSessionEvents))
	return rec
}

// publishAssigned runs a publish through to success with halID.
func publishAssigned(t *testing.T, m *Manager, cmd *recordingCommander, clientID ClientID, sessionID SessionID, halID uint32) {
	t.Helper()
	require.NoError(t, m.Publish(clientID, sessionID, hal.PublishData{ServiceName: "svc"}, hal.PublishSettings{}))
	flush(t, m)
	m.OnPublishSuccess(cmd.last(t, hal.OpPublish).TxID, halID)
	flush(t, m)
}

// subscribeAssigned runs a subscribe through to success with halID.
func subscribeAssigned(t *testing.T, m *Manager, cmd *recordingCommander, clientID ClientID, sessionID SessionID, halID uint32) {
	t.Helper()
	require.NoError(t, m.Subscribe(clientID, sessionID, hal.SubscribeData{ServiceName: "svc"}, hal.SubscribeSettings{}))
	flush(t, m)
	m.OnSubscribeSuccess(cmd.last(t, hal.OpSubscribe).TxID, halID)
	flush(t, m)
}
