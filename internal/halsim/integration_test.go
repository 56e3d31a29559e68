package halsim_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaremux/awaremux-go/internal/halsim"
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

// listener records everything a client or session is told.
type listener struct {
	mu      sync.Mutex
	configs []hal.ConfigRequest
	events  []string
	matches map[uint32]int
	inbox   [][]byte
	sent    []int
}

func newListener() *listener {
	return &listener{matches: make(map[uint32]int)}
}

func (l *listener) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *listener) OnConfigCompleted(c hal.ConfigRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configs = append(l.configs, c)
}

func (l *listener) OnConfigFailed(r aware.FailReason) { l.add("config-failed:" + r.String()) }
func (l *listener) OnIdentityChanged()                { l.add("identity") }
func (l *listener) OnNanDown(r aware.FailReason)      { l.add("nan-down:" + r.String()) }
func (l *listener) OnPublishFail(r aware.FailReason)  { l.add("publish-fail:" + r.String()) }
func (l *listener) OnPublishTerminated(r aware.TerminateReason) {
	l.add("publish-terminated:" + r.String())
}
func (l *listener) OnSubscribeFail(r aware.FailReason) { l.add("subscribe-fail:" + r.String()) }
func (l *listener) OnSubscribeTerminated(r aware.TerminateReason) {
	l.add("subscribe-terminated:" + r.String())
}

func (l *listener) OnMatch(peerID uint32, _, _ []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.matches[peerID]++
}

func (l *listener) OnMessageReceived(_ uint32, msg []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inbox = append(l.inbox, msg)
}

func (l *listener) OnMessageSendSuccess(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sent = append(l.sent, id)
}

func (l *listener) OnMessageSendFail(id int, r aware.FailReason) {
	l.add("send-fail:" + r.String())
}

func (l *listener) snapshot() (configs []hal.ConfigRequest, events []string, inbox [][]byte, sent []int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append(configs, l.configs...), append(events, l.events...), append(inbox, l.inbox...), append(sent, l.sent...)
}

func (l *listener) matchCount(peerID uint32) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.matches[peerID]
}

func has(events []string, want string) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

type traceSink struct {
	mu     sync.Mutex
	events []log.Event
}

func (s *traceSink) Log(e log.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *traceSink) unknown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.events {
		if e.Callback != nil && e.Callback.Unknown {
			n++
		}
	}
	return n
}

const waitFor = 5 * time.Second

func TestCoordinatorOverSimulator(t *testing.T) {
	sim := halsim.New(halsim.Config{Latency: time.Millisecond})
	trace := &traceSink{}
	m := aware.NewManager(sim, aware.Config{ProtocolLogger: trace})
	sim.Attach(m)
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(func() {
		sim.Close()
		m.Stop()
	})

	printer := newListener()
	phone := newListener()
	require.NoError(t, m.Connect(1, printer, aware.ListenAllEvents))
	require.NoError(t, m.Connect(2, phone, aware.ListenAllEvents))
	require.NoError(t, m.RequestConfig(1, hal.ConfigRequest{ClusterLow: 5, ClusterHigh: 100, MasterPreference: 111}))

	require.Eventually(t, func() bool {
		configs, events, _, _ := printer.snapshot()
		return len(configs) == 1 && has(events, "identity")
	}, waitFor, time.Millisecond)
	require.Eventually(t, func() bool {
		configs, _, _, _ := phone.snapshot()
		return len(configs) == 1
	}, waitFor, time.Millisecond)

	// A remote device publishing "chat" that echoes whatever it receives.
	peerMAC := hal.MAC{0x02, 0xBB, 0, 0, 0, 1}
	peer, err := sim.AddPeer(halsim.Peer{ServiceName: "chat", MAC: peerMAC, Echo: true})
	require.NoError(t, err)

	require.NoError(t, m.CreateSession(2, 1, aware.SessionSubscribe, phone, aware.ListenAllSessionEvents))
	require.NoError(t, m.Subscribe(2, 1, hal.SubscribeData{ServiceName: "chat"}, hal.SubscribeSettings{Type: hal.SubscribeActive}))
	require.Eventually(t, func() bool { return phone.matchCount(peer) == 1 }, waitFor, time.Millisecond)

	require.NoError(t, sim.RotatePeerMAC(peer, hal.MAC{0x02, 0xBB, 0, 0, 0, 2}))
	require.Eventually(t, func() bool { return phone.matchCount(peer) == 2 }, waitFor, time.Millisecond)

	require.NoError(t, m.SendMessage(2, 1, peer, []byte("hello"), 7))
	require.Eventually(t, func() bool {
		_, _, inbox, sent := phone.snapshot()
		return len(inbox) == 1 && len(sent) == 1
	}, waitFor, time.Millisecond)
	_, events, inbox, sent := phone.snapshot()
	assert.Equal(t, []byte("hello"), inbox[0])
	assert.Equal(t, []int{7}, sent)
	assert.False(t, has(events, "send-fail:OTHER"), "message went to the rotated address")

	require.NoError(t, m.CreateSession(1, 1, aware.SessionPublish, printer, aware.ListenAllSessionEvents))
	require.NoError(t, m.Publish(1, 1, hal.PublishData{ServiceName: "print"}, hal.PublishSettings{Count: 3}))
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	var snap aware.Snapshot
	require.Eventually(t, func() bool {
		var err error
		snap, err = m.Snapshot(ctx)
		if err != nil || len(snap.Sessions) != 2 {
			return false
		}
		for _, s := range snap.Sessions {
			if s.HalID == 0 {
				return false
			}
		}
		return true
	}, waitFor, time.Millisecond)

	halIDs := sim.Sessions()
	for _, s := range snap.Sessions {
		assert.Contains(t, halIDs, s.HalID)
	}
	publishID := snap.Sessions[0].HalID

	require.NoError(t, sim.Terminate(publishID, hal.TerminateCountReached))
	require.Eventually(t, func() bool {
		_, events, _, _ := printer.snapshot()
		return has(events, "publish-terminated:DONE")
	}, waitFor, time.Millisecond)

	// The phone leaves; its subscribe is stopped and the printer's
	// configuration is all that remains.
	require.NoError(t, m.Disconnect(2))
	require.Eventually(t, func() bool { return len(sim.Sessions()) == 0 }, waitFor, time.Millisecond)

	require.NoError(t, m.Disconnect(1))
	require.Eventually(t, func() bool {
		_, enabled := sim.Enabled()
		return !enabled
	}, waitFor, time.Millisecond)

	require.Eventually(t, func() bool {
		snap, err := m.Snapshot(ctx)
		return err == nil && snap.PendingTransactions == 0
	}, waitFor, time.Millisecond)
	assert.Zero(t, trace.unknown())
}

func TestCoordinatorOverSimulatorNanDown(t *testing.T) {
	sim := halsim.New(halsim.Config{})
	m := aware.NewManager(sim, aware.Config{})
	sim.Attach(m)
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(func() {
		sim.Close()
		m.Stop()
	})

	l := newListener()
	require.NoError(t, m.Connect(1, l, aware.ListenAllEvents))
	require.NoError(t, m.RequestConfig(1, hal.DefaultConfigRequest()))
	require.NoError(t, m.CreateSession(1, 1, aware.SessionPublish, l, aware.ListenAllSessionEvents))
	require.NoError(t, m.Publish(1, 1, hal.PublishData{ServiceName: "svc"}, hal.PublishSettings{}))
	require.Eventually(t, func() bool { return len(sim.Sessions()) == 1 }, waitFor, time.Millisecond)

	require.NoError(t, sim.NanDown(hal.StatusNoSpaceAvailable))
	require.Eventually(t, func() bool {
		_, events, _, _ := l.snapshot()
		return has(events, "nan-down:NO_RESOURCES")
	}, waitFor, time.Millisecond)

	// After NAN went down the publish fails on the disabled radio.
	require.NoError(t, m.Publish(1, 1, hal.PublishData{ServiceName: "svc"}, hal.PublishSettings{}))
	require.Eventually(t, func() bool {
		_, events, _, _ := l.snapshot()
		return has(events, "publish-fail:OTHER")
	}, waitFor, time.Millisecond)
}
