package interactive

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaremux/awaremux-go/internal/halsim"
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
)

type harness struct {
	shell *Shell
	mgr   *aware.Manager
	sim   *halsim.HAL
	buf   *bytes.Buffer
}

func newHarness(t *testing.T, withSim bool) *harness {
	t.Helper()
	sim := halsim.New(halsim.Config{})
	mgr := aware.NewManager(sim, aware.DefaultConfig())
	sim.Attach(mgr)
	require.NoError(t, mgr.Start(context.Background()))
	t.Cleanup(func() {
		mgr.Stop()
		sim.Close()
	})

	buf := &bytes.Buffer{}
	var s Simulator
	if withSim {
		s = sim
	}
	return &harness{shell: New(mgr, s, buf), mgr: mgr, sim: sim, buf: buf}
}

func (h *harness) run(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.False(t, h.shell.Execute(context.Background(), line), line)
	}
}

func (h *harness) output() string {
	h.shell.mu.Lock()
	defer h.shell.mu.Unlock()
	return h.buf.String()
}

func (h *harness) waitFor(t *testing.T, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return strings.Contains(h.output(), want)
	}, 2*time.Second, 5*time.Millisecond, "missing %q in:\n%s", want, h.output())
}

func TestShellConfigFlow(t *testing.T) {
	h := newHarness(t, true)

	h.run(t, "connect 1", "config 1 5g pref=7 low=0 high=5")
	h.waitFor(t, "client 1: config completed {5g=true pref=7 cluster=[0,5]}")
	h.waitFor(t, "client 1: identity changed")

	h.run(t, "status")
	out := h.output()
	assert.Contains(t, out, "Requested:   {5g=true pref=7 cluster=[0,5]}")
	assert.Contains(t, out, "Clients (1): [1]")
}

func TestShellDiscoveryAndMessaging(t *testing.T) {
	h := newHarness(t, true)

	h.run(t, "connect 1", "config 1", "peer add printer ink echo", "subscribe 1 1 printer")
	h.waitFor(t, "Peer 1 publishing \"printer\"")
	h.waitFor(t, "session 1/1: match peer 1 info=\"ink\"")

	h.run(t, "send 1 1 1 hello world")
	h.waitFor(t, "Message 1 queued to peer 1")
	h.waitFor(t, "session 1/1: message 1 sent")
	h.waitFor(t, "session 1/1: message from peer 1: \"hello world\"")

	h.run(t, "peer send 1 ping")
	h.waitFor(t, "message from peer 1: \"ping\"")
}

func TestShellSendToUnknownPeer(t *testing.T) {
	h := newHarness(t, true)

	h.run(t, "connect 1", "config 1", "subscribe 1 1 printer")
	require.Eventually(t, func() bool {
		snap, err := h.mgr.Snapshot(context.Background())
		return err == nil && len(snap.Sessions) == 1 && snap.Sessions[0].HalID != 0
	}, 2*time.Second, 5*time.Millisecond)

	h.run(t, "send 1 1 42 hi")
	h.waitFor(t, "session 1/1: message 1 failed (OTHER)")
}

func TestShellTerminate(t *testing.T) {
	h := newHarness(t, true)

	h.run(t, "connect 1", "config 1", "publish 1 1 printer")
	require.Eventually(t, func() bool {
		return len(h.sim.Sessions()) == 1
	}, 2*time.Second, 5*time.Millisecond)

	h.run(t, "terminate 1 timeout")
	h.waitFor(t, "session 1/1: publish terminated (FAIL)")
}

func TestShellCapabilities(t *testing.T) {
	h := newHarness(t, false)

	h.run(t, "caps")
	h.waitFor(t, "[CAPS] publishes=8 subscribes=8")
}

func TestShellWithoutSimulator(t *testing.T) {
	h := newHarness(t, false)

	for _, cmd := range []string{"peer add x", "terminate 1", "nandown", "cluster 02:00:00:00:00:01"} {
		h.run(t, cmd)
	}
	assert.Equal(t, 4, strings.Count(h.output(), "Not available"))
}

func TestShellUsageAndErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"connect", "Usage: connect <client>"},
		{"connect x", "invalid client id: x"},
		{"connect -1", "invalid client id: -1"},
		{"config 1 low=9 high=1", "invalid NAN configuration"},
		{"config 1 band=2", "unknown option: band"},
		{"config 1 pref", "invalid option: pref"},
		{"publish 1 1", "Usage: publish"},
		{"subscribe 1 0 x", "invalid session id: 0"},
		{"send 1 1 peer hi", "invalid peer id: peer"},
		{"destroy 1", "Usage: destroy"},
		{"terminate 1 never", "unknown reason: never"},
		{"peer rotate 1 nope", "invalid MAC address"},
		{"peer jump 1", "Unknown peer command: jump"},
		{"bogus", "Unknown command: bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t, true)
			h.run(t, tt.line)
			assert.Contains(t, h.output(), tt.want)
		})
	}
}

func TestShellQuit(t *testing.T) {
	h := newHarness(t, false)
	assert.True(t, h.shell.Execute(context.Background(), "quit"))
	assert.True(t, h.shell.Execute(context.Background(), "  EXIT "))
	assert.False(t, h.shell.Execute(context.Background(), "   "))
}

func TestParseConfig(t *testing.T) {
	got, err := parseConfig([]string{"pref=200", "HIGH=0x10", "5G"})
	require.NoError(t, err)
	assert.Equal(t, hal.ConfigRequest{Support5g: true, MasterPreference: 200, ClusterHigh: 0x10}, got)

	got, err = parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, hal.DefaultConfigRequest(), got)
}
