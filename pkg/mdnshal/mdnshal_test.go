package mdnshal

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/hal/mocks"
)

type fakeAd struct {
	mu       sync.Mutex
	instance string
	txt      []string
	shutdown bool
}

func (a *fakeAd) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shutdown = true
}

func (a *fakeAd) isShutdown() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shutdown
}

// fakeNet records registrations and feeds browse results.
type fakeNet struct {
	mu      sync.Mutex
	ads     []*fakeAd
	fail    error
	feeds   chan *zeroconf.ServiceEntry
	browses int
}

func newFakeNet() *fakeNet {
	return &fakeNet{feeds: make(chan *zeroconf.ServiceEntry, 8)}
}

func (n *fakeNet) register(instance, _, _ string, _ int, txt []string, _ []net.Interface, _ ...zeroconf.ServerOption) (advertisement, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return nil, n.fail
	}
	ad := &fakeAd{instance: instance, txt: txt}
	n.ads = append(n.ads, ad)
	return ad, nil
}

func (n *fakeNet) browse(ctx context.Context, _, _ string, entries, _ chan<- *zeroconf.ServiceEntry, _ ...zeroconf.ClientOption) error {
	n.mu.Lock()
	n.browses++
	n.mu.Unlock()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-n.feeds:
			select {
			case entries <- e:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (n *fakeNet) registered() []*fakeAd {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*fakeAd(nil), n.ads...)
}

func entry(instance string, info ServiceInfo) *zeroconf.ServiceEntry {
	e := &zeroconf.ServiceEntry{}
	e.Instance = instance
	e.Text = TXTRecordsToStrings(EncodeServiceTXT(info))
	return e
}

func newTestHAL(t *testing.T, caps hal.Capabilities) (*HAL, *fakeNet, *mocks.MockCallbacks) {
	t.Helper()
	n := newFakeNet()
	h := New(Config{Capabilities: caps})
	h.register = n.register
	h.browse = n.browse
	cb := mocks.NewMockCallbacks(t)
	h.Attach(cb)
	t.Cleanup(h.Close)
	return h, n, cb
}

func enable(t *testing.T, h *HAL, cb *mocks.MockCallbacks) {
	t.Helper()
	done := make(chan struct{})
	cb.EXPECT().OnConfigCompleted(uint16(1)).Return()
	cb.EXPECT().OnInterfaceAddressChange(mock.Anything).Return()
	cb.EXPECT().OnClusterChange(hal.ClusterStarted, mock.Anything).Run(func(hal.ClusterEvent, hal.MAC) { close(done) }).Return()
	require.NoError(t, h.EnableAndConfigure(1, hal.DefaultConfigRequest()))
	waitFor(t, done)
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestNewUsesZeroconf(t *testing.T) {
	var browse browseFunc = zeroconf.Browse
	h := New(Config{})
	if h.browse == nil || browse == nil {
		t.Fatal("browse not wired")
	}
	if h.register == nil {
		t.Fatal("register not wired")
	}
}

func TestNotAttached(t *testing.T) {
	h := New(Config{})
	defer h.Close()
	err := h.Disable(1)
	assert.ErrorIs(t, err, ErrNotAttached)
}

func TestClosed(t *testing.T) {
	h, _, _ := newTestHAL(t, hal.Capabilities{})
	h.Close()
	assert.ErrorIs(t, h.GetCapabilities(1), ErrClosed)
}

func TestEnableInvalidConfig(t *testing.T) {
	h, _, cb := newTestHAL(t, hal.Capabilities{})
	done := make(chan struct{})
	cb.EXPECT().OnConfigFailed(uint16(3), hal.StatusInvalidParam).Run(func(uint16, hal.Status) { close(done) }).Return()

	require.NoError(t, h.EnableAndConfigure(3, hal.ConfigRequest{ClusterLow: 10, ClusterHigh: 1}))
	waitFor(t, done)
}

func TestPublishRequiresEnable(t *testing.T) {
	h, n, cb := newTestHAL(t, hal.Capabilities{})
	done := make(chan struct{})
	cb.EXPECT().OnPublishFail(uint16(2), hal.StatusDisabled).Run(func(uint16, hal.Status) { close(done) }).Return()

	require.NoError(t, h.Publish(2, 0, hal.PublishData{ServiceName: "svc"}, hal.PublishSettings{}))
	waitFor(t, done)
	assert.Empty(t, n.registered())
}

func TestPublishRegistersService(t *testing.T) {
	h, n, cb := newTestHAL(t, hal.Capabilities{MaxPublishes: 4})
	enable(t, h, cb)

	done := make(chan struct{})
	cb.EXPECT().OnPublishSuccess(uint16(2), uint32(1)).Run(func(uint16, uint32) { close(done) }).Return()
	require.NoError(t, h.Publish(2, 0, hal.PublishData{ServiceName: "printer", ServiceSpecificInfo: []byte("hi")}, hal.PublishSettings{}))
	waitFor(t, done)

	ads := n.registered()
	require.Len(t, ads, 1)
	info, err := DecodeServiceTXT(StringsToTXTRecords(ads[0].txt))
	require.NoError(t, err)
	assert.Equal(t, "printer", info.ServiceName)
	assert.Equal(t, []byte("hi"), info.ServiceSpecificInfo)
	assert.Equal(t, h.Node(), info.Node)

	t.Run("update re-registers", func(t *testing.T) {
		done := make(chan struct{})
		cb.EXPECT().OnPublishSuccess(uint16(3), uint32(1)).Run(func(uint16, uint32) { close(done) }).Return()
		require.NoError(t, h.Publish(3, 1, hal.PublishData{ServiceName: "printer"}, hal.PublishSettings{}))
		waitFor(t, done)

		ads := n.registered()
		require.Len(t, ads, 2)
		assert.True(t, ads[0].isShutdown())
		assert.False(t, ads[1].isShutdown())
	})

	t.Run("stop withdraws", func(t *testing.T) {
		done := make(chan struct{})
		cb.EXPECT().OnStopCompleted(uint16(4)).Run(func(uint16) { close(done) }).Return()
		require.NoError(t, h.StopPublish(4, 1))
		waitFor(t, done)
		assert.True(t, n.registered()[1].isShutdown())
	})
}

func TestPublishRegisterError(t *testing.T) {
	h, n, cb := newTestHAL(t, hal.Capabilities{})
	enable(t, h, cb)
	n.fail = errors.New("no multicast")

	done := make(chan struct{})
	cb.EXPECT().OnPublishFail(uint16(2), hal.StatusInternalFailure).Run(func(uint16, hal.Status) { close(done) }).Return()
	require.NoError(t, h.Publish(2, 0, hal.PublishData{ServiceName: "x"}, hal.PublishSettings{}))
	waitFor(t, done)
}

func TestPublishLimit(t *testing.T) {
	h, _, cb := newTestHAL(t, hal.Capabilities{MaxPublishes: 1})
	enable(t, h, cb)

	ok := make(chan struct{})
	cb.EXPECT().OnPublishSuccess(uint16(2), uint32(1)).Run(func(uint16, uint32) { close(ok) }).Return()
	require.NoError(t, h.Publish(2, 0, hal.PublishData{ServiceName: "a"}, hal.PublishSettings{}))
	waitFor(t, ok)

	full := make(chan struct{})
	cb.EXPECT().OnPublishFail(uint16(3), hal.StatusNoSpaceAvailable).Run(func(uint16, hal.Status) { close(full) }).Return()
	require.NoError(t, h.Publish(3, 0, hal.PublishData{ServiceName: "b"}, hal.PublishSettings{}))
	waitFor(t, full)
}

func TestUpdateUnknownSession(t *testing.T) {
	h, _, cb := newTestHAL(t, hal.Capabilities{})
	enable(t, h, cb)

	done := make(chan struct{})
	cb.EXPECT().OnSubscribeFail(uint16(2), hal.StatusInvalidPublishSubscribeID).Run(func(uint16, hal.Status) { close(done) }).Return()
	require.NoError(t, h.Subscribe(2, 9, hal.SubscribeData{ServiceName: "x"}, hal.SubscribeSettings{}))
	waitFor(t, done)
}

func TestSubscribeReportsMatches(t *testing.T) {
	h, n, cb := newTestHAL(t, hal.Capabilities{})
	enable(t, h, cb)

	subscribed := make(chan struct{})
	cb.EXPECT().OnSubscribeSuccess(uint16(2), uint32(1)).Run(func(uint16, uint32) { close(subscribed) }).Return()
	require.NoError(t, h.Subscribe(2, 0, hal.SubscribeData{ServiceName: "printer"}, hal.SubscribeSettings{}))
	waitFor(t, subscribed)

	matched := make(chan hal.MAC, 2)
	cb.EXPECT().OnMatch(uint32(1), uint32(1), mock.Anything, []byte("ink"), []byte(nil)).
		Run(func(_ uint32, _ uint32, mac hal.MAC, _ []byte, _ []byte) { matched <- mac }).Return()

	// Ignored: other service, own node, malformed.
	n.feeds <- entry("scanner-1", ServiceInfo{ServiceName: "scanner", Node: "other"})
	n.feeds <- entry("printer-self", ServiceInfo{ServiceName: "printer", Node: h.Node()})
	bad := &zeroconf.ServiceEntry{}
	bad.Instance = "broken"
	n.feeds <- bad

	n.feeds <- entry("printer-1", ServiceInfo{ServiceName: "printer", ServiceSpecificInfo: []byte("ink"), Node: "other"})
	n.feeds <- entry("printer-1", ServiceInfo{ServiceName: "printer", ServiceSpecificInfo: []byte("ink"), Node: "other"})

	var macs []hal.MAC
	for range 2 {
		select {
		case mac := <-matched:
			macs = append(macs, mac)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for match")
		}
	}
	assert.Equal(t, macs[0], macs[1], "same instance keeps its address")
	assert.Equal(t, deriveMAC("printer-1"), macs[0])

	stopped := make(chan struct{})
	cb.EXPECT().OnStopCompleted(uint16(3)).Run(func(uint16) { close(stopped) }).Return()
	require.NoError(t, h.StopSubscribe(3, 1))
	waitFor(t, stopped)
}

func TestSendMessageUnsupported(t *testing.T) {
	h, _, cb := newTestHAL(t, hal.Capabilities{})
	done := make(chan struct{})
	cb.EXPECT().OnMessageSendFail(uint16(5), hal.StatusProtocolFailure).Run(func(uint16, hal.Status) { close(done) }).Return()

	require.NoError(t, h.SendMessage(5, 1, 1, hal.MAC{2}, []byte("x")))
	waitFor(t, done)
}

func TestGetCapabilities(t *testing.T) {
	caps := hal.Capabilities{MaxPublishes: 2, MaxSubscribes: 3}
	h, _, cb := newTestHAL(t, caps)
	done := make(chan struct{})
	cb.EXPECT().OnCapabilitiesUpdate(uint16(7), caps).Run(func(uint16, hal.Capabilities) { close(done) }).Return()

	require.NoError(t, h.GetCapabilities(7))
	waitFor(t, done)
}

func TestDisableWithdrawsEverything(t *testing.T) {
	h, n, cb := newTestHAL(t, hal.Capabilities{})
	enable(t, h, cb)

	published := make(chan struct{})
	cb.EXPECT().OnPublishSuccess(uint16(2), uint32(1)).Run(func(uint16, uint32) { close(published) }).Return()
	require.NoError(t, h.Publish(2, 0, hal.PublishData{ServiceName: "a"}, hal.PublishSettings{}))
	waitFor(t, published)

	disabled := make(chan struct{})
	cb.EXPECT().OnDisableCompleted(uint16(3)).Run(func(uint16) { close(disabled) }).Return()
	require.NoError(t, h.Disable(3))
	waitFor(t, disabled)

	assert.True(t, n.registered()[0].isShutdown())
}

func TestDeriveMAC(t *testing.T) {
	mac := deriveMAC("node")
	assert.Equal(t, mac, deriveMAC("node"))
	assert.NotEqual(t, mac, deriveMAC("other"))
	assert.Equal(t, byte(0x02), mac[0]&0x03, "locally administered unicast")
}
