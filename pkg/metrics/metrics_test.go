package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaremux/awaremux-go/internal/halsim"
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/metrics"
)

func TestCoordinatorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCoordinator(reg, "radio0")
	require.NoError(t, err)

	c.CommandIssued(hal.OpPublish)
	c.CommandIssued(hal.OpPublish)
	c.CommandRejected(hal.OpDisable)
	c.CallbackReceived(hal.CallbackMatch)
	c.CallbackDelivered(hal.CallbackMatch)
	c.CallbackSuppressed(hal.CallbackNanDown)
	c.UnknownTransaction(hal.CallbackConfigCompleted)
	c.SetPendingTransactions(3)
	c.SetClients(2)
	c.SetSessions(5)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 9, count)
	assert.Equal(t, 2.0, gather(t, reg, "awaremux_hal_commands_total", "op", "Publish"))
	assert.Equal(t, 1.0, gather(t, reg, "awaremux_hal_commands_rejected_total", "op", "Disable"))
	assert.Equal(t, 1.0, gather(t, reg, "awaremux_listener_deliveries_total", "delivered", "false"))
	assert.Equal(t, 3.0, gather(t, reg, "awaremux_hal_pending_transactions", "instance_id", "radio0"))
	assert.Equal(t, 5.0, gather(t, reg, "awaremux_sessions", "instance_id", "radio0"))
}

func TestCoordinatorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCoordinator(reg, "radio0")
	require.NoError(t, err)

	_, err = metrics.NewCoordinator(reg, "radio0")
	assert.Error(t, err)
}

func TestCoordinatorWithManager(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCoordinator(reg, "sim")
	require.NoError(t, err)

	sim := halsim.New(halsim.Config{})
	m := aware.NewManager(sim, aware.Config{Metrics: c, InstanceID: "sim"})
	sim.Attach(m)
	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	require.NoError(t, m.Connect(1, nil, 0))
	require.NoError(t, m.RequestConfig(1, hal.DefaultConfigRequest()))
	require.NoError(t, m.CreateSession(1, 1, aware.SessionPublish, nil, 0))
	require.NoError(t, m.Publish(1, 1, hal.PublishData{ServiceName: "svc"}, hal.PublishSettings{}))

	require.Eventually(t, func() bool {
		return gather(t, reg, "awaremux_hal_callbacks_total", "callback", "PublishSuccess") == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1.0, gather(t, reg, "awaremux_hal_commands_total", "op", "EnableAndConfigure"))
	assert.Equal(t, 1.0, gather(t, reg, "awaremux_clients", "instance_id", "sim"))
	assert.Equal(t, 1.0, gather(t, reg, "awaremux_sessions", "instance_id", "sim"))
}

// gather returns the summed value of every series of name that carries
// label=value.
func gather(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var sum float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					if m.GetCounter() != nil {
						sum += m.GetCounter().GetValue()
					} else {
						sum += m.GetGauge().GetValue()
					}
				}
			}
		}
	}
	return sum
}
