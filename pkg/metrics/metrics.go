// Package metrics exports coordinator measurements to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
)

const namespace = "awaremux"

// Coordinator implements aware.Metrics with Prometheus collectors.
type Coordinator struct {
	commands       *prometheus.CounterVec
	commandRejects *prometheus.CounterVec
	callbacks      *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	unknownTx      *prometheus.CounterVec
	pendingTx      prometheus.Gauge
	clients        prometheus.Gauge
	sessions       prometheus.Gauge
}

// NewCoordinator creates the collectors and registers them with reg. The
// instance label separates several radios in one process.
func NewCoordinator(reg prometheus.Registerer, instance string) (*Coordinator, error) {
	labels := prometheus.Labels{"instance_id": instance}

	c := &Coordinator{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "hal",
				Name:        "commands_total",
				Help:        "HAL commands accepted by the driver.",
				ConstLabels: labels,
			},
			[]string{"op"},
		),
		commandRejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "hal",
				Name:        "commands_rejected_total",
				Help:        "HAL commands that never reached the radio.",
				ConstLabels: labels,
			},
			[]string{"op"},
		),
		callbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "hal",
				Name:        "callbacks_total",
				Help:        "HAL callbacks processed.",
				ConstLabels: labels,
			},
			[]string{"callback"},
		),
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "listener",
				Name:        "deliveries_total",
				Help:        "Callback outcomes by whether a listener received them.",
				ConstLabels: labels,
			},
			[]string{"callback", "delivered"},
		),
		unknownTx: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "hal",
				Name:        "unknown_transactions_total",
				Help:        "Callbacks carrying a transaction id that was not in flight.",
				ConstLabels: labels,
			},
			[]string{"callback"},
		),
		pendingTx: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "hal",
			Name:        "pending_transactions",
			Help:        "HAL commands awaiting a response.",
			ConstLabels: labels,
		}),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "clients",
			Help:        "Connected clients.",
			ConstLabels: labels,
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "sessions",
			Help:        "Live publish and subscribe sessions.",
			ConstLabels: labels,
		}),
	}

	for _, col := range []prometheus.Collector{
		c.commands, c.commandRejects, c.callbacks, c.deliveries, c.unknownTx,
		c.pendingTx, c.clients, c.sessions,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Coordinator) CommandIssued(op hal.Op) {
	c.commands.WithLabelValues(op.String()).Inc()
}

func (c *Coordinator) CommandRejected(op hal.Op) {
	c.commandRejects.WithLabelValues(op.String()).Inc()
}

func (c *Coordinator) CallbackReceived(kind hal.CallbackKind) {
	c.callbacks.WithLabelValues(kind.String()).Inc()
}

func (c *Coordinator) CallbackDelivered(kind hal.CallbackKind) {
	c.deliveries.WithLabelValues(kind.String(), "true").Inc()
}

func (c *Coordinator) CallbackSuppressed(kind hal.CallbackKind) {
	c.deliveries.WithLabelValues(kind.String(), "false").Inc()
}

func (c *Coordinator) UnknownTransaction(kind hal.CallbackKind) {
	c.unknownTx.WithLabelValues(kind.String()).Inc()
}

func (c *Coordinator) SetPendingTransactions(n int) {
	c.pendingTx.Set(float64(n))
}

func (c *Coordinator) SetClients(n int) {
	c.clients.Set(float64(n))
}

func (c *Coordinator) SetSessions(n int) {
	c.sessions.Set(float64(n))
}

var _ aware.Metrics = (*Coordinator)(nil)
