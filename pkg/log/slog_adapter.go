package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
// Useful during development to watch HAL traffic on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("instance", event.InstanceID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if event.ClientID != 0 {
		attrs = append(attrs, slog.Int("client", event.ClientID))
	}
	if event.SessionID != 0 {
		attrs = append(attrs, slog.Int("session", event.SessionID))
	}

	switch {
	case event.Command != nil:
		c := event.Command
		attrs = append(attrs,
			slog.Uint64("tx", uint64(c.TxID)),
			slog.String("op", c.Op.String()),
		)
		if c.PubSubID != 0 {
			attrs = append(attrs, slog.Uint64("pubsub_id", uint64(c.PubSubID)))
		}
		if c.PeerID != 0 {
			attrs = append(attrs, slog.Uint64("peer", uint64(c.PeerID)))
		}
		if c.MAC != "" {
			attrs = append(attrs, slog.String("mac", c.MAC))
		}
		if c.Config != nil {
			attrs = append(attrs, slog.String("config", c.Config.String()))
		}
		if c.Rejected {
			attrs = append(attrs, slog.Bool("rejected", true))
		}
	case event.Callback != nil:
		cb := event.Callback
		attrs = append(attrs, slog.String("callback", cb.Kind.String()))
		if cb.Kind.Correlated() {
			attrs = append(attrs, slog.Uint64("tx", uint64(cb.TxID)))
		}
		if cb.PubSubID != 0 {
			attrs = append(attrs, slog.Uint64("pubsub_id", uint64(cb.PubSubID)))
		}
		if cb.PeerID != 0 {
			attrs = append(attrs, slog.Uint64("peer", uint64(cb.PeerID)))
		}
		if cb.MAC != "" {
			attrs = append(attrs, slog.String("mac", cb.MAC))
		}
		if cb.Status != nil {
			attrs = append(attrs, slog.String("status", cb.Status.String()))
		}
		if cb.Reason != nil {
			attrs = append(attrs, slog.String("reason", cb.Reason.String()))
		}
		if cb.Unknown {
			attrs = append(attrs, slog.Bool("unknown_tx", true))
		}
		attrs = append(attrs, slog.Bool("delivered", cb.Delivered))
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.TxID != 0 {
			attrs = append(attrs, slog.Uint64("tx", uint64(event.Error.TxID)))
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "hal", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
