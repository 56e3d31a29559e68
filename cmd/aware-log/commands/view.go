// Package commands implements the aware-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/awaremux/awaremux-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [inst:id] DIRECTION CATEGORY label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [inst:%s] %-3s %s %s",
		ts, shortenID(event.InstanceID), event.Direction, event.Category, eventLabel(event))
	if event.ClientID != 0 {
		fmt.Fprintf(w, " client=%d", event.ClientID)
	}
	if event.SessionID != 0 {
		fmt.Fprintf(w, " session=%d", event.SessionID)
	}
	fmt.Fprintln(w)

	switch {
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Callback != nil:
		formatCallbackDetails(w, event.Callback)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

func eventLabel(event log.Event) string {
	switch {
	case event.Command != nil:
		return event.Command.Op.String()
	case event.Callback != nil:
		return event.Callback.Kind.String()
	case event.StateChange != nil:
		return "State"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of an id.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	fmt.Fprintf(w, "  TxID: %d\n", cmd.TxID)
	if cmd.PubSubID != 0 {
		fmt.Fprintf(w, "  PubSubID: %d\n", cmd.PubSubID)
	}
	if cmd.PeerID != 0 {
		fmt.Fprintf(w, "  Peer: %d (%s)\n", cmd.PeerID, cmd.MAC)
	}
	if cmd.Config != nil {
		fmt.Fprintf(w, "  Config: %s\n", cmd.Config)
	}
	if cmd.PayloadSize != 0 {
		fmt.Fprintf(w, "  Payload: %d bytes\n", cmd.PayloadSize)
	}
	if cmd.Rejected {
		fmt.Fprintln(w, "  REJECTED")
	}
}

func formatCallbackDetails(w io.Writer, cb *log.CallbackEvent) {
	if cb.Kind.Correlated() {
		fmt.Fprintf(w, "  TxID: %d", cb.TxID)
		if cb.Unknown {
			fmt.Fprint(w, " (unknown)")
		}
		fmt.Fprintln(w)
	}
	if cb.PubSubID != 0 {
		fmt.Fprintf(w, "  PubSubID: %d\n", cb.PubSubID)
	}
	if cb.PeerID != 0 {
		fmt.Fprintf(w, "  Peer: %d\n", cb.PeerID)
	}
	if cb.MAC != "" {
		fmt.Fprintf(w, "  MAC: %s\n", cb.MAC)
	}
	if cb.Status != nil {
		fmt.Fprintf(w, "  Status: %s (%d)\n", cb.Status, *cb.Status)
	}
	if cb.Reason != nil {
		fmt.Fprintf(w, "  Reason: %s\n", cb.Reason)
	}
	fmt.Fprintf(w, "  Delivered: %t\n", cb.Delivered)
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity)
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.TxID != 0 {
		fmt.Fprintf(w, "  TxID: %d\n", e.TxID)
	}
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
}

// ParseDirectionFlag parses a direction string (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "callback":
		return log.CategoryCallback, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be command, callback, state, or error)", s)
	}
}

// RunView writes every event matching filter to output.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
