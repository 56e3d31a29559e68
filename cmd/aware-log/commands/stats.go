package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Commands          map[hal.Op]int
	Callbacks         map[hal.CallbackKind]int
	Rejected          int
	Unknown           int
	Undelivered       int
	Errors            int
	Instances         map[string]int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// Collect reads every event of path into a Stats.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Commands:          make(map[hal.Op]int),
		Callbacks:         make(map[hal.CallbackKind]int),
		Instances:         make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++
	s.Instances[event.InstanceID]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	switch {
	case event.Command != nil:
		s.Commands[event.Command.Op]++
		if event.Command.Rejected {
			s.Rejected++
		}
	case event.Callback != nil:
		s.Callbacks[event.Callback.Kind]++
		if event.Callback.Unknown {
			s.Unknown++
		}
		if !event.Callback.Delivered {
			s.Undelivered++
		}
	case event.Error != nil:
		s.Errors++
	}
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== NAN Coordinator Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Instances:    %d\n", len(stats.Instances))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCommand, log.CategoryCallback, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}

	if len(stats.Commands) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		ops := make([]hal.Op, 0, len(stats.Commands))
		for op := range stats.Commands {
			ops = append(ops, op)
		}
		slices.Sort(ops)
		for _, op := range ops {
			fmt.Fprintf(w, "  %-24s %d\n", op.String()+":", stats.Commands[op])
		}
	}

	if len(stats.Callbacks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Callbacks:")
		kinds := make([]hal.CallbackKind, 0, len(stats.Callbacks))
		for k := range stats.Callbacks {
			kinds = append(kinds, k)
		}
		slices.Sort(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-24s %d\n", k.String()+":", stats.Callbacks[k])
		}
	}

	if stats.Rejected > 0 || stats.Unknown > 0 || stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rejected commands:     %d\n", stats.Rejected)
		fmt.Fprintf(w, "Unknown transactions:  %d\n", stats.Unknown)
		fmt.Fprintf(w, "Errors:                %d\n", stats.Errors)
	}
	fmt.Fprintf(w, "Undelivered callbacks: %d\n", stats.Undelivered)
}
