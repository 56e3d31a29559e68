package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/awaremux/awaremux-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by view and filter.
type FilterOptions struct {
	InstanceID string
	ClientID   int
	TxID       string
	TimeStart  string
	TimeEnd    string
	Direction  string
	Category   string
}

// BuildFilter converts the flags to a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		InstanceID: opts.InstanceID,
		ClientID:   opts.ClientID,
	}

	if opts.TxID != "" {
		v, err := strconv.ParseUint(opts.TxID, 10, 16)
		if err != nil {
			return filter, fmt.Errorf("invalid tx-id: %s", opts.TxID)
		}
		id := uint16(v)
		filter.TxID = &id
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Direction != "" {
		d, err := ParseDirectionFlag(opts.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}

	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}

	return filter, nil
}

// RunFilter copies the events of path matching filter to a new trace file
// and returns how many were written.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = logger.Close()
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}
	return count, logger.Close()
}
