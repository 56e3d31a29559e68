// Package log provides the HAL protocol trace for the NAN coordinator.
//
// Every command the coordinator sends to the HAL and every callback it
// receives can be captured as an Event. This is separate from operational
// logging (slog): the trace is a complete, machine-readable record of the
// command/response traffic, keyed by transaction id, for debugging
// correlation problems after the fact.
//
// # Basic Usage
//
//	// Development: print the trace through slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// Production: append to a binary trace file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/aware/hal.alog")
//
//	// Both
//	cfg.ProtocolLogger = log.NewMultiLogger(adapter, fileLogger)
//
// # Event Types
//
//   - Command: an outgoing HAL command (CommandEvent)
//   - Callback: an incoming HAL callback (CallbackEvent)
//   - State: client/session/device lifecycle changes (StateChangeEvent)
//   - Error: unknown transactions and rejected commands (ErrorEventData)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys and use
// the .alog extension. The aware-log tool views and summarizes them.
package log
