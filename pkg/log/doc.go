// Package log provides protocol event logging for instrument sessions.
//
// The session facade emits one Event per SCPI command sent and per
// response received, plus session state changes and errors. Events are
// structured records, not text lines, so they can be written to a
// compact CBOR file for later analysis, mirrored to log/slog for
// development, or both at once.
//
// Applications implement the Logger interface (or use one of the
// provided implementations) and pass it to the session facade. Passing
// nil disables logging entirely.
//
// Implementations provided:
//   - NoopLogger: discards everything
//   - SlogAdapter: forwards to a log/slog logger
//   - FileLogger: appends CBOR-encoded events to a file
//   - MultiLogger: fans out to several loggers
//   - Reader: streams events back out of a CBOR log file
package log
