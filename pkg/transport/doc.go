// Package transport provides the byte-level session to an instrument.
//
// The protocol layer consumes exactly two operations from a transport:
// send raw bytes, and read up to N bytes blocking until data or error.
// Everything above that boundary (command grammar, decoding, capability
// rules) lives in pkg/scpi and pkg/instrument; everything below it
// (dialing, timeouts, deadlines) lives here.
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│    SCPI command/response       │
//	├────────────────────────────────┤
//	│   newline-terminated ASCII     │
//	├────────────────────────────────┤
//	│     TCP (raw socket, 5025)     │
//	└────────────────────────────────┘
//
// The SPD3303X exposes a plain LXI raw socket on port 5025; there is no
// handshake or framing layer beyond the line terminator. Responses are
// bounded by MaxResponseSize and may carry NUL padding, which the
// decoder strips.
//
// Cancellation and timeout policy belongs to this layer: the session
// facade never retries and attaches no deadlines of its own.
package transport
