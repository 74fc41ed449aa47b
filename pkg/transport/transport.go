package transport

import "errors"

// Transport constants.
const (
	// DefaultPort is the LXI raw-socket port of the SPD3303X family.
	DefaultPort = 5025

	// DefaultPortString is DefaultPort for address assembly.
	DefaultPortString = "5025"

	// MaxResponseSize bounds a single response read. 4 KB is ample for
	// any documented reply.
	MaxResponseSize = 4096
)

// Transport errors.
var (
	// ErrClosed indicates the session was closed; no further
	// operations are valid.
	ErrClosed = errors.New("transport closed")
)

// Transport is an open byte-level session to an instrument.
//
// Implementations must support one writer and one reader at a time;
// serializing whole write-then-read exchanges is the caller's job (the
// session facade holds one exchange lock). Close is terminal.
type Transport interface {
	// Write sends raw bytes, blocking until accepted or error.
	Write(p []byte) error

	// Read reads up to max bytes, blocking until data arrives, the
	// read deadline expires, or the session fails.
	Read(max int) ([]byte, error)

	// Close terminates the session.
	Close() error
}

// Compile-time interface satisfaction check.
var _ Transport = (*Conn)(nil)
