package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config configures a raw-socket connection.
type Config struct {
	// DialTimeout bounds connection establishment (default: 10s).
	// Ignored when the dial context already carries a deadline.
	DialTimeout time.Duration

	// ReadTimeout bounds each single response read (default: 5s).
	// Zero means block indefinitely.
	ReadTimeout time.Duration
}

// Defaults.
const (
	DefaultDialTimeout = 10 * time.Second
	DefaultReadTimeout = 5 * time.Second
)

// Conn is a TCP raw-socket session to an instrument.
type Conn struct {
	conn        net.Conn
	connID      string
	readTimeout time.Duration

	closeOnce sync.Once
	closeCh   chan struct{}

	writeMu sync.Mutex
	readMu  sync.Mutex
}

// Dial opens a raw-socket session to address (host:port; use
// DefaultPort when in doubt).
func Dial(ctx context.Context, address string, config Config) (*Conn, error) {
	if config.DialTimeout == 0 {
		config.DialTimeout = DefaultDialTimeout
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = DefaultReadTimeout
	}

	// Apply timeout from config if context doesn't have one
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.DialTimeout)
		defer cancel()
	}

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial failed: %w", err)
	}

	return NewConn(conn, config), nil
}

// NewConn wraps an already-established connection. Dial is the normal
// entry point; NewConn exists for transports established elsewhere and
// for tests driving a pipe.
func NewConn(conn net.Conn, config Config) *Conn {
	return &Conn{
		conn:        conn,
		connID:      uuid.NewString(),
		readTimeout: config.ReadTimeout,
		closeCh:     make(chan struct{}),
	}
}

// ConnectionID returns the unique ID assigned to this session.
func (c *Conn) ConnectionID() string {
	return c.connID
}

// LocalAddr returns the local network address.
func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Write sends raw bytes to the instrument.
func (c *Conn) Write(p []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	select {
	case <-c.closeCh:
		return ErrClosed
	default:
	}

	if _, err := c.conn.Write(p); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// Read reads up to max bytes. It returns after a single successful
// read from the socket: SCPI responses are short single segments, and
// trailing padding is the decoder's concern.
func (c *Conn) Read(max int) ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	select {
	case <-c.closeCh:
		return nil, ErrClosed
	default:
	}

	if max <= 0 || max > MaxResponseSize {
		max = MaxResponseSize
	}

	if c.readTimeout > 0 {
		c.conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		defer c.conn.SetReadDeadline(time.Time{})
	}

	buf := make([]byte, max)
	n, err := c.conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	return buf[:n], nil
}

// Close closes the session. It is safe to call multiple times.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		err = c.conn.Close()
	})
	return err
}
