package instrument

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scpikit/spd3303x-go/pkg/log"
	"github.com/scpikit/spd3303x-go/pkg/scpi"
	"github.com/scpikit/spd3303x-go/pkg/transport"
)

// Config configures a session.
type Config struct {
	// Logger receives one event per exchange. Nil disables logging.
	Logger log.Logger

	// Transport configures connection establishment and read timeouts
	// when the session dials its own connection.
	Transport transport.Config
}

// SPD3303X is a session with one power supply.
type SPD3303X struct {
	tr     transport.Transport
	logger log.Logger
	connID string
	remote string

	// mu serializes exchanges. The endpoint is half duplex; a second
	// command written before the first response is read corrupts both.
	mu sync.Mutex
}

// New wraps an established transport in a session. The caller keeps
// ownership of nothing: Close closes the transport.
func New(tr transport.Transport, config Config) *SPD3303X {
	logger := config.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}

	connID := uuid.NewString()
	if c, ok := tr.(interface{ ConnectionID() string }); ok {
		connID = c.ConnectionID()
	}

	remote := ""
	if c, ok := tr.(interface{ RemoteAddr() net.Addr }); ok {
		if addr := c.RemoteAddr(); addr != nil {
			remote = addr.String()
		}
	}

	return &SPD3303X{
		tr:     tr,
		logger: logger,
		connID: connID,
		remote: remote,
	}
}

// Dial connects to the instrument at address and returns a session.
// An address without a port gets the default SCPI raw-socket port.
func Dial(ctx context.Context, address string, config Config) (*SPD3303X, error) {
	if !strings.Contains(address, ":") {
		address = net.JoinHostPort(address, transport.DefaultPortString)
	}

	conn, err := transport.Dial(ctx, address, config.Transport)
	if err != nil {
		return nil, err
	}

	d := New(conn, config)
	d.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: d.connID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryState,
		RemoteAddr:   d.remote,
		StateChange:  &log.StateChangeEvent{NewState: "connected"},
	})
	return d, nil
}

// ConnectionID returns the unique ID of this session.
func (d *SPD3303X) ConnectionID() string {
	return d.connID
}

// Close closes the underlying transport.
func (d *SPD3303X) Close() error {
	err := d.tr.Close()
	d.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: d.connID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryState,
		RemoteAddr:   d.remote,
		StateChange:  &log.StateChangeEvent{OldState: "connected", NewState: "closed"},
	})
	return err
}

// write sends one command line with no expected response.
func (d *SPD3303X) write(cmd string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeLocked(cmd)
}

func (d *SPD3303X) writeLocked(cmd string) error {
	line := strings.TrimSuffix(cmd, scpi.Terminator)
	d.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: d.connID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryExchange,
		RemoteAddr:   d.remote,
		Command:      &log.CommandEvent{Line: line},
	})

	if err := d.tr.Write([]byte(cmd)); err != nil {
		d.logError(err, line)
		return err
	}
	return nil
}

// query sends one command line and reads the single-line response. An
// empty (or all-padding) response is an error: every query the facade
// issues has a defined answer.
func (d *SPD3303X) query(cmd string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	if err := d.writeLocked(cmd); err != nil {
		return "", err
	}

	raw, err := d.tr.Read(transport.MaxResponseSize)
	if err != nil {
		d.logError(err, strings.TrimSuffix(cmd, scpi.Terminator))
		return "", err
	}

	resp := scpi.TrimResponse(raw)
	if resp == "" {
		err := scpi.ErrEmptyResponse
		d.logError(err, strings.TrimSuffix(cmd, scpi.Terminator))
		return "", err
	}

	d.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: d.connID,
		Direction:    log.DirectionIn,
		Category:     log.CategoryExchange,
		RemoteAddr:   d.remote,
		Response: &log.ResponseEvent{
			Line:    resp,
			Command: strings.TrimSuffix(cmd, scpi.Terminator),
			Latency: time.Since(start),
		},
	})
	return resp, nil
}

// queryFloat is the common query-then-parse path for numeric answers.
func (d *SPD3303X) queryFloat(cmd string) (float64, error) {
	resp, err := d.query(cmd)
	if err != nil {
		return 0, err
	}
	return scpi.ParseFloat(resp)
}

func (d *SPD3303X) logError(err error, context string) {
	d.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: d.connID,
		Direction:    log.DirectionIn,
		Category:     log.CategoryError,
		RemoteAddr:   d.remote,
		Error:        &log.ErrorEventData{Message: err.Error(), Context: context},
	})
}
