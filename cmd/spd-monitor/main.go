// Command spd-monitor polls an SPD3303X-class power supply and prints
// one measurement line per channel per interval. The session is
// supervised: a lost connection is re-dialed with exponential backoff
// and polling resumes where it left off.
//
// Usage:
//
//	spd-monitor -config monitor.yaml
//	spd-monitor -addr 192.168.1.50 -interval 2s
//
// Config file:
//
//	address: 192.168.1.50
//	interval: 1s
//	log_file: session.cborlog
//	channels: [1, 2]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/scpikit/spd3303x-go/pkg/connection"
	"github.com/scpikit/spd3303x-go/pkg/instrument"
	"github.com/scpikit/spd3303x-go/pkg/log"
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	addr       = flag.String("addr", "", "Instrument address (overrides config)")
	interval   = flag.Duration("interval", 0, "Poll interval (overrides config)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "spd-monitor:", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := resolveConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, closeLogger, err := buildLogger(config)
	if err != nil {
		return err
	}
	defer closeLogger()

	monitor := &monitor{config: config, logger: logger}

	manager := connection.NewManager(monitor.connect)
	manager.OnReconnecting(func(attempt int, delay time.Duration) {
		fmt.Fprintf(os.Stderr, "reconnect attempt %d in %s\n", attempt, delay)
	})
	manager.StartReconnectLoop()
	defer manager.Close()

	if err := manager.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer monitor.close()

	return monitor.poll(ctx, manager)
}

func resolveConfig() (*Config, error) {
	var config *Config
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else {
		config = &Config{}
	}

	if *addr != "" {
		config.Address = *addr
	}
	if *interval > 0 {
		config.Interval = *interval
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func buildLogger(config *Config) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeLogger := func() {}

	if config.LogFile != "" {
		fileLogger, err := log.NewFileLogger(config.LogFile)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fileLogger)
		closeLogger = func() { fileLogger.Close() }
	}
	if config.Verbose {
		loggers = append(loggers, log.NewSlogAdapter(
			slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	switch len(loggers) {
	case 0:
		return log.NoopLogger{}, closeLogger, nil
	case 1:
		return loggers[0], closeLogger, nil
	default:
		return log.NewMultiLogger(loggers...), closeLogger, nil
	}
}

// monitor holds the supervised session. The connection manager swaps
// the device on reconnect, so access goes through the mutex.
type monitor struct {
	config *Config
	logger log.Logger

	mu     sync.Mutex
	device *instrument.SPD3303X
}

// connect dials a fresh session. Used as the manager's ConnectFunc.
func (m *monitor) connect(ctx context.Context) error {
	device, err := instrument.Dial(ctx, m.config.Address, instrument.Config{Logger: m.logger})
	if err != nil {
		return err
	}

	m.mu.Lock()
	old := m.device
	m.device = device
	m.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

func (m *monitor) session() *instrument.SPD3303X {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.device
}

func (m *monitor) close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device != nil {
		m.device.Close()
	}
}

// poll runs the measurement loop until ctx ends.
func (m *monitor) poll(ctx context.Context, manager *connection.Manager) error {
	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if !manager.IsConnected() {
			continue
		}
		device := m.session()
		if device == nil {
			continue
		}

		failed := false
		for _, chNum := range m.config.Channels {
			ch := scpi.Channel(chNum)
			status, err := device.ChannelStatus(ch)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s poll failed: %v\n", ch, err)
				failed = true
				break
			}
			fmt.Printf("%s  %s  set %.3f V / %.3f A   meas %.3f V  %.3f A  %.3f W\n",
				time.Now().Format(time.TimeOnly), ch,
				status.SetVoltage, status.SetCurrent,
				status.MeasuredVoltage, status.MeasuredCurrent, status.MeasuredPower)
		}

		if failed {
			manager.ConnectionLost()
		}
	}
}
