// Command spd-cli is an interactive console for SPD3303X-class power
// supplies.
//
// Usage:
//
//	spd-cli [flags]
//
// Flags:
//
//	-addr string     Instrument address (host or host:port)
//	-discover        Find the instrument via mDNS instead of -addr
//	-model string    Model substring to match during discovery (default "SPD")
//	-log string      Write a CBOR protocol log to this file
//	-verbose         Mirror the protocol log to stderr
//	-reset           Drive the instrument to a safe state before the prompt
//
// Examples:
//
//	# Connect directly
//	spd-cli -addr 192.168.1.50
//
//	# Find the supply on the LAN, log the session
//	spd-cli -discover -log session.cborlog
//
// Interactive Commands:
//
//	idn                         - Identify the instrument
//	status                      - Decode the system status word
//	select <ch>                 - Select the active channel
//	volt <ch> [value]           - Get or set the voltage setpoint
//	curr <ch> [value]           - Get or set the current limit
//	out <ch> on|off             - Switch a channel output
//	track ind|ser|par           - Set the CH1/CH2 track mode
//	wave <ch> on|off            - Toggle the waveform display
//	meas <ch>                   - Read live voltage, current, power
//	timer <ch> <group> [v i s]  - Get or set a timer step
//	timer <ch> on|off           - Start or stop the timer
//	save <slot> / recall <slot> - Store or restore instrument state
//	net                         - Show the LAN configuration
//	reset                       - Soft reset to a safe state
//	err / ver                   - SCPI error queue / version
//	quit                        - Exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/scpikit/spd3303x-go/cmd/spd-cli/interactive"
	"github.com/scpikit/spd3303x-go/pkg/discovery"
	"github.com/scpikit/spd3303x-go/pkg/instrument"
	"github.com/scpikit/spd3303x-go/pkg/log"
)

// Config holds the CLI configuration.
type Config struct {
	Addr     string
	Discover bool
	Model    string
	LogFile  string
	Verbose  bool
	Reset    bool
}

var config Config

func init() {
	flag.StringVar(&config.Addr, "addr", "", "Instrument address (host or host:port)")
	flag.BoolVar(&config.Discover, "discover", false, "Find the instrument via mDNS")
	flag.StringVar(&config.Model, "model", "SPD", "Model substring to match during discovery")
	flag.StringVar(&config.LogFile, "log", "", "Write a CBOR protocol log to this file")
	flag.BoolVar(&config.Verbose, "verbose", false, "Mirror the protocol log to stderr")
	flag.BoolVar(&config.Reset, "reset", false, "Soft reset the instrument before the prompt")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "spd-cli:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := config.Addr
	if config.Discover {
		browser := discovery.NewBrowser(discovery.BrowserConfig{})
		inst, err := browser.FindByModel(ctx, config.Model)
		if err != nil {
			return fmt.Errorf("discovery: %w", err)
		}
		if len(inst.Addresses) == 0 {
			return fmt.Errorf("discovery: %s advertised no addresses", inst.InstanceName)
		}
		addr = fmt.Sprintf("%s:%d", inst.Addresses[0], inst.Port)
		fmt.Printf("Found %s at %s\n", inst.InstanceName, addr)
	}
	if addr == "" {
		return fmt.Errorf("no instrument address; use -addr or -discover")
	}

	logger, closeLogger, err := buildLogger()
	if err != nil {
		return err
	}
	defer closeLogger()

	device, err := instrument.Dial(ctx, addr, instrument.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer device.Close()

	if config.Reset {
		if err := device.SoftReset(); err != nil {
			return fmt.Errorf("soft reset: %w", err)
		}
		fmt.Println("Instrument reset to a safe state")
	}

	console, err := interactive.New(device)
	if err != nil {
		return err
	}
	console.Run(ctx, cancel)
	return nil
}

// buildLogger assembles the protocol logger from the -log and -verbose
// flags.
func buildLogger() (log.Logger, func(), error) {
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
