// Command spd-log views and summarizes CBOR protocol log files written
// by spd-cli and spd-monitor.
//
// Usage:
//
//	spd-log <command> [flags] <file.cborlog>
//
// Commands:
//
//	view     Print events in human-readable form
//	stats    Summarize a log file
//
// Examples:
//
//	# View all events
//	spd-log view session.cborlog
//
//	# View only commands sent to the instrument
//	spd-log view -direction out session.cborlog
//
//	# View one session
//	spd-log view -conn 7f3c2a session.cborlog
//
//	# Per-command counts and latencies
//	spd-log stats session.cborlog
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/scpikit/spd3303x-go/pkg/log"
)

const usage = `spd-log - SCPI protocol log viewer

Usage:
  spd-log <command> [flags] <file.cborlog>

Commands:
  view     Print events in human-readable form
  stats    Summarize a log file

Use "spd-log <command> -help" for details.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "view":
		err = runView(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "spd-log:", err)
		os.Exit(1)
	}
}

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	connID := fs.String("conn", "", "Filter by connection ID")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: spd-log view [flags] <file.cborlog>")
	}

	filter := log.Filter{ConnectionID: *connID}
	switch *direction {
	case "":
	case "in":
		d := log.DirectionIn
		filter.Direction = &d
	case "out":
		d := log.DirectionOut
		filter.Direction = &d
	default:
		return fmt.Errorf("unknown direction %q", *direction)
	}

	reader, err := log.NewReader(fs.Arg(0), filter)
	if err != nil {
		return err
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		return err
	}
	for _, event := range events {
		fmt.Println(formatEvent(event))
	}
	return nil
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: spd-log stats <file.cborlog>")
	}

	reader, err := log.NewReader(fs.Arg(0), log.Filter{})
	if err != nil {
		return err
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		return err
	}

	var (
		commands, responses, errors int
		connections                 = map[string]bool{}
		latencies                   = map[string][]time.Duration{}
	)
	for _, event := range events {
		connections[event.ConnectionID] = true
		switch {
		case event.Command != nil:
			commands++
		case event.Response != nil:
			responses++
			if event.Response.Latency > 0 {
				latencies[event.Response.Command] = append(
					latencies[event.Response.Command], event.Response.Latency)
			}
		case event.Error != nil:
			errors++
		}
	}

	fmt.Printf("events       %d\n", len(events))
	fmt.Printf("sessions     %d\n", len(connections))
	fmt.Printf("commands     %d\n", commands)
	fmt.Printf("responses    %d\n", responses)
	fmt.Printf("errors       %d\n", errors)

	if len(latencies) > 0 {
		fmt.Println("\nlatency by command:")
		names := make([]string, 0, len(latencies))
		for name := range latencies {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			samples := latencies[name]
			var total time.Duration
			for _, l := range samples {
				total += l
			}
			fmt.Printf("  %-24s %4d samples  avg %s\n",
				name, len(samples), total/time.Duration(len(samples)))
		}
	}
	return nil
}

func formatEvent(event log.Event) string {
	ts := event.Timestamp.Format("15:04:05.000")
	conn := event.ConnectionID
	if len(conn) > 8 {
		conn = conn[:8]
	}

	switch {
	case event.Command != nil:
		return fmt.Sprintf("%s %s --> %s", ts, conn, event.Command.Line)
	case event.Response != nil:
		return fmt.Sprintf("%s %s <-- %s (%s)", ts, conn, event.Response.Line, event.Response.Latency)
	case event.StateChange != nil:
		return fmt.Sprintf("%s %s === %s", ts, conn, event.StateChange.NewState)
	case event.Error != nil:
		return fmt.Sprintf("%s %s !!! %s (%s)", ts, conn, event.Error.Message, event.Error.Context)
	default:
		return fmt.Sprintf("%s %s (empty event)", ts, conn)
	}
}
