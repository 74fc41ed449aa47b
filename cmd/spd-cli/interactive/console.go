// Package interactive provides the interactive command loop for
// spd-cli.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/scpikit/spd3303x-go/pkg/instrument"
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// Console handles the interactive prompt.
type Console struct {
	device *instrument.SPD3303X
	rl     *readline.Instance
}

// New creates the console for an open session.
func New(device *instrument.SPD3303X) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "spd> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{device: device, rl: rl}, nil
}

// Stdout returns a writer coordinated with the prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the command loop. It returns when the user quits or ctx
// ends; cancel is invoked on quit so the rest of the program shuts
// down too.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		fields := strings.Fields(input)
		command, args := strings.ToLower(fields[0]), fields[1:]

		if command == "quit" || command == "exit" {
			cancel()
			return
		}

		if err := c.dispatch(command, args); err != nil {
			fmt.Fprintln(c.rl.Stdout(), "error:", err)
		}
	}
}

func (c *Console) dispatch(command string, args []string) error {
	switch command {
	case "help":
		c.printHelp()
		return nil
	case "idn":
		return c.cmdIdentify()
	case "status":
		return c.cmdStatus()
	case "select":
		return c.cmdSelect(args)
	case "volt":
		return c.cmdSetpoint(args, c.device.Voltage, c.device.SetVoltage, "V")
	case "curr":
		return c.cmdSetpoint(args, c.device.Current, c.device.SetCurrent, "A")
	case "out":
		return c.cmdOutput(args)
	case "track":
		return c.cmdTrack(args)
	case "wave":
		return c.cmdWave(args)
	case "meas":
		return c.cmdMeasure(args)
	case "timer":
		return c.cmdTimer(args)
	case "save":
		return c.cmdSlot(args, c.device.Save)
	case "recall":
		return c.cmdSlot(args, c.device.Recall)
	case "net":
		return c.cmdNet()
	case "reset":
		return c.device.SoftReset()
	case "err":
		return c.printQuery(c.device.SystemError)
	case "ver":
		return c.printQuery(c.device.SystemVersion)
	default:
		return fmt.Errorf("unknown command %q (try help)", command)
	}
}

func (c *Console) cmdIdentify() error {
	idn, err := c.device.Identify()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.rl.Stdout(), idn)
	return nil
}

func (c *Console) cmdStatus() error {
	status, err := c.device.SystemStatus()
	if err != nil {
		return err
	}

	w := c.rl.Stdout()
	fmt.Fprintf(w, "status word  0x%X\n", status.Raw)
	fmt.Fprintf(w, "track mode   %s\n", status.TrackMode)
	fmt.Fprintf(w, "CH1          output=%s regulation=%s wave=%v timer=%v\n",
		onOff(status.CH1OutputOn), status.CH1Regulation, status.CH1WaveDisplay, status.Timer1On)
	fmt.Fprintf(w, "CH2          output=%s regulation=%s wave=%v timer=%v\n",
		onOff(status.CH2OutputOn), status.CH2Regulation, status.CH2WaveDisplay, status.Timer2On)
	fmt.Fprintf(w, "parallel     %v\n", status.ParallelMode)
	return nil
}

func (c *Console) cmdSelect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: select <ch>")
	}
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}
	return c.device.SelectChannel(ch)
}

func (c *Console) cmdSetpoint(args []string,
	get func(scpi.Channel) (float64, error),
	set func(scpi.Channel, float64) error,
	unit string,
) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: volt|curr <ch> [value]")
	}
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		v, err := get(ch)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.rl.Stdout(), "%s %.6f %s\n", ch, v, unit)
		return nil
	}

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad value %q", args[1])
	}
	return set(ch, value)
}

func (c *Console) cmdOutput(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: out <ch> on|off")
	}
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}
	state, err := parseOnOff(args[1])
	if err != nil {
		return err
	}
	return c.device.SetOutput(ch, state)
}

func (c *Console) cmdTrack(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: track ind|ser|par")
	}
	var mode scpi.TrackMode
	switch strings.ToLower(args[0]) {
	case "ind", "independent":
		mode = scpi.TrackModeIndependent
	case "ser", "series":
		mode = scpi.TrackModeSeries
	case "par", "parallel":
		mode = scpi.TrackModeParallel
	default:
		return fmt.Errorf("unknown track mode %q", args[0])
	}
	return c.device.SetTrackMode(mode)
}

func (c *Console) cmdWave(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: wave <ch> on|off")
	}
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}
	state, err := parseOnOff(args[1])
	if err != nil {
		return err
	}
	return c.device.SetWaveDisplay(ch, state)
}

func (c *Console) cmdMeasure(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: meas <ch>")
	}
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}

	status, err := c.device.ChannelStatus(ch)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.rl.Stdout(),
		"%s  set %.3f V / %.3f A   meas %.3f V  %.3f A  %.3f W\n",
		ch, status.SetVoltage, status.SetCurrent,
		status.MeasuredVoltage, status.MeasuredCurrent, status.MeasuredPower)
	return nil
}

func (c *Console) cmdTimer(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: timer <ch> <group> [v i s] | timer <ch> on|off")
	}
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}

	// On/off form.
	if args[1] == "on" || args[1] == "off" {
		state := scpi.TimerOff
		if args[1] == "on" {
			state = scpi.TimerOn
		}
		return c.device.SetTimerState(ch, state)
	}

	group64, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("bad group %q", args[1])
	}
	group := uint8(group64)

	if len(args) == 2 {
		entry, err := c.device.Timer(ch, group)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.rl.Stdout(), "%s group %d: %.3f V  %.3f A  %.1f s\n",
			ch, entry.Group, entry.Voltage, entry.Current, entry.Duration)
		return nil
	}

	if len(args) != 5 {
		return fmt.Errorf("usage: timer <ch> <group> <volts> <amps> <seconds>")
	}
	values := make([]float64, 3)
	for i, arg := range args[2:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad value %q", arg)
		}
		values[i] = v
	}
	return c.device.SetTimer(ch, group, values[0], values[1], values[2])
}

func (c *Console) cmdSlot(args []string, op func(uint8) error) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save|recall <slot>")
	}
	slot, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("bad slot %q", args[0])
	}
	return op(uint8(slot))
}

func (c *Console) cmdNet() error {
	config, err := c.device.NetworkConfig()
	if err != nil {
		return err
	}
	w := c.rl.Stdout()
	fmt.Fprintf(w, "ip       %s\n", config.IP)
	fmt.Fprintf(w, "mask     %s\n", config.Mask)
	fmt.Fprintf(w, "gateway  %s\n", config.Gateway)
	fmt.Fprintf(w, "dhcp     %s\n", onOff(config.DHCP))
	return nil
}

func (c *Console) printQuery(query func() (string, error)) error {
	resp, err := query()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.rl.Stdout(), resp)
	return nil
}

func (c *Console) printHelp() {
	fmt.Fprint(c.rl.Stdout(), `Commands:
  idn                         identify the instrument
  status                      decode the system status word
  select <ch>                 select the active channel
  volt <ch> [value]           get/set voltage setpoint
  curr <ch> [value]           get/set current limit
  out <ch> on|off             switch a channel output
  track ind|ser|par           set the CH1/CH2 track mode
  wave <ch> on|off            toggle the waveform display
  meas <ch>                   setpoints and live measurements
  timer <ch> <group> [v i s]  get/set a timer step
  timer <ch> on|off           start/stop the timer
  save <slot> | recall <slot> store/restore state (1..5)
  net                         show the LAN configuration
  reset                       soft reset to a safe state
  err | ver                   SCPI error queue / version
  quit                        exit
`)
}

func parseChannel(s string) (scpi.Channel, error) {
	switch strings.ToLower(s) {
	case "1", "ch1":
		return scpi.Channel1, nil
	case "2", "ch2":
		return scpi.Channel2, nil
	case "3", "ch3":
		return scpi.Channel3, nil
	default:
		return 0, fmt.Errorf("unknown channel %q", s)
	}
}

func parseOnOff(s string) (scpi.OutputState, error) {
	switch strings.ToLower(s) {
	case "on", "1":
		return scpi.OutputOn, nil
	case "off", "0":
		return scpi.OutputOff, nil
	default:
		return 0, fmt.Errorf("expected on or off, got %q", s)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
