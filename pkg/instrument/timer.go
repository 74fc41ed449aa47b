package instrument

import (
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// SetTimer programs one timer step (group 1..5) of a programmable
// channel: voltage, current, and step duration in seconds.
func (d *SPD3303X) SetTimer(ch scpi.Channel, group uint8, volts, amps, seconds float64) error {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return err
	}
	if err := scpi.ValidateGroup(group); err != nil {
		return err
	}
	return d.write(scpi.TimerSetCommand(ch, group, volts, amps, seconds))
}

// Timer queries one programmed timer step.
func (d *SPD3303X) Timer(ch scpi.Channel, group uint8) (scpi.TimerEntry, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return scpi.TimerEntry{}, err
	}
	if err := scpi.ValidateGroup(group); err != nil {
		return scpi.TimerEntry{}, err
	}

	resp, err := d.query(scpi.TimerSetQuery(ch, group))
	if err != nil {
		return scpi.TimerEntry{}, err
	}
	return scpi.ParseTimerEntry(group, resp)
}

// SetTimerState starts or stops the timer sequence of a programmable
// channel.
func (d *SPD3303X) SetTimerState(ch scpi.Channel, state scpi.TimerState) error {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return err
	}
	return d.write(scpi.TimerStateCommand(ch, state))
}
