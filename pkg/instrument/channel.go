package instrument

import (
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// SelectChannel makes ch the instrument's active channel (INST). The
// selection drives the front panel and the suffix-less measurement
// queries.
func (d *SPD3303X) SelectChannel(ch scpi.Channel) error {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return err
	}
	return d.write(scpi.SelectChannelCommand(ch))
}

// SelectedChannel queries INST? and returns the active channel.
func (d *SPD3303X) SelectedChannel() (scpi.Channel, error) {
	resp, err := d.query(scpi.SelectedChannelQuery())
	if err != nil {
		return 0, err
	}
	return scpi.ParseChannel(resp)
}

// SetVoltage programs the voltage setpoint of a programmable channel.
func (d *SPD3303X) SetVoltage(ch scpi.Channel, volts float64) error {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return err
	}
	return d.write(scpi.VoltageCommand(ch, volts))
}

// Voltage queries the programmed voltage setpoint.
func (d *SPD3303X) Voltage(ch scpi.Channel) (float64, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return 0, err
	}
	return d.queryFloat(scpi.VoltageQuery(ch))
}

// SetCurrent programs the current limit of a programmable channel.
func (d *SPD3303X) SetCurrent(ch scpi.Channel, amps float64) error {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return err
	}
	return d.write(scpi.CurrentCommand(ch, amps))
}

// Current queries the programmed current limit.
func (d *SPD3303X) Current(ch scpi.Channel) (float64, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return 0, err
	}
	return d.queryFloat(scpi.CurrentQuery(ch))
}

// SetOutput switches a channel output on or off. All three channels
// accept this, including the fixed-output CH3.
func (d *SPD3303X) SetOutput(ch scpi.Channel, state scpi.OutputState) error {
	if !ch.Valid() {
		return scpi.GuardProgrammable(ch)
	}
	return d.write(scpi.OutputCommand(ch, state))
}

// OutputState reports whether a channel output is on, observed through
// the system status word. CH3 fails with ErrOutputStateUnobservable:
// its output bit does not exist in the word.
func (d *SPD3303X) OutputState(ch scpi.Channel) (bool, error) {
	if err := scpi.GuardOutputQuery(ch); err != nil {
		return false, err
	}

	status, err := d.SystemStatus()
	if err != nil {
		return false, err
	}
	if ch == scpi.Channel1 {
		return status.CH1OutputOn, nil
	}
	return status.CH2OutputOn, nil
}

// SetTrackMode programs the CH1/CH2 track relationship (OUTP:TRACK).
// TrackModeUnknown is not writable.
func (d *SPD3303X) SetTrackMode(mode scpi.TrackMode) error {
	if _, err := scpi.TrackModeFromValue(mode.WriteValue()); err != nil {
		return err
	}
	return d.write(scpi.TrackModeCommand(mode))
}

// TrackMode queries OUTP:TRACK? and returns the programmed mode.
func (d *SPD3303X) TrackMode() (scpi.TrackMode, error) {
	resp, err := d.query(scpi.TrackModeQuery())
	if err != nil {
		return scpi.TrackModeUnknown, err
	}
	return scpi.ParseTrackMode(resp)
}

// SetWaveDisplay toggles the waveform display for a programmable
// channel (OUTP:WAVE).
func (d *SPD3303X) SetWaveDisplay(ch scpi.Channel, state scpi.OutputState) error {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return err
	}
	return d.write(scpi.WaveDisplayCommand(ch, state))
}
