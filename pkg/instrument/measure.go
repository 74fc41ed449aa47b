package instrument

import (
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// MeasureVoltage reads the live output voltage of a programmable
// channel in volts.
func (d *SPD3303X) MeasureVoltage(ch scpi.Channel) (float64, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return 0, err
	}
	return d.queryFloat(scpi.MeasureVoltageQuery(&ch))
}

// MeasureCurrent reads the live output current of a programmable
// channel in amps.
func (d *SPD3303X) MeasureCurrent(ch scpi.Channel) (float64, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return 0, err
	}
	return d.queryFloat(scpi.MeasureCurrentQuery(&ch))
}

// MeasurePower reads the live output power of a programmable channel
// in watts.
func (d *SPD3303X) MeasurePower(ch scpi.Channel) (float64, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return 0, err
	}
	return d.queryFloat(scpi.MeasurePowerQuery(&ch))
}

// MeasureSelectedVoltage reads the live voltage of whatever channel is
// currently selected with INST.
func (d *SPD3303X) MeasureSelectedVoltage() (float64, error) {
	return d.queryFloat(scpi.MeasureVoltageQuery(nil))
}

// MeasureSelectedCurrent reads the live current of the selected channel.
func (d *SPD3303X) MeasureSelectedCurrent() (float64, error) {
	return d.queryFloat(scpi.MeasureCurrentQuery(nil))
}

// MeasureSelectedPower reads the live power of the selected channel.
func (d *SPD3303X) MeasureSelectedPower() (float64, error) {
	return d.queryFloat(scpi.MeasurePowerQuery(nil))
}

// ChannelStatus reads both setpoints and all three live measurements
// of a programmable channel. The five queries run in a fixed order
// (set voltage, set current, measured voltage, current, power) and are
// not atomic; under a changing load the measurements may not describe
// one instant.
func (d *SPD3303X) ChannelStatus(ch scpi.Channel) (scpi.ChannelStatus, error) {
	if err := scpi.GuardProgrammable(ch); err != nil {
		return scpi.ChannelStatus{}, err
	}

	var status scpi.ChannelStatus
	reads := []struct {
		dst  *float64
		read func() (float64, error)
	}{
		{&status.SetVoltage, func() (float64, error) { return d.Voltage(ch) }},
		{&status.SetCurrent, func() (float64, error) { return d.Current(ch) }},
		{&status.MeasuredVoltage, func() (float64, error) { return d.MeasureVoltage(ch) }},
		{&status.MeasuredCurrent, func() (float64, error) { return d.MeasureCurrent(ch) }},
		{&status.MeasuredPower, func() (float64, error) { return d.MeasurePower(ch) }},
	}
	for _, r := range reads {
		v, err := r.read()
		if err != nil {
			return scpi.ChannelStatus{}, err
		}
		*r.dst = v
	}
	return status, nil
}
