package instrument

import (
	"fmt"

	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// SoftReset drives the instrument to a known-safe idle state. The
// device has no *RST, so the reset is an explicit command sequence:
//
//  1. all outputs off (CH1, CH2, CH3)
//  2. track mode independent
//  3. timers off (CH1, CH2)
//  4. waveform display off (CH1, CH2)
//  5. setpoints zeroed, voltage before current (CH1, CH2)
//
// The sequence is fail fast: the first failing step aborts the rest,
// so a returned error means the instrument is in a partial state.
func (d *SPD3303X) SoftReset() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"output CH1 off", func() error { return d.SetOutput(scpi.Channel1, scpi.OutputOff) }},
		{"output CH2 off", func() error { return d.SetOutput(scpi.Channel2, scpi.OutputOff) }},
		{"output CH3 off", func() error { return d.SetOutput(scpi.Channel3, scpi.OutputOff) }},
		{"track independent", func() error { return d.SetTrackMode(scpi.TrackModeIndependent) }},
		{"timer CH1 off", func() error { return d.SetTimerState(scpi.Channel1, scpi.TimerOff) }},
		{"timer CH2 off", func() error { return d.SetTimerState(scpi.Channel2, scpi.TimerOff) }},
		{"wave CH1 off", func() error { return d.SetWaveDisplay(scpi.Channel1, scpi.OutputOff) }},
		{"wave CH2 off", func() error { return d.SetWaveDisplay(scpi.Channel2, scpi.OutputOff) }},
		{"voltage CH1 zero", func() error { return d.SetVoltage(scpi.Channel1, 0) }},
		{"current CH1 zero", func() error { return d.SetCurrent(scpi.Channel1, 0) }},
		{"voltage CH2 zero", func() error { return d.SetVoltage(scpi.Channel2, 0) }},
		{"current CH2 zero", func() error { return d.SetCurrent(scpi.Channel2, 0) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("soft reset, %s: %w", step.name, err)
		}
	}
	return nil
}
