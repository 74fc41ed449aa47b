package scpi

import "fmt"

// Channel identifies one output channel of the supply.
type Channel uint8

const (
	// Channel1 is the first programmable channel.
	Channel1 Channel = 1

	// Channel2 is the second programmable channel.
	Channel2 Channel = 2

	// Channel3 is the fixed-output channel. It supports output on/off
	// control only: no setpoints, no measurements, no telemetry.
	Channel3 Channel = 3
)

// String returns the canonical SCPI channel token (CH1, CH2, CH3).
func (c Channel) String() string {
	switch c {
	case Channel1:
		return "CH1"
	case Channel2:
		return "CH2"
	case Channel3:
		return "CH3"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether c is one of the three defined channels.
func (c Channel) Valid() bool {
	return c == Channel1 || c == Channel2 || c == Channel3
}

// OutputState represents an output on/off setting.
type OutputState uint8

const (
	// OutputOff disables an output.
	OutputOff OutputState = 0

	// OutputOn enables an output.
	OutputOn OutputState = 1
)

// String returns the wire token (ON, OFF).
func (s OutputState) String() string {
	if s == OutputOn {
		return "ON"
	}
	return "OFF"
}

// TimerState represents the per-channel timer on/off setting.
type TimerState uint8

const (
	// TimerOff disables the channel timer.
	TimerOff TimerState = 0

	// TimerOn enables the channel timer.
	TimerOn TimerState = 1
)

// String returns the wire token (ON, OFF).
func (s TimerState) String() string {
	if s == TimerOn {
		return "ON"
	}
	return "OFF"
}

// DhcpState represents the DHCP on/off setting.
type DhcpState uint8

const (
	// DhcpOff disables DHCP.
	DhcpOff DhcpState = 0

	// DhcpOn enables DHCP.
	DhcpOn DhcpState = 1
)

// String returns the wire token (ON, OFF).
func (s DhcpState) String() string {
	if s == DhcpOn {
		return "ON"
	}
	return "OFF"
}

// TrackMode describes the electrical relationship between CH1 and CH2.
//
// The mode has two distinct wire encodings: writes use the integer
// values 0/1/2 (OUTP:TRACK <n>), while reads come from a 2-bit pattern
// in the status word (see DecodeStatusWord). The 2-bit pattern 00 has
// no documented meaning and decodes to TrackModeUnknown.
type TrackMode uint8

const (
	// TrackModeIndependent runs CH1 and CH2 independently.
	TrackModeIndependent TrackMode = 0

	// TrackModeSeries combines CH1 and CH2 electrically in series.
	TrackModeSeries TrackMode = 1

	// TrackModeParallel combines CH1 and CH2 electrically in parallel.
	TrackModeParallel TrackMode = 2

	// TrackModeUnknown is reported when the status word carries an
	// unmapped track-mode bit pattern. It is never a valid write value.
	TrackModeUnknown TrackMode = 0xFF
)

// String returns the track mode name.
func (m TrackMode) String() string {
	switch m {
	case TrackModeIndependent:
		return "INDEPENDENT"
	case TrackModeSeries:
		return "SERIES"
	case TrackModeParallel:
		return "PARALLEL"
	default:
		return "UNKNOWN"
	}
}

// WriteValue returns the integer write encoding used by OUTP:TRACK.
// Calling WriteValue on TrackModeUnknown is a programming error; the
// encoder never emits it because TrackModeFromValue rejects it.
func (m TrackMode) WriteValue() uint8 {
	return uint8(m)
}

// TrackModeFromValue converts the integer write encoding back into a
// TrackMode. Any value outside 0..2 fails with ErrUnknownEnumValue.
func TrackModeFromValue(value uint8) (TrackMode, error) {
	switch value {
	case 0:
		return TrackModeIndependent, nil
	case 1:
		return TrackModeSeries, nil
	case 2:
		return TrackModeParallel, nil
	default:
		return TrackModeUnknown, fmt.Errorf("%w: track mode %d", ErrUnknownEnumValue, value)
	}
}

// RegulationMode indicates whether a programmable channel is regulating
// on voltage or on current.
type RegulationMode uint8

const (
	// RegulationCV is constant-voltage regulation.
	RegulationCV RegulationMode = 0

	// RegulationCC is constant-current regulation.
	RegulationCC RegulationMode = 1
)

// String returns the regulation mode name.
func (m RegulationMode) String() string {
	if m == RegulationCC {
		return "CC"
	}
	return "CV"
}
