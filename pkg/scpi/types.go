package scpi

// SystemStatus is the decoded form of the SYSTem:STATus? word.
// It is an immutable snapshot; all fields describe the instrument at
// the moment the word was sampled.
type SystemStatus struct {
	// Raw is the status word as returned by the instrument (after hex
	// decoding). Only the low 11 bits are meaningful.
	Raw uint32

	// CH1Regulation and CH2Regulation report the regulation mode of
	// the programmable channels.
	CH1Regulation RegulationMode
	CH2Regulation RegulationMode

	// TrackMode is the CH1/CH2 track relationship. TrackModeUnknown
	// means the word carried the unmapped bit pattern 00.
	TrackMode TrackMode

	// Output flags for the programmable channels. CH3 does not appear
	// in the status word.
	CH1OutputOn bool
	CH2OutputOn bool

	// Timer flags.
	Timer1On bool
	Timer2On bool

	// Waveform display flags.
	CH1WaveDisplay bool
	CH2WaveDisplay bool

	// ParallelMode reports the dedicated parallel-mode flag.
	ParallelMode bool
}

// ChannelStatus is a composite read of one programmable channel:
// both setpoints and the three live measurements. The five underlying
// queries are not atomic; see SPD3303X.ChannelStatus.
type ChannelStatus struct {
	// SetVoltage is the programmed voltage setpoint in volts.
	SetVoltage float64

	// SetCurrent is the programmed current setpoint in amps.
	SetCurrent float64

	// MeasuredVoltage is the live output voltage in volts.
	MeasuredVoltage float64

	// MeasuredCurrent is the live output current in amps.
	MeasuredCurrent float64

	// MeasuredPower is the live output power in watts.
	MeasuredPower float64
}

// TimerEntry is one programmed timer step.
type TimerEntry struct {
	// Group is the step index, 1..5. The wire response does not echo
	// it; the parser attaches the caller-supplied value.
	Group uint8

	// Voltage is the step voltage in volts.
	Voltage float64

	// Current is the step current in amps.
	Current float64

	// Duration is the step duration in seconds.
	Duration float64
}

// NetworkConfig is a composite read of the instrument's LAN settings.
// Addresses are kept as the dotted-decimal strings the device returns;
// they are not parsed or validated further.
type NetworkConfig struct {
	IP      string
	Mask    string
	Gateway string
	DHCP    bool
}
