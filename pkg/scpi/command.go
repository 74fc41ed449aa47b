package scpi

import (
	"fmt"
	"strconv"
)

// Terminator ends every command line.
const Terminator = "\n"

// FormatFloat renders a setpoint with exactly six digits after the
// decimal point, regardless of magnitude. The fixed width removes any
// ambiguity in the device-side parser.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// The builders below are pure: they cannot fail and perform no I/O.
// All argument validation (capability guards, range checks) happens
// before encoding, in the session layer.

// IdentifyQuery builds *IDN?.
func IdentifyQuery() string {
	return "*IDN?" + Terminator
}

// SaveCommand builds *SAV <slot>.
func SaveCommand(slot uint8) string {
	return fmt.Sprintf("*SAV %d%s", slot, Terminator)
}

// RecallCommand builds *RCL <slot>.
func RecallCommand(slot uint8) string {
	return fmt.Sprintf("*RCL %d%s", slot, Terminator)
}

// SelectChannelCommand builds INST <ch>.
func SelectChannelCommand(ch Channel) string {
	return fmt.Sprintf("INST %s%s", ch, Terminator)
}

// SelectedChannelQuery builds INST?.
func SelectedChannelQuery() string {
	return "INST?" + Terminator
}

// VoltageCommand builds <ch>:VOLT <f>.
func VoltageCommand(ch Channel, volts float64) string {
	return fmt.Sprintf("%s:VOLT %s%s", ch, FormatFloat(volts), Terminator)
}

// VoltageQuery builds <ch>:VOLT?.
func VoltageQuery(ch Channel) string {
	return fmt.Sprintf("%s:VOLT?%s", ch, Terminator)
}

// CurrentCommand builds <ch>:CURR <f>.
func CurrentCommand(ch Channel, amps float64) string {
	return fmt.Sprintf("%s:CURR %s%s", ch, FormatFloat(amps), Terminator)
}

// CurrentQuery builds <ch>:CURR?.
func CurrentQuery(ch Channel) string {
	return fmt.Sprintf("%s:CURR?%s", ch, Terminator)
}

// OutputCommand builds OUTPut <ch>,<ON|OFF>.
func OutputCommand(ch Channel, state OutputState) string {
	return fmt.Sprintf("OUTPut %s,%s%s", ch, state, Terminator)
}

// TrackModeCommand builds OUTP:TRACK <0|1|2>.
func TrackModeCommand(mode TrackMode) string {
	return fmt.Sprintf("OUTP:TRACK %d%s", mode.WriteValue(), Terminator)
}

// TrackModeQuery builds OUTP:TRACK?.
func TrackModeQuery() string {
	return "OUTP:TRACK?" + Terminator
}

// WaveDisplayCommand builds OUTP:WAVE <ch>,<ON|OFF>.
func WaveDisplayCommand(ch Channel, state OutputState) string {
	return fmt.Sprintf("OUTP:WAVE %s,%s%s", ch, state, Terminator)
}

// measureQuery builds MEAS:<mnemonic>?[ <ch>]. A nil channel omits the
// suffix entirely, querying the reading of the INST-selected channel.
func measureQuery(mnemonic string, ch *Channel) string {
	if ch == nil {
		return fmt.Sprintf("MEAS:%s?%s", mnemonic, Terminator)
	}
	return fmt.Sprintf("MEAS:%s? %s%s", mnemonic, *ch, Terminator)
}

// MeasureVoltageQuery builds MEAS:VOLT?[ <ch>].
func MeasureVoltageQuery(ch *Channel) string {
	return measureQuery("VOLT", ch)
}

// MeasureCurrentQuery builds MEAS:CURR?[ <ch>].
func MeasureCurrentQuery(ch *Channel) string {
	return measureQuery("CURR", ch)
}

// MeasurePowerQuery builds MEAS:POWEr?[ <ch>]. The full POWEr mnemonic
// is used because some firmware revisions do not answer the abbreviated
// POW? form.
func MeasurePowerQuery(ch *Channel) string {
	return measureQuery("POWEr", ch)
}

// TimerSetCommand builds TIMER:SET <ch>,<group>,<f>,<f>,<f>.
func TimerSetCommand(ch Channel, group uint8, volts, amps, seconds float64) string {
	return fmt.Sprintf("TIMER:SET %s,%d,%s,%s,%s%s",
		ch, group, FormatFloat(volts), FormatFloat(amps), FormatFloat(seconds), Terminator)
}

// TimerSetQuery builds TIMER:SET? <ch>,<group>.
func TimerSetQuery(ch Channel, group uint8) string {
	return fmt.Sprintf("TIMER:SET? %s,%d%s", ch, group, Terminator)
}

// TimerStateCommand builds TIMER <ch>,<ON|OFF>.
func TimerStateCommand(ch Channel, state TimerState) string {
	return fmt.Sprintf("TIMER %s,%s%s", ch, state, Terminator)
}

// SystemErrorQuery builds SYST:ERR?.
func SystemErrorQuery() string {
	return "SYST:ERR?" + Terminator
}

// SystemVersionQuery builds SYST:VERS?.
func SystemVersionQuery() string {
	return "SYST:VERS?" + Terminator
}

// SystemStatusQuery builds SYST:STAT?.
func SystemStatusQuery() string {
	return "SYST:STAT?" + Terminator
}

// IPCommand builds IPaddr <s>.
func IPCommand(ip string) string {
	return fmt.Sprintf("IPaddr %s%s", ip, Terminator)
}

// IPQuery builds IPaddr?.
func IPQuery() string {
	return "IPaddr?" + Terminator
}

// MaskCommand builds MASKaddr <s>.
func MaskCommand(mask string) string {
	return fmt.Sprintf("MASKaddr %s%s", mask, Terminator)
}

// MaskQuery builds MASKaddr?.
func MaskQuery() string {
	return "MASKaddr?" + Terminator
}

// GatewayCommand builds GATEaddr <s>.
func GatewayCommand(gateway string) string {
	return fmt.Sprintf("GATEaddr %s%s", gateway, Terminator)
}

// GatewayQuery builds GATEaddr?.
func GatewayQuery() string {
	return "GATEaddr?" + Terminator
}

// DHCPCommand builds DHCP <ON|OFF>.
func DHCPCommand(state DhcpState) string {
	return fmt.Sprintf("DHCP %s%s", state, Terminator)
}

// DHCPQuery builds DHCP?.
func DHCPQuery() string {
	return "DHCP?" + Terminator
}
