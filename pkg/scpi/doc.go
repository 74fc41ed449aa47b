// Package scpi implements the SCPI command grammar of the SPD3303X
// bench power supply family.
//
// The package is the pure protocol layer: it builds canonical ASCII
// command lines from typed arguments, parses textual responses into
// typed values, enforces the per-channel capability rules, and decodes
// the packed SYSTem:STATus? word. Nothing in this package performs I/O;
// the session layer in pkg/instrument composes these pieces with a
// transport.
//
// # Command Grammar
//
//	*IDN?  *SAV <1-5>  *RCL <1-5>
//	INST <ch>  INST?
//	<ch>:VOLT <f>  <ch>:VOLT?  <ch>:CURR <f>  <ch>:CURR?
//	OUTPut <ch>,<ON|OFF>
//	OUTP:TRACK <0|1|2>  OUTP:TRACK?
//	OUTP:WAVE <ch>,<ON|OFF>
//	MEAS:VOLT?[ <ch>]  MEAS:CURR?[ <ch>]  MEAS:POWEr?[ <ch>]
//	TIMER:SET <ch>,<group>,<f>,<f>,<f>  TIMER:SET? <ch>,<group>
//	TIMER <ch>,<ON|OFF>
//	SYST:ERR?  SYST:VERS?  SYST:STAT?
//	IPaddr <s>  IPaddr?  MASKaddr <s>  MASKaddr?
//	GATEaddr <s>  GATEaddr?  DHCP <ON|OFF>  DHCP?
//
// <ch> is one of CH1, CH2, CH3 and <f> is a float formatted with exactly
// six digits after the decimal point. Every command line ends with a
// newline.
package scpi
