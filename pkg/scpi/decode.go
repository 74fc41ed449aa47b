package scpi

import (
	"fmt"
	"strconv"
	"strings"
)

// TrimResponse strips embedded NUL padding and surrounding whitespace
// from a raw response. Some transports pad fixed-size reads with NUL
// bytes; those are noise, not payload.
func TrimResponse(raw []byte) string {
	s := strings.ReplaceAll(string(raw), "\x00", "")
	return strings.TrimSpace(s)
}

// ParseFloat parses a trimmed response as a 64-bit float.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrDecodeFailure, s)
	}
	return v, nil
}

// ParseChannel parses a channel token case-insensitively.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CH1":
		return Channel1, nil
	case "CH2":
		return Channel2, nil
	case "CH3":
		return Channel3, nil
	default:
		return 0, fmt.Errorf("%w: channel %q", ErrUnknownEnumValue, s)
	}
}

// ParseOnOff interprets an on/off response leniently: a case-insensitive
// ON or the literal 1 means true, anything else means false. Firmware
// variants differ in exact casing and format, so this is deliberately
// not a strict enumeration.
func ParseOnOff(s string) bool {
	t := strings.TrimSpace(s)
	return strings.EqualFold(t, "ON") || t == "1"
}

// ParseTimerEntry parses a TIMER:SET? response: three comma-separated
// numeric fields in the fixed order voltage, current, duration. The
// wire response does not echo the group index, so the caller supplies
// it and it is attached to the result.
func ParseTimerEntry(group uint8, s string) (TimerEntry, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) < 3 {
		return TimerEntry{}, fmt.Errorf("%w: timer response %q has %d fields, want 3",
			ErrDecodeFailure, s, len(fields))
	}

	values := make([]float64, 3)
	for i, name := range []string{"voltage", "current", "duration"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return TimerEntry{}, fmt.Errorf("%w: timer %s %q is not a number",
				ErrDecodeFailure, name, fields[i])
		}
		values[i] = v
	}

	return TimerEntry{
		Group:    group,
		Voltage:  values[0],
		Current:  values[1],
		Duration: values[2],
	}, nil
}

// ParseStatusWord parses a SYST:STAT? response: a hex-encoded word with
// an optional 0x prefix.
func ParseStatusWord(s string) (uint32, error) {
	t := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	word, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: status word %q is not hex", ErrDecodeFailure, s)
	}
	return uint32(word), nil
}

// ParseTrackMode parses an OUTP:TRACK? response: the integer write
// encoding 0/1/2. Unlike the status-word pattern, an out-of-range value
// here is an error, not an unknown fallback.
func ParseTrackMode(s string) (TrackMode, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return TrackModeUnknown, fmt.Errorf("%w: track mode %q is not a number", ErrDecodeFailure, s)
	}
	return TrackModeFromValue(uint8(v))
}
