package scpi

import "fmt"

// Capability is a bitset of operations a channel supports.
type Capability uint8

const (
	// CapSetpoints covers voltage/current set and query.
	CapSetpoints Capability = 1 << iota

	// CapMeasure covers per-channel measurement queries.
	CapMeasure

	// CapTimer covers timer set, query, and on/off.
	CapTimer

	// CapWaveDisplay covers waveform-display toggling.
	CapWaveDisplay

	// CapOutputQuery covers observing the output state. CH3 lacks it:
	// its output bit appears nowhere in the status word.
	CapOutputQuery

	// capProgrammable is the full programmable-channel set.
	capProgrammable = CapSetpoints | CapMeasure | CapTimer | CapWaveDisplay | CapOutputQuery
)

// channelCapabilities is the static capability table. Index by channel
// number; Channel is a closed three-value enum so the table is total.
var channelCapabilities = map[Channel]Capability{
	Channel1: capProgrammable,
	Channel2: capProgrammable,
	Channel3: 0, // on/off control only
}

// Supports reports whether the channel offers the given capability.
func (c Channel) Supports(op Capability) bool {
	return channelCapabilities[c]&op == op
}

// Programmable reports whether the channel accepts setpoints (CH1/CH2).
func (c Channel) Programmable() bool {
	return c.Supports(CapSetpoints)
}

// GuardProgrammable rejects programmable-only operations on channels
// that do not support them. It runs before any command string is built.
func GuardProgrammable(c Channel) error {
	if c.Programmable() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedChannel, c)
}

// GuardOutputQuery rejects output-state queries on channels whose
// output state is not observable. The error is distinct from
// ErrUnsupportedChannel because on/off *control* of the channel still
// works; only the telemetry is missing.
func GuardOutputQuery(c Channel) error {
	if c.Supports(CapOutputQuery) {
		return nil
	}
	return fmt.Errorf("%w: %s supports on/off control only", ErrOutputStateUnobservable, c)
}

// Save/recall slots and timer groups share the same 1..5 range.
const (
	MinSlot = 1
	MaxSlot = 5
)

// ValidateSlot range-checks a *SAV / *RCL slot number.
func ValidateSlot(slot uint8) error {
	if slot < MinSlot || slot > MaxSlot {
		return fmt.Errorf("%w: slot %d not in %d..%d", ErrRangeViolation, slot, MinSlot, MaxSlot)
	}
	return nil
}

// ValidateGroup range-checks a timer group index.
func ValidateGroup(group uint8) error {
	if group < MinSlot || group > MaxSlot {
		return fmt.Errorf("%w: timer group %d not in %d..%d", ErrRangeViolation, group, MinSlot, MaxSlot)
	}
	return nil
}
