package scpi

import "errors"

// Protocol-layer errors. All failures raised by this package and by the
// session facade wrap one of these sentinels, so callers can classify
// them with errors.Is. Transport I/O errors are never wrapped in any of
// them; they pass through the session layer unchanged.
var (
	// ErrEmptyResponse indicates the instrument answered a query with
	// zero meaningful bytes (after stripping NUL padding and
	// whitespace). It is distinct from a decode failure: the round
	// trip succeeded but there was nothing to parse.
	ErrEmptyResponse = errors.New("empty response from instrument")

	// ErrDecodeFailure indicates a response was present but did not
	// match the expected numeric, enumeration, or composite shape.
	// Wrapping errors include the offending text.
	ErrDecodeFailure = errors.New("unparseable response")

	// ErrUnsupportedChannel indicates an operation that the addressed
	// channel does not support (a programmable-only command sent to
	// CH3).
	ErrUnsupportedChannel = errors.New("channel does not support this operation")

	// ErrOutputStateUnobservable indicates an output-state query on
	// CH3. CH3 offers on/off control only; its state appears neither
	// in the status word nor in any documented query.
	ErrOutputStateUnobservable = errors.New("channel exposes no output-state telemetry")

	// ErrRangeViolation indicates a save/recall slot or timer group
	// index outside 1..5.
	ErrRangeViolation = errors.New("index out of range")

	// ErrUnknownEnumValue indicates an integer received for an
	// enumeration that has no unknown fallback, such as an
	// out-of-range track-mode write encoding.
	ErrUnknownEnumValue = errors.New("unknown enumeration value")
)
