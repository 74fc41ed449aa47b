package scpi

// Status word bit positions (0-indexed, LSB first). This table is the
// single source of truth for the layout; DecodeStatusWord is the only
// consumer. The layer never encodes a status word: it is read-only
// telemetry.
const (
	StatusBitCH1Regulation = 0 // 0 = CV, 1 = CC
	StatusBitCH2Regulation = 1
	StatusBitTrackLow      = 2 // bits 2-3 form the track-mode pattern
	StatusBitTrackHigh     = 3
	StatusBitCH1Output     = 4
	StatusBitCH2Output     = 5
	StatusBitTimer1        = 6
	StatusBitTimer2        = 7
	StatusBitCH1Wave       = 8
	StatusBitCH2Wave       = 9
	StatusBitParallel      = 10
)

// StatusMeaningfulBits masks the bits the instrument actually defines.
const StatusMeaningfulBits uint32 = 0x7FF

// Track-mode patterns carried in status bits 2-3.
const (
	trackPatternIndependent = 0b01
	trackPatternParallel    = 0b10
	trackPatternSeries      = 0b11
)

// DecodeStatusWord decodes a raw status word into a SystemStatus.
//
// Decoding is total: it succeeds for every 32-bit input. The status
// word is polled telemetry, not a command acknowledgment, so an
// unmapped track-mode pattern (00) degrades to TrackModeUnknown rather
// than raising an error.
func DecodeStatusWord(word uint32) SystemStatus {
	bit := func(n uint) bool { return word&(1<<n) != 0 }

	regulation := func(n uint) RegulationMode {
		if bit(n) {
			return RegulationCC
		}
		return RegulationCV
	}

	var track TrackMode
	switch (word >> StatusBitTrackLow) & 0b11 {
	case trackPatternIndependent:
		track = TrackModeIndependent
	case trackPatternSeries:
		track = TrackModeSeries
	case trackPatternParallel:
		track = TrackModeParallel
	default:
		track = TrackModeUnknown
	}

	return SystemStatus{
		Raw:            word,
		CH1Regulation:  regulation(StatusBitCH1Regulation),
		CH2Regulation:  regulation(StatusBitCH2Regulation),
		TrackMode:      track,
		CH1OutputOn:    bit(StatusBitCH1Output),
		CH2OutputOn:    bit(StatusBitCH2Output),
		Timer1On:       bit(StatusBitTimer1),
		Timer2On:       bit(StatusBitTimer2),
		CH1WaveDisplay: bit(StatusBitCH1Wave),
		CH2WaveDisplay: bit(StatusBitCH2Wave),
		ParallelMode:   bit(StatusBitParallel),
	}
}
