package scpi

import (
	"math/rand"
	"testing"
)

func TestDecodeStatusWordFlags(t *testing.T) {
	// Every single-purpose flag bit must round-trip: set bit -> flag
	// true, clear bit -> flag false.
	flagBits := []struct {
		name string
		bit  uint
		get  func(SystemStatus) bool
	}{
		{"ch1 output", StatusBitCH1Output, func(s SystemStatus) bool { return s.CH1OutputOn }},
		{"ch2 output", StatusBitCH2Output, func(s SystemStatus) bool { return s.CH2OutputOn }},
		{"timer1", StatusBitTimer1, func(s SystemStatus) bool { return s.Timer1On }},
		{"timer2", StatusBitTimer2, func(s SystemStatus) bool { return s.Timer2On }},
		{"ch1 wave", StatusBitCH1Wave, func(s SystemStatus) bool { return s.CH1WaveDisplay }},
		{"ch2 wave", StatusBitCH2Wave, func(s SystemStatus) bool { return s.CH2WaveDisplay }},
		{"parallel", StatusBitParallel, func(s SystemStatus) bool { return s.ParallelMode }},
	}

	for _, tt := range flagBits {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.get(DecodeStatusWord(uint32(1) << tt.bit)) {
				t.Errorf("bit %d set: flag = false, want true", tt.bit)
			}
			if tt.get(DecodeStatusWord(^(uint32(1) << tt.bit))) {
				t.Errorf("bit %d clear: flag = true, want false", tt.bit)
			}
		})
	}
}

func TestDecodeStatusWordRegulation(t *testing.T) {
	tests := []struct {
		word    uint32
		ch1, ch2 RegulationMode
	}{
		{0b00, RegulationCV, RegulationCV},
		{0b01, RegulationCC, RegulationCV},
		{0b10, RegulationCV, RegulationCC},
		{0b11, RegulationCC, RegulationCC},
	}

	for _, tt := range tests {
		s := DecodeStatusWord(tt.word)
		if s.CH1Regulation != tt.ch1 || s.CH2Regulation != tt.ch2 {
			t.Errorf("word %#b: regulation = %v/%v, want %v/%v",
				tt.word, s.CH1Regulation, s.CH2Regulation, tt.ch1, tt.ch2)
		}
	}
}

func TestDecodeStatusWordTrackMode(t *testing.T) {
	tests := []struct {
		pattern uint32
		want    TrackMode
	}{
		{0b01, TrackModeIndependent},
		{0b11, TrackModeSeries},
		{0b10, TrackModeParallel},
		{0b00, TrackModeUnknown},
	}

	for _, tt := range tests {
		s := DecodeStatusWord(tt.pattern << StatusBitTrackLow)
		if s.TrackMode != tt.want {
			t.Errorf("pattern %02b: track mode = %v, want %v", tt.pattern, s.TrackMode, tt.want)
		}
	}
}

func TestDecodeStatusWordTotal(t *testing.T) {
	// Decoding must succeed for arbitrary 32-bit input and preserve the
	// raw word, including bits above the meaningful range.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		word := rng.Uint32()
		s := DecodeStatusWord(word)
		if s.Raw != word {
			t.Fatalf("Raw = %#x, want %#x", s.Raw, word)
		}
	}

	if s := DecodeStatusWord(0xFFFFFFFF); !s.ParallelMode {
		t.Error("all-ones word: ParallelMode = false, want true")
	}
}

func TestDecodeStatusWordExample(t *testing.T) {
	// 0x31: CH1 in CC, track independent (pattern 01 at bits 2-3), CH1
	// output on.
	s := DecodeStatusWord(0x31)
	if s.CH1Regulation != RegulationCC {
		t.Errorf("CH1Regulation = %v, want CC", s.CH1Regulation)
	}
	if s.TrackMode != TrackModeIndependent {
		t.Errorf("TrackMode = %v, want INDEPENDENT", s.TrackMode)
	}
	if !s.CH1OutputOn || s.CH2OutputOn {
		t.Errorf("outputs = %v/%v, want true/false", s.CH1OutputOn, s.CH2OutputOn)
	}
}

func TestTrackModeWriteRoundTrip(t *testing.T) {
	for _, mode := range []TrackMode{TrackModeIndependent, TrackModeSeries, TrackModeParallel} {
		got, err := TrackModeFromValue(mode.WriteValue())
		if err != nil || got != mode {
			t.Errorf("round trip %v: got %v, %v", mode, got, err)
		}
	}
}
