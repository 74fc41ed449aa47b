package scpi

import (
	"errors"
	"testing"
)

func TestGuardProgrammable(t *testing.T) {
	if err := GuardProgrammable(Channel1); err != nil {
		t.Errorf("CH1: %v, want nil", err)
	}
	if err := GuardProgrammable(Channel2); err != nil {
		t.Errorf("CH2: %v, want nil", err)
	}
	if err := GuardProgrammable(Channel3); !errors.Is(err, ErrUnsupportedChannel) {
		t.Errorf("CH3: %v, want ErrUnsupportedChannel", err)
	}
}

func TestGuardOutputQuery(t *testing.T) {
	if err := GuardOutputQuery(Channel1); err != nil {
		t.Errorf("CH1: %v, want nil", err)
	}
	if err := GuardOutputQuery(Channel2); err != nil {
		t.Errorf("CH2: %v, want nil", err)
	}

	err := GuardOutputQuery(Channel3)
	if !errors.Is(err, ErrOutputStateUnobservable) {
		t.Errorf("CH3: %v, want ErrOutputStateUnobservable", err)
	}
	// The CH3 query rejection is deliberately a different error from
	// the generic capability violation.
	if errors.Is(err, ErrUnsupportedChannel) {
		t.Error("CH3 output query error should not match ErrUnsupportedChannel")
	}
}

func TestChannelSupports(t *testing.T) {
	for _, ch := range []Channel{Channel1, Channel2} {
		for _, op := range []Capability{CapSetpoints, CapMeasure, CapTimer, CapWaveDisplay, CapOutputQuery} {
			if !ch.Supports(op) {
				t.Errorf("%s should support %#x", ch, op)
			}
		}
	}
	for _, op := range []Capability{CapSetpoints, CapMeasure, CapTimer, CapWaveDisplay, CapOutputQuery} {
		if Channel3.Supports(op) {
			t.Errorf("CH3 should not support %#x", op)
		}
	}
}

func TestValidateSlot(t *testing.T) {
	for slot := uint8(1); slot <= 5; slot++ {
		if err := ValidateSlot(slot); err != nil {
			t.Errorf("slot %d: %v, want nil", slot, err)
		}
	}
	for _, slot := range []uint8{0, 6, 255} {
		if err := ValidateSlot(slot); !errors.Is(err, ErrRangeViolation) {
			t.Errorf("slot %d: %v, want ErrRangeViolation", slot, err)
		}
	}
}

func TestValidateGroup(t *testing.T) {
	for group := uint8(1); group <= 5; group++ {
		if err := ValidateGroup(group); err != nil {
			t.Errorf("group %d: %v, want nil", group, err)
		}
	}
	for _, group := range []uint8{0, 6} {
		if err := ValidateGroup(group); !errors.Is(err, ErrRangeViolation) {
			t.Errorf("group %d: %v, want ErrRangeViolation", group, err)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Channel1.String(), "CH1"},
		{Channel3.String(), "CH3"},
		{Channel(9).String(), "UNKNOWN"},
		{OutputOn.String(), "ON"},
		{OutputOff.String(), "OFF"},
		{TimerOn.String(), "ON"},
		{DhcpOff.String(), "OFF"},
		{TrackModeSeries.String(), "SERIES"},
		{TrackModeUnknown.String(), "UNKNOWN"},
		{RegulationCV.String(), "CV"},
		{RegulationCC.String(), "CC"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
