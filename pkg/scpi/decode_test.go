package scpi

import (
	"errors"
	"testing"
)

func TestTrimResponse(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("3.300000\n"), "3.300000"},
		{"nul padding", []byte("3.300000\x00\x00\x00"), "3.300000"},
		{"embedded nul", []byte("\x00CH1\x00\r\n"), "CH1"},
		{"whitespace only", []byte("  \r\n"), ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimResponse(tt.in); got != tt.want {
				t.Errorf("TrimResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	if v, err := ParseFloat(" 4.250000 "); err != nil || v != 4.25 {
		t.Errorf("ParseFloat = %v, %v; want 4.25, nil", v, err)
	}

	for _, in := range []string{"", "volts", "1.2.3"} {
		_, err := ParseFloat(in)
		if !errors.Is(err, ErrDecodeFailure) {
			t.Errorf("ParseFloat(%q) error = %v, want ErrDecodeFailure", in, err)
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"CH1", Channel1},
		{"ch2", Channel2},
		{" Ch3 ", Channel3},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseChannel(%q) = %v, %v; want %v, nil", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseChannel("CH4"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseChannel(CH4) error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ON", true},
		{"on", true},
		{"On", true},
		{"1", true},
		{"OFF", false},
		{"off", false},
		{"0", false},
		{"", false},
		{"DHCP:ON?", false}, // lenient match is on the whole token, not a substring
	}

	for _, tt := range tests {
		if got := ParseOnOff(tt.in); got != tt.want {
			t.Errorf("ParseOnOff(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTimerEntry(t *testing.T) {
	entry, err := ParseTimerEntry(2, "5.000000,1.000000,2.000000")
	if err != nil {
		t.Fatalf("ParseTimerEntry failed: %v", err)
	}
	want := TimerEntry{Group: 2, Voltage: 5, Current: 1, Duration: 2}
	if entry != want {
		t.Errorf("ParseTimerEntry = %+v, want %+v", entry, want)
	}
}

func TestParseTimerEntryErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"two fields", "5.000000,1.000000"},
		{"empty", ""},
		{"non-numeric voltage", "abc,1.0,2.0"},
		{"non-numeric duration", "5.0,1.0,xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimerEntry(1, tt.in)
			if !errors.Is(err, ErrDecodeFailure) {
				t.Errorf("error = %v, want ErrDecodeFailure", err)
			}
		})
	}
}

func TestParseStatusWord(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"0x31", 0x31},
		{"31", 0x31},
		{" 0x7FF \n", 0x7FF},
		{"0", 0},
	}

	for _, tt := range tests {
		got, err := ParseStatusWord(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStatusWord(%q) = %#x, %v; want %#x, nil", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseStatusWord("not-hex"); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("ParseStatusWord(not-hex) error = %v, want ErrDecodeFailure", err)
	}
}

func TestParseTrackMode(t *testing.T) {
	tests := []struct {
		in   string
		want TrackMode
	}{
		{"0", TrackModeIndependent},
		{"1", TrackModeSeries},
		{"2", TrackModeParallel},
	}

	for _, tt := range tests {
		got, err := ParseTrackMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseTrackMode(%q) = %v, %v; want %v, nil", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseTrackMode("3"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseTrackMode(3) error = %v, want ErrUnknownEnumValue", err)
	}
	if _, err := ParseTrackMode("series"); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("ParseTrackMode(series) error = %v, want ErrDecodeFailure", err)
	}
}
