package log

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects events when reading a log file. Zero values match
// everything.
type Filter struct {
	// ConnectionID limits output to a single session.
	ConnectionID string

	// Category limits output to one category. Nil matches all.
	Category *Category

	// Direction limits output to one direction. Nil matches all.
	Direction *Direction
}

// matches reports whether event passes the filter.
func (f Filter) matches(event Event) bool {
	if f.ConnectionID != "" && event.ConnectionID != f.ConnectionID {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	return true
}

// Reader streams events out of a CBOR log file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens path and returns a reader yielding events matching
// filter.
func NewReader(path string, filter Filter) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Reader{
		file:    file,
		decoder: NewDecoder(file),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at end of file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, fmt.Errorf("decode event: %w", err)
		}
		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// ReadAll collects every matching event.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
