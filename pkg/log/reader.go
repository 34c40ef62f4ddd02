package log

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects events. Zero fields match everything.
type Filter struct {
	ModuleID  string
	Module    string
	Direction *Direction
	Category  *Category

	// TimeStart is inclusive, TimeEnd exclusive.
	TimeStart *time.Time
	TimeEnd   *time.Time

	// Port matches the mix or device port of a stream event and either
	// device of a route event.
	Port string
}

// Match reports whether event passes every criterion of f.
func (f Filter) Match(event Event) bool {
	switch {
	case f.ModuleID != "" && f.ModuleID != event.ModuleID,
		f.Module != "" && f.Module != event.Module,
		f.Direction != nil && *f.Direction != event.Direction,
		f.Category != nil && *f.Category != event.Category,
		f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart),
		f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return f.Port == "" || slices.Contains(event.Ports(), f.Port)
}

// Reader decodes events one at a time from an .rlog stream.
type Reader struct {
	dec    *cbor.Decoder
	closer io.Closer
	filter Filter
	read   int
}

// NewReader opens an .rlog file and reads every event in it.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens an .rlog file and reads the events filter matches.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewStreamReader(f, filter)
	r.closer = f
	return r, nil
}

// NewStreamReader reads events from r. Close does not close r.
func NewStreamReader(r io.Reader, filter Filter) *Reader {
	return &Reader{dec: decMode.NewDecoder(r), filter: filter}
}

// Next returns the next matching event, or io.EOF at the end of the stream.
// A stream cut off in the middle of an event yields io.ErrUnexpectedEOF.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		err := r.dec.Decode(&event)
		switch {
		case errors.Is(err, io.EOF):
			return Event{}, io.EOF
		case err != nil:
			return Event{}, fmt.Errorf("log: event %d: %w", r.read, err)
		}
		r.read++
		if r.filter.Match(event) {
			return event, nil
		}
	}
}

// All iterates over the remaining matching events. Iteration stops after
// the first decode error, which is yielded with a zero Event.
func (r *Reader) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			event, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(event, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the file opened by NewReader or NewFilteredReader.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
