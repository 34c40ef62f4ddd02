package log

import (
	"testing"
	"time"
)

type recorder struct {
	events []Event
}

func (r *recorder) Log(event Event) {
	r.events = append(r.events, event)
}

func TestNoopLoggerAcceptsEveryPayload(t *testing.T) {
	var l NoopLogger
	for _, e := range []Event{
		{},
		{Category: CategoryStream, Stream: &StreamEvent{Action: StreamOpen}},
		{Category: CategoryRoute, Route: &RouteEvent{NewDevice: "Speaker"}},
		{Category: CategoryMode, Mode: &ModeEvent{NewMode: "IN_CALL"}},
		{Category: CategoryError, Error: &ErrorEventData{Op: "OpenInputStream"}},
	} {
		l.Log(e)
	}
}

func TestLoggerFunc(t *testing.T) {
	var got []string
	l := LoggerFunc(func(e Event) { got = append(got, e.Module) })

	l.Log(Event{Module: "primary"})
	l.Log(Event{Module: "usb"})

	if len(got) != 2 || got[0] != "primary" || got[1] != "usb" {
		t.Errorf("got %v, want [primary usb]", got)
	}
}

func TestTeeForwardsInOrder(t *testing.T) {
	var order []int
	first := LoggerFunc(func(Event) { order = append(order, 1) })
	second := LoggerFunc(func(Event) { order = append(order, 2) })
	rec := &recorder{}

	Tee{first, nil, second, rec}.Log(Event{
		Timestamp: time.Now(),
		ModuleID:  "abc12345",
		Category:  CategoryMode,
		Mode:      &ModeEvent{OldMode: "NORMAL", NewMode: "IN_COMMUNICATION"},
	})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("call order = %v, want [1 2]", order)
	}
	if len(rec.events) != 1 || rec.events[0].Mode.NewMode != "IN_COMMUNICATION" {
		t.Errorf("recorder got %+v", rec.events)
	}
}

func TestEmptyTee(t *testing.T) {
	Tee(nil).Log(Event{ModuleID: "abc12345"})
	Tee{}.Log(Event{ModuleID: "abc12345"})
}
