package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logJSON(t *testing.T, a func(*slog.Logger) *SlogAdapter, event Event) (map[string]any, bool) {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	a(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		return nil, false
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry, true
}

func group(t *testing.T, entry map[string]any, key string) map[string]any {
	t.Helper()
	g, ok := entry[key].(map[string]any)
	if !ok {
		t.Fatalf("%s group missing in %v", key, entry)
	}
	return g
}

func TestSlogAdapterStreamEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	entry, ok := logJSON(t, NewSlogAdapter, Event{
		Timestamp: ts,
		ModuleID:  "mod-123",
		Module:    "primary",
		Direction: DirectionInput,
		Category:  CategoryStream,
		StreamID:  5,
		Stream: &StreamEvent{
			Action:        StreamOpen,
			MixPort:       "primary input",
			DevicePort:    "Built-In Mic",
			Format:        "s16le",
			Rate:          48000,
			Channels:      2,
			RequestedRate: 44100,
			Attempts:      2,
		},
	})
	if !ok {
		t.Fatal("no output produced")
	}

	for k, want := range map[string]any{
		"msg":       "Route event",
		"level":     "DEBUG",
		"time":      "2026-01-28T10:15:32Z",
		"module_id": "mod-123",
		"module":    "primary",
		"direction": "INPUT",
		"event":     "OPEN",
	} {
		if entry[k] != want {
			t.Errorf("%s = %v, want %v", k, entry[k], want)
		}
	}
	s := group(t, entry, "stream")
	if s["mix"] != "primary input" || s["device"] != "Built-In Mic" {
		t.Errorf("ports = %v, %v", s["mix"], s["device"])
	}
	if s["rate"] != float64(48000) || s["requested_rate"] != float64(44100) || s["attempts"] != float64(2) {
		t.Errorf("negotiation attrs = %v", s)
	}
}

func TestSlogAdapterRouteEvent(t *testing.T) {
	entry, _ := logJSON(t, NewSlogAdapter, Event{
		Timestamp: time.Now(),
		ModuleID:  "mod-123",
		Category:  CategoryRoute,
		Route:     &RouteEvent{OldDevice: "Speaker", NewDevice: "Earpiece", Patch: 3, Mirrored: 1},
	})

	r := group(t, entry, "route")
	if r["new"] != "Earpiece" || r["mirrored"] != float64(1) {
		t.Errorf("route = %v", r)
	}
	if _, ok := entry["direction"]; ok {
		t.Error("direction should be omitted for DirectionNone")
	}
}

func TestSlogAdapterErrorEvent(t *testing.T) {
	code := -22
	entry, _ := logJSON(t, NewSlogAdapter, Event{
		Timestamp: time.Now(),
		ModuleID:  "mod-123",
		Category:  CategoryError,
		Error:     &ErrorEventData{Op: "OpenInputStream", Message: "invalid argument", Code: &code},
	})

	if entry["event"] != "OpenInputStream" {
		t.Errorf("event = %v, want OpenInputStream", entry["event"])
	}
	if e := group(t, entry, "error"); e["code"] != float64(-22) {
		t.Errorf("code = %v, want -22", e["code"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	quiet := func(l *slog.Logger) *SlogAdapter { return NewSlogAdapter(l).WithLevel(slog.LevelDebug - 4) }
	if _, ok := logJSON(t, quiet, Event{ModuleID: "mod-123", Category: CategoryMode, Mode: &ModeEvent{NewMode: "IN_CALL"}}); ok {
		t.Error("expected no output below the handler level")
	}

	loud := func(l *slog.Logger) *SlogAdapter { return NewSlogAdapter(l).WithLevel(slog.LevelInfo) }
	entry, ok := logJSON(t, loud, Event{ModuleID: "mod-123", Category: CategoryMode, Mode: &ModeEvent{NewMode: "IN_CALL"}})
	if !ok || entry["level"] != "INFO" {
		t.Errorf("expected an INFO record, got %v", entry)
	}
}
