package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/droidaudio/droid-go/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer reader.Close()

	var events []log.Event
	for e, err := range reader.All() {
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		events = append(events, e)
	}
	return events
}

func TestFilterByModule(t *testing.T) {
	events := sessionEvents()
	events = append(events, log.Event{
		Timestamp: testTime,
		ModuleID:  "ffff0000-0000-0000-0000-000000000000",
		Module:    "a2dp",
		Category:  log.CategoryRoute,
		Route:     &log.RouteEvent{NewDevice: "BT A2DP Out"},
	})
	path := createTestLogFile(t, events)
	output := filepath.Join(t.TempDir(), "filtered.rlog")

	n, err := RunFilter(path, output, Criteria{Module: "a2dp"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 event, got %d", n)
	}

	got := readAll(t, output)
	if len(got) != 1 || got[0].Route.NewDevice != "BT A2DP Out" {
		t.Errorf("unexpected filtered events: %+v", got)
	}
}

func TestFilterByModuleID(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "filtered.rlog")

	n, err := RunFilter(path, output, Criteria{ModuleID: "other"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 events, got %d", n)
	}
}

func TestFilterByTimeRange(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "filtered.rlog")

	n, err := RunFilter(path, output, Criteria{
		TimeStart: testTime.Add(time.Second).Format(time.RFC3339),
		TimeEnd:   testTime.Add(3 * time.Second).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	// RFC3339 drops the fraction, so the window is [10:15:33, 10:15:35).
	if n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}
}

func TestFilterByDirectionAndCategory(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "filtered.rlog")

	n, err := RunFilter(path, output, Criteria{Direction: "out", Category: "stream"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}

	got := readAll(t, output)
	if got[0].Stream == nil || got[0].Stream.MixPort != "primary output" {
		t.Errorf("unexpected event: %+v", got[0])
	}
}

func TestFilterInvalidOptions(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "filtered.rlog")

	tests := []struct {
		name string
		c    Criteria
	}{
		{"time-start", Criteria{TimeStart: "yesterday"}},
		{"time-end", Criteria{TimeEnd: "tomorrow"}},
		{"direction", Criteria{Direction: "up"}},
		{"category", Criteria{Category: "frame"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunFilter(path, output, tt.c); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFilterAppendsToExistingOutput(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "filtered.rlog")

	for range 2 {
		if _, err := RunFilter(path, output, Criteria{Category: "route"}); err != nil {
			t.Fatalf("RunFilter failed: %v", err)
		}
	}
	if got := len(readAll(t, output)); got != 2 {
		t.Errorf("expected 2 events after two runs, got %d", got)
	}
}
