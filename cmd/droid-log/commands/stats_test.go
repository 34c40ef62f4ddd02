package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/droidaudio/droid-go/pkg/log"
)

func runStats(t *testing.T, events []log.Event) string {
	t.Helper()
	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	return buf.String()
}

func TestStatsTotals(t *testing.T) {
	output := runStats(t, sessionEvents())

	if !strings.Contains(output, "Total Events: 5") {
		t.Errorf("expected total events, got: %s", output)
	}
	if !strings.Contains(output, "Duration:   4s") {
		t.Errorf("expected 4s duration, got: %s", output)
	}
}

func TestStatsCountsByCategory(t *testing.T) {
	output := runStats(t, sessionEvents())

	for _, want := range []string{"STREAM:", "ROUTE:", "MODE:", "ERROR:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestStatsStreamActions(t *testing.T) {
	output := runStats(t, sessionEvents())

	if !strings.Contains(output, "Stream Actions:") {
		t.Errorf("expected stream actions section, got: %s", output)
	}
	if !strings.Contains(output, "Rate changed by driver: 1") {
		t.Errorf("expected rate change count, got: %s", output)
	}
	if !strings.Contains(output, "Inputs opened after retry: 1") {
		t.Errorf("expected retry count, got: %s", output)
	}
}

func TestStatsModules(t *testing.T) {
	output := runStats(t, sessionEvents())

	if !strings.Contains(output, "Modules: 1") {
		t.Errorf("expected one module, got: %s", output)
	}
	if !strings.Contains(output, "[abc12345] primary: 5 events") {
		t.Errorf("expected module line, got: %s", output)
	}
	if !strings.Contains(output, "Routes: 1 (last: Earpiece)") {
		t.Errorf("expected route summary, got: %s", output)
	}
	if !strings.Contains(output, "Mode: in_communication") {
		t.Errorf("expected last mode, got: %s", output)
	}
}

func TestStatsErrorCount(t *testing.T) {
	output := runStats(t, sessionEvents())
	if !strings.Contains(output, "Errors: 1") {
		t.Errorf("expected error count, got: %s", output)
	}

	output = runStats(t, sessionEvents()[:2])
	if strings.Contains(output, "Errors:") {
		t.Errorf("expected no error line, got: %s", output)
	}
}

func TestStatsEmptyLog(t *testing.T) {
	output := runStats(t, nil)

	if !strings.Contains(output, "Total Events: 0") {
		t.Errorf("expected zero events, got: %s", output)
	}
	if strings.Contains(output, "Time Range") {
		t.Errorf("expected no time range, got: %s", output)
	}
}
