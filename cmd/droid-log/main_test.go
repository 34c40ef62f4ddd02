package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/droidaudio/droid-go/pkg/log"
)

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "primary.rlog")
	l, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.Log(log.Event{
		Timestamp: time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC),
		ModuleID:  "abc12345-0000-0000-0000-000000000000",
		Module:    "primary",
		Category:  log.CategoryRoute,
		Route:     &log.RouteEvent{NewDevice: "Speaker"},
	})
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestRunExitCodes(t *testing.T) {
	path := writeLog(t)
	out := filepath.Join(t.TempDir(), "out.rlog")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"replay", path}, 2},
		{"missing file argument", []string{"stats"}, 2},
		{"bad flag", []string{"view", "-frobnicate", path}, 2},
		{"help flag", []string{"view", "-h"}, 0},
		{"bad criteria", []string{"view", "-direction", "up", path}, 1},
		{"missing file", []string{"stats", filepath.Join(t.TempDir(), "nope.rlog")}, 1},
		{"filter without output", []string{"filter", path}, 1},
		{"filter", []string{"filter", "-category", "route", "-o", out, path}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := run(tt.args, &stderr); got != tt.want {
				t.Errorf("run(%q) = %d, want %d\nstderr: %s", tt.args, got, tt.want, stderr.String())
			}
		})
	}
}

func TestUsageListsCommands(t *testing.T) {
	var buf bytes.Buffer
	usage(&buf)
	for _, c := range cmds {
		if !strings.Contains(buf.String(), c.name) {
			t.Errorf("usage does not mention %q", c.name)
		}
	}
}
