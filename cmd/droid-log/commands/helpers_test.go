package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/droidaudio/droid-go/pkg/log"
)

const testModuleID = "abc12345-6789-0123-4567-890abcdef012"

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sessionEvents is a short playback and capture session on one module.
func sessionEvents() []log.Event {
	code := -19
	return []log.Event{
		{
			Timestamp: testTime,
			ModuleID:  testModuleID,
			Module:    "primary",
			Direction: log.DirectionOutput,
			Category:  log.CategoryStream,
			StreamID:  1,
			Stream: &log.StreamEvent{
				Action:     log.StreamOpen,
				MixPort:    "primary output",
				DevicePort: "Speaker",
				Format:     "s16le",
				Rate:       48000,
				Channels:   2,
			},
		},
		{
			Timestamp: testTime.Add(time.Second),
			ModuleID:  testModuleID,
			Module:    "primary",
			Direction: log.DirectionOutput,
			Category:  log.CategoryRoute,
			Route: &log.RouteEvent{
				OldDevice: "Speaker",
				NewDevice: "Earpiece",
				Patch:     3,
				Mirrored:  1,
			},
		},
		{
			Timestamp: testTime.Add(2 * time.Second),
			ModuleID:  testModuleID,
			Module:    "primary",
			Category:  log.CategoryMode,
			Mode: &log.ModeEvent{
				OldMode:     "normal",
				NewMode:     "in_communication",
				Reconfigure: 1,
			},
		},
		{
			Timestamp: testTime.Add(3 * time.Second),
			ModuleID:  testModuleID,
			Module:    "primary",
			Direction: log.DirectionInput,
			Category:  log.CategoryStream,
			StreamID:  2,
			Stream: &log.StreamEvent{
				Action:        log.StreamOpen,
				MixPort:       "voip_tx",
				DevicePort:    "Built-In Mic",
				Format:        "s16le",
				Rate:          16000,
				Channels:      1,
				RequestedRate: 44100,
				Attempts:      2,
			},
		},
		{
			Timestamp: testTime.Add(4 * time.Second),
			ModuleID:  testModuleID,
			Module:    "primary",
			Direction: log.DirectionOutput,
			Category:  log.CategoryError,
			Error: &log.ErrorEventData{
				Op:      "OpenOutputStream",
				Message: "no such device",
				Code:    &code,
				Context: "deep_buffer",
			},
		},
	}
}
