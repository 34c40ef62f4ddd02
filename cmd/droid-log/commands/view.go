// Package commands implements the droid-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/droidaudio/droid-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeLayout)
	modID := shortenModuleID(event.ModuleID)

	header := fmt.Sprintf("%s [mod:%s] %s %-6s %s %s", ts, modID, event.Module, event.Direction, event.Category, event.Label())
	if event.StreamID != 0 {
		header += fmt.Sprintf(" #%d", event.StreamID)
	}
	fmt.Fprintln(w, header)

	switch {
	case event.Stream != nil:
		formatStreamDetails(w, event.Stream)
	case event.Route != nil:
		formatRouteDetails(w, event.Route)
	case event.Mode != nil:
		formatModeDetails(w, event.Mode)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenModuleID returns the first 8 characters of the module instance ID.
func shortenModuleID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatStreamDetails(w io.Writer, s *log.StreamEvent) {
	if s.MixPort != "" || s.DevicePort != "" {
		fmt.Fprintf(w, "  Ports: %s -> %s\n", s.MixPort, s.DevicePort)
	}
	if s.Format != "" {
		fmt.Fprintf(w, "  Spec: %s %dch %dHz", s.Format, s.Channels, s.Rate)
		if s.RequestedRate != 0 {
			fmt.Fprintf(w, " (requested %dHz)", s.RequestedRate)
		}
		fmt.Fprintln(w)
	}
	if s.Attempts > 1 {
		fmt.Fprintf(w, "  Attempts: %d\n", s.Attempts)
	}
}

func formatRouteDetails(w io.Writer, r *log.RouteEvent) {
	if r.OldDevice != "" {
		fmt.Fprintf(w, "  %s -> %s\n", r.OldDevice, r.NewDevice)
	} else {
		fmt.Fprintf(w, "  -> %s\n", r.NewDevice)
	}
	if r.Patch != 0 {
		fmt.Fprintf(w, "  Patch: %d\n", r.Patch)
	}
	if r.Mirrored > 0 {
		fmt.Fprintf(w, "  Mirrored: %d\n", r.Mirrored)
	}
}

func formatModeDetails(w io.Writer, m *log.ModeEvent) {
	fmt.Fprintf(w, "  %s -> %s\n", m.OldMode, m.NewMode)
	if m.Reconfigure > 0 {
		fmt.Fprintf(w, "  Reconfigure: %d input(s)\n", m.Reconfigure)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// RunView prints the events of path that c selects.
func RunView(path string, c Criteria, w io.Writer) error {
	filter, err := c.Filter()
	if err != nil {
		return err
	}
	return scan(path, filter, func(event log.Event) error {
		formatEvent(w, event)
		return nil
	})
}
