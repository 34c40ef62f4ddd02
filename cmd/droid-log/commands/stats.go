package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/droidaudio/droid-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	StreamActions     map[log.StreamAction]int
	Modules           map[string]*ModuleStats
	Errors            int
	RateChanges       int
	InputRetries      int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// ModuleStats holds statistics for a single module instance.
type ModuleStats struct {
	Name      string
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Routes    int
	LastRoute string
	LastMode  string
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		StreamActions:     make(map[log.StreamAction]int),
		Modules:           make(map[string]*ModuleStats),
	}
	err := scan(path, log.Filter{}, func(event log.Event) error {
		stats.add(event)
		return nil
	})
	if err != nil {
		return err
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	mod, ok := s.Modules[event.ModuleID]
	if !ok {
		mod = &ModuleStats{Name: event.Module, FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Modules[event.ModuleID] = mod
	}
	mod.Events++
	if event.Timestamp.After(mod.LastSeen) {
		mod.LastSeen = event.Timestamp
	}

	switch {
	case event.Stream != nil:
		s.StreamActions[event.Stream.Action]++
		if event.Stream.RequestedRate != 0 {
			s.RateChanges++
		}
		if event.Stream.Attempts > 1 {
			s.InputRetries++
		}
	case event.Route != nil:
		mod.Routes++
		mod.LastRoute = event.Route.NewDevice
	case event.Mode != nil:
		mod.LastMode = event.Mode.NewMode
	case event.Error != nil:
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Route Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryStream, log.CategoryRoute, log.CategoryMode, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionOutput, log.DirectionInput, log.DirectionNone} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.StreamActions) > 0 {
		fmt.Fprintln(w, "Stream Actions:")
		for _, a := range []log.StreamAction{log.StreamOpen, log.StreamClose, log.StreamStandby, log.StreamResume, log.StreamReconfigure} {
			if count := stats.StreamActions[a]; count > 0 {
				fmt.Fprintf(w, "  %-12s %d\n", a.String()+":", count)
			}
		}
		if stats.RateChanges > 0 {
			fmt.Fprintf(w, "  Rate changed by driver: %d\n", stats.RateChanges)
		}
		if stats.InputRetries > 0 {
			fmt.Fprintf(w, "  Inputs opened after retry: %d\n", stats.InputRetries)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Modules: %d\n", len(stats.Modules))
	if len(stats.Modules) > 0 {
		type modInfo struct {
			id    string
			stats *ModuleStats
		}
		mods := make([]modInfo, 0, len(stats.Modules))
		for id, ms := range stats.Modules {
			mods = append(mods, modInfo{id, ms})
		}
		sort.Slice(mods, func(i, j int) bool {
			return mods[i].stats.FirstSeen.Before(mods[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, m := range mods {
			duration := m.stats.LastSeen.Sub(m.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %s: %d events, duration %s\n", shortenModuleID(m.id), m.stats.Name, m.stats.Events, duration)
			if m.stats.Routes > 0 {
				fmt.Fprintf(w, "           Routes: %d (last: %s)\n", m.stats.Routes, m.stats.LastRoute)
			}
			if m.stats.LastMode != "" {
				fmt.Fprintf(w, "           Mode: %s\n", m.stats.LastMode)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
