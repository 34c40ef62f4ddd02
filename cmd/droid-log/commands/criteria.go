package commands

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/droidaudio/droid-go/pkg/log"
)

// Criteria holds event selection flags as typed on the command line.
// Empty fields select everything.
type Criteria struct {
	ModuleID  string
	Module    string
	Port      string
	TimeStart string
	TimeEnd   string
	Direction string
	Category  string
}

// Register binds the criteria to flags of fs. Time bounds are only offered
// when withTime is set.
func (c *Criteria) Register(fs *flag.FlagSet, withTime bool) {
	fs.StringVar(&c.ModuleID, "module-id", "", "only events of this module instance id")
	fs.StringVar(&c.Module, "module", "", "only events of this hardware module (primary, a2dp, ...)")
	fs.StringVar(&c.Port, "port", "", "only events touching this mix or device port")
	fs.StringVar(&c.Direction, "direction", "", "out, in or none")
	fs.StringVar(&c.Category, "category", "", "stream, route, mode or error")
	if withTime {
		fs.StringVar(&c.TimeStart, "time-start", "", "first timestamp to keep (RFC3339)")
		fs.StringVar(&c.TimeEnd, "time-end", "", "timestamp to stop at, exclusive (RFC3339)")
	}
}

// Filter converts the criteria into a log.Filter.
func (c Criteria) Filter() (log.Filter, error) {
	f := log.Filter{ModuleID: c.ModuleID, Module: c.Module, Port: c.Port}

	for _, b := range []struct {
		name string
		text string
		dst  **time.Time
	}{
		{"time-start", c.TimeStart, &f.TimeStart},
		{"time-end", c.TimeEnd, &f.TimeEnd},
	} {
		if b.text == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, b.text)
		if err != nil {
			return log.Filter{}, fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = &t
	}

	if c.Direction != "" {
		d, err := ParseDirection(c.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		f.Direction = &d
	}
	if c.Category != "" {
		cat, err := ParseCategory(c.Category)
		if err != nil {
			return log.Filter{}, err
		}
		f.Category = &cat
	}
	return f, nil
}

// ParseDirection accepts out, output, in, input and none in any case.
func ParseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "out", "output":
		return log.DirectionOutput, nil
	case "in", "input":
		return log.DirectionInput, nil
	case "none":
		return log.DirectionNone, nil
	}
	return 0, fmt.Errorf("direction %q: want out, in or none", s)
}

// ParseCategory accepts the category names in any case.
func ParseCategory(s string) (log.Category, error) {
	for _, c := range []log.Category{log.CategoryStream, log.CategoryRoute, log.CategoryMode, log.CategoryError} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("category %q: want stream, route, mode or error", s)
}

// scan calls fn for every event of the file at path that filter matches.
func scan(path string, filter log.Filter, fn func(log.Event) error) error {
	r, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer r.Close()

	for event, err := range r.All() {
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
	return nil
}
