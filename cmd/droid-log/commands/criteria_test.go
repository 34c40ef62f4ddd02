package commands

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/droidaudio/droid-go/pkg/log"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Direction
		wantErr bool
	}{
		{"out", log.DirectionOutput, false},
		{"OUTPUT", log.DirectionOutput, false},
		{"in", log.DirectionInput, false},
		{"input", log.DirectionInput, false},
		{"none", log.DirectionNone, false},
		{"sideways", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Category
		wantErr bool
	}{
		{"stream", log.CategoryStream, false},
		{"Route", log.CategoryRoute, false},
		{"mode", log.CategoryMode, false},
		{"ERROR", log.CategoryError, false},
		{"message", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCriteriaRegister(t *testing.T) {
	var c Criteria
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	c.Register(fs, true)

	err := fs.Parse([]string{"-module", "primary", "-direction", "out", "-time-start", "2026-01-28T10:15:33Z", "x.rlog"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	f, err := c.Filter()
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if f.Module != "primary" {
		t.Errorf("Module = %q, want primary", f.Module)
	}
	if f.Direction == nil || *f.Direction != log.DirectionOutput {
		t.Errorf("Direction = %v, want OUTPUT", f.Direction)
	}
	want := time.Date(2026, 1, 28, 10, 15, 33, 0, time.UTC)
	if f.TimeStart == nil || !f.TimeStart.Equal(want) {
		t.Errorf("TimeStart = %v, want %v", f.TimeStart, want)
	}
	if f.TimeEnd != nil || f.Category != nil {
		t.Errorf("unset criteria should stay nil: %+v", f)
	}
}

func TestCriteriaRegisterWithoutTime(t *testing.T) {
	var c Criteria
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Register(fs, false)

	if err := fs.Parse([]string{"-time-start", "2026-01-28T10:15:33Z"}); err == nil {
		t.Error("expected -time-start to be rejected")
	}
}
