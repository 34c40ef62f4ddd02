package bridge

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/droidaudio/droid-go/pkg/log"
)

// ErrUnknownLevel is returned for an unknown log level name.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel parses debug, info, warn or error. The empty string means
// info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// NewLogger returns a text logger writing to w at the given level. Debug
// logging includes source locations.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})), nil
}

// NewEventLogger returns the route event logger for s. Events always go
// to logger at debug level and, when s.EventLog is set, to that file too.
// The returned close function must be called on shutdown.
func NewEventLogger(s Settings, logger *slog.Logger) (log.Logger, func() error, error) {
	adapter := log.NewSlogAdapter(logger)
	if s.EventLog == "" {
		return adapter, func() error { return nil }, nil
	}
	file, err := log.NewFileLogger(s.EventLog)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	return log.Tee{adapter, file}, file.Close, nil
}
