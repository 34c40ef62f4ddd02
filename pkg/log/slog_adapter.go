package log

import (
	"context"
	"log/slog"
)

// SlogAdapter prints events through an slog.Logger. Records carry the
// event's own timestamp and group the payload under its category name
// (stream, route, mode or error).
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter returns an adapter logging at debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of a that logs at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log implements Logger.
func (a *SlogAdapter) Log(event Event) {
	ctx := context.Background()
	h := a.logger.Handler()
	if !h.Enabled(ctx, a.level) {
		return
	}
	r := slog.NewRecord(event.Timestamp, a.level, "Route event", 0)
	r.AddAttrs(eventAttrs(event)...)
	_ = h.Handle(ctx, r)
}

func eventAttrs(e Event) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("module_id", e.ModuleID),
		slog.String("event", e.Label()),
	}
	if e.Module != "" {
		attrs = append(attrs, slog.String("module", e.Module))
	}
	if e.Direction != DirectionNone {
		attrs = append(attrs, slog.String("direction", e.Direction.String()))
	}
	if e.StreamID != 0 {
		attrs = append(attrs, slog.Int("stream", int(e.StreamID)))
	}
	if p := payload(e); p.Key != "" {
		attrs = append(attrs, p)
	}
	return attrs
}

func payload(e Event) slog.Attr {
	var (
		key  string
		args []any
	)
	switch {
	case e.Stream != nil:
		s := e.Stream
		key = "stream"
		args = []any{"mix", s.MixPort, "device", s.DevicePort}
		if s.Rate != 0 {
			args = append(args, "format", s.Format, "rate", s.Rate, "channels", s.Channels)
		}
		if s.RequestedRate != 0 {
			args = append(args, "requested_rate", s.RequestedRate)
		}
		if s.Attempts != 0 {
			args = append(args, "attempts", s.Attempts)
		}
	case e.Route != nil:
		key = "route"
		args = []any{"old", e.Route.OldDevice, "new", e.Route.NewDevice, "patch", e.Route.Patch, "mirrored", e.Route.Mirrored}
	case e.Mode != nil:
		key = "mode"
		args = []any{"old", e.Mode.OldMode, "new", e.Mode.NewMode}
		if e.Mode.Reconfigure != 0 {
			args = append(args, "reconfigure", e.Mode.Reconfigure)
		}
	case e.Error != nil:
		key = "error"
		args = []any{"op", e.Error.Op, "msg", e.Error.Message, "context", e.Error.Context}
		if e.Error.Code != nil {
			args = append(args, "code", *e.Error.Code)
		}
	default:
		return slog.Attr{}
	}
	return slog.Group(key, args...)
}

var _ Logger = (*SlogAdapter)(nil)
