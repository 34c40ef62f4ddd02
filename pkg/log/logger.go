package log

// Logger receives routing events from hardware modules. Log is called with
// module locks held, so implementations must be safe for concurrent use and
// must not block.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event. The zero value is ready to use.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(Event) {}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(Event)

// Log calls f(event).
func (f LoggerFunc) Log(event Event) { f(event) }

// Tee forwards each event to every logger in order. Nil entries are skipped.
type Tee []Logger

// Log implements Logger.
func (t Tee) Log(event Event) {
	for _, l := range t {
		if l != nil {
			l.Log(event)
		}
	}
}

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
	_ Logger = Tee(nil)
)
