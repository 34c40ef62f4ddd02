package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/droidaudio/droid-go/pkg/log"
)

// Export formats.
const (
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

var csvHeader = []string{
	"timestamp", "module_id", "module", "direction", "category",
	"stream_id", "type", "port", "detail",
}

// RunExport writes every event of path to w in the given format.
func RunExport(path, format string, w io.Writer) error {
	var (
		emit  func(log.Event) error
		flush = func() error { return nil }
	)
	switch format {
	case FormatJSONL:
		enc := json.NewEncoder(w)
		emit = func(e log.Event) error { return enc.Encode(e) }
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		emit = func(e log.Event) error { return cw.Write(csvRow(e)) }
		flush = func() error {
			cw.Flush()
			return cw.Error()
		}
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatJSONL, FormatCSV)
	}

	if err := scan(path, log.Filter{}, emit); err != nil {
		return err
	}
	return flush()
}

// csvRow flattens an event. The type column holds the stream action for
// stream events and the lower case category otherwise.
func csvRow(e log.Event) []string {
	kind, port, detail := "unknown", "", ""
	switch {
	case e.Stream != nil:
		kind, port = e.Stream.Action.String(), e.Stream.MixPort
		if e.Stream.Rate != 0 {
			detail = fmt.Sprintf("%s %dch %dHz", e.Stream.Format, e.Stream.Channels, e.Stream.Rate)
		}
	case e.Route != nil:
		kind, port, detail = "route", e.Route.NewDevice, e.Route.OldDevice
	case e.Mode != nil:
		kind, detail = "mode", e.Mode.NewMode
	case e.Error != nil:
		kind, port, detail = "error", e.Error.Context, e.Error.Message
	}
	return []string{
		e.Timestamp.UTC().Format(timeLayout),
		e.ModuleID,
		e.Module,
		e.Direction.String(),
		e.Category.String(),
		strconv.Itoa(int(e.StreamID)),
		kind,
		port,
		detail,
	}
}
