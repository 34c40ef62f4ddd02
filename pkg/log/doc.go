// Package log records what hardware modules did to their streams.
//
// Events are separate from operational logging with slog. Each one
// describes a single state change (a stream opened or closed, a patch
// moved to another device, an audio mode switch, a failed driver call)
// and is meant to be replayed when a routing problem is debugged.
//
// Events go to a Logger. SlogAdapter prints them at debug level,
// FileLogger appends them to an .rlog file, and Tee combines loggers:
//
//	file, err := log.NewFileLogger("/data/misc/audio/route.rlog")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	events := log.Tee{log.NewSlogAdapter(slog.Default()), file}
//
// An .rlog file is a sequence of CBOR maps with integer keys, one per
// event. Reader decodes it with an optional Filter, and the droid-log
// command views, exports, filters and summarizes it.
package log
