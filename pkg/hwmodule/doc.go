// Package hwmodule opens vendor audio modules and manages the streams and
// routes on them.
//
// A Registry hands out reference-counted Module handles keyed by module id
// ("primary", "a2dp", ...). Each Module owns a private copy of the parsed
// configuration, the routing graph derived from it and the driver device.
//
// Opening a stream first negotiates a sample spec against the profiles of
// the mix port (see CompatiblePort), then asks the driver for a stream and
// routes it to a device port with an audio patch. Input opens are retried
// once with the configuration the driver suggests and once more with the
// default spec. Output route changes are applied to the primary output
// first and mirrored to every other open output only when that succeeds.
//
// Locking: a module has separate mutexes for the output path, the input
// path and module wide driver calls. The path mutexes are always taken
// before the module mutex, never the other way around.
package hwmodule
