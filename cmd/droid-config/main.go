// Command droid-config loads an audio hardware description the same way
// the bridge does and prints what it found.
//
// Usage:
//
//	droid-config [flags] <command> [args]
//
// Commands:
//
//	dump                 Print the description as YAML
//	graph [module]       Print the routing graph of a module
//	show <path>          Inspect a module, port or route list
//	ports                Print one line per port for cross-format comparison
//	negotiate <mix> <format> <rate> <channels>
//	                     Negotiate a sample spec against a mix port
//
// Flags:
//
//	-settings string   Settings file (YAML)
//	-xml string        Parse this XML file instead of probing
//	-legacy string     Parse this legacy file instead of probing
//	-module string     Module used by graph and negotiate
//	-log-level string  Log level: debug, info, warn, error
//
// Examples:
//
//	# Dump whatever the device would load
//	droid-config dump
//
//	# Inspect the speaker of a specific file
//	droid-config -xml audio_policy_configuration.xml show primary/device/Speaker
//
//	# See what a 44.1kHz mono stream would open as
//	droid-config negotiate "primary output" s16le 44100 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/bridge"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hwmodule"
	"github.com/droidaudio/droid-go/pkg/inspect"
	"github.com/droidaudio/droid-go/pkg/sample"
)

const usage = `droid-config - Audio Hardware Description Tool

Usage:
  droid-config [flags] <command> [args]

Commands:
  dump                 Print the description as YAML
  graph [module]       Print the routing graph of a module
  show <path>          Inspect a module, port or route list
  ports                Print one line per port
  negotiate <mix> <format> <rate> <channels>
                       Negotiate a sample spec against a mix port

Flags:
`

var errUsage = errors.New("invalid arguments")

type options struct {
	settings string
	xml      string
	legacy   string
	module   string
	logLevel string
}

func main() {
	var opts options
	fs := flag.NewFlagSet("droid-config", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.settings, "settings", "", "Settings file (YAML)")
	fs.StringVar(&opts.xml, "xml", "", "Parse this XML file instead of probing")
	fs.StringVar(&opts.legacy, "legacy", "", "Parse this legacy file instead of probing")
	fs.StringVar(&opts.module, "module", "", "Module used by graph and negotiate (default from settings)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from settings)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	if err := run(opts, fs.Args(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		os.Exit(1)
	}
}

func run(opts options, args []string, stdout, stderr io.Writer) error {
	s, err := settings(opts)
	if err != nil {
		return err
	}
	logger, err := bridge.NewLogger(stderr, s.LogLevel)
	if err != nil {
		return err
	}

	dev, src, err := bridge.LoadHardwareConfig(s, logger)
	if err != nil {
		return err
	}
	logger.Debug("Using description", "file", src.Path, "format", string(src.Format))

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "dump":
		return runDump(dev, stdout)
	case "graph":
		module := s.Module
		if len(rest) > 0 {
			module = rest[0]
		}
		return runGraph(dev, module, stdout)
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("%w: show takes one path", errUsage)
		}
		return runShow(dev, rest[0], stdout)
	case "ports":
		return runPorts(dev, stdout)
	case "negotiate":
		return runNegotiate(dev, s.Module, rest, logger, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// settings loads the settings file and applies the command line overrides.
// An explicit file replaces probing altogether.
func settings(opts options) (bridge.Settings, error) {
	s := bridge.DefaultSettings()
	if opts.settings != "" {
		var err error
		if s, err = bridge.LoadSettings(opts.settings); err != nil {
			return s, err
		}
	}
	if opts.xml != "" || opts.legacy != "" {
		s.XMLConfigs, s.LegacyConfigs = nil, nil
		if opts.xml != "" {
			s.XMLConfigs = []string{opts.xml}
		}
		if opts.legacy != "" {
			s.LegacyConfigs = []string{opts.legacy}
		}
	}
	if opts.module != "" {
		s.Module = opts.module
	}
	if opts.logLevel != "" {
		s.LogLevel = opts.logLevel
	}
	return s, s.Validate()
}

func runDump(dev *config.Device, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dev); err != nil {
		return fmt.Errorf("failed to encode description: %w", err)
	}
	return enc.Close()
}

func runGraph(dev *config.Device, module string, w io.Writer) error {
	g, err := inspect.NewInspector(dev).InspectGraph(module)
	if err != nil {
		return err
	}
	fmt.Fprint(w, inspect.NewFormatter().FormatGraph(g))
	return nil
}

func runShow(dev *config.Device, arg string, w io.Writer) error {
	path, err := inspect.ParsePath(arg)
	if err != nil {
		return err
	}
	insp := inspect.NewInspector(dev)
	f := inspect.NewFormatter()

	switch {
	case path.Kind == inspect.KindModule:
		m, err := insp.InspectModule(path.Module)
		if err != nil {
			return err
		}
		fmt.Fprint(w, f.FormatModule(*m))
	case path.Kind == inspect.KindGraph:
		return runGraph(dev, path.Module, w)
	case path.Kind == inspect.KindRoutes:
		m, err := insp.InspectModule(path.Module)
		if err != nil {
			return err
		}
		fmt.Fprint(w, f.FormatRoutes(m.Routes, 0))
	case path.IsPartial():
		m := inspect.ResolveModule(dev, path.Module)
		if m == nil {
			return fmt.Errorf("%w: %s", inspect.ErrModuleNotFound, path.Module)
		}
		for _, name := range inspect.PortNames(m, path.Kind) {
			fmt.Fprintln(w, name)
		}
	default:
		p, err := insp.InspectPort(path)
		if err != nil {
			return err
		}
		fmt.Fprint(w, f.FormatPort(*p, 0))
	}
	return nil
}

func runPorts(dev *config.Device, w io.Writer) error {
	for _, t := range dev.Flatten() {
		formats := make([]string, len(t.Formats))
		for i, f := range t.Formats {
			formats[i] = f.String()
		}
		devices := audio.DeviceListString(t.Devices.Direction(), t.Devices)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Module, t.Port, devices, strings.Join(formats, ","))
	}
	return nil
}

func runNegotiate(dev *config.Device, module string, args []string, logger *slog.Logger, w io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: negotiate takes <mix> <format> <rate> <channels>", errUsage)
	}
	m := inspect.ResolveModule(dev, module)
	if m == nil {
		return fmt.Errorf("%w: %s", inspect.ErrModuleNotFound, module)
	}
	port := inspect.ResolvePort(m, inspect.KindMix, args[0])
	if port == nil {
		return fmt.Errorf("%w: %s/mix/%s", inspect.ErrPortNotFound, m.Name, args[0])
	}

	format, ok := sample.ParseFormat(args[1])
	if !ok {
		return fmt.Errorf("%w: %s", sample.ErrUnsupportedFormat, args[1])
	}
	rate, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", args[2], err)
	}
	channels, err := strconv.ParseUint(args[3], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid channel count %q: %w", args[3], err)
	}

	spec := sample.Spec{Format: format, Rate: uint32(rate), Channels: uint8(channels)}
	n, err := hwmodule.CompatiblePort(port, spec, nil)
	if err != nil {
		return err
	}
	logger.Debug("Negotiated", "port", port.Name, "requested", spec.String(), "result", n.Spec.String())

	fmt.Fprintf(w, "port:     %s\n", port.Name)
	fmt.Fprintf(w, "request:  %s\n", spec)
	fmt.Fprintf(w, "result:   %s\n", n.Spec)
	fmt.Fprintf(w, "channels: %s\n", n.Channels)
	fmt.Fprintf(w, "mask:     %s\n", inspect.FormatMasks(port.Direction(), []audio.ChannelMask{n.Mask}))
	fmt.Fprintf(w, "profile:  %s\n", inspect.FormatProfile(n.Profile, port.Direction()))
	return nil
}
