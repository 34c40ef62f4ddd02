// Command droid-shell opens a hardware module on the simulated driver and
// drives it from an interactive prompt.
//
// The shell loads the audio hardware description the same way the bridge
// does, so it exercises stream negotiation, routing and mode handling
// against the real description of a device without touching its hardware.
//
// Usage:
//
//	droid-shell [flags]
//
// Flags:
//
//	-settings string   Settings file (YAML)
//	-xml string        Parse this XML file instead of probing
//	-legacy string     Parse this legacy file instead of probing
//	-module string     Hardware module to open (default "primary")
//	-event-log string  Write route events to this file
//	-log-level string  Log level: debug, info, warn, error
//
// Examples:
//
//	# Open the primary module of a vendor description
//	droid-shell -xml vendor/etc/audio_policy_configuration.xml
//
//	# Record route events for droid-log
//	droid-shell -event-log session.rlog -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/droidaudio/droid-go/cmd/droid-shell/interactive"
	"github.com/droidaudio/droid-go/pkg/bridge"
	"github.com/droidaudio/droid-go/pkg/hal/sim"
	"github.com/droidaudio/droid-go/pkg/hwmodule"
)

var (
	settingsFile string
	xmlFile      string
	legacyFile   string
	module       string
	eventLog     string
	logLevel     string
)

func init() {
	flag.StringVar(&settingsFile, "settings", "", "Settings file (YAML)")
	flag.StringVar(&xmlFile, "xml", "", "Parse this XML file instead of probing")
	flag.StringVar(&legacyFile, "legacy", "", "Parse this legacy file instead of probing")
	flag.StringVar(&module, "module", "", "Hardware module to open (default from settings)")
	flag.StringVar(&eventLog, "event-log", "", "Write route events to this file")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from settings)")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings() (bridge.Settings, error) {
	s := bridge.DefaultSettings()
	if settingsFile != "" {
		var err error
		if s, err = bridge.LoadSettings(settingsFile); err != nil {
			return s, err
		}
	}
	if xmlFile != "" || legacyFile != "" {
		s.XMLConfigs, s.LegacyConfigs = nil, nil
		if xmlFile != "" {
			s.XMLConfigs = []string{xmlFile}
		}
		if legacyFile != "" {
			s.LegacyConfigs = []string{legacyFile}
		}
	}
	if module != "" {
		s.Module = module
	}
	if eventLog != "" {
		s.EventLog = eventLog
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}
	return s, s.Validate()
}

func run() error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	sh, err := interactive.New()
	if err != nil {
		return err
	}

	logger, err := bridge.NewLogger(sh.Stderr(), s.LogLevel)
	if err != nil {
		return err
	}
	events, closeEvents, err := bridge.NewEventLogger(s, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	dev, src, err := bridge.LoadHardwareConfig(s, logger)
	if err != nil {
		return err
	}

	registry := hwmodule.NewRegistry(dev, hwmodule.RegistryConfig{
		Driver: sim.DriverName,
		Logger: logger,
		Events: events,
	})
	m, err := registry.GetOrOpen(s.Module)
	if err != nil {
		return err
	}
	defer m.Release()

	fmt.Fprintf(sh.Stdout(), "Module %s opened from %s (%s)\n", m.ID, src.Path, src.Format)
	sh.Attach(dev, m)
	defer sh.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("Received signal", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	sh.Run(ctx, cancel)
	return nil
}
