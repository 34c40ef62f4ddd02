package bridge

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/droidaudio/droid-go/pkg/config"
)

// ErrNoConfig is returned when no location holds a description.
var ErrNoConfig = errors.New("no audio hardware description found")

// Format names a description file format.
type Format string

const (
	// FormatXML is the audio_policy_configuration.xml format.
	FormatXML Format = "xml"
	// FormatLegacy is the brace delimited audio_policy.conf format.
	FormatLegacy Format = "legacy"
)

// Source tells where a description was loaded from.
type Source struct {
	Path   string
	Format Format
}

type parseFunc func(path string, logger *slog.Logger) (*config.Device, error)

// LoadHardwareConfig tries every XML location and then every legacy
// location. A location that cannot be opened is skipped; the first one
// that opens decides the outcome, so a parse error is returned without
// trying further locations.
func LoadHardwareConfig(s Settings, logger *slog.Logger) (*config.Device, Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	candidates := []struct {
		paths  []string
		format Format
		parse  parseFunc
	}{
		{s.XMLConfigs, FormatXML, config.ParseXML},
		{s.LegacyConfigs, FormatLegacy, config.ParseLegacy},
	}

	for _, c := range candidates {
		for _, path := range c.paths {
			dev, err := c.parse(path, logger)
			if errors.Is(err, config.ErrOpen) {
				logger.Debug("Configuration not available", "file", path, "format", string(c.format))
				continue
			}
			if err != nil {
				logger.Error("Failed to parse configuration", "file", path, "format", string(c.format), "error", err)
				return nil, Source{}, err
			}
			logger.Info("Loaded audio hardware description", "file", path, "format", string(c.format),
				"modules", len(dev.Modules))
			return dev, Source{Path: path, Format: c.format}, nil
		}
	}
	return nil, Source{}, fmt.Errorf("%w: tried %d xml and %d legacy locations",
		ErrNoConfig, len(s.XMLConfigs), len(s.LegacyConfigs))
}
