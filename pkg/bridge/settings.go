package bridge

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when settings fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Default probe locations, in probe order.
var (
	DefaultXMLConfigs = []string{
		"/odm/etc/audio_policy_configuration.xml",
		"/vendor/etc/audio_policy_configuration.xml",
		"/system/etc/audio_policy_configuration.xml",
	}
	DefaultLegacyConfigs = []string{
		"/odm/etc/audio_policy.conf",
		"/vendor/etc/audio_policy.conf",
		"/system/etc/audio_policy.conf",
	}
)

// DefaultModule is the hardware module opened when none is configured.
const DefaultModule = "primary"

// Settings configures the bridge.
type Settings struct {
	// Module is the hardware module id to open.
	Module string `yaml:"module"`

	// XMLConfigs are the XML description locations, tried in order.
	XMLConfigs []string `yaml:"xmlConfigs"`

	// LegacyConfigs are the legacy description locations, tried after
	// every XML location failed to open.
	LegacyConfigs []string `yaml:"legacyConfigs"`

	// EventLog is the optional path of the route event log.
	EventLog string `yaml:"eventLog,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// DefaultSettings returns Settings with the standard probe locations.
func DefaultSettings() Settings {
	return Settings{
		Module:        DefaultModule,
		XMLConfigs:    append([]string(nil), DefaultXMLConfigs...),
		LegacyConfigs: append([]string(nil), DefaultLegacyConfigs...),
		LogLevel:      "info",
	}
}

// LoadSettings reads settings from a YAML file on top of the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("YAML parse error in %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks if the settings are usable.
func (s *Settings) Validate() error {
	if s.Module == "" {
		return fmt.Errorf("%w: module is empty", ErrInvalidSettings)
	}
	if len(s.XMLConfigs) == 0 && len(s.LegacyConfigs) == 0 {
		return fmt.Errorf("%w: no configuration locations", ErrInvalidSettings)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
