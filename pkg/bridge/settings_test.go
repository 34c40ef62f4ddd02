package bridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "primary", s.Module)
	assert.Equal(t, DefaultXMLConfigs, s.XMLConfigs)
	assert.Equal(t, DefaultLegacyConfigs, s.LegacyConfigs)
	assert.Empty(t, s.EventLog)
	assert.NoError(t, s.Validate())

	// The defaults are copies.
	s.XMLConfigs[0] = "changed"
	assert.NotEqual(t, "changed", DefaultXMLConfigs[0])
}

func TestLoadSettings(t *testing.T) {
	path := writeFile(t, "bridge.yaml", `
module: usb
xmlConfigs:
  - /tmp/a.xml
eventLog: /tmp/routes.rlog
logLevel: debug
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "usb", s.Module)
	assert.Equal(t, []string{"/tmp/a.xml"}, s.XMLConfigs)
	assert.Equal(t, DefaultLegacyConfigs, s.LegacyConfigs, "unset keys keep defaults")
	assert.Equal(t, "/tmp/routes.rlog", s.EventLog)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "bad.yaml", "module: [unclosed"))
		assert.Error(t, err)
	})
	t.Run("bad level", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "lvl.yaml", "logLevel: loud\n"))
		assert.ErrorIs(t, err, ErrInvalidSettings)
		assert.ErrorIs(t, err, ErrUnknownLevel)
	})
	t.Run("empty module", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "mod.yaml", "module: \"\"\n"))
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})
}

func TestValidateNoLocations(t *testing.T) {
	s := DefaultSettings()
	s.XMLConfigs = nil
	s.LegacyConfigs = nil
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s.LegacyConfigs = []string{"/etc/audio_policy.conf"}
	assert.NoError(t, s.Validate())
}
