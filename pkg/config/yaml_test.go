package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLDumpReload(t *testing.T) {
	dev, err := ParseXML("testdata/audio_policy_configuration.xml", quietLogger())
	require.NoError(t, err)

	data, err := yaml.Marshal(dev)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tagName: Speaker")
	assert.Contains(t, string(data), "samplingRates: dynamic")

	var reloaded Device
	require.NoError(t, yaml.Unmarshal(data, &reloaded))

	assert.Equal(t, dev.Flatten(), reloaded.Flatten())
	assert.Equal(t, dev.GlobalConfig, reloaded.GlobalConfig)
	for _, m := range dev.Modules {
		r := reloaded.Module(m.Name)
		require.NotNil(t, r, m.Name)
		assert.Equal(t, m.Version, r.Version)
		assert.Equal(t, portNames(m.Attached()), portNames(r.Attached()))
		assert.Equal(t, len(m.Routes), len(r.Routes))
		for i, p := range m.Ports {
			assert.Equal(t, p.Flags, r.Ports[i].Flags, p.Name)
			assert.Equal(t, p.Profiles, r.Ports[i].Profiles, p.Name)
		}
	}
}

func TestYAMLUnknownRouteSource(t *testing.T) {
	in := `
modules:
  - name: primary
    halVersion: "2.0"
    devicePorts:
      - tagName: Speaker
        role: sink
        type: AUDIO_DEVICE_OUT_SPEAKER
    routes:
      - type: mix
        sink: Speaker
        sources: [ghost]
`
	var dev Device
	err := yaml.Unmarshal([]byte(in), &dev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}
