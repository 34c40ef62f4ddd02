package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/version"
)

func TestPortDirection(t *testing.T) {
	tests := []struct {
		typ  PortType
		role Role
		want audio.Direction
	}{
		{PortTypeMix, RoleSource, audio.DirectionOutput},
		{PortTypeMix, RoleSink, audio.DirectionInput},
		{PortTypeDevice, RoleSink, audio.DirectionOutput},
		{PortTypeDevice, RoleSource, audio.DirectionInput},
	}
	for _, tt := range tests {
		p := &Port{Type: tt.typ, Role: tt.role}
		assert.Equal(t, tt.want, p.Direction(), "%s %s", tt.typ, tt.role)
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("sink")
	assert.True(t, ok)
	assert.Equal(t, RoleSink, r)

	r, ok = ParseRole("source")
	assert.True(t, ok)
	assert.Equal(t, RoleSource, r)

	_, ok = ParseRole("Source")
	assert.False(t, ok)
}

func TestModulePorts(t *testing.T) {
	m := NewModule("primary", version.DefaultHAL)
	out := m.AddMixPort(&Port{Name: "out", Role: RoleSource})
	spk := m.AddDevicePort(&Port{Name: "Speaker", Role: RoleSink, DeviceType: audio.DeviceOutSpeaker})

	assert.Equal(t, PortID(0), out)
	assert.Equal(t, PortID(1), spk)
	assert.Equal(t, []PortID{out}, m.MixPorts)
	assert.Equal(t, []PortID{spk}, m.DevicePorts)
	assert.Same(t, m, m.Port(spk).Module)
	assert.Nil(t, m.Port(NoPort))
	assert.Nil(t, m.DefaultOutput())

	// A mix port name is not found among device ports and vice versa.
	assert.Nil(t, m.FindDevicePort("out"))
	assert.Nil(t, m.FindMixPort("Speaker"))
	assert.NotNil(t, m.FindPort("Speaker"))

	m.AttachDevice(spk)
	m.AttachDevice(spk)
	assert.Equal(t, []PortID{spk}, m.AttachedDevices)
	assert.True(t, m.IsAttached(audio.DeviceOutSpeaker))
	assert.False(t, m.IsAttached(audio.DeviceOutEarpiece))
}

func TestDupIsIndependent(t *testing.T) {
	orig, err := ParseXML("testdata/audio_policy_configuration.xml", quietLogger())
	require.NoError(t, err)
	before := orig.Flatten()

	dup := orig.Dup()
	assert.Equal(t, before, dup.Flatten())

	m := dup.Module("primary")
	for _, p := range m.Ports {
		assert.Same(t, m, p.Module)
		assert.False(t, orig.Module("primary").HasPort(p))
	}

	m.FindMixPort("deep_buffer").Name = "renamed"
	m.FindMixPort("primary output").Profiles[0].SamplingRates[0] = 96000
	m.AttachedDevices = m.AttachedDevices[:1]
	m.Routes[0].Sources = nil
	dup.GlobalConfig[0].Value = "false"

	o := orig.Module("primary")
	assert.Equal(t, before, orig.Flatten())
	assert.NotNil(t, o.FindMixPort("deep_buffer"))
	assert.Equal(t, uint32(48000), o.FindMixPort("primary output").Profiles[0].SamplingRates[0])
	assert.Len(t, o.AttachedDevices, 4)
	assert.NotEmpty(t, o.Routes[0].Sources)
	assert.Equal(t, "true", orig.GlobalConfig[0].Value)
}

func TestFlatten(t *testing.T) {
	dev, err := ParseXML("testdata/minimal.xml", quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []PortTuple{
		{Module: "primary", Port: "AUDIO_DEVICE_IN_BUILTIN_MIC", Devices: audio.DeviceInBuiltinMic,
			Formats: []audio.Format{audio.FormatPCM16Bit}},
		{Module: "primary", Port: "AUDIO_DEVICE_OUT_EARPIECE", Devices: audio.DeviceOutEarpiece,
			Formats: []audio.Format{audio.FormatPCM16Bit}},
		{Module: "primary", Port: "AUDIO_DEVICE_OUT_SPEAKER", Devices: audio.DeviceOutSpeaker,
			Formats: []audio.Format{audio.FormatPCM16Bit}},
		{Module: "primary", Port: "capture", Devices: audio.DeviceInBuiltinMic,
			Formats: []audio.Format{audio.FormatPCM16Bit}},
		{Module: "primary", Port: "primary", Devices: audio.DeviceOutEarpiece | audio.DeviceOutSpeaker,
			Formats: []audio.Format{audio.FormatPCM16Bit}},
	}, dev.Flatten())
}

func TestDeviceGlobal(t *testing.T) {
	dev := &Device{GlobalConfig: []GlobalConfig{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}}}
	v, ok := dev.Global("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = dev.Global("b")
	assert.False(t, ok)
}
