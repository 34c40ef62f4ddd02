package routing

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/version"
)

const endToEndXML = `<?xml version="1.0" encoding="UTF-8"?>
<audioPolicyConfiguration version="1.0">
  <modules>
    <module name="primary" halVersion="2.0">
      <attachedDevices><item>Speaker</item></attachedDevices>
      <defaultOutputDevice>Speaker</defaultOutputDevice>
      <mixPorts>
        <mixPort name="primary output" role="source" flags="AUDIO_OUTPUT_FLAG_PRIMARY">
          <profile name="" format="AUDIO_FORMAT_PCM_16_BIT" samplingRates="48000" channelMasks="AUDIO_CHANNEL_OUT_STEREO"/>
        </mixPort>
      </mixPorts>
      <devicePorts>
        <devicePort tagName="Speaker" type="AUDIO_DEVICE_OUT_SPEAKER" role="sink"/>
      </devicePorts>
      <routes>
        <route type="mix" sink="Speaker" sources="primary output"/>
      </routes>
    </module>
  </modules>
</audioPolicyConfiguration>
`

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio_policy_configuration.xml")
	require.NoError(t, os.WriteFile(path, []byte(endToEndXML), 0o644))

	dev, err := config.ParseXML(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.Len(t, dev.Modules, 1)

	set := NewProfileSet(dev.Modules[0])
	require.Len(t, set.Profiles(), 1)
	p := set.Default()
	require.NotNil(t, p)
	assert.Equal(t, DefaultProfileName, p.Name)

	require.Len(t, p.Outputs(), 1)
	assert.Empty(t, p.Inputs())
	m := p.Outputs()[0]
	assert.Equal(t, "primary output", m.Name())
	require.Len(t, m.Devices, 1)
	assert.Equal(t, "Speaker", m.Devices[0].Name)

	assert.ElementsMatch(t, []string{"output-speaker", audio.OutputParkingName}, set.PortNames())
}

type moduleBuilder struct {
	m *config.Module
}

func newModule() *moduleBuilder {
	return &moduleBuilder{m: config.NewModule("primary", version.DefaultHAL)}
}

func (b *moduleBuilder) mix(name string, role config.Role) config.PortID {
	return b.m.AddMixPort(&config.Port{Name: name, Role: role})
}

func (b *moduleBuilder) device(name string, role config.Role, t audio.DeviceType) config.PortID {
	return b.m.AddDevicePort(&config.Port{Name: name, Role: role, DeviceType: t})
}

func (b *moduleBuilder) route(sink config.PortID, sources ...config.PortID) {
	b.m.Routes = append(b.m.Routes, &config.Route{Type: config.RouteMix, Sink: sink, Sources: sources})
}

func TestMappingsAccumulateDevices(t *testing.T) {
	b := newModule()
	primary := b.mix("primary output", config.RoleSource)
	deep := b.mix("deep_buffer", config.RoleSource)
	in := b.mix("primary input", config.RoleSink)
	speaker := b.device("Speaker", config.RoleSink, audio.DeviceOutSpeaker)
	earpiece := b.device("Earpiece", config.RoleSink, audio.DeviceOutEarpiece)
	mic := b.device("Built-In Mic", config.RoleSource, audio.DeviceInBuiltinMic)
	back := b.device("Back Mic", config.RoleSource, audio.DeviceInBackMic)

	b.route(speaker, primary, deep)
	b.route(earpiece, primary)
	b.route(in, mic, back)
	// A repeated route adds nothing new.
	b.route(speaker, primary)

	set := NewProfileSet(b.m)
	p := set.Default()

	require.Len(t, p.Outputs(), 2)
	out := p.Mapping(audio.DirectionOutput, "primary output")
	require.NotNil(t, out)
	assert.Equal(t, []string{"Speaker", "Earpiece"}, names(out.Devices))
	assert.True(t, out.HasDevice(audio.DeviceOutEarpiece))
	assert.False(t, out.HasDevice(audio.DeviceOutWiredHeadset))

	deepMapping := p.Mapping(audio.DirectionOutput, "deep_buffer")
	require.NotNil(t, deepMapping)
	assert.Equal(t, []string{"Speaker"}, names(deepMapping.Devices))

	require.Len(t, p.Inputs(), 1)
	input := p.Inputs()[0]
	assert.Equal(t, audio.DirectionInput, input.Direction)
	assert.Equal(t, []string{"Built-In Mic", "Back Mic"}, names(input.Devices))
	assert.Nil(t, p.Mapping(audio.DirectionOutput, "primary input"))

	// Ports are shared across mappings.
	assert.Equal(t, []string{
		audio.OutputParkingName, "output-speaker", "output-earpiece",
		audio.InputParkingName, "input-builtin_mic", "input-back_mic",
	}, set.PortNames())
	assert.Same(t, set.Port("output-speaker"), deepMapping.Ports[1])
	assert.Same(t, out, set.Port("output-speaker").Mapping)
	assert.Same(t, set.Port(audio.OutputParkingName), deepMapping.Parking())
}

func TestPortPriorities(t *testing.T) {
	b := newModule()
	out := b.mix("out", config.RoleSource)
	in := b.mix("in", config.RoleSink)
	speaker := b.device("Speaker", config.RoleSink, audio.DeviceOutSpeaker)
	earpiece := b.device("Earpiece", config.RoleSink, audio.DeviceOutEarpiece)
	headset := b.device("Headset", config.RoleSink, audio.DeviceOutWiredHeadset)
	mic := b.device("Mic", config.RoleSource, audio.DeviceInBuiltinMic)
	b.route(speaker, out)
	b.route(earpiece, out)
	b.route(headset, out)
	b.route(in, mic)
	b.m.AttachDevice(speaker)
	b.m.AttachDevice(earpiece)
	b.m.AttachDevice(mic)
	b.m.DefaultOutputDevice = speaker

	set := NewProfileSet(b.m)

	assert.Equal(t, PriorityBase+2*PriorityTier, set.Port("output-speaker").Priority)
	assert.Equal(t, PriorityBase+PriorityTier, set.Port("output-earpiece").Priority)
	assert.Equal(t, PriorityBase, set.Port("output-wired_headset").Priority)
	assert.Equal(t, PriorityBase+PriorityTier, set.Port("input-builtin_mic").Priority)

	parking := set.Port(audio.OutputParkingName)
	require.NotNil(t, parking)
	assert.True(t, parking.IsParking())
	assert.Equal(t, PriorityBase/2, parking.Priority)
	assert.Equal(t, PriorityParking, set.Port(audio.InputParkingName).Priority)
}

func TestUnknownFancyNameFallsBackToPortName(t *testing.T) {
	b := newModule()
	out := b.mix("out", config.RoleSource)
	odd := b.device("Odd", config.RoleSink, audio.DeviceOutSpeaker|audio.DeviceOutLine)
	b.route(odd, out)

	set := NewProfileSet(b.m)
	assert.NotNil(t, set.Port("output-Odd"))
}

func TestInvalidOrientationPanics(t *testing.T) {
	b := newModule()
	a := b.mix("a", config.RoleSource)
	c := b.mix("c", config.RoleSink)
	b.route(c, a)

	assert.Panics(t, func() { NewProfileSet(b.m) })
}

func names(ports []*config.Port) []string {
	out := make([]string, len(ports))
	for i, p := range ports {
		out[i] = p.Name
	}
	return out
}
