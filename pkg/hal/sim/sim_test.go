package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/hal"
)

func TestRegistered(t *testing.T) {
	assert.Contains(t, hal.Drivers(), DriverName)
	dev, err := hal.Open(DriverName, "primary")
	require.NoError(t, err)
	assert.NoError(t, dev.Close())
}

func TestOutputAdjustsConfig(t *testing.T) {
	d := New(DefaultCapabilities())
	cfg := hal.Config{SampleRate: 96000, ChannelMask: audio.ChannelOutStereo, Format: audio.FormatPCM16Bit}

	s, err := d.OpenOutputStream(1, audio.DeviceOutSpeaker, audio.OutputFlagPrimary, &cfg, "")
	require.NoError(t, err)
	assert.Equal(t, uint32(48000), cfg.SampleRate)
	assert.Equal(t, uint32(48000), s.SampleRate())
	assert.Equal(t, periodFrames*4, s.BufferSize())

	n, err := s.Write(make([]byte, 64))
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	d.CloseOutputStream(s)
	outs, _ := d.OpenStreams()
	assert.Zero(t, outs)
}

func TestInputSuggestsConfig(t *testing.T) {
	d := New(DefaultCapabilities())
	cfg := hal.Config{SampleRate: 22050, ChannelMask: audio.ChannelInMono, Format: audio.FormatPCM16Bit}

	_, err := d.OpenInputStream(1, audio.DeviceInBuiltinMic, &cfg, 0, "", audio.SourceDefault)
	require.Error(t, err)
	assert.Equal(t, -int(unix.EINVAL), hal.Code(err))
	assert.Equal(t, uint32(16000), cfg.SampleRate)
	assert.Equal(t, audio.ChannelInMono, cfg.ChannelMask)

	s, err := d.OpenInputStream(1, audio.DeviceInBuiltinMic, &cfg, 0, "", audio.SourceDefault)
	require.NoError(t, err)
	assert.Equal(t, uint32(16000), s.SampleRate())
}

func TestFailureInjection(t *testing.T) {
	d := New(DefaultCapabilities())
	d.Fail("SetMode", hal.NewStatus("SetMode", unix.EIO))
	assert.Error(t, d.SetMode(audio.ModeInCall))
	d.Fail("SetMode", nil)
	require.NoError(t, d.SetMode(audio.ModeInCall))
	assert.Equal(t, audio.ModeInCall, d.Mode())
}

func TestPatches(t *testing.T) {
	d := New(DefaultCapabilities())
	_, err := d.CreateAudioPatch(&hal.Patch{})
	assert.Error(t, err)

	h, err := d.CreateAudioPatch(&hal.Patch{
		Sources: []hal.PortConfig{hal.MixPortConfig(hal.RoleSource, 1)},
		Sinks:   []hal.PortConfig{hal.DevicePortConfig(hal.RoleSink, audio.DeviceOutSpeaker, "")},
	})
	require.NoError(t, err)
	assert.Len(t, d.Patches(), 1)

	require.NoError(t, d.ReleaseAudioPatch(h))
	assert.Equal(t, -int(unix.ENOENT), hal.Code(d.ReleaseAudioPatch(h)))
}

func TestParametersAndVoice(t *testing.T) {
	d := New(DefaultCapabilities())
	require.NoError(t, d.SetParameters("BT_SCO=on;foo=bar"))
	got, err := d.GetParameters("BT_SCO;missing")
	require.NoError(t, err)
	assert.Equal(t, "BT_SCO=on", got)

	assert.Error(t, d.SetVoiceVolume(1.5))
	require.NoError(t, d.SetVoiceVolume(0.25))
	assert.InDelta(t, 0.25, d.VoiceVolume(), 1e-6)

	require.NoError(t, d.SetMicMute(true))
	muted, err := d.GetMicMute()
	require.NoError(t, err)
	assert.True(t, muted)
}
