package hwmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/hal/mocks"
	"github.com/droidaudio/droid-go/pkg/hal/sim"
	"github.com/droidaudio/droid-go/pkg/log"
	"github.com/droidaudio/droid-go/pkg/sample"
)

func newMockFixture(t *testing.T) (*fixture, *mocks.MockDevice) {
	t.Helper()
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().InitCheck().Return(nil).Once()
	return newFixture(t, dev), dev
}

func TestOpenInputFallsBackToDefaultSpec(t *testing.T) {
	f, dev := newMockFixture(t)
	backing := sim.New(sim.DefaultCapabilities())

	var seen []hal.Config
	dev.EXPECT().
		OpenInputStream(mock.Anything, audio.DeviceInBuiltinMic, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(h hal.IOHandle, d audio.DeviceType, cfg *hal.Config, flags audio.InputFlags,
			addr string, src audio.Source) (hal.InputStream, error) {
			seen = append(seen, *cfg)
			if len(seen) == 1 {
				// Rejected without a suggestion.
				return nil, hal.NewStatus("OpenInputStream", unix.EINVAL)
			}
			return backing.OpenInputStream(h, d, cfg, flags, addr, src)
		}).Times(2)
	dev.EXPECT().CreateAudioPatch(mock.Anything).Return(hal.PatchHandle(7), nil).Once()

	s, err := f.module.OpenInput(StreamRequest{
		Mix:    f.port(t, "primary input"),
		Device: f.port(t, "Built-In Mic"),
		Spec:   sample.Spec{Format: sample.FormatS16LE, Rate: 16000, Channels: 1},
	})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, uint32(16000), seen[0].SampleRate)
	assert.Equal(t, audio.ChannelInMono, seen[0].ChannelMask)
	assert.Equal(t, uint32(48000), seen[1].SampleRate)
	assert.Equal(t, audio.ChannelInStereo, seen[1].ChannelMask)

	assert.Equal(t, uint32(48000), s.Spec().Rate)
	assert.Equal(t, uint8(2), s.Spec().Channels)

	events := f.events.byCategory(log.CategoryStream)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].Stream.Attempts)
}

func TestOpenOutputDriverFailure(t *testing.T) {
	f, dev := newMockFixture(t)
	dev.EXPECT().
		OpenOutputStream(mock.Anything, audio.DeviceOutSpeaker, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, hal.NewStatus("OpenOutputStream", unix.ENODEV)).Once()

	_, err := f.module.OpenOutput(StreamRequest{
		Mix:    f.port(t, "primary output"),
		Device: f.port(t, "Speaker"),
		Spec:   stereo48k(),
	})
	require.Error(t, err)
	assert.Equal(t, -int(unix.ENODEV), hal.Code(err))
	assert.Empty(t, f.module.Outputs())

	errs := f.events.byCategory(log.CategoryError)
	require.Len(t, errs, 1)
	assert.Equal(t, "OpenOutputStream", errs[0].Error.Op)
	assert.Equal(t, "primary output", errs[0].Error.Context)
}

func TestSetModeDriverRejects(t *testing.T) {
	f, dev := newMockFixture(t)
	dev.EXPECT().SetMode(audio.ModeInCall).Return(hal.NewStatus("SetMode", unix.ENOSYS)).Once()

	err := f.module.SetMode(audio.ModeInCall)
	assert.ErrorIs(t, err, unix.ENOSYS)
	assert.Equal(t, audio.ModeNormal, f.module.Mode())
}

func TestReleaseClosesDriver(t *testing.T) {
	f, dev := newMockFixture(t)
	dev.EXPECT().Close().Return(nil).Once()

	require.NoError(t, f.module.Release())
}
