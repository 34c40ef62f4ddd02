package hwmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/log"
)

func TestPreferredInputMix(t *testing.T) {
	f, drv := newSimFixture(t)
	def := f.port(t, "primary input")

	tests := []struct {
		mode audio.Mode
		want string
	}{
		{audio.ModeNormal, "primary input"},
		{audio.ModeRingtone, "primary input"},
		{audio.ModeInCommunication, "voip_tx"},
		{audio.ModeInCall, "voice_rx"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			require.NoError(t, f.module.SetMode(tt.mode))
			assert.Equal(t, tt.mode, drv.Mode())
			assert.Equal(t, tt.want, f.module.PreferredInputMix(def).Name)
		})
	}
}

func TestOpenInputUsesModeMix(t *testing.T) {
	f, _ := newSimFixture(t)
	require.NoError(t, f.module.SetMode(audio.ModeInCommunication))

	s := f.openInput(t, stereo48k())
	assert.Equal(t, "voip_tx", s.Mix().Name)
	// voip_tx only captures mono at 8000 or 16000.
	assert.Equal(t, uint8(1), s.Spec().Channels)
	assert.Equal(t, uint32(8000), s.Spec().Rate)
}

func TestSetModeMarksReconfigure(t *testing.T) {
	f, _ := newSimFixture(t)
	s := f.openInput(t, stereo48k())
	assert.False(t, s.ReconfigureNeeded())

	require.NoError(t, f.module.SetMode(audio.ModeInCommunication))
	assert.True(t, s.ReconfigureNeeded())

	modes := f.events.byCategory(log.CategoryMode)
	require.Len(t, modes, 1)
	assert.Equal(t, audio.ModeNormal.String(), modes[0].Mode.OldMode)
	assert.Equal(t, audio.ModeInCommunication.String(), modes[0].Mode.NewMode)
	assert.Equal(t, 1, modes[0].Mode.Reconfigure)

	require.NoError(t, s.Reconfigure())
	assert.False(t, s.ReconfigureNeeded())
	assert.Equal(t, "voip_tx", s.Mix().Name)
	assert.Equal(t, "Built-In Mic", s.Device().Name)

	streams := f.events.byCategory(log.CategoryStream)
	assert.Equal(t, log.StreamReconfigure, streams[len(streams)-1].Stream.Action)

	// Back to normal: the stream is again off its preferred mix.
	require.NoError(t, f.module.SetMode(audio.ModeNormal))
	assert.True(t, s.ReconfigureNeeded())
}

func TestSetModeLeavesClosedStreams(t *testing.T) {
	f, _ := newSimFixture(t)
	s := f.openInput(t, stereo48k())
	require.NoError(t, s.Close())

	require.NoError(t, f.module.SetMode(audio.ModeInCommunication))
	modes := f.events.byCategory(log.CategoryMode)
	require.Len(t, modes, 1)
	assert.Equal(t, 0, modes[0].Mode.Reconfigure)
}

func TestReconfigureOutputRejected(t *testing.T) {
	f, _ := newSimFixture(t)
	s := f.openOutput(t, "primary output", "Speaker")
	assert.ErrorIs(t, s.Reconfigure(), ErrWrongDirection)
}

func TestSetModeFailureKeepsMode(t *testing.T) {
	f, drv := newSimFixture(t)
	drv.Fail("SetMode", hal.NewStatus("SetMode", unix.EPERM))

	err := f.module.SetMode(audio.ModeInCall)
	require.Error(t, err)
	assert.ErrorIs(t, err, unix.EPERM)
	assert.Equal(t, audio.ModeNormal, f.module.Mode())
	assert.Empty(t, f.events.byCategory(log.CategoryMode))

	errs := f.events.byCategory(log.CategoryError)
	require.Len(t, errs, 1)
	assert.Equal(t, "SetMode", errs[0].Error.Op)
	require.NotNil(t, errs[0].Error.Code)
	assert.Equal(t, -int(unix.EPERM), *errs[0].Error.Code)
}

func TestVoiceVolume(t *testing.T) {
	f, drv := newSimFixture(t)

	require.NoError(t, f.module.SetVoiceVolume(0.5))
	assert.InDelta(t, 0.5, drv.VoiceVolume(), 1e-6)

	err := f.module.SetVoiceVolume(1.5)
	assert.ErrorIs(t, err, unix.EINVAL)
	assert.InDelta(t, 0.5, drv.VoiceVolume(), 1e-6)
}

func TestMicMute(t *testing.T) {
	f, _ := newSimFixture(t)

	muted, err := f.module.MicMute()
	require.NoError(t, err)
	assert.False(t, muted)

	require.NoError(t, f.module.SetMicMute(true))
	muted, err = f.module.MicMute()
	require.NoError(t, err)
	assert.True(t, muted)
}

func TestModuleParameters(t *testing.T) {
	f, _ := newSimFixture(t)

	require.NoError(t, f.module.SetParameters("screen_state=on;tty_mode=tty_off"))
	got, err := f.module.GetParameters("tty_mode;unknown")
	require.NoError(t, err)
	assert.Equal(t, "tty_mode=tty_off", got)
}
