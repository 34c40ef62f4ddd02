package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListReportsUnknownTokens(t *testing.T) {
	count, value, unknown := ParseList(OutputFlagTable, "|",
		"AUDIO_OUTPUT_FLAG_PRIMARY|AUDIO_OUTPUT_FLAG_BOGUS|AUDIO_OUTPUT_FLAG_FAST")

	assert.Equal(t, 2, count)
	assert.Equal(t, uint32(OutputFlagPrimary|OutputFlagFast), value)
	assert.Equal(t, "AUDIO_OUTPUT_FLAG_BOGUS", unknown)
}

func TestParseListAllUnknown(t *testing.T) {
	count, value, unknown := ParseList(OutputFlagTable, "|", "X|Y")
	assert.Zero(t, count)
	assert.Zero(t, value)
	assert.Equal(t, "X|Y", unknown)
}

func TestParseListSeparators(t *testing.T) {
	for _, in := range []string{
		"AUDIO_INPUT_FLAG_FAST|AUDIO_INPUT_FLAG_RAW",
		"AUDIO_INPUT_FLAG_FAST AUDIO_INPUT_FLAG_RAW",
		" AUDIO_INPUT_FLAG_FAST | AUDIO_INPUT_FLAG_RAW ",
	} {
		flags, unknown := ParseInputFlags(in)
		assert.Equal(t, InputFlagFast|InputFlagRaw, flags, in)
		assert.Empty(t, unknown, in)
	}
}

func TestParseDevices(t *testing.T) {
	devices, count, unknown := ParseDevices(DirectionInput, LegacySeparators,
		"AUDIO_DEVICE_IN_BUILTIN_MIC|AUDIO_DEVICE_IN_WIRED_HEADSET")
	assert.Equal(t, 2, count)
	assert.Empty(t, unknown)
	assert.Equal(t, DeviceInBuiltinMic|DeviceInWiredHeadset, devices)
	assert.True(t, devices.IsInput())
}

func TestParseSamplingRates(t *testing.T) {
	rates, err := ParseSamplingRates(ValueSeparators, "8000,16000,44100")
	require.NoError(t, err)
	assert.Equal(t, []uint32{8000, 16000, 44100}, rates)

	rates, err = ParseSamplingRates(LegacySeparators, "8000|16000 48000")
	require.NoError(t, err)
	assert.Equal(t, []uint32{8000, 16000, 48000}, rates)
}

func TestParseSamplingRatesDynamic(t *testing.T) {
	rates, err := ParseSamplingRates(ValueSeparators, "dynamic")
	require.NoError(t, err)
	assert.Equal(t, []uint32{RateDynamic}, rates)
	assert.True(t, IsDynamicRates(rates))

	// The rest of the list is ignored once dynamic is seen first.
	rates, err = ParseSamplingRates(ValueSeparators, "dynamic,44100,bogus")
	require.NoError(t, err)
	assert.Equal(t, []uint32{RateDynamic}, rates)
}

func TestParseSamplingRatesTooMany(t *testing.T) {
	in := ""
	for i := 0; i <= MaxSamplingRates; i++ {
		in += "8000,"
	}
	_, err := ParseSamplingRates(ValueSeparators, in)
	assert.ErrorIs(t, err, ErrTooManyRates)
}

func TestParseSamplingRatesInvalid(t *testing.T) {
	_, err := ParseSamplingRates(ValueSeparators, "8000,abc")
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ParseSamplingRates(ValueSeparators, "44100,dynamic")
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestParseChannelMasks(t *testing.T) {
	masks, unknown, err := ParseChannelMasks(DirectionOutput, ValueSeparators,
		"AUDIO_CHANNEL_OUT_MONO,AUDIO_CHANNEL_OUT_BOGUS,AUDIO_CHANNEL_OUT_STEREO")
	require.NoError(t, err)
	assert.Equal(t, []ChannelMask{ChannelOutMono, ChannelOutStereo}, masks)
	assert.Equal(t, "AUDIO_CHANNEL_OUT_BOGUS", unknown)
}

func TestParseChannelMasksNoneRecognized(t *testing.T) {
	_, unknown, err := ParseChannelMasks(DirectionOutput, ValueSeparators, "AUDIO_CHANNEL_IN_MONO")
	assert.ErrorIs(t, err, ErrNoChannels)
	assert.Equal(t, "AUDIO_CHANNEL_IN_MONO", unknown)
}

func TestParseChannelMasksDynamic(t *testing.T) {
	masks, _, err := ParseChannelMasks(DirectionInput, ValueSeparators, "AUDIO_CHANNEL_NONE")
	require.NoError(t, err)
	assert.Equal(t, []ChannelMask{ChannelMaskDynamic}, masks)
	assert.True(t, IsDynamicChannels(masks))

	masks, _, err = ParseChannelMasks(DirectionInput, ValueSeparators, "dynamic")
	require.NoError(t, err)
	assert.Equal(t, []ChannelMask{ChannelMaskDynamic}, masks)
}

func TestParseFormats(t *testing.T) {
	formats, unknown, err := ParseFormats(LegacySeparators, "AUDIO_FORMAT_PCM_16_BIT|AUDIO_FORMAT_FOO|AUDIO_FORMAT_PCM_FLOAT")
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatPCM16Bit, FormatPCMFloat}, formats)
	assert.Equal(t, "AUDIO_FORMAT_FOO", unknown)
}

func TestListStringSkipsCombinations(t *testing.T) {
	got := ListString(OutputFlagTable, uint32(OutputFlagPrimary|OutputFlagDeepBuffer))
	assert.Equal(t, "AUDIO_OUTPUT_FLAG_PRIMARY|AUDIO_OUTPUT_FLAG_DEEP_BUFFER", got)

	// ALL_SCO is a combination entry and must not appear.
	got = DeviceListString(DirectionOutput, DeviceOutAllSCO)
	assert.Equal(t, "AUDIO_DEVICE_OUT_BLUETOOTH_SCO|AUDIO_DEVICE_OUT_BLUETOOTH_SCO_HEADSET|AUDIO_DEVICE_OUT_BLUETOOTH_SCO_CARKIT", got)
}

func TestDeviceListStringInput(t *testing.T) {
	got := DeviceListString(DirectionInput, DeviceInBuiltinMic|DeviceInBackMic)
	assert.Equal(t, "AUDIO_DEVICE_IN_BUILTIN_MIC|AUDIO_DEVICE_IN_BACK_MIC", got)
}

func TestFlagsRoundTripThroughListString(t *testing.T) {
	flags := OutputFlagPrimary | OutputFlagFast | OutputFlagVoipRx
	parsed, unknown := ParseOutputFlags(flags.String())
	assert.Empty(t, unknown)
	assert.Equal(t, flags, parsed)
}

func TestSplitDevices(t *testing.T) {
	got := SplitDevices(DirectionOutput, DeviceOutSpeaker|DeviceOutEarpiece)
	assert.Equal(t, []DeviceType{DeviceOutEarpiece, DeviceOutSpeaker}, got)

	got = SplitDevices(DirectionInput, DeviceInBackMic|DeviceInBuiltinMic)
	assert.Equal(t, []DeviceType{DeviceInBuiltinMic, DeviceInBackMic}, got)

	assert.Empty(t, SplitDevices(DirectionOutput, DeviceNone))
}
