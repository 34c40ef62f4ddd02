package audio

import "math/bits"

// Direction tells whether a capability belongs to the playback or the
// capture side of a HAL.
type Direction uint8

const (
	// DirectionOutput is the playback side.
	DirectionOutput Direction = 0
	// DirectionInput is the capture side.
	DirectionInput Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionOutput:
		return "output"
	case DirectionInput:
		return "input"
	default:
		return "unknown"
	}
}

// Format is an audio_format_t value.
type Format uint32

// Format values.
const (
	FormatDefault Format = 0x00000000
	FormatPCM     Format = 0x00000000
	FormatMP3     Format = 0x01000000
	FormatAMRNB   Format = 0x02000000
	FormatAMRWB   Format = 0x03000000
	FormatAAC     Format = 0x04000000
	FormatHEAACv1 Format = 0x05000000
	FormatHEAACv2 Format = 0x06000000
	FormatVorbis  Format = 0x07000000
	FormatOpus    Format = 0x08000000
	FormatAC3     Format = 0x09000000
	FormatEAC3    Format = 0x0A000000
	FormatDTS     Format = 0x0B000000
	FormatDTSHD   Format = 0x0C000000

	FormatPCM16Bit       Format = FormatPCM | 0x1
	FormatPCM8Bit        Format = FormatPCM | 0x2
	FormatPCM32Bit       Format = FormatPCM | 0x3
	FormatPCM824Bit      Format = FormatPCM | 0x4
	FormatPCMFloat       Format = FormatPCM | 0x5
	FormatPCM24BitPacked Format = FormatPCM | 0x6

	formatMainMask Format = 0xFF000000
)

// IsPCM reports whether f is a linear PCM format.
func (f Format) IsPCM() bool {
	return f&formatMainMask == FormatPCM && f != FormatDefault
}

// String returns the canonical configuration name of the format.
func (f Format) String() string {
	if s, ok := Formats.ToString(uint32(f)); ok {
		return s
	}
	return "AUDIO_FORMAT_INVALID"
}

// ChannelMask is an audio_channel_mask_t value. Output and input masks share
// the numeric space, so a mask is only meaningful together with a Direction.
type ChannelMask uint32

// Dynamic channel mask: channels are negotiated when the stream opens.
const ChannelMaskDynamic ChannelMask = 0

// Output channel bits and masks.
const (
	ChannelOutFrontLeft          ChannelMask = 0x1
	ChannelOutFrontRight         ChannelMask = 0x2
	ChannelOutFrontCenter        ChannelMask = 0x4
	ChannelOutLowFrequency       ChannelMask = 0x8
	ChannelOutBackLeft           ChannelMask = 0x10
	ChannelOutBackRight          ChannelMask = 0x20
	ChannelOutFrontLeftOfCenter  ChannelMask = 0x40
	ChannelOutFrontRightOfCenter ChannelMask = 0x80
	ChannelOutBackCenter         ChannelMask = 0x100
	ChannelOutSideLeft           ChannelMask = 0x200
	ChannelOutSideRight          ChannelMask = 0x400
	ChannelOutTopCenter          ChannelMask = 0x800
	ChannelOutTopFrontLeft       ChannelMask = 0x1000
	ChannelOutTopFrontCenter     ChannelMask = 0x2000
	ChannelOutTopFrontRight      ChannelMask = 0x4000
	ChannelOutTopBackLeft        ChannelMask = 0x8000
	ChannelOutTopBackCenter      ChannelMask = 0x10000
	ChannelOutTopBackRight       ChannelMask = 0x20000

	ChannelOutMono      = ChannelOutFrontLeft
	ChannelOutStereo    = ChannelOutFrontLeft | ChannelOutFrontRight
	ChannelOutQuad      = ChannelOutFrontLeft | ChannelOutFrontRight | ChannelOutBackLeft | ChannelOutBackRight
	ChannelOutQuadSide  = ChannelOutFrontLeft | ChannelOutFrontRight | ChannelOutSideLeft | ChannelOutSideRight
	ChannelOutSurround  = ChannelOutFrontLeft | ChannelOutFrontRight | ChannelOutFrontCenter | ChannelOutBackCenter
	ChannelOut5Point1   = ChannelOutFrontLeft | ChannelOutFrontRight | ChannelOutFrontCenter | ChannelOutLowFrequency | ChannelOutBackLeft | ChannelOutBackRight
	ChannelOut5Point1S  = ChannelOutFrontLeft | ChannelOutFrontRight | ChannelOutFrontCenter | ChannelOutLowFrequency | ChannelOutSideLeft | ChannelOutSideRight
	ChannelOut7Point1   = ChannelOut5Point1 | ChannelOutSideLeft | ChannelOutSideRight
	ChannelOutAll       = ChannelOutFrontLeft | ChannelOutFrontRight | ChannelOutFrontCenter | ChannelOutLowFrequency | ChannelOutBackLeft | ChannelOutBackRight | ChannelOutFrontLeftOfCenter | ChannelOutFrontRightOfCenter | ChannelOutBackCenter | ChannelOutSideLeft | ChannelOutSideRight | ChannelOutTopCenter | ChannelOutTopFrontLeft | ChannelOutTopFrontCenter | ChannelOutTopFrontRight | ChannelOutTopBackLeft | ChannelOutTopBackCenter | ChannelOutTopBackRight
	channelOutLastValue = ChannelOutTopBackRight
)

// Input channel bits and masks.
const (
	ChannelInLeft            ChannelMask = 0x4
	ChannelInRight           ChannelMask = 0x8
	ChannelInFront           ChannelMask = 0x10
	ChannelInBack            ChannelMask = 0x20
	ChannelInLeftProcessed   ChannelMask = 0x40
	ChannelInRightProcessed  ChannelMask = 0x80
	ChannelInFrontProcessed  ChannelMask = 0x100
	ChannelInBackProcessed   ChannelMask = 0x200
	ChannelInPressure        ChannelMask = 0x400
	ChannelInXAxis           ChannelMask = 0x800
	ChannelInYAxis           ChannelMask = 0x1000
	ChannelInZAxis           ChannelMask = 0x2000
	ChannelInVoiceUplink     ChannelMask = 0x4000
	ChannelInVoiceDnlink     ChannelMask = 0x8000
	ChannelInMono                        = ChannelInFront
	ChannelInStereo                      = ChannelInLeft | ChannelInRight
	ChannelInFrontBack                   = ChannelInFront | ChannelInBack
	ChannelInVoiceUplinkMono             = ChannelInVoiceUplink | ChannelInMono
	ChannelInVoiceDnlinkMono             = ChannelInVoiceDnlink | ChannelInMono
	ChannelInVoiceCallMono               = ChannelInVoiceUplinkMono | ChannelInVoiceDnlinkMono
	ChannelInAll                         = ChannelInLeft | ChannelInRight | ChannelInFront | ChannelInBack | ChannelInLeftProcessed | ChannelInRightProcessed | ChannelInFrontProcessed | ChannelInBackProcessed | ChannelInPressure | ChannelInXAxis | ChannelInYAxis | ChannelInZAxis | ChannelInVoiceUplink | ChannelInVoiceDnlink
)

// Count returns the number of channels set in the mask.
func (m ChannelMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Name returns the canonical configuration name of the mask for the given
// direction, or the empty string if the mask has no name.
func (m ChannelMask) Name(dir Direction) string {
	s, _ := ChannelTable(dir).ToString(uint32(m))
	return s
}

// DeviceType is an audio_devices_t value. Input devices carry DeviceBitIn.
type DeviceType uint32

// Device bits.
const (
	DeviceNone       DeviceType = 0
	DeviceBitIn      DeviceType = 0x80000000
	DeviceBitDefault DeviceType = 0x40000000
)

// Output devices.
const (
	DeviceOutEarpiece                DeviceType = 0x1
	DeviceOutSpeaker                 DeviceType = 0x2
	DeviceOutWiredHeadset            DeviceType = 0x4
	DeviceOutWiredHeadphone          DeviceType = 0x8
	DeviceOutBluetoothSCO            DeviceType = 0x10
	DeviceOutBluetoothSCOHeadset     DeviceType = 0x20
	DeviceOutBluetoothSCOCarkit      DeviceType = 0x40
	DeviceOutBluetoothA2DP           DeviceType = 0x80
	DeviceOutBluetoothA2DPHeadphones DeviceType = 0x100
	DeviceOutBluetoothA2DPSpeaker    DeviceType = 0x200
	DeviceOutAuxDigital              DeviceType = 0x400
	DeviceOutHDMI                               = DeviceOutAuxDigital
	DeviceOutAnlgDockHeadset         DeviceType = 0x800
	DeviceOutDgtlDockHeadset         DeviceType = 0x1000
	DeviceOutUSBAccessory            DeviceType = 0x2000
	DeviceOutUSBDevice               DeviceType = 0x4000
	DeviceOutRemoteSubmix            DeviceType = 0x8000
	DeviceOutTelephonyTx             DeviceType = 0x10000
	DeviceOutLine                    DeviceType = 0x20000
	DeviceOutHDMIArc                 DeviceType = 0x40000
	DeviceOutSPDIF                   DeviceType = 0x80000
	DeviceOutFM                      DeviceType = 0x100000
	DeviceOutAuxLine                 DeviceType = 0x200000
	DeviceOutSpeakerSafe             DeviceType = 0x400000
	DeviceOutIP                      DeviceType = 0x800000
	DeviceOutBus                     DeviceType = 0x1000000
	DeviceOutProxy                   DeviceType = 0x2000000
	DeviceOutUSBHeadset              DeviceType = 0x4000000
	DeviceOutDefault                            = DeviceBitDefault
	DeviceOutAllSCO                             = DeviceOutBluetoothSCO | DeviceOutBluetoothSCOHeadset | DeviceOutBluetoothSCOCarkit
	DeviceOutAllA2DP                            = DeviceOutBluetoothA2DP | DeviceOutBluetoothA2DPHeadphones | DeviceOutBluetoothA2DPSpeaker
)

// Input devices.
const (
	DeviceInCommunication       = DeviceBitIn | 0x1
	DeviceInAmbient             = DeviceBitIn | 0x2
	DeviceInBuiltinMic          = DeviceBitIn | 0x4
	DeviceInBluetoothSCOHeadset = DeviceBitIn | 0x8
	DeviceInWiredHeadset        = DeviceBitIn | 0x10
	DeviceInAuxDigital          = DeviceBitIn | 0x20
	DeviceInHDMI                = DeviceInAuxDigital
	DeviceInVoiceCall           = DeviceBitIn | 0x40
	DeviceInTelephonyRx         = DeviceInVoiceCall
	DeviceInBackMic             = DeviceBitIn | 0x80
	DeviceInRemoteSubmix        = DeviceBitIn | 0x100
	DeviceInAnlgDockHeadset     = DeviceBitIn | 0x200
	DeviceInDgtlDockHeadset     = DeviceBitIn | 0x400
	DeviceInUSBAccessory        = DeviceBitIn | 0x800
	DeviceInUSBDevice           = DeviceBitIn | 0x1000
	DeviceInFMTuner             = DeviceBitIn | 0x2000
	DeviceInTVTuner             = DeviceBitIn | 0x4000
	DeviceInLine                = DeviceBitIn | 0x8000
	DeviceInSPDIF               = DeviceBitIn | 0x10000
	DeviceInBluetoothA2DP       = DeviceBitIn | 0x20000
	DeviceInLoopback            = DeviceBitIn | 0x40000
	DeviceInIP                  = DeviceBitIn | 0x80000
	DeviceInBus                 = DeviceBitIn | 0x100000
	DeviceInProxy               = DeviceBitIn | 0x1000000
	DeviceInUSBHeadset          = DeviceBitIn | 0x2000000
	DeviceInDefault             = DeviceBitIn | DeviceBitDefault
)

// IsInput reports whether d is a capture device.
func (d DeviceType) IsInput() bool {
	return d&DeviceBitIn != 0
}

// Direction returns the side of the HAL the device belongs to.
func (d DeviceType) Direction() Direction {
	if d.IsInput() {
		return DirectionInput
	}
	return DirectionOutput
}

// String returns the canonical configuration name of the device.
func (d DeviceType) String() string {
	if s, ok := DeviceTable(d.Direction()).ToString(uint32(d)); ok {
		return s
	}
	return "AUDIO_DEVICE_NONE"
}

// OutputFlags is an audio_output_flags_t bitmask.
type OutputFlags uint32

// Output flags.
const (
	OutputFlagNone            OutputFlags = 0x0
	OutputFlagDirect          OutputFlags = 0x1
	OutputFlagPrimary         OutputFlags = 0x2
	OutputFlagFast            OutputFlags = 0x4
	OutputFlagDeepBuffer      OutputFlags = 0x8
	OutputFlagCompressOffload OutputFlags = 0x10
	OutputFlagNonBlocking     OutputFlags = 0x20
	OutputFlagHwAvSync        OutputFlags = 0x40
	OutputFlagTTS             OutputFlags = 0x80
	OutputFlagRaw             OutputFlags = 0x100
	OutputFlagSync            OutputFlags = 0x200
	OutputFlagIEC958Nonaudio  OutputFlags = 0x400
	OutputFlagDirectPCM       OutputFlags = 0x2000
	OutputFlagMmapNoirq       OutputFlags = 0x4000
	OutputFlagVoipRx          OutputFlags = 0x8000
	OutputFlagIncallMusic     OutputFlags = 0x10000
)

// String returns the flags as a '|'-joined list of flag names.
func (f OutputFlags) String() string {
	return ListString(OutputFlagTable, uint32(f))
}

// InputFlags is an audio_input_flags_t bitmask.
type InputFlags uint32

// Input flags.
const (
	InputFlagNone       InputFlags = 0x0
	InputFlagFast       InputFlags = 0x1
	InputFlagHwHotword  InputFlags = 0x2
	InputFlagRaw        InputFlags = 0x4
	InputFlagSync       InputFlags = 0x8
	InputFlagMmapNoirq  InputFlags = 0x10
	InputFlagVoipTx     InputFlags = 0x20
	InputFlagHwAvSync   InputFlags = 0x40
	InputFlagDirect     InputFlags = 0x80
)

// String returns the flags as a '|'-joined list of flag names.
func (f InputFlags) String() string {
	return ListString(InputFlagTable, uint32(f))
}

// Mode is the telephony mode of the HAL (audio_mode_t).
type Mode int32

// Modes.
const (
	ModeInvalid         Mode = -2
	ModeCurrent         Mode = -1
	ModeNormal          Mode = 0
	ModeRingtone        Mode = 1
	ModeInCall          Mode = 2
	ModeInCommunication Mode = 3
	ModeCallScreen      Mode = 4
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCurrent:
		return "AUDIO_MODE_CURRENT"
	case ModeInvalid:
		return "AUDIO_MODE_INVALID"
	}
	if s, ok := Modes.ToString(uint32(m)); ok {
		return s
	}
	return "AUDIO_MODE_INVALID"
}

// Source is an audio_source_t value used when opening input streams.
type Source uint32

// Sources.
const (
	SourceDefault            Source = 0
	SourceMic                Source = 1
	SourceVoiceUplink        Source = 2
	SourceVoiceDownlink      Source = 3
	SourceVoiceCall          Source = 4
	SourceCamcorder          Source = 5
	SourceVoiceRecognition   Source = 6
	SourceVoiceCommunication Source = 7
	SourceRemoteSubmix       Source = 8
	SourceUnprocessed        Source = 9
	SourceFMTuner            Source = 1998
	SourceHotword            Source = 1999
)

// String returns the canonical name of the source.
func (s Source) String() string {
	if name, ok := Sources.ToString(uint32(s)); ok {
		return name
	}
	return "AUDIO_SOURCE_INVALID"
}
