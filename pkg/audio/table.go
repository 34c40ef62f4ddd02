package audio

// Entry is one (value, name) pair of a conversion table.
type Entry struct {
	Value uint32
	Name  string

	// Alias entries are accepted when parsing but never produced when
	// converting a value back to a string.
	Alias bool
}

// Table is an ordered conversion table. Lookups scan linearly in both
// directions and the first match wins.
type Table []Entry

// ToString returns the canonical name for value.
func (t Table) ToString(value uint32) (string, bool) {
	for _, e := range t {
		if e.Value == value && !e.Alias {
			return e.Name, true
		}
	}
	return "", false
}

// FromString returns the value for name. Both canonical names and aliases
// are recognised; the comparison is exact.
func (t Table) FromString(name string) (uint32, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// Canonical returns the non-alias entries of the table.
func (t Table) Canonical() []Entry {
	out := make([]Entry, 0, len(t))
	for _, e := range t {
		if !e.Alias {
			out = append(out, e)
		}
	}
	return out
}

func entry(value uint32, name string) Entry { return Entry{Value: value, Name: name} }
func alias(value uint32, name string) Entry { return Entry{Value: value, Name: name, Alias: true} }

// Formats converts audio formats.
var Formats = Table{
	entry(uint32(FormatDefault), "AUDIO_FORMAT_DEFAULT"),
	entry(uint32(FormatPCM16Bit), "AUDIO_FORMAT_PCM_16_BIT"),
	entry(uint32(FormatPCM8Bit), "AUDIO_FORMAT_PCM_8_BIT"),
	entry(uint32(FormatPCM32Bit), "AUDIO_FORMAT_PCM_32_BIT"),
	entry(uint32(FormatPCM824Bit), "AUDIO_FORMAT_PCM_8_24_BIT"),
	entry(uint32(FormatPCMFloat), "AUDIO_FORMAT_PCM_FLOAT"),
	entry(uint32(FormatPCM24BitPacked), "AUDIO_FORMAT_PCM_24_BIT_PACKED"),
	entry(uint32(FormatMP3), "AUDIO_FORMAT_MP3"),
	entry(uint32(FormatAMRNB), "AUDIO_FORMAT_AMR_NB"),
	entry(uint32(FormatAMRWB), "AUDIO_FORMAT_AMR_WB"),
	entry(uint32(FormatAAC), "AUDIO_FORMAT_AAC"),
	entry(uint32(FormatHEAACv1), "AUDIO_FORMAT_HE_AAC_V1"),
	entry(uint32(FormatHEAACv2), "AUDIO_FORMAT_HE_AAC_V2"),
	entry(uint32(FormatVorbis), "AUDIO_FORMAT_VORBIS"),
	entry(uint32(FormatOpus), "AUDIO_FORMAT_OPUS"),
	entry(uint32(FormatAC3), "AUDIO_FORMAT_AC3"),
	entry(uint32(FormatEAC3), "AUDIO_FORMAT_E_AC3"),
	entry(uint32(FormatDTS), "AUDIO_FORMAT_DTS"),
	entry(uint32(FormatDTSHD), "AUDIO_FORMAT_DTS_HD"),
}

// OutputChannels converts output channel masks.
var OutputChannels = Table{
	entry(uint32(ChannelMaskDynamic), "AUDIO_CHANNEL_NONE"),
	entry(uint32(ChannelOutMono), "AUDIO_CHANNEL_OUT_MONO"),
	alias(uint32(ChannelOutFrontLeft), "AUDIO_CHANNEL_OUT_FRONT_LEFT"),
	entry(uint32(ChannelOutFrontRight), "AUDIO_CHANNEL_OUT_FRONT_RIGHT"),
	entry(uint32(ChannelOutFrontCenter), "AUDIO_CHANNEL_OUT_FRONT_CENTER"),
	entry(uint32(ChannelOutLowFrequency), "AUDIO_CHANNEL_OUT_LOW_FREQUENCY"),
	entry(uint32(ChannelOutBackLeft), "AUDIO_CHANNEL_OUT_BACK_LEFT"),
	entry(uint32(ChannelOutBackRight), "AUDIO_CHANNEL_OUT_BACK_RIGHT"),
	entry(uint32(ChannelOutFrontLeftOfCenter), "AUDIO_CHANNEL_OUT_FRONT_LEFT_OF_CENTER"),
	entry(uint32(ChannelOutFrontRightOfCenter), "AUDIO_CHANNEL_OUT_FRONT_RIGHT_OF_CENTER"),
	entry(uint32(ChannelOutBackCenter), "AUDIO_CHANNEL_OUT_BACK_CENTER"),
	entry(uint32(ChannelOutSideLeft), "AUDIO_CHANNEL_OUT_SIDE_LEFT"),
	entry(uint32(ChannelOutSideRight), "AUDIO_CHANNEL_OUT_SIDE_RIGHT"),
	entry(uint32(ChannelOutTopCenter), "AUDIO_CHANNEL_OUT_TOP_CENTER"),
	entry(uint32(ChannelOutTopFrontLeft), "AUDIO_CHANNEL_OUT_TOP_FRONT_LEFT"),
	entry(uint32(ChannelOutTopFrontCenter), "AUDIO_CHANNEL_OUT_TOP_FRONT_CENTER"),
	entry(uint32(ChannelOutTopFrontRight), "AUDIO_CHANNEL_OUT_TOP_FRONT_RIGHT"),
	entry(uint32(ChannelOutTopBackLeft), "AUDIO_CHANNEL_OUT_TOP_BACK_LEFT"),
	entry(uint32(ChannelOutTopBackCenter), "AUDIO_CHANNEL_OUT_TOP_BACK_CENTER"),
	entry(uint32(ChannelOutTopBackRight), "AUDIO_CHANNEL_OUT_TOP_BACK_RIGHT"),
	entry(uint32(ChannelOutStereo), "AUDIO_CHANNEL_OUT_STEREO"),
	entry(uint32(ChannelOutQuad), "AUDIO_CHANNEL_OUT_QUAD"),
	entry(uint32(ChannelOutQuadSide), "AUDIO_CHANNEL_OUT_QUAD_SIDE"),
	entry(uint32(ChannelOutSurround), "AUDIO_CHANNEL_OUT_SURROUND"),
	entry(uint32(ChannelOut5Point1), "AUDIO_CHANNEL_OUT_5POINT1"),
	entry(uint32(ChannelOut5Point1S), "AUDIO_CHANNEL_OUT_5POINT1_SIDE"),
	entry(uint32(ChannelOut7Point1), "AUDIO_CHANNEL_OUT_7POINT1"),
	entry(uint32(ChannelOutAll), "AUDIO_CHANNEL_OUT_ALL"),
}

// InputChannels converts input channel masks.
var InputChannels = Table{
	entry(uint32(ChannelMaskDynamic), "AUDIO_CHANNEL_NONE"),
	entry(uint32(ChannelInLeft), "AUDIO_CHANNEL_IN_LEFT"),
	entry(uint32(ChannelInRight), "AUDIO_CHANNEL_IN_RIGHT"),
	entry(uint32(ChannelInMono), "AUDIO_CHANNEL_IN_MONO"),
	alias(uint32(ChannelInFront), "AUDIO_CHANNEL_IN_FRONT"),
	entry(uint32(ChannelInBack), "AUDIO_CHANNEL_IN_BACK"),
	entry(uint32(ChannelInLeftProcessed), "AUDIO_CHANNEL_IN_LEFT_PROCESSED"),
	entry(uint32(ChannelInRightProcessed), "AUDIO_CHANNEL_IN_RIGHT_PROCESSED"),
	entry(uint32(ChannelInFrontProcessed), "AUDIO_CHANNEL_IN_FRONT_PROCESSED"),
	entry(uint32(ChannelInBackProcessed), "AUDIO_CHANNEL_IN_BACK_PROCESSED"),
	entry(uint32(ChannelInPressure), "AUDIO_CHANNEL_IN_PRESSURE"),
	entry(uint32(ChannelInXAxis), "AUDIO_CHANNEL_IN_X_AXIS"),
	entry(uint32(ChannelInYAxis), "AUDIO_CHANNEL_IN_Y_AXIS"),
	entry(uint32(ChannelInZAxis), "AUDIO_CHANNEL_IN_Z_AXIS"),
	entry(uint32(ChannelInVoiceUplink), "AUDIO_CHANNEL_IN_VOICE_UPLINK"),
	entry(uint32(ChannelInVoiceDnlink), "AUDIO_CHANNEL_IN_VOICE_DNLINK"),
	entry(uint32(ChannelInStereo), "AUDIO_CHANNEL_IN_STEREO"),
	entry(uint32(ChannelInFrontBack), "AUDIO_CHANNEL_IN_FRONT_BACK"),
	entry(uint32(ChannelInVoiceUplinkMono), "AUDIO_CHANNEL_IN_VOICE_UPLINK_MONO"),
	entry(uint32(ChannelInVoiceDnlinkMono), "AUDIO_CHANNEL_IN_VOICE_DNLINK_MONO"),
	entry(uint32(ChannelInVoiceCallMono), "AUDIO_CHANNEL_IN_VOICE_CALL_MONO"),
	entry(uint32(ChannelInAll), "AUDIO_CHANNEL_IN_ALL"),
}

// OutputDevices converts output device types.
var OutputDevices = Table{
	entry(uint32(DeviceNone), "AUDIO_DEVICE_NONE"),
	entry(uint32(DeviceOutEarpiece), "AUDIO_DEVICE_OUT_EARPIECE"),
	entry(uint32(DeviceOutSpeaker), "AUDIO_DEVICE_OUT_SPEAKER"),
	entry(uint32(DeviceOutWiredHeadset), "AUDIO_DEVICE_OUT_WIRED_HEADSET"),
	entry(uint32(DeviceOutWiredHeadphone), "AUDIO_DEVICE_OUT_WIRED_HEADPHONE"),
	entry(uint32(DeviceOutBluetoothSCO), "AUDIO_DEVICE_OUT_BLUETOOTH_SCO"),
	entry(uint32(DeviceOutBluetoothSCOHeadset), "AUDIO_DEVICE_OUT_BLUETOOTH_SCO_HEADSET"),
	entry(uint32(DeviceOutBluetoothSCOCarkit), "AUDIO_DEVICE_OUT_BLUETOOTH_SCO_CARKIT"),
	entry(uint32(DeviceOutBluetoothA2DP), "AUDIO_DEVICE_OUT_BLUETOOTH_A2DP"),
	entry(uint32(DeviceOutBluetoothA2DPHeadphones), "AUDIO_DEVICE_OUT_BLUETOOTH_A2DP_HEADPHONES"),
	entry(uint32(DeviceOutBluetoothA2DPSpeaker), "AUDIO_DEVICE_OUT_BLUETOOTH_A2DP_SPEAKER"),
	entry(uint32(DeviceOutAuxDigital), "AUDIO_DEVICE_OUT_AUX_DIGITAL"),
	alias(uint32(DeviceOutHDMI), "AUDIO_DEVICE_OUT_HDMI"),
	entry(uint32(DeviceOutAnlgDockHeadset), "AUDIO_DEVICE_OUT_ANLG_DOCK_HEADSET"),
	entry(uint32(DeviceOutDgtlDockHeadset), "AUDIO_DEVICE_OUT_DGTL_DOCK_HEADSET"),
	entry(uint32(DeviceOutUSBAccessory), "AUDIO_DEVICE_OUT_USB_ACCESSORY"),
	entry(uint32(DeviceOutUSBDevice), "AUDIO_DEVICE_OUT_USB_DEVICE"),
	entry(uint32(DeviceOutRemoteSubmix), "AUDIO_DEVICE_OUT_REMOTE_SUBMIX"),
	entry(uint32(DeviceOutTelephonyTx), "AUDIO_DEVICE_OUT_TELEPHONY_TX"),
	entry(uint32(DeviceOutLine), "AUDIO_DEVICE_OUT_LINE"),
	entry(uint32(DeviceOutHDMIArc), "AUDIO_DEVICE_OUT_HDMI_ARC"),
	entry(uint32(DeviceOutSPDIF), "AUDIO_DEVICE_OUT_SPDIF"),
	entry(uint32(DeviceOutFM), "AUDIO_DEVICE_OUT_FM"),
	entry(uint32(DeviceOutAuxLine), "AUDIO_DEVICE_OUT_AUX_LINE"),
	entry(uint32(DeviceOutSpeakerSafe), "AUDIO_DEVICE_OUT_SPEAKER_SAFE"),
	entry(uint32(DeviceOutIP), "AUDIO_DEVICE_OUT_IP"),
	entry(uint32(DeviceOutBus), "AUDIO_DEVICE_OUT_BUS"),
	entry(uint32(DeviceOutProxy), "AUDIO_DEVICE_OUT_PROXY"),
	entry(uint32(DeviceOutUSBHeadset), "AUDIO_DEVICE_OUT_USB_HEADSET"),
	entry(uint32(DeviceOutDefault), "AUDIO_DEVICE_OUT_DEFAULT"),
	entry(uint32(DeviceOutAllSCO), "AUDIO_DEVICE_OUT_ALL_SCO"),
	entry(uint32(DeviceOutAllA2DP), "AUDIO_DEVICE_OUT_ALL_A2DP"),
}

// InputDevices converts input device types.
var InputDevices = Table{
	entry(uint32(DeviceNone), "AUDIO_DEVICE_NONE"),
	entry(uint32(DeviceInCommunication), "AUDIO_DEVICE_IN_COMMUNICATION"),
	entry(uint32(DeviceInAmbient), "AUDIO_DEVICE_IN_AMBIENT"),
	entry(uint32(DeviceInBuiltinMic), "AUDIO_DEVICE_IN_BUILTIN_MIC"),
	entry(uint32(DeviceInBluetoothSCOHeadset), "AUDIO_DEVICE_IN_BLUETOOTH_SCO_HEADSET"),
	entry(uint32(DeviceInWiredHeadset), "AUDIO_DEVICE_IN_WIRED_HEADSET"),
	entry(uint32(DeviceInAuxDigital), "AUDIO_DEVICE_IN_AUX_DIGITAL"),
	alias(uint32(DeviceInHDMI), "AUDIO_DEVICE_IN_HDMI"),
	entry(uint32(DeviceInVoiceCall), "AUDIO_DEVICE_IN_VOICE_CALL"),
	alias(uint32(DeviceInTelephonyRx), "AUDIO_DEVICE_IN_TELEPHONY_RX"),
	entry(uint32(DeviceInBackMic), "AUDIO_DEVICE_IN_BACK_MIC"),
	entry(uint32(DeviceInRemoteSubmix), "AUDIO_DEVICE_IN_REMOTE_SUBMIX"),
	entry(uint32(DeviceInAnlgDockHeadset), "AUDIO_DEVICE_IN_ANLG_DOCK_HEADSET"),
	entry(uint32(DeviceInDgtlDockHeadset), "AUDIO_DEVICE_IN_DGTL_DOCK_HEADSET"),
	entry(uint32(DeviceInUSBAccessory), "AUDIO_DEVICE_IN_USB_ACCESSORY"),
	entry(uint32(DeviceInUSBDevice), "AUDIO_DEVICE_IN_USB_DEVICE"),
	entry(uint32(DeviceInFMTuner), "AUDIO_DEVICE_IN_FM_TUNER"),
	entry(uint32(DeviceInTVTuner), "AUDIO_DEVICE_IN_TV_TUNER"),
	entry(uint32(DeviceInLine), "AUDIO_DEVICE_IN_LINE"),
	entry(uint32(DeviceInSPDIF), "AUDIO_DEVICE_IN_SPDIF"),
	entry(uint32(DeviceInBluetoothA2DP), "AUDIO_DEVICE_IN_BLUETOOTH_A2DP"),
	entry(uint32(DeviceInLoopback), "AUDIO_DEVICE_IN_LOOPBACK"),
	entry(uint32(DeviceInIP), "AUDIO_DEVICE_IN_IP"),
	entry(uint32(DeviceInBus), "AUDIO_DEVICE_IN_BUS"),
	entry(uint32(DeviceInProxy), "AUDIO_DEVICE_IN_PROXY"),
	entry(uint32(DeviceInUSBHeadset), "AUDIO_DEVICE_IN_USB_HEADSET"),
	entry(uint32(DeviceInDefault), "AUDIO_DEVICE_IN_DEFAULT"),
}

// OutputFlagTable converts output flags.
var OutputFlagTable = Table{
	entry(uint32(OutputFlagNone), "AUDIO_OUTPUT_FLAG_NONE"),
	entry(uint32(OutputFlagDirect), "AUDIO_OUTPUT_FLAG_DIRECT"),
	entry(uint32(OutputFlagPrimary), "AUDIO_OUTPUT_FLAG_PRIMARY"),
	entry(uint32(OutputFlagFast), "AUDIO_OUTPUT_FLAG_FAST"),
	entry(uint32(OutputFlagDeepBuffer), "AUDIO_OUTPUT_FLAG_DEEP_BUFFER"),
	entry(uint32(OutputFlagCompressOffload), "AUDIO_OUTPUT_FLAG_COMPRESS_OFFLOAD"),
	entry(uint32(OutputFlagNonBlocking), "AUDIO_OUTPUT_FLAG_NON_BLOCKING"),
	entry(uint32(OutputFlagHwAvSync), "AUDIO_OUTPUT_FLAG_HW_AV_SYNC"),
	entry(uint32(OutputFlagTTS), "AUDIO_OUTPUT_FLAG_TTS"),
	entry(uint32(OutputFlagRaw), "AUDIO_OUTPUT_FLAG_RAW"),
	entry(uint32(OutputFlagSync), "AUDIO_OUTPUT_FLAG_SYNC"),
	entry(uint32(OutputFlagIEC958Nonaudio), "AUDIO_OUTPUT_FLAG_IEC958_NONAUDIO"),
	entry(uint32(OutputFlagDirectPCM), "AUDIO_OUTPUT_FLAG_DIRECT_PCM"),
	entry(uint32(OutputFlagMmapNoirq), "AUDIO_OUTPUT_FLAG_MMAP_NOIRQ"),
	entry(uint32(OutputFlagVoipRx), "AUDIO_OUTPUT_FLAG_VOIP_RX"),
	entry(uint32(OutputFlagIncallMusic), "AUDIO_OUTPUT_FLAG_INCALL_MUSIC"),
}

// InputFlagTable converts input flags.
var InputFlagTable = Table{
	entry(uint32(InputFlagNone), "AUDIO_INPUT_FLAG_NONE"),
	entry(uint32(InputFlagFast), "AUDIO_INPUT_FLAG_FAST"),
	entry(uint32(InputFlagHwHotword), "AUDIO_INPUT_FLAG_HW_HOTWORD"),
	entry(uint32(InputFlagRaw), "AUDIO_INPUT_FLAG_RAW"),
	entry(uint32(InputFlagSync), "AUDIO_INPUT_FLAG_SYNC"),
	entry(uint32(InputFlagMmapNoirq), "AUDIO_INPUT_FLAG_MMAP_NOIRQ"),
	entry(uint32(InputFlagVoipTx), "AUDIO_INPUT_FLAG_VOIP_TX"),
	entry(uint32(InputFlagHwAvSync), "AUDIO_INPUT_FLAG_HW_AV_SYNC"),
	entry(uint32(InputFlagDirect), "AUDIO_INPUT_FLAG_DIRECT"),
}

// Modes converts telephony modes.
var Modes = Table{
	entry(uint32(ModeNormal), "AUDIO_MODE_NORMAL"),
	entry(uint32(ModeRingtone), "AUDIO_MODE_RINGTONE"),
	entry(uint32(ModeInCall), "AUDIO_MODE_IN_CALL"),
	entry(uint32(ModeInCommunication), "AUDIO_MODE_IN_COMMUNICATION"),
	entry(uint32(ModeCallScreen), "AUDIO_MODE_CALL_SCREEN"),
}

// Sources converts input sources.
var Sources = Table{
	entry(uint32(SourceDefault), "AUDIO_SOURCE_DEFAULT"),
	entry(uint32(SourceMic), "AUDIO_SOURCE_MIC"),
	entry(uint32(SourceVoiceUplink), "AUDIO_SOURCE_VOICE_UPLINK"),
	entry(uint32(SourceVoiceDownlink), "AUDIO_SOURCE_VOICE_DOWNLINK"),
	entry(uint32(SourceVoiceCall), "AUDIO_SOURCE_VOICE_CALL"),
	entry(uint32(SourceCamcorder), "AUDIO_SOURCE_CAMCORDER"),
	entry(uint32(SourceVoiceRecognition), "AUDIO_SOURCE_VOICE_RECOGNITION"),
	entry(uint32(SourceVoiceCommunication), "AUDIO_SOURCE_VOICE_COMMUNICATION"),
	entry(uint32(SourceRemoteSubmix), "AUDIO_SOURCE_REMOTE_SUBMIX"),
	entry(uint32(SourceUnprocessed), "AUDIO_SOURCE_UNPROCESSED"),
	entry(uint32(SourceFMTuner), "AUDIO_SOURCE_FM_TUNER"),
	entry(uint32(SourceHotword), "AUDIO_SOURCE_HOTWORD"),
}

// ChannelTable returns the channel mask table for dir.
func ChannelTable(dir Direction) Table {
	if dir == DirectionInput {
		return InputChannels
	}
	return OutputChannels
}

// DeviceTable returns the device table for dir.
func DeviceTable(dir Direction) Table {
	if dir == DirectionInput {
		return InputDevices
	}
	return OutputDevices
}

// FlagTable returns the flag table for dir.
func FlagTable(dir Direction) Table {
	if dir == DirectionInput {
		return InputFlagTable
	}
	return OutputFlagTable
}
