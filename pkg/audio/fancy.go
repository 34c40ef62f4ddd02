package audio

import "strings"

// Parking port names. A parking port has no device behind it and is used
// to park hardware routing while modes change.
const (
	OutputParkingName = "output-parking"
	InputParkingName  = "input-parking"
)

var fancyOutputDevices = Table{
	entry(uint32(DeviceOutEarpiece), "output-earpiece"),
	entry(uint32(DeviceOutSpeaker), "output-speaker"),
	entry(uint32(DeviceOutSpeaker|DeviceOutWiredHeadphone), "output-speaker+wired_headphone"),
	entry(uint32(DeviceOutWiredHeadset), "output-wired_headset"),
	entry(uint32(DeviceOutWiredHeadphone), "output-wired_headphone"),
	entry(uint32(DeviceOutBluetoothSCO), "output-bluetooth_sco"),
	entry(uint32(DeviceOutBluetoothSCOHeadset), "output-sco_headset"),
	entry(uint32(DeviceOutBluetoothSCOCarkit), "output-sco_carkit"),
	entry(uint32(DeviceOutBluetoothA2DP), "output-bluetooth_a2dp"),
	entry(uint32(DeviceOutBluetoothA2DPHeadphones), "output-a2dp_headphones"),
	entry(uint32(DeviceOutBluetoothA2DPSpeaker), "output-a2dp_speaker"),
	entry(uint32(DeviceOutAuxDigital), "output-aux_digital"),
	entry(uint32(DeviceOutAnlgDockHeadset), "output-analog_dock_headset"),
	entry(uint32(DeviceOutDgtlDockHeadset), "output-digital_dock_headset"),
	entry(uint32(DeviceOutUSBAccessory), "output-usb_accessory"),
	entry(uint32(DeviceOutUSBDevice), "output-usb_device"),
	entry(uint32(DeviceOutRemoteSubmix), "output-remote_submix"),
	entry(uint32(DeviceOutTelephonyTx), "output-telephony_tx"),
	entry(uint32(DeviceOutLine), "output-line"),
	entry(uint32(DeviceOutHDMIArc), "output-hdmi_arc"),
	entry(uint32(DeviceOutSPDIF), "output-spdif"),
	entry(uint32(DeviceOutFM), "output-fm"),
	entry(uint32(DeviceOutAuxLine), "output-aux_line"),
	entry(uint32(DeviceOutSpeakerSafe), "output-speaker_safe"),
	entry(uint32(DeviceOutIP), "output-ip"),
	entry(uint32(DeviceOutBus), "output-bus"),
	entry(uint32(DeviceOutProxy), "output-proxy"),
	entry(uint32(DeviceOutUSBHeadset), "output-usb_headset"),
	entry(uint32(DeviceOutDefault), "output-default"),
}

var fancyInputDevices = Table{
	entry(uint32(DeviceInCommunication), "input-communication"),
	entry(uint32(DeviceInAmbient), "input-ambient"),
	entry(uint32(DeviceInBuiltinMic), "input-builtin_mic"),
	entry(uint32(DeviceInBluetoothSCOHeadset), "input-bluetooth_sco_headset"),
	entry(uint32(DeviceInWiredHeadset), "input-wired_headset"),
	entry(uint32(DeviceInAuxDigital), "input-aux_digital"),
	entry(uint32(DeviceInVoiceCall), "input-voice_call"),
	entry(uint32(DeviceInBackMic), "input-back_mic"),
	entry(uint32(DeviceInRemoteSubmix), "input-remote_submix"),
	entry(uint32(DeviceInAnlgDockHeadset), "input-analog_dock_headset"),
	entry(uint32(DeviceInDgtlDockHeadset), "input-digital_dock_headset"),
	entry(uint32(DeviceInUSBAccessory), "input-usb_accessory"),
	entry(uint32(DeviceInUSBDevice), "input-usb_device"),
	entry(uint32(DeviceInFMTuner), "input-fm_tuner"),
	entry(uint32(DeviceInTVTuner), "input-tv_tuner"),
	entry(uint32(DeviceInLine), "input-line"),
	entry(uint32(DeviceInSPDIF), "input-spdif"),
	entry(uint32(DeviceInBluetoothA2DP), "input-bluetooth_a2dp"),
	entry(uint32(DeviceInLoopback), "input-loopback"),
	entry(uint32(DeviceInIP), "input-ip"),
	entry(uint32(DeviceInBus), "input-bus"),
	entry(uint32(DeviceInProxy), "input-proxy"),
	entry(uint32(DeviceInUSBHeadset), "input-usb_headset"),
	entry(uint32(DeviceInDefault), "input-default"),
}

var fancySources = Table{
	entry(uint32(SourceDefault), "source-default"),
	entry(uint32(SourceMic), "source-mic"),
	entry(uint32(SourceVoiceUplink), "source-voice_uplink"),
	entry(uint32(SourceVoiceDownlink), "source-voice_downlink"),
	entry(uint32(SourceVoiceCall), "source-voice_call"),
	entry(uint32(SourceCamcorder), "source-camcorder"),
	entry(uint32(SourceVoiceRecognition), "source-voice_recognition"),
	entry(uint32(SourceVoiceCommunication), "source-voice_communication"),
	entry(uint32(SourceRemoteSubmix), "source-remote_submix"),
	entry(uint32(SourceUnprocessed), "source-unprocessed"),
	entry(uint32(SourceFMTuner), "source-fm_tuner"),
	entry(uint32(SourceHotword), "source-hotword"),
}

// FancyDeviceName returns the display name of a device type. Devices
// without a table entry get a name derived from their canonical string,
// and unknown values yield false.
func FancyDeviceName(d DeviceType) (string, bool) {
	table := fancyOutputDevices
	if d.IsInput() {
		table = fancyInputDevices
	}
	if s, ok := table.ToString(uint32(d)); ok {
		return s, true
	}
	canonical, ok := DeviceTable(d.Direction()).ToString(uint32(d))
	if !ok {
		return "", false
	}
	prefix := "AUDIO_DEVICE_OUT_"
	if d.IsInput() {
		prefix = "AUDIO_DEVICE_IN_"
	}
	return d.Direction().String() + "-" + strings.ToLower(strings.TrimPrefix(canonical, prefix)), true
}

// FancySourceName returns the display name of an input source.
func FancySourceName(s Source) (string, bool) {
	return fancySources.ToString(uint32(s))
}
