package inspect

import (
	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/version"
)

// createTestDevice creates a two module description for testing.
func createTestDevice() *config.Device {
	m := config.NewModule("primary", version.Version{Major: 2})
	primary := m.AddMixPort(&config.Port{Name: "primary output", Role: config.RoleSource,
		Flags: uint32(audio.OutputFlagPrimary), MaxOpenCount: 1, MaxActiveCount: 1,
		Profiles: []*config.Profile{{Format: audio.FormatPCM16Bit, SamplingRates: []uint32{44100, 48000},
			ChannelMasks: []audio.ChannelMask{audio.ChannelOutStereo}}}})
	capture := m.AddMixPort(&config.Port{Name: "capture", Role: config.RoleSink,
		Profiles: []*config.Profile{{Format: audio.FormatPCM16Bit, SamplingRates: []uint32{8000, 16000},
			ChannelMasks: []audio.ChannelMask{audio.ChannelInMono}}}})
	speaker := m.AddDevicePort(&config.Port{Name: "Speaker", Role: config.RoleSink, DeviceType: audio.DeviceOutSpeaker})
	earpiece := m.AddDevicePort(&config.Port{Name: "Earpiece", Role: config.RoleSink, DeviceType: audio.DeviceOutEarpiece})
	mic := m.AddDevicePort(&config.Port{Name: "Built-In Mic", Role: config.RoleSource,
		DeviceType: audio.DeviceInBuiltinMic, Address: "bottom"})
	m.Routes = []*config.Route{
		{Type: config.RouteMix, Sink: speaker, Sources: []config.PortID{primary}},
		{Type: config.RouteMix, Sink: earpiece, Sources: []config.PortID{primary}},
		{Type: config.RouteMix, Sink: capture, Sources: []config.PortID{mic}},
	}
	m.AttachDevice(speaker)
	m.AttachDevice(mic)
	m.DefaultOutputDevice = speaker

	a2dp := config.NewModule("a2dp", version.Version{Major: 2})
	out := a2dp.AddMixPort(&config.Port{Name: "a2dp output", Role: config.RoleSource,
		Profiles: []*config.Profile{config.DefaultProfile(audio.DirectionOutput)}})
	bt := a2dp.AddDevicePort(&config.Port{Name: "BT A2DP Out", Role: config.RoleSink,
		DeviceType: audio.DeviceOutBluetoothA2DP})
	a2dp.Routes = []*config.Route{{Type: config.RouteMix, Sink: bt, Sources: []config.PortID{out}}}

	return &config.Device{Modules: []*config.Module{m, a2dp}}
}
