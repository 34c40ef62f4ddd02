package hwmodule

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/hal/sim"
	"github.com/droidaudio/droid-go/pkg/log"
	"github.com/droidaudio/droid-go/pkg/sample"
	"github.com/droidaudio/droid-go/pkg/version"
)

func profile(rates []uint32, masks ...audio.ChannelMask) *config.Profile {
	return &config.Profile{Format: audio.FormatPCM16Bit, SamplingRates: rates, ChannelMasks: masks}
}

// phoneConfig describes a small phone: two playback mix ports, three
// capture mix ports, speaker, earpiece, SCO, mic and telephony rx.
func phoneConfig() *config.Device {
	m := config.NewModule("primary", version.Version{Major: 3})

	primary := m.AddMixPort(&config.Port{Name: "primary output", Role: config.RoleSource,
		Flags:    uint32(audio.OutputFlagPrimary),
		Profiles: []*config.Profile{profile([]uint32{48000}, audio.ChannelOutStereo)}})
	deep := m.AddMixPort(&config.Port{Name: "deep_buffer", Role: config.RoleSource,
		Flags:    uint32(audio.OutputFlagDeepBuffer),
		Profiles: []*config.Profile{profile([]uint32{44100, 48000}, audio.ChannelOutStereo)}})
	input := m.AddMixPort(&config.Port{Name: "primary input", Role: config.RoleSink,
		Profiles: []*config.Profile{profile([]uint32{8000, 16000, 48000}, audio.ChannelInMono, audio.ChannelInStereo)}})
	voip := m.AddMixPort(&config.Port{Name: "voip_tx", Role: config.RoleSink,
		Flags:    uint32(audio.InputFlagVoipTx),
		Profiles: []*config.Profile{profile([]uint32{8000, 16000}, audio.ChannelInMono)}})
	voice := m.AddMixPort(&config.Port{Name: "voice_rx", Role: config.RoleSink,
		Profiles: []*config.Profile{profile([]uint32{8000, 16000, 48000}, audio.ChannelInMono)}})

	device := func(name string, role config.Role, t audio.DeviceType) config.PortID {
		return m.AddDevicePort(&config.Port{Name: name, Role: role, DeviceType: t,
			Profiles: []*config.Profile{config.DefaultProfile(t.Direction())}})
	}
	speaker := device("Speaker", config.RoleSink, audio.DeviceOutSpeaker)
	earpiece := device("Earpiece", config.RoleSink, audio.DeviceOutEarpiece)
	sco := device("BT SCO", config.RoleSink, audio.DeviceOutBluetoothSCO)
	mic := device("Built-In Mic", config.RoleSource, audio.DeviceInBuiltinMic)
	rx := device("Telephony Rx", config.RoleSource, audio.DeviceInTelephonyRx)

	m.Routes = []*config.Route{
		{Type: config.RouteMix, Sink: speaker, Sources: []config.PortID{primary, deep}},
		{Type: config.RouteMix, Sink: earpiece, Sources: []config.PortID{primary}},
		{Type: config.RouteMix, Sink: sco, Sources: []config.PortID{primary, deep}},
		{Type: config.RouteMix, Sink: input, Sources: []config.PortID{mic}},
		{Type: config.RouteMix, Sink: voip, Sources: []config.PortID{mic}},
		{Type: config.RouteMix, Sink: voice, Sources: []config.PortID{rx}},
	}
	for _, id := range []config.PortID{speaker, earpiece, mic, rx} {
		m.AttachDevice(id)
	}
	m.DefaultOutputDevice = speaker

	return &config.Device{Modules: []*config.Module{m}}
}

// eventRecorder collects routing events.
type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) byCategory(c log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

var driverSeq atomic.Int32

type fixture struct {
	registry *Registry
	module   *Module
	events   *eventRecorder
	logs     *bytes.Buffer
}

// newFixture opens the "primary" module of phoneConfig on dev.
func newFixture(t *testing.T, dev hal.Device) *fixture {
	t.Helper()
	driver := fmt.Sprintf("test-%d", driverSeq.Add(1))
	hal.Register(driver, func(string) (hal.Device, error) { return dev, nil })

	f := &fixture{events: &eventRecorder{}, logs: &bytes.Buffer{}}
	logger := slog.New(slog.NewJSONHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.registry = NewRegistry(phoneConfig(), RegistryConfig{Driver: driver, Logger: logger, Events: f.events})

	m, err := f.registry.GetOrOpen("primary")
	require.NoError(t, err)
	f.module = m
	return f
}

func newSimFixture(t *testing.T, caps ...sim.Capability) (*fixture, *sim.Driver) {
	t.Helper()
	if len(caps) == 0 {
		caps = sim.DefaultCapabilities()
	}
	drv := sim.New(caps)
	return newFixture(t, drv), drv
}

func (f *fixture) port(t *testing.T, name string) *config.Port {
	t.Helper()
	p := f.module.Config().FindPort(name)
	require.NotNil(t, p, name)
	return p
}

func stereo48k() sample.Spec {
	return sample.Spec{Format: sample.FormatS16LE, Rate: 48000, Channels: 2}
}

func (f *fixture) openOutput(t *testing.T, mix, device string) *Stream {
	t.Helper()
	s, err := f.module.OpenOutput(StreamRequest{Mix: f.port(t, mix), Device: f.port(t, device), Spec: stereo48k()})
	require.NoError(t, err)
	return s
}

func (f *fixture) openInput(t *testing.T, spec sample.Spec) *Stream {
	t.Helper()
	s, err := f.module.OpenInput(StreamRequest{
		Mix:    f.port(t, "primary input"),
		Device: f.port(t, "Built-In Mic"),
		Spec:   spec,
	})
	require.NoError(t, err)
	return s
}
