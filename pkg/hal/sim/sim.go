// Package sim is an in-memory audio driver. It accepts stream
// configurations listed in a capability table, suggests the closest entry
// when asked for anything else, and records patches, parameters and mode
// so tests can inspect them.
package sim

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/hal"
)

// DriverName is the name the simulator registers under.
const DriverName = "sim"

func init() {
	hal.Register(DriverName, func(moduleID string) (hal.Device, error) {
		return New(DefaultCapabilities()), nil
	})
}

// Capability is one configuration the driver accepts.
type Capability struct {
	Direction   audio.Direction
	SampleRate  uint32
	ChannelMask audio.ChannelMask
	Format      audio.Format
}

// DefaultCapabilities returns a table covering common phone hardware.
func DefaultCapabilities() []Capability {
	var caps []Capability
	for _, rate := range []uint32{48000, 44100} {
		caps = append(caps,
			Capability{audio.DirectionOutput, rate, audio.ChannelOutStereo, audio.FormatPCM16Bit},
			Capability{audio.DirectionOutput, rate, audio.ChannelOutMono, audio.FormatPCM16Bit},
		)
	}
	for _, rate := range []uint32{48000, 16000, 8000} {
		caps = append(caps,
			Capability{audio.DirectionInput, rate, audio.ChannelInStereo, audio.FormatPCM16Bit},
			Capability{audio.DirectionInput, rate, audio.ChannelInMono, audio.FormatPCM16Bit},
		)
	}
	return caps
}

// Driver implements hal.Device.
type Driver struct {
	mu sync.Mutex

	caps      []Capability
	params    map[string]string
	mode      audio.Mode
	micMute   bool
	voice     float32
	closed    bool
	nextPatch hal.PatchHandle
	patches   map[hal.PatchHandle]*hal.Patch
	outputs   map[hal.IOHandle]*OutputStream
	inputs    map[hal.IOHandle]*InputStream
	failures  map[string]error
	paramsLog []string
}

var _ hal.Device = (*Driver)(nil)

// New returns a driver accepting caps.
func New(caps []Capability) *Driver {
	return &Driver{
		caps:     caps,
		params:   make(map[string]string),
		patches:  make(map[hal.PatchHandle]*hal.Patch),
		outputs:  make(map[hal.IOHandle]*OutputStream),
		inputs:   make(map[hal.IOHandle]*InputStream),
		failures: make(map[string]error),
	}
}

// Fail makes the next calls of op return err until cleared with a nil err.
// Op names match the hal.Device methods ("OpenOutputStream", ...).
func (d *Driver) Fail(op string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.failures, op)
		return
	}
	d.failures[op] = err
}

func (d *Driver) failure(op string) error {
	if err, ok := d.failures[op]; ok {
		return err
	}
	if d.closed {
		return hal.NewStatus(op, unix.ENODEV)
	}
	return nil
}

func (d *Driver) accepts(dir audio.Direction, cfg *hal.Config) bool {
	for _, c := range d.caps {
		if c.Direction == dir && c.SampleRate == cfg.SampleRate &&
			c.ChannelMask == cfg.ChannelMask && c.Format == cfg.Format {
			return true
		}
	}
	return false
}

// suggest rewrites cfg with the closest capability: same channel count if
// possible, then the nearest rate.
func (d *Driver) suggest(dir audio.Direction, cfg *hal.Config) bool {
	var best *Capability
	bestScore := -1
	for i := range d.caps {
		c := &d.caps[i]
		if c.Direction != dir {
			continue
		}
		score := 0
		if c.Format == cfg.Format {
			score += 4
		}
		if c.ChannelMask.Count() == cfg.ChannelMask.Count() {
			score += 2
		}
		if c.SampleRate == cfg.SampleRate {
			score++
		}
		if score > bestScore || (score == bestScore && rateDistance(c.SampleRate, cfg.SampleRate) < rateDistance(best.SampleRate, cfg.SampleRate)) {
			best, bestScore = c, score
		}
	}
	if best == nil {
		return false
	}
	cfg.SampleRate = best.SampleRate
	cfg.ChannelMask = best.ChannelMask
	cfg.Format = best.Format
	return true
}

func rateDistance(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// InitCheck implements hal.Device.
func (d *Driver) InitCheck() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failure("InitCheck")
}

// OpenOutputStream implements hal.Device. Unsupported configurations are
// replaced with the closest supported one, as output drivers do.
func (d *Driver) OpenOutputStream(handle hal.IOHandle, devices audio.DeviceType, flags audio.OutputFlags,
	cfg *hal.Config, address string) (hal.OutputStream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("OpenOutputStream"); err != nil {
		return nil, err
	}
	if _, dup := d.outputs[handle]; dup {
		return nil, hal.NewStatus("OpenOutputStream", unix.EEXIST)
	}
	if !d.accepts(audio.DirectionOutput, cfg) && !d.suggest(audio.DirectionOutput, cfg) {
		return nil, hal.NewStatus("OpenOutputStream", unix.EINVAL)
	}
	s := &OutputStream{stream: newStream(d, handle, *cfg), Devices: devices, Flags: flags}
	d.outputs[handle] = s
	return s, nil
}

// OpenInputStream implements hal.Device. An unsupported configuration
// fails with EINVAL and cfg holds the suggested alternative.
func (d *Driver) OpenInputStream(handle hal.IOHandle, devices audio.DeviceType, cfg *hal.Config,
	flags audio.InputFlags, address string, source audio.Source) (hal.InputStream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("OpenInputStream"); err != nil {
		return nil, err
	}
	if _, dup := d.inputs[handle]; dup {
		return nil, hal.NewStatus("OpenInputStream", unix.EEXIST)
	}
	if !d.accepts(audio.DirectionInput, cfg) {
		d.suggest(audio.DirectionInput, cfg)
		return nil, hal.NewStatus("OpenInputStream", unix.EINVAL)
	}
	s := &InputStream{stream: newStream(d, handle, *cfg), Devices: devices, Flags: flags, Source: source}
	d.inputs[handle] = s
	return s, nil
}

// CloseOutputStream implements hal.Device.
func (d *Driver) CloseOutputStream(s hal.OutputStream) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if o, ok := s.(*OutputStream); ok {
		delete(d.outputs, o.handle)
		o.closed = true
	}
}

// CloseInputStream implements hal.Device.
func (d *Driver) CloseInputStream(s hal.InputStream) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i, ok := s.(*InputStream); ok {
		delete(d.inputs, i.handle)
		i.closed = true
	}
}

// SetParameters implements hal.Device.
func (d *Driver) SetParameters(kv string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("SetParameters"); err != nil {
		return err
	}
	for k, v := range hal.ParseParameters(kv) {
		d.params[k] = v
	}
	d.paramsLog = append(d.paramsLog, kv)
	return nil
}

// GetParameters implements hal.Device. Unknown keys are omitted.
func (d *Driver) GetParameters(keys string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("GetParameters"); err != nil {
		return "", err
	}
	out := make(map[string]string)
	for k := range hal.ParseParameters(keys) {
		if v, ok := d.params[k]; ok {
			out[k] = v
		}
	}
	return hal.FormatParameters(out), nil
}

// CreateAudioPatch implements hal.Device.
func (d *Driver) CreateAudioPatch(p *hal.Patch) (hal.PatchHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("CreateAudioPatch"); err != nil {
		return hal.NoPatch, err
	}
	if len(p.Sources) == 0 || len(p.Sinks) == 0 {
		return hal.NoPatch, hal.NewStatus("CreateAudioPatch", unix.EINVAL)
	}
	d.nextPatch++
	cp := &hal.Patch{
		Sources: append([]hal.PortConfig(nil), p.Sources...),
		Sinks:   append([]hal.PortConfig(nil), p.Sinks...),
	}
	d.patches[d.nextPatch] = cp
	return d.nextPatch, nil
}

// ReleaseAudioPatch implements hal.Device.
func (d *Driver) ReleaseAudioPatch(h hal.PatchHandle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("ReleaseAudioPatch"); err != nil {
		return err
	}
	if _, ok := d.patches[h]; !ok {
		return hal.NewStatus("ReleaseAudioPatch", unix.ENOENT)
	}
	delete(d.patches, h)
	return nil
}

// SetMode implements hal.Device.
func (d *Driver) SetMode(mode audio.Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("SetMode"); err != nil {
		return err
	}
	d.mode = mode
	return nil
}

// SetMicMute implements hal.Device.
func (d *Driver) SetMicMute(mute bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("SetMicMute"); err != nil {
		return err
	}
	d.micMute = mute
	return nil
}

// GetMicMute implements hal.Device.
func (d *Driver) GetMicMute() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("GetMicMute"); err != nil {
		return false, err
	}
	return d.micMute, nil
}

// SetVoiceVolume implements hal.Device.
func (d *Driver) SetVoiceVolume(volume float32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failure("SetVoiceVolume"); err != nil {
		return err
	}
	if volume < 0 || volume > 1 {
		return hal.NewStatus("SetVoiceVolume", unix.EINVAL)
	}
	d.voice = volume
	return nil
}

// Close implements hal.Device.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Mode returns the last mode set.
func (d *Driver) Mode() audio.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// VoiceVolume returns the last voice volume set.
func (d *Driver) VoiceVolume() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.voice
}

// Parameter returns the current value of key.
func (d *Driver) Parameter(key string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.params[key]
	return v, ok
}

// ParameterLog returns every SetParameters argument in call order.
func (d *Driver) ParameterLog() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.paramsLog...)
}

// Patches returns a copy of the live patches.
func (d *Driver) Patches() map[hal.PatchHandle]hal.Patch {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[hal.PatchHandle]hal.Patch, len(d.patches))
	for h, p := range d.patches {
		out[h] = *p
	}
	return out
}

// OpenStreams returns the number of open output and input streams.
func (d *Driver) OpenStreams() (outputs, inputs int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.outputs), len(d.inputs)
}

// Closed reports whether Close was called.
func (d *Driver) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
