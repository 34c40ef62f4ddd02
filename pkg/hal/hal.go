package hal

import (
	"github.com/droidaudio/droid-go/pkg/audio"
)

// IOHandle identifies an open stream. The bridge allocates handles in
// increasing order.
type IOHandle int32

// PatchHandle identifies an audio patch created by the driver.
type PatchHandle int32

// NoPatch is the handle of an absent patch.
const NoPatch PatchHandle = 0

// Config is the stream configuration exchanged with the driver.
type Config struct {
	SampleRate  uint32
	ChannelMask audio.ChannelMask
	Format      audio.Format
	FrameCount  uint32
}

// PortRole is the role of a port in a patch.
type PortRole uint8

const (
	RoleSource PortRole = 1
	RoleSink   PortRole = 2
)

// PortType is the kind of port in a patch.
type PortType uint8

const (
	PortTypeDevice PortType = 1
	PortTypeMix    PortType = 2
)

// PortConfig is one end of an audio patch.
type PortConfig struct {
	Role PortRole
	Type PortType

	// Device ports.
	Device  audio.DeviceType
	Address string

	// Mix ports.
	Handle IOHandle
	Source audio.Source
}

// DevicePortConfig returns a device end of a patch.
func DevicePortConfig(role PortRole, device audio.DeviceType, address string) PortConfig {
	return PortConfig{Role: role, Type: PortTypeDevice, Device: device, Address: address}
}

// MixPortConfig returns a mix end of a patch.
func MixPortConfig(role PortRole, handle IOHandle) PortConfig {
	return PortConfig{Role: role, Type: PortTypeMix, Handle: handle}
}

// Patch connects sources to sinks.
type Patch struct {
	Sources []PortConfig
	Sinks   []PortConfig
}

// Stream is the part shared by output and input streams.
type Stream interface {
	SampleRate() uint32
	ChannelMask() audio.ChannelMask
	Format() audio.Format
	BufferSize() int
	Standby() error
	SetParameters(kv string) error
	GetParameters(keys string) (string, error)
}

// OutputStream is an open playback stream.
type OutputStream interface {
	Stream
	Write(p []byte) (int, error)
	SetVolume(left, right float32) error
	Latency() uint32
}

// InputStream is an open capture stream.
type InputStream interface {
	Stream
	Read(p []byte) (int, error)
}

// Device is an opened vendor audio module.
type Device interface {
	InitCheck() error

	// OpenOutputStream opens a playback stream. The driver may adjust cfg
	// to the values it actually uses.
	OpenOutputStream(handle IOHandle, devices audio.DeviceType, flags audio.OutputFlags,
		cfg *Config, address string) (OutputStream, error)

	// OpenInputStream opens a capture stream. When the driver rejects cfg
	// it may rewrite cfg with values it would accept.
	OpenInputStream(handle IOHandle, devices audio.DeviceType, cfg *Config,
		flags audio.InputFlags, address string, source audio.Source) (InputStream, error)

	CloseOutputStream(s OutputStream)
	CloseInputStream(s InputStream)

	SetParameters(kv string) error
	GetParameters(keys string) (string, error)

	CreateAudioPatch(p *Patch) (PatchHandle, error)
	ReleaseAudioPatch(h PatchHandle) error

	SetMode(mode audio.Mode) error
	SetMicMute(mute bool) error
	GetMicMute() (bool, error)
	SetVoiceVolume(volume float32) error

	Close() error
}
