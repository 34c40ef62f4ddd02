package sim

import (
	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/hal"
)

// periodFrames is the buffer size of simulated streams in frames.
const periodFrames = 960

type stream struct {
	drv     *Driver
	handle  hal.IOHandle
	cfg     hal.Config
	params  map[string]string
	standby bool
	closed  bool
}

func newStream(d *Driver, h hal.IOHandle, cfg hal.Config) stream {
	return stream{drv: d, handle: h, cfg: cfg, params: make(map[string]string)}
}

func (s *stream) SampleRate() uint32             { return s.cfg.SampleRate }
func (s *stream) ChannelMask() audio.ChannelMask { return s.cfg.ChannelMask }
func (s *stream) Format() audio.Format           { return s.cfg.Format }

func (s *stream) frameSize() int {
	size := 2
	switch s.cfg.Format {
	case audio.FormatPCM8Bit:
		size = 1
	case audio.FormatPCM32Bit, audio.FormatPCMFloat, audio.FormatPCM824Bit:
		size = 4
	case audio.FormatPCM24BitPacked:
		size = 3
	}
	return size * s.cfg.ChannelMask.Count()
}

func (s *stream) BufferSize() int { return periodFrames * s.frameSize() }

func (s *stream) Standby() error {
	s.drv.mu.Lock()
	defer s.drv.mu.Unlock()
	s.standby = true
	return nil
}

func (s *stream) SetParameters(kv string) error {
	s.drv.mu.Lock()
	defer s.drv.mu.Unlock()
	if err := s.drv.failure("StreamSetParameters"); err != nil {
		return err
	}
	for k, v := range hal.ParseParameters(kv) {
		s.params[k] = v
	}
	return nil
}

func (s *stream) GetParameters(keys string) (string, error) {
	s.drv.mu.Lock()
	defer s.drv.mu.Unlock()
	out := make(map[string]string)
	for k := range hal.ParseParameters(keys) {
		if v, ok := s.params[k]; ok {
			out[k] = v
		}
	}
	return hal.FormatParameters(out), nil
}

// Handle returns the handle the stream was opened with.
func (s *stream) Handle() hal.IOHandle { return s.handle }

// InStandby reports whether the stream was put in standby and not used since.
func (s *stream) InStandby() bool {
	s.drv.mu.Lock()
	defer s.drv.mu.Unlock()
	return s.standby
}

// OutputStream is a simulated playback stream. Written data is discarded.
type OutputStream struct {
	stream
	Devices audio.DeviceType
	Flags   audio.OutputFlags

	written int
	left    float32
	right   float32
}

var _ hal.OutputStream = (*OutputStream)(nil)

func (o *OutputStream) Write(p []byte) (int, error) {
	o.drv.mu.Lock()
	defer o.drv.mu.Unlock()
	if err := o.drv.failure("Write"); err != nil {
		return 0, err
	}
	o.standby = false
	o.written += len(p)
	return len(p), nil
}

func (o *OutputStream) SetVolume(left, right float32) error {
	o.drv.mu.Lock()
	defer o.drv.mu.Unlock()
	o.left, o.right = left, right
	return nil
}

func (o *OutputStream) Latency() uint32 {
	if o.cfg.SampleRate == 0 {
		return 0
	}
	return uint32(2 * periodFrames * 1000 / int(o.cfg.SampleRate))
}

// Written returns the number of bytes written.
func (o *OutputStream) Written() int {
	o.drv.mu.Lock()
	defer o.drv.mu.Unlock()
	return o.written
}

// InputStream is a simulated capture stream producing silence.
type InputStream struct {
	stream
	Devices audio.DeviceType
	Flags   audio.InputFlags
	Source  audio.Source
}

var _ hal.InputStream = (*InputStream)(nil)

func (i *InputStream) Read(p []byte) (int, error) {
	i.drv.mu.Lock()
	defer i.drv.mu.Unlock()
	if err := i.drv.failure("Read"); err != nil {
		return 0, err
	}
	i.standby = false
	clear(p)
	return len(p), nil
}
