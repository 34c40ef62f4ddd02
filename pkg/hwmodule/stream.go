package hwmodule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/log"
	"github.com/droidaudio/droid-go/pkg/sample"
)

// StreamRequest describes a stream to open.
type StreamRequest struct {
	// Mix is the mix port to open the stream on. For inputs it is the
	// default mix port; the current mode may select another one.
	Mix *config.Port

	// Device is the device port to route the stream to.
	Device *config.Port

	// Spec is the requested sample spec.
	Spec sample.Spec

	// Channels is the requested channel map. Nil selects the default map
	// for Spec.Channels.
	Channels sample.ChannelMap

	// Source is the capture use case (inputs only).
	Source audio.Source
}

// Stream is an open driver stream. Read, Write and Standby may be called
// from the stream's I/O goroutine; Resume and Reconfigure must be called
// from that goroutine too.
type Stream struct {
	module    *Module
	direction audio.Direction

	// Guarded by the module's path mutex.
	handle      hal.IOHandle
	mix         *config.Port
	defaultMix  *config.Port
	device      *config.Port
	spec        sample.Spec
	channels    sample.ChannelMap
	mask        audio.ChannelMask
	source      audio.Source
	out         hal.OutputStream
	in          hal.InputStream
	patch       hal.PatchHandle
	standby     bool
	reconfigure bool
	closed      bool
}

func (s *Stream) pathLock() *sync.Mutex {
	if s.direction == audio.DirectionInput {
		return &s.module.inputMu
	}
	return &s.module.outputMu
}

// Direction returns the stream direction.
func (s *Stream) Direction() audio.Direction { return s.direction }

// Handle returns the driver handle of the stream.
func (s *Stream) Handle() hal.IOHandle {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.handle
}

// Spec returns the negotiated sample spec, with the rate the driver
// actually uses.
func (s *Stream) Spec() sample.Spec {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.spec
}

// Channels returns the negotiated channel map.
func (s *Stream) Channels() sample.ChannelMap {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.channels
}

// Mix returns the mix port the stream is open on.
func (s *Stream) Mix() *config.Port {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.mix
}

// Device returns the device port the stream is routed to.
func (s *Stream) Device() *config.Port {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.device
}

// IsPrimary reports whether the stream is on the primary output mix port.
func (s *Stream) IsPrimary() bool {
	return s.direction == audio.DirectionOutput && s.mix.OutputFlags()&audio.OutputFlagPrimary != 0
}

// BufferSize returns the driver buffer size in bytes.
func (s *Stream) BufferSize() int {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	switch {
	case s.out != nil:
		return s.out.BufferSize()
	case s.in != nil:
		return s.in.BufferSize()
	}
	return 0
}

// InStandby reports whether the stream is in standby.
func (s *Stream) InStandby() bool {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.standby
}

// ReconfigureNeeded reports whether a mode change selected another mix
// port for this input stream.
func (s *Stream) ReconfigureNeeded() bool {
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()
	return s.reconfigure
}

func (s *Stream) logAttrs() []any {
	attrs := []any{"direction", s.direction.String(), "handle", int(s.handle)}
	if s.mix != nil {
		attrs = append(attrs, "mix_port", s.mix.Name)
	}
	if s.device != nil {
		attrs = append(attrs, "device_port", s.device.Name)
	}
	return attrs
}

func (s *Stream) emit(action log.StreamAction, requestedRate uint32, attempts int) {
	ev := &log.StreamEvent{
		Action:        action,
		Format:        s.spec.Format.String(),
		Rate:          s.spec.Rate,
		Channels:      s.spec.Channels,
		RequestedRate: requestedRate,
		Attempts:      attempts,
	}
	if s.mix != nil {
		ev.MixPort = s.mix.Name
	}
	if s.device != nil {
		ev.DevicePort = s.device.Name
	}
	s.module.emit(log.Event{
		Direction: eventDirection(s.direction),
		Category:  log.CategoryStream,
		StreamID:  int32(s.handle),
		Stream:    ev,
	})
}

func halConfig(spec sample.Spec, channels sample.ChannelMap, dir audio.Direction) (hal.Config, error) {
	format, err := spec.Format.HAL()
	if err != nil {
		return hal.Config{}, err
	}
	mask, err := channels.Mask(dir)
	if err != nil {
		return hal.Config{}, err
	}
	return hal.Config{SampleRate: spec.Rate, ChannelMask: mask, Format: format}, nil
}

// OpenOutput negotiates req against the mix port and opens an output
// stream. When another output is already open the new stream follows the
// current output route, otherwise it is routed to req.Device and that
// device becomes the output route.
func (m *Module) OpenOutput(req StreamRequest) (*Stream, error) {
	m.outputMu.Lock()
	defer m.outputMu.Unlock()

	if err := m.checkPort(req.Mix, audio.DirectionOutput); err != nil {
		return nil, err
	}
	if err := m.checkPort(req.Device, audio.DirectionOutput); err != nil {
		return nil, err
	}
	if !req.Device.IsDevice() || !req.Mix.IsMix() {
		return nil, fmt.Errorf("%w: mix %q to device %q", ErrStalePort, req.Mix.Name, req.Device.Name)
	}

	neg, err := CompatiblePort(req.Mix, req.Spec, req.Channels)
	if err != nil {
		m.logger.Error("No compatible output profile", "mix_port", req.Mix.Name, "spec", req.Spec.String(), "error", err)
		m.emitError(audio.DirectionOutput, "CompatiblePort", err, req.Mix.Name)
		return nil, err
	}
	cfg, err := halConfig(neg.Spec, neg.Channels, audio.DirectionOutput)
	if err != nil {
		m.logger.Error("Cannot convert output channel map", "mix_port", req.Mix.Name, "channels", neg.Channels.String(), "error", err)
		return nil, err
	}

	s := &Stream{
		module:     m,
		direction:  audio.DirectionOutput,
		handle:     m.nextHandle(),
		mix:        req.Mix,
		defaultMix: req.Mix,
		device:     req.Device,
		spec:       neg.Spec,
		channels:   neg.Channels,
		mask:       cfg.ChannelMask,
	}

	out, err := m.driver.OpenOutputStream(s.handle, req.Device.DeviceType, req.Mix.OutputFlags(), &cfg, req.Device.Address)
	if err != nil {
		m.logger.Error("Failed to open output stream", append(s.logAttrs(), "spec", neg.Spec.String(), "error", err)...)
		m.emitError(audio.DirectionOutput, "OpenOutputStream", err, req.Mix.Name)
		return nil, fmt.Errorf("open output stream on %q: %w", req.Mix.Name, err)
	}
	s.out = out

	var requested uint32
	if rate := out.SampleRate(); rate != neg.Spec.Rate {
		m.logger.Warn("Driver changed output sample rate", append(s.logAttrs(), "requested", neg.Spec.Rate, "actual", rate)...)
		requested = neg.Spec.Rate
		s.spec.Rate = rate
	}

	primaryOpen := m.primaryOutput() != nil
	m.outputs = append(m.outputs, s)

	target := req.Device
	if primaryOpen && m.outputDevice != nil {
		target = m.outputDevice
	}
	if err := m.routeStream(s, target); err != nil {
		m.logger.Warn("Failed to route new output stream", append(s.logAttrs(), "error", err)...)
	} else if !primaryOpen {
		m.outputDevice = target
	}

	m.logger.Info("Output stream opened", append(s.logAttrs(), "spec", s.spec.String(), "buffer", out.BufferSize())...)
	s.emit(log.StreamOpen, requested, 1)
	return s, nil
}

// primaryOutput returns the open stream on the primary mix port, or the
// first open output when no stream uses it. Call with outputMu held.
func (m *Module) primaryOutput() *Stream {
	for _, s := range m.outputs {
		if s.IsPrimary() {
			return s
		}
	}
	if len(m.outputs) > 0 {
		return m.outputs[0]
	}
	return nil
}

// OpenInput opens an input stream. The mix port is chosen by the current
// mode, falling back to req.Mix.
func (m *Module) OpenInput(req StreamRequest) (*Stream, error) {
	m.inputMu.Lock()
	defer m.inputMu.Unlock()

	if err := m.checkPort(req.Mix, audio.DirectionInput); err != nil {
		return nil, err
	}
	if err := m.checkPort(req.Device, audio.DirectionInput); err != nil {
		return nil, err
	}

	s := &Stream{
		module:     m,
		direction:  audio.DirectionInput,
		mix:        m.PreferredInputMix(req.Mix),
		defaultMix: req.Mix,
		device:     req.Device,
		source:     req.Source,
	}
	if err := m.openInput(s, req.Spec, req.Channels, false); err != nil {
		return nil, err
	}
	m.inputs = append(m.inputs, s)
	return s, nil
}

// defaultInputSpec is the last resort configuration for input opens.
func defaultInputSpec() (sample.Spec, sample.ChannelMap) {
	p := config.DefaultProfile(audio.DirectionInput)
	format, _ := sample.FormatFromHAL(p.Format)
	channels := sample.ChannelMapFromMask(audio.DirectionInput, p.ChannelMasks[0])
	return sample.Spec{Format: format, Rate: p.SamplingRates[0], Channels: uint8(len(channels))}, channels
}

// openInput opens the driver stream for s. A rejected configuration is
// retried once with the values the driver suggests and then once with the
// default spec. Call with inputMu held.
func (m *Module) openInput(s *Stream, spec sample.Spec, channels sample.ChannelMap, resuming bool) error {
	neg, err := CompatiblePort(s.mix, spec, channels)
	if err != nil {
		m.logger.Error("No compatible input profile", "mix_port", s.mix.Name, "spec", spec.String(), "error", err)
		m.emitError(audio.DirectionInput, "CompatiblePort", err, s.mix.Name)
		return err
	}

	cur, curMap := neg.Spec, neg.Channels
	triedSuggested, triedDefault := false, false
	attempts := 0
	for {
		attempts++
		cfg, err := halConfig(cur, curMap, audio.DirectionInput)
		if err != nil {
			m.logger.Error("Cannot convert input channel map", "mix_port", s.mix.Name, "channels", curMap.String(), "error", err)
			return err
		}
		requested := cfg
		handle := m.nextHandle()

		in, openErr := m.driver.OpenInputStream(handle, s.device.DeviceType, &cfg, s.mix.InputFlags(), s.device.Address, s.source)
		if openErr == nil {
			s.handle = handle
			s.in = in
			s.spec = cur
			s.channels = curMap
			s.mask = cfg.ChannelMask
			if rate := in.SampleRate(); rate != cur.Rate {
				m.logger.Warn("Driver changed input sample rate", append(s.logAttrs(), "requested", cur.Rate, "actual", rate)...)
				s.spec.Rate = rate
			}
			break
		}

		if !triedSuggested && cfg != requested {
			triedSuggested = true
			suggested, suggestedMap, convErr := specFromConfig(cfg, audio.DirectionInput)
			if convErr == nil {
				m.logger.Debug("Retrying input with suggested config", "mix_port", s.mix.Name, "spec", suggested.String())
				cur, curMap = suggested, suggestedMap
				continue
			}
		}
		if !triedDefault {
			triedDefault = true
			cur, curMap = defaultInputSpec()
			m.logger.Debug("Retrying input with default config", "mix_port", s.mix.Name, "spec", cur.String())
			continue
		}

		level := slog.LevelError
		if resuming {
			level = slog.LevelInfo
		}
		m.logger.Log(context.Background(), level, "Failed to open input stream", append(s.logAttrs(), "attempts", attempts, "error", openErr)...)
		m.emitError(audio.DirectionInput, "OpenInputStream", openErr, s.mix.Name)
		return fmt.Errorf("open input stream on %q: %w", s.mix.Name, openErr)
	}

	s.standby = false
	s.reconfigure = false
	if err := m.routeStream(s, s.device); err != nil {
		m.logger.Warn("Failed to route input stream", append(s.logAttrs(), "error", err)...)
	}

	action := log.StreamOpen
	if resuming {
		action = log.StreamResume
	}
	m.logger.Info("Input stream opened", append(s.logAttrs(), "spec", s.spec.String(), "attempts", attempts)...)
	var requestedRate uint32
	if s.spec.Rate != cur.Rate {
		requestedRate = cur.Rate
	}
	s.emit(action, requestedRate, attempts)
	return nil
}

// specFromConfig converts a driver configuration back into a sample spec.
func specFromConfig(cfg hal.Config, dir audio.Direction) (sample.Spec, sample.ChannelMap, error) {
	format, err := sample.FormatFromHAL(cfg.Format)
	if err != nil {
		return sample.Spec{}, nil, err
	}
	channels := sample.ChannelMapFromMask(dir, cfg.ChannelMask)
	if len(channels) == 0 || cfg.SampleRate == 0 {
		return sample.Spec{}, nil, fmt.Errorf("%w: %+v", sample.ErrInvalidSpec, cfg)
	}
	return sample.Spec{Format: format, Rate: cfg.SampleRate, Channels: uint8(len(channels))}, channels, nil
}

// closeDriverStream releases the patch and closes the driver stream of s.
// Call with the path mutex held.
func (m *Module) closeDriverStream(s *Stream) {
	m.releasePatch(s)
	switch {
	case s.out != nil:
		m.driver.CloseOutputStream(s.out)
		s.out = nil
	case s.in != nil:
		m.driver.CloseInputStream(s.in)
		s.in = nil
	}
}

// Close closes the stream. Closing a closed stream is a no-op.
func (s *Stream) Close() error {
	m := s.module
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()

	if s.closed {
		return nil
	}
	m.closeDriverStream(s)
	s.closed = true

	if s.direction == audio.DirectionInput {
		m.inputs = removeStream(m.inputs, s)
	} else {
		m.outputs = removeStream(m.outputs, s)
	}

	m.logger.Info("Stream closed", s.logAttrs()...)
	s.emit(log.StreamClose, 0, 0)
	return nil
}

func removeStream(list []*Stream, s *Stream) []*Stream {
	for i, x := range list {
		if x == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Standby puts the stream in standby. Input streams are closed in the
// driver and reopened by Resume.
func (s *Stream) Standby() error {
	m := s.module
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	if s.standby {
		return nil
	}

	var err error
	if s.out != nil {
		err = s.out.Standby()
	} else if s.in != nil {
		err = s.in.Standby()
		m.closeDriverStream(s)
	}
	if err != nil {
		m.logger.Warn("Standby failed", append(s.logAttrs(), "error", err)...)
	}
	s.standby = true
	s.emit(log.StreamStandby, 0, 0)
	return nil
}

// Resume leaves standby. Input streams are reopened with their last
// negotiated spec; failures are logged at info level.
func (s *Stream) Resume() error {
	m := s.module
	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	if !s.standby {
		return nil
	}
	if s.direction == audio.DirectionInput {
		return m.openInput(s, s.spec, s.channels, true)
	}
	s.standby = false
	s.emit(log.StreamResume, 0, 0)
	return nil
}

// Reconfigure reopens an input stream on the mix port preferred by the
// current mode.
func (s *Stream) Reconfigure() error {
	m := s.module
	if s.direction != audio.DirectionInput {
		return fmt.Errorf("%w: only input streams are reconfigured", ErrWrongDirection)
	}

	mu := s.pathLock()
	mu.Lock()
	defer mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	m.closeDriverStream(s)
	prev := s.mix
	s.mix = m.PreferredInputMix(s.defaultMix)
	m.logger.Info("Reconfiguring input stream", "from", prev.Name, "to", s.mix.Name)
	if err := m.openInput(s, s.spec, s.channels, false); err != nil {
		s.standby = true
		return err
	}
	s.emit(log.StreamReconfigure, 0, 0)
	return nil
}

// Write writes samples to an output stream.
func (s *Stream) Write(p []byte) (int, error) {
	mu := s.pathLock()
	mu.Lock()
	out := s.out
	if out != nil {
		s.standby = false
	}
	mu.Unlock()

	if out == nil {
		return 0, ErrStreamClosed
	}
	return out.Write(p)
}

// Read reads samples from an input stream.
func (s *Stream) Read(p []byte) (int, error) {
	mu := s.pathLock()
	mu.Lock()
	in := s.in
	mu.Unlock()

	if in == nil {
		if s.InStandby() {
			return 0, ErrStandby
		}
		return 0, ErrStreamClosed
	}
	return in.Read(p)
}
