package hwmodule

import (
	"fmt"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/log"
)

func streamPatch(s *Stream, device *config.Port) *hal.Patch {
	if s.direction == audio.DirectionInput {
		mix := hal.MixPortConfig(hal.RoleSink, s.handle)
		mix.Source = s.source
		return &hal.Patch{
			Sources: []hal.PortConfig{hal.DevicePortConfig(hal.RoleSource, device.DeviceType, device.Address)},
			Sinks:   []hal.PortConfig{mix},
		}
	}
	return &hal.Patch{
		Sources: []hal.PortConfig{hal.MixPortConfig(hal.RoleSource, s.handle)},
		Sinks:   []hal.PortConfig{hal.DevicePortConfig(hal.RoleSink, device.DeviceType, device.Address)},
	}
}

// releasePatch releases the patch of s, if any. Call with the path mutex
// held.
func (m *Module) releasePatch(s *Stream) {
	if s.patch == hal.NoPatch {
		return
	}
	if err := m.driver.ReleaseAudioPatch(s.patch); err != nil {
		m.logger.Warn("Failed to release audio patch", append(s.logAttrs(), "patch", int(s.patch), "error", err)...)
	}
	s.patch = hal.NoPatch
}

// routeStream replaces the patch of s with one to device. Call with the
// path mutex held.
func (m *Module) routeStream(s *Stream, device *config.Port) error {
	m.releasePatch(s)
	h, err := m.driver.CreateAudioPatch(streamPatch(s, device))
	if err != nil {
		m.emitError(s.direction, "CreateAudioPatch", err, device.Name)
		return fmt.Errorf("create audio patch to %q: %w", device.Name, err)
	}
	s.patch = h
	s.device = device
	return nil
}

func isSCO(p *config.Port) bool {
	return p != nil && p.DeviceType&audio.DeviceOutAllSCO != 0
}

// SetOutputRoute routes all open outputs to device. Existing patches are
// released first; the primary output is routed next and only when that
// succeeds do the other outputs follow. Entering or leaving a bluetooth
// SCO device toggles the BT_SCO driver parameter.
func (m *Module) SetOutputRoute(device *config.Port) error {
	m.outputMu.Lock()
	defer m.outputMu.Unlock()

	if err := m.checkPort(device, audio.DirectionOutput); err != nil {
		return err
	}
	if !device.IsDevice() {
		return fmt.Errorf("%w: %q is not a device port", ErrStalePort, device.Name)
	}

	old := m.outputDevice
	if isSCO(old) != isSCO(device) {
		value := hal.ValueOff
		if isSCO(device) {
			value = hal.ValueOn
		}
		m.mu.Lock()
		err := m.setParametersLocked(hal.FormatParameters(map[string]string{hal.KeyBluetoothSCO: value}))
		m.mu.Unlock()
		if err != nil {
			m.emitError(audio.DirectionOutput, "SetParameters", err, device.Name)
		}
	}

	primary := m.primaryOutput()
	if primary == nil {
		m.outputDevice = device
		m.logger.Debug("Output route set with no open outputs", "device_port", device.Name)
		m.emitRoute(old, device, hal.NoPatch, 0)
		return nil
	}

	for _, s := range m.outputs {
		m.releasePatch(s)
	}

	if err := m.routeStream(primary, device); err != nil {
		m.logger.Error("Failed to route primary output", append(primary.logAttrs(), "target", device.Name, "error", err)...)
		return err
	}

	mirrored := 0
	for _, s := range m.outputs {
		if s == primary {
			continue
		}
		if err := m.routeStream(s, device); err != nil {
			m.logger.Warn("Failed to mirror output route", append(s.logAttrs(), "target", device.Name, "error", err)...)
			continue
		}
		mirrored++
	}
	m.outputDevice = device

	m.logger.Info("Output route changed", "from", portName(old), "to", device.Name, "mirrored", mirrored)
	m.emitRoute(old, device, primary.patch, mirrored)
	return nil
}

// SetInputRoute routes input stream s to device.
func (m *Module) SetInputRoute(s *Stream, device *config.Port) error {
	m.inputMu.Lock()
	defer m.inputMu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	if err := m.checkPort(device, audio.DirectionInput); err != nil {
		return err
	}
	old := s.device
	if s.in == nil {
		// Routed when the stream resumes.
		s.device = device
		return nil
	}
	if err := m.routeStream(s, device); err != nil {
		m.logger.Error("Failed to route input", append(s.logAttrs(), "target", device.Name, "error", err)...)
		return err
	}
	m.logger.Info("Input route changed", "from", portName(old), "to", device.Name)
	m.emit(log.Event{
		Direction: log.DirectionInput,
		Category:  log.CategoryRoute,
		StreamID:  int32(s.handle),
		Route:     &log.RouteEvent{OldDevice: portName(old), NewDevice: device.Name, Patch: int32(s.patch)},
	})
	return nil
}

func (m *Module) emitRoute(old, device *config.Port, patch hal.PatchHandle, mirrored int) {
	m.emit(log.Event{
		Direction: log.DirectionOutput,
		Category:  log.CategoryRoute,
		Route: &log.RouteEvent{
			OldDevice: portName(old),
			NewDevice: device.Name,
			Patch:     int32(patch),
			Mirrored:  mirrored,
		},
	})
}

func portName(p *config.Port) string {
	if p == nil {
		return ""
	}
	return p.Name
}
