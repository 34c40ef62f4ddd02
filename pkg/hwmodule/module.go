package hwmodule

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/log"
	"github.com/droidaudio/droid-go/pkg/routing"
)

// Module is an opened hardware module.
type Module struct {
	// ID is the module name in the hardware description.
	ID string

	// InstanceID identifies this opening of the module in events.
	InstanceID uuid.UUID

	registry *Registry
	refs     int // guarded by registry.mu

	driver   hal.Device
	hw       *config.Device
	enabled  *config.Module
	profiles *routing.ProfileSet

	logger *slog.Logger
	events log.Logger

	// mu serialises module wide driver calls.
	mu   sync.Mutex
	mode audio.Mode

	outputMu     sync.Mutex
	outputs      []*Stream
	outputDevice *config.Port

	inputMu sync.Mutex
	inputs  []*Stream

	lastHandle atomic.Int32
}

// Release drops the caller's reference to the module.
func (m *Module) Release() error {
	return m.registry.Release(m)
}

// Config returns the module's private configuration.
func (m *Module) Config() *config.Module { return m.enabled }

// Profiles returns the routing graph of the module.
func (m *Module) Profiles() *routing.ProfileSet { return m.profiles }

func (m *Module) nextHandle() hal.IOHandle {
	return hal.IOHandle(m.lastHandle.Add(1))
}

func (m *Module) emit(e log.Event) {
	e.Timestamp = time.Now()
	e.ModuleID = m.InstanceID.String()
	e.Module = m.ID
	m.events.Log(e)
}

func (m *Module) emitError(dir audio.Direction, op string, err error, context string) {
	code := hal.Code(err)
	m.emit(log.Event{
		Direction: eventDirection(dir),
		Category:  log.CategoryError,
		Error:     &log.ErrorEventData{Op: op, Message: err.Error(), Code: &code, Context: context},
	})
}

func eventDirection(dir audio.Direction) log.Direction {
	if dir == audio.DirectionInput {
		return log.DirectionInput
	}
	return log.DirectionOutput
}

// checkPort verifies p belongs to the enabled configuration and carries
// audio in direction dir.
func (m *Module) checkPort(p *config.Port, dir audio.Direction) error {
	if p == nil || !m.enabled.HasPort(p) {
		name := "<nil>"
		if p != nil {
			name = p.Name
		}
		return fmt.Errorf("%w: %q", ErrStalePort, name)
	}
	if p.Direction() != dir {
		return fmt.Errorf("%w: %q is %s", ErrWrongDirection, p.Name, p.Direction())
	}
	return nil
}

// Mode returns the current audio mode.
func (m *Module) Mode() audio.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// SetMode switches the driver to mode. Input streams whose preferred mix
// port changes are marked as needing reconfiguration.
func (m *Module) SetMode(mode audio.Mode) error {
	m.mu.Lock()
	if err := m.driver.SetMode(mode); err != nil {
		m.mu.Unlock()
		m.logger.Error("Failed to set mode", "mode", mode.String(), "error", err)
		m.emitError(audio.DirectionOutput, "SetMode", err, mode.String())
		return fmt.Errorf("set mode %s: %w", mode, err)
	}
	old := m.mode
	m.mode = mode
	m.mu.Unlock()

	m.inputMu.Lock()
	marked := 0
	for _, s := range m.inputs {
		if s.closed {
			continue
		}
		if m.preferredInputMix(mode, s.defaultMix) != s.mix {
			s.reconfigure = true
			marked++
		}
	}
	m.inputMu.Unlock()

	m.logger.Info("Mode changed", "old", old.String(), "new", mode.String(), "reconfigure", marked)
	m.emit(log.Event{
		Category: log.CategoryMode,
		Mode:     &log.ModeEvent{OldMode: old.String(), NewMode: mode.String(), Reconfigure: marked},
	})
	return nil
}

// preferredInputMix picks the input mix port for mode. Communication mode
// prefers a VoIP capture port, in-call mode the port fed by the telephony
// receive device. Otherwise, or when no such port exists, def is used.
func (m *Module) preferredInputMix(mode audio.Mode, def *config.Port) *config.Port {
	switch mode {
	case audio.ModeInCommunication:
		for _, p := range m.enabled.MixPortList() {
			if p.Direction() == audio.DirectionInput && p.InputFlags()&audio.InputFlagVoipTx != 0 {
				return p
			}
		}
	case audio.ModeInCall:
		for _, r := range m.enabled.Routes {
			sink := m.enabled.RouteSink(r)
			if sink == nil || !sink.IsMix() || sink.Direction() != audio.DirectionInput {
				continue
			}
			for _, src := range m.enabled.RouteSources(r) {
				if src.IsDevice() && src.DeviceType == audio.DeviceInTelephonyRx {
					return sink
				}
			}
		}
	}
	return def
}

// PreferredInputMix returns the input mix port a new capture stream would
// use in the current mode, def when the mode has no preference.
func (m *Module) PreferredInputMix(def *config.Port) *config.Port {
	return m.preferredInputMix(m.Mode(), def)
}

// SetVoiceVolume sets the call volume (0..1).
func (m *Module) SetVoiceVolume(volume float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.driver.SetVoiceVolume(volume); err != nil {
		m.logger.Warn("Failed to set voice volume", "volume", volume, "error", err)
		return fmt.Errorf("set voice volume: %w", err)
	}
	return nil
}

// SetMicMute mutes or unmutes all capture.
func (m *Module) SetMicMute(mute bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.driver.SetMicMute(mute); err != nil {
		m.logger.Warn("Failed to set mic mute", "mute", mute, "error", err)
		return fmt.Errorf("set mic mute: %w", err)
	}
	return nil
}

// MicMute reports whether capture is muted.
func (m *Module) MicMute() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.driver.GetMicMute()
}

// SetParameters passes "k=v;..." parameters to the driver.
func (m *Module) SetParameters(kv string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setParametersLocked(kv)
}

func (m *Module) setParametersLocked(kv string) error {
	m.logger.Debug("Set parameters", "parameters", kv)
	if err := m.driver.SetParameters(kv); err != nil {
		m.logger.Warn("Failed to set parameters", "parameters", kv, "error", err)
		return fmt.Errorf("set parameters %q: %w", kv, err)
	}
	return nil
}

// GetParameters queries "k1;k2" parameters from the driver.
func (m *Module) GetParameters(keys string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.driver.GetParameters(keys)
}

// Outputs returns the open output streams in open order.
func (m *Module) Outputs() []*Stream {
	m.outputMu.Lock()
	defer m.outputMu.Unlock()
	return append([]*Stream(nil), m.outputs...)
}

// Inputs returns the open input streams in open order.
func (m *Module) Inputs() []*Stream {
	m.inputMu.Lock()
	defer m.inputMu.Unlock()
	return append([]*Stream(nil), m.inputs...)
}

// OutputDevice returns the device port outputs are routed to.
func (m *Module) OutputDevice() *config.Port {
	m.outputMu.Lock()
	defer m.outputMu.Unlock()
	return m.outputDevice
}
