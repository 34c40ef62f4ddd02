package hwmodule

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/log"
	"github.com/droidaudio/droid-go/pkg/routing"
)

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	// Driver is the name of the registered hal driver modules are opened
	// with.
	Driver string

	// Logger is the optional logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Events receives routing events (optional).
	Events log.Logger
}

// Registry opens hardware modules on demand and shares them between
// users. It is safe for concurrent use.
type Registry struct {
	hw     *config.Device
	driver string
	logger *slog.Logger
	events log.Logger

	mu      sync.Mutex
	modules map[string]*Module
}

// NewRegistry returns a registry opening modules described by hw.
func NewRegistry(hw *config.Device, cfg RegistryConfig) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events := cfg.Events
	if events == nil {
		events = log.NoopLogger{}
	}
	return &Registry{
		hw:      hw,
		driver:  cfg.Driver,
		logger:  logger,
		events:  events,
		modules: make(map[string]*Module),
	}
}

// GetOrOpen returns the open module id, opening it if needed. Every
// successful call must be paired with a Release.
func (r *Registry) GetOrOpen(id string) (*Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.modules[id]; ok {
		m.refs++
		return m, nil
	}

	if r.hw.Module(id) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}

	dev, err := hal.Open(r.driver, id)
	if err != nil {
		r.logger.Error("Failed to open hardware module", "module", id, "driver", r.driver, "error", err)
		return nil, err
	}

	// The module works on its own copy so routing state never leaks
	// between instances.
	hw := r.hw.Dup()
	enabled := hw.Module(id)

	m := &Module{
		ID:         id,
		InstanceID: uuid.New(),
		registry:   r,
		refs:       1,
		driver:     dev,
		hw:         hw,
		enabled:    enabled,
		profiles:   routing.NewProfileSet(enabled),
		events:     r.events,
	}
	m.logger = r.logger.With("module", id)
	if p := enabled.DefaultOutput(); p != nil {
		m.outputDevice = p
	}
	r.modules[id] = m

	m.logger.Info("Hardware module opened",
		"instance", m.InstanceID.String(),
		"hal_version", enabled.HalVersion().String(),
		"ports", len(enabled.Ports),
		"routes", len(enabled.Routes))
	return m, nil
}

// Lookup returns the open module id without taking a reference.
func (r *Registry) Lookup(id string) *Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modules[id]
}

// Release drops a reference to m. The driver is closed with the last
// reference; it panics if streams are still open at that point.
func (r *Registry) Release(m *Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.modules[m.ID] != m {
		return fmt.Errorf("%w: %q not open", ErrUnknownModule, m.ID)
	}
	m.refs--
	if m.refs > 0 {
		return nil
	}

	m.outputMu.Lock()
	outputs := len(m.outputs)
	m.outputMu.Unlock()
	m.inputMu.Lock()
	inputs := len(m.inputs)
	m.inputMu.Unlock()
	if outputs != 0 || inputs != 0 {
		panic(fmt.Sprintf("hwmodule: releasing module %q with %d outputs and %d inputs open", m.ID, outputs, inputs))
	}

	delete(r.modules, m.ID)
	m.logger.Info("Hardware module closed", "instance", m.InstanceID.String())
	return m.driver.Close()
}
