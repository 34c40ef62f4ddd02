package routing

import (
	"fmt"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
)

// DefaultProfileName is the name of the profile built from a module.
const DefaultProfileName = "default"

// Port priorities.
const (
	// PriorityBase is the priority of a routing port before boosts.
	PriorityBase uint32 = 100
	// PriorityTier is added when the device is attached, and again when
	// it is the default output.
	PriorityTier uint32 = 100
	// PriorityParking is the priority of parking ports.
	PriorityParking = PriorityBase / 2
)

// Port is a routing-layer port. Device ports with the same fancy name share
// one Port.
type Port struct {
	Name        string
	Description string
	Direction   audio.Direction
	DeviceType  audio.DeviceType
	Priority    uint32

	// Device is the configuration port behind this port, nil for parking
	// ports.
	Device *config.Port

	// Mapping is the mapping that created the port.
	Mapping *Mapping
}

// IsParking reports whether p is a parking port.
func (p *Port) IsParking() bool {
	return p.Device == nil
}

// Mapping associates a mix port with every device port it can route to.
type Mapping struct {
	Profile   *Profile
	Direction audio.Direction
	Mix       *config.Port
	Devices   []*config.Port
	Ports     []*Port
}

// Name returns the mix port name the mapping is keyed by.
func (m *Mapping) Name() string {
	return m.Mix.Name
}

// HasDevice reports whether the mapping routes to a device of type t.
func (m *Mapping) HasDevice(t audio.DeviceType) bool {
	return m.FindDevice(t) != nil
}

// FindDevice returns the first device port of type t.
func (m *Mapping) FindDevice(t audio.DeviceType) *config.Port {
	for _, d := range m.Devices {
		if d.DeviceType == t {
			return d
		}
	}
	return nil
}

// Parking returns the parking port of the mapping.
func (m *Mapping) Parking() *Port {
	for _, p := range m.Ports {
		if p.IsParking() {
			return p
		}
	}
	return nil
}

func (m *Mapping) addPort(p *Port) {
	for _, q := range m.Ports {
		if q == p {
			return
		}
	}
	m.Ports = append(m.Ports, p)
}

// Profile is a named group of output and input mappings.
type Profile struct {
	Name   string
	Module *config.Module

	outputs []*Mapping
	inputs  []*Mapping
	byName  [2]map[string]*Mapping
}

func newProfile(name string, m *config.Module) *Profile {
	return &Profile{
		Name:   name,
		Module: m,
		byName: [2]map[string]*Mapping{make(map[string]*Mapping), make(map[string]*Mapping)},
	}
}

// Outputs returns the output mappings in discovery order.
func (p *Profile) Outputs() []*Mapping { return p.outputs }

// Inputs returns the input mappings in discovery order.
func (p *Profile) Inputs() []*Mapping { return p.inputs }

// Mappings returns the mappings of direction dir.
func (p *Profile) Mappings(dir audio.Direction) []*Mapping {
	if dir == audio.DirectionInput {
		return p.inputs
	}
	return p.outputs
}

// Mapping returns the mapping of direction dir keyed by mix port name.
func (p *Profile) Mapping(dir audio.Direction, mixName string) *Mapping {
	return p.byName[dir][mixName]
}

// ProfileSet is the routing graph of one module.
type ProfileSet struct {
	Module *config.Module

	profiles []*Profile
	ports    []*Port
	byName   map[string]*Port
}

// NewProfileSet builds the routing graph of m. It panics if a route pairs
// two ports of the same type, which resolved configurations never contain.
func NewProfileSet(m *config.Module) *ProfileSet {
	s := &ProfileSet{Module: m, byName: make(map[string]*Port)}
	p := newProfile(DefaultProfileName, m)
	s.profiles = append(s.profiles, p)

	for _, r := range m.Routes {
		sink := m.RouteSink(r)
		if sink == nil {
			continue
		}
		for _, src := range m.RouteSources(r) {
			s.updateMapping(p, src, sink)
		}
	}
	return s
}

// Profiles returns the profiles of the set.
func (s *ProfileSet) Profiles() []*Profile { return s.profiles }

// Profile returns the profile named name.
func (s *ProfileSet) Profile(name string) *Profile {
	for _, p := range s.profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Default returns the default profile.
func (s *ProfileSet) Default() *Profile {
	return s.Profile(DefaultProfileName)
}

// Ports returns every routing port in creation order.
func (s *ProfileSet) Ports() []*Port { return s.ports }

// Port returns the routing port with the given fancy name.
func (s *ProfileSet) Port(name string) *Port { return s.byName[name] }

// PortNames returns the names of all routing ports in creation order.
func (s *ProfileSet) PortNames() []string {
	names := make([]string, len(s.ports))
	for i, p := range s.ports {
		names[i] = p.Name
	}
	return names
}

func (s *ProfileSet) updateMapping(p *Profile, src, sink *config.Port) {
	var (
		mix, dev *config.Port
		dir      audio.Direction
	)
	switch {
	case src.IsMix() && sink.IsDevice():
		mix, dev, dir = src, sink, audio.DirectionOutput
	case src.IsDevice() && sink.IsMix():
		mix, dev, dir = sink, src, audio.DirectionInput
	default:
		panic(fmt.Sprintf("routing: route %q -> %q in module %q pairs two %s ports",
			src.Name, sink.Name, s.Module.Name, src.Type))
	}

	m := p.byName[dir][mix.Name]
	if m == nil {
		m = &Mapping{Profile: p, Direction: dir, Mix: mix}
		p.byName[dir][mix.Name] = m
		if dir == audio.DirectionOutput {
			p.outputs = append(p.outputs, m)
		} else {
			p.inputs = append(p.inputs, m)
		}
		m.addPort(s.parkingPort(dir, m))
	}

	for _, d := range m.Devices {
		if d == dev {
			return
		}
	}
	m.Devices = append(m.Devices, dev)
	m.addPort(s.devicePort(dev, m))
}

func (s *ProfileSet) add(p *Port) *Port {
	s.ports = append(s.ports, p)
	s.byName[p.Name] = p
	return p
}

func (s *ProfileSet) parkingPort(dir audio.Direction, m *Mapping) *Port {
	name := audio.OutputParkingName
	if dir == audio.DirectionInput {
		name = audio.InputParkingName
	}
	if p := s.byName[name]; p != nil {
		return p
	}
	return s.add(&Port{
		Name:        name,
		Description: "Parking port",
		Direction:   dir,
		Priority:    PriorityParking,
		Mapping:     m,
	})
}

// FancyName returns the routing port name of a device port.
func FancyName(d *config.Port) string {
	if name, ok := audio.FancyDeviceName(d.DeviceType); ok {
		return name
	}
	return d.Direction().String() + "-" + d.Name
}

func (s *ProfileSet) devicePort(d *config.Port, m *Mapping) *Port {
	name := FancyName(d)
	if p := s.byName[name]; p != nil {
		return p
	}
	return s.add(&Port{
		Name:        name,
		Description: d.Name,
		Direction:   d.Direction(),
		DeviceType:  d.DeviceType,
		Priority:    s.priority(d),
		Device:      d,
		Mapping:     m,
	})
}

func (s *ProfileSet) priority(d *config.Port) uint32 {
	prio := PriorityBase
	if s.Module.IsAttached(d.DeviceType) {
		prio += PriorityTier
	}
	if d.Direction() == audio.DirectionOutput {
		if def := s.Module.DefaultOutput(); def != nil && def.DeviceType == d.DeviceType {
			prio += PriorityTier
		}
	}
	return prio
}
