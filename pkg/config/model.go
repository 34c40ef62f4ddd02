package config

import (
	"sort"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/version"
)

// Role is the role of a port in a route.
type Role uint8

const (
	// RoleSink consumes audio.
	RoleSink Role = 0
	// RoleSource produces audio.
	RoleSource Role = 1
)

// String returns the configuration spelling of the role.
func (r Role) String() string {
	switch r {
	case RoleSink:
		return "sink"
	case RoleSource:
		return "source"
	default:
		return "unknown"
	}
}

// ParseRole parses "sink" or "source".
func ParseRole(s string) (Role, bool) {
	switch s {
	case "sink":
		return RoleSink, true
	case "source":
		return RoleSource, true
	default:
		return 0, false
	}
}

// PortType distinguishes device ports from mix ports.
type PortType uint8

const (
	// PortTypeDevice is a hardware device endpoint.
	PortTypeDevice PortType = 0
	// PortTypeMix is a HAL stream endpoint.
	PortTypeMix PortType = 1
)

// String returns the port type name.
func (t PortType) String() string {
	switch t {
	case PortTypeDevice:
		return "device"
	case PortTypeMix:
		return "mix"
	default:
		return "unknown"
	}
}

// PortID indexes Module.Ports.
type PortID int

// NoPort is the PortID of an absent port.
const NoPort PortID = -1

// GlobalConfig is a free-form vendor property.
type GlobalConfig struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Profile is one set of formats, rates and channel masks a port supports.
type Profile struct {
	Name          string
	Format        audio.Format
	SamplingRates []uint32
	ChannelMasks  []audio.ChannelMask
}

// DefaultProfile is assigned to device ports that declare no profile.
func DefaultProfile(dir audio.Direction) *Profile {
	mask := audio.ChannelOutStereo
	if dir == audio.DirectionInput {
		mask = audio.ChannelInStereo
	}
	return &Profile{
		Name:          "default",
		Format:        audio.FormatPCM16Bit,
		SamplingRates: []uint32{48000},
		ChannelMasks:  []audio.ChannelMask{mask},
	}
}

func (p *Profile) dup() *Profile {
	c := *p
	c.SamplingRates = append([]uint32(nil), p.SamplingRates...)
	c.ChannelMasks = append([]audio.ChannelMask(nil), p.ChannelMasks...)
	return &c
}

// Port is a mix port or a device port.
type Port struct {
	ID     PortID
	Module *Module
	Type   PortType
	Name   string
	Role   Role

	Profiles []*Profile

	// Device ports.
	DeviceType audio.DeviceType
	Address    string

	// Mix ports. Flags holds output flags for output mix ports and input
	// flags for input mix ports.
	Flags          uint32
	MaxOpenCount   int
	MaxActiveCount int
}

// IsMix reports whether p is a mix port.
func (p *Port) IsMix() bool { return p.Type == PortTypeMix }

// IsDevice reports whether p is a device port.
func (p *Port) IsDevice() bool { return p.Type == PortTypeDevice }

// Direction returns the HAL side the port lives on. A source mix port and a
// sink device port are on the output side.
func (p *Port) Direction() audio.Direction {
	if (p.Type == PortTypeMix) == (p.Role == RoleSource) {
		return audio.DirectionOutput
	}
	return audio.DirectionInput
}

// OutputFlags returns the mix port flags as output flags.
func (p *Port) OutputFlags() audio.OutputFlags { return audio.OutputFlags(p.Flags) }

// InputFlags returns the mix port flags as input flags.
func (p *Port) InputFlags() audio.InputFlags { return audio.InputFlags(p.Flags) }

// Formats returns the distinct profile formats of the port, sorted.
func (p *Port) Formats() []audio.Format {
	seen := make(map[audio.Format]bool)
	var out []audio.Format
	for _, prof := range p.Profiles {
		if !seen[prof.Format] {
			seen[prof.Format] = true
			out = append(out, prof.Format)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RouteType is the kind of a route.
type RouteType uint8

const (
	// RouteMix mixes all sources into the sink.
	RouteMix RouteType = 0
	// RouteMux selects one source at a time.
	RouteMux RouteType = 1
)

// String returns the configuration spelling of the route type.
func (t RouteType) String() string {
	if t == RouteMux {
		return "mux"
	}
	return "mix"
}

// Route says that Sink can be fed by any of Sources.
type Route struct {
	Type    RouteType
	Sink    PortID
	Sources []PortID
}

// Module is one vendor hardware module ("primary", "a2dp", ...).
type Module struct {
	Name    string
	Version uint32

	AttachedDevices     []PortID
	DefaultOutputDevice PortID

	Ports       []*Port
	MixPorts    []PortID
	DevicePorts []PortID
	Routes      []*Route
}

// NewModule creates an empty module.
func NewModule(name string, v version.Version) *Module {
	return &Module{
		Name:                name,
		Version:             v.Encode(),
		DefaultOutputDevice: NoPort,
	}
}

// HalVersion returns the decoded HAL version of the module.
func (m *Module) HalVersion() version.Version {
	return version.Decode(m.Version)
}

func (m *Module) addPort(p *Port) PortID {
	p.ID = PortID(len(m.Ports))
	p.Module = m
	m.Ports = append(m.Ports, p)
	return p.ID
}

// AddMixPort adds a mix port to the module.
func (m *Module) AddMixPort(p *Port) PortID {
	p.Type = PortTypeMix
	id := m.addPort(p)
	m.MixPorts = append(m.MixPorts, id)
	return id
}

// AddDevicePort adds a device port to the module.
func (m *Module) AddDevicePort(p *Port) PortID {
	p.Type = PortTypeDevice
	id := m.addPort(p)
	m.DevicePorts = append(m.DevicePorts, id)
	return id
}

// Port returns the port with the given id, or nil.
func (m *Module) Port(id PortID) *Port {
	if id < 0 || int(id) >= len(m.Ports) {
		return nil
	}
	return m.Ports[id]
}

// FindPort returns the first port named name in the unified port list.
func (m *Module) FindPort(name string) *Port {
	for _, p := range m.Ports {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindMixPort returns the mix port named name.
func (m *Module) FindMixPort(name string) *Port {
	for _, id := range m.MixPorts {
		if p := m.Ports[id]; p.Name == name {
			return p
		}
	}
	return nil
}

// FindDevicePort returns the device port named name.
func (m *Module) FindDevicePort(name string) *Port {
	for _, id := range m.DevicePorts {
		if p := m.Ports[id]; p.Name == name {
			return p
		}
	}
	return nil
}

// FindDevicePortByType returns the first device port of the given type.
func (m *Module) FindDevicePortByType(t audio.DeviceType) *Port {
	for _, id := range m.DevicePorts {
		if p := m.Ports[id]; p.DeviceType == t {
			return p
		}
	}
	return nil
}

// HasPort reports whether p is one of the module's own ports. Ports of a
// duplicated module are different objects and do not match.
func (m *Module) HasPort(p *Port) bool {
	if p == nil {
		return false
	}
	q := m.Port(p.ID)
	return q == p
}

// MixPortList returns the mix ports in declaration order.
func (m *Module) MixPortList() []*Port { return m.resolve(m.MixPorts) }

// DevicePortList returns the device ports in declaration order.
func (m *Module) DevicePortList() []*Port { return m.resolve(m.DevicePorts) }

// Attached returns the attached device ports.
func (m *Module) Attached() []*Port { return m.resolve(m.AttachedDevices) }

// DefaultOutput returns the default output device port, or nil.
func (m *Module) DefaultOutput() *Port { return m.Port(m.DefaultOutputDevice) }

// IsAttached reports whether a device port of type t is attached.
func (m *Module) IsAttached(t audio.DeviceType) bool {
	for _, p := range m.Attached() {
		if p.DeviceType == t {
			return true
		}
	}
	return false
}

// AttachDevice marks a device port as attached. Duplicates are ignored.
func (m *Module) AttachDevice(id PortID) {
	for _, a := range m.AttachedDevices {
		if a == id {
			return
		}
	}
	m.AttachedDevices = append(m.AttachedDevices, id)
}

// RouteSink returns the sink port of r.
func (m *Module) RouteSink(r *Route) *Port { return m.Port(r.Sink) }

// RouteSources returns the source ports of r.
func (m *Module) RouteSources(r *Route) []*Port { return m.resolve(r.Sources) }

// RoutesTo returns the routes whose sink is p.
func (m *Module) RoutesTo(p *Port) []*Route {
	var out []*Route
	for _, r := range m.Routes {
		if r.Sink == p.ID {
			out = append(out, r)
		}
	}
	return out
}

func (m *Module) resolve(ids []PortID) []*Port {
	out := make([]*Port, 0, len(ids))
	for _, id := range ids {
		if p := m.Port(id); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m *Module) dup() *Module {
	c := &Module{
		Name:                m.Name,
		Version:             m.Version,
		AttachedDevices:     append([]PortID(nil), m.AttachedDevices...),
		DefaultOutputDevice: m.DefaultOutputDevice,
		MixPorts:            append([]PortID(nil), m.MixPorts...),
		DevicePorts:         append([]PortID(nil), m.DevicePorts...),
	}
	c.Ports = make([]*Port, len(m.Ports))
	for i, p := range m.Ports {
		np := *p
		np.Module = c
		np.Profiles = make([]*Profile, len(p.Profiles))
		for j, prof := range p.Profiles {
			np.Profiles[j] = prof.dup()
		}
		c.Ports[i] = &np
	}
	c.Routes = make([]*Route, len(m.Routes))
	for i, r := range m.Routes {
		c.Routes[i] = &Route{
			Type:    r.Type,
			Sink:    r.Sink,
			Sources: append([]PortID(nil), r.Sources...),
		}
	}
	return c
}

// Device is the root of a parsed configuration.
type Device struct {
	GlobalConfig []GlobalConfig
	Modules      []*Module
}

// Module returns the module named name, or nil.
func (d *Device) Module(name string) *Module {
	for _, m := range d.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Global returns the first global property with the given key.
func (d *Device) Global(key string) (string, bool) {
	for _, g := range d.GlobalConfig {
		if g.Key == key {
			return g.Value, true
		}
	}
	return "", false
}

// Dup returns a deep copy of the device. The copy shares no mutable state
// with d.
func (d *Device) Dup() *Device {
	c := &Device{
		GlobalConfig: append([]GlobalConfig(nil), d.GlobalConfig...),
		Modules:      make([]*Module, len(d.Modules)),
	}
	for i, m := range d.Modules {
		c.Modules[i] = m.dup()
	}
	return c
}

// PortTuple is a flattened view of one port used to compare configurations
// that came from different file formats.
type PortTuple struct {
	Module  string
	Port    string
	Devices audio.DeviceType
	Formats []audio.Format
}

// Flatten returns one tuple per port, sorted by module and port name. For
// mix ports Devices is the union of the device ports routed to or from the
// port; for device ports it is the port's own type.
func (d *Device) Flatten() []PortTuple {
	var out []PortTuple
	for _, m := range d.Modules {
		for _, p := range m.Ports {
			t := PortTuple{Module: m.Name, Port: p.Name, Formats: p.Formats()}
			if p.IsDevice() {
				t.Devices = p.DeviceType
			} else {
				t.Devices = m.routedDevices(p)
			}
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Module != out[j].Module {
			return out[i].Module < out[j].Module
		}
		return out[i].Port < out[j].Port
	})
	return out
}

func (m *Module) routedDevices(mix *Port) audio.DeviceType {
	var devices audio.DeviceType
	for _, r := range m.Routes {
		sink := m.Port(r.Sink)
		if sink == nil {
			continue
		}
		for _, src := range m.RouteSources(r) {
			switch {
			case src == mix && sink.IsDevice():
				devices |= sink.DeviceType
			case sink == mix && src.IsDevice():
				devices |= src.DeviceType
			}
		}
	}
	return devices
}
