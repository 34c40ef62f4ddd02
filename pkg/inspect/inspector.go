package inspect

import (
	"errors"
	"fmt"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/routing"
)

// Inspector errors.
var (
	ErrModuleNotFound = errors.New("module not found")
	ErrPortNotFound   = errors.New("port not found")
)

// Inspector provides inspection of a parsed hardware description.
type Inspector struct {
	device *config.Device
}

// NewInspector creates a new Inspector for the given description.
func NewInspector(device *config.Device) *Inspector {
	return &Inspector{device: device}
}

// Device returns the underlying description.
func (i *Inspector) Device() *config.Device {
	return i.device
}

// ModuleInfo represents module information for display.
type ModuleInfo struct {
	Name        string
	HalVersion  string
	MixPorts    []PortInfo
	DevicePorts []PortInfo
	Routes      []RouteInfo
}

// PortInfo represents port information for display.
type PortInfo struct {
	ID        config.PortID
	Name      string
	Type      config.PortType
	Role      config.Role
	Direction audio.Direction

	// Mix ports.
	Flags          uint32
	MaxOpenCount   int
	MaxActiveCount int

	// Device ports.
	DeviceType    audio.DeviceType
	Address       string
	Attached      bool
	DefaultOutput bool

	Profiles []*config.Profile
}

// RouteInfo represents a route for display.
type RouteInfo struct {
	Type    config.RouteType
	Sink    string
	Sources []string
}

// GraphInfo represents the routing graph of a module.
type GraphInfo struct {
	Module   string
	Profiles []ProfileInfo
	Ports    []RoutingPortInfo
}

// ProfileInfo represents one routing profile.
type ProfileInfo struct {
	Name    string
	Outputs []MappingInfo
	Inputs  []MappingInfo
}

// MappingInfo represents one mix port mapping.
type MappingInfo struct {
	Mix     string
	Devices []string
	Ports   []string
}

// RoutingPortInfo represents one routing-layer port.
type RoutingPortInfo struct {
	Name        string
	Description string
	Direction   audio.Direction
	Priority    uint32
	Parking     bool
}

// InspectDevice returns information about every module.
func (i *Inspector) InspectDevice() []ModuleInfo {
	out := make([]ModuleInfo, 0, len(i.device.Modules))
	for _, m := range i.device.Modules {
		out = append(out, inspectModule(m))
	}
	return out
}

// InspectModule returns information about a specific module.
func (i *Inspector) InspectModule(name string) (*ModuleInfo, error) {
	m := ResolveModule(i.device, name)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
	}
	info := inspectModule(m)
	return &info, nil
}

// InspectPort returns information about the port a path addresses.
func (i *Inspector) InspectPort(path *Path) (*PortInfo, error) {
	m := ResolveModule(i.device, path.Module)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, path.Module)
	}
	p := ResolvePort(m, path.Kind, path.Port)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPortNotFound, path)
	}
	info := inspectPort(m, p)
	return &info, nil
}

// InspectGraph builds the routing graph of a module.
func (i *Inspector) InspectGraph(name string) (*GraphInfo, error) {
	m := ResolveModule(i.device, name)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
	}
	return graphInfo(routing.NewProfileSet(m)), nil
}

func inspectModule(m *config.Module) ModuleInfo {
	info := ModuleInfo{Name: m.Name, HalVersion: m.HalVersion().String()}
	for _, p := range m.MixPortList() {
		info.MixPorts = append(info.MixPorts, inspectPort(m, p))
	}
	for _, p := range m.DevicePortList() {
		info.DevicePorts = append(info.DevicePorts, inspectPort(m, p))
	}
	for _, r := range m.Routes {
		ri := RouteInfo{Type: r.Type}
		if sink := m.RouteSink(r); sink != nil {
			ri.Sink = sink.Name
		}
		for _, src := range m.RouteSources(r) {
			ri.Sources = append(ri.Sources, src.Name)
		}
		info.Routes = append(info.Routes, ri)
	}
	return info
}

func inspectPort(m *config.Module, p *config.Port) PortInfo {
	info := PortInfo{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Role:      p.Role,
		Direction: p.Direction(),
		Profiles:  p.Profiles,
	}
	if p.IsMix() {
		info.Flags = p.Flags
		info.MaxOpenCount = p.MaxOpenCount
		info.MaxActiveCount = p.MaxActiveCount
		return info
	}
	info.DeviceType = p.DeviceType
	info.Address = p.Address
	for _, a := range m.Attached() {
		if a == p {
			info.Attached = true
		}
	}
	info.DefaultOutput = m.DefaultOutput() == p
	return info
}

func graphInfo(s *routing.ProfileSet) *GraphInfo {
	g := &GraphInfo{Module: s.Module.Name}
	for _, p := range s.Profiles() {
		pi := ProfileInfo{Name: p.Name}
		for _, m := range p.Outputs() {
			pi.Outputs = append(pi.Outputs, mappingInfo(m))
		}
		for _, m := range p.Inputs() {
			pi.Inputs = append(pi.Inputs, mappingInfo(m))
		}
		g.Profiles = append(g.Profiles, pi)
	}
	for _, p := range s.Ports() {
		g.Ports = append(g.Ports, RoutingPortInfo{
			Name:        p.Name,
			Description: p.Description,
			Direction:   p.Direction,
			Priority:    p.Priority,
			Parking:     p.IsParking(),
		})
	}
	return g
}

func mappingInfo(m *routing.Mapping) MappingInfo {
	info := MappingInfo{Mix: m.Name()}
	for _, d := range m.Devices {
		info.Devices = append(info.Devices, d.Name)
	}
	for _, p := range m.Ports {
		info.Ports = append(info.Ports, p.Name)
	}
	return info
}
