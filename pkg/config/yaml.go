package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/version"
)

// YAML views refer to ports by name, the same way the XML format does.

type yamlProfile struct {
	Name          string `yaml:"name,omitempty"`
	Format        string `yaml:"format"`
	SamplingRates string `yaml:"samplingRates"`
	ChannelMasks  string `yaml:"channelMasks"`
}

type yamlMixPort struct {
	Name           string        `yaml:"name"`
	Role           string        `yaml:"role"`
	Flags          string        `yaml:"flags,omitempty"`
	MaxOpenCount   int           `yaml:"maxOpenCount,omitempty"`
	MaxActiveCount int           `yaml:"maxActiveCount,omitempty"`
	Profiles       []yamlProfile `yaml:"profiles,omitempty"`
}

type yamlDevicePort struct {
	TagName  string        `yaml:"tagName"`
	Role     string        `yaml:"role"`
	Type     string        `yaml:"type"`
	Address  string        `yaml:"address,omitempty"`
	Profiles []yamlProfile `yaml:"profiles,omitempty"`
}

type yamlRoute struct {
	Type    string   `yaml:"type"`
	Sink    string   `yaml:"sink"`
	Sources []string `yaml:"sources"`
}

type yamlModule struct {
	Name                string           `yaml:"name"`
	HalVersion          string           `yaml:"halVersion"`
	AttachedDevices     []string         `yaml:"attachedDevices,omitempty"`
	DefaultOutputDevice string           `yaml:"defaultOutputDevice,omitempty"`
	MixPorts            []yamlMixPort    `yaml:"mixPorts,omitempty"`
	DevicePorts         []yamlDevicePort `yaml:"devicePorts,omitempty"`
	Routes              []yamlRoute      `yaml:"routes,omitempty"`
}

type yamlDevice struct {
	GlobalConfiguration []GlobalConfig `yaml:"globalConfiguration,omitempty"`
	Modules             []yamlModule   `yaml:"modules"`
}

func profileView(p *Profile, dir audio.Direction) yamlProfile {
	v := yamlProfile{Name: p.Name, Format: p.Format.String()}
	if audio.IsDynamicRates(p.SamplingRates) {
		v.SamplingRates = audio.DynamicToken
	} else {
		rates := make([]string, len(p.SamplingRates))
		for i, r := range p.SamplingRates {
			rates[i] = strconv.FormatUint(uint64(r), 10)
		}
		v.SamplingRates = strings.Join(rates, ",")
	}
	if audio.IsDynamicChannels(p.ChannelMasks) {
		v.ChannelMasks = audio.DynamicToken
	} else {
		masks := make([]string, len(p.ChannelMasks))
		for i, m := range p.ChannelMasks {
			masks[i] = m.Name(dir)
		}
		v.ChannelMasks = strings.Join(masks, ",")
	}
	return v
}

func profileViews(port *Port) []yamlProfile {
	out := make([]yamlProfile, len(port.Profiles))
	for i, p := range port.Profiles {
		out[i] = profileView(p, port.Direction())
	}
	return out
}

// MarshalYAML implements yaml.Marshaler.
func (d *Device) MarshalYAML() (interface{}, error) {
	view := yamlDevice{GlobalConfiguration: d.GlobalConfig}
	for _, m := range d.Modules {
		mv := yamlModule{Name: m.Name, HalVersion: m.HalVersion().String()}
		for _, p := range m.Attached() {
			mv.AttachedDevices = append(mv.AttachedDevices, p.Name)
		}
		if p := m.DefaultOutput(); p != nil {
			mv.DefaultOutputDevice = p.Name
		}
		for _, p := range m.MixPortList() {
			mv.MixPorts = append(mv.MixPorts, yamlMixPort{
				Name:           p.Name,
				Role:           p.Role.String(),
				Flags:          audio.ListString(audio.FlagTable(p.Direction()), p.Flags),
				MaxOpenCount:   p.MaxOpenCount,
				MaxActiveCount: p.MaxActiveCount,
				Profiles:       profileViews(p),
			})
		}
		for _, p := range m.DevicePortList() {
			typ, _ := audio.DeviceTable(p.Direction()).ToString(uint32(p.DeviceType))
			mv.DevicePorts = append(mv.DevicePorts, yamlDevicePort{
				TagName:  p.Name,
				Role:     p.Role.String(),
				Type:     typ,
				Address:  p.Address,
				Profiles: profileViews(p),
			})
		}
		for _, r := range m.Routes {
			rv := yamlRoute{Type: r.Type.String(), Sink: m.RouteSink(r).Name}
			for _, s := range m.RouteSources(r) {
				rv.Sources = append(rv.Sources, s.Name)
			}
			mv.Routes = append(mv.Routes, rv)
		}
		view.Modules = append(view.Modules, mv)
	}
	return view, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Device) UnmarshalYAML(node *yaml.Node) error {
	var view yamlDevice
	if err := node.Decode(&view); err != nil {
		return err
	}
	out := Device{GlobalConfig: view.GlobalConfiguration}
	for _, mv := range view.Modules {
		m, err := moduleFromView(mv)
		if err != nil {
			return fmt.Errorf("module %q: %w", mv.Name, err)
		}
		out.Modules = append(out.Modules, m)
	}
	*d = out
	return nil
}

func profileFromView(v yamlProfile, dir audio.Direction) (*Profile, error) {
	format, ok := audio.ParseFormat(v.Format)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", v.Format)
	}
	rates, err := audio.ParseSamplingRates(audio.ValueSeparators, v.SamplingRates)
	if err != nil {
		return nil, err
	}
	masks, _, err := audio.ParseChannelMasks(dir, audio.ValueSeparators, v.ChannelMasks)
	if err != nil {
		return nil, err
	}
	return &Profile{Name: v.Name, Format: format, SamplingRates: rates, ChannelMasks: masks}, nil
}

func profilesFromView(port *Port, views []yamlProfile) error {
	for _, v := range views {
		p, err := profileFromView(v, port.Direction())
		if err != nil {
			return fmt.Errorf("port %q: %w", port.Name, err)
		}
		port.Profiles = append(port.Profiles, p)
	}
	return nil
}

func moduleFromView(mv yamlModule) (*Module, error) {
	v, err := version.Parse(mv.HalVersion)
	if err != nil {
		v = version.DefaultHAL
	}
	m := NewModule(mv.Name, v)

	for _, pv := range mv.MixPorts {
		role, ok := ParseRole(pv.Role)
		if !ok {
			return nil, fmt.Errorf("mix port %q: unknown role %q", pv.Name, pv.Role)
		}
		port := &Port{Type: PortTypeMix, Name: pv.Name, Role: role,
			MaxOpenCount: pv.MaxOpenCount, MaxActiveCount: pv.MaxActiveCount}
		_, port.Flags, _ = audio.ParseList(audio.FlagTable(port.Direction()), audio.FlagSeparators, pv.Flags)
		if err := profilesFromView(port, pv.Profiles); err != nil {
			return nil, err
		}
		m.AddMixPort(port)
	}

	for _, pv := range mv.DevicePorts {
		role, ok := ParseRole(pv.Role)
		if !ok {
			return nil, fmt.Errorf("device port %q: unknown role %q", pv.TagName, pv.Role)
		}
		port := &Port{Type: PortTypeDevice, Name: pv.TagName, Role: role, Address: pv.Address}
		typ, ok := audio.DeviceTable(port.Direction()).FromString(pv.Type)
		if !ok {
			return nil, fmt.Errorf("device port %q: unknown type %q", pv.TagName, pv.Type)
		}
		port.DeviceType = audio.DeviceType(typ)
		if err := profilesFromView(port, pv.Profiles); err != nil {
			return nil, err
		}
		m.AddDevicePort(port)
	}

	for _, name := range mv.AttachedDevices {
		p := m.FindDevicePort(name)
		if p == nil {
			return nil, fmt.Errorf("unknown attached device %q", name)
		}
		m.AttachDevice(p.ID)
	}
	if mv.DefaultOutputDevice != "" {
		p := m.FindDevicePort(mv.DefaultOutputDevice)
		if p == nil {
			return nil, fmt.Errorf("unknown default output device %q", mv.DefaultOutputDevice)
		}
		m.DefaultOutputDevice = p.ID
	}

	for _, rv := range mv.Routes {
		sink := m.FindPort(rv.Sink)
		if sink == nil {
			return nil, fmt.Errorf("route: unknown sink %q", rv.Sink)
		}
		r := &Route{Type: RouteMix, Sink: sink.ID}
		if rv.Type == "mux" {
			r.Type = RouteMux
		}
		for _, name := range rv.Sources {
			src := m.FindPort(name)
			if src == nil {
				return nil, fmt.Errorf("route to %q: unknown source %q", rv.Sink, name)
			}
			r.Sources = append(r.Sources, src.ID)
		}
		m.Routes = append(m.Routes, r)
	}
	return m, nil
}
