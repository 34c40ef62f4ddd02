package inspect

import (
	"sort"
	"strings"

	"github.com/droidaudio/droid-go/pkg/config"
)

// ResolveModule returns the module named name. An exact match wins over a
// case-insensitive one.
func ResolveModule(d *config.Device, name string) *config.Module {
	if m := d.Module(name); m != nil {
		return m
	}
	for _, m := range d.Modules {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}
	return nil
}

// ResolvePort returns the port of the given kind named name. Device ports
// also match by their device type string (e.g. "AUDIO_DEVICE_OUT_SPEAKER").
// An exact match wins over a case-insensitive one.
func ResolvePort(m *config.Module, kind Kind, name string) *config.Port {
	var ports []*config.Port
	switch kind {
	case KindMix:
		ports = m.MixPortList()
	case KindDevice:
		ports = m.DevicePortList()
	default:
		return nil
	}

	for _, p := range ports {
		if p.Name == name {
			return p
		}
	}
	for _, p := range ports {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	if kind == KindDevice {
		for _, p := range ports {
			if strings.EqualFold(p.DeviceType.String(), name) {
				return p
			}
		}
	}
	return nil
}

// PortNames returns the sorted names of the ports of the given kind, for
// completion.
func PortNames(m *config.Module, kind Kind) []string {
	var ports []*config.Port
	switch kind {
	case KindMix:
		ports = m.MixPortList()
	case KindDevice:
		ports = m.DevicePortList()
	}
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}
