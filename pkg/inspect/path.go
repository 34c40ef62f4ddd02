// Package inspect renders hardware descriptions and routing graphs for
// display.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "primary/mix/deep_buffer")
//   - Resolving module and port names
//   - Collecting module, port, route and routing graph information
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
	ErrUnknownKind = errors.New("unknown path section")
)

// Kind selects what a path addresses below a module.
type Kind uint8

const (
	// KindModule addresses the whole module.
	KindModule Kind = iota
	// KindMix addresses mix ports.
	KindMix
	// KindDevice addresses device ports.
	KindDevice
	// KindRoutes addresses the routes.
	KindRoutes
	// KindGraph addresses the routing graph built from the module.
	KindGraph
)

var kindNames = map[Kind]string{
	KindModule: "",
	KindMix:    "mix",
	KindDevice: "device",
	KindRoutes: "routes",
	KindGraph:  "graph",
}

// String returns the path section name of the kind.
func (k Kind) String() string {
	return kindNames[k]
}

// Path represents a parsed inspection path.
// Format: module[/section[/port]]
type Path struct {
	// Module is the hardware module name.
	Module string

	// Kind is the addressed section.
	Kind Kind

	// Port is the port name for KindMix and KindDevice paths. Empty means
	// all ports of the section.
	Port string

	// Raw stores the original input string.
	Raw string
}

// IsPartial reports whether a port section path names no single port.
func (p *Path) IsPartial() bool {
	return (p.Kind == KindMix || p.Kind == KindDevice) && p.Port == ""
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "primary" - the module
//   - "primary/mix" - all mix ports
//   - "primary/mix/primary output" - one mix port
//   - "primary/device/Speaker" - one device port
//   - "primary/routes" - the routes
//   - "primary/graph" - the routing graph
//
// Port names may contain spaces and slashes; everything after the second
// separator is the port name.
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}
	if strings.HasPrefix(input, "/") {
		return nil, ErrInvalidPath
	}

	parts := strings.SplitN(input, "/", 3)
	p := &Path{Raw: input, Module: parts[0]}
	if p.Module == "" {
		return nil, ErrInvalidPath
	}
	if len(parts) == 1 {
		return p, nil
	}

	kind, ok := parseKind(parts[1])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, parts[1])
	}
	p.Kind = kind

	if len(parts) == 3 {
		if kind != KindMix && kind != KindDevice {
			return nil, fmt.Errorf("%w: %s takes no port name", ErrInvalidPath, kind)
		}
		p.Port = parts[2]
		if p.Port == "" {
			return nil, ErrInvalidPath
		}
	}
	return p, nil
}

// String returns the path as a string.
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Module)
	if p.Kind == KindModule {
		return sb.String()
	}
	sb.WriteString("/")
	sb.WriteString(p.Kind.String())
	if p.Port != "" {
		sb.WriteString("/")
		sb.WriteString(p.Port)
	}
	return sb.String()
}

func parseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "mix", "mixports", "mix-ports":
		return KindMix, true
	case "device", "devices", "deviceports", "device-ports":
		return KindDevice, true
	case "routes", "route":
		return KindRoutes, true
	case "graph", "profiles":
		return KindGraph, true
	}
	return KindModule, false
}
