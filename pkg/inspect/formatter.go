package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/routing"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowProfiles includes the audio profiles of every port
	ShowProfiles bool

	// ShowIDs includes port IDs alongside names
	ShowIDs bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowProfiles: true,
		ShowIDs:      false,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatRates formats a sampling rate list.
func FormatRates(rates []uint32) string {
	if audio.IsDynamicRates(rates) {
		return "dynamic"
	}
	s := make([]string, len(rates))
	for i, r := range rates {
		s[i] = strconv.FormatUint(uint64(r), 10)
	}
	return strings.Join(s, ",")
}

// FormatMasks formats a channel mask list using the names of dir.
func FormatMasks(dir audio.Direction, masks []audio.ChannelMask) string {
	if audio.IsDynamicChannels(masks) {
		return "dynamic"
	}
	s := make([]string, len(masks))
	for i, m := range masks {
		if name := m.Name(dir); name != "" {
			s[i] = name
		} else {
			s[i] = fmt.Sprintf("0x%x", uint32(m))
		}
	}
	return strings.Join(s, ",")
}

// FormatProfile formats one audio profile on a single line.
func FormatProfile(p *config.Profile, dir audio.Direction) string {
	return fmt.Sprintf("%s rates=%s channels=%s", p.Format, FormatRates(p.SamplingRates), FormatMasks(dir, p.ChannelMasks))
}

// FormatFlags formats mix port flags, "none" for zero.
func FormatFlags(dir audio.Direction, flags uint32) string {
	if flags == 0 {
		return "none"
	}
	return audio.ListString(audio.FlagTable(dir), flags)
}

// FormatPriority formats a routing port priority with its tier.
func FormatPriority(prio uint32) string {
	switch {
	case prio < routing.PriorityBase:
		return fmt.Sprintf("%d (parking)", prio)
	case prio >= routing.PriorityBase+2*routing.PriorityTier:
		return fmt.Sprintf("%d (default)", prio)
	case prio >= routing.PriorityBase+routing.PriorityTier:
		return fmt.Sprintf("%d (attached)", prio)
	default:
		return strconv.FormatUint(uint64(prio), 10)
	}
}

func (f *Formatter) portName(p PortInfo) string {
	if f.ShowIDs {
		return fmt.Sprintf("[%d] %s", p.ID, p.Name)
	}
	return p.Name
}

// FormatPort formats one port and, when enabled, its profiles.
func (f *Formatter) FormatPort(p PortInfo, depth int) string {
	var sb strings.Builder
	line := fmt.Sprintf("%s (%s, %s)", f.portName(p), p.Role, p.Direction)
	if p.Type == config.PortTypeMix {
		line += " flags=" + FormatFlags(p.Direction, p.Flags)
		if p.MaxOpenCount > 0 {
			line += fmt.Sprintf(" maxOpen=%d", p.MaxOpenCount)
		}
		if p.MaxActiveCount > 0 {
			line += fmt.Sprintf(" maxActive=%d", p.MaxActiveCount)
		}
	} else {
		line += " type=" + p.DeviceType.String()
		if p.Address != "" {
			line += fmt.Sprintf(" address=%q", p.Address)
		}
		if p.Attached {
			line += " attached"
		}
		if p.DefaultOutput {
			line += " default"
		}
	}
	sb.WriteString(f.Indent(depth, line))
	sb.WriteString("\n")

	if f.ShowProfiles {
		for _, prof := range p.Profiles {
			sb.WriteString(f.Indent(depth+1, FormatProfile(prof, p.Direction)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatRoutes formats a list of routes.
func (f *Formatter) FormatRoutes(routes []RouteInfo, depth int) string {
	if len(routes) == 0 {
		return f.Indent(depth, "(no routes)") + "\n"
	}
	var sb strings.Builder
	for _, r := range routes {
		sb.WriteString(f.Indent(depth, fmt.Sprintf("%s <- %s (%s)", r.Sink, strings.Join(r.Sources, ", "), r.Type)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatModule formats a module with its ports and routes.
func (f *Formatter) FormatModule(m ModuleInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("module %s (HAL %s)\n", m.Name, m.HalVersion))

	sb.WriteString(f.Indent(1, "mix ports:\n"))
	for _, p := range m.MixPorts {
		sb.WriteString(f.FormatPort(p, 2))
	}
	sb.WriteString(f.Indent(1, "device ports:\n"))
	for _, p := range m.DevicePorts {
		sb.WriteString(f.FormatPort(p, 2))
	}
	sb.WriteString(f.Indent(1, "routes:\n"))
	sb.WriteString(f.FormatRoutes(m.Routes, 2))
	return sb.String()
}

// FormatGraph formats a routing graph.
func (f *Formatter) FormatGraph(g *GraphInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("routing graph of %s\n", g.Module))
	for _, p := range g.Profiles {
		sb.WriteString(f.Indent(1, fmt.Sprintf("profile %s\n", p.Name)))
		f.writeMappings(&sb, "outputs", p.Outputs)
		f.writeMappings(&sb, "inputs", p.Inputs)
	}
	sb.WriteString(f.Indent(1, "ports:\n"))
	for _, p := range g.Ports {
		line := fmt.Sprintf("%s (%s) priority=%s", p.Name, p.Direction, FormatPriority(p.Priority))
		if !p.Parking && p.Description != "" {
			line += fmt.Sprintf(" %q", p.Description)
		}
		sb.WriteString(f.Indent(2, line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (f *Formatter) writeMappings(sb *strings.Builder, title string, mappings []MappingInfo) {
	if len(mappings) == 0 {
		return
	}
	sb.WriteString(f.Indent(2, title+":\n"))
	for _, m := range mappings {
		sb.WriteString(f.Indent(3, fmt.Sprintf("%s -> %s\n", m.Mix, strings.Join(m.Devices, ", "))))
		sb.WriteString(f.Indent(4, fmt.Sprintf("ports: %s\n", strings.Join(m.Ports, ", "))))
	}
}
