package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/version"
)

// legacyState is a section of the legacy format.
type legacyState uint8

const (
	stateRoot legacyState = iota
	stateGlobal
	stateGlobalExt
	stateHWModules
	stateModule
	stateOutputInput
	stateConfig
	stateModuleGlobal
	stateDevices
	stateDevicesDevice
	stateGains
	stateGainN
	stateIgnored
)

var legacyStateNames = [...]string{
	stateRoot:          "root",
	stateGlobal:        "global",
	stateGlobalExt:     "global_ext",
	stateHWModules:     "hw_modules",
	stateModule:        "module",
	stateOutputInput:   "output_input",
	stateConfig:        "config",
	stateModuleGlobal:  "module_global",
	stateDevices:       "devices",
	stateDevicesDevice: "devices_device",
	stateGains:         "gains",
	stateGainN:         "gain_n",
	stateIgnored:       "ignored",
}

// String returns the state name.
func (s legacyState) String() string {
	if int(s) < len(legacyStateNames) {
		return legacyStateNames[s]
	}
	return "unknown"
}

// permissive states accept any content without interpreting it.
func (s legacyState) permissive() bool {
	switch s {
	case stateDevices, stateDevicesDevice, stateGains, stateGainN, stateIgnored:
		return true
	}
	return false
}

// transition opens a section. An empty name matches any section name, a
// prefix transition matches names starting with name.
type transition struct {
	name   string
	prefix bool
	next   legacyState
}

func (t transition) matches(name string) bool {
	switch {
	case t.name == "":
		return true
	case t.prefix:
		return strings.HasPrefix(name, t.name)
	default:
		return name == t.name
	}
}

var legacyTransitions = map[legacyState][]transition{
	stateRoot: {
		{name: "global_configuration", next: stateGlobal},
		{name: "audio_hw_modules", next: stateHWModules},
	},
	stateGlobal: {
		{name: "custom_properties", next: stateGlobalExt},
	},
	stateHWModules: {
		{next: stateModule},
	},
	stateModule: {
		{name: "outputs", next: stateOutputInput},
		{name: "inputs", next: stateOutputInput},
		{name: "global_configuration", next: stateModuleGlobal},
		{name: "global_config", next: stateModuleGlobal},
		{name: "devices", next: stateDevices},
	},
	stateOutputInput: {
		{next: stateConfig},
	},
	stateConfig: {
		{name: "gains", next: stateGains},
	},
	stateDevices: {
		{next: stateDevicesDevice},
	},
	stateDevicesDevice: {
		{name: "gains", next: stateGains},
	},
	stateGains: {
		{name: "gain_", prefix: true, next: stateGainN},
	},
}

// Global configuration keys shared by the root and per-module sections.
const (
	keyAttachedOutputDevices = "attached_output_devices"
	keyDefaultOutputDevice   = "default_output_device"
	keyAttachedInputDevices  = "attached_input_devices"
	keySpeakerDRCEnabled     = "speaker_drc_enabled"
	keyAudioHALVersion       = "audio_hal_version"
)

type legacyGlobal struct {
	set            bool
	attachedOutput audio.DeviceType
	defaultOutput  audio.DeviceType
	attachedInput  audio.DeviceType
	speakerDRC     bool
	halVersion     *version.Version
}

type legacyStream struct {
	name    string
	dir     audio.Direction
	rates   []uint32
	formats []audio.Format
	masks   []audio.ChannelMask
	devices audio.DeviceType
	flags   uint32
}

type legacyModule struct {
	name    string
	global  legacyGlobal
	streams []*legacyStream
}

type legacySection struct {
	state legacyState
	name  string
}

type legacyParser struct {
	logger *slog.Logger
	file   string
	line   int

	stack   []legacySection
	global  legacyGlobal
	raw     []GlobalConfig
	modules []*legacyModule
	module  *legacyModule
	stream  *legacyStream
}

// ParseLegacy parses a legacy audio_policy.conf file. The file is held
// under a shared advisory lock while it is read. A nil logger uses
// slog.Default.
func ParseLegacy(path string, logger *slog.Logger) (*Device, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("parser", "legacy")

	f, err := os.Open(path)
	if err != nil {
		logger.Info("Cannot open configuration", "file", path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	if err := lockShared(f); err != nil {
		logger.Warn("Cannot lock configuration", "file", path, "error", err)
	} else {
		defer unlock(f)
	}

	p := &legacyParser{
		logger: logger,
		file:   path,
		stack:  []legacySection{{state: stateRoot}},
	}
	if err := p.parse(f); err != nil {
		logger.Error("Failed to parse configuration", "file", path, "error", err)
		return nil, err
	}
	return p.convert(), nil
}

func (p *legacyParser) fail(err error) error {
	return &ParseError{File: p.file, Line: p.line, Err: err}
}

func (p *legacyParser) current() legacySection {
	return p.stack[len(p.stack)-1]
}

func (p *legacyParser) parse(f *os.File) error {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p.line++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "}" {
			if err := p.close(); err != nil {
				return err
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == "{" {
			if err := p.open(fields[0]); err != nil {
				return err
			}
			continue
		}

		if err := p.value(fields[0], strings.Join(fields[1:], " ")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return p.fail(fmt.Errorf("%w: %v", ErrSyntax, err))
	}
	if len(p.stack) > 1 {
		return p.fail(fmt.Errorf("%w: unterminated section %q", ErrSyntax, p.current().name))
	}
	return nil
}

func (p *legacyParser) open(name string) error {
	cur := p.current()
	next, ok := stateIgnored, false
	for _, t := range legacyTransitions[cur.state] {
		if t.matches(name) {
			next, ok = t.next, true
			break
		}
	}
	if !ok && !cur.state.permissive() {
		return p.fail(fmt.Errorf("%w: section %q in %s", ErrUnknownSection, name, cur.state))
	}

	switch next {
	case stateModule:
		p.module = &legacyModule{name: name}
		p.modules = append(p.modules, p.module)
	case stateConfig:
		dir := audio.DirectionOutput
		if cur.name == "inputs" {
			dir = audio.DirectionInput
		}
		p.stream = &legacyStream{name: name, dir: dir}
	case stateModuleGlobal:
		p.module.global.set = true
	case stateGlobal:
		p.global.set = true
	}

	p.stack = append(p.stack, legacySection{state: next, name: name})
	return nil
}

func (p *legacyParser) close() error {
	if len(p.stack) == 1 {
		return p.fail(fmt.Errorf("%w: unbalanced '}'", ErrSyntax))
	}
	cur := p.current()
	p.stack = p.stack[:len(p.stack)-1]

	switch cur.state {
	case stateConfig:
		s := p.stream
		p.stream = nil
		if len(s.formats) == 0 {
			return p.fail(fmt.Errorf("%w: %s %q has no formats", ErrMissingAttribute, s.dir, s.name))
		}
		if len(s.rates) == 0 {
			s.rates = []uint32{audio.RateDynamic}
		}
		if len(s.masks) == 0 {
			s.masks = []audio.ChannelMask{audio.ChannelMaskDynamic}
		}
		p.module.streams = append(p.module.streams, s)
	case stateModule:
		p.module = nil
	}
	return nil
}

func (p *legacyParser) value(key, value string) error {
	cur := p.current()
	switch cur.state {
	case stateGlobal:
		if err := p.globalValue(&p.global, key, value); err != nil {
			return err
		}
		p.raw = append(p.raw, GlobalConfig{Key: key, Value: value})
		return nil
	case stateModuleGlobal:
		return p.globalValue(&p.module.global, key, value)
	case stateGlobalExt:
		p.logger.Debug("Ignoring custom property", "file", p.file, "line", p.line, "key", key, "value", value)
		return nil
	case stateConfig:
		return p.streamValue(p.stream, key, value)
	}
	if cur.state.permissive() {
		return nil
	}
	return p.fail(fmt.Errorf("%w: key %q in %s", ErrUnknownSection, key, cur.state))
}

func (p *legacyParser) devices(dir audio.Direction, key, value string) audio.DeviceType {
	d, _, unknown := audio.ParseDevices(dir, audio.LegacySeparators, value)
	if unknown != "" {
		p.logger.Info("Unknown devices", "file", p.file, "line", p.line, "key", key, "devices", unknown)
	}
	return d
}

func (p *legacyParser) globalValue(g *legacyGlobal, key, value string) error {
	switch key {
	case keyAttachedOutputDevices:
		g.attachedOutput = p.devices(audio.DirectionOutput, key, value)
	case keyDefaultOutputDevice:
		g.defaultOutput = p.devices(audio.DirectionOutput, key, value)
	case keyAttachedInputDevices:
		g.attachedInput = p.devices(audio.DirectionInput, key, value)
	case keySpeakerDRCEnabled:
		g.speakerDRC = strings.EqualFold(value, "true")
	case keyAudioHALVersion:
		v, err := version.Parse(value)
		if err != nil {
			p.logger.Warn("Invalid HAL version", "file", p.file, "line", p.line, "version", value)
			return nil
		}
		g.halVersion = &v
	default:
		return p.fail(fmt.Errorf("%w: global key %q", ErrUnknownSection, key))
	}
	return nil
}

func (p *legacyParser) streamValue(s *legacyStream, key, value string) error {
	switch key {
	case "sampling_rates":
		rates, err := audio.ParseSamplingRates(audio.LegacySeparators, value)
		if err != nil {
			return p.fail(err)
		}
		s.rates = rates
	case "formats":
		if strings.TrimSpace(value) == audio.DynamicToken {
			s.formats = []audio.Format{audio.FormatDefault}
			return nil
		}
		formats, unknown, err := audio.ParseFormats(audio.LegacySeparators, value)
		if err != nil {
			return p.fail(err)
		}
		if unknown != "" {
			p.logger.Info("Unknown formats", "file", p.file, "line", p.line, "stream", s.name, "formats", unknown)
		}
		s.formats = formats
	case "channel_masks", "channels":
		masks, unknown, err := audio.ParseChannelMasks(s.dir, audio.LegacySeparators, value)
		if unknown != "" {
			p.logger.Debug("Unknown channel masks", "file", p.file, "line", p.line, "stream", s.name, "masks", unknown)
		}
		if err != nil {
			return p.fail(err)
		}
		s.masks = masks
	case "devices":
		s.devices = p.devices(s.dir, key, value)
	case "flags":
		_, v, unknown := audio.ParseList(audio.FlagTable(s.dir), audio.LegacySeparators, value)
		if unknown != "" {
			p.logger.Info("Unknown flags", "file", p.file, "line", p.line, "stream", s.name, "flags", unknown)
		}
		s.flags = v
	default:
		return p.fail(fmt.Errorf("%w: %s key %q", ErrUnknownSection, s.dir, key))
	}
	return nil
}

// convert builds the configuration model. Every device a stream can reach
// becomes a device port named by its canonical string, and routes connect
// the streams to those ports. Attached and default devices also get ports:
// those of a module level global section in that module, those of the top
// level section in the primary module.
func (p *legacyParser) convert() *Device {
	d := &Device{GlobalConfig: p.raw}
	owner := p.globalOwner()
	for _, lm := range p.modules {
		v := version.DefaultHAL
		switch {
		case lm.global.halVersion != nil:
			v = *lm.global.halVersion
		case p.global.halVersion != nil:
			v = *p.global.halVersion
		}
		m := NewModule(lm.name, v)

		var outDevices, inDevices audio.DeviceType
		for _, s := range lm.streams {
			role := RoleSource
			if s.dir == audio.DirectionInput {
				role = RoleSink
				inDevices |= s.devices
			} else {
				outDevices |= s.devices
			}
			port := &Port{Name: s.name, Role: role, Flags: s.flags}
			for _, f := range s.formats {
				port.Profiles = append(port.Profiles, &Profile{
					Format:        f,
					SamplingRates: append([]uint32(nil), s.rates...),
					ChannelMasks:  append([]audio.ChannelMask(nil), s.masks...),
				})
			}
			m.AddMixPort(port)
		}

		g := p.global
		if lm.global.set {
			g = lm.global
		}
		if lm.global.set || lm == owner {
			outDevices |= g.attachedOutput | g.defaultOutput
			inDevices |= g.attachedInput
		}

		for _, dev := range audio.SplitDevices(audio.DirectionOutput, outDevices) {
			p.addDevicePort(m, dev, RoleSink)
		}
		for _, dev := range audio.SplitDevices(audio.DirectionInput, inDevices) {
			p.addDevicePort(m, dev, RoleSource)
		}

		p.synthesizeRoutes(m, lm)
		p.applyGlobal(m, g)
		d.Modules = append(d.Modules, m)
	}
	return d
}

// globalOwner returns the module that receives ports for the devices of
// the top level global section: the one named "primary", else the first.
func (p *legacyParser) globalOwner() *legacyModule {
	for _, lm := range p.modules {
		if lm.name == "primary" {
			return lm
		}
	}
	if len(p.modules) > 0 {
		return p.modules[0]
	}
	return nil
}

func (p *legacyParser) addDevicePort(m *Module, dev audio.DeviceType, role Role) {
	name, _ := audio.DeviceTable(dev.Direction()).ToString(uint32(dev))
	port := &Port{Name: name, Role: role, DeviceType: dev}
	port.Profiles = []*Profile{DefaultProfile(dev.Direction())}
	m.AddDevicePort(port)
}

func (p *legacyParser) synthesizeRoutes(m *Module, lm *legacyModule) {
	for _, dev := range m.DevicePortList() {
		if dev.Direction() != audio.DirectionOutput {
			continue
		}
		r := &Route{Type: RouteMix, Sink: dev.ID}
		for i, s := range lm.streams {
			if s.dir == audio.DirectionOutput && s.devices&dev.DeviceType == dev.DeviceType {
				r.Sources = append(r.Sources, m.MixPorts[i])
			}
		}
		if len(r.Sources) > 0 {
			m.Routes = append(m.Routes, r)
		}
	}
	for i, s := range lm.streams {
		if s.dir != audio.DirectionInput {
			continue
		}
		r := &Route{Type: RouteMix, Sink: m.MixPorts[i]}
		for _, dev := range m.DevicePortList() {
			if dev.Direction() == audio.DirectionInput && s.devices&dev.DeviceType == dev.DeviceType {
				r.Sources = append(r.Sources, dev.ID)
			}
		}
		if len(r.Sources) > 0 {
			m.Routes = append(m.Routes, r)
		}
	}
}

func (p *legacyParser) applyGlobal(m *Module, g legacyGlobal) {
	for _, dev := range audio.SplitDevices(audio.DirectionOutput, g.attachedOutput) {
		if port := m.FindDevicePortByType(dev); port != nil {
			m.AttachDevice(port.ID)
		}
	}
	for _, dev := range audio.SplitDevices(audio.DirectionInput, g.attachedInput) {
		if port := m.FindDevicePortByType(dev); port != nil {
			m.AttachDevice(port.ID)
		}
	}
	if g.defaultOutput != audio.DeviceNone {
		if port := m.FindDevicePortByType(g.defaultOutput); port != nil {
			m.DefaultOutputDevice = port.ID
		}
	}
}
