package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/version"
)

// XIncludeNamespace is the namespace of the include directive.
const XIncludeNamespace = "http://www.w3.org/2001/XInclude"

const maxIncludeDepth = 8

// elementKind identifies one element of the configuration grammar.
type elementKind uint8

const (
	kindDocument elementKind = iota
	kindPolicy
	kindGlobal
	kindModules
	kindModule
	kindAttached
	kindAttachedItem
	kindDefaultOutput
	kindMixPorts
	kindMixPort
	kindDevicePorts
	kindDevicePort
	kindProfile
	kindRoutes
	kindRoute
	kindModuleInclude
	kindModulesInclude
)

var elementNames = map[elementKind]string{
	kindPolicy:         "audioPolicyConfiguration",
	kindGlobal:         "globalConfiguration",
	kindModules:        "modules",
	kindModule:         "module",
	kindAttached:       "attachedDevices",
	kindAttachedItem:   "item",
	kindDefaultOutput:  "defaultOutputDevice",
	kindMixPorts:       "mixPorts",
	kindMixPort:        "mixPort",
	kindDevicePorts:    "devicePorts",
	kindDevicePort:     "devicePort",
	kindProfile:        "profile",
	kindRoutes:         "routes",
	kindRoute:          "route",
	kindModuleInclude:  "include",
	kindModulesInclude: "include",
}

// schema maps an element to the children it accepts. Anything else is
// skipped together with its subtree.
type schema map[elementKind][]elementKind

var moduleChildren = []elementKind{
	kindAttached, kindDefaultOutput, kindMixPorts, kindDevicePorts, kindRoutes, kindModuleInclude,
}

func newSchema(root ...elementKind) schema {
	return schema{
		kindDocument:    root,
		kindPolicy:      {kindGlobal, kindModules},
		kindModules:     {kindModule, kindModulesInclude},
		kindModule:      moduleChildren,
		kindAttached:    {kindAttachedItem},
		kindMixPorts:    {kindMixPort},
		kindMixPort:     {kindProfile},
		kindDevicePorts: {kindDevicePort},
		kindDevicePort:  {kindProfile},
		kindRoutes:      {kindRoute},
	}
}

var (
	// documentSchema is the grammar of a top-level configuration file.
	documentSchema = newSchema(kindPolicy)

	// moduleIncludeSchema is the grammar of a file included from inside a
	// <module>. The file holds either a <module> element or module
	// children directly; both merge into the including module.
	moduleIncludeSchema = newSchema(append([]elementKind{kindModule}, moduleChildren...)...)

	// modulesIncludeSchema is the grammar of a file included from inside
	// <modules>. Every <module> it holds becomes a new module.
	modulesIncludeSchema = newSchema(kindModule, kindModules)
)

func isInclude(name xml.Name) bool {
	return name.Local == "include" && (name.Space == XIncludeNamespace || name.Space == "xi")
}

// child returns the kind of the element name under parent.
func (s schema) child(parent elementKind, name xml.Name) (elementKind, bool) {
	for _, k := range s[parent] {
		if k == kindModuleInclude || k == kindModulesInclude {
			if isInclude(name) {
				return k, true
			}
			continue
		}
		if name.Local == elementNames[k] {
			return k, true
		}
	}
	return 0, false
}

// Include is an xi:include directive being resolved. Module is set when
// the directive appears inside a <module> and the included content merges
// into it.
type Include struct {
	Href   string
	Module *Module
}

type rawRoute struct {
	typ     string
	sink    string
	sources []string
	line    int
}

// moduleBuild holds references that are resolved once the whole document,
// includes and all, has been read.
type moduleBuild struct {
	attached      []string
	defaultOutput string
	routes        []rawRoute
}

type frame struct {
	kind elementKind
	port *Port
	drop bool
}

// fileState is the per-file parser state.
type fileState struct {
	file    string
	dec     *xml.Decoder
	schema  schema
	stack   []frame
	skip    int
	text    strings.Builder
	module  *Module
	include *Include

	// sawRoot is set once the document element starts.
	sawRoot bool
}

func (st *fileState) line() int {
	line, _ := st.dec.InputPos()
	return line
}

func (st *fileState) top() *frame {
	return &st.stack[len(st.stack)-1]
}

// parent returns the frame below the top one.
func (st *fileState) parent() *frame {
	if len(st.stack) < 2 {
		return nil
	}
	return &st.stack[len(st.stack)-2]
}

type xmlParser struct {
	logger   *slog.Logger
	device   *Device
	builds   map[*Module]*moduleBuild
	includes []*Include
	depth    int
}

// ParseXML parses an audio policy configuration file and the files it
// includes. A nil logger uses slog.Default.
func ParseXML(path string, logger *slog.Logger) (*Device, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &xmlParser{
		logger: logger.With("parser", "xml"),
		device: &Device{},
		builds: make(map[*Module]*moduleBuild),
	}
	if err := p.parseFile(path, documentSchema, nil); err != nil {
		if errors.Is(err, ErrOpen) {
			p.logger.Info("Cannot open configuration", "file", path, "error", err)
		} else {
			p.logger.Error("Failed to parse configuration", "file", path, "error", err)
		}
		return nil, err
	}
	p.process()
	return p.device, nil
}

func (p *xmlParser) parseFile(path string, s schema, inc *Include) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	st := &fileState{
		file:    path,
		dec:     xml.NewDecoder(f),
		schema:  s,
		stack:   []frame{{kind: kindDocument}},
		include: inc,
	}
	if inc != nil {
		st.module = inc.Module
	}
	return p.run(st)
}

func (p *xmlParser) run(st *fileState) error {
	for {
		tok, err := st.dec.Token()
		if err == io.EOF {
			if !st.sawRoot {
				return &ParseError{File: st.file, Line: st.line(), Err: fmt.Errorf("%w: no element found", ErrSyntax)}
			}
			return nil
		}
		if err != nil {
			line := st.line()
			var serr *xml.SyntaxError
			if errors.As(err, &serr) {
				line = serr.Line
				err = errors.New(serr.Msg)
			}
			return &ParseError{File: st.file, Line: line, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			st.sawRoot = true
			if st.skip > 0 {
				st.skip++
				continue
			}
			kind, ok := st.schema.child(st.top().kind, t.Name)
			if !ok {
				st.skip = 1
				continue
			}
			st.stack = append(st.stack, frame{kind: kind})
			st.text.Reset()
			if err := p.start(st, t); err != nil {
				return err
			}
		case xml.EndElement:
			if st.skip > 0 {
				st.skip--
				continue
			}
			if err := p.end(st); err != nil {
				return err
			}
			st.stack = st.stack[:len(st.stack)-1]
		case xml.CharData:
			if st.skip == 0 {
				st.text.Write(t)
			}
		}
	}
}

func attr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

func (p *xmlParser) missing(st *fileState, element, name string) error {
	return &ParseError{
		File: st.file,
		Line: st.line(),
		Err:  fmt.Errorf("%w: %s on <%s>", ErrMissingAttribute, name, element),
	}
}

func (p *xmlParser) start(st *fileState, e xml.StartElement) error {
	fr := st.top()
	switch fr.kind {
	case kindPolicy:
		v, _ := attr(e, "version")
		if v != version.ConfigVersion {
			p.logger.Warn("Unsupported configuration version",
				"file", st.file, "version", v, "supported", version.ConfigVersion)
		}
	case kindGlobal:
		for _, a := range e.Attr {
			if a.Name.Space != "" {
				continue
			}
			p.device.GlobalConfig = append(p.device.GlobalConfig, GlobalConfig{Key: a.Name.Local, Value: a.Value})
		}
	case kindModule:
		return p.startModule(st, e)
	case kindMixPort:
		return p.startMixPort(st, e)
	case kindDevicePort:
		return p.startDevicePort(st, e)
	case kindProfile:
		return p.startProfile(st, e)
	case kindRoute:
		return p.startRoute(st, e)
	case kindModuleInclude, kindModulesInclude:
		return p.startInclude(st, e, fr.kind)
	}
	return nil
}

func (p *xmlParser) end(st *fileState) error {
	fr := st.top()
	switch fr.kind {
	case kindAttachedItem:
		name := strings.TrimSpace(st.text.String())
		if name != "" && st.module != nil {
			b := p.build(st.module)
			b.attached = append(b.attached, name)
		}
	case kindDefaultOutput:
		name := strings.TrimSpace(st.text.String())
		if name != "" && st.module != nil {
			p.build(st.module).defaultOutput = name
		}
	case kindMixPort, kindDevicePort:
		if fr.drop || fr.port == nil || st.module == nil {
			return nil
		}
		if fr.kind == kindMixPort {
			st.module.AddMixPort(fr.port)
		} else {
			st.module.AddDevicePort(fr.port)
		}
	case kindModule:
		if st.include == nil {
			st.module = nil
		}
	}
	return nil
}

func (p *xmlParser) build(m *Module) *moduleBuild {
	b, ok := p.builds[m]
	if !ok {
		b = &moduleBuild{}
		p.builds[m] = b
	}
	return b
}

func (p *xmlParser) startModule(st *fileState, e xml.StartElement) error {
	name, ok := attr(e, "name")
	if st.include != nil {
		// Content of a module-level include merges into the includer.
		if ok && name != st.module.Name {
			p.logger.Debug("Merging included module into includer",
				"file", st.file, "included", name, "module", st.module.Name)
		}
		return nil
	}
	if !ok {
		return p.missing(st, "module", "name")
	}

	v := version.DefaultHAL
	raw, ok := attr(e, "halVersion")
	if !ok {
		raw, ok = attr(e, "version")
	}
	if ok {
		parsed, err := version.Parse(raw)
		if err != nil {
			p.logger.Info("Invalid module HAL version, using default",
				"module", name, "version", raw, "default", version.DefaultHAL)
		} else {
			v = parsed
		}
	} else {
		p.logger.Info("Module has no HAL version, using default", "module", name, "default", version.DefaultHAL)
	}

	st.module = NewModule(name, v)
	p.device.Modules = append(p.device.Modules, st.module)
	p.build(st.module)
	return nil
}

func (p *xmlParser) startMixPort(st *fileState, e xml.StartElement) error {
	fr := st.top()
	name, ok := attr(e, "name")
	if !ok {
		return p.missing(st, "mixPort", "name")
	}
	roleStr, ok := attr(e, "role")
	if !ok {
		return p.missing(st, "mixPort", "role")
	}
	role, ok := ParseRole(roleStr)
	if !ok {
		p.logger.Info("Discarding mix port with unknown role", "file", st.file, "port", name, "role", roleStr)
		fr.drop = true
		return nil
	}

	port := &Port{Type: PortTypeMix, Name: name, Role: role}
	if flags, ok := attr(e, "flags"); ok && flags != "" {
		_, v, unknown := audio.ParseList(audio.FlagTable(port.Direction()), audio.FlagSeparators, flags)
		if unknown != "" {
			p.logger.Info("Unknown mix port flags", "file", st.file, "port", name, "flags", unknown)
		}
		port.Flags = v
	}
	port.MaxOpenCount = p.count(st, e, name, "maxOpenCount")
	port.MaxActiveCount = p.count(st, e, name, "maxActiveCount")
	fr.port = port
	return nil
}

func (p *xmlParser) count(st *fileState, e xml.StartElement, port, name string) int {
	raw, ok := attr(e, name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		p.logger.Warn("Ignoring invalid count", "file", st.file, "port", port, "attribute", name, "value", raw)
		return 0
	}
	return n
}

func (p *xmlParser) startDevicePort(st *fileState, e xml.StartElement) error {
	fr := st.top()
	name, ok := attr(e, "tagName")
	if !ok {
		return p.missing(st, "devicePort", "tagName")
	}
	roleStr, ok := attr(e, "role")
	if !ok {
		return p.missing(st, "devicePort", "role")
	}
	typ, ok := attr(e, "type")
	if !ok {
		return p.missing(st, "devicePort", "type")
	}
	role, ok := ParseRole(roleStr)
	if !ok {
		p.logger.Info("Discarding device port with unknown role", "file", st.file, "port", name, "role", roleStr)
		fr.drop = true
		return nil
	}

	port := &Port{Type: PortTypeDevice, Name: name, Role: role}
	v, ok := audio.DeviceTable(port.Direction()).FromString(strings.TrimSpace(typ))
	if !ok {
		p.logger.Info("Discarding device port with unknown type",
			"file", st.file, "port", name, "type", typ, "direction", port.Direction())
		fr.drop = true
		return nil
	}
	port.DeviceType = audio.DeviceType(v)
	port.Address, _ = attr(e, "address")
	fr.port = port
	return nil
}

// wrongChannelPrefix returns the prefix that must not appear in channel
// masks of a port of direction dir, and its replacement.
func wrongChannelPrefix(dir audio.Direction) (wrong, right string) {
	if dir == audio.DirectionOutput {
		return "AUDIO_CHANNEL_IN_", "AUDIO_CHANNEL_OUT_"
	}
	return "AUDIO_CHANNEL_OUT_", "AUDIO_CHANNEL_IN_"
}

func (p *xmlParser) startProfile(st *fileState, e xml.StartElement) error {
	fr := st.top()
	element := "mixPort"
	if parent := st.parent(); parent != nil && parent.kind == kindDevicePort {
		element = "devicePort"
	}

	name, ok := attr(e, "name")
	if !ok {
		return p.missing(st, element+"/profile", "name")
	}
	formatStr, ok := attr(e, "format")
	if !ok {
		return p.missing(st, element+"/profile", "format")
	}
	ratesStr, ok := attr(e, "samplingRates")
	if !ok {
		return p.missing(st, element+"/profile", "samplingRates")
	}
	masksStr, hasMasks := attr(e, "channelMasks")

	parent := st.parent()
	if parent == nil || parent.port == nil || parent.drop {
		fr.drop = true
		return nil
	}
	port := parent.port
	dir := port.Direction()

	format, ok := audio.ParseFormat(formatStr)
	if !ok {
		p.logger.Info("Dropping profile with unknown format", "file", st.file, "port", port.Name, "format", formatStr)
		return nil
	}
	rates, err := audio.ParseSamplingRates(audio.ValueSeparators, ratesStr)
	if err != nil || len(rates) == 0 {
		p.logger.Info("Dropping profile without usable sampling rates",
			"file", st.file, "port", port.Name, "rates", ratesStr, "error", err)
		return nil
	}

	masks := []audio.ChannelMask{audio.ChannelMaskDynamic}
	if hasMasks {
		if port.IsDevice() {
			wrong, right := wrongChannelPrefix(dir)
			if strings.Contains(masksStr, wrong) {
				p.logger.Warn("Correcting channel mask direction",
					"file", st.file, "port", port.Name, "masks", masksStr)
				masksStr = strings.ReplaceAll(masksStr, wrong, right)
			}
		}
		parsed, unknown, err := audio.ParseChannelMasks(dir, audio.ValueSeparators, masksStr)
		if unknown != "" {
			p.logger.Debug("Unknown channel masks", "file", st.file, "port", port.Name, "masks", unknown)
		}
		if err != nil {
			p.logger.Info("Dropping profile without usable channel masks",
				"file", st.file, "port", port.Name, "masks", masksStr, "error", err)
			return nil
		}
		masks = parsed
	}

	port.Profiles = append(port.Profiles, &Profile{
		Name:          name,
		Format:        format,
		SamplingRates: rates,
		ChannelMasks:  masks,
	})
	return nil
}

func (p *xmlParser) startRoute(st *fileState, e xml.StartElement) error {
	sink, ok := attr(e, "sink")
	if !ok {
		return p.missing(st, "route", "sink")
	}
	sources, ok := attr(e, "sources")
	if !ok {
		return p.missing(st, "route", "sources")
	}
	if st.module == nil {
		return nil
	}
	typ, _ := attr(e, "type")
	r := rawRoute{typ: typ, sink: strings.TrimSpace(sink), line: st.line()}
	for _, s := range strings.Split(sources, ",") {
		if s = strings.TrimSpace(s); s != "" {
			r.sources = append(r.sources, s)
		}
	}
	b := p.build(st.module)
	b.routes = append(b.routes, r)
	return nil
}

func (p *xmlParser) startInclude(st *fileState, e xml.StartElement, kind elementKind) error {
	href, ok := attr(e, "href")
	if !ok {
		return p.missing(st, "xi:include", "href")
	}
	if p.depth >= maxIncludeDepth {
		return &ParseError{File: st.file, Line: st.line(), Err: fmt.Errorf("%w: %s: nested too deeply", ErrInclude, href)}
	}

	path := href
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(st.file), href)
	}

	inc := &Include{Href: href}
	s := modulesIncludeSchema
	if kind == kindModuleInclude {
		if st.module == nil {
			return nil
		}
		inc.Module = st.module
		s = moduleIncludeSchema
	}
	p.includes = append(p.includes, inc)
	p.logger.Debug("Including file", "file", st.file, "href", href)

	p.depth++
	err := p.parseFile(path, s, nilIfNoModule(inc))
	p.depth--
	if err != nil {
		return &ParseError{File: st.file, Line: st.line(), Err: fmt.Errorf("%w: %s: %w", ErrInclude, href, err)}
	}
	return nil
}

func nilIfNoModule(inc *Include) *Include {
	if inc.Module == nil {
		return nil
	}
	return inc
}

// process resolves names into port references once all files are read.
func (p *xmlParser) process() {
	for _, m := range p.device.Modules {
		b := p.build(m)
		p.resolveRoutes(m, b)
		p.resolveAttached(m, b)
		for _, d := range m.DevicePortList() {
			if len(d.Profiles) == 0 {
				d.Profiles = append(d.Profiles, DefaultProfile(d.Direction()))
			}
		}
	}
	p.logger.Debug("Parsed configuration", "modules", len(p.device.Modules), "includes", len(p.includes))
	p.builds = nil
	p.includes = nil
}

func (p *xmlParser) resolveRoutes(m *Module, b *moduleBuild) {
	for _, raw := range b.routes {
		r := &Route{Type: RouteMix}
		switch raw.typ {
		case "mix", "":
		case "mux":
			r.Type = RouteMux
		default:
			p.logger.Info("Unknown route type, assuming mix", "module", m.Name, "type", raw.typ, "line", raw.line)
		}

		sink := m.FindPort(raw.sink)
		if sink == nil {
			p.logger.Debug("Dropping route to unknown sink", "module", m.Name, "sink", raw.sink)
			continue
		}
		r.Sink = sink.ID
		for _, name := range raw.sources {
			src := m.FindPort(name)
			if src == nil {
				p.logger.Debug("Dropping unknown route source", "module", m.Name, "sink", raw.sink, "source", name)
				continue
			}
			if src.Type == sink.Type {
				p.logger.Info("Dropping route source of the same port type as its sink",
					"module", m.Name, "sink", raw.sink, "source", name, "type", src.Type)
				continue
			}
			r.Sources = append(r.Sources, src.ID)
		}
		m.Routes = append(m.Routes, r)
	}
}

func (p *xmlParser) resolveAttached(m *Module, b *moduleBuild) {
	for _, name := range b.attached {
		d := m.FindDevicePort(name)
		if d == nil {
			p.logger.Info("Unknown attached device", "module", m.Name, "device", name)
			continue
		}
		m.AttachDevice(d.ID)
	}
	if b.defaultOutput != "" {
		d := m.FindDevicePort(b.defaultOutput)
		if d == nil {
			p.logger.Info("Unknown default output device", "module", m.Name, "device", b.defaultOutput)
			return
		}
		m.DefaultOutputDevice = d.ID
	}
}
