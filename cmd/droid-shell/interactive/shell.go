// Package interactive provides the interactive command-line interface of
// droid-shell.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/hwmodule"
	"github.com/droidaudio/droid-go/pkg/inspect"
	"github.com/droidaudio/droid-go/pkg/sample"
)

var errArgs = errors.New("wrong number of arguments")

// defaultSpec is used by open when no spec is given.
var defaultSpec = sample.Spec{Format: sample.FormatS16LE, Rate: 48000, Channels: 2}

// Shell drives one opened hardware module from the command line.
type Shell struct {
	rl  *readline.Instance
	out io.Writer

	module    *hwmodule.Module
	inspector *inspect.Inspector
	formatter *inspect.Formatter

	// Streams are numbered in open order; numbers are never reused.
	streams map[int]*hwmodule.Stream
	nextID  int
}

// New creates a shell with a readline terminal. Attach must be called
// before Run.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "droid> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	sh := newShell(rl.Stdout())
	sh.rl = rl
	return sh, nil
}

func newShell(out io.Writer) *Shell {
	return &Shell{
		out:       out,
		formatter: inspect.NewFormatter(),
		streams:   make(map[int]*hwmodule.Stream),
		nextID:    1,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (sh *Shell) Stdout() io.Writer {
	return sh.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (sh *Shell) Stderr() io.Writer {
	return sh.rl.Stderr()
}

// Attach sets the module the shell operates on. dev is the description
// the module was opened from.
func (sh *Shell) Attach(dev *config.Device, m *hwmodule.Module) {
	sh.module = m
	sh.inspector = inspect.NewInspector(dev)
}

// Run starts the interactive command loop.
func (sh *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer sh.rl.Close()

	sh.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := sh.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(sh.out, "Exiting...")
			cancel()
			return
		}

		if sh.Exec(line) {
			fmt.Fprintln(sh.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Close closes every stream the shell opened.
func (sh *Shell) Close() {
	for _, id := range sh.ids() {
		_ = sh.streams[id].Close()
		delete(sh.streams, id)
	}
}

// Exec runs one command line and reports whether the shell should exit.
func (sh *Shell) Exec(line string) bool {
	parts, err := splitArgs(line)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return false
	}
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		sh.printHelp()
	case "inspect", "i":
		err = sh.cmdInspect(args)
	case "graph", "g":
		err = sh.cmdGraph()
	case "open", "o":
		err = sh.cmdOpen(args)
	case "streams", "s":
		sh.cmdStreams()
	case "close":
		err = sh.withStream(args, func(s *hwmodule.Stream) error { return s.Close() })
	case "standby":
		err = sh.withStream(args, func(s *hwmodule.Stream) error { return s.Standby() })
	case "resume":
		err = sh.withStream(args, func(s *hwmodule.Stream) error { return s.Resume() })
	case "reconfigure":
		err = sh.withStream(args, func(s *hwmodule.Stream) error { return s.Reconfigure() })
	case "write", "w":
		err = sh.cmdTransfer(args, true)
	case "read", "r":
		err = sh.cmdTransfer(args, false)
	case "route":
		err = sh.cmdRoute(args)
	case "mode":
		err = sh.cmdMode(args)
	case "mute":
		err = sh.cmdMute(args)
	case "voice":
		err = sh.cmdVoice(args)
	case "set":
		err = sh.cmdSet(args)
	case "get":
		err = sh.cmdGet(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(sh.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
	if cmd == "close" && err == nil {
		sh.forget(args[0])
	}
	return false
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, `
Audio Module Commands:
  Inspection:
    inspect [path]     - Inspect the description (or a module, section or port)
    graph              - Show the routing graph of the open module

  Streams:
    open out <mix> <device> [format rate channels]
    open in <mix> <device> [format rate channels]
                       - Open a stream (default s16le 48000 2)
    streams            - List open streams
    close <n>          - Close stream n
    standby <n>        - Put stream n in standby
    resume <n>         - Leave standby
    reconfigure <n>    - Move an input stream to the mix port of the current mode
    write <n> <bytes>  - Write silence to an output stream
    read <n> <bytes>   - Read from an input stream

  Routing:
    route out <device>      - Route all outputs to a device
    route in <n> <device>   - Route input stream n to a device
    mode [name]             - Show or set the mode (normal, ringtone, in_call, in_communication)
    mute [on|off]           - Show or set the microphone mute
    voice <0..1>            - Set the call volume
    set <k=v;...>           - Set driver parameters
    get <k;...>             - Query driver parameters

  General:
    help               - Show this help
    quit               - Exit shell

  Names:
    Quote names with spaces: open out "primary output" speaker
    Devices accept tag names, type names or routing names (output-speaker)`)
}

func (sh *Shell) cmdInspect(args []string) error {
	if len(args) == 0 {
		for _, m := range sh.inspector.InspectDevice() {
			fmt.Fprint(sh.out, sh.formatter.FormatModule(m))
		}
		return nil
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	switch {
	case path.Kind == inspect.KindModule:
		m, err := sh.inspector.InspectModule(path.Module)
		if err != nil {
			return err
		}
		fmt.Fprint(sh.out, sh.formatter.FormatModule(*m))
	case path.Kind == inspect.KindGraph:
		g, err := sh.inspector.InspectGraph(path.Module)
		if err != nil {
			return err
		}
		fmt.Fprint(sh.out, sh.formatter.FormatGraph(g))
	case path.Kind == inspect.KindRoutes:
		m, err := sh.inspector.InspectModule(path.Module)
		if err != nil {
			return err
		}
		fmt.Fprint(sh.out, sh.formatter.FormatRoutes(m.Routes, 0))
	case path.IsPartial():
		m := inspect.ResolveModule(sh.inspector.Device(), path.Module)
		if m == nil {
			return fmt.Errorf("%w: %s", inspect.ErrModuleNotFound, path.Module)
		}
		for _, name := range inspect.PortNames(m, path.Kind) {
			fmt.Fprintln(sh.out, name)
		}
	default:
		p, err := sh.inspector.InspectPort(path)
		if err != nil {
			return err
		}
		fmt.Fprint(sh.out, sh.formatter.FormatPort(*p, 0))
	}
	return nil
}

func (sh *Shell) cmdGraph() error {
	g, err := sh.inspector.InspectGraph(sh.module.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(sh.out, sh.formatter.FormatGraph(g))
	return nil
}

func parseDirection(s string) (audio.Direction, error) {
	switch strings.ToLower(s) {
	case "out", "output":
		return audio.DirectionOutput, nil
	case "in", "input":
		return audio.DirectionInput, nil
	}
	return 0, fmt.Errorf("invalid direction %q (must be out or in)", s)
}

// mixPort resolves a mix port of the module's private configuration.
func (sh *Shell) mixPort(name string) (*config.Port, error) {
	p := inspect.ResolvePort(sh.module.Config(), inspect.KindMix, name)
	if p == nil {
		return nil, fmt.Errorf("%w: mix %q", inspect.ErrPortNotFound, name)
	}
	return p, nil
}

// devicePort resolves a device port by routing name first, then by tag or
// type name.
func (sh *Shell) devicePort(name string) (*config.Port, error) {
	if rp := sh.module.Profiles().Port(name); rp != nil && !rp.IsParking() {
		return rp.Device, nil
	}
	p := inspect.ResolvePort(sh.module.Config(), inspect.KindDevice, name)
	if p == nil {
		return nil, fmt.Errorf("%w: device %q", inspect.ErrPortNotFound, name)
	}
	return p, nil
}

func parseSpec(args []string) (sample.Spec, error) {
	if len(args) == 0 {
		return defaultSpec, nil
	}
	if len(args) != 3 {
		return sample.Spec{}, fmt.Errorf("%w: spec is <format> <rate> <channels>", errArgs)
	}
	format, ok := sample.ParseFormat(args[0])
	if !ok {
		return sample.Spec{}, fmt.Errorf("%w: %s", sample.ErrUnsupportedFormat, args[0])
	}
	rate, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return sample.Spec{}, fmt.Errorf("invalid rate %q", args[1])
	}
	channels, err := strconv.ParseUint(args[2], 10, 8)
	if err != nil {
		return sample.Spec{}, fmt.Errorf("invalid channel count %q", args[2])
	}
	spec := sample.Spec{Format: format, Rate: uint32(rate), Channels: uint8(channels)}
	if !spec.Valid() {
		return sample.Spec{}, fmt.Errorf("%w: %s", sample.ErrInvalidSpec, spec)
	}
	return spec, nil
}

func (sh *Shell) cmdOpen(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: open <out|in> <mix> <device> [format rate channels]", errArgs)
	}
	dir, err := parseDirection(args[0])
	if err != nil {
		return err
	}
	mix, err := sh.mixPort(args[1])
	if err != nil {
		return err
	}
	dev, err := sh.devicePort(args[2])
	if err != nil {
		return err
	}
	spec, err := parseSpec(args[3:])
	if err != nil {
		return err
	}

	req := hwmodule.StreamRequest{Mix: mix, Device: dev, Spec: spec}
	var s *hwmodule.Stream
	if dir == audio.DirectionInput {
		req.Source = audio.SourceMic
		s, err = sh.module.OpenInput(req)
	} else {
		s, err = sh.module.OpenOutput(req)
	}
	if err != nil {
		return err
	}

	id := sh.nextID
	sh.nextID++
	sh.streams[id] = s
	fmt.Fprintf(sh.out, "Opened stream %d: %s\n", id, describeStream(s))
	return nil
}

func describeStream(s *hwmodule.Stream) string {
	var sb strings.Builder
	dir := "out"
	if s.Direction() == audio.DirectionInput {
		dir = "in"
	}
	fmt.Fprintf(&sb, "%s %q -> %q %s (%s)", dir, s.Mix().Name, s.Device().Name, s.Spec(), s.Channels())
	if s.IsPrimary() {
		sb.WriteString(" primary")
	}
	if s.InStandby() {
		sb.WriteString(" standby")
	}
	if s.ReconfigureNeeded() {
		sb.WriteString(" reconfigure")
	}
	return sb.String()
}

func (sh *Shell) ids() []int {
	ids := make([]int, 0, len(sh.streams))
	for id := range sh.streams {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (sh *Shell) cmdStreams() {
	if len(sh.streams) == 0 {
		fmt.Fprintln(sh.out, "No open streams")
		return
	}
	for _, id := range sh.ids() {
		fmt.Fprintf(sh.out, "  %d: %s\n", id, describeStream(sh.streams[id]))
	}
	fmt.Fprintf(sh.out, "Mode: %s\n", sh.module.Mode())
	if d := sh.module.OutputDevice(); d != nil {
		fmt.Fprintf(sh.out, "Output device: %s\n", d.Name)
	}
}

func (sh *Shell) stream(arg string) (*hwmodule.Stream, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid stream number %q", arg)
	}
	s, ok := sh.streams[id]
	if !ok {
		return nil, fmt.Errorf("no stream %d", id)
	}
	return s, nil
}

func (sh *Shell) withStream(args []string, fn func(*hwmodule.Stream) error) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected a stream number", errArgs)
	}
	s, err := sh.stream(args[0])
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Stream %s: %s\n", args[0], describeStream(s))
	return nil
}

func (sh *Shell) forget(arg string) {
	if id, err := strconv.Atoi(arg); err == nil {
		delete(sh.streams, id)
	}
}

func (sh *Shell) cmdTransfer(args []string, write bool) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <n> <bytes>", errArgs)
	}
	s, err := sh.stream(args[0])
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(args[1])
	if err != nil || size <= 0 {
		return fmt.Errorf("invalid byte count %q", args[1])
	}

	buf := make([]byte, size)
	var n int
	if write {
		n, err = s.Write(buf)
	} else {
		n, err = s.Read(buf)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%d bytes transferred\n", n)
	return nil
}

func (sh *Shell) cmdRoute(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: route out <device> | route in <n> <device>", errArgs)
	}
	dir, err := parseDirection(args[0])
	if err != nil {
		return err
	}

	if dir == audio.DirectionOutput {
		dev, err := sh.devicePort(args[1])
		if err != nil {
			return err
		}
		if err := sh.module.SetOutputRoute(dev); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Outputs routed to %s\n", dev.Name)
		return nil
	}

	if len(args) != 3 {
		return fmt.Errorf("%w: route in <n> <device>", errArgs)
	}
	s, err := sh.stream(args[1])
	if err != nil {
		return err
	}
	dev, err := sh.devicePort(args[2])
	if err != nil {
		return err
	}
	if err := sh.module.SetInputRoute(s, dev); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Stream %s routed to %s\n", args[1], dev.Name)
	return nil
}

// parseMode accepts short names like "in_call" as well as canonical names.
func parseMode(s string) (audio.Mode, error) {
	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "AUDIO_MODE_") {
		name = "AUDIO_MODE_" + name
	}
	v, ok := audio.Modes.FromString(name)
	if !ok {
		return audio.ModeInvalid, fmt.Errorf("unknown mode %q", s)
	}
	return audio.Mode(v), nil
}

func (sh *Shell) cmdMode(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(sh.out, "Mode: %s\n", sh.module.Mode())
		return nil
	}
	mode, err := parseMode(args[0])
	if err != nil {
		return err
	}
	if err := sh.module.SetMode(mode); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Mode: %s\n", mode)
	for _, id := range sh.ids() {
		if sh.streams[id].ReconfigureNeeded() {
			fmt.Fprintf(sh.out, "  stream %d needs reconfigure\n", id)
		}
	}
	return nil
}

func (sh *Shell) cmdMute(args []string) error {
	if len(args) == 1 {
		var mute bool
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			mute = true
		case "off", "false", "0":
		default:
			return fmt.Errorf("invalid mute value %q (must be on or off)", args[0])
		}
		if err := sh.module.SetMicMute(mute); err != nil {
			return err
		}
	}
	mute, err := sh.module.MicMute()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Mic mute: %t\n", mute)
	return nil
}

func (sh *Shell) cmdVoice(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: voice <0..1>", errArgs)
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("invalid volume %q", args[0])
	}
	if err := sh.module.SetVoiceVolume(float32(v)); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Voice volume: %.2f\n", v)
	return nil
}

func (sh *Shell) cmdSet(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: set <k=v;...>", errArgs)
	}
	return sh.module.SetParameters(args[0])
}

func (sh *Shell) cmdGet(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: get <k;...>", errArgs)
	}
	v, err := sh.module.GetParameters(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, v)
	return nil
}

// splitArgs splits a command line on whitespace. Double quotes group
// words into one argument.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && (r == ' ' || r == '\t'):
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if pending {
		args = append(args, cur.String())
	}
	return args, nil
}
