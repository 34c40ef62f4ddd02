// Command droid-log reads the route event logs (.rlog) that the bridge
// writes when the event_log setting is set, or that droid-shell writes
// with -event-log.
//
//	droid-log view -category route primary.rlog
//	droid-log view -port Speaker primary.rlog
//	droid-log export -format csv -o events.csv primary.rlog
//	droid-log filter -module primary -direction in -o capture.rlog primary.rlog
//	droid-log stats primary.rlog
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/droidaudio/droid-go/cmd/droid-log/commands"
)

type command struct {
	name    string
	summary string
	run     func(fs *flag.FlagSet, args []string) error
}

var cmds = []command{
	{"view", "print events in readable form", runView},
	{"export", "convert events to JSON lines or CSV", runExport},
	{"filter", "copy selected events into a new .rlog file", runFilter},
	{"stats", "summarize streams, routes and errors", runStats},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "-help" || name == "--help" {
		usage(os.Stdout)
		return 0
	}
	for _, c := range cmds {
		if c.name != name {
			continue
		}
		fs := flag.NewFlagSet("droid-log "+c.name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.Usage = func() {
			fmt.Fprintf(stderr, "usage: droid-log %s [flags] <file.rlog>\n\n%s.\n\n", c.name, c.summary)
			fs.PrintDefaults()
		}
		err := c.run(fs, args[1:])
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errFlags):
			return 2
		case errors.Is(err, errNoFile):
			fmt.Fprintln(stderr, "droid-log:", err)
			fs.Usage()
			return 2
		default:
			fmt.Fprintln(stderr, "droid-log:", err)
			return 1
		}
	}
	fmt.Fprintf(stderr, "droid-log: unknown command %q\n", name)
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: droid-log <command> [flags] <file.rlog>")
	fmt.Fprintln(w)
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

var (
	errNoFile = errors.New("log file argument required")

	// errFlags marks parse failures the flag package has already reported.
	errFlags = errors.New("invalid flags")
)

// parse parses args and returns the single positional log file.
func parse(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errFlags, err)
	}
	if fs.NArg() != 1 {
		return "", errNoFile
	}
	return fs.Arg(0), nil
}

func runView(fs *flag.FlagSet, args []string) error {
	var c commands.Criteria
	c.Register(fs, false)
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	return commands.RunView(path, c, os.Stdout)
}

func runExport(fs *flag.FlagSet, args []string) error {
	format := fs.String("format", commands.FormatJSONL, "jsonl or csv")
	output := fs.String("o", "", "output file (default stdout)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}

	if *output == "" {
		return commands.RunExport(path, *format, os.Stdout)
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := commands.RunExport(path, *format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runFilter(fs *flag.FlagSet, args []string) error {
	var c commands.Criteria
	c.Register(fs, true)
	output := fs.String("o", "", "output .rlog file (required)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	if *output == "" {
		return errors.New("-o is required")
	}

	n, err := commands.RunFilter(path, *output, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d events written to %s\n", n, *output)
	return nil
}

func runStats(fs *flag.FlagSet, args []string) error {
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
