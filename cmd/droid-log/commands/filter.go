package commands

import (
	"fmt"

	"github.com/droidaudio/droid-go/pkg/log"
)

// RunFilter copies the events of path that c selects into a new .rlog file
// at output and returns how many were copied. An existing output file is
// appended to.
func RunFilter(path, output string, c Criteria) (int, error) {
	filter, err := c.Filter()
	if err != nil {
		return 0, err
	}

	out, err := log.NewFileLogger(output)
	if err != nil {
		return 0, err
	}
	err = scan(path, filter, func(event log.Event) error {
		out.Log(event)
		return nil
	})
	if werr := out.Err(); err == nil && werr != nil {
		err = werr
	}
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", output, cerr)
	}
	return out.Count(), err
}
