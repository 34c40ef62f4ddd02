package hal

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Status is a failed driver call. Code is a negative errno value.
type Status struct {
	Op   string
	Code int
}

// NewStatus returns the status of op failing with errno.
func NewStatus(op string, errno unix.Errno) *Status {
	return &Status{Op: op, Code: -int(errno)}
}

// Error implements error.
func (s *Status) Error() string {
	return fmt.Sprintf("%s: %v (%d)", s.Op, unix.Errno(-s.Code), s.Code)
}

// Is matches another Status with the same code, or the bare errno.
func (s *Status) Is(target error) bool {
	switch t := target.(type) {
	case *Status:
		return t.Code == s.Code
	case unix.Errno:
		return -int(t) == s.Code
	}
	return false
}

// Code returns the negative errno value carried by err, 0 for nil and
// -EIO for errors that carry none.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var s *Status
	if errors.As(err, &s) {
		return s.Code
	}
	var errno unix.Errno
	if errors.As(err, &errno) {
		return -int(errno)
	}
	return -int(unix.EIO)
}
