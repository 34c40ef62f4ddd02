package config

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	// ErrOpen is returned when a configuration file cannot be opened.
	// Callers usually move on to the next candidate location.
	ErrOpen = errors.New("cannot open configuration")

	// ErrSyntax is returned for malformed markup or an unreadable line.
	ErrSyntax = errors.New("malformed configuration")

	// ErrMissingAttribute is returned when an element lacks a mandatory
	// attribute altogether.
	ErrMissingAttribute = errors.New("missing mandatory attribute")

	// ErrUnknownSection is returned by the legacy parser for a section or
	// key it does not know.
	ErrUnknownSection = errors.New("unknown section or key")

	// ErrInclude is returned when an include directive cannot be resolved.
	ErrInclude = errors.New("include failed")
)

// ParseError carries the file and line of a parse failure.
type ParseError struct {
	File string
	Line int
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
