package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitNoDictionary = 10
)

var (
	// ErrInvalidConstraint marks malformed or unsatisfiable puzzle knowledge.
	ErrInvalidConstraint = errors.New("invalid constraint")
	// ErrDictionaryUnavailable marks a dictionary that could not be read.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
	// ErrOutputClosed is returned when the reader of stdout went away.
	ErrOutputClosed = errors.New("output closed")
)

// constraintError names the input that could not be accepted.
type constraintError struct {
	Field string
	Msg   string
}

func (e *constraintError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *constraintError) Unwrap() error { return ErrInvalidConstraint }

func constraintf(field, format string, args ...any) error {
	return &constraintError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// dictionaryError wraps the cause of a failed dictionary read.
type dictionaryError struct {
	Path string
	Err  error
}

func (e *dictionaryError) Error() string {
	return fmt.Sprintf("cannot load %q: %v", e.Path, e.Err)
}

func (e *dictionaryError) Unwrap() error { return e.Err }

func (e *dictionaryError) Is(target error) bool { return target == ErrDictionaryUnavailable }

// exitError carries a process exit status back to main.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}
	return e.Err.Error()
}

func (e *exitError) Unwrap() error { return e.Err }

// exitCode maps an error returned by run to a process exit status.
func exitCode(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, ErrInvalidConstraint):
		return exitUsage
	case errors.Is(err, ErrDictionaryUnavailable):
		return exitNoDictionary
	default:
		return exitFailure
	}
}
