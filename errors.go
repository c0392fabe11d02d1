package gflags

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFlags is the sentinel matched by every error raised by this
// package: errors.Is(err, ErrFlags) is true for all of them,
// whichever concrete type they have.
var ErrFlags = errors.New("flags error")

// ErrShortNameTooLong is returned when a flag is registered with a
// shorthand longer than one character.
var ErrShortNameTooLong = errors.New("short names can only be 1 character long")

// flagsError is a plain message error matching ErrFlags, for failures
// which need no dedicated type.
type flagsError struct {
	msg string
	err error
}

func (e *flagsError) Error() string { return e.msg }

func (e *flagsError) Is(target error) bool { return target == ErrFlags }

func (e *flagsError) Unwrap() error { return e.err }

func newFlagsErrorf(format string, args ...any) error {
	err := &flagsError{msg: fmt.Sprintf(format, args...)}

	// Keep wrapped sentinels reachable through errors.Is.
	for _, arg := range args {
		if cause, ok := arg.(error); ok {
			err.err = cause
		}
	}

	return err
}

// DuplicateFlagError is returned when a flag name is registered twice
// without permission to do so.
type DuplicateFlagError struct {
	// Name is the colliding flag name.
	Name string

	// FirstModule and SecondModule are the modules which defined the
	// existing and the incoming flag, when known.
	FirstModule  string
	SecondModule string

	// FirstRegistry and SecondRegistry name the two flag sets involved
	// when the collision happened while merging registries.
	FirstRegistry  string
	SecondRegistry string
}

func (e *DuplicateFlagError) Error() string {
	msg := fmt.Sprintf("the flag --%s is defined twice", e.Name)

	if e.FirstModule != "" || e.SecondModule != "" {
		msg += fmt.Sprintf(", first from %s, second from %s",
			orUnknown(e.FirstModule), orUnknown(e.SecondModule))
	}

	if e.FirstRegistry != "" || e.SecondRegistry != "" {
		msg += fmt.Sprintf(" (registries %s and %s)",
			orUnknown(e.FirstRegistry), orUnknown(e.SecondRegistry))
	}

	return msg
}

func orUnknown(name string) string {
	if name == "" {
		return "<unknown>"
	}

	return name
}

func (e *DuplicateFlagError) Is(target error) bool { return target == ErrFlags }

// IllegalFlagValue is returned when an argument cannot be parsed or
// does not satisfy the validators of its flag.
type IllegalFlagValue struct {
	// Name and Value identify the assignment that was refused.
	Name  string
	Value string

	// Flags describes every flag a cross-flag validator inspected,
	// rendered as name=value pairs. When set, it replaces the single
	// name and value in the message.
	Flags string

	// Err is the underlying parse or validation failure.
	Err error
}

func (e *IllegalFlagValue) Error() string {
	switch {
	case e.Flags != "":
		return fmt.Sprintf("%s: %s", e.Flags, e.Err)
	case e.Value == "":
		return fmt.Sprintf("flag --%s: %s", e.Name, e.Err)
	default:
		return fmt.Sprintf("flag --%s=%s: %s", e.Name, e.Value, e.Err)
	}
}

func (e *IllegalFlagValue) Is(target error) bool { return target == ErrFlags }

func (e *IllegalFlagValue) Unwrap() error { return e.Err }

// UnrecognizedFlagError is returned when a command-line argument names
// a flag that was never defined, or when a flag is looked up under an
// unknown name.
type UnrecognizedFlagError struct {
	// Name is the unknown flag name.
	Name string

	// Value holds the argument value when one was attached to the
	// unknown flag on the command line.
	Value string

	// Suggestions holds close registered names, if any.
	Suggestions []string
}

func (e *UnrecognizedFlagError) Error() string {
	msg := fmt.Sprintf("unknown command line flag '%s'", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean '%s'?", strings.Join(e.Suggestions, "', '"))
	}

	return msg
}

func (e *UnrecognizedFlagError) Is(target error) bool { return target == ErrFlags }

// CantOpenFlagFileError is returned when a file named by a --flagfile
// directive cannot be read.
type CantOpenFlagFileError struct {
	// Name is the file that could not be opened.
	Name string

	// Err is the underlying filesystem error.
	Err error
}

func (e *CantOpenFlagFileError) Error() string {
	return fmt.Sprintf("can't open flag file %s: %s", e.Name, e.Err)
}

func (e *CantOpenFlagFileError) Is(target error) bool { return target == ErrFlags }

func (e *CantOpenFlagFileError) Unwrap() error { return e.Err }

// UnparsedFlagAccessError is returned when a flag value is read before
// command-line parsing has run, and the flag set forbids such reads.
type UnparsedFlagAccessError struct {
	// Name is the flag that was accessed.
	Name string
}

func (e *UnparsedFlagAccessError) Error() string {
	return fmt.Sprintf("trying to access flag --%s before flags were parsed", e.Name)
}

func (e *UnparsedFlagAccessError) Is(target error) bool { return target == ErrFlags }
