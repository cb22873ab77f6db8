package core

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Fatal errors
// -----------------------------------------------------------------------------

// Error is the single fatal-condition type for the tool. Every condition
// that should terminate the process carries a human-readable message and
// the exit code the process must report. It is a plain error value: it is
// returned up the call stack and classified exactly once, at the top
// level, never recovered from mid-flight.
type Error struct {
	Message string
	Code    int
}

func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the exit code attached to the error, defaulting to 1
// when unset.
func (e *Error) ExitCode() int {
	if e.Code == 0 {
		return 1
	}
	return e.Code
}

// Fatalf builds a fatal error with exit code 1.
func Fatalf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Code: 1}
}

// FatalCode builds a fatal error with an explicit exit code.
func FatalCode(code int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Code: code}
}

// AsFatal extracts a fatal error from an error chain.
func AsFatal(err error) (*Error, bool) {
	var fatal *Error
	if errors.As(err, &fatal) {
		return fatal, true
	}
	return nil, false
}
