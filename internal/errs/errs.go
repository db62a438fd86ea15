// Package errs provides common errors thrown in the app that are expected to be caught upstream
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrBackendUnavailable = errors.New("display backend unavailable")
	ErrNoDisplay          = errors.New("no primary display found")
)

// ArgumentError is returned when the positional arguments are missing or malformed.
type ArgumentError struct {
	Reason string
}

func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

// ModeNotFoundError means no available mode has the requested size at the
// current color depth and refresh rate.
type ModeNotFoundError struct {
	Width  int
	Height int
}

func (e *ModeNotFoundError) Error() string {
	return fmt.Sprintf("Could not find a mode that matched %dx%d", e.Width, e.Height)
}

// ProcessLaunchError wraps failures to start the child process.
type ProcessLaunchError struct {
	Command string
	Err     error
}

func (e *ProcessLaunchError) Error() string {
	return fmt.Sprintf("cant launch %s: %v", e.Command, e.Err)
}

func (e *ProcessLaunchError) Unwrap() error {
	return e.Err
}

// PlatformError carries the result code of a failed display subsystem call.
type PlatformError struct {
	Op   string
	Code int
	Msg  string
}

func (e *PlatformError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s failed with code %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s failed with code %d: %s", e.Op, e.Code, e.Msg)
}
