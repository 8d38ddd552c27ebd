package errors

import (
	"errors"
	"fmt"
)

// Exit codes for sweepctl
const (
	ExitSuccess             = 0
	ExitGeneralError        = 1
	ExitConfigError         = 2
	ExitPresetNotFound      = 3
	ExitInterpreterNotFound = 4
	ExitLaunchFailed        = 5
)

// SweepError is the base error type for sweepctl
type SweepError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SweepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SweepError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SweepError) ExitCode() int {
	return e.Code
}

// New creates a new SweepError
func New(code int, message string) *SweepError {
	return &SweepError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SweepError
func Wrap(code int, message string, cause error) *SweepError {
	return &SweepError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *SweepError {
	return Wrap(ExitConfigError, message, cause)
}

// PresetNotFound returns an error for a missing preset
func PresetNotFound(name string) *SweepError {
	return New(ExitPresetNotFound, fmt.Sprintf("preset not found: %s", name))
}

// InterpreterNotFound returns an error when the configured interpreter
// is not on PATH
func InterpreterNotFound(name string, cause error) *SweepError {
	return Wrap(ExitInterpreterNotFound, fmt.Sprintf("interpreter not found: %s", name), cause)
}

// LaunchFailed returns an error for a failed training invocation.
// exitCode is the child's exit status when known, or -1.
func LaunchFailed(exitCode int, cause error) *SweepError {
	code := ExitLaunchFailed
	if exitCode > 0 {
		code = exitCode
	}
	return Wrap(code, "launch failed", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SweepError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
