// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
)

// Command describes a single child-process invocation.
type Command struct {
	// Name is the executable to run, resolved via PATH.
	Name string

	// Args are the command-line arguments, not including Name.
	Args []string

	// ExtraEnv holds KEY=value pairs appended to the parent environment
	// for the child only. The parent environment is never mutated.
	ExtraEnv []string

	// Dir is the working directory for the child. Empty means inherit.
	Dir string
}

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// LookPath searches for an executable in the directories named by PATH.
	LookPath(file string) (string, error)

	// Run executes the command with stdin/stdout/stderr attached to the
	// current process and blocks until it exits. A non-zero child exit
	// status is returned as an *ExitError.
	Run(ctx context.Context, cmd Command) error
}

// Default instance using real OS operations.
var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementation.
func ResetDefaults() {
	defaultExecutor = &osExecutor{}
}
