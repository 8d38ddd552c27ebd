package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExitError reports a child process that ran and exited non-zero.
type ExitError struct {
	// Code is the child's exit status.
	Code int

	// Err is the underlying error from os/exec.
	Err error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the child exit status from an error chain.
// Returns -1 when the error does not carry one.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (e *osExecutor) Run(ctx context.Context, command Command) error {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Dir = command.Dir

	// Scoped environment: the child sees the extra variables, the
	// parent's environment is untouched.
	if len(command.ExtraEnv) > 0 {
		cmd.Env = append(os.Environ(), command.ExtraEnv...)
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var execExit *exec.ExitError
	if errors.As(err, &execExit) {
		return &ExitError{Code: execExit.ExitCode(), Err: err}
	}

	return err
}
