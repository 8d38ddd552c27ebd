// Package errors defines the error types and exit codes for sweepctl.
//
// Every user-visible failure is represented as a SweepError carrying an
// exit code, so that main can translate any error chain into a process
// exit status with GetExitCode. Launch failures propagate the child
// process's own exit code when it is known.
package errors
