package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output, separate from the structured debug logging.
// Launch progress and results are printed here with status-indicator
// prefixes.

var (
	// UserOut receives info and success messages. Defaults to stdout.
	UserOut io.Writer = os.Stdout

	// UserErr receives warnings and errors. Defaults to stderr.
	UserErr io.Writer = os.Stderr
)

// UserInfo prints an info message.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(UserOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(UserOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(UserErr, "⚠ "+format+"\n", args...)
}

// UserError prints an error message.
func UserError(format string, args ...any) {
	fmt.Fprintf(UserErr, "✗ "+format+"\n", args...)
}
