// Package launch runs the assembled training invocation.
//
// The launcher is deliberately thin: no retries, no timeouts, no parsing
// of the training process's output. It resolves the interpreter, attaches
// stdio, sets the scoped child environment, and executes the identical
// command line once per configured repeat.
package launch
