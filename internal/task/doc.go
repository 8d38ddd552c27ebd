// Package task registers the automaton tasks the training entry point
// understands, together with their transformer vocabulary sizes.
//
// The registry exists for listing and for derivations (run names, sample
// bounds). The launch path never requires a task to be known: task
// selections are passed to the training process verbatim, including
// comma-joined sweep axes naming several tasks at once.
package task
