// Package logging provides logging utilities for sweepctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("assembling overrides", "task", task, "repeats", repeats)
//	logging.Warn("history append failed", "run", runName, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loading preset %s...", presetName)
//	logging.UserSuccess("Run %s completed", runName)
//	logging.UserWarning("Iteration %d failed", i)
//	logging.UserError("Failed to launch: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
