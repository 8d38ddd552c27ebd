package launch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/di-automata/sweepctl/internal/config"
	"github.com/di-automata/sweepctl/internal/errors"
	"github.com/di-automata/sweepctl/internal/history"
	"github.com/di-automata/sweepctl/internal/logging"
	"github.com/di-automata/sweepctl/internal/override"
	"github.com/di-automata/sweepctl/internal/system"
)

// HydraFullErrorEnv is set on every child invocation so the training
// process reports full tracebacks. It is scoped to the child: the
// launcher's own environment is never mutated.
const HydraFullErrorEnv = "HYDRA_FULL_ERROR=1"

// RunIDEnvKey names the per-iteration correlation ID variable.
const RunIDEnvKey = "SWEEPCTL_RUN_ID"

// Launcher executes the training invocation for an experiment.
type Launcher struct {
	Experiment *config.Experiment
	Executor   system.CommandExecutor

	// History receives launch events when non-nil. Appending is
	// best-effort: a history failure never fails a launch.
	History *history.Logger
}

// New creates a Launcher using the default executor.
func New(experiment *config.Experiment) *Launcher {
	return &Launcher{
		Experiment: experiment,
		Executor:   system.DefaultExecutor(),
	}
}

// Run launches the training invocation Repeats times, sequentially.
// Each iteration rebuilds nothing: the argument list comes from the
// immutable experiment, so all iterations run an identical command line.
// A failed iteration is logged and does not stop later iterations; the
// returned error reflects the final iteration, matching the behavior of
// an unchecked shell loop whose exit status is its last command's.
func (l *Launcher) Run(ctx context.Context) error {
	experiment := l.Experiment

	interpreter, err := l.Executor.LookPath(experiment.Runner.Interpreter)
	if err != nil {
		return errors.InterpreterNotFound(experiment.Runner.Interpreter, err)
	}

	args := override.Args(experiment)
	repeats := experiment.Runner.Repeats

	logging.Debug("assembled training invocation",
		"interpreter", interpreter,
		"args", len(args),
		"repeats", repeats,
		"run", experiment.RunName)

	l.record(history.EventLaunch, "", fmt.Sprintf("%d iteration(s)", repeats))

	var finalErr error
	for i := 0; i < repeats; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ExitGeneralError, "launch interrupted", err)
		}

		runID := uuid.NewString()
		cmd := system.Command{
			Name:     interpreter,
			Args:     args,
			ExtraEnv: []string{HydraFullErrorEnv, RunIDEnvKey + "=" + runID},
		}

		logging.Info("launching training run",
			"run", experiment.RunName,
			"run_id", runID,
			"iteration", i+1,
			"of", repeats)

		err := l.Executor.Run(ctx, cmd)
		if err != nil {
			logging.Warn("training run failed",
				"run", experiment.RunName,
				"run_id", runID,
				"iteration", i+1,
				"error", err)
			l.record(history.EventError, runID, err.Error())
			finalErr = errors.LaunchFailed(system.ExitCode(err), err)
			continue
		}

		l.record(history.EventIteration, runID, "exit status 0")
		finalErr = nil
	}

	return finalErr
}

// record appends a history event, logging (not failing) on error.
func (l *Launcher) record(eventType history.EventType, runID, details string) {
	if l.History == nil {
		return
	}
	if err := l.History.LogEvent(eventType, l.Experiment.RunName, runID, details); err != nil {
		logging.Warn("history append failed", "run", l.Experiment.RunName, "error", err)
	}
}

// CommandLine renders the invocation as a shell command line, prefixed
// with the scoped environment assignment, exactly as Run would execute it.
func CommandLine(experiment *config.Experiment) string {
	argv := append([]string{experiment.Runner.Interpreter}, override.Args(experiment)...)
	return HydraFullErrorEnv + " " + shellquote.Join(argv...)
}
