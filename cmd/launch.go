package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/history"
	"github.com/di-automata/sweepctl/internal/launch"
)

var (
	launchConfigPath string
	launchRepeats    int
	launchDryRun     bool
	launchExtras     []string
)

var launchCmd = &cobra.Command{
	Use:   "launch [preset]",
	Short: "Assemble and run the training invocation",
	Long: `Launch builds the override command line for an experiment and runs it.

The experiment comes from a named preset or an explicit config file.
Comma-joined values (e.g. a list of learning rates) are forwarded to the
training framework verbatim; its multirun engine expands them into a
cross-product of runs. With --repeats N the identical invocation runs N
times in sequence; a failed iteration is reported and does not stop the
remaining ones.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().StringVarP(&launchConfigPath, "config", "c", "", "Path to an experiment config file")
	launchCmd.Flags().IntVar(&launchRepeats, "repeats", 0, "Override the configured repeat count")
	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "Print the command line instead of running it")
	launchCmd.Flags().StringArrayVar(&launchExtras, "set", nil, "Extra override token (key=value), appended verbatim; repeatable")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	experiment, err := loadExperiment(launchConfigPath, args, launchExtras, launchRepeats)
	if err != nil {
		return err
	}

	if launchDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), launch.CommandLine(experiment))
		return nil
	}

	logInfo("Launching %s (%d iteration(s))", experiment.RunName, experiment.Runner.Repeats)

	launcher := launch.New(experiment)
	launcher.History = history.NewLogger(paths().StateDir)

	if err := launcher.Run(cmd.Context()); err != nil {
		logError("Launch failed: %v", err)
		return err
	}

	logSuccess("Run %s completed", experiment.RunName)
	return nil
}
