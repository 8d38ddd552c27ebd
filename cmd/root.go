package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configDir  string
	stateDir   string
)

var rootCmd = &cobra.Command{
	Use:   "sweepctl",
	Short: "Hyperparameter-sweep launcher for automata training runs",
	Long: `sweepctl assembles and launches training invocations for the automata
developmental-interpretability experiments.

An experiment preset describes the training overrides: task selection,
learning rates, iteration counts, model depth, and the RLCT/SGLD sampling
hyperparameters. Comma-joined values denote sweep axes, expanded into a
cross-product of runs by the training framework's multirun engine.
sweepctl builds the override command line, sets HYDRA_FULL_ERROR=1 for
the child process, and runs it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Override the config directory")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Override the state directory")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
