package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/history"
	"github.com/di-automata/sweepctl/internal/launch"
	"github.com/di-automata/sweepctl/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a preset interactively and launch or preview it",
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	entries, err := loadPresetEntries()
	if err != nil {
		return err
	}

	tuiEntries := make([]tui.PresetEntry, len(entries))
	for i, entry := range entries {
		tuiEntries[i] = tui.PresetEntry{Name: entry.name, Experiment: entry.experiment}
	}

	result, err := tui.RunPicker(tuiEntries)
	if err != nil {
		return err
	}

	switch result.Action {
	case tui.ActionLaunch:
		experiment, err := loadExperiment("", []string{result.Preset}, nil, 0)
		if err != nil {
			return err
		}

		logInfo("Launching %s (%d iteration(s))", experiment.RunName, experiment.Runner.Repeats)

		launcher := launch.New(experiment)
		launcher.History = history.NewLogger(paths().StateDir)

		if err := launcher.Run(cmd.Context()); err != nil {
			logError("Launch failed: %v", err)
			return err
		}

		logSuccess("Run %s completed", experiment.RunName)

	case tui.ActionPreview:
		experiment, err := loadExperiment("", []string{result.Preset}, nil, 0)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), launch.CommandLine(experiment))
	}

	return nil
}
