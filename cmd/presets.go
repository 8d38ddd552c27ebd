package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/tui"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available experiment presets",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	entries, err := loadPresetEntries()
	if err != nil {
		return err
	}

	tuiEntries := make([]tui.PresetEntry, len(entries))
	for i, entry := range entries {
		tuiEntries[i] = tui.PresetEntry{Name: entry.name, Experiment: entry.experiment}
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.SimpleList(tuiEntries))
	return nil
}
