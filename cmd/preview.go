package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/launch"
)

var (
	previewConfigPath string
	previewExtras     []string
)

var previewCmd = &cobra.Command{
	Use:   "preview [preset]",
	Short: "Print the assembled command line without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewConfigPath, "config", "c", "", "Path to an experiment config file")
	previewCmd.Flags().StringArrayVar(&previewExtras, "set", nil, "Extra override token (key=value), appended verbatim; repeatable")
}

func runPreview(cmd *cobra.Command, args []string) error {
	experiment, err := loadExperiment(previewConfigPath, args, previewExtras, 0)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), launch.CommandLine(experiment))
	return nil
}
