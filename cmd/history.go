package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-name]",
	Short: "Show launch history",
	Long: `History lists past launch events. Without arguments it lists the run
names that have history; with a run name it prints that run's events.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := history.NewLogger(paths().StateDir)

	if len(args) == 0 {
		runs, err := logger.Runs()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No launch history.")
			return nil
		}
		for _, run := range runs {
			fmt.Fprintln(cmd.OutOrStdout(), run)
		}
		return nil
	}

	events, err := logger.Events(args[0])
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No history for %s.\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tEVENT\tRUN ID\tDETAILS")
	for _, event := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			event.Timestamp.Format("2006-01-02 15:04:05"),
			event.Type,
			event.RunID,
			event.Details)
	}
	return w.Flush()
}
