package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/di-automata/sweepctl/internal/task"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the known automaton tasks",
	Long: `Tasks lists every automaton task the training entry point understands,
with the transformer vocabulary sizes implied by the task's defaults.
The launch path does not require a known task: selections pass through
verbatim, including sweep axes naming several tasks.`,
	RunE: runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tVOCAB\tOUTPUT VOCAB")

	for _, taskType := range task.All() {
		spec, err := task.DefaultSpec(taskType)
		if err != nil {
			return err
		}

		vocab, err := spec.VocabSize()
		if err != nil {
			return err
		}
		outputVocab, err := spec.OutputVocabSize()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%d\t%d\n", taskType, vocab, outputVocab)
	}

	return w.Flush()
}
