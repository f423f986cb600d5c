package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rougho/task-tracker/internal/output"
	"github.com/rougho/task-tracker/internal/task"
)

var listCmd = &cobra.Command{
	Use:   "list [todo|in-progress|done]",
	Short: "Display your tasks",
	Long:  `Display all tasks in a table, or only those with the given status.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *task.Status
		if len(args) == 1 {
			status, err := task.ParseStatus(args[0])
			if err != nil {
				return err
			}
			filter = &status
		}

		st, err := openStore()
		if err != nil {
			return err
		}

		return runList(st, cmd.OutOrStdout(), filter)
	},
}

func runList(st *task.Store, out io.Writer, filter *task.Status) error {
	title := "All Tasks"
	if filter != nil {
		title = "Search Results"
	}

	output.Table(out, st.List(filter), title)
	return nil
}
