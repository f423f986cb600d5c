package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rougho/task-tracker/internal/output"
	"github.com/rougho/task-tracker/internal/task"
)

var addStatus string

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Long:  `Add a new task to your list. New tasks start with status todo unless --status says otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := parseStatusFlag(addStatus)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}

		return runAdd(st, cmd.OutOrStdout(), args[0], status)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Initial status (todo, in-progress, done)")
}

func runAdd(st *task.Store, out io.Writer, description string, status task.Status) error {
	t, err := st.Add(description, status)
	if err != nil {
		return err
	}

	output.Added(out, t)
	return nil
}
