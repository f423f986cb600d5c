package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rougho/task-tracker/internal/output"
	"github.com/rougho/task-tracker/internal/task"
)

var (
	markDoneCmd       = newMarkCommand("mark-done", "Mark a task as completed", task.StatusDone)
	markInProgressCmd = newMarkCommand("mark-in-progress", "Mark a task as in-progress", task.StatusInProgress)
	markTodoCmd       = newMarkCommand("mark-todo", "Mark a task as todo", task.StatusTodo)
)

func newMarkCommand(name, short string, status task.Status) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <id>", name),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}

			return runMark(st, cmd.OutOrStdout(), index, status)
		},
	}
}

func runMark(st *task.Store, out io.Writer, index int, status task.Status) error {
	t, err := st.SetStatus(index, status)
	if err != nil {
		return err
	}

	output.Marked(out, t)
	return nil
}
