package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rougho/task-tracker/internal/output"
	"github.com/rougho/task-tracker/internal/task"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task permanently",
	Long:  `Permanently remove a task from your list. Shows the task and asks for confirmation first; this cannot be undone. Remaining tasks are renumbered to close the gap.`,
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

		return runDelete(st, cmd.InOrStdin(), cmd.OutOrStdout(), index, deleteForce)
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(st *task.Store, in io.Reader, out io.Writer, index int, force bool) error {
	// Resolve first so the prompt can show the target task.
	t, err := st.Get(index)
	if err != nil {
		return err
	}

	if !force {
		output.Table(out, []task.Task{t}, "Task to Delete")
		fmt.Fprint(out, "Are you sure you want to delete this task? This cannot be undone. [y/N] ")

		reader := bufio.NewReader(in)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			output.Cancelled(out)
			return nil
		}
	}

	removed, err := st.Delete(index)
	if err != nil {
		return err
	}

	output.Deleted(out, removed)
	return nil
}
