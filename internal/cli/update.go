package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rougho/task-tracker/internal/output"
	"github.com/rougho/task-tracker/internal/task"
)

var updateStatus string

var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Update an existing task",
	Long:  `Update the description of an existing task, and its status when --status is provided. The status is only changed when the flag is set explicitly.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		opts := task.UpdateOptions{Description: &args[1]}
		if cmd.Flags().Changed("status") {
			status, err := task.ParseStatus(updateStatus)
			if err != nil {
				return err
			}
			opts.Status = &status
		}

		st, err := openStore()
		if err != nil {
			return err
		}

		return runUpdate(st, cmd.OutOrStdout(), index, opts)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "New status (todo, in-progress, done)")
}

func runUpdate(st *task.Store, out io.Writer, index int, opts task.UpdateOptions) error {
	t, err := st.Update(index, opts)
	if err != nil {
		return err
	}

	output.Updated(out, t)
	return nil
}
