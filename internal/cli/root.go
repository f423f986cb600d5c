// Package cli implements the task-cli command tree.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rougho/task-tracker/internal/config"
	"github.com/rougho/task-tracker/internal/task"
	"github.com/rougho/task-tracker/internal/version"
)

var storeFile string

var rootCmd = &cobra.Command{
	Use:           "task-cli",
	Short:         "A simple command-line task tracker",
	Long:          `Task Tracker CLI manages short textual tasks with a status and timestamps, persisted to a JSON file. Task IDs shown in listings are positions: they stay a dense 1..N sequence after every operation, so the ID of a task can change when another task is deleted.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFile, "file", "", "Path of the task file (overrides "+config.ConfigFileName+")")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(markDoneCmd)
	rootCmd.AddCommand(markInProgressCmd)
	rootCmd.AddCommand(markTodoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStore resolves the task file path (flag over config file over
// default) and loads the store.
func openStore() (*task.Store, error) {
	path := storeFile
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.DataFile
	}
	return task.Open(path)
}

// parseIndex converts a positional index argument.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &task.ValidationError{Field: "index", Reason: fmt.Sprintf("%q is not a number", arg)}
	}
	return n, nil
}

// parseStatusFlag converts an optional status flag value. Empty input
// means the flag was not provided.
func parseStatusFlag(s string) (task.Status, error) {
	if s == "" {
		return "", nil
	}
	return task.ParseStatus(s)
}
