package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rougho/task-tracker/internal/cli"
	"github.com/rougho/task-tracker/internal/config"
	"github.com/rougho/task-tracker/internal/exitcode"
	"github.com/rougho/task-tracker/internal/output"
	"github.com/rougho/task-tracker/internal/task"
	"github.com/rougho/task-tracker/internal/tui"
)

func main() {
	// If no args, launch the interactive browser; otherwise route to CLI
	if len(os.Args) == 1 {
		if err := runBrowser(); err != nil {
			fail(err)
		}
		return
	}

	if err := cli.Execute(); err != nil {
		fail(err)
	}
}

func runBrowser() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := task.Open(cfg.DataFile)
	if err != nil {
		return err
	}

	return tui.Run(st)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, output.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	os.Exit(exitCode(err))
}

// exitCode maps a surfaced error to its exit code. CorruptStoreError
// is matched first: a malformed record surfaces as a CorruptStoreError
// wrapping the field-level ValidationError, and the wrapper decides
// the code. Anything that is not a store error kind or a filesystem
// failure is a usage problem.
func exitCode(err error) int {
	var (
		validationErr *task.ValidationError
		notFoundErr   *task.NotFoundError
		corruptErr    *task.CorruptStoreError
		pathErr       *fs.PathError
	)

	switch {
	case errors.As(err, &corruptErr):
		return exitcode.CorruptStore
	case errors.As(err, &notFoundErr):
		return exitcode.NotFound
	case errors.As(err, &validationErr):
		return exitcode.ValidationError
	case errors.As(err, &pathErr):
		return exitcode.IOError
	default:
		return exitcode.ValidationError
	}
}
