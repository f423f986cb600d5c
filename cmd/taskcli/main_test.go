package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rougho/task-tracker/internal/exitcode"
	"github.com/rougho/task-tracker/internal/task"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			"validation",
			&task.ValidationError{Field: "description", Reason: "must not be empty"},
			exitcode.ValidationError,
		},
		{
			"not found",
			&task.NotFoundError{Index: 9},
			exitcode.NotFound,
		},
		{
			"corrupt store",
			&task.CorruptStoreError{Path: "data/task_data.json", Err: errors.New("unexpected end of JSON input")},
			exitcode.CorruptStore,
		},
		{
			// A malformed record surfaces as a CorruptStoreError wrapping
			// the field-level ValidationError; the wrapper must decide.
			"corrupt store wrapping validation",
			&task.CorruptStoreError{
				Path: "data/task_data.json",
				Err:  fmt.Errorf("task 1: %w", &task.ValidationError{Field: "description", Reason: "must not be empty"}),
			},
			exitcode.CorruptStore,
		},
		{
			"filesystem failure",
			&fs.PathError{Op: "open", Path: "data/task_data.json", Err: errors.New("permission denied")},
			exitcode.IOError,
		},
		{
			"wrapped filesystem failure",
			fmt.Errorf("failed to read task file: %w", &fs.PathError{Op: "open", Path: "x", Err: errors.New("permission denied")}),
			exitcode.IOError,
		},
		{
			"anything else is a usage problem",
			errors.New(`unknown command "frobnicate" for "task-cli"`),
			exitcode.ValidationError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

// TestExitCodeFromLoad drives the real load path: a task file with a
// malformed record must map to the corrupt-store exit code.
func TestExitCodeFromLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task_data.json")
	seed := `[{"description": "", "status": "todo", "id": "x", "index": 1, "createdAt": "2025-07-29 09:28:12", "updatedAt": "2025-07-29 09:28:12"}]`
	if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := task.Open(path)
	if err == nil {
		t.Fatal("expected load to fail")
	}

	if got := exitCode(err); got != exitcode.CorruptStore {
		t.Errorf("exitCode(%v) = %d, want %d", err, got, exitcode.CorruptStore)
	}
}
