package task

import "fmt"

// ValidationError reports bad input: an empty description, an unknown
// status, or an update with nothing to change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an index that does not resolve to a task.
type NotFoundError struct {
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task found with index %d", e.Index)
}

// CorruptStoreError reports a task file that exists but cannot be
// parsed into a well-formed task list.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("task file %s is corrupt: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}
