// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes, one per surfaced error kind.
const (
	// Success indicates successful completion.
	Success = 0

	// ValidationError indicates bad input (empty description, unknown
	// status, bad arguments).
	ValidationError = 1

	// NotFound indicates an index that does not resolve to a task.
	NotFound = 2

	// CorruptStore indicates an unreadable or malformed task file.
	CorruptStore = 3

	// IOError indicates a filesystem failure on read or write.
	IOError = 4
)
