package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store owns the ordered task collection and its on-disk JSON mirror.
// It is the sole writer of the task file and the sole authority for
// index assignment: indices are derived from position, so they stay a
// dense 1..N sequence after every operation.
//
// Tasks are addressed by their user-visible index, not their id. Two
// interleaved invocations can re-point an index between a listing and
// a mutating command; there is no locking and the last writer wins.
type Store struct {
	path  string
	tasks []Task
}

// NewStore creates a store backed by the given file path. The file is
// not touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open creates a store and loads the task file.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task file into memory. A missing file means an empty
// store. A file that is not a JSON array of well-formed tasks is a
// CorruptStoreError; the file is never repaired or overwritten here.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.tasks = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read task file: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return &CorruptStoreError{Path: s.path, Err: err}
	}
	// JSON null unmarshals into a nil slice without error; only an
	// actual array is a valid task file.
	if tasks == nil {
		return &CorruptStoreError{Path: s.path, Err: fmt.Errorf("not a task array")}
	}

	for i := range tasks {
		if err := validateStored(&tasks[i]); err != nil {
			return &CorruptStoreError{Path: s.path, Err: fmt.Errorf("task %d: %w", i+1, err)}
		}
	}

	s.tasks = tasks
	s.reindex()
	return nil
}

// validateStored checks a task read from disk and backfills fields the
// original file may lack, the way the source data always allowed.
func validateStored(t *Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", string(t.Status))}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	return nil
}

// Save writes the full collection back to the task file, creating the
// parent directory if needed. The write goes to a temp file which is
// renamed over the target, so a crash mid-write leaves the previous
// file intact.
func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	data = append(data, '\n')

	tmpPath := fmt.Sprintf("%s.tmp.%d", s.path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task at the given 1-based index.
func (s *Store) Get(index int) (Task, error) {
	if index < 1 || index > len(s.tasks) {
		return Task{}, &NotFoundError{Index: index}
	}
	return s.tasks[index-1], nil
}

// Add validates the description, appends a new task with the next
// index, and persists. Returns the new task.
func (s *Store) Add(description string, status Status) (Task, error) {
	t, err := NewTask(description, status)
	if err != nil {
		return Task{}, err
	}

	t.Index = len(s.tasks) + 1
	s.tasks = append(s.tasks, t)

	if err := s.Save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return Task{}, err
	}

	return t, nil
}

// UpdateOptions carries the optional field changes for Update. A nil
// field is left untouched.
type UpdateOptions struct {
	Description *string
	Status      *Status
}

// Update applies the provided field changes to the task at index,
// bumps updatedAt, and persists. At least one change must be provided.
func (s *Store) Update(index int, opts UpdateOptions) (Task, error) {
	if opts.Description == nil && opts.Status == nil {
		return Task{}, &ValidationError{Field: "update", Reason: "provide a new description or status"}
	}
	if opts.Description != nil && strings.TrimSpace(*opts.Description) == "" {
		return Task{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if opts.Status != nil && !opts.Status.Valid() {
		return Task{}, &ValidationError{Field: "status", Reason: "must be one of: todo, in-progress, done"}
	}

	if index < 1 || index > len(s.tasks) {
		return Task{}, &NotFoundError{Index: index}
	}

	prev := s.tasks[index-1]
	t := &s.tasks[index-1]
	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Status != nil {
		t.Status = *opts.Status
	}
	t.UpdatedAt = Now()

	if err := s.Save(); err != nil {
		s.tasks[index-1] = prev
		return Task{}, err
	}

	return *t, nil
}

// SetStatus changes only the status of the task at index.
func (s *Store) SetStatus(index int, status Status) (Task, error) {
	return s.Update(index, UpdateOptions{Status: &status})
}

// Delete removes the task at index, renumbers the remaining tasks to
// a dense 1..N sequence preserving their order, and persists. Returns
// the removed task for confirmation display.
func (s *Store) Delete(index int) (Task, error) {
	if index < 1 || index > len(s.tasks) {
		return Task{}, &NotFoundError{Index: index}
	}

	removed := s.tasks[index-1]
	remaining := make([]Task, 0, len(s.tasks)-1)
	remaining = append(remaining, s.tasks[:index-1]...)
	remaining = append(remaining, s.tasks[index:]...)

	prev := s.tasks
	s.tasks = remaining
	s.reindex()

	if err := s.Save(); err != nil {
		s.tasks = prev
		s.reindex()
		return Task{}, err
	}

	return removed, nil
}

// List returns the tasks in index order. A non-nil filter restricts
// the result to tasks with that status. The returned slice is a copy.
func (s *Store) List(filter *Status) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter != nil && t.Status != *filter {
			continue
		}
		out = append(out, t)
	}
	return out
}

// reindex materializes each task's index from its position.
func (s *Store) reindex() {
	for i := range s.tasks {
		s.tasks[i].Index = i + 1
	}
}
