// Package task implements the task record and the JSON-backed store
// that owns the full task collection.
package task

import (
	"strings"

	"github.com/google/uuid"
)

// Task represents a single tracked task. Field order matches the
// persisted JSON object layout.
type Task struct {
	Description string `json:"description"`
	Status      Status `json:"status"`
	ID          string `json:"id"`
	Index       int    `json:"index"`
	CreatedAt   Time   `json:"createdAt"`
	UpdatedAt   Time   `json:"updatedAt"`
}

// NewTask creates a task with a fresh uuid-v4 id and both timestamps
// set to now. An empty status defaults to todo. The index is assigned
// by the store when the task is added.
func NewTask(description string, status Status) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if status == "" {
		status = StatusTodo
	}
	if !status.Valid() {
		return Task{}, &ValidationError{Field: "status", Reason: "must be one of: todo, in-progress, done"}
	}

	now := Now()
	return Task{
		Description: description,
		Status:      status,
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
