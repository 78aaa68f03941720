package task

import "github.com/google/uuid"

// Task is a single to-do item.
type Task struct {
	ID          uuid.UUID
	Description string
	Status      Status
}

// New creates a task with the given description. The description is not
// validated; an empty string is accepted.
func New(description string) Task {
	return Task{
		ID:          uuid.New(),
		Description: description,
		Status:      StatusNotStarted,
	}
}

// MarkCompleted sets the status to StatusCompleted.
func (t *Task) MarkCompleted() { t.Status = StatusCompleted }

// MarkInProgress sets the status to StatusInProgress.
func (t *Task) MarkInProgress() { t.Status = StatusInProgress }
