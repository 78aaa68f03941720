// Package task implements the in-memory task collection.
package task

// Status is the progress state of a task.
type Status string

const (
	// StatusNotStarted is the status every task is created with.
	StatusNotStarted Status = "NOT_STARTED"

	// StatusInProgress indicates work on the task has begun.
	StatusInProgress Status = "IN_PROGRESS"

	// StatusCompleted indicates the task is done.
	StatusCompleted Status = "COMPLETED"
)

// String returns the string representation of the Status.
func (s Status) String() string { return string(s) }

// Label returns the human-readable name shown in task listings.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
