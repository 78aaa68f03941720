package task

import "errors"

// ErrInvalidIndex is returned when an operation addresses a position outside
// the current bounds of a List.
var ErrInvalidIndex = errors.New("invalid index")

// Entry is one line of a task listing.
type Entry struct {
	Position    int // 1-based
	Description string
	Status      Status
}

// List is an ordered collection of tasks addressed by 0-based position.
// Removing a task shifts every later task down by one, so positions read
// before a Remove must be re-read before reuse.
//
// A List is not safe for concurrent use.
type List struct {
	tasks []Task
}

// NewList creates an empty task list.
func NewList() *List {
	return &List{}
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Add appends a new task and returns its index.
func (l *List) Add(description string) int {
	l.tasks = append(l.tasks, New(description))
	return len(l.tasks) - 1
}

// Get returns a copy of the task at index.
func (l *List) Get(index int) (Task, error) {
	if !l.inRange(index) {
		return Task{}, ErrInvalidIndex
	}
	return l.tasks[index], nil
}

// Remove deletes the task at index.
func (l *List) Remove(index int) error {
	if !l.inRange(index) {
		return ErrInvalidIndex
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return nil
}

// Complete marks the task at index completed.
func (l *List) Complete(index int) error {
	if !l.inRange(index) {
		return ErrInvalidIndex
	}
	l.tasks[index].MarkCompleted()
	return nil
}

// InProgress marks the task at index in progress.
func (l *List) InProgress(index int) error {
	if !l.inRange(index) {
		return ErrInvalidIndex
	}
	l.tasks[index].MarkInProgress()
	return nil
}

// Entries returns the listing of all tasks in insertion order.
// Returns nil for an empty list.
func (l *List) Entries() []Entry {
	if len(l.tasks) == 0 {
		return nil
	}
	entries := make([]Entry, len(l.tasks))
	for i, t := range l.tasks {
		entries[i] = Entry{
			Position:    i + 1,
			Description: t.Description,
			Status:      t.Status,
		}
	}
	return entries
}

func (l *List) inRange(index int) bool {
	return index >= 0 && index < len(l.tasks)
}
