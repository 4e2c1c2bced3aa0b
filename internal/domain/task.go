package domain

import (
	"fmt"

	"todo-manager/internal/logging"
)

// Status is the display text stored for a task's completion state.
type Status string

const (
	StatusDone    Status = "выполнено"
	StatusNotDone Status = "не выполнено"
)

// String returns the status display text.
func (s Status) String() string {
	return string(s)
}

// IsDone reports whether the status is the done value.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// Task represents one to-do item.
// Position within a TaskList is its only identity.
type Task struct {
	name        string
	description string
	status      Status
	createdAt   string
	activity    *logging.ActivityLog
}

// NewTask creates a task storing every field verbatim.
func NewTask(name, description string, status Status, createdAt string) *Task {
	return &Task{
		name:        name,
		description: description,
		status:      status,
		createdAt:   createdAt,
		activity:    logging.StdoutActivity(),
	}
}

func (t *Task) Name() string        { return t.name }
func (t *Task) Description() string { return t.description }
func (t *Task) Status() Status      { return t.status }
func (t *Task) CreatedAt() string   { return t.createdAt }

// MarkDone sets the status to StatusDone.
func (t *Task) MarkDone() {
	t.record("Task.MarkDone")
	t.status = StatusDone
}

// MarkUndone sets the status to StatusNotDone.
func (t *Task) MarkUndone() {
	t.record("Task.MarkUndone")
	t.status = StatusNotDone
}

// EditDescription replaces the description.
func (t *Task) EditDescription(description string) {
	t.record("Task.EditDescription", description)
	t.description = description
}

// String renders the task as a labelled four-line block.
func (t *Task) String() string {
	return fmt.Sprintf("Task: %s\nDescription: %s\nStatus: %s\nCreated: %s",
		t.name, t.description, t.status, t.createdAt)
}

func (t *Task) record(method string, args ...any) {
	t.activity.Record(method, args, map[string]any{"task": t.name})
}
