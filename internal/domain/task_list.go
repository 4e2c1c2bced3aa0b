package domain

import (
	"slices"

	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
)

// TaskList is an ordered collection of tasks. Insertion order is display
// order and indices are 0-based.
type TaskList struct {
	tasks    []*Task
	activity *logging.ActivityLog
}

// NewTaskList creates an empty list that logs activity to standard output.
func NewTaskList() *TaskList {
	return NewTaskListWithActivity(logging.StdoutActivity())
}

// NewTaskListWithActivity creates an empty list logging to activity. Tasks
// added to the list log to the same place.
func NewTaskListWithActivity(activity *logging.ActivityLog) *TaskList {
	return &TaskList{activity: activity}
}

// Create appends task to the end of the list.
func (l *TaskList) Create(task *Task) {
	l.activity.Record("TaskList.Create", []any{task.name}, nil)
	task.activity = l.activity
	l.tasks = append(l.tasks, task)
}

// Get returns the task at index.
func (l *TaskList) Get(index int) (*Task, error) {
	l.activity.Record("TaskList.Get", []any{index}, nil)
	if !l.inRange(index) {
		return nil, errors.NewIndexOutOfRangeError(index, len(l.tasks))
	}
	return l.tasks[index], nil
}

// Remove detaches and returns the task at index. Later tasks move down one
// position.
func (l *TaskList) Remove(index int) (*Task, error) {
	l.activity.Record("TaskList.Remove", []any{index}, nil)
	if !l.inRange(index) {
		return nil, errors.NewIndexOutOfRangeError(index, len(l.tasks))
	}
	task := l.tasks[index]
	l.tasks = slices.Delete(l.tasks, index, index+1)
	return task, nil
}

// All returns the list's tasks in order. The slice is not a copy.
func (l *TaskList) All() []*Task {
	l.activity.Record("TaskList.All", nil, nil)
	return l.tasks
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

func (l *TaskList) inRange(index int) bool {
	return index >= 0 && index < len(l.tasks)
}
