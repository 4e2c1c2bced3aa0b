// Package menu turns menu requests into task list mutations. It performs no
// I/O of its own apart from the task list's activity log.
package menu

import (
	"strings"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
)

// Choice is a menu entry as typed by the user.
type Choice string

const (
	ChoiceCreate          Choice = "1"
	ChoiceList            Choice = "2"
	ChoiceEditDescription Choice = "3"
	ChoiceMarkDone        Choice = "4"
	ChoiceMarkUndone      Choice = "5"
	ChoiceDelete          Choice = "6"
	ChoiceExit            Choice = "0"
)

// Item is one line of the printed menu.
type Item struct {
	Choice Choice
	Label  string
}

var items = []Item{
	{ChoiceCreate, "Create task"},
	{ChoiceList, "Show all tasks"},
	{ChoiceEditDescription, "Edit task description"},
	{ChoiceMarkDone, "Mark task as done"},
	{ChoiceMarkUndone, "Mark task as not done"},
	{ChoiceDelete, "Delete task"},
	{ChoiceExit, "Exit"},
}

// Items returns the menu in display order.
func Items() []Item {
	return append([]Item(nil), items...)
}

// ParseChoice maps typed input to a menu choice.
func ParseChoice(input string) (Choice, error) {
	c := Choice(strings.TrimSpace(input))
	if _, ok := defaultRegistry.handlers[c]; !ok {
		return "", errors.NewInvalidInputError("menu choice", input, "unknown menu item")
	}
	return c, nil
}

// NeedsIndex reports whether the choice operates on an existing task.
func (c Choice) NeedsIndex() bool {
	switch c {
	case ChoiceEditDescription, ChoiceMarkDone, ChoiceMarkUndone, ChoiceDelete:
		return true
	}
	return false
}

// Request carries a choice and the fields gathered for it. Fields a choice
// does not use are ignored.
type Request struct {
	Choice      Choice
	Index       int
	Name        string
	Description string
	Status      domain.Status
	CreatedAt   string
}

// Outcome is the result of applying a request.
type Outcome struct {
	// Message is printed after the action, also when it failed.
	Message string
	// Task is the task the action touched, set for deletions.
	Task *domain.Task
	// Tasks is the full list, set for the list action.
	Tasks []*domain.Task
	// Listed is true when Tasks should be rendered, even if empty.
	Listed bool
	// Exit asks the caller to save and stop.
	Exit bool
}

// Apply performs req against list.
func Apply(list *domain.TaskList, req Request) (Outcome, error) {
	return defaultRegistry.Apply(list, req)
}

// CheckIndex reports whether index addresses a task, without touching the
// activity log. Callers use it before asking for more input.
func CheckIndex(list *domain.TaskList, index int) error {
	if index < 0 || index >= list.Len() {
		return errors.NewIndexOutOfRangeError(index, list.Len())
	}
	return nil
}
