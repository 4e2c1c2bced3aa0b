package menu

import (
	"fmt"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
)

// Handler applies one kind of request
type Handler func(list *domain.TaskList, req Request) (Outcome, error)

// Registry maps menu choices to handlers
type Registry struct {
	handlers map[Choice]Handler
}

var defaultRegistry = NewRegistry()

// NewRegistry creates a registry with every menu action registered
func NewRegistry() *Registry {
	registry := &Registry{
		handlers: make(map[Choice]Handler),
	}

	registry.Register(ChoiceCreate, createTask)
	registry.Register(ChoiceList, listTasks)
	registry.Register(ChoiceEditDescription, editDescription)
	registry.Register(ChoiceMarkDone, markDone)
	registry.Register(ChoiceMarkUndone, markUndone)
	registry.Register(ChoiceDelete, deleteTask)
	registry.Register(ChoiceExit, exit)

	return registry
}

// Register adds a handler to the registry
func (r *Registry) Register(choice Choice, handler Handler) {
	r.handlers[choice] = handler
}

// Apply runs the handler for req.Choice
func (r *Registry) Apply(list *domain.TaskList, req Request) (Outcome, error) {
	handler, exists := r.handlers[req.Choice]
	if !exists {
		return Outcome{}, errors.NewInvalidInputError("menu choice", string(req.Choice), "unknown menu item")
	}
	return handler(list, req)
}

func createTask(list *domain.TaskList, req Request) (Outcome, error) {
	list.Create(domain.NewTask(req.Name, req.Description, req.Status, req.CreatedAt))
	return Outcome{Message: "Task added successfully."}, nil
}

func listTasks(list *domain.TaskList, _ Request) (Outcome, error) {
	return Outcome{Tasks: list.All(), Listed: true}, nil
}

func editDescription(list *domain.TaskList, req Request) (Outcome, error) {
	task, err := list.Get(req.Index)
	if err != nil {
		return Outcome{}, err
	}
	task.EditDescription(req.Description)
	return Outcome{Message: "Task description updated successfully."}, nil
}

func markDone(list *domain.TaskList, req Request) (Outcome, error) {
	task, err := list.Get(req.Index)
	if err != nil {
		return Outcome{}, err
	}
	task.MarkDone()
	return Outcome{Message: fmt.Sprintf("Task status changed to '%s'.", domain.StatusDone)}, nil
}

func markUndone(list *domain.TaskList, req Request) (Outcome, error) {
	task, err := list.Get(req.Index)
	if err != nil {
		return Outcome{}, err
	}
	task.MarkUndone()
	return Outcome{Message: fmt.Sprintf("Task status changed to '%s'.", domain.StatusNotDone)}, nil
}

func deleteTask(list *domain.TaskList, req Request) (Outcome, error) {
	task, err := list.Remove(req.Index)
	if err != nil {
		return Outcome{Message: "Task was not deleted."}, err
	}
	return Outcome{Message: "Task deleted successfully.", Task: task}, nil
}

func exit(_ *domain.TaskList, _ Request) (Outcome, error) {
	return Outcome{Exit: true}, nil
}
