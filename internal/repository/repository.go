// Package repository defines how a task list is loaded from and saved to
// durable storage.
package repository

import (
	"context"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
)

// Repository loads and saves a whole task list.
type Repository interface {
	// Load appends every stored task to list, in stored order. Missing or
	// malformed storage leaves list untouched and returns a recoverable
	// error (see IsRecoverable).
	Load(ctx context.Context, list *domain.TaskList) error

	// Save replaces the stored tasks with the contents of list.
	Save(ctx context.Context, list *domain.TaskList) error

	Close() error
}

// Record is the storage form of a task.
type Record struct {
	Name        string
	Description string
	Status      string
	CreatedAt   string
}

// RecordsFromList converts the tasks of list to records, in order.
func RecordsFromList(list *domain.TaskList) []Record {
	records := make([]Record, 0, list.Len())
	for _, task := range list.All() {
		records = append(records, Record{
			Name:        task.Name(),
			Description: task.Description(),
			Status:      task.Status().String(),
			CreatedAt:   task.CreatedAt(),
		})
	}
	return records
}

// Populate calls list.Create once per record, in order.
func Populate(list *domain.TaskList, records []Record) {
	for _, r := range records {
		list.Create(domain.NewTask(r.Name, r.Description, domain.Status(r.Status), r.CreatedAt))
	}
}

// IsRecoverable reports whether a Load error means "start with an empty
// list" rather than a failure.
func IsRecoverable(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNoData) ||
		errors.IsErrorType(err, errors.ErrorTypeCorruptData)
}
