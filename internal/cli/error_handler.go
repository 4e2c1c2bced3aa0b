package cli

import (
	"fmt"

	"todo-manager/internal/errors"
)

// ErrorHandler turns errors into the text shown to the user
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// handledError carries user-facing text while keeping the cause reachable
// through errors.As.
type handledError struct {
	msg string
	err error
}

func (e *handledError) Error() string { return e.msg }
func (e *handledError) Unwrap() error { return e.err }

// Handle provides a user-friendly error for a failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsAppError(err); ok {
		return &handledError{
			msg: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			err: err,
		}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides a user-friendly message without operation context
func (eh *ErrorHandler) HandleSimple(err error) string {
	return errors.GetUserMessage(err)
}

// IsRecoverable reports whether the shell can carry on after err
func (eh *ErrorHandler) IsRecoverable(err error) bool {
	return errors.IsRecoverable(err)
}
