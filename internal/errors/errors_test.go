package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "3")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 3" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 3")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}
}

func TestNewIndexOutOfRangeError(t *testing.T) {
	err := NewIndexOutOfRangeError(5, 2)

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewIndexOutOfRangeError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Code != "INDEX_OUT_OF_RANGE" {
		t.Errorf("NewIndexOutOfRangeError code = %v, want %v", err.Code, "INDEX_OUT_OF_RANGE")
	}
	index, ok := err.GetContext("index")
	if !ok || index != 5 {
		t.Errorf("NewIndexOutOfRangeError should set index context")
	}
	size, ok := err.GetContext("size")
	if !ok || size != 2 {
		t.Errorf("NewIndexOutOfRangeError should set size context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("index", "abc", "must be a whole number")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for index: must be a whole number" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "abc" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestLoadErrors(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")

	noData := NewNoDataError("tasks.json", nil)
	if noData.Type != ErrorTypeNoData || noData.Code != "NO_DATA" {
		t.Errorf("NewNoDataError = %+v", noData)
	}

	corrupt := NewCorruptDataError("tasks.json", cause)
	if corrupt.Type != ErrorTypeCorruptData || corrupt.Code != "CORRUPT_DATA" {
		t.Errorf("NewCorruptDataError = %+v", corrupt)
	}
	if !errors.Is(corrupt, cause) {
		t.Errorf("NewCorruptDataError should wrap its cause")
	}
	location, ok := corrupt.GetContext("location")
	if !ok || location != "tasks.json" {
		t.Errorf("NewCorruptDataError should set location context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageError("write tasks.json", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: write tasks.json" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewStorageError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("storage.backend", "unknown backend \"xml\"")

	if err.Type != ErrorTypeConfig {
		t.Errorf("NewConfigError type = %v, want %v", err.Type, ErrorTypeConfig)
	}
	if err.Message != "storage.backend: unknown backend \"xml\"" {
		t.Errorf("NewConfigError message = %v", err.Message)
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeStorage, "wrapped message")

	if err.Type != ErrorTypeStorage {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Code != "storage" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "storage")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeNotFound}
	wrapped := fmt.Errorf("load: %w", appError)

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should see through wrapping")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeCorruptData}

	if !IsErrorType(appError, ErrorTypeCorruptData) {
		t.Errorf("IsErrorType should match the error's type")
	}
	if IsErrorType(appError, ErrorTypeNoData) {
		t.Errorf("IsErrorType should not match a different type")
	}
	if IsErrorType(errors.New("regular"), ErrorTypeCorruptData) {
		t.Errorf("IsErrorType should return false for regular errors")
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid input", NewInvalidInputError("choice", "9", "unknown menu item"), true},
		{"index out of range", NewIndexOutOfRangeError(3, 1), true},
		{"no data", NewNoDataError("tasks.json", nil), true},
		{"corrupt data", NewCorruptDataError("tasks.json", nil), true},
		{"wrapped corrupt data", fmt.Errorf("load: %w", NewCorruptDataError("tasks.json", nil)), true},
		{"storage", NewStorageError("write", nil), false},
		{"config", NewConfigError("storage.path", "empty"), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.expected {
				t.Errorf("IsRecoverable() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "invalid input keeps its message",
			err:      NewInvalidInputError("index", "x", "must be a whole number"),
			expected: "invalid input for index: must be a whole number",
		},
		{
			name:     "not found",
			err:      NewIndexOutOfRangeError(4, 0),
			expected: "Invalid task index.",
		},
		{
			name:     "no data",
			err:      NewNoDataError("tasks.json", nil),
			expected: "Data file not found or contains malformed data. Starting a new task list.",
		},
		{
			name:     "corrupt data",
			err:      NewCorruptDataError("tasks.json", nil),
			expected: "Data file not found or contains malformed data. Starting a new task list.",
		},
		{
			name:     "storage",
			err:      NewStorageError("write", errors.New("disk full")),
			expected: "Tasks could not be saved or loaded.",
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewStorageError("write", nil)); code != "STORAGE_ERROR" {
		t.Errorf("GetErrorCode() = %v, want STORAGE_ERROR", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewIndexOutOfRangeError(1, 0)) {
		t.Errorf("not-found errors are user errors and should not be logged")
	}
	if !ShouldLogError(NewCorruptDataError("tasks.json", nil)) {
		t.Errorf("corrupt data should be logged")
	}
	if !ShouldLogError(NewStorageError("write", nil)) {
		t.Errorf("storage errors should be logged")
	}
	if !ShouldLogError(errors.New("plain")) {
		t.Errorf("unknown errors should be logged")
	}
}
