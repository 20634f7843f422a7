package errors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidTitleError(t *testing.T) {
	err := NewInvalidTitleError("Hi")

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewInvalidTitleError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Code != "INVALID_TITLE" {
		t.Errorf("NewInvalidTitleError code = %v, want %v", err.Code, "INVALID_TITLE")
	}

	title, ok := err.GetContext("title")
	if !ok || title != "Hi" {
		t.Errorf("NewInvalidTitleError should set title context")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 123")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("connection timeout")
	err := NewDatabaseError("create task", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Code != "DATABASE_ERROR" {
		t.Errorf("NewDatabaseError code = %v, want %v", err.Code, "DATABASE_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewDatabaseError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("missing session token")

	if err.Type != ErrorTypeUnauthorized {
		t.Errorf("NewUnauthorizedError type = %v, want %v", err.Type, ErrorTypeUnauthorized)
	}
	if err.Message != "missing session token" {
		t.Errorf("NewUnauthorizedError message = %v, want %v", err.Message, "missing session token")
	}
	if err.Code != "UNAUTHORIZED" {
		t.Errorf("NewUnauthorizedError code = %v, want %v", err.Code, "UNAUTHORIZED")
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}

	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	result, ok := AsAppError(appError)
	if !ok {
		t.Errorf("AsAppError should return true for AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(regularError)
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeNotFound}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeDatabase) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Invalid title error",
			err:      NewInvalidTitleError("Hi"),
			expected: "title must be between 4 and 49 characters long",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("timeout")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: false,
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: false,
		},
		{
			name:     "Unauthorized error",
			err:      NewUnauthorizedError("missing token"),
			expected: false,
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("timeout")),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
