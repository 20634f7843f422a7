package validation

import (
	"tasklist/internal/domain"
)

// TaskValidator provides validation for Task-related operations.
// Owner tags are opaque strings compared byte for byte, so they are never
// trimmed or normalized here; the same holds for titles.
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateTitle validates a task title for creation or update. The length
// rule itself lives on the entity; this wraps the outcome into a field error.
func (tv *TaskValidator) ValidateTitle(title string) error {
	if domain.IsValidTitle(title) {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidLengthError("title", title, domain.TitleMinLength, domain.TitleMaxLength)
	return validationError
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if id != "" {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddRequiredError("task_id")
	return validationError
}

// ValidateOwnerTag validates an owner tag
func (tv *TaskValidator) ValidateOwnerTag(ownerTag string) error {
	if ownerTag != "" {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddRequiredError("owner_tag")
	return validationError
}

// ValidateTaskForCreation validates the inputs of the create-task operation
func (tv *TaskValidator) ValidateTaskForCreation(title, ownerTag string) error {
	validationError := NewValidationError()

	if err := tv.ValidateOwnerTag(ownerTag); err != nil {
		if ownerErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ownerErr.Errors...)
		}
	}

	if err := tv.ValidateTitle(title); err != nil {
		if titleErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
