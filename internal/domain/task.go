package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Title length bounds, counted in runes. A title is valid when its length
// is strictly between 3 and 50 characters.
const (
	TitleMinLength = 4
	TitleMaxLength = 49
)

// Task represents a single to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          string
	Title       string
	OwnerTag    string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTask creates a new pending Task owned by ownerTag. The ID is generated
// and CreatedAt is taken from the supplied time. No validation happens here;
// callers enforce the title invariant with IsValidTitle before constructing,
// which lets deserialized or transitional states be represented without errors.
func NewTask(title, ownerTag string, now time.Time) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		OwnerTag:  ownerTag,
		CreatedAt: now,
	}
}

// IsValidTitle reports whether a candidate title satisfies the length
// invariant. Pure function, no side effects.
func IsValidTitle(title string) bool {
	length := utf8.RuneCountInString(title)
	return length >= TitleMinLength && length <= TitleMaxLength
}

// ToggleCompleted flips the task between pending and completed. Completing
// records the supplied time; toggling back to pending discards the previous
// completion timestamp.
func (t *Task) ToggleCompleted(now time.Time) {
	if t.IsCompleted() {
		t.CompletedAt = nil
	} else {
		t.CompletedAt = &now
	}
}

// IsCompleted reports whether the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
