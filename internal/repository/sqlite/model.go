package sqlite

import "time"

// Task represents a single row of the tasks table.
type Task struct {
	ID          string
	Title       string
	OwnerTag    string
	CreatedAt   time.Time
	CompletedAt *time.Time // Using pointer to allow NULL values
}

// StatusFilter scopes a task query by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "ALL"
	StatusCompleted StatusFilter = "COMPLETED"
	StatusPending   StatusFilter = "PENDING"
)
