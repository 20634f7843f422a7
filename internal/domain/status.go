package domain

import "fmt"

// Status scopes a task list query by completion state.
type Status string

const (
	StatusAll       Status = "ALL"
	StatusCompleted Status = "COMPLETED"
	StatusPending   Status = "PENDING"
)

// ParseStatus converts a wire literal into a Status. An empty string defaults
// to StatusAll; anything else outside the three literals is rejected.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "":
		return StatusAll, nil
	case string(StatusAll), string(StatusCompleted), string(StatusPending):
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q: must be one of ALL, COMPLETED, PENDING", s)
	}
}

// Matches reports whether a task with the given completion state is selected
// by this status filter.
func (s Status) Matches(completed bool) bool {
	switch s {
	case StatusCompleted:
		return completed
	case StatusPending:
		return !completed
	default:
		return true
	}
}

// String returns the wire literal for the status.
func (s Status) String() string {
	return string(s)
}
