package httpapi

import (
	"time"

	"tasklist/internal/domain"
)

// TaskResponse is the wire representation of a single task. Timestamps are
// RFC3339 strings; completedAt is null while the task is pending.
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
}

// TaskListResponse wraps the result of a list query.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskEnvelope wraps a single task result.
type TaskEnvelope struct {
	Task TaskResponse `json:"task"`
}

// CreateTaskRequest is the POST /tasks body.
type CreateTaskRequest struct {
	Title    string `json:"title"`
	ClientID string `json:"client_id"`
}

// UpdateTaskRequest is the PUT /tasks/:id body.
type UpdateTaskRequest struct {
	Title    string `json:"title"`
	ClientID string `json:"client_id"`
}

// SessionResponse is returned by the OAuth callback.
type SessionResponse struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
	Login    string `json:"login,omitempty"`
}

// ErrorResponse carries the message of a failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// PresentTask converts a domain task into its wire representation.
func PresentTask(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}
	if task.CompletedAt != nil {
		completedAt := task.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}

// PresentTasks converts a slice of domain tasks into wire representations.
// The result is never nil, so an empty list serializes as [] rather than null.
func PresentTasks(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = PresentTask(task)
	}
	return responses
}
