package domain

import (
	"tasklist/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task row.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		OwnerTag:    domainTask.OwnerTag,
		CreatedAt:   domainTask.CreatedAt,
		CompletedAt: domainTask.CompletedAt,
	}
}

// FromDatabase converts a database Task row to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		OwnerTag:    dbTask.OwnerTag,
		CreatedAt:   dbTask.CreatedAt,
		CompletedAt: dbTask.CompletedAt,
	}
}

// ToDatabaseSlice converts a slice of domain Tasks to database Task rows.
func (m *TaskMapper) ToDatabaseSlice(domainTasks []Task) []sqlite.Task {
	dbTasks := make([]sqlite.Task, len(domainTasks))
	for i, task := range domainTasks {
		dbTasks[i] = m.ToDatabase(task)
	}
	return dbTasks
}

// FromDatabaseSlice converts a slice of database Task rows to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(task)
	}
	return domainTasks
}

// StatusToDatabase converts a domain status filter to its database counterpart.
func (m *TaskMapper) StatusToDatabase(status Status) sqlite.StatusFilter {
	switch status {
	case StatusCompleted:
		return sqlite.StatusCompleted
	case StatusPending:
		return sqlite.StatusPending
	default:
		return sqlite.StatusAll
	}
}
