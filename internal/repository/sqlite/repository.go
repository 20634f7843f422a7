package sqlite

import (
	"context"
	"database/sql"

	"tasklist/internal/errors"
	"tasklist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for task storage operations
type Repository interface {
	// CreateTask inserts a new task row. Inserting an existing ID is a
	// storage error.
	CreateTask(ctx context.Context, task *Task) error

	// SaveTask updates title and completed_at for the row matching the
	// task's ID. ID, owner_tag and created_at are never updated. Returns a
	// NotFound error when the ID matches no row.
	SaveTask(ctx context.Context, task *Task) error

	// DeleteTask removes the row matching the ID. Returns a NotFound error
	// when the ID matches no row.
	DeleteTask(ctx context.Context, id string) error

	// GetTask retrieves a task by ID. No ownership filter is applied at
	// this layer; callers enforce ownership themselves.
	GetTask(ctx context.Context, id string) (*Task, error)

	// FindTasksByStatus retrieves the tasks owned by ownerTag that match
	// the status filter, ordered by created_at ascending (ID as tiebreak).
	// The owner filter applies on every branch.
	FindTasksByStatus(ctx context.Context, status StatusFilter, ownerTag string) ([]*Task, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task row
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (id, title, owner_tag, created_at, completed_at)
	VALUES (?, ?, ?, ?, ?)`

	return ExecuteWrite(ctx, r.db, query,
		task.ID,
		task.Title,
		task.OwnerTag,
		FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.CompletedAt),
	)
}

// SaveTask updates the mutable columns of an existing task
func (r *SQLiteRepository) SaveTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, completed_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", task.ID,
		task.Title, FormatTimePtrForDB(task.CompletedAt), task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	query := `
	SELECT id, title, owner_tag, created_at, completed_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// FindTasksByStatus retrieves tasks for an owner filtered by completion state
func (r *SQLiteRepository) FindTasksByStatus(ctx context.Context, status StatusFilter, ownerTag string) ([]*Task, error) {
	query := `
	SELECT id, title, owner_tag, created_at, completed_at
	FROM tasks
	WHERE owner_tag = ?`

	if predicate := statusPredicate(status); predicate != "" {
		query += " AND " + predicate
	}
	query += " ORDER BY created_at ASC, id ASC"

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", ownerTag)
}

// statusPredicate maps a status filter to its completion predicate. The empty
// string means no completion filter is applied.
func statusPredicate(status StatusFilter) string {
	switch status {
	case StatusCompleted:
		return "completed_at IS NOT NULL"
	case StatusPending:
		return "completed_at IS NULL"
	default:
		return ""
	}
}
