package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRunMigrations(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))

	// tasks table exists with the expected columns
	_, err := db.Exec(`
		INSERT INTO tasks (id, title, owner_tag, created_at, completed_at)
		VALUES ('task-1', 'Buy milk', 'u1', '2024-03-01T12:00:00Z', NULL)`)
	assert.NoError(t, err)

	// migration version is recorded
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, migration := range migrations {
		assert.NotZero(t, migration.Version)
		assert.NotEmpty(t, migration.Up)
		assert.NotEmpty(t, migration.Down)
		if i > 0 {
			assert.Greater(t, migration.Version, migrations[i-1].Version)
		}
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		filename string
		expected int
	}{
		{"000001_create_tasks.up.sql", 1},
		{"000042_add_index.up.sql", 42},
		{"invalid.up.sql", 0},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVersion(tt.filename))
		})
	}
}
