package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	config := NewConfig()

	assert.Equal(t, ":3333", config.Server.Addr)
	assert.Equal(t, 10*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, config.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, config.Server.ShutdownTimeout)

	assert.Equal(t, "tasklist.db", config.Database.Filename)
	assert.Equal(t, 10*time.Second, config.Database.QueryTimeout)
	assert.Equal(t, uint32(0755), config.Database.DirPermissions)

	assert.Equal(t, 7*24*time.Hour, config.Auth.SessionTTL)
	assert.Equal(t, "tasklist", config.Auth.Issuer)

	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
}

func TestGetDatabasePath(t *testing.T) {
	config := NewConfig()
	config.Database.Dir = "/data"
	config.Database.Filename = "tasks.db"

	assert.Equal(t, filepath.Join("/data", "tasks.db"), config.GetDatabasePath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TASKLIST_SERVER_ADDR", ":8080")
	t.Setenv("TASKLIST_DB_DIR", "/custom/db")
	t.Setenv("TASKLIST_DB_FILENAME", "custom.db")
	t.Setenv("TASKLIST_GITHUB_CLIENT_ID", "client-123")
	t.Setenv("TASKLIST_SESSION_SECRET", "super-secret")
	t.Setenv("TASKLIST_SESSION_TTL", "24h")
	t.Setenv("TASKLIST_LOG_LEVEL", "debug")
	t.Setenv("TASKLIST_LOG_FORMAT", "json")

	config := NewConfig()
	require.NoError(t, config.LoadFromEnvironment())

	assert.Equal(t, ":8080", config.Server.Addr)
	assert.Equal(t, "/custom/db", config.Database.Dir)
	assert.Equal(t, "custom.db", config.Database.Filename)
	assert.Equal(t, "client-123", config.Auth.GitHubClientID)
	assert.Equal(t, "super-secret", config.Auth.SessionSecret)
	assert.Equal(t, 24*time.Hour, config.Auth.SessionTTL)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestLoadFromEnvironment_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("TASKLIST_SESSION_TTL", "not a duration")

	config := NewConfig()
	require.NoError(t, config.LoadFromEnvironment())

	assert.Equal(t, 7*24*time.Hour, config.Auth.SessionTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:        "empty server addr",
			mutate:      func(c *Config) { c.Server.Addr = "" },
			expectError: "server.addr",
		},
		{
			name:        "non-positive shutdown timeout",
			mutate:      func(c *Config) { c.Server.ShutdownTimeout = 0 },
			expectError: "server.shutdown_timeout",
		},
		{
			name:        "empty database dir",
			mutate:      func(c *Config) { c.Database.Dir = "" },
			expectError: "database.dir",
		},
		{
			name:        "empty database filename",
			mutate:      func(c *Config) { c.Database.Filename = "" },
			expectError: "database.filename",
		},
		{
			name:        "non-positive query timeout",
			mutate:      func(c *Config) { c.Database.QueryTimeout = -time.Second },
			expectError: "database.query_timeout",
		},
		{
			name:        "non-positive session TTL",
			mutate:      func(c *Config) { c.Auth.SessionTTL = 0 },
			expectError: "auth.session_ttl",
		},
		{
			name:        "empty log level",
			mutate:      func(c *Config) { c.Logging.Level = "" },
			expectError: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
			}
		})
	}
}

func TestParseDurationWithFallback(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDurationWithFallback("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationWithFallback("garbage", time.Minute))
}

func TestParseUint32WithFallback(t *testing.T) {
	assert.Equal(t, uint32(0700), ParseUint32WithFallback("700", 8, 0755))
	assert.Equal(t, uint32(0755), ParseUint32WithFallback("garbage", 8, 0755))
}
