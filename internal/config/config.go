package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task list service
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `toml:"addr" env:"TASKLIST_SERVER_ADDR"`
	ReadTimeout     time.Duration `toml:"read_timeout" env:"TASKLIST_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `toml:"write_timeout" env:"TASKLIST_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"TASKLIST_SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `toml:"dir" env:"TASKLIST_DB_DIR"`
	Filename       string        `toml:"filename" env:"TASKLIST_DB_FILENAME"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TASKLIST_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TASKLIST_DB_DIR_PERMISSIONS"`
}

// AuthConfig holds GitHub OAuth and session token configuration
type AuthConfig struct {
	GitHubClientID     string        `toml:"github_client_id" env:"TASKLIST_GITHUB_CLIENT_ID"`
	GitHubClientSecret string        `toml:"github_client_secret" env:"TASKLIST_GITHUB_CLIENT_SECRET"`
	SessionSecret      string        `toml:"session_secret" env:"TASKLIST_SESSION_SECRET"`
	SessionTTL         time.Duration `toml:"session_ttl" env:"TASKLIST_SESSION_TTL"`
	Issuer             string        `toml:"issuer" env:"TASKLIST_SESSION_ISSUER"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level" env:"TASKLIST_LOG_LEVEL"`
	Format string `toml:"format" env:"TASKLIST_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tasklist")

	return &Config{
		Server: ServerConfig{
			Addr:            ":3333",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasklist.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Auth: AuthConfig{
			SessionTTL: 7 * 24 * time.Hour,
			Issuer:     "tasklist",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if addr := os.Getenv("TASKLIST_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TASKLIST_SERVER_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("TASKLIST_SERVER_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}
	if timeout := os.Getenv("TASKLIST_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}

	// Database configuration
	if dir := os.Getenv("TASKLIST_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TASKLIST_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TASKLIST_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if perms := os.Getenv("TASKLIST_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Auth configuration
	if id := os.Getenv("TASKLIST_GITHUB_CLIENT_ID"); id != "" {
		c.Auth.GitHubClientID = id
	}
	if secret := os.Getenv("TASKLIST_GITHUB_CLIENT_SECRET"); secret != "" {
		c.Auth.GitHubClientSecret = secret
	}
	if secret := os.Getenv("TASKLIST_SESSION_SECRET"); secret != "" {
		c.Auth.SessionSecret = secret
	}
	if ttl := os.Getenv("TASKLIST_SESSION_TTL"); ttl != "" {
		c.Auth.SessionTTL = ParseDurationWithFallback(ttl, c.Auth.SessionTTL)
	}
	if issuer := os.Getenv("TASKLIST_SESSION_ISSUER"); issuer != "" {
		c.Auth.Issuer = issuer
	}

	// Logging configuration
	if level := os.Getenv("TASKLIST_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TASKLIST_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Auth.SessionTTL <= 0 {
		return &ConfigError{Field: "auth.session_ttl", Message: "session TTL must be positive"}
	}

	if c.Logging.Level == "" {
		return &ConfigError{Field: "logging.level", Message: "log level cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
