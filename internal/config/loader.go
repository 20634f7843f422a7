package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, when one exists
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from the config file
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigFilePath returns the path of the TOML config file: the
// TASKLIST_CONFIG environment variable when set, otherwise
// tasklist.toml next to the database directory.
func ConfigFilePath() string {
	if path := os.Getenv("TASKLIST_CONFIG"); path != "" {
		return path
	}
	return "tasklist.toml"
}

// loadFile merges the TOML config file into the configuration. A missing
// file is not an error; a malformed one is.
func (l *Loader) loadFile() error {
	path := ConfigFilePath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, l.config); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}
