package config

import (
	"os"
	"strconv"
	"strings"

	"todo-manager/internal/errors"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default file names per backend
const (
	DefaultJSONPath   = "tasks.json"
	DefaultSQLitePath = "tasks.db"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = ".todo.toml"

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Config holds all configuration options for the to-do application
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Backend string `toml:"backend" env:"TODO_STORAGE"`
	// Path of the data file. Empty selects the backend's default file.
	Path string `toml:"path" env:"TODO_FILE"`
}

// LoggingConfig holds diagnostics configuration. The activity log is not
// configurable.
type LoggingConfig struct {
	Debug bool   `toml:"debug" env:"TODO_DEBUG"`
	Level string `toml:"level" env:"TODO_LOG_LEVEL"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    "",
		},
		Logging: LoggingConfig{
			Debug: false,
			Level: "info",
		},
	}
}

// GetStoragePath returns the data file path, falling back to the backend's
// default file name
func (c *Config) GetStoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == BackendSQLite {
		return DefaultSQLitePath
	}
	return DefaultJSONPath
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TODO_STORAGE"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if path := os.Getenv("TODO_FILE"); path != "" {
		c.Storage.Path = path
	}

	if debug := os.Getenv("TODO_DEBUG"); debug != "" {
		// Any non-boolean value still switches debug on.
		b, err := strconv.ParseBool(debug)
		c.Logging.Debug = b || err != nil
	}
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	case "":
		return errors.NewConfigError("storage.backend", "storage backend cannot be empty")
	default:
		return errors.NewConfigError("storage.backend", "unknown storage backend \""+c.Storage.Backend+"\" (want json or sqlite)")
	}

	if !isValidLogLevel(c.Logging.Level) {
		return errors.NewConfigError("logging.level", "unknown log level \""+c.Logging.Level+"\"")
	}

	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if level == l {
			return true
		}
	}
	return false
}
