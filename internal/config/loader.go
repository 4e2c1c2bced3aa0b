package config

import "strings"

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

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigFile *string

	StorageBackend *string
	StoragePath    *string

	Debug    *bool
	LogLevel *string
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if any
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides loads configuration and applies command line overrides
// last
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	explicitFile := ""
	if overrides != nil && overrides.ConfigFile != nil {
		explicitFile = *overrides.ConfigFile
	}

	if path := findConfigFile(explicitFile); path != "" {
		if err := l.config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageBackend != nil {
		config.Storage.Backend = strings.ToLower(*overrides.StorageBackend)
	}
	if overrides.StoragePath != nil {
		config.Storage.Path = *overrides.StoragePath
	}
	if overrides.Debug != nil {
		config.Logging.Debug = *overrides.Debug
	}
	if overrides.LogLevel != nil {
		config.Logging.Level = strings.ToLower(*overrides.LogLevel)
	}
}
