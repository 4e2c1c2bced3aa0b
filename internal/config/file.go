package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"todo-manager/internal/errors"
)

// LoadFromFile overlays the TOML file at path onto the configuration. Keys
// the file does not set keep their current values.
func (c *Config) LoadFromFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.NewConfigError("config file", fmt.Sprintf("%s: %v", path, err))
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return errors.NewConfigError("config file", fmt.Sprintf("%s: unknown keys: %s", path, strings.Join(keys, ", ")))
	}

	c.Storage.Backend = strings.ToLower(c.Storage.Backend)
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	return nil
}

// findConfigFile returns the file to load: explicit beats TODO_CONFIG, which
// beats DefaultConfigFile in the working directory. An explicit or
// environment path must exist; the default file is optional.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("TODO_CONFIG"); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}
