package config

import (
	"fmt"

	"todo-manager/internal/errors"
	"todo-manager/internal/repository"
	"todo-manager/internal/repository/jsonfile"
	"todo-manager/internal/repository/sqlite"
)

// CreateRepository creates the repository selected by the configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	path := config.GetStoragePath()

	switch config.Storage.Backend {
	case BackendJSON:
		return jsonfile.New(path), nil
	case BackendSQLite:
		repo, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, errors.NewConfigError("storage.backend", "unknown storage backend \""+config.Storage.Backend+"\"")
	}
}
