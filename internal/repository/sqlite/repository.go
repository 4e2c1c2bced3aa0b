// Package sqlite stores a task list in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
	"todo-manager/internal/repository"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const createTasksTable = `
	CREATE TABLE IF NOT EXISTS tasks (
		position    INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`

var _ repository.Repository = (*SQLiteRepository)(nil)

// SQLiteRepository implements repository.Repository on a single table.
// Position is the row key, so reading by position restores list order.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

// New creates a repository for the database at dbPath. The file is created
// on the first Save.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}
	// An in-memory database lives on one connection.
	db.SetMaxOpenConns(1)

	return &SQLiteRepository{db: db, path: dbPath}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load reads every row ordered by position and appends the tasks to list.
func (r *SQLiteRepository) Load(ctx context.Context, list *domain.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if exists, err := r.fileExists(); !exists {
		logging.Debugf("load %s: no database file", r.path)
		return errors.NewNoDataError(r.path, err)
	}

	exists, err := r.tableExists(ctx)
	if err != nil {
		logging.Debugf("load %s: %v", r.path, err)
		return errors.NewCorruptDataError(r.path, err)
	}
	if !exists {
		logging.Debugf("load %s: no tasks table", r.path)
		return errors.NewNoDataError(r.path, nil)
	}

	query := `
	SELECT name, description, status, created_at
	FROM tasks
	ORDER BY position ASC`

	records, err := QueryMultiple(ctx, r.db, query, ScanRecords, "tasks")
	if err != nil {
		logging.Debugf("load %s: %v", r.path, err)
		return errors.NewCorruptDataError(r.path, err)
	}

	repository.Populate(list, records)
	logging.Debugf("loaded %d tasks from %s", len(records), r.path)
	return nil
}

// Save replaces every row with the tasks of list in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, list *domain.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := Execute(ctx, r.db, "create tasks table", createTasksTable); err != nil {
		return err
	}

	records := repository.RecordsFromList(list)
	err := WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if err := Execute(ctx, tx, "clear tasks", `DELETE FROM tasks`); err != nil {
			return err
		}

		query := `
		INSERT INTO tasks (position, name, description, status, created_at)
		VALUES (?, ?, ?, ?, ?)`

		for i, rec := range records {
			if err := Execute(ctx, tx, "insert task", query, i, rec.Name, rec.Description, rec.Status, rec.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.Debugf("saved %d tasks to %s", len(records), r.path)
	return nil
}

// tableExists reports whether the tasks table is present. Load only reads,
// so a database without the table is left as it is.
func (r *SQLiteRepository) tableExists(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&n)
	if err != nil {
		return false, HandleDatabaseError("check tasks table", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) fileExists() (bool, error) {
	if r.path == MemoryPath || strings.HasPrefix(r.path, "file:") {
		return true, nil
	}
	if _, err := os.Stat(r.path); err != nil {
		return false, err
	}
	return true, nil
}
