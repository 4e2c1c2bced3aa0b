// Package jsonfile stores a task list as a pretty-printed JSON array.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
	"todo-manager/internal/repository"
)

// DefaultPath is the file used when no path is configured.
const DefaultPath = "tasks.json"

const indent = "    "

// record is the on-disk shape of a task. Field order is the key order in
// the written file.
type record struct {
	Name        string `json:"название"`
	Description string `json:"описание"`
	Status      string `json:"статус"`
	CreatedAt   string `json:"дата создания"`
}

var _ repository.Repository = (*JSONRepository)(nil)

// JSONRepository implements repository.Repository on a single JSON file.
type JSONRepository struct {
	path string
}

// New creates a repository for the file at path. The file is not touched
// until Load or Save.
func New(path string) *JSONRepository {
	if path == "" {
		path = DefaultPath
	}
	return &JSONRepository{path: path}
}

// Path returns the file the repository reads and writes.
func (r *JSONRepository) Path() string {
	return r.path
}

// Load reads the file and appends its tasks to list. Nothing is added
// unless the whole document is valid.
func (r *JSONRepository) Load(ctx context.Context, list *domain.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.read()
	if err != nil {
		logging.Debugf("load %s: %v", r.path, err)
		return errors.NewNoDataError(r.path, err)
	}

	records, err := decode(data)
	if err != nil {
		logging.Debugf("load %s: %v", r.path, err)
		return errors.NewCorruptDataError(r.path, err)
	}

	repository.Populate(list, records)
	logging.Debugf("loaded %d tasks from %s", len(records), r.path)
	return nil
}

// Save overwrites the file with every task in list.
func (r *JSONRepository) Save(ctx context.Context, list *domain.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(repository.RecordsFromList(list))
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}

	if err := r.write(data); err != nil {
		return errors.NewStorageError("write "+r.path, err)
	}
	logging.Debugf("saved %d tasks to %s", list.Len(), r.path)
	return nil
}

// Close is a no-op; files are opened and closed around each operation.
func (r *JSONRepository) Close() error {
	return nil
}

func (r *JSONRepository) read() ([]byte, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func (r *JSONRepository) write(data []byte) (err error) {
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

func decode(data []byte) ([]repository.Record, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var stored []record
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]repository.Record, 0, len(stored))
	for _, s := range stored {
		records = append(records, repository.Record(s))
	}
	return records, nil
}

func encode(records []repository.Record) ([]byte, error) {
	stored := make([]record, 0, len(records))
	for _, r := range records {
		stored = append(stored, record(r))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(stored); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 literally. encoding/json
// always escapes them, even with HTML escaping off.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			out = append(out, data[i])
			continue
		}
		// A backslash always starts an escape sequence; copy it whole.
		if i+5 < len(data) && data[i+1] == 'u' && string(data[i+2:i+5]) == "202" &&
			(data[i+5] == '8' || data[i+5] == '9') {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		if i+1 < len(data) {
			out = append(out, data[i], data[i+1])
			i++
			continue
		}
		out = append(out, data[i])
	}
	return out
}
