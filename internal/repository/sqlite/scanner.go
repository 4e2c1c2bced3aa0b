package sqlite

import (
	"todo-manager/internal/repository"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanRecord scans a single task record from a database row
func ScanRecord(scanner Scanner) (repository.Record, error) {
	var record repository.Record
	err := scanner.Scan(
		&record.Name,
		&record.Description,
		&record.Status,
		&record.CreatedAt,
	)
	return record, err
}

// ScanRecords scans task records from database rows
func ScanRecords(rows Rows) ([]repository.Record, error) {
	var records []repository.Record
	for rows.Next() {
		record, err := ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
