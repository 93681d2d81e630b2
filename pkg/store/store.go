// Package store provides the SQLite storage gateway for the bridge.
//
// Every operation opens its own connection and releases it before returning,
// so no locks are held across tool calls. Correctness under concurrent
// external access relies on SQLite's own transaction isolation.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// StorageError wraps a failure reported by the SQLite engine. The engine's
// message is preserved verbatim so callers can surface it for diagnosis.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// mutatingPrefixes are the statement kinds that get committed after execution.
var mutatingPrefixes = []string{"INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER"}

// IsMutating reports whether the trimmed, case-normalized statement text
// starts with a mutating keyword. Everything else is treated as read-only.
func IsMutating(statement string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(statement))
	for _, prefix := range mutatingPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}

// sqlOpen opens a fresh connection to the database file. The modernc driver
// registers itself under "sqlite".
func sqlOpen(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

// Store is a stateless gateway to a single-file SQLite database.
type Store struct {
	path           string
	defaultDataset string
}

// New creates a gateway for the database file at path. defaultDataset is the
// fallback CSV used when an import source does not exist; pass "" to disable
// the fallback.
func New(path, defaultDataset string) *Store {
	return &Store{
		path:           path,
		defaultDataset: defaultDataset,
	}
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// EnsureReady idempotently creates the parent directory of the database file
// and verifies the store is openable. The file itself is created lazily by
// the driver on first connect.
func (s *Store) EnsureReady() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlOpen(s.path)
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", s.path, err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database at %s is not usable: %w", s.path, err)
	}

	log.Debug("database ready", "path", s.path)
	return nil
}

// Execute runs exactly one statement against the store and returns its
// result. Mutating statements (per IsMutating) run inside a transaction that
// is committed on success and report the affected-row count; all other
// statements return the full row set in column order. params are bound
// positionally to guard row values against injection.
func (s *Store) Execute(ctx context.Context, statement string, params ...any) (*Result, error) {
	log.Debug("executing statement", "statement", statement)

	db, err := sqlOpen(s.path)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	defer db.Close()

	if IsMutating(statement) {
		return executeWrite(ctx, db, statement, params...)
	}

	return executeRead(ctx, db, statement, params...)
}

func executeWrite(ctx context.Context, db *sql.DB, statement string, params ...any) (*Result, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	res, err := tx.ExecContext(ctx, statement, params...)
	if err != nil {
		tx.Rollback()
		return nil, &StorageError{Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, &StorageError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, &StorageError{Err: err}
	}

	log.Debug("write statement committed", "affected", affected)
	return &Result{Mutation: true, Affected: affected}, nil
}

func executeRead(ctx context.Context, db *sql.DB, statement string, params ...any) (*Result, error) {
	rows, err := db.QueryContext(ctx, statement, params...)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, &StorageError{Err: err}
		}
		for i, v := range values {
			// The driver hands TEXT columns back as []byte in some paths.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Err: err}
	}

	log.Debug("read statement returned rows", "count", len(result.Rows))
	return result, nil
}
