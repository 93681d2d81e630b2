package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ImportCSV bulk-loads a delimited text file into tableName. The first line
// supplies the column identifiers; every column is created with TEXT affinity
// and every subsequent line is inserted positionally with bound parameters.
// The table creation and all inserts run in one transaction, committed once
// at the end, so an import either lands completely or not at all. A row whose
// field count differs from the header aborts the whole import.
//
// If csvPath does not exist the configured default dataset is substituted;
// if that is also absent the import fails with fs.ErrNotExist.
func (s *Store) ImportCSV(ctx context.Context, csvPath, tableName string) error {
	resolved, err := s.resolveDataset(csvPath)
	if err != nil {
		return err
	}

	log.Debug("importing CSV file", "path", resolved, "table", tableName)

	f, err := os.Open(resolved)
	if err != nil {
		return fmt.Errorf("failed to open CSV file %s: %w", resolved, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("CSV file %s has no header row", resolved)
		}
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	quoted := make([]string, len(headers))
	for i, header := range headers {
		quoted[i] = quoteIdentifier(header) + " TEXT"
	}

	// The table name arrives from the caller and is interpolated as-is.
	// SQLite cannot bind identifiers, so this stays an unsanitized surface.
	createStmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		tableName, strings.Join(quoted, ", "),
	)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(headers)), ", ")
	insertStmt := fmt.Sprintf("INSERT INTO %s VALUES (%s)", tableName, placeholders)

	db, err := sqlOpen(s.path)
	if err != nil {
		return &StorageError{Err: err}
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Err: err}
	}

	if _, err := tx.ExecContext(ctx, createStmt); err != nil {
		tx.Rollback()
		return &StorageError{Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		tx.Rollback()
		return &StorageError{Err: err}
	}
	defer stmt.Close()

	imported := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Includes csv.ErrFieldCount for rows that do not match the header.
			tx.Rollback()
			return fmt.Errorf("malformed CSV row in %s: %w", resolved, err)
		}

		values := make([]any, len(record))
		for i, field := range record {
			values[i] = field
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			tx.Rollback()
			return &StorageError{Err: err}
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Err: err}
	}

	log.Debug("CSV file imported", "path", resolved, "table", tableName, "rows", imported)
	return nil
}

// resolveDataset applies the fallback policy: a missing source path is
// replaced by the default dataset so the service stays bootstrapable without
// an explicit file. A missing default is a hard failure.
func (s *Store) resolveDataset(csvPath string) (string, error) {
	if fileExists(csvPath) {
		return csvPath, nil
	}

	if s.defaultDataset == "" || !fileExists(s.defaultDataset) {
		return "", fmt.Errorf("CSV file %s not found and no default dataset available: %w", csvPath, fs.ErrNotExist)
	}

	log.Warn("CSV file not found, using default dataset", "requested", csvPath, "default", s.defaultDataset)
	return s.defaultDataset, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// quoteIdentifier wraps a column identifier in double quotes so headers with
// spaces or reserved words stay usable.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
