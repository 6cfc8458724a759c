// ABOUTME: Store owns the single SQLite connection for the workout log.
// ABOUTME: Handles open/create, pragmas, base schema, and column introspection.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// DBFileName is the fixed name of the database file inside the data
// directory.
const DBFileName = "wodlog.db"

// Store is the single long-lived handle to the workout database. It is
// constructed once at process start and shared by every collaborator; no
// component opens a second connection.
type Store struct {
	db        *sql.DB
	path      string
	backupDir string
	logger    *log.Logger

	// hasMeasurement tracks whether the live table carries the
	// measurement_type column. Before the startup migration has run
	// against a legacy database, exercise inserts degrade to the old
	// column set.
	hasMeasurement bool

	// migrateTestHook, when set, runs between the alter/backfill step and
	// validation. Tests use it to force a post-backup failure.
	migrateTestHook func() error
}

// Open creates (if needed) and opens the database at path, applies the
// connection pragmas, and ensures the base schema exists. The returned
// Store serializes all statement execution through one connection.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: create database directory: %v", ErrStorageUnavailable, err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}
	// Single-writer embedded store. Concurrent callers queue on the one
	// connection rather than executing in parallel.
	sqlDB.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("%w: set pragma: %v", ErrStorageUnavailable, err)
		}
	}

	// No-op on databases written by earlier releases; the startup
	// migration brings those up to the current column set.
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrStorageUnavailable, err)
	}

	s := &Store{
		db:        sqlDB,
		path:      path,
		backupDir: filepath.Join(dir, "backups"),
		logger:    log.NewWithOptions(os.Stderr, log.Options{Prefix: "wodlog.db"}),
	}
	if err := s.refreshSchemaState(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// BackupDir returns the directory snapshot artifacts are written to.
func (s *Store) BackupDir() string {
	return s.backupDir
}

func (s *Store) refreshSchemaState() error {
	ok, err := s.columnExists(workoutsTable, "measurement_type")
	if err != nil {
		return err
	}
	s.hasMeasurement = ok
	return nil
}

// tableColumns returns the live column names of a table, in declaration
// order.
func (s *Store) tableColumns(table string) ([]string, error) {
	rows, err := s.db.Query(`PRAGMA table_info(` + table + `)`)
	if err != nil {
		return nil, fmt.Errorf("query table info %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid     int
			name    string
			typeStr string
			notNull int
			dfltVal sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typeStr, &notNull, &dfltVal, &pk); err != nil {
			return nil, fmt.Errorf("scan table info %s: %w", table, err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table info %s: %w", table, err)
	}
	return columns, nil
}

func (s *Store) columnExists(table, column string) (bool, error) {
	columns, err := s.tableColumns(table)
	if err != nil {
		return false, err
	}
	for _, name := range columns {
		if name == column {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) rowCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM workouts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}
