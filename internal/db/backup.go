// ABOUTME: Snapshot and restore for the workouts relation.
// ABOUTME: Writes timestamped JSON artifacts and rebuilds the table from them.
package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const backupFilePrefix = "workouts-backup-"

// backupStamp renders an instant as a fixed-width, filesystem-safe,
// lexically sortable string. Colons and periods are replaced so the name
// is valid on every platform.
func backupStamp(t time.Time) string {
	stamp := t.UTC().Format("2006-01-02T15:04:05.000000000Z")
	return strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
}

// Snapshot serializes every row of the workouts relation, every live
// column verbatim, to a JSON artifact in the backup directory and returns
// its path. Columns the current logical model does not interpret are
// carried along untouched.
func (s *Store) Snapshot() (string, error) {
	if err := os.MkdirAll(s.backupDir, 0750); err != nil {
		return "", fmt.Errorf("%w: create backup directory: %v", ErrBackupWrite, err)
	}

	rows, err := s.db.Query(`SELECT * FROM workouts ORDER BY id`)
	if err != nil {
		return "", fmt.Errorf("snapshot query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("snapshot columns: %w", err)
	}

	backup := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		for i := range values {
			values[i] = new(any)
		}
		if err := rows.Scan(values...); err != nil {
			return "", fmt.Errorf("snapshot scan: %w", err)
		}

		entry := make(map[string]any, len(columns))
		for i, col := range columns {
			entry[col] = *(values[i].(*any))
		}
		backup = append(backup, entry)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("snapshot iterate: %w", err)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", fmt.Errorf("snapshot marshal: %w", err)
	}

	path := filepath.Join(s.backupDir, backupFilePrefix+backupStamp(time.Now())+".json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackupWrite, err)
	}

	s.logger.Info("snapshot written", "path", path, "rows", len(backup))
	return path, nil
}

// Restore fully replaces the workouts relation with the contents of the
// artifact at path, preserving original ids. The artifact is deserialized
// before the live table is touched; an unreadable artifact aborts with
// ErrBackupCorrupt and leaves the store as it was. A failure partway
// through reinsertion is fatal for the attempt and is surfaced, never
// papered over.
func (s *Store) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read artifact %s: %v", ErrBackupCorrupt, path, err)
	}

	var backup []map[string]any
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("%w: decode artifact %s: %v", ErrBackupCorrupt, path, err)
	}

	if len(backup) == 0 {
		if _, err := s.db.Exec(`DELETE FROM workouts`); err != nil {
			return fmt.Errorf("restore clear table: %w", err)
		}
		s.logger.Info("restored empty snapshot", "path", path)
		return s.refreshSchemaState()
	}

	// Rebuild the table with exactly the snapshot's column set so a
	// partially altered schema is reverted along with the rows.
	columns := backupColumns(backup[0])
	if _, err := s.db.Exec(`DROP TABLE IF EXISTS workouts`); err != nil {
		return fmt.Errorf("restore drop table: %w", err)
	}
	if _, err := s.db.Exec(restoreTableDDL(columns)); err != nil {
		return fmt.Errorf("restore create table: %w", err)
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`); err != nil {
		return fmt.Errorf("restore create index: %w", err)
	}

	insert := restoreInsertSQL(columns)
	for i, entry := range backup {
		values := make([]any, len(columns))
		for j, col := range columns {
			v := entry[col]
			// JSON numbers decode as float64; ids go back as integers.
			if f, ok := v.(float64); ok {
				v = int64(f)
			}
			values[j] = v
		}
		if _, err := s.db.Exec(insert, values...); err != nil {
			return fmt.Errorf("restore aborted after %d of %d rows: %w", i, len(backup), err)
		}
	}

	s.logger.Info("snapshot restored", "path", path, "rows", len(backup))
	return s.refreshSchemaState()
}

// ListSnapshots returns the paths of existing snapshot artifacts, newest
// first. Retention is not managed; artifacts accumulate until the user
// removes them.
func (s *Store) ListSnapshots() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupFilePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		paths = append(paths, filepath.Join(s.backupDir, name))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}

// backupColumns orders the artifact's columns canonically, appending any
// column this build does not know about at the end.
func backupColumns(entry map[string]any) []string {
	known := make(map[string]bool, len(columnOrder))
	var columns []string
	for _, col := range columnOrder {
		known[col] = true
		if _, ok := entry[col]; ok {
			columns = append(columns, col)
		}
	}

	var extra []string
	for col := range entry {
		if !known[col] {
			extra = append(extra, col)
		}
	}
	sort.Strings(extra)
	return append(columns, extra...)
}

func restoreTableDDL(columns []string) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE workouts (\n")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(",\n")
		}
		if col == "id" {
			b.WriteString("    id INTEGER PRIMARY KEY AUTOINCREMENT")
		} else {
			b.WriteString("    " + col + " TEXT")
		}
	}
	b.WriteString("\n)")
	return b.String()
}

func restoreInsertSQL(columns []string) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return "INSERT INTO workouts (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders + ")"
}
