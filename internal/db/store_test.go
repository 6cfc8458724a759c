// ABOUTME: Tests for store open, base schema, and introspection.
// ABOUTME: Verifies directory creation and reopen behavior.
package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	for _, table := range []string{"workouts", "workouts_meta"} {
		var count int
		err := s.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table).Scan(&count)
		if err != nil {
			t.Errorf("Error checking table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("Table %s does not exist", table)
		}
	}

	// A fresh database is created at the current column set.
	if !s.hasMeasurement {
		t.Error("expected measurement_type column on a fresh database")
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if err := s.AddWOD(sampleWOD()); err != nil {
		t.Fatalf("AddWOD failed: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	records, err := s2.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after reopen, got %d", len(records))
	}
}

func TestTableColumns(t *testing.T) {
	s := setupTestStore(t)

	columns, err := s.tableColumns(workoutsTable)
	if err != nil {
		t.Fatalf("tableColumns failed: %v", err)
	}
	if len(columns) != len(columnOrder) {
		t.Errorf("expected %d columns, got %d: %v", len(columnOrder), len(columns), columns)
	}

	for _, required := range requiredColumns {
		ok, err := s.columnExists(workoutsTable, required)
		if err != nil {
			t.Fatalf("columnExists failed: %v", err)
		}
		if !ok {
			t.Errorf("required column %s missing", required)
		}
	}
}
