// ABOUTME: Shared test helpers for store tests.
// ABOUTME: Provides migrated test stores and legacy-schema database fixtures.
package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/harperreed/wodlog/internal/models"
)

func sampleExercise() *models.Exercise {
	return models.NewExercise("back squat", "2024-01-02", models.MeasurementWeightReps).
		WithWeight("100").
		WithReps("5")
}

func sampleWOD() *models.WOD {
	return models.NewWOD("Fran", "2024-01-01").
		WithDescription("21-15-9 thrusters/pull-ups").
		WithResult("4:32")
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatalf("failed to migrate test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// legacyRow is a row in the pre-measurement column set.
type legacyRow struct {
	name, date, kind             string
	description, result          string
	weight, reps, timeVal, notes string
}

// setupLegacyDB writes a database with the column set of releases that
// predate measurement_type and distance, and returns its path.
func setupLegacyDB(t *testing.T, rows []legacyRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.db")

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open legacy db: %v", err)
	}
	defer sqlDB.Close()

	_, err = sqlDB.Exec(`
		CREATE TABLE workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			date TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT,
			result TEXT,
			weight TEXT,
			reps TEXT,
			time TEXT,
			notes TEXT
		)`)
	if err != nil {
		t.Fatalf("failed to create legacy table: %v", err)
	}

	for _, r := range rows {
		_, err := sqlDB.Exec(`
			INSERT INTO workouts (name, date, type, description, result, weight, reps, time, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.name, r.date, r.kind, r.description, r.result, r.weight, r.reps, r.timeVal, r.notes)
		if err != nil {
			t.Fatalf("failed to insert legacy row: %v", err)
		}
	}
	return path
}
