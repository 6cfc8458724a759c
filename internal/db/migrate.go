// ABOUTME: Startup schema migration for the workouts relation.
// ABOUTME: Backs up before altering, backfills measurement kinds, rolls back on failure.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/harperreed/wodlog/internal/models"
)

// Migrate brings the on-disk schema up to the version this build expects.
// It runs once at process start, before any CRUD call.
//
// The check is column-driven: if every required column is present the run
// is a strict no-op (no backup is taken). Otherwise the full table is
// snapshotted first, the missing columns are added, legacy exercise rows
// get a backfilled measurement kind, and the result is validated. Any
// failure after a successful backup restores the snapshot and surfaces
// the original error; the application must not proceed on a
// known-inconsistent schema.
func (s *Store) Migrate() error {
	version, err := s.readSchemaVersion()
	if err != nil {
		return err
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("%w: db=%d code=%d", ErrSchemaTooNew, version, currentSchemaVersion)
	}

	missing, err := s.missingColumns()
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		// The column check is authoritative; the version marker is kept in
		// step for databases written before the marker existed.
		if err := s.writeSchemaVersion(currentSchemaVersion); err != nil {
			return err
		}
		s.hasMeasurement = true
		s.logger.Debug("schema up to date", "version", currentSchemaVersion)
		return nil
	}

	count, err := s.rowCount()
	if err != nil {
		return err
	}
	s.logger.Info("schema migration needed", "missing_columns", missing, "rows", count)

	snapshot, err := s.Snapshot()
	if err != nil {
		// Fail closed: never alter the schema without a fresh backup.
		return fmt.Errorf("pre-migration backup: %w", err)
	}

	if err := s.alterAndBackfill(missing); err != nil {
		return s.rollback(snapshot, err)
	}
	if s.migrateTestHook != nil {
		if err := s.migrateTestHook(); err != nil {
			return s.rollback(snapshot, err)
		}
	}
	if err := s.validateSchema(); err != nil {
		return s.rollback(snapshot, err)
	}

	if err := s.writeSchemaVersion(currentSchemaVersion); err != nil {
		return s.rollback(snapshot, err)
	}
	if err := s.refreshSchemaState(); err != nil {
		return err
	}

	s.logger.Info("schema migration committed", "version", currentSchemaVersion, "rows", count)
	return nil
}

func (s *Store) missingColumns() ([]string, error) {
	live, err := s.tableColumns(workoutsTable)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(live))
	for _, col := range live {
		present[col] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing, nil
}

func (s *Store) alterAndBackfill(missing []string) error {
	for _, col := range missing {
		if _, err := s.db.Exec(`ALTER TABLE workouts ADD COLUMN ` + col + ` TEXT`); err != nil {
			return fmt.Errorf("add workouts.%s: %w", col, err)
		}
	}
	return s.backfillMeasurements()
}

// backfillMeasurements computes a measurement kind for every exercise row
// that lacks one, from which value fields are populated.
func (s *Store) backfillMeasurements() error {
	rows, err := s.db.Query(`
		SELECT id, COALESCE(weight, ''), COALESCE(reps, ''), COALESCE(distance, ''), COALESCE(time, '')
		FROM workouts
		WHERE type = ? AND (measurement_type IS NULL OR measurement_type = '')`,
		string(models.KindExercise))
	if err != nil {
		return fmt.Errorf("query rows to backfill: %w", err)
	}
	defer rows.Close()

	type backfill struct {
		id          int64
		measurement models.MeasurementKind
	}
	var pending []backfill
	for rows.Next() {
		var id int64
		var weight, reps, distance, timeVal string
		if err := rows.Scan(&id, &weight, &reps, &distance, &timeVal); err != nil {
			return fmt.Errorf("scan row to backfill: %w", err)
		}
		pending = append(pending, backfill{
			id:          id,
			measurement: models.InferMeasurement(weight, reps, distance, timeVal),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows to backfill: %w", err)
	}

	for _, b := range pending {
		if _, err := s.db.Exec(`UPDATE workouts SET measurement_type = ? WHERE id = ?`,
			string(b.measurement), b.id); err != nil {
			return fmt.Errorf("backfill measurement for row %d: %w", b.id, err)
		}
	}

	if len(pending) > 0 {
		s.logger.Info("backfilled measurement kinds", "rows", len(pending))
	}
	return nil
}

// validateSchema re-introspects the table and asserts the migration's
// post-conditions: every required column exists and every exercise row
// carries a measurement kind from the fixed enumeration.
func (s *Store) validateSchema() error {
	missing, err := s.missingColumns()
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: column %s still missing", ErrMigrationValidation, missing[0])
	}

	placeholders := ""
	args := []any{string(models.KindExercise)}
	for i, mk := range models.AllMeasurementKinds {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, string(mk))
	}

	var invalid int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM workouts
		WHERE type = ? AND (measurement_type IS NULL OR measurement_type NOT IN (`+placeholders+`))`,
		args...).Scan(&invalid)
	if err != nil {
		return fmt.Errorf("validate measurement kinds: %w", err)
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d exercise rows without a valid measurement kind", ErrMigrationValidation, invalid)
	}
	return nil
}

// rollback restores the pre-migration snapshot and re-raises the original
// error. A failed restore is joined in; there is no third layer of
// recovery beyond that.
func (s *Store) rollback(snapshot string, cause error) error {
	s.logger.Error("migration failed, restoring snapshot", "snapshot", snapshot, "err", cause)
	if restoreErr := s.Restore(snapshot); restoreErr != nil {
		return errors.Join(
			fmt.Errorf("migration failed: %w", cause),
			fmt.Errorf("rollback failed: %w", restoreErr),
		)
	}
	s.logger.Info("rollback complete", "snapshot", snapshot)
	return fmt.Errorf("migration failed (rolled back): %w", cause)
}

func (s *Store) readSchemaVersion() (int, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM workouts_meta WHERE key = ?`, schemaVersionMetaKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		// Databases written before the marker existed have no row; the
		// column check covers them.
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse schema version %q: %w", raw, err)
	}
	return version, nil
}

func (s *Store) writeSchemaVersion(version int) error {
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO workouts_meta(key, value) VALUES(?, ?)`,
		schemaVersionMetaKey, strconv.Itoa(version)); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}
