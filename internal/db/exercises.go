// ABOUTME: Exercise CRUD operations for the workout log database.
// ABOUTME: Enforces measurement-kind field clearing and read-verify-write.
package db

import (
	"fmt"

	"github.com/harperreed/wodlog/internal/models"
)

// AddExercise inserts a new exercise row. The id is assigned by the engine
// and written back into e. Fields not meaningful to the measurement kind
// are cleared before the insert so the variant invariant holds from birth.
func (s *Store) AddExercise(e *models.Exercise) error {
	if err := validateExercise(e); err != nil {
		return err
	}
	e.ClearUnmeasuredFields()

	var err error
	if s.hasMeasurement {
		_, err = s.db.Exec(`
			INSERT INTO workouts (name, date, type, weight, reps, distance, time, measurement_type, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.Name, e.Date, string(models.KindExercise),
			e.Weight, e.Reps, e.Distance, e.Time, string(e.Measurement), e.Notes)
	} else {
		// Transitional path for databases the startup migration has not
		// touched yet: the old column set, without measurement_type.
		_, err = s.db.Exec(`
			INSERT INTO workouts (name, date, type, weight, reps, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.Name, e.Date, string(models.KindExercise), e.Weight, e.Reps, e.Notes)
	}
	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(`SELECT last_insert_rowid()`).Scan(&id); err != nil {
		return fmt.Errorf("failed to read assigned exercise id: %w", err)
	}
	e.ID = id

	// Post-condition: the row exists under the exercise kind.
	if _, err := s.getRow(id, models.KindExercise); err != nil {
		return fmt.Errorf("%w: exercise %d missing after insert: %v", ErrVerificationFailed, id, err)
	}
	return nil
}

// GetExercise retrieves an exercise by id. A WOD sharing the numeric id
// would not match.
func (s *Store) GetExercise(id int64) (*models.Exercise, error) {
	r, err := s.getRow(id, models.KindExercise)
	if err != nil {
		return nil, err
	}
	return r.toExercise(), nil
}

// UpdateExercise rewrites every mutable field of an existing exercise row.
// The id and kind never change. Fields not meaningful to the (possibly
// changed) measurement kind are cleared unconditionally.
func (s *Store) UpdateExercise(e *models.Exercise) error {
	if err := validateExercise(e); err != nil {
		return err
	}
	if _, err := s.getRow(e.ID, models.KindExercise); err != nil {
		return err
	}
	e.ClearUnmeasuredFields()

	_, err := s.db.Exec(`
		UPDATE workouts
		SET name = ?, date = ?, weight = ?, reps = ?, distance = ?, time = ?, measurement_type = ?, notes = ?
		WHERE id = ? AND type = ?`,
		e.Name, e.Date, e.Weight, e.Reps, e.Distance, e.Time, string(e.Measurement), e.Notes,
		e.ID, string(models.KindExercise))
	if err != nil {
		return fmt.Errorf("failed to update exercise %d: %w", e.ID, err)
	}

	stored, err := s.GetExercise(e.ID)
	if err != nil {
		return fmt.Errorf("%w: exercise %d missing after update: %v", ErrVerificationFailed, e.ID, err)
	}
	if *stored != *e {
		return fmt.Errorf("%w: exercise %d re-read does not match written state", ErrVerificationFailed, e.ID)
	}
	return nil
}

// DeleteExercise removes an exercise row. The row must exist with both the
// given id and the exercise kind; a WOD with the same numeric id is left
// untouched.
func (s *Store) DeleteExercise(id int64) error {
	if _, err := s.getRow(id, models.KindExercise); err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM workouts WHERE id = ? AND type = ?`,
		id, string(models.KindExercise)); err != nil {
		return fmt.Errorf("failed to delete exercise %d: %w", id, err)
	}

	if _, err := s.getRow(id, models.KindExercise); err == nil {
		return fmt.Errorf("%w: exercise %d still present after delete", ErrVerificationFailed, id)
	}
	return nil
}

func validateExercise(e *models.Exercise) error {
	if e.Name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if e.Date == "" {
		return fmt.Errorf("exercise date is required")
	}
	if !models.IsValidMeasurementKind(string(e.Measurement)) {
		return fmt.Errorf("unknown measurement kind: %q", e.Measurement)
	}
	return nil
}
