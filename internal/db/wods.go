// ABOUTME: WOD CRUD operations for the workout log database.
// ABOUTME: Mirrors the exercise surface with the wod-only column set.
package db

import (
	"fmt"

	"github.com/harperreed/wodlog/internal/models"
)

// AddWOD inserts a new WOD row; the id is assigned by the engine and
// written back into w.
func (s *Store) AddWOD(w *models.WOD) error {
	if err := validateWOD(w); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO workouts (name, date, type, description, result, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.Name, w.Date, string(models.KindWOD), w.Description, w.Result, w.Notes)
	if err != nil {
		return fmt.Errorf("failed to create wod: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(`SELECT last_insert_rowid()`).Scan(&id); err != nil {
		return fmt.Errorf("failed to read assigned wod id: %w", err)
	}
	w.ID = id

	if _, err := s.getRow(id, models.KindWOD); err != nil {
		return fmt.Errorf("%w: wod %d missing after insert: %v", ErrVerificationFailed, id, err)
	}
	return nil
}

// GetWOD retrieves a WOD by id. An exercise sharing the numeric id would
// not match.
func (s *Store) GetWOD(id int64) (*models.WOD, error) {
	r, err := s.getRow(id, models.KindWOD)
	if err != nil {
		return nil, err
	}
	return r.toWOD(), nil
}

// UpdateWOD rewrites every mutable field of an existing WOD row. The id
// and kind never change.
func (s *Store) UpdateWOD(w *models.WOD) error {
	if err := validateWOD(w); err != nil {
		return err
	}
	if _, err := s.getRow(w.ID, models.KindWOD); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		UPDATE workouts
		SET name = ?, date = ?, description = ?, result = ?, notes = ?
		WHERE id = ? AND type = ?`,
		w.Name, w.Date, w.Description, w.Result, w.Notes,
		w.ID, string(models.KindWOD))
	if err != nil {
		return fmt.Errorf("failed to update wod %d: %w", w.ID, err)
	}

	stored, err := s.GetWOD(w.ID)
	if err != nil {
		return fmt.Errorf("%w: wod %d missing after update: %v", ErrVerificationFailed, w.ID, err)
	}
	if *stored != *w {
		return fmt.Errorf("%w: wod %d re-read does not match written state", ErrVerificationFailed, w.ID)
	}
	return nil
}

// DeleteWOD removes a WOD row. The row must exist with both the given id
// and the wod kind; an exercise with the same numeric id is left
// untouched.
func (s *Store) DeleteWOD(id int64) error {
	if _, err := s.getRow(id, models.KindWOD); err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM workouts WHERE id = ? AND type = ?`,
		id, string(models.KindWOD)); err != nil {
		return fmt.Errorf("failed to delete wod %d: %w", id, err)
	}

	if _, err := s.getRow(id, models.KindWOD); err == nil {
		return fmt.Errorf("%w: wod %d still present after delete", ErrVerificationFailed, id)
	}
	return nil
}

func validateWOD(w *models.WOD) error {
	if w.Name == "" {
		return fmt.Errorf("wod name is required")
	}
	if w.Date == "" {
		return fmt.Errorf("wod date is required")
	}
	return nil
}
