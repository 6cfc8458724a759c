// ABOUTME: Row scanning and the ListAll query over the workouts relation.
// ABOUTME: Maps flat rows onto the Exercise/WOD tagged union.
package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/wodlog/internal/models"
)

// recordRow is the physical row shape. Legacy databases may lack the
// measurement/distance/time columns, so every optional field scans through
// sql.NullString.
type recordRow struct {
	ID          int64
	Name        string
	Date        string
	Kind        string
	Description string
	Result      string
	Weight      string
	Reps        string
	Distance    string
	Time        string
	Measurement string
	Notes       string
}

// selectColumns builds the SELECT list against whatever columns the live
// table actually has, substituting '' for columns a legacy schema lacks.
func (s *Store) selectColumns() (string, error) {
	live, err := s.tableColumns(workoutsTable)
	if err != nil {
		return "", err
	}
	present := make(map[string]bool, len(live))
	for _, c := range live {
		present[c] = true
	}

	list := ""
	for i, c := range columnOrder {
		if i > 0 {
			list += ", "
		}
		if present[c] {
			list += c
		} else {
			list += "'' AS " + c
		}
	}
	return list, nil
}

func scanRecordRow(scan func(dest ...any) error) (*recordRow, error) {
	var r recordRow
	var description, result, weight, reps, distance, timeVal, measurement, notes sql.NullString

	err := scan(&r.ID, &r.Name, &r.Date, &r.Kind,
		&description, &result, &weight, &reps, &distance, &timeVal, &measurement, &notes)
	if err != nil {
		return nil, err
	}

	r.Description = description.String
	r.Result = result.String
	r.Weight = weight.String
	r.Reps = reps.String
	r.Distance = distance.String
	r.Time = timeVal.String
	r.Measurement = measurement.String
	r.Notes = notes.String
	return &r, nil
}

func (r *recordRow) toRecord() (*models.Record, error) {
	switch models.Kind(r.Kind) {
	case models.KindExercise:
		return &models.Record{Kind: models.KindExercise, Exercise: r.toExercise()}, nil
	case models.KindWOD:
		return &models.Record{Kind: models.KindWOD, WOD: r.toWOD()}, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q for id %d", r.Kind, r.ID)
	}
}

func (r *recordRow) toExercise() *models.Exercise {
	return &models.Exercise{
		ID:          r.ID,
		Name:        r.Name,
		Date:        r.Date,
		Measurement: models.MeasurementKind(r.Measurement),
		Weight:      r.Weight,
		Reps:        r.Reps,
		Distance:    r.Distance,
		Time:        r.Time,
		Notes:       r.Notes,
	}
}

func (r *recordRow) toWOD() *models.WOD {
	return &models.WOD{
		ID:          r.ID,
		Name:        r.Name,
		Date:        r.Date,
		Description: r.Description,
		Result:      r.Result,
		Notes:       r.Notes,
	}
}

// ListAll returns every record, newest date first (insertion order breaks
// ties). It never filters; any filtering for display is the caller's job.
func (s *Store) ListAll() ([]*models.Record, error) {
	cols, err := s.selectColumns()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT ` + cols + ` FROM workouts ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		r, err := scanRecordRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record, err := r.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// getRow fetches a row by id and kind. Returns ErrRecordNotFound when no
// such pair exists, which is what keeps the delete paths variant-isolated.
func (s *Store) getRow(id int64, kind models.Kind) (*recordRow, error) {
	cols, err := s.selectColumns()
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`SELECT `+cols+` FROM workouts WHERE id = ? AND type = ?`, id, string(kind))
	r, err := scanRecordRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s id %d", ErrRecordNotFound, kind, id)
		}
		return nil, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return r, nil
}
