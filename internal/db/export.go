// ABOUTME: Export and import of workout records.
// ABOUTME: Supports JSON and YAML envelopes plus Markdown tables.
package db

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wodlog/internal/models"
	"gopkg.in/yaml.v3"
)

// exportRecord is the flat serialized shape of one record.
type exportRecord struct {
	Kind        string `json:"kind" yaml:"kind"`
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Measurement string `json:"measurement,omitempty" yaml:"measurement,omitempty"`
	Weight      string `json:"weight,omitempty" yaml:"weight,omitempty"`
	Reps        string `json:"reps,omitempty" yaml:"reps,omitempty"`
	Distance    string `json:"distance,omitempty" yaml:"distance,omitempty"`
	Time        string `json:"time,omitempty" yaml:"time,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Result      string `json:"result,omitempty" yaml:"result,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// exportEnvelope wraps an export with identifying metadata.
type exportEnvelope struct {
	ExportID   string         `json:"export_id" yaml:"export_id"`
	ExportedAt string         `json:"exported_at" yaml:"exported_at"`
	Records    []exportRecord `json:"records" yaml:"records"`
}

func (s *Store) exportRecords() (*exportEnvelope, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	env := &exportEnvelope{
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Records:    make([]exportRecord, 0, len(records)),
	}
	for _, r := range records {
		switch r.Kind {
		case models.KindExercise:
			e := r.Exercise
			env.Records = append(env.Records, exportRecord{
				Kind:        string(models.KindExercise),
				Name:        e.Name,
				Date:        e.Date,
				Measurement: string(e.Measurement),
				Weight:      e.Weight,
				Reps:        e.Reps,
				Distance:    e.Distance,
				Time:        e.Time,
				Notes:       e.Notes,
			})
		case models.KindWOD:
			w := r.WOD
			env.Records = append(env.Records, exportRecord{
				Kind:        string(models.KindWOD),
				Name:        w.Name,
				Date:        w.Date,
				Description: w.Description,
				Result:      w.Result,
				Notes:       w.Notes,
			})
		}
	}
	return env, nil
}

// ExportJSON serializes every record to an indented JSON envelope.
func (s *Store) ExportJSON() ([]byte, error) {
	env, err := s.exportRecords()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportYAML serializes every record to a YAML envelope.
func (s *Store) ExportYAML() ([]byte, error) {
	env, err := s.exportRecords()
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportMarkdown renders every record as Markdown tables, exercises and
// WODs separately.
func (s *Store) ExportMarkdown() (string, error) {
	env, err := s.exportRecords()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Workout Log\n\n")

	b.WriteString("## Exercises\n\n")
	b.WriteString("| Date | Name | Measurement | Weight | Reps | Distance | Time | Notes |\n")
	b.WriteString("|------|------|-------------|--------|------|----------|------|-------|\n")
	for _, r := range env.Records {
		if r.Kind != string(models.KindExercise) {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Name, r.Measurement, r.Weight, r.Reps, r.Distance, r.Time, r.Notes)
	}

	b.WriteString("\n## WODs\n\n")
	b.WriteString("| Date | Name | Description | Result | Notes |\n")
	b.WriteString("|------|------|-------------|--------|-------|\n")
	for _, r := range env.Records {
		if r.Kind != string(models.KindWOD) {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Date, r.Name, r.Description, r.Result, r.Notes)
	}

	return b.String(), nil
}

// ImportJSON inserts every record from a JSON export envelope. Ids are
// reassigned by the engine; importing the same file twice duplicates its
// records.
func (s *Store) ImportJSON(data []byte) error {
	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode import: %w", err)
	}

	for i, r := range env.Records {
		switch models.Kind(r.Kind) {
		case models.KindExercise:
			e := &models.Exercise{
				Name:        r.Name,
				Date:        r.Date,
				Measurement: models.MeasurementKind(r.Measurement),
				Weight:      r.Weight,
				Reps:        r.Reps,
				Distance:    r.Distance,
				Time:        r.Time,
				Notes:       r.Notes,
			}
			if err := s.AddExercise(e); err != nil {
				return fmt.Errorf("import record %d: %w", i, err)
			}
		case models.KindWOD:
			w := &models.WOD{
				Name:        r.Name,
				Date:        r.Date,
				Description: r.Description,
				Result:      r.Result,
				Notes:       r.Notes,
			}
			if err := s.AddWOD(w); err != nil {
				return fmt.Errorf("import record %d: %w", i, err)
			}
		default:
			return fmt.Errorf("import record %d: unknown kind %q", i, r.Kind)
		}
	}
	return nil
}
