// ABOUTME: Personal record queries over exercise history.
// ABOUTME: Best weight for load-based work, best time for timed work.
package db

import (
	"sort"
	"strconv"

	"github.com/harperreed/wodlog/internal/models"
)

// PersonalRecord is the best stored result for one exercise name.
type PersonalRecord struct {
	Name        string
	Measurement models.MeasurementKind
	// Best is the record value as stored: max weight for weight_reps, min
	// time for time_only/distance_time, max reps for reps_only.
	Best string
	Date string
	ID   int64
}

// PersonalRecords computes the best entry per exercise name. Rows whose
// record field does not parse as a number are skipped, matching the
// store's numbers-as-strings contract.
func (s *Store) PersonalRecords() ([]PersonalRecord, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	best := make(map[string]PersonalRecord)
	bestVal := make(map[string]float64)
	for _, r := range records {
		if r.Kind != models.KindExercise {
			continue
		}
		e := r.Exercise

		raw, lowerWins := recordField(e)
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}

		prev, seen := bestVal[e.Name]
		better := !seen || (lowerWins && value < prev) || (!lowerWins && value > prev)
		if better {
			bestVal[e.Name] = value
			best[e.Name] = PersonalRecord{
				Name:        e.Name,
				Measurement: e.Measurement,
				Best:        raw,
				Date:        e.Date,
				ID:          e.ID,
			}
		}
	}

	out := make([]PersonalRecord, 0, len(best))
	for _, pr := range best {
		out = append(out, pr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// recordField picks which stored value scores an exercise, and whether a
// lower value beats a higher one.
func recordField(e *models.Exercise) (raw string, lowerWins bool) {
	switch e.Measurement {
	case models.MeasurementTimeOnly, models.MeasurementDistanceTime:
		return e.Time, true
	case models.MeasurementRepsOnly:
		return e.Reps, false
	default:
		return e.Weight, false
	}
}
