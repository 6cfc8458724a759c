// ABOUTME: Tests for personal record queries.
// ABOUTME: Covers max-weight, best-time, and unparsable values.
package db

import (
	"testing"

	"github.com/harperreed/wodlog/internal/models"
)

func TestPersonalRecords(t *testing.T) {
	s := setupTestStore(t)

	entries := []*models.Exercise{
		models.NewExercise("back squat", "2024-01-01", models.MeasurementWeightReps).WithWeight("100").WithReps("5"),
		models.NewExercise("back squat", "2024-02-01", models.MeasurementWeightReps).WithWeight("110").WithReps("3"),
		models.NewExercise("2k row", "2024-01-10", models.MeasurementDistanceTime).WithDistance("2000").WithTime("440"),
		models.NewExercise("2k row", "2024-03-10", models.MeasurementDistanceTime).WithDistance("2000").WithTime("425"),
	}
	for _, e := range entries {
		if err := s.AddExercise(e); err != nil {
			t.Fatalf("AddExercise failed: %v", err)
		}
	}
	if err := s.AddWOD(sampleWOD()); err != nil {
		t.Fatalf("AddWOD failed: %v", err)
	}

	prs, err := s.PersonalRecords()
	if err != nil {
		t.Fatalf("PersonalRecords failed: %v", err)
	}
	if len(prs) != 2 {
		t.Fatalf("expected 2 PRs, got %d", len(prs))
	}

	// Sorted by name: "2k row" first.
	if prs[0].Name != "2k row" || prs[0].Best != "425" {
		t.Errorf("2k row PR = %+v, want best time 425", prs[0])
	}
	if prs[1].Name != "back squat" || prs[1].Best != "110" {
		t.Errorf("back squat PR = %+v, want best weight 110", prs[1])
	}
}

func TestPersonalRecordsSkipsUnparsable(t *testing.T) {
	s := setupTestStore(t)

	e := models.NewExercise("sled push", "2024-01-01", models.MeasurementWeightReps).
		WithWeight("heavy").WithReps("5")
	if err := s.AddExercise(e); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}

	prs, err := s.PersonalRecords()
	if err != nil {
		t.Fatalf("PersonalRecords failed: %v", err)
	}
	if len(prs) != 0 {
		t.Errorf("expected no PRs from unparsable values, got %d", len(prs))
	}
}
