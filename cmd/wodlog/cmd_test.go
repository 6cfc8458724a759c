// ABOUTME: Tests for CLI formatting helpers.
// ABOUTME: Covers truncation, padding, and exercise summaries.
package main

import (
	"testing"

	"github.com/harperreed/wodlog/internal/models"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 30); got != "short" {
		t.Errorf("truncate(short) = %s", got)
	}
	long := "this string is definitely longer than the limit"
	got := truncate(long, 20)
	if len(got) != 20 {
		t.Errorf("len = %d, want 20", len(got))
	}
	if got[17:] != "..." {
		t.Errorf("expected ellipsis suffix, got %s", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("padRight should not truncate, got %q", got)
	}
}

func TestExerciseSummary(t *testing.T) {
	tests := []struct {
		e    *models.Exercise
		want string
	}{
		{models.NewExercise("squat", "2024-01-01", models.MeasurementWeightReps).WithWeight("100").WithReps("5"), "100 x 5"},
		{models.NewExercise("plank", "2024-01-01", models.MeasurementTimeOnly).WithTime("90"), "90s"},
		{models.NewExercise("row", "2024-01-01", models.MeasurementDistanceTime).WithDistance("2000").WithTime("440"), "2000m in 440s"},
		{models.NewExercise("pull-ups", "2024-01-01", models.MeasurementRepsOnly).WithReps("21"), "21 reps"},
	}
	for _, tt := range tests {
		if got := exerciseSummary(tt.e); got != tt.want {
			t.Errorf("exerciseSummary(%s) = %q, want %q", tt.e.Name, got, tt.want)
		}
	}
}
