// ABOUTME: Tests for MCP tool handlers over the workout store.
// ABOUTME: Exercises handlers directly against a temp database.
package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/harperreed/wodlog/internal/db"
	"github.com/harperreed/wodlog/internal/models"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	s, err := NewServer(store)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

func TestHandleAddExercise(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleAddExercise(ctx, nil, addExerciseInput{
		Name:        "back squat",
		Date:        "2024-01-02",
		Measurement: "weight_reps",
		Weight:      "100",
		Reps:        "5",
	})
	if err != nil {
		t.Fatalf("handleAddExercise failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("expected an assigned id")
	}
	if out.Kind != string(models.KindExercise) {
		t.Errorf("Kind = %s, want exercise", out.Kind)
	}
}

func TestHandleAddExerciseRejectsBadMeasurement(t *testing.T) {
	s := setupTestServer(t)

	_, _, err := s.handleAddExercise(context.Background(), nil, addExerciseInput{
		Name:        "back squat",
		Date:        "2024-01-02",
		Measurement: "sets_only",
	})
	if err == nil {
		t.Error("expected error for unknown measurement kind")
	}
}

func TestHandleAddAndDeleteWOD(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleAddWOD(ctx, nil, addWODInput{
		Name:   "Fran",
		Date:   "2024-01-01",
		Result: "4:32",
	})
	if err != nil {
		t.Fatalf("handleAddWOD failed: %v", err)
	}

	_, _, err = s.handleDeleteWOD(ctx, nil, deleteInput{ID: out.ID})
	if err != nil {
		t.Fatalf("handleDeleteWOD failed: %v", err)
	}

	// Deleting again reports not-found.
	_, _, err = s.handleDeleteWOD(ctx, nil, deleteInput{ID: out.ID})
	if err == nil {
		t.Error("expected error deleting a missing wod")
	}
}

func TestHandleListRecordsEmpty(t *testing.T) {
	s := setupTestServer(t)

	_, out, err := s.handleListRecords(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("handleListRecords failed: %v", err)
	}
	msg, ok := out.(map[string]any)
	if !ok || msg["message"] != "No records found." {
		t.Errorf("expected empty message, got %v", out)
	}
}

func TestHandleGetPRs(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	for _, weight := range []string{"100", "110"} {
		_, _, err := s.handleAddExercise(ctx, nil, addExerciseInput{
			Name:        "deadlift",
			Date:        "2024-01-02",
			Measurement: "weight_reps",
			Weight:      weight,
			Reps:        "3",
		})
		if err != nil {
			t.Fatalf("handleAddExercise failed: %v", err)
		}
	}

	_, out, err := s.handleGetPRs(ctx, nil, struct{}{})
	if err != nil {
		t.Fatalf("handleGetPRs failed: %v", err)
	}
	prs, ok := out.([]db.PersonalRecord)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	if len(prs) != 1 || prs[0].Best != "110" {
		t.Errorf("expected one deadlift PR of 110, got %+v", prs)
	}
}
