// ABOUTME: Tests for export and import of workout records.
// ABOUTME: Covers JSON round trip plus YAML and Markdown rendering.
package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExportImportJSONRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddExercise(sampleExercise()); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if err := s.AddWOD(sampleWOD()); err != nil {
		t.Fatalf("AddWOD failed: %v", err)
	}

	data, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if env.ExportID == "" {
		t.Error("expected an export id")
	}
	if len(env.Records) != 2 {
		t.Fatalf("expected 2 exported records, got %d", len(env.Records))
	}

	other := setupTestStore(t)
	if err := other.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	records, err := other.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 imported records, got %d", len(records))
	}
}

func TestExportYAML(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWOD(sampleWOD()); err != nil {
		t.Fatalf("AddWOD failed: %v", err)
	}

	data, err := s.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if !strings.Contains(string(data), "Fran") {
		t.Errorf("expected record name in YAML, got:\n%s", data)
	}
}

func TestExportMarkdown(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddExercise(sampleExercise()); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if err := s.AddWOD(sampleWOD()); err != nil {
		t.Fatalf("AddWOD failed: %v", err)
	}

	md, err := s.ExportMarkdown()
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(md, "## Exercises") || !strings.Contains(md, "## WODs") {
		t.Error("expected both section headers")
	}
	if !strings.Contains(md, "back squat") || !strings.Contains(md, "Fran") {
		t.Errorf("expected both records in tables, got:\n%s", md)
	}
}

func TestImportRejectsUnknownKind(t *testing.T) {
	s := setupTestStore(t)

	data := []byte(`{"export_id":"x","exported_at":"2024-01-01T00:00:00Z","records":[{"kind":"cardio","name":"row","date":"2024-01-01"}]}`)
	if err := s.ImportJSON(data); err == nil {
		t.Error("expected error for unknown kind")
	}
}
