// ABOUTME: Integration tests for the wodlog CLI.
// ABOUTME: Builds the binary and runs a full record workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	wodlogBinary := filepath.Join(projectRoot, "wodlog")

	buildCmd := exec.Command("go", "build", "-o", wodlogBinary, "./cmd/wodlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(wodlogBinary)

	// Use a temp data directory
	dataDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", dataDir}, args...)
		cmd := exec.Command(wodlogBinary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Add an exercise
	output, err := run("exercise", "add", "back squat", "--weight", "100", "--reps", "5", "--date", "2024-01-02")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added exercise back squat") {
		t.Errorf("Expected 'Added exercise back squat' in output, got: %s", output)
	}

	// Add a WOD
	output, err = run("wod", "add", "Fran", "--result", "4:32", "--date", "2024-01-01")
	if err != nil {
		t.Fatalf("Failed to add WOD: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added WOD Fran") {
		t.Errorf("Expected 'Added WOD Fran' in output, got: %s", output)
	}

	// List shows both, exercise first (newer date)
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "back squat") || !strings.Contains(output, "Fran") {
		t.Errorf("Expected both records in list output, got: %s", output)
	}
	if strings.Index(output, "back squat") > strings.Index(output, "Fran") {
		t.Errorf("Expected newest date first, got: %s", output)
	}

	// Update the exercise
	output, err = run("exercise", "update", "1", "--weight", "110")
	if err != nil {
		t.Fatalf("Failed to update exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Updated exercise back squat") {
		t.Errorf("Expected 'Updated exercise back squat' in output, got: %s", output)
	}

	// Personal records reflect the update
	output, err = run("pr")
	if err != nil {
		t.Fatalf("Failed to get PRs: %v\n%s", err, output)
	}
	if !strings.Contains(output, "back squat") || !strings.Contains(output, "110") {
		t.Errorf("Expected back squat PR of 110, got: %s", output)
	}

	// Snapshot
	output, err = run("backup", "create")
	if err != nil {
		t.Fatalf("Failed to create snapshot: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Snapshot written") {
		t.Errorf("Expected 'Snapshot written' in output, got: %s", output)
	}

	output, err = run("backup", "list")
	if err != nil {
		t.Fatalf("Failed to list snapshots: %v\n%s", err, output)
	}
	if !strings.Contains(output, "workouts-backup-") {
		t.Errorf("Expected a snapshot path in output, got: %s", output)
	}

	// Delete the exercise, then restore from the snapshot
	output, err = run("exercise", "delete", "1")
	if err != nil {
		t.Fatalf("Failed to delete exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Deleted exercise 1") {
		t.Errorf("Expected 'Deleted exercise 1' in output, got: %s", output)
	}

	snapshots, _ := run("backup", "list")
	snapshotPath := strings.TrimSpace(strings.Split(snapshots, "\n")[0])

	output, err = run("backup", "restore", snapshotPath)
	if err != nil {
		t.Fatalf("Failed to restore: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Restored from") {
		t.Errorf("Expected 'Restored from' in output, got: %s", output)
	}

	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list after restore: %v\n%s", err, output)
	}
	if !strings.Contains(output, "back squat") {
		t.Errorf("Expected back squat restored, got: %s", output)
	}

	// Export
	exportPath := filepath.Join(dataDir, "export.json")
	output, err = run("export", "json", "-o", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Exported to") {
		t.Errorf("Expected 'Exported to' in output, got: %s", output)
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Errorf("Expected export file to exist: %v", err)
	}
}
