// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Provides CRUD operations for exercises, WODs, and PRs.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/wodlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Record a strength exercise entry (weight/reps/distance/time)",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_wod",
		Description: "Record a WOD with a free-form scored result",
	}, s.handleAddWOD)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List all workout records, newest date first",
	}, s.handleListRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise by id",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_wod",
		Description: "Delete a WOD by id",
	}, s.handleDeleteWOD)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_prs",
		Description: "Get personal records per exercise name",
	}, s.handleGetPRs)
}

// Tool input/output types

type addExerciseInput struct {
	Name        string `json:"name" jsonschema:"Exercise name (e.g. back squat)"`
	Date        string `json:"date" jsonschema:"ISO-8601 date"`
	Measurement string `json:"measurement" jsonschema:"Measurement kind (weight_reps, time_only, distance_time, reps_only)"`
	Weight      string `json:"weight,omitempty" jsonschema:"Weight as a number string"`
	Reps        string `json:"reps,omitempty" jsonschema:"Rep count as a number string"`
	Distance    string `json:"distance,omitempty" jsonschema:"Distance in meters as a number string"`
	Time        string `json:"time,omitempty" jsonschema:"Time in seconds as a number string"`
	Notes       string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type addWODInput struct {
	Name        string `json:"name" jsonschema:"WOD name (e.g. Fran)"`
	Date        string `json:"date" jsonschema:"ISO-8601 date"`
	Description string `json:"description,omitempty" jsonschema:"Workout description"`
	Result      string `json:"result,omitempty" jsonschema:"Scored result (e.g. 4:32)"`
	Notes       string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type recordOutput struct {
	ID      int64  `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type deleteInput struct {
	ID int64 `json:"id" jsonschema:"Record id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, recordOutput, error) {
	if !models.IsValidMeasurementKind(input.Measurement) {
		return nil, recordOutput{}, fmt.Errorf("unknown measurement kind: %s", input.Measurement)
	}

	e := models.NewExercise(input.Name, input.Date, models.MeasurementKind(input.Measurement)).
		WithWeight(input.Weight).
		WithReps(input.Reps).
		WithDistance(input.Distance).
		WithTime(input.Time).
		WithNotes(input.Notes)

	if err := s.store.AddExercise(e); err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, recordOutput{
		ID:      e.ID,
		Kind:    string(models.KindExercise),
		Message: fmt.Sprintf("Added exercise %s (id %d)", e.Name, e.ID),
	}, nil
}

func (s *Server) handleAddWOD(ctx context.Context, req *mcp.CallToolRequest, input addWODInput) (*mcp.CallToolResult, recordOutput, error) {
	w := models.NewWOD(input.Name, input.Date).
		WithDescription(input.Description).
		WithResult(input.Result).
		WithNotes(input.Notes)

	if err := s.store.AddWOD(w); err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to add wod: %w", err)
	}

	return nil, recordOutput{
		ID:      w.ID,
		Kind:    string(models.KindWOD),
		Message: fmt.Sprintf("Added WOD %s (id %d)", w.Name, w.ID),
	}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	records, err := s.store.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		return nil, map[string]any{"message": "No records found."}, nil
	}

	return nil, records, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteExercise(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted exercise %d", input.ID)}, nil
}

func (s *Server) handleDeleteWOD(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteWOD(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete wod: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted WOD %d", input.ID)}, nil
}

func (s *Server) handleGetPRs(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	prs, err := s.store.PersonalRecords()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute prs: %w", err)
	}

	if len(prs) == 0 {
		return nil, map[string]any{"message": "No personal records yet."}, nil
	}

	return nil, prs, nil
}
