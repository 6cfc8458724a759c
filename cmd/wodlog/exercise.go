// ABOUTME: CLI commands for managing exercise entries.
// ABOUTME: Supports add, update, and delete subcommands.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wodlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseDate        string
	exerciseMeasurement string
	exerciseWeight      string
	exerciseReps        string
	exerciseDistance    string
	exerciseTime        string
	exerciseNotes       string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage exercise entries",
	Long: `Track strength exercise entries.

An exercise is measured by one of four measurement kinds; fields outside
the chosen kind are kept empty:

  weight_reps     weight and reps       (back squat 100kg x 5)
  time_only       time in seconds       (plank hold, 90)
  distance_time   distance and time     (row 2000m in 420)
  reps_only       reps alone            (max pull-ups, 21)

EXAMPLES:

  wodlog exercise add "back squat" --weight 100 --reps 5
  wodlog exercise add plank --measurement time_only --time 90
  wodlog exercise add row --measurement distance_time --distance 2000 --time 420
  wodlog exercise update 3 --weight 105
  wodlog exercise delete 3`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new exercise entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMeasurementKind(exerciseMeasurement) {
			return fmt.Errorf("unknown measurement kind: %s (use weight_reps, time_only, distance_time, or reps_only)", exerciseMeasurement)
		}

		date := exerciseDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		e := models.NewExercise(args[0], date, models.MeasurementKind(exerciseMeasurement)).
			WithWeight(exerciseWeight).
			WithReps(exerciseReps).
			WithDistance(exerciseDistance).
			WithTime(exerciseTime).
			WithNotes(exerciseNotes)

		if err := store.AddExercise(e); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added exercise %s", e.Name)
		fmt.Printf("  id: %d  %s  %s\n", e.ID, e.Date, exerciseSummary(e))
		return nil
	},
}

var exerciseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an exercise entry",
	Long: `Update an exercise entry in place. Only the flags you pass change;
everything else keeps its stored value. Changing --measurement clears
the fields the new measurement kind does not use.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		e, err := store.GetExercise(id)
		if err != nil {
			return fmt.Errorf("exercise not found: %w", err)
		}

		if cmd.Flags().Changed("measurement") {
			if !models.IsValidMeasurementKind(exerciseMeasurement) {
				return fmt.Errorf("unknown measurement kind: %s", exerciseMeasurement)
			}
			e.Measurement = models.MeasurementKind(exerciseMeasurement)
		}
		if cmd.Flags().Changed("date") {
			e.Date = exerciseDate
		}
		if cmd.Flags().Changed("weight") {
			e.Weight = exerciseWeight
		}
		if cmd.Flags().Changed("reps") {
			e.Reps = exerciseReps
		}
		if cmd.Flags().Changed("distance") {
			e.Distance = exerciseDistance
		}
		if cmd.Flags().Changed("time") {
			e.Time = exerciseTime
		}
		if cmd.Flags().Changed("notes") {
			e.Notes = exerciseNotes
		}

		if err := store.UpdateExercise(e); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}

		color.Green("✓ Updated exercise %s", e.Name)
		fmt.Printf("  id: %d  %s  %s\n", e.ID, e.Date, exerciseSummary(e))
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := store.DeleteExercise(id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted exercise %d", id)
		return nil
	},
}

func exerciseSummary(e *models.Exercise) string {
	switch e.Measurement {
	case models.MeasurementTimeOnly:
		return fmt.Sprintf("%ss", e.Time)
	case models.MeasurementDistanceTime:
		return fmt.Sprintf("%sm in %ss", e.Distance, e.Time)
	case models.MeasurementRepsOnly:
		return fmt.Sprintf("%s reps", e.Reps)
	default:
		return fmt.Sprintf("%s x %s", e.Weight, e.Reps)
	}
}

func init() {
	for _, cmd := range []*cobra.Command{exerciseAddCmd, exerciseUpdateCmd} {
		cmd.Flags().StringVar(&exerciseDate, "date", "", "ISO-8601 date (default: today)")
		cmd.Flags().StringVarP(&exerciseMeasurement, "measurement", "m", string(models.MeasurementWeightReps), "measurement kind")
		cmd.Flags().StringVar(&exerciseWeight, "weight", "", "weight")
		cmd.Flags().StringVar(&exerciseReps, "reps", "", "rep count")
		cmd.Flags().StringVar(&exerciseDistance, "distance", "", "distance in meters")
		cmd.Flags().StringVar(&exerciseTime, "time", "", "time in seconds")
		cmd.Flags().StringVar(&exerciseNotes, "notes", "", "notes for the entry")
	}

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseUpdateCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
