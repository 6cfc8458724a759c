// ABOUTME: CLI command for showing personal records.
// ABOUTME: Prints the best stored result per exercise name.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/wodlog/internal/db"
	"github.com/harperreed/wodlog/internal/models"
	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Show personal records",
	Long: `Show the best stored result per exercise name.

Weight-based work scores by max weight, timed work by best (lowest) time,
rep-based work by max reps.

EXAMPLES:

  wodlog pr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prs, err := store.PersonalRecords()
		if err != nil {
			return fmt.Errorf("failed to compute personal records: %w", err)
		}

		if len(prs) == 0 {
			fmt.Println("No personal records yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, pr := range prs {
			fmt.Printf("%s %s %s%s\n",
				padRight(pr.Name, 20),
				padRight(prValue(pr), 12),
				faint.Sprint(pr.Date),
				faint.Sprintf("  (id %d)", pr.ID))
		}
		return nil
	},
}

func prValue(pr db.PersonalRecord) string {
	switch pr.Measurement {
	case models.MeasurementTimeOnly, models.MeasurementDistanceTime:
		return pr.Best + "s"
	case models.MeasurementRepsOnly:
		return pr.Best + " reps"
	default:
		return pr.Best
	}
}

func init() {
	rootCmd.AddCommand(prCmd)
}
