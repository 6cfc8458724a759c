// ABOUTME: CLI command for listing all workout records.
// ABOUTME: Prints every record newest first; filtering stays with the caller.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wodlog/internal/models"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List all workout records",
	Long: `List every workout record, newest date first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  KIND  NAME  SUMMARY  (NOTES)

EXAMPLES:

  wodlog list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := store.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No records found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			var summary, notes string
			switch r.Kind {
			case models.KindExercise:
				summary = exerciseSummary(r.Exercise)
				notes = r.Exercise.Notes
			case models.KindWOD:
				summary = r.WOD.Result
				notes = r.WOD.Notes
			}
			if notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(notes, 30))
			}
			fmt.Printf("%s %s %s %s %s%s\n",
				faint.Sprintf("%-4d", r.ID()),
				faint.Sprint(r.Date()),
				padRight(string(r.Kind), 8),
				padRight(r.Name(), 20),
				summary,
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
