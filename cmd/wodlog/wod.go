// ABOUTME: CLI commands for managing WOD entries.
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
	wodDate        string
	wodDescription string
	wodResult      string
	wodNotes       string
)

var wodCmd = &cobra.Command{
	Use:     "wod",
	Aliases: []string{"w"},
	Short:   "Manage WOD entries",
	Long: `Track benchmark WODs with a free-form scored result.

EXAMPLES:

  wodlog wod add Fran --description "21-15-9 thrusters/pull-ups" --result 4:32
  wodlog wod add Cindy --result "18 rounds"
  wodlog wod update 7 --result 4:15
  wodlog wod delete 7`,
}

var wodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new WOD entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := wodDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		w := models.NewWOD(args[0], date).
			WithDescription(wodDescription).
			WithResult(wodResult).
			WithNotes(wodNotes)

		if err := store.AddWOD(w); err != nil {
			return fmt.Errorf("failed to add wod: %w", err)
		}

		color.Green("✓ Added WOD %s", w.Name)
		fmt.Printf("  id: %d  %s  %s\n", w.ID, w.Date, w.Result)
		return nil
	},
}

var wodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a WOD entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		w, err := store.GetWOD(id)
		if err != nil {
			return fmt.Errorf("wod not found: %w", err)
		}

		if cmd.Flags().Changed("date") {
			w.Date = wodDate
		}
		if cmd.Flags().Changed("description") {
			w.Description = wodDescription
		}
		if cmd.Flags().Changed("result") {
			w.Result = wodResult
		}
		if cmd.Flags().Changed("notes") {
			w.Notes = wodNotes
		}

		if err := store.UpdateWOD(w); err != nil {
			return fmt.Errorf("failed to update wod: %w", err)
		}

		color.Green("✓ Updated WOD %s", w.Name)
		fmt.Printf("  id: %d  %s  %s\n", w.ID, w.Date, w.Result)
		return nil
	},
}

var wodDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a WOD entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := store.DeleteWOD(id); err != nil {
			return fmt.Errorf("failed to delete wod: %w", err)
		}

		color.Yellow("✗ Deleted WOD %d", id)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{wodAddCmd, wodUpdateCmd} {
		cmd.Flags().StringVar(&wodDate, "date", "", "ISO-8601 date (default: today)")
		cmd.Flags().StringVarP(&wodDescription, "description", "d", "", "workout description")
		cmd.Flags().StringVarP(&wodResult, "result", "r", "", "scored result")
		cmd.Flags().StringVar(&wodNotes, "notes", "", "notes for the entry")
	}

	wodCmd.AddCommand(wodAddCmd)
	wodCmd.AddCommand(wodUpdateCmd)
	wodCmd.AddCommand(wodDeleteCmd)
	rootCmd.AddCommand(wodCmd)
}
