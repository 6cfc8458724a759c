// ABOUTME: CLI commands for snapshot and restore of the workouts table.
// ABOUTME: Supports create, restore, and list subcommands.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage store snapshots",
	Long: `Snapshot the workouts table to a JSON artifact, and restore from one.

The store takes a snapshot automatically before every schema migration.
These commands expose the same machinery for manual use.

Snapshots accumulate in the backups directory next to the database file;
old artifacts are never cleaned up automatically.

EXAMPLES:

  wodlog backup create
  wodlog backup list
  wodlog backup restore ~/.local/share/wodlog/backups/workouts-backup-....json`,
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a snapshot of all records",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := store.Snapshot()
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		color.Green("✓ Snapshot written")
		fmt.Printf("  %s\n", path)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <path>",
	Short: "Replace all records with a snapshot's contents",
	Long: `Fully replace the workouts table with the contents of a snapshot
artifact. Original ids are preserved.

CAUTION:

  This discards every record not in the snapshot. There is no undo
  beyond restoring a different snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Restore(args[0]); err != nil {
			return fmt.Errorf("failed to restore snapshot: %w", err)
		}

		color.Green("✓ Restored from %s", filepath.Base(args[0]))
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List snapshot artifacts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := store.ListSnapshots()
		if err != nil {
			return fmt.Errorf("failed to list snapshots: %w", err)
		}

		if len(paths) == 0 {
			fmt.Println("No snapshots found.")
			return nil
		}

		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupListCmd)
	rootCmd.AddCommand(backupCmd)
}
