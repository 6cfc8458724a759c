// ABOUTME: Root Cobra command for wodlog CLI.
// ABOUTME: Opens the store and runs the startup migration once per invocation.
package main

import (
	"fmt"

	"github.com/harperreed/wodlog/internal/config"
	"github.com/harperreed/wodlog/internal/db"
	"github.com/spf13/cobra"
)

var (
	store       *db.Store
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wodlog",
	Short: "Personal workout log",
	Long: `Wodlog is a CLI tool for logging workouts.

WHAT IT TRACKS:

  Exercises   strength entries measured by weight/reps, time, distance+time,
              or reps alone
  WODs        benchmark workouts with a free-form scored result ("4:32",
              "12 rounds")

QUICK START:

  $ wodlog exercise add "back squat" --weight 100 --reps 5
  $ wodlog wod add Fran --description "21-15-9 thrusters/pull-ups" --result 4:32
  $ wodlog list                         # See all records, newest first
  $ wodlog pr                           # Personal records per exercise

BACKUPS:

  The store snapshots itself before every schema migration. You can also
  snapshot and restore by hand:

  $ wodlog backup create
  $ wodlog backup list
  $ wodlog backup restore <path>

MCP INTEGRATION:

  Run 'wodlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records are stored in SQLite at ~/.local/share/wodlog/wodlog.db.
  The schema migrates itself forward on startup, never silently: a failed
  migration restores the pre-migration snapshot and aborts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		store, err = db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		if err := store.Migrate(); err != nil {
			_ = store.Close()
			store = nil
			return fmt.Errorf("startup migration: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "override the data directory")
}
