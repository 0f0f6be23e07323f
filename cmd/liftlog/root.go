// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Handles blob store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/blob"
	"github.com/harperreed/liftlog/internal/config"
	"github.com/harperreed/liftlog/internal/plans"
	"github.com/harperreed/liftlog/internal/progress"
)

var (
	cfg      *config.Config
	store    blob.Store
	planRepo *plans.Repository
	tracker  *progress.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Workout plan and progress tracker",
	Long: `Liftlog tracks workout plans through repeating training cycles.

A plan is an ordered list of days, each with its exercises. Completing
every day of a plan finishes one cycle and automatically starts the next;
while you work through a cycle, each exercise shows what you lifted last
cycle next to the planned values.

QUICK START:

  $ liftlog plan seed                       # Install starter plans
  $ liftlog plan list                       # See available plans
  $ liftlog status 3_days_week              # Days and exercises this cycle
  $ liftlog complete 3_days_week "Day 1"    # Log a day at planned values
  $ liftlog complete 3_days_week "Day 1" -e "Squat=3x8@80"
  $ liftlog history 3_days_week Squat       # Progress across all cycles

CYCLES:

  Every plan is on a numbered cycle, starting at 1. When the last
  uncompleted day of a plan is logged, the plan rolls onto the next cycle.
  "liftlog cycle new <plan>" forces a fresh cycle at any point.

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in flat JSON files under ~/.local/share/liftlog by default.
  The "badger" backend keeps the same blobs in an embedded KV store, and
  the "charm" backend syncs them across devices via Charm Cloud. Select a
  backend in ~/.config/liftlog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.Backend = "file"
			cfg.DataDir = dataDirFlag
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		planRepo = plans.NewRepository(store)
		tracker = progress.New(store)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

var dataDirFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "",
		"store data in this directory with the file backend (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
