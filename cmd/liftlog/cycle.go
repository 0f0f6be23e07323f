// ABOUTME: CLI commands for viewing and advancing a plan's cycle.
// ABOUTME: Shows the current cycle and forces a fresh one with 'cycle new'.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/plans"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle <plan>",
	Short: "Show the plan's current cycle",
	Long: `Show the plan's current cycle.

A cycle is one full pass through a plan's days. It advances on its own
when every day has been completed; 'cycle new' forces a fresh cycle
without finishing the current one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])
		fmt.Printf("%s is on cycle %d\n", key, tracker.Cycle(key))
		return nil
	},
}

var cycleNewCmd = &cobra.Command{
	Use:   "new <plan>",
	Short: "Start a new cycle without completing the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])
		next, err := tracker.StartNewCycle(key)
		if err != nil {
			return fmt.Errorf("failed to start new cycle: %w", err)
		}
		color.Green("✓ %s is now on cycle %d", key, next)
		return nil
	},
}

func init() {
	cycleCmd.AddCommand(cycleNewCmd)
	rootCmd.AddCommand(cycleCmd)
}
