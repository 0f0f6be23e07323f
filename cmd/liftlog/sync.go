// ABOUTME: CLI commands for syncing Charm Cloud data.
// ABOUTME: Only available when the charm backend is configured.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync data with Charm Cloud",
	Long: `Sync data with Charm Cloud.

Only meaningful when the charm backend is configured. Writes sync
automatically; this forces a pull of any changes made from another
device.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charmStore()
		if err != nil {
			return err
		}
		if err := cs.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Synced with Charm Cloud")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Reset local Charm state and re-pull from the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charmStore()
		if err != nil {
			return err
		}
		if err := cs.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local state reset and re-synced")
		return nil
	},
}

func charmStore() (*charm.Store, error) {
	cs, ok := store.(*charm.Store)
	if !ok {
		return nil, fmt.Errorf("sync requires the charm backend (current backend: %s)", cfg.GetBackend())
	}
	if cs.IsReadOnly() {
		return nil, fmt.Errorf("store is read-only (another process holds the lock)")
	}
	return cs, nil
}

func init() {
	syncCmd.AddCommand(syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
