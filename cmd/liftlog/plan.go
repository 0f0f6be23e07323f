// ABOUTME: CLI commands for managing workout plans.
// ABOUTME: Supports list, show, seed, and delete subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/plans"
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Manage workout plans",
	Long: `Manage workout plans.

A plan is identified by its key, derived from the blob it is stored in.
The key is what completion history is filed under, so it stays stable
even when the plan's display name changes.

COMMANDS:

  list     List plans with day counts and current cycles
  show     Print a plan's days and exercises
  seed     Install the built-in starter plans (2 to 6 days/week)
  delete   Remove a plan (its history is kept)`,
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := planRepo.Keys()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		if len(keys) == 0 {
			fmt.Println("No plans found. Run 'liftlog plan seed' to install starter plans.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, key := range keys {
			p, err := planRepo.Load(key)
			if err != nil {
				return fmt.Errorf("failed to load plan %s: %w", key, err)
			}
			modified := ""
			if info, err := planRepo.Stat(key); err == nil && info.Exists && !info.ModTime.IsZero() {
				modified = faint.Sprint(info.ModTime.Format("2006-01-02"))
			}
			fmt.Printf("%s %s %s cycle %d %s\n",
				padRight(key, 14),
				padRight(p.Type, 20),
				padRight(fmt.Sprintf("%d days", p.TotalDays()), 8),
				tracker.Cycle(key),
				modified)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan>",
	Short: "Show a plan's days and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])
		p, err := planRepo.Load(key)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		bold.Printf("%s", p.Type)
		faint.Printf("  (%s, cycle %d)\n", key, tracker.Cycle(key))

		for _, day := range p.Days {
			fmt.Println()
			bold.Print(day.Day)
			if day.Focus != "" {
				faint.Printf("  %s", day.Focus)
			}
			if day.Location != "" {
				faint.Printf("  @ %s", day.Location)
			}
			fmt.Println()
			for _, ex := range day.Exercises {
				fmt.Printf("  %s %s\n", padRight(ex.Name, 26), formatPlanned(ex))
			}
		}
		return nil
	},
}

var planSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the built-in starter plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := planRepo.Seed()
		if err != nil {
			return fmt.Errorf("failed to seed plans: %w", err)
		}
		if len(created) == 0 {
			fmt.Println("All starter plans already installed.")
			return nil
		}
		for _, key := range created {
			color.Green("✓ Installed %s", key)
		}
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:     "delete <plan>",
	Aliases: []string{"rm"},
	Short:   "Delete a plan (completion history is kept)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])
		if _, err := planRepo.Load(key); err != nil {
			return err
		}
		if err := planRepo.Delete(key); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		color.Green("✓ Deleted %s", key)
		fmt.Println("  Completion history for this plan is retained.")
		return nil
	},
}

func init() {
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSeedCmd)
	planCmd.AddCommand(planDeleteCmd)
	rootCmd.AddCommand(planCmd)
}
