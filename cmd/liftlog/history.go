// ABOUTME: CLI command showing the performed series for one exercise.
// ABOUTME: Lists date-ordered entries or just the latest with --latest.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/plans"
)

var historyLatest bool

var historyCmd = &cobra.Command{
	Use:     "history <plan> [exercise]",
	Aliases: []string{"h"},
	Short:   "Show recorded history for an exercise",
	Long: `Show recorded history for an exercise.

With an exercise name, prints every recorded entry in date order — the
raw material for spotting progress. With --latest, prints only the most
recent entry. Without an exercise name, lists the exercise names that
appear in the plan's history.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])

		if len(args) == 1 {
			names, err := tracker.Ledger().ExerciseNames(key)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Printf("No completions recorded for %s yet.\n", key)
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		}

		name := args[1]
		if historyLatest {
			entry, err := tracker.LatestExercise(key, name)
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Printf("No entries for %q in %s.\n", name, key)
				return nil
			}
			fmt.Printf("%s  %dx%d @ %g\n", entry.Date, entry.Sets, entry.Reps, entry.Weight)
			return nil
		}

		series, err := tracker.ExerciseHistory(key, name)
		if err != nil {
			return err
		}
		if len(series) == 0 {
			fmt.Printf("No entries for %q in %s.\n", name, key)
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%s — %s\n", key, name)
		for _, entry := range series {
			fmt.Printf("  %s  %dx%d @ %g\n", entry.Date, entry.Sets, entry.Reps, entry.Weight)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyLatest, "latest", false, "show only the most recent entry")
	rootCmd.AddCommand(historyCmd)
}
