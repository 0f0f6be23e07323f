// ABOUTME: CLI command for recording a completed workout day.
// ABOUTME: Appends to the completion ledger and reports cycle rollover.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/plans"
)

var completeExercises []string

var completeCmd = &cobra.Command{
	Use:     "complete <plan> <day>",
	Aliases: []string{"c", "done"},
	Short:   "Record a completed workout day",
	Long: `Record a completed workout day.

Each exercise defaults to its planned sets, reps, and weight. Use -e to
record what you actually did:

  liftlog complete 3_days_week "Day 1" -e "Bench Press=5x5@80" -e "Squat=3x8"

The value after = is SETSxREPS@WEIGHT, and every part is optional:
"=5x5" keeps the planned weight, "=@82.5" keeps the planned sets and
reps. Values that aren't numeric (like "bodyweight") are recorded as 0.

Completing every distinct day of a plan finishes the cycle: the cycle
counter advances and the next completion starts the new cycle.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])
		p, err := planRepo.Load(key)
		if err != nil {
			return err
		}
		day, dayIndex, ok := p.FindDay(args[1])
		if !ok {
			return fmt.Errorf("plan %s has no day named %q", key, args[1])
		}

		overrides := make(map[string]performedInput)
		for _, raw := range completeExercises {
			in, err := parsePerformed(raw)
			if err != nil {
				return err
			}
			overrides[in.Name] = in
		}

		performed := make([]models.PerformedExercise, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			in := overrides[ex.Name]
			performed = append(performed, models.PerformedFromPlan(ex, in.Sets, in.Reps, in.Weight))
			delete(overrides, ex.Name)
		}
		for name := range overrides {
			return fmt.Errorf("day %q has no exercise named %q", day.Day, name)
		}

		before := tracker.Cycle(key)
		record, err := tracker.RecordCompletion(key, p.Type, day.Day, dayIndex, p.TotalDays(), performed)
		if err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}

		color.Green("✓ Recorded %s (%s, cycle %d)", day.Day, key, record.Cycle)
		for _, ex := range record.Exercises {
			fmt.Printf("  %s %dx%d @ %g\n", padRight(ex.Name, 26), ex.Sets, ex.Reps, ex.Weight)
		}
		if after := tracker.Cycle(key); after > before {
			color.Green("✓ Cycle %d complete! Now on cycle %d.", before, after)
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().StringArrayVarP(&completeExercises, "exercise", "e", nil,
		`exercise override as "NAME=SETSxREPS@WEIGHT" (repeatable)`)
	rootCmd.AddCommand(completeCmd)
}
