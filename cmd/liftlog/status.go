// ABOUTME: CLI command showing per-day completion status for a plan.
// ABOUTME: Marks completed days and shows last-cycle reference values.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/plans"
)

var statusCmd = &cobra.Command{
	Use:     "status <plan>",
	Aliases: []string{"s"},
	Short:   "Show completion status for the current cycle",
	Long: `Show completion status for the current cycle.

Each day is marked done (✓) or pending (○) for the current cycle. For
every exercise the planned targets are shown alongside what you logged
this cycle and, once you are past cycle one, what you lifted last cycle
as a reference.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := plans.NormalizeKey(args[0])
		p, err := planRepo.Load(key)
		if err != nil {
			return err
		}

		cycle := tracker.Cycle(key)
		statuses, err := tracker.DayStatuses(p, key)
		if err != nil {
			return err
		}
		complete, err := tracker.CycleComplete(p, key)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		bold.Printf("%s", p.Type)
		faint.Printf("  cycle %d", cycle)
		if complete {
			faint.Print("  (complete)")
		}
		fmt.Println()

		for _, day := range p.Days {
			st := statuses[day.Day]
			fmt.Println()
			if st.Completed {
				color.Green("✓ %s", day.Day)
			} else {
				fmt.Printf("○ %s\n", day.Day)
			}
			for i, ex := range day.Exercises {
				line := fmt.Sprintf("  %s %s", padRight(ex.Name, 26), padRight(formatPlanned(ex), 16))
				fmt.Print(line)
				exSt := st.Exercises[i]
				if exSt.Completed != nil {
					fmt.Printf(" done %dx%d @ %g", exSt.Completed.Sets, exSt.Completed.Reps, exSt.Completed.Weight)
				}
				if exSt.LastCycle != nil {
					faint.Printf("  last %dx%d @ %g", exSt.LastCycle.Sets, exSt.LastCycle.Reps, exSt.LastCycle.Weight)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
