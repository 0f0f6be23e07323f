// ABOUTME: CLI command showing recent completions across all plans.
// ABOUTME: Groups entries by date, newest first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Show recent completions across all plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := tracker.Ledger().Recent(logLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No completions recorded yet.")
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		lastDate := ""
		for _, rec := range records {
			if rec.Date != lastDate {
				if lastDate != "" {
					fmt.Println()
				}
				bold.Println(rec.Date)
				lastDate = rec.Date
			}
			fmt.Printf("  %s %s", padRight(rec.PlanKey, 14), padRight(rec.DayName, 20))
			faint.Printf("cycle %d, %d exercises\n", rec.EffectiveCycle(), len(rec.Exercises))
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "maximum entries to show")
	rootCmd.AddCommand(logCmd)
}
