// ABOUTME: CLI command exporting plans and completion history.
// ABOUTME: Writes JSON or YAML to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [json|yaml]",
	Short: "Export plans and completion history",
	Long: `Export plans and completion history.

Bundles every plan, its current cycle, and the full completion ledger
into a single document. Defaults to JSON on stdout; use -o to write to
a file instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "json"
		if len(args) == 1 {
			format = args[0]
		}

		data, err := export.Collect(planRepo, tracker)
		if err != nil {
			return fmt.Errorf("failed to collect export data: %w", err)
		}

		var out []byte
		switch format {
		case "json":
			out, err = data.JSON()
		case "yaml", "yml":
			out, err = data.YAML()
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported %d plans and %d completions to %s",
			len(data.Plans), len(data.Records), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
