// ABOUTME: Shared formatting and parsing helpers for CLI output.
// ABOUTME: Column padding, truncation, and -e exercise flag parsing.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/liftlog/internal/models"
)

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func formatPlanned(ex models.Exercise) string {
	s := fmt.Sprintf("%dx%s", ex.Sets, ex.Reps)
	if ex.Weight != "" && ex.Weight != "0" {
		s += " @ " + ex.Weight
	}
	return s
}

// performedInput is one parsed -e flag: the exercise name plus whatever
// the user actually logged. Empty fields mean "use the planned value".
type performedInput struct {
	Name   string
	Sets   string
	Reps   string
	Weight string
}

// parsePerformed parses a -e flag of the form NAME=SETSxREPS@WEIGHT.
// Every part after the name is optional: "Squats=5x5@102.5", "Squats=5x5",
// "Squats=@102.5", and "Squats" are all valid.
func parsePerformed(raw string) (performedInput, error) {
	var in performedInput
	name, spec, hasSpec := strings.Cut(raw, "=")
	in.Name = strings.TrimSpace(name)
	if in.Name == "" {
		return in, fmt.Errorf("invalid exercise %q: missing name", raw)
	}
	if !hasSpec || strings.TrimSpace(spec) == "" {
		return in, nil
	}

	setsReps, weight, hasWeight := strings.Cut(spec, "@")
	if hasWeight {
		in.Weight = strings.TrimSpace(weight)
	}
	setsReps = strings.TrimSpace(setsReps)
	if setsReps != "" {
		sets, reps, hasReps := strings.Cut(setsReps, "x")
		if !hasReps {
			return in, fmt.Errorf("invalid exercise %q: expected SETSxREPS, got %q", raw, setsReps)
		}
		in.Sets = strings.TrimSpace(sets)
		in.Reps = strings.TrimSpace(reps)
	}
	return in, nil
}
