// ABOUTME: Numeric coercion for as-performed values with planned fallbacks.
// ABOUTME: Centralizes the performed-then-planned-then-zero chain.
package models

import (
	"strconv"
	"strings"
)

// IntOr parses s as an integer, returning fallback when s is empty or
// unparsable.
func IntOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

// FallbackInt parses performed as an integer; on failure it parses planned;
// if both fail the result is 0.
func FallbackInt(performed, planned string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(performed)); err == nil {
		return n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(planned)); err == nil {
		return n
	}
	return 0
}

// FallbackFloat parses performed as a float; on failure it parses planned;
// if both fail the result is 0.
func FallbackFloat(performed, planned string) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(performed), 64); err == nil {
		return f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(planned), 64); err == nil {
		return f
	}
	return 0
}

// PerformedFromPlan builds the stored numeric values for one exercise from
// the raw as-performed strings, falling back to the plan's as-authored
// values when a field is empty or unparsable.
func PerformedFromPlan(planned Exercise, sets, reps, weight string) PerformedExercise {
	return PerformedExercise{
		Name:   planned.Name,
		Sets:   IntOr(sets, planned.Sets),
		Reps:   FallbackInt(reps, planned.Reps),
		Weight: FallbackFloat(weight, planned.Weight),
	}
}
