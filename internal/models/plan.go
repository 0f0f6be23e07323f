// ABOUTME: Plan, WorkoutDay, and Exercise models for workout plans.
// ABOUTME: Day order is significant; it drives cycle day counts and indexes.
package models

import (
	"fmt"
	"strings"
)

// Plan is a workout plan: an ordered list of days, each with its exercises.
// Plans are identified externally by a plan key derived from the blob name;
// renaming Type does not change the key used to file completion records.
type Plan struct {
	Type string       `json:"type"`
	Days []WorkoutDay `json:"days"`
}

// WorkoutDay is one day of a plan. Day names are unique within a plan
// (case-insensitive) and are the authoritative link to completion records.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Location  string     `json:"location,omitempty"`
	Focus     string     `json:"focus,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise holds the as-authored values for one exercise. Reps and Weight
// are numeric-ish free text ("8", "30" for seconds, "72.5").
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
}

// TotalDays returns the number of days in one full cycle of the plan.
func (p *Plan) TotalDays() int {
	return len(p.Days)
}

// FindDay returns the day with the given name and its index.
// Matching is exact first, then case-insensitive.
func (p *Plan) FindDay(name string) (*WorkoutDay, int, bool) {
	for i := range p.Days {
		if p.Days[i].Day == name {
			return &p.Days[i], i, true
		}
	}
	for i := range p.Days {
		if strings.EqualFold(p.Days[i].Day, name) {
			return &p.Days[i], i, true
		}
	}
	return nil, 0, false
}

// Validate checks the invariants enforced at save time: day names present
// and unique (case-insensitive), exercise names non-empty, sets >= 0.
func (p *Plan) Validate() error {
	seen := make(map[string]bool, len(p.Days))
	for i, day := range p.Days {
		if strings.TrimSpace(day.Day) == "" {
			return fmt.Errorf("day %d has no name", i+1)
		}
		lower := strings.ToLower(day.Day)
		if seen[lower] {
			return fmt.Errorf("duplicate day name: %s", day.Day)
		}
		seen[lower] = true

		for j, ex := range day.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return fmt.Errorf("%s: exercise %d has no name", day.Day, j+1)
			}
			if ex.Sets < 0 {
				return fmt.Errorf("%s: %s has negative sets", day.Day, ex.Name)
			}
		}
	}
	return nil
}
