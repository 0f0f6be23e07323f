// ABOUTME: CompletionRecord model for the append-only workout ledger.
// ABOUTME: Records are immutable once appended; dayName links them to plans.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PerformedExercise holds the as-performed values for one exercise,
// captured independently from the plan's as-authored values.
type PerformedExercise struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// CompletionRecord is one completed day's workout. Records are created
// exactly once and never edited. DayName is the authoritative link back to
// the plan; DayIndex is informational only.
type CompletionRecord struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Timestamp   string              `json:"timestamp"`
	PlanKey     string              `json:"planKey"`
	WorkoutName string              `json:"workoutName"`
	DayName     string              `json:"dayName"`
	DayIndex    int                 `json:"dayIndex"`
	Cycle       int                 `json:"cycle"`
	Exercises   []PerformedExercise `json:"exercises"`
}

// NewCompletionRecord creates a record stamped with the local calendar date
// and an RFC3339 timestamp for same-date ordering.
func NewCompletionRecord(planKey, workoutName, dayName string, dayIndex, cycle int, performed []PerformedExercise) *CompletionRecord {
	now := time.Now()
	return &CompletionRecord{
		ID:          uuid.New().String(),
		Date:        now.Format("2006-01-02"),
		Timestamp:   now.UTC().Format(time.RFC3339),
		PlanKey:     planKey,
		WorkoutName: workoutName,
		DayName:     dayName,
		DayIndex:    dayIndex,
		Cycle:       cycle,
		Exercises:   performed,
	}
}

// EffectiveCycle returns the record's cycle, defaulting to 1 for legacy
// records written before cycles were tracked.
func (r *CompletionRecord) EffectiveCycle() int {
	if r.Cycle < 1 {
		return 1
	}
	return r.Cycle
}

// OrderKey returns the string used to order records chronologically:
// the timestamp when present, otherwise the date.
func (r *CompletionRecord) OrderKey() string {
	if r.Timestamp != "" {
		return r.Timestamp
	}
	return r.Date
}

// Exercise returns the performed entry with the given name, if any.
func (r *CompletionRecord) Exercise(name string) (*PerformedExercise, bool) {
	for i := range r.Exercises {
		if r.Exercises[i].Name == name {
			return &r.Exercises[i], true
		}
	}
	return nil, false
}
