// ABOUTME: Progress tracking facade: day status, completion recording,
// ABOUTME: cycle rollover, forced new cycles, and exercise history.
package progress

import (
	"fmt"

	"github.com/harperreed/liftlog/internal/blob"
	"github.com/harperreed/liftlog/internal/cycle"
	"github.com/harperreed/liftlog/internal/ledger"
	"github.com/harperreed/liftlog/internal/models"
)

// Tracker ties the completion ledger and cycle counters together. All
// queries take the plan key explicitly; there is no ambient current plan.
type Tracker struct {
	ledger *ledger.Ledger
	cycles *cycle.Tracker
}

// New creates a Tracker over the given store.
func New(store blob.Store) *Tracker {
	return &Tracker{
		ledger: ledger.New(store),
		cycles: cycle.New(store),
	}
}

// Ledger exposes the underlying completion ledger for history views.
func (t *Tracker) Ledger() *ledger.Ledger {
	return t.ledger
}

// Cycle returns the plan's current cycle number.
func (t *Tracker) Cycle(planKey string) int {
	return t.cycles.Cycle(planKey)
}

/// ExerciseStatus is the reference data shown for one planned exercise:
// the as-authored values, plus as-performed values from this cycle when the
// day is completed, or from the previous cycle as a "Last" reference.
type ExerciseStatus struct {
	Planned   models.Exercise
	Completed *models.PerformedExercise
	LastCycle *models.PerformedExercise
}

// DayStatus is the derived completion state for one plan day.
type DayStatus struct {
	Completed bool
	Record    *models.CompletionRecord // this cycle's record, last-by-timestamp
	LastCycle *models.CompletionRecord // previous cycle's record for the day
	Exercises []ExerciseStatus
}

// DayStatuses derives per-day completion and comparison state for the
// plan's current cycle, keyed by day name. Records whose day name matches
// no current plan day are excluded here but stay in history views.
func (t *Tracker) DayStatuses(plan *models.Plan, planKey string) (map[string]DayStatus, error) {
	cur := t.cycles.Cycle(planKey)

	current, err := t.ledger.ForPlanAndCycle(planKey, cur)
	if err != nil {
		return nil, err
	}
	var previous []models.CompletionRecord
	if cur > 1 {
		previous, err = t.ledger.ForPlanAndCycle(planKey, cur-1)
		if err != nil {
			return nil, err
		}
	}

	statuses := make(map[string]DayStatus, len(plan.Days))
	for _, day := range plan.Days {
		rec := ledger.LatestForDay(current, day.Day)
		last := ledger.LatestForDay(previous, day.Day)

		ds := DayStatus{
			Completed: rec != nil,
			Record:    rec,
			LastCycle: last,
			Exercises: make([]ExerciseStatus, 0, len(day.Exercises)),
		}
		for _, ex := range day.Exercises {
			es := ExerciseStatus{Planned: ex}
			if rec != nil {
				if performed, ok := rec.Exercise(ex.Name); ok {
					es.Completed = performed
				}
			}
			if last != nil {
				if performed, ok := last.Exercise(ex.Name); ok {
					es.LastCycle = performed
				}
			}
			ds.Exercises = append(ds.Exercises, es)
		}
		statuses[day.Day] = ds
	}
	return statuses, nil
}

// CycleComplete reports whether every day of the plan has a completion
// record in the current cycle. A plan with no days is never complete.
func (t *Tracker) CycleComplete(plan *models.Plan, planKey string) (bool, error) {
	if len(plan.Days) == 0 {
		return false, nil
	}
	statuses, err := t.DayStatuses(plan, planKey)
	if err != nil {
		return false, err
	}
	for _, day := range plan.Days {
		if !statuses[day.Day].Completed {
			return false, nil
		}
	}
	return true, nil
}

// RecordCompletion appends one completion tagged with the plan's current
// cycle, then checks whether the cycle is now fully covered and advances
// the counter if so. The rollover happens after the append, so the record
// that completes a cycle keeps that cycle's number and only the next
// completion lands in the new cycle.
func (t *Tracker) RecordCompletion(planKey, workoutName, dayName string, dayIndex, totalDaysInCycle int, performed []models.PerformedExercise) (*models.CompletionRecord, error) {
	cur := t.cycles.Cycle(planKey)
	rec := models.NewCompletionRecord(planKey, workoutName, dayName, dayIndex, cur, performed)

	if err := t.ledger.Append(*rec); err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	if totalDaysInCycle < 1 {
		totalDaysInCycle = 1
	}
	current, err := t.ledger.ForPlanAndCycle(planKey, cur)
	if err != nil {
		return rec, fmt.Errorf("check cycle rollover: %w", err)
	}
	if len(ledger.DistinctDays(current)) >= totalDaysInCycle {
		if err := t.cycles.SetCycle(planKey, cur+1); err != nil {
			return rec, fmt.Errorf("advance cycle: %w", err)
		}
	}
	return rec, nil
}

// StartNewCycle forces the plan onto a fresh cycle regardless of
// completion state. The new number is one past both the highest cycle tag
// in the plan's records and the current counter, so it never collides with
// recorded history and never moves backwards.
func (t *Tracker) StartNewCycle(planKey string) (int, error) {
	highest, err := t.ledger.MaxCycle(planKey)
	if err != nil {
		return 0, err
	}
	if cur := t.cycles.Cycle(planKey); cur > highest {
		highest = cur
	}
	next := highest + 1
	if err := t.cycles.SetCycle(planKey, next); err != nil {
		return 0, err
	}
	return next, nil
}

// ExerciseHistory returns the exercise's full as-performed series for the
// plan, across all cycles, oldest first.
func (t *Tracker) ExerciseHistory(planKey, exerciseName string) ([]ledger.SeriesEntry, error) {
	return t.ledger.ExerciseSeries(planKey, exerciseName)
}

// LatestExercise returns the most recent as-performed entry, or nil.
func (t *Tracker) LatestExercise(planKey, exerciseName string) (*ledger.SeriesEntry, error) {
	return t.ledger.LatestExercise(planKey, exerciseName)
}
