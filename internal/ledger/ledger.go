// ABOUTME: Append-only completion ledger shared by all plans.
// ABOUTME: One JSON-array blob; queries filter by plan, cycle, day, exercise.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/harperreed/liftlog/internal/blob"
	"github.com/harperreed/liftlog/internal/models"
)

// BlobKey is the shared ledger blob holding every plan's completions.
const BlobKey = "CompletedWorkouts.json"

// ErrCorrupt is returned when the ledger blob exists but does not parse.
// A corrupt ledger is a data-integrity failure and is never silently
// treated as empty.
var ErrCorrupt = errors.New("completed workouts ledger is corrupt")

// Ledger is the durable log of completed workouts. Appends are whole-blob
// read-modify-write: the mutex serializes in-process writers, and the
// design assumes a single writing process (one user, one device).
type Ledger struct {
	store blob.Store
	mu    sync.Mutex
}

// New creates a Ledger over the given store.
func New(store blob.Store) *Ledger {
	return &Ledger{store: store}
}

// LoadAll reads every record in storage order. A missing blob is
// initialized to an empty array; an unparsable blob returns ErrCorrupt.
func (l *Ledger) LoadAll() ([]models.CompletionRecord, error) {
	data, err := l.store.Read(BlobKey)
	if errors.Is(err, blob.ErrNotFound) {
		if err := l.store.Write(BlobKey, []byte("[]")); err != nil {
			return nil, fmt.Errorf("initialize ledger: %w", err)
		}
		return []models.CompletionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var records []models.CompletionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return records, nil
}

// Append adds one record to the ledger. Existing records are rewritten
// unchanged; nothing is ever mutated or dropped.
func (l *Ledger) Append(rec models.CompletionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.LoadAll()
	if err != nil {
		return err
	}
	records = append(records, rec)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := l.store.Write(BlobKey, data); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

// ForPlan returns all records for a plan, in storage order.
func (l *Ledger) ForPlan(planKey string) ([]models.CompletionRecord, error) {
	records, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	var out []models.CompletionRecord
	for _, r := range records {
		if r.PlanKey == planKey {
			out = append(out, r)
		}
	}
	return out, nil
}

// ForPlanAndCycle returns a plan's records tagged with the given cycle.
// Records written before cycle tracking count as cycle 1.
func (l *Ledger) ForPlanAndCycle(planKey string, cycle int) ([]models.CompletionRecord, error) {
	records, err := l.ForPlan(planKey)
	if err != nil {
		return nil, err
	}
	var out []models.CompletionRecord
	for _, r := range records {
		if r.EffectiveCycle() == cycle {
			out = append(out, r)
		}
	}
	return out, nil
}

// LatestForDay returns the most recent record (by timestamp, date fallback)
// for a day within a cycle. Duplicate completions of a day are possible;
// the last one written is authoritative for displayed values.
func LatestForDay(records []models.CompletionRecord, dayName string) *models.CompletionRecord {
	var latest *models.CompletionRecord
	for i := range records {
		if records[i].DayName != dayName {
			continue
		}
		if latest == nil || records[i].OrderKey() >= latest.OrderKey() {
			latest = &records[i]
		}
	}
	return latest
}

// DistinctDays returns the set of day names covered by the records.
func DistinctDays(records []models.CompletionRecord) map[string]bool {
	days := make(map[string]bool, len(records))
	for _, r := range records {
		days[r.DayName] = true
	}
	return days
}

// SeriesEntry is one as-performed data point for an exercise.
type SeriesEntry struct {
	Date      string  `json:"date"`
	Timestamp string  `json:"timestamp,omitempty"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

func (e SeriesEntry) orderKey() string {
	if e.Timestamp != "" {
		return e.Timestamp
	}
	return e.Date
}

// ExerciseSeries flattens every performed entry for the exercise across all
// cycles of a plan, ordered by date ascending with timestamp as tiebreak.
func (l *Ledger) ExerciseSeries(planKey, exerciseName string) ([]SeriesEntry, error) {
	records, err := l.ForPlan(planKey)
	if err != nil {
		return nil, err
	}
	var entries []SeriesEntry
	for _, r := range records {
		for _, ex := range r.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			entries = append(entries, SeriesEntry{
				Date:      r.Date,
				Timestamp: r.Timestamp,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				Weight:    ex.Weight,
			})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
	return entries, nil
}

// LatestExercise returns the most recent performed entry for the exercise,
// ordered by timestamp descending with date as fallback, or nil if the
// exercise has never been logged for the plan.
func (l *Ledger) LatestExercise(planKey, exerciseName string) (*SeriesEntry, error) {
	entries, err := l.ExerciseSeries(planKey, exerciseName)
	if err != nil {
		return nil, err
	}
	var latest *SeriesEntry
	for i := range entries {
		if latest == nil || entries[i].orderKey() >= latest.orderKey() {
			latest = &entries[i]
		}
	}
	return latest, nil
}

// ExerciseNames returns every exercise name logged for a plan, sorted.
func (l *Ledger) ExerciseNames(planKey string) ([]string, error) {
	records, err := l.ForPlan(planKey)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, r := range records {
		for _, ex := range r.Exercises {
			seen[ex.Name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// MaxCycle returns the highest cycle tag among a plan's records, or 0 when
// the plan has none.
func (l *Ledger) MaxCycle(planKey string) (int, error) {
	records, err := l.ForPlan(planKey)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, r := range records {
		if c := r.EffectiveCycle(); c > max {
			max = c
		}
	}
	return max, nil
}

// Recent returns the newest records across all plans, most recent first.
// A limit of 0 returns everything.
func (l *Ledger) Recent(limit int) ([]models.CompletionRecord, error) {
	records, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OrderKey() > records[j].OrderKey()
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
