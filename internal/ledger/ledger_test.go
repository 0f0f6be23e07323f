// ABOUTME: Tests for the completion ledger.
// ABOUTME: Covers append-only behavior, filters, series ordering, corruption.
package ledger

import (
	"errors"
	"testing"

	"github.com/harperreed/liftlog/internal/blob"
	"github.com/harperreed/liftlog/internal/models"
)

func setupLedger(t *testing.T) (*Ledger, *blob.FileStore) {
	t.Helper()
	store, err := blob.OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir failed: %v", err)
	}
	return New(store), store
}

func record(planKey, dayName string, cycle int, date, ts string, exercises ...models.PerformedExercise) models.CompletionRecord {
	return models.CompletionRecord{
		ID:          dayName + "-" + ts,
		Date:        date,
		Timestamp:   ts,
		PlanKey:     planKey,
		WorkoutName: "Full Body",
		DayName:     dayName,
		Cycle:       cycle,
		Exercises:   exercises,
	}
}

func TestLoadAllInitializesMissingBlob(t *testing.T) {
	l, store := setupLedger(t)

	records, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("LoadAll = %d records, want 0", len(records))
	}

	// The blob now exists with an empty array.
	info, err := store.Stat(BlobKey)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.Exists {
		t.Error("ledger blob was not created on first read")
	}
	data, err := store.Read(BlobKey)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("ledger blob = %q, want []", data)
	}
}

func TestAppendIsAppendOnly(t *testing.T) {
	l, _ := setupLedger(t)

	r1 := record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T08:00:00Z")
	r2 := record("plan1", "Day 2", 1, "2024-01-03", "2024-01-03T08:00:00Z")
	for _, r := range []models.CompletionRecord{r1, r2} {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	records, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("LoadAll = %d records, want 2", len(records))
	}
	if records[0].ID != r1.ID || records[1].ID != r2.ID {
		t.Error("records were reordered or mutated")
	}
	if records[0].Cycle != 1 || records[0].DayName != "Day 1" {
		t.Errorf("first record changed: %+v", records[0])
	}
}

func TestCorruptLedgerIsDistinctFromEmpty(t *testing.T) {
	l, store := setupLedger(t)

	if err := store.Write(BlobKey, []byte("not json")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	_, err := l.LoadAll()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("LoadAll on corrupt blob = %v, want ErrCorrupt", err)
	}

	// Append must not clobber a corrupt ledger with a fresh one.
	if err := l.Append(record("plan1", "Day 1", 1, "2024-01-01", "")); err == nil {
		t.Fatal("Append on corrupt ledger should fail")
	}
	data, _ := store.Read(BlobKey)
	if string(data) != "not json" {
		t.Error("corrupt ledger blob was overwritten")
	}
}

func TestForPlanAndCycleIsolation(t *testing.T) {
	l, _ := setupLedger(t)

	seed := []models.CompletionRecord{
		record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T08:00:00Z"),
		record("plan1", "Day 1", 2, "2024-02-01", "2024-02-01T08:00:00Z"),
		record("plan2", "Day 1", 1, "2024-01-02", "2024-01-02T08:00:00Z"),
	}
	// Legacy record without a cycle tag counts as cycle 1.
	legacy := record("plan1", "Day 2", 0, "2023-12-01", "")
	seed = append(seed, legacy)

	for _, r := range seed {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := l.ForPlanAndCycle("plan1", 1)
	if err != nil {
		t.Fatalf("ForPlanAndCycle failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ForPlanAndCycle(plan1, 1) = %d records, want 2", len(got))
	}
	for _, r := range got {
		if r.PlanKey != "plan1" || r.EffectiveCycle() != 1 {
			t.Errorf("leaked record: %+v", r)
		}
	}

	got, err = l.ForPlanAndCycle("plan1", 2)
	if err != nil {
		t.Fatalf("ForPlanAndCycle failed: %v", err)
	}
	if len(got) != 1 || got[0].Cycle != 2 {
		t.Errorf("ForPlanAndCycle(plan1, 2) = %+v", got)
	}
}

func TestExerciseSeriesSortedByDate(t *testing.T) {
	l, _ := setupLedger(t)

	squat := func(weight float64) models.PerformedExercise {
		return models.PerformedExercise{Name: "Squat", Sets: 3, Reps: 8, Weight: weight}
	}
	// Appended out of date order on purpose.
	seed := []models.CompletionRecord{
		record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T08:00:00Z", squat(60)),
		record("plan1", "Day 1", 2, "2024-01-10", "2024-01-10T08:00:00Z", squat(70)),
		record("plan1", "Day 1", 1, "2024-01-05", "2024-01-05T08:00:00Z", squat(65)),
	}
	for _, r := range seed {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := l.ExerciseSeries("plan1", "Squat")
	if err != nil {
		t.Fatalf("ExerciseSeries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ExerciseSeries = %d entries, want 3", len(entries))
	}
	wantDates := []string{"2024-01-01", "2024-01-05", "2024-01-10"}
	for i, want := range wantDates {
		if entries[i].Date != want {
			t.Errorf("entries[%d].Date = %s, want %s", i, entries[i].Date, want)
		}
	}
	if entries[2].Weight != 70 {
		t.Errorf("entries[2].Weight = %v, want 70", entries[2].Weight)
	}
}

func TestExerciseSeriesSameDateTiebreak(t *testing.T) {
	l, _ := setupLedger(t)

	seed := []models.CompletionRecord{
		record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T18:00:00Z",
			models.PerformedExercise{Name: "Squat", Weight: 65}),
		record("plan1", "Day 2", 1, "2024-01-01", "2024-01-01T08:00:00Z",
			models.PerformedExercise{Name: "Squat", Weight: 60}),
	}
	for _, r := range seed {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := l.ExerciseSeries("plan1", "Squat")
	if err != nil {
		t.Fatalf("ExerciseSeries failed: %v", err)
	}
	if entries[0].Weight != 60 || entries[1].Weight != 65 {
		t.Errorf("same-date entries not ordered by timestamp: %+v", entries)
	}
}

func TestLatestExercise(t *testing.T) {
	l, _ := setupLedger(t)

	seed := []models.CompletionRecord{
		record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T08:00:00Z",
			models.PerformedExercise{Name: "Squat", Weight: 60}),
		record("plan1", "Day 1", 2, "2024-01-10", "2024-01-10T08:00:00Z",
			models.PerformedExercise{Name: "Squat", Weight: 72.5}),
	}
	for _, r := range seed {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	latest, err := l.LatestExercise("plan1", "Squat")
	if err != nil {
		t.Fatalf("LatestExercise failed: %v", err)
	}
	if latest == nil || latest.Weight != 72.5 {
		t.Errorf("LatestExercise = %+v, want weight 72.5", latest)
	}

	latest, err = l.LatestExercise("plan1", "Bench Press")
	if err != nil {
		t.Fatalf("LatestExercise failed: %v", err)
	}
	if latest != nil {
		t.Errorf("LatestExercise for unlogged exercise = %+v, want nil", latest)
	}
}

func TestLatestForDayPrefersNewestTimestamp(t *testing.T) {
	records := []models.CompletionRecord{
		record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T08:00:00Z"),
		record("plan1", "Day 1", 1, "2024-01-02", "2024-01-02T08:00:00Z"),
		record("plan1", "Day 2", 1, "2024-01-03", "2024-01-03T08:00:00Z"),
	}
	got := LatestForDay(records, "Day 1")
	if got == nil || got.Date != "2024-01-02" {
		t.Errorf("LatestForDay = %+v, want the 2024-01-02 record", got)
	}
	if LatestForDay(records, "Day 9") != nil {
		t.Error("LatestForDay for unknown day should be nil")
	}
}

func TestMaxCycleAndRecent(t *testing.T) {
	l, _ := setupLedger(t)

	seed := []models.CompletionRecord{
		record("plan1", "Day 1", 1, "2024-01-01", "2024-01-01T08:00:00Z"),
		record("plan1", "Day 1", 3, "2024-03-01", "2024-03-01T08:00:00Z"),
		record("plan2", "Day 1", 2, "2024-02-01", "2024-02-01T08:00:00Z"),
	}
	for _, r := range seed {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	max, err := l.MaxCycle("plan1")
	if err != nil {
		t.Fatalf("MaxCycle failed: %v", err)
	}
	if max != 3 {
		t.Errorf("MaxCycle(plan1) = %d, want 3", max)
	}
	max, _ = l.MaxCycle("plan9")
	if max != 0 {
		t.Errorf("MaxCycle(plan9) = %d, want 0", max)
	}

	recent, err := l.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Date != "2024-03-01" || recent[1].Date != "2024-02-01" {
		t.Errorf("Recent(2) = %+v", recent)
	}
}
