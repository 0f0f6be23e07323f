// ABOUTME: Tests for the plan repository and starter templates.
// ABOUTME: Covers key derivation, listing, validation, and seeding.
package plans

import (
	"errors"
	"testing"

	"github.com/harperreed/liftlog/internal/blob"
	"github.com/harperreed/liftlog/internal/ledger"
	"github.com/harperreed/liftlog/internal/models"
)

func setupRepo(t *testing.T) (*Repository, *blob.FileStore) {
	t.Helper()
	store, err := blob.OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir failed: %v", err)
	}
	return NewRepository(store), store
}

func TestSaveAndLoad(t *testing.T) {
	repo, _ := setupRepo(t)

	p := &models.Plan{
		Type: "Full Body",
		Days: []models.WorkoutDay{
			{Day: "Day 1", Exercises: []models.Exercise{{Name: "Squat", Sets: 3, Reps: "8", Weight: "60"}}},
		},
	}
	if err := repo.Save("plan1", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load("plan1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Type != "Full Body" || len(got.Days) != 1 || got.Days[0].Exercises[0].Name != "Squat" {
		t.Errorf("Load = %+v", got)
	}
}

func TestLoadMissingPlan(t *testing.T) {
	repo, _ := setupRepo(t)
	_, err := repo.Load("nothing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load missing = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsInvalidPlan(t *testing.T) {
	repo, _ := setupRepo(t)
	p := &models.Plan{
		Type: "Broken",
		Days: []models.WorkoutDay{{Day: "Day 1", Exercises: []models.Exercise{{Name: ""}}}},
	}
	if err := repo.Save("broken", p); err == nil {
		t.Fatal("Save should reject empty exercise names")
	}
}

func TestKeysSkipLedgerAndCycleBlobs(t *testing.T) {
	repo, store := setupRepo(t)

	files := map[string]string{
		"plan1.json":             `{"type":"A","days":[]}`,
		"plan2.json":             `{"type":"B","days":[]}`,
		ledger.BlobKey:           "[]",
		"latestCycle_plan1.json": `{"cycle":2}`,
		"notes.txt":              "not a plan",
	}
	for name, content := range files {
		if err := store.Write(name, []byte(content)); err != nil {
			t.Fatalf("Write %s failed: %v", name, err)
		}
	}

	keys, err := repo.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "plan1" || keys[1] != "plan2" {
		t.Errorf("Keys = %v, want [plan1 plan2]", keys)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"My Plan.json", "my_plan"},
		{"4_days_week", "4_days_week"},
		{"  Push Pull ", "push_pull"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTemplates(t *testing.T) {
	templates, err := Templates()
	if err != nil {
		t.Fatalf("Templates failed: %v", err)
	}
	if len(templates) != 6 {
		t.Fatalf("Templates = %d entries, want 6", len(templates))
	}

	full := templates["2_days_week"]
	if full.Type != "Full Body" || full.TotalDays() != 2 {
		t.Errorf("2_days_week = %+v", full)
	}
	if full.Days[0].Exercises[0].Name != "Squat" {
		t.Errorf("2_days_week day 1 = %+v", full.Days[0])
	}
	if custom := templates["custom"]; custom.TotalDays() != 0 {
		t.Errorf("custom template should have no days: %+v", custom)
	}

	for key, plan := range templates {
		if err := plan.Validate(); err != nil {
			t.Errorf("template %s invalid: %v", key, err)
		}
	}
}

func TestSeedIsIdempotentAndPreservesEdits(t *testing.T) {
	repo, _ := setupRepo(t)

	created, err := repo.Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if len(created) != 6 {
		t.Fatalf("Seed created %d plans, want 6", len(created))
	}

	// Edit one seeded plan, then reseed.
	p, err := repo.Load("2_days_week")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p.Type = "My Full Body"
	if err := repo.Save("2_days_week", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	created, err = repo.Seed()
	if err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("reseed created %v, want nothing", created)
	}
	p, _ = repo.Load("2_days_week")
	if p.Type != "My Full Body" {
		t.Error("reseed overwrote an edited plan")
	}
}
