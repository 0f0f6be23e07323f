// ABOUTME: Plan repository over the blob store, one JSON blob per plan.
// ABOUTME: Plan keys derive from blob names and outlive plan renames.
package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/liftlog/internal/blob"
	"github.com/harperreed/liftlog/internal/cycle"
	"github.com/harperreed/liftlog/internal/ledger"
	"github.com/harperreed/liftlog/internal/models"
)

// ErrNotFound is returned when no plan exists under the key.
var ErrNotFound = errors.New("plan not found")

// Repository loads and saves workout plans. The completion core only reads
// plans; all mutation goes through here.
type Repository struct {
	store blob.Store
}

// NewRepository creates a Repository over the given store.
func NewRepository(store blob.Store) *Repository {
	return &Repository{store: store}
}

// blobKey maps a plan key to its blob name.
func blobKey(planKey string) string {
	return planKey + ".json"
}

// KeyFromBlob derives the plan key from a blob name.
func KeyFromBlob(name string) string {
	return strings.TrimSuffix(name, ".json")
}

// isPlanBlob reports whether a blob key holds a plan document, as opposed
// to the shared ledger or per-plan cycle state.
func isPlanBlob(key string) bool {
	return strings.HasSuffix(key, ".json") &&
		key != ledger.BlobKey &&
		!cycle.IsCycleBlob(key)
}

// NormalizeKey turns a user-supplied name into a plan key.
func NormalizeKey(name string) string {
	key := strings.TrimSpace(strings.TrimSuffix(name, ".json"))
	key = strings.ReplaceAll(key, " ", "_")
	return strings.ToLower(key)
}

// Load reads a plan by key. Returns ErrNotFound when absent.
func (r *Repository) Load(planKey string) (*models.Plan, error) {
	data, err := r.store.Read(blobKey(planKey))
	if errors.Is(err, blob.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, planKey)
	}
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", planKey, err)
	}
	var p models.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", planKey, err)
	}
	return &p, nil
}

// Save validates and writes a plan.
func (r *Repository) Save(planKey string, p *models.Plan) error {
	if planKey == "" {
		return fmt.Errorf("empty plan key")
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid plan %s: %w", planKey, err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan %s: %w", planKey, err)
	}
	if err := r.store.Write(blobKey(planKey), data); err != nil {
		return fmt.Errorf("write plan %s: %w", planKey, err)
	}
	return nil
}

// Delete removes a plan document. Completion history and cycle state are
// left alone; the records simply become orphaned history.
func (r *Repository) Delete(planKey string) error {
	return r.store.Delete(blobKey(planKey))
}

// Keys lists all plan keys, sorted.
func (r *Repository) Keys() ([]string, error) {
	keys, err := r.store.Keys()
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	var out []string
	for _, k := range keys {
		if isPlanBlob(k) {
			out = append(out, KeyFromBlob(k))
		}
	}
	sort.Strings(out)
	return out, nil
}

// Stat reports whether the plan exists and, on file-backed stores, when it
// was last written.
func (r *Repository) Stat(planKey string) (blob.Info, error) {
	return r.store.Stat(blobKey(planKey))
}
