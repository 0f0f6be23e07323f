// ABOUTME: Embedded starter plan templates, from two- to six-day splits.
// ABOUTME: Seed writes any template not already present in the store.
package plans

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/harperreed/liftlog/internal/models"
)

//go:embed templates.json
var templatesJSON []byte

// Templates returns the built-in starter plans keyed by plan key.
func Templates() (map[string]models.Plan, error) {
	var templates map[string]models.Plan
	if err := json.Unmarshal(templatesJSON, &templates); err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	return templates, nil
}

// Seed writes every starter template that does not already exist, and
// returns the keys it created. Existing plans are never overwritten.
func (r *Repository) Seed() ([]string, error) {
	templates, err := Templates()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var created []string
	for _, key := range keys {
		if _, err := r.Load(key); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return created, err
		}
		plan := templates[key]
		if err := r.Save(key, &plan); err != nil {
			return created, err
		}
		created = append(created, key)
	}
	return created, nil
}
