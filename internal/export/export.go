// ABOUTME: Export of all plans, cycle state, and completion history.
// ABOUTME: Supports JSON and YAML renderings of one versioned envelope.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/plans"
	"github.com/harperreed/liftlog/internal/progress"
)

// PlanExport is one plan with its key and current cycle.
type PlanExport struct {
	Key   string      `json:"key" yaml:"key"`
	Cycle int         `json:"cycle" yaml:"cycle"`
	Plan  models.Plan `json:"plan" yaml:"plan"`
}

// Data is the full export format for liftlog data.
type Data struct {
	Version    string                    `json:"version" yaml:"version"`
	ExportedAt time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool       string                    `json:"tool" yaml:"tool"`
	Plans      []PlanExport              `json:"plans" yaml:"plans"`
	Records    []models.CompletionRecord `json:"records" yaml:"records"`
}

// Collect gathers every plan and every completion record.
func Collect(repo *plans.Repository, tracker *progress.Tracker) (*Data, error) {
	keys, err := repo.Keys()
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	exported := make([]PlanExport, 0, len(keys))
	for _, key := range keys {
		p, err := repo.Load(key)
		if err != nil {
			return nil, fmt.Errorf("load plan %s: %w", key, err)
		}
		exported = append(exported, PlanExport{
			Key:   key,
			Cycle: tracker.Cycle(key),
			Plan:  *p,
		})
	}

	records, err := tracker.Ledger().LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	return &Data{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "liftlog",
		Plans:      exported,
		Records:    records,
	}, nil
}

// JSON renders the export as indented JSON.
func (d *Data) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the export as YAML.
func (d *Data) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
