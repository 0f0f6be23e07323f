// ABOUTME: Per-plan cycle counter persisted as a dedicated blob.
// ABOUTME: Missing or corrupt state reads as cycle 1 and never blocks.
package cycle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/liftlog/internal/blob"
)

// BlobPrefix prefixes every cycle blob key.
const BlobPrefix = "latestCycle_"

// BlobKey returns the cycle blob key for a plan.
func BlobKey(planKey string) string {
	return BlobPrefix + planKey + ".json"
}

// IsCycleBlob reports whether a blob key holds cycle state.
func IsCycleBlob(key string) bool {
	return strings.HasPrefix(key, BlobPrefix)
}

type state struct {
	Cycle int `json:"cycle"`
}

// Tracker is the source of truth for which cycle each plan is on.
type Tracker struct {
	store blob.Store
}

// New creates a Tracker over the given store.
func New(store blob.Store) *Tracker {
	return &Tracker{store: store}
}

// Cycle returns the plan's current cycle. Missing, unreadable, or
// unparsable state reads as 1: losing cycle bookkeeping must never block
// workout logging. The blob is not repaired until the next SetCycle.
func (t *Tracker) Cycle(planKey string) int {
	data, err := t.store.Read(BlobKey(planKey))
	if err != nil {
		return 1
	}
	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return 1
	}
	if s.Cycle < 1 {
		return 1
	}
	return s.Cycle
}

// SetCycle overwrites the plan's cycle state.
func (t *Tracker) SetCycle(planKey string, cycle int) error {
	if cycle < 1 {
		cycle = 1
	}
	data, err := json.Marshal(state{Cycle: cycle})
	if err != nil {
		return fmt.Errorf("encode cycle state: %w", err)
	}
	if err := t.store.Write(BlobKey(planKey), data); err != nil {
		return fmt.Errorf("write cycle state: %w", err)
	}
	return nil
}

// Advance unconditionally bumps the cycle and returns the new value.
// Conditional advancement goes through the rollover check in the progress
// package instead, to avoid double-advancing.
func (t *Tracker) Advance(planKey string) (int, error) {
	next := t.Cycle(planKey) + 1
	if err := t.SetCycle(planKey, next); err != nil {
		return 0, err
	}
	return next, nil
}
