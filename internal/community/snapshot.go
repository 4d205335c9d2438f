package community

import (
	"context"
	"fmt"
	"time"

	"porchlight/internal/model"
)

// Snapshot is the whole-state export: everything the slot store holds, in
// one reviewable document.
type Snapshot struct {
	ExportedAt    time.Time                  `json:"exported_at"`
	SelfAvailable bool                       `json:"self_available"`
	Residents     []model.Resident           `json:"residents"`
	Threads       map[string][]model.Message `json:"threads"`
}

// Export captures the current state. The snapshot shares nothing with the
// controller; it stays consistent across later mutations.
func (c *Community) Export() Snapshot {
	snap := Snapshot{
		ExportedAt:    c.now().UTC(),
		SelfAvailable: c.selfAvailable,
		Residents:     c.Roster(),
		Threads:       make(map[string][]model.Message, len(c.threads)),
	}
	for id, msgs := range c.threads {
		snap.Threads[id] = append([]model.Message(nil), msgs...)
	}
	return snap
}

// Import replaces all state with the snapshot's and persists every slot.
// Resident ids must be present and unique; snapshots are the one place
// outside data enters the roster.
func (c *Community) Import(ctx context.Context, snap Snapshot) error {
	seen := make(map[string]bool, len(snap.Residents))
	for _, r := range snap.Residents {
		if r.ID == "" {
			return fmt.Errorf("import: resident %q has no id", r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("import: duplicate resident id %s", r.ID)
		}
		seen[r.ID] = true
	}

	c.roster = append([]model.Resident(nil), snap.Residents...)
	c.selfAvailable = snap.SelfAvailable
	c.threads = make(map[string][]model.Message, len(snap.Threads))
	for id, msgs := range snap.Threads {
		c.threads[id] = append([]model.Message(nil), msgs...)
	}

	if err := c.persistRoster(ctx); err != nil {
		return err
	}
	if err := c.persistSelfAvailable(ctx); err != nil {
		return err
	}
	return c.persistThreads(ctx)
}
