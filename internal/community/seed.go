package community

import (
	"context"
	"errors"

	"porchlight/internal/model"
)

// SeedRoster returns the built-in fixture: the dozen residents a fresh
// install starts with. Callers own the returned slice.
func SeedRoster() []model.Resident {
	return []model.Resident{
		{ID: "r01", Name: "Alice Tran", Bio: "Loves gardening and morning tai chi", New: true, Available: true},
		{ID: "r02", Name: "Bev Okafor", Bio: "Crossword fiend, former librarian", New: false, Available: false},
		{ID: "r03", Name: "Cathy Delgado", Bio: "Retired teacher, hosts book club Tuesdays", New: false, Available: true},
		{ID: "r04", Name: "Duke Mansfield", Bio: "Woodworking and war documentaries", New: false, Available: false},
		{ID: "r05", Name: "Elena Petrov", Bio: "Watercolors, looking for a chess partner", New: false, Available: true},
		{ID: "r06", Name: "Frank Osei", Bio: "Jazz records and slow cooking", New: false, Available: false},
		{ID: "r07", Name: "Grace Liu", Bio: "Mahjong most afternoons, all welcome", New: false, Available: true},
		{ID: "r08", Name: "Hal Bergstrom", Bio: "Birdwatching before breakfast", New: true, Available: false},
		{ID: "r09", Name: "Ida Rosenblum", Bio: "Knits for the whole floor, tea at four", New: false, Available: true},
		{ID: "r10", Name: "Joe Castellano", Bio: "Bocce league organizer", New: false, Available: false},
		{ID: "r11", Name: "Kay Whitfield", Bio: "Old musicals and new recipes", New: false, Available: true},
		{ID: "r12", Name: "Leo Abramov", Bio: "Photography walks on weekends", New: false, Available: false},
	}
}

// Seed writes the fixture roster. Unless force is set it refuses when a
// roster has already been persisted, so a stray invocation cannot wipe
// residents added by hand.
func (c *Community) Seed(ctx context.Context, force bool) error {
	if !force {
		if _, ok, err := c.port.Get(ctx, slotRoster); err == nil && ok {
			return errors.New("roster already persisted, use force to overwrite")
		}
	}
	c.roster = SeedRoster()
	return c.persistRoster(ctx)
}
