// Package community owns the application state: the resident roster, the
// viewer's porch light, and the message threads. All mutation goes through
// the Community controller, which persists every change to the slot store
// and hands out copies on the read side. Nothing in here is global.
package community

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"porchlight/internal/directory"
	"porchlight/internal/model"
	"porchlight/internal/store"
)

// Slot names in the persistence port. Each holds one JSON document covering
// its whole concern; writes replace the document.
const (
	slotRoster    = "roster"
	slotAvailable = "self_available"
	slotThreads   = "threads"
)

// ErrNotFound reports a resident reference that matches nobody.
var ErrNotFound = errors.New("resident not found")

// Community is the single owner of mutable state. It is not safe for
// concurrent use; the CLI runs one command and exits, and the UI funnels
// every event through one update loop.
type Community struct {
	port    store.Port
	log     *zap.Logger
	now     func() time.Time
	entropy *rand.Rand

	roster        []model.Resident
	selfAvailable bool
	threads       map[string][]model.Message
}

// New wires a controller to a persistence port. Call Load before reading.
func New(port store.Port, log *zap.Logger) *Community {
	if log == nil {
		log = zap.NewNop()
	}
	return &Community{
		port:    port,
		log:     log,
		now:     time.Now,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		threads: make(map[string][]model.Message),
	}
}

// Open opens the slot database at dbPath and returns a loaded controller.
// This is the composition every command starts from.
func Open(ctx context.Context, dbPath string, log *zap.Logger) (*Community, error) {
	port, err := store.NewSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	c := New(port, log)
	c.Load(ctx)
	return c, nil
}

// Load populates state from the slot store. A slot that is missing, corrupt,
// or unreadable falls back to its documented default — the seed roster, the
// light on, no threads — so loading never fails and never interrupts the
// user. Recovery is only visible at debug level.
func (c *Community) Load(ctx context.Context) {
	c.roster = c.loadRoster(ctx)
	c.selfAvailable = c.loadSelfAvailable(ctx)
	c.threads = c.loadThreads(ctx)
}

// Close releases the persistence port.
func (c *Community) Close() error {
	return c.port.Close()
}

func (c *Community) loadRoster(ctx context.Context) []model.Resident {
	raw, ok, err := c.port.Get(ctx, slotRoster)
	if err != nil || !ok {
		if err != nil {
			c.log.Debug("roster slot unreadable, seeding", zap.Error(err))
		}
		return SeedRoster()
	}
	var roster []model.Resident
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		c.log.Debug("roster slot corrupt, seeding", zap.Error(err))
		return SeedRoster()
	}
	return roster
}

func (c *Community) loadSelfAvailable(ctx context.Context) bool {
	raw, ok, err := c.port.Get(ctx, slotAvailable)
	if err != nil || !ok {
		if err != nil {
			c.log.Debug("availability slot unreadable, defaulting on", zap.Error(err))
		}
		return true
	}
	var on bool
	if err := json.Unmarshal([]byte(raw), &on); err != nil {
		c.log.Debug("availability slot corrupt, defaulting on", zap.Error(err))
		return true
	}
	return on
}

func (c *Community) loadThreads(ctx context.Context) map[string][]model.Message {
	raw, ok, err := c.port.Get(ctx, slotThreads)
	if err != nil || !ok {
		if err != nil {
			c.log.Debug("threads slot unreadable, starting empty", zap.Error(err))
		}
		return make(map[string][]model.Message)
	}
	var threads map[string][]model.Message
	if err := json.Unmarshal([]byte(raw), &threads); err != nil || threads == nil {
		c.log.Debug("threads slot corrupt, starting empty", zap.Error(err))
		return make(map[string][]model.Message)
	}
	return threads
}

func (c *Community) persistRoster(ctx context.Context) error {
	b, _ := json.Marshal(c.roster)
	if err := c.port.Set(ctx, slotRoster, string(b)); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}
	return nil
}

func (c *Community) persistSelfAvailable(ctx context.Context) error {
	b, _ := json.Marshal(c.selfAvailable)
	if err := c.port.Set(ctx, slotAvailable, string(b)); err != nil {
		return fmt.Errorf("persist availability: %w", err)
	}
	return nil
}

func (c *Community) persistThreads(ctx context.Context) error {
	b, _ := json.Marshal(c.threads)
	if err := c.port.Set(ctx, slotThreads, string(b)); err != nil {
		return fmt.Errorf("persist threads: %w", err)
	}
	return nil
}

// Roster returns a copy of the resident collection.
func (c *Community) Roster() []model.Resident {
	return append([]model.Resident(nil), c.roster...)
}

// SelfAvailable reports whether the viewer's own porch light is on.
func (c *Community) SelfAvailable() bool {
	return c.selfAvailable
}

// Directory runs the view pipeline over the current roster.
func (c *Community) Directory(f directory.Filters) []model.Resident {
	return directory.FilterAndSort(c.roster, f)
}

// Summary returns the community-wide counts, viewer included.
func (c *Community) Summary() directory.Summary {
	return directory.Summarize(c.roster, c.selfAvailable)
}

// SetSelfAvailable flips the viewer's light and persists it.
func (c *Community) SetSelfAvailable(ctx context.Context, on bool) error {
	c.selfAvailable = on
	return c.persistSelfAvailable(ctx)
}

// AddParams holds the fields for a new resident. Everything is optional;
// sparse records are legal.
type AddParams struct {
	Name      string
	Bio       string
	New       bool
	Available bool
}

// AddResident appends a resident with a fresh random id. The previous roster
// slice is never modified; readers holding it keep a consistent view.
func (c *Community) AddResident(ctx context.Context, p AddParams) (model.Resident, error) {
	r := model.Resident{
		ID:        uuid.New().String(),
		Name:      p.Name,
		Bio:       p.Bio,
		New:       p.New,
		Available: p.Available,
	}
	next := make([]model.Resident, 0, len(c.roster)+1)
	next = append(next, c.roster...)
	next = append(next, r)
	c.roster = next
	return r, c.persistRoster(ctx)
}

// RemoveResident drops a resident and their message thread.
func (c *Community) RemoveResident(ctx context.Context, id string) error {
	next := make([]model.Resident, 0, len(c.roster))
	found := false
	for _, r := range c.roster {
		if r.ID == id {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.roster = next

	if _, ok := c.threads[id]; ok {
		delete(c.threads, id)
		if err := c.persistThreads(ctx); err != nil {
			return err
		}
	}
	return c.persistRoster(ctx)
}

// SetFlagsParams names the optional flag updates; nil fields keep the
// current value.
type SetFlagsParams struct {
	Available *bool
	New       *bool
}

// SetFlags updates a resident's porch light or newcomer badge.
func (c *Community) SetFlags(ctx context.Context, id string, p SetFlagsParams) (model.Resident, error) {
	next := make([]model.Resident, len(c.roster))
	copy(next, c.roster)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if p.Available != nil {
			next[i].Available = *p.Available
		}
		if p.New != nil {
			next[i].New = *p.New
		}
		c.roster = next
		return next[i], c.persistRoster(ctx)
	}
	return model.Resident{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Resolve finds a resident by exact id, then by unique case-insensitive name
// prefix. Ambiguous prefixes are errors; the CLI never guesses.
func (c *Community) Resolve(ref string) (model.Resident, error) {
	if ref == "" {
		return model.Resident{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	for _, r := range c.roster {
		if r.ID == ref {
			return r, nil
		}
	}
	prefix := strings.ToLower(ref)
	var found []model.Resident
	for _, r := range c.roster {
		if strings.HasPrefix(strings.ToLower(r.Name), prefix) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return model.Resident{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	default:
		return model.Resident{}, fmt.Errorf("%q matches %d residents, use an id", ref, len(found))
	}
}

func (c *Community) byID(id string) (model.Resident, error) {
	for _, r := range c.roster {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Resident{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
