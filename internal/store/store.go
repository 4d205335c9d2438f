// Package store persists community snapshots as named text slots, with a
// SQLite implementation for real runs and an in-memory one for tests.
package store

import "context"

// Port is the narrow persistence surface the rest of the app writes through.
// Values are opaque text; callers pick their own encoding. A slot that was
// never written is reported through ok=false rather than an error, because
// every caller treats absent and unreadable slots the same way: fall back to
// a default and carry on.
type Port interface {
	// Get returns the value stored under slot, ok=false when the slot has
	// never been written.
	Get(ctx context.Context, slot string) (value string, ok bool, err error)

	// Set stores or replaces the value under slot.
	Set(ctx context.Context, slot, value string) error

	// Close releases the backing resources.
	Close() error
}
