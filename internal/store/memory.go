package store

import (
	"context"
	"sync"
)

// Memory implements Port on a plain map. It backs tests and throwaway runs;
// nothing survives the process.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory returns an empty in-memory Port.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, slot string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[slot]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, slot, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
