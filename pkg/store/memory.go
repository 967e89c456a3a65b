package store

import (
	"fmt"
	"sync"
)

// Memory is a map-backed Adapter used by tests and by read-only tooling.
// FailWrites makes every Set report ErrUnavailable, for exercising the
// degraded-storage paths.
type Memory struct {
	mu         sync.Mutex
	values     map[string]string
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("%w: write %s", ErrUnavailable, key)
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
