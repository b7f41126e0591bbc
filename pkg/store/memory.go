package store

import (
	"fmt"
	"sync"
)

// MemoryStore keeps snapshots in process memory
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string]Snapshot
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]Snapshot)}
}

// Save stores a copy of the snapshot
func (m *MemoryStore) Save(name string, s Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = s
	return nil
}

// Load returns the snapshot saved under name
func (m *MemoryStore) Load(name string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.blobs[name]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}
