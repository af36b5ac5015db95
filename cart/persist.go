package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Snapshot is the persisted form of a cart: the same {items, subtotal} shape
// the HTTP surface serves.
type Snapshot struct {
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// ErrNotFound is returned by a Persister when no snapshot exists for a key.
var ErrNotFound = errors.New("cart snapshot not found")

// Persister is the key-value slot carts are saved to. Implementations hold
// one snapshot per session key.
type Persister interface {
	Load(ctx context.Context, key string) (*Snapshot, error)
	Save(ctx context.Context, key string, snap Snapshot) error
	Delete(ctx context.Context, key string) error
}

// MemoryPersister keeps snapshots in process memory. Used in tests and for
// single-node runs without Redis; contents are lost on restart.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

func (m *MemoryPersister) Load(_ context.Context, key string) (*Snapshot, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot: %w", err)
	}
	return &snap, nil
}

func (m *MemoryPersister) Save(_ context.Context, key string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryPersister) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
