package cart

import (
	"context"
	"errors"
	"log"
)

// Manager loads and saves per-session carts through a Persister. A missing
// or unreadable snapshot falls back to an empty cart: corruption is logged
// for operators, never surfaced to the shopper.
type Manager struct {
	persister Persister
}

func NewManager(p Persister) *Manager {
	return &Manager{persister: p}
}

func (m *Manager) Load(ctx context.Context, sessionID string) *Store {
	snap, err := m.persister.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("cart: failed to restore snapshot for %q: %v", sessionID, err)
		}
		return NewStore()
	}
	return FromSnapshot(*snap)
}

func (m *Manager) Save(ctx context.Context, sessionID string, s *Store) error {
	return m.persister.Save(ctx, sessionID, s.Snapshot())
}

func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	return m.persister.Delete(ctx, sessionID)
}
