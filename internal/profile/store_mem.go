package profile

import (
	"context"
	"sync"

	"bigtwo/internal/engine"
)

type memStore struct {
	mu       sync.Mutex
	profiles map[string]Profile
}

// NewMemoryStore returns an in-process Store. State does not survive a
// restart; it backs tables run without Redis.
func NewMemoryStore() Store {
	return &memStore{profiles: make(map[string]Profile)}
}

func (m *memStore) Get(ctx context.Context, name string) (Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[name]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (m *memStore) Put(ctx context.Context, p Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.Name] = p
	return nil
}

func (m *memStore) Apply(ctx context.Context, updates []engine.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range updates {
		m.profiles[u.Name] = applyUpdate(m.profiles[u.Name], u)
	}
	return nil
}
