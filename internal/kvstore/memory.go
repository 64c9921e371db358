package kvstore

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore mantém os dados apenas em memória (testes e execuções efêmeras)
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	// sem expiração e sem janitor
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, found := m.cache.Get(key)
	if !found {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *MemoryStore) MultiRemove(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.cache.Delete(k)
	}
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Driver() Driver { return DriverMemory }

var _ Store = (*MemoryStore)(nil)
