package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KeyValueStore = (*KVStore)(nil)

// KVStore is an in-memory implementation of driven.KeyValueStore.
// Values are copied on the way in and out so callers cannot alias stored bytes.
type KVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKVStore creates a new in-memory key-value store.
func NewKVStore() *KVStore {
	return &KVStore{
		values: make(map[string][]byte),
	}
}

// Get returns the value stored under key.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

// Set stores value under key.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Keys returns every stored key in lexical order.
func (s *KVStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op for the in-memory store.
func (s *KVStore) Close() error {
	return nil
}

// Path returns a placeholder since nothing is written to disk.
func (s *KVStore) Path() string {
	return ":memory:"
}
