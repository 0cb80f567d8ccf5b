package memory

import (
	"sync"

	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds settings in a map and never touches disk. Numbers
// are stored as float64 so reads match what a TOML round trip gives.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: map[string]any{}}
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

func (s *ConfigStore) GetFloat(key string) float64 {
	v, _ := s.Get(key)
	f, _ := v.(float64)
	return f
}

func (s *ConfigStore) Set(key string, value any) error {
	switch n := value.(type) {
	case int:
		value = float64(n)
	case int64:
		value = float64(n)
	case float32:
		value = float64(n)
	}

	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

// Path returns ":memory:", matching the in-memory KV store.
func (s *ConfigStore) Path() string { return ":memory:" }
