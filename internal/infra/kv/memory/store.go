// Package memory implements an in-memory kv Store for tests and ephemeral
// runs.
package memory

import (
	"context"
	"sync"

	"fieldcore/internal/kv/core"
)

// Compile-time contract assertion.
var _ core.Store = (*Store)(nil)

// Store implements core.Store backed by process memory.
type Store struct {
	mu   sync.RWMutex
	objs map[string]string
}

// New returns an empty in-memory store.
func New() *Store { return &Store{objs: make(map[string]string)} }

// Driver returns the kv driver identifier.
func (s *Store) Driver() core.Driver { return core.DriverMemory }

// Get returns the blob stored at key, reporting presence explicitly.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.objs[key]
	return v, ok, nil
}

// Set stores value at key, replacing any previous blob.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objs[key] = value
	return nil
}

// Remove deletes the key; missing keys are a no-op.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objs, key)
	return nil
}

// Len reports the number of stored keys, for test assertions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}
