package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryAdapter provides thread-safe in-memory storage.
type MemoryAdapter struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryAdapter creates a new in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		data: make(map[string]json.RawMessage),
	}
}

// Get retrieves a value by key.
func (m *MemoryAdapter) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores a value by key.
func (m *MemoryAdapter) Set(_ context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete removes a key.
func (m *MemoryAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Has returns true if the key exists.
func (m *MemoryAdapter) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

// Len returns the number of stored keys.
func (m *MemoryAdapter) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data), nil
}

// Clear removes all data.
func (m *MemoryAdapter) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]json.RawMessage)
	return nil
}
