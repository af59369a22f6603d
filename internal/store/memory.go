package store

import (
	"sort"
	"sync"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu       sync.RWMutex
	programs map[string]string
	history  []string
	metadata map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		programs: make(map[string]string),
		metadata: make(map[string]string),
	}
}

// Get retrieves a saved program source by name.
func (m *Memory) Get(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.programs[name], nil
}

// Put saves a program source by name.
func (m *Memory) Put(name, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs[name] = source
	return nil
}

// Delete removes a saved program by name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.programs, name)
	return nil
}

// List returns all saved program names in lexical order.
func (m *Memory) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []string
	for name := range m.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// AppendHistory records one submitted REPL program.
func (m *Memory) AppendHistory(source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, source)
	return nil
}

// History returns the most recent entries, newest first. Limit 0 means all.
func (m *Memory) History(limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []string
	for i := len(m.history) - 1; i >= 0; i-- {
		if limit > 0 && len(entries) == limit {
			break
		}
		entries = append(entries, m.history[i])
	}
	return entries, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

// GetMetadata retrieves a metadata value by key.
func (m *Memory) GetMetadata(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[key], nil
}

// SetMetadata stores a metadata value by key.
func (m *Memory) SetMetadata(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[key] = value
	return nil
}
