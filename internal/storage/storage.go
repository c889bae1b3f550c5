// Package storage persists user theme preferences (mode, theme name, brand id)
// behind a small key/value interface with memory, JSON file and SQLite backends.
package storage

import (
	"fmt"
	"sync"
)

// Storage is a string key/value store. Get reports ok=false for absent keys.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Closer is implemented by backends holding external resources.
type Closer interface {
	Close() error
}

// Open returns the backend named by driver. path is ignored for memory.
func Open(driver, path string) (Storage, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(path)
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// Memory is an in-process Storage.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ Storage = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
