// Package dip illustrates the Dependency Inversion Principle: high-level
// modules should not depend on low-level modules; both should depend on
// abstractions.
//
// UserCredentials and UserSettings depend only on KeyValueStorage. The
// concrete stores are details chosen by whoever constructs them.
package dip

import (
	"strconv"
	"sync"
)

// KeyValueStorage is the abstraction both sides depend on.
type KeyValueStorage interface {
	// String returns the value stored under key.
	String(key string) (string, bool)
	// Bool returns the value stored under key interpreted as a boolean.
	Bool(key string) (bool, bool)
	Set(key, value string)
	RemoveAll()
}

// UserDefaultsStorage stands in for a platform preferences store.
// Reads always miss and writes are discarded.
type UserDefaultsStorage struct{}

var _ KeyValueStorage = UserDefaultsStorage{}

// String always misses.
func (UserDefaultsStorage) String(string) (string, bool) { return "", false }

// Bool always misses.
func (UserDefaultsStorage) Bool(string) (bool, bool) { return false, false }

// Set discards the value.
func (UserDefaultsStorage) Set(string, string) {}

// RemoveAll does nothing.
func (UserDefaultsStorage) RemoveAll() {}

// KeychainStorage stands in for a platform secret store.
// Reads always miss and writes are discarded.
type KeychainStorage struct{}

var _ KeyValueStorage = KeychainStorage{}

// String always misses.
func (KeychainStorage) String(string) (string, bool) { return "", false }

// Bool always misses.
func (KeychainStorage) Bool(string) (bool, bool) { return false, false }

// Set discards the value.
func (KeychainStorage) Set(string, string) {}

// RemoveAll does nothing.
func (KeychainStorage) RemoveAll() {}

// MemoryStorage keeps values in a map for the life of the process.
// It is safe for concurrent use. The zero value is ready to use.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ KeyValueStorage = (*MemoryStorage)(nil)

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// String returns the value stored under key.
func (m *MemoryStorage) String(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok
}

// Bool parses the stored string with strconv.ParseBool. A value that does not
// parse is reported as missing.
func (m *MemoryStorage) Bool(key string) (bool, bool) {
	s, ok := m.String(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}

// Set stores value under key, replacing any previous value.
func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

// RemoveAll deletes every key.
func (m *MemoryStorage) RemoveAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = make(map[string]string)
}

// Len returns the number of stored keys.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}
