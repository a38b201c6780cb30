// Package mocks provides mock implementations for testing
package mocks

import "sync"

// MockStore is an in-memory cache.HashStore.
type MockStore struct {
	mu        sync.Mutex
	Hashes    map[string]string
	LoadErr   error
	SaveErr   error
	Saved     []map[string]string
	CallCount map[string]int
}

// NewMockStore creates a mock store preloaded with hashes.
func NewMockStore(hashes map[string]string) *MockStore {
	if hashes == nil {
		hashes = make(map[string]string)
	}
	return &MockStore{Hashes: hashes, CallCount: make(map[string]int)}
}

func (m *MockStore) recordCall(method string) {
	if m.CallCount == nil {
		m.CallCount = make(map[string]int)
	}
	m.CallCount[method]++
}

// Load returns a copy of Hashes, or LoadErr.
func (m *MockStore) Load() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Load")
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make(map[string]string, len(m.Hashes))
	for k, v := range m.Hashes {
		out[k] = v
	}
	return out, nil
}

// Save replaces Hashes unless SaveErr is set.
func (m *MockStore) Save(hashes map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Save")
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Hashes = hashes
	m.Saved = append(m.Saved, hashes)
	return nil
}
