// Package mocks holds hand-written fakes shared by package tests.
package mocks

import (
	"path/filepath"
	"sync"
)

// MockFileSystem answers Exists from an in-memory set of paths.
type MockFileSystem struct {
	Mu    sync.Mutex
	files map[string]bool
	// Calls records every queried path in order.
	Calls []string
	// ExistsFunc, when set, replaces the set lookup.
	ExistsFunc func(path string) bool
}

// NewMockFileSystem creates a MockFileSystem holding paths. Slash-separated
// paths are converted to the host separator.
func NewMockFileSystem(paths ...string) *MockFileSystem {
	m := &MockFileSystem{files: make(map[string]bool)}
	for _, p := range paths {
		m.files[filepath.FromSlash(p)] = true
	}
	return m
}

// AddFile marks path as existing.
func (m *MockFileSystem) AddFile(path string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.files == nil {
		m.files = make(map[string]bool)
	}
	m.files[filepath.FromSlash(path)] = true
}

// RemoveFile marks path as missing.
func (m *MockFileSystem) RemoveFile(path string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	delete(m.files, filepath.FromSlash(path))
}

// Exists implements the Exists method of the consumer FileSystem interfaces.
func (m *MockFileSystem) Exists(path string) bool {
	m.Mu.Lock()
	m.Calls = append(m.Calls, path)
	fn := m.ExistsFunc
	found := m.files[path]
	m.Mu.Unlock()

	if fn != nil {
		return fn(path)
	}
	return found
}
