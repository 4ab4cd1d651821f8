package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"
)

// FileSystem abstracts file access so that commands and services can be
// tested without touching the real filesystem.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}

// OSFileSystem is the production FileSystem backed by the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem that operates on the real filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the named file.
func (o *OSFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to the named file, creating it if necessary.
func (o *OSFileSystem) WriteFile(_ context.Context, path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Stat returns file info for the named file.
func (o *OSFileSystem) Stat(_ context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte

	// ReadErr and WriteErr, when set, are returned by the corresponding
	// operations to simulate IO failures.
	ReadErr  error
	WriteErr error
}

// NewMockFileSystem returns an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// SetFile stores content under the given path.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
}

// ReadFile returns the stored content for path, or fs.ErrNotExist.
func (m *MockFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

// WriteFile stores data under path.
func (m *MockFileSystem) WriteFile(_ context.Context, path string, data []byte, _ fs.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

// Stat reports whether path exists in the mock filesystem.
func (m *MockFileSystem) Stat(_ context.Context, path string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; !ok {
		return nil, fmt.Errorf("stat %s: %w", path, fs.ErrNotExist)
	}
	return nil, nil
}

// Paths returns the sorted list of stored paths. Useful in test assertions.
func (m *MockFileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
