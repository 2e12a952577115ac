// Package mocks provides mock implementations for testing.
package mocks

import (
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// MockFileSystem implements ports.FileSystem for testing.
// It is safe for concurrent use; list-file cleanup removes files from
// background goroutines.
type MockFileSystem struct {
	mu sync.Mutex
	// Files maps paths to file contents for ReadFile/WriteFile
	Files map[string][]byte
	// Stats maps paths to FileInfo for Stat
	Stats map[string]os.FileInfo
	// Errors maps paths to errors (for simulating failures)
	Errors map[string]error
	// MkdirCalls records paths passed to MkdirAll
	MkdirCalls []string
	// RemoveCalls records paths passed to Remove
	RemoveCalls []string
}

// NewMockFileSystem creates a new mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:  make(map[string][]byte),
		Stats:  make(map[string]os.FileInfo),
		Errors: make(map[string]error),
	}
}

// AddDir marks each path as an existing directory.
func (m *MockFileSystem) AddDir(paths ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range paths {
		m.Stats[p] = &mockFileInfo{name: baseName(p), isDir: true}
	}
}

// AddFile marks each path as an existing empty file.
func (m *MockFileSystem) AddFile(paths ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range paths {
		m.Files[p] = []byte{}
	}
}

// SetError makes every operation on p fail with err.
func (m *MockFileSystem) SetError(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[p] = err
}

// Stat returns file info for the named file.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if info, ok := m.Stats[name]; ok {
		return info, nil
	}
	// Check if we have file content (implies file exists)
	if content, ok := m.Files[name]; ok {
		return &mockFileInfo{name: baseName(name), size: int64(len(content))}, nil
	}
	return nil, os.ErrNotExist
}

// MkdirAll creates a directory along with any necessary parents.
func (m *MockFileSystem) MkdirAll(p string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MkdirCalls = append(m.MkdirCalls, p)
	if err, ok := m.Errors[p]; ok {
		return err
	}
	// Mark directory as existing
	m.Stats[p] = &mockFileInfo{name: baseName(p), isDir: true}
	return nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.Errors[name]; ok {
		return err
	}
	if err, ok := m.Errors[dirName(name)]; ok {
		return err
	}
	m.Files[name] = append([]byte(nil), data...)
	return nil
}

// ReadFile reads the named file and returns the contents.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if content, ok := m.Files[name]; ok {
		return content, nil
	}
	return nil, os.ErrNotExist
}

// Remove removes the named file or empty directory.
func (m *MockFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, name)
	if err, ok := m.Errors[name]; ok {
		return err
	}
	_, isFile := m.Files[name]
	_, isStat := m.Stats[name]
	if !isFile && !isStat {
		return os.ErrNotExist
	}
	delete(m.Files, name)
	delete(m.Stats, name)
	return nil
}

// HasFile reports whether name currently exists as a file.
func (m *MockFileSystem) HasFile(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Files[name]
	return ok
}

// FileNames returns the paths of all files currently stored.
func (m *MockFileSystem) FileNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for name := range m.Files {
		out = append(out, name)
	}
	return out
}

// baseName and dirName accept both separator styles so Windows paths work
// in tests on any OS.
func baseName(p string) string {
	p = strings.TrimRight(p, `\/`)
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return path.Base(p)
}

func dirName(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[:i]
	}
	return ""
}

// mockFileInfo implements os.FileInfo for testing.
type mockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

// Compile-time check that MockFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*MockFileSystem)(nil)
