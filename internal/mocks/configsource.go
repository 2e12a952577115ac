package mocks

import (
	"github.com/mcdonaldj/archmenu/internal/ports"
)

// MockConfigSource implements ports.ConfigSource for testing.
type MockConfigSource struct {
	// ArchiverPathResult is the path to return
	ArchiverPathResult string
	// ExtensionsResult is the extension list to return
	ExtensionsResult []string
	// Errors maps method names to errors
	Errors map[string]error
	// Calls counts calls per method name
	Calls map[string]int
}

// NewMockConfigSource creates a new mock config source.
func NewMockConfigSource() *MockConfigSource {
	return &MockConfigSource{
		Errors: make(map[string]error),
		Calls:  make(map[string]int),
	}
}

// ArchiverPath returns the configured archiver path.
func (m *MockConfigSource) ArchiverPath() (string, error) {
	m.Calls["ArchiverPath"]++
	if err, ok := m.Errors["ArchiverPath"]; ok {
		return "", err
	}
	return m.ArchiverPathResult, nil
}

// ArchiveExtensions returns the configured extensions.
func (m *MockConfigSource) ArchiveExtensions() ([]string, error) {
	m.Calls["ArchiveExtensions"]++
	if err, ok := m.Errors["ArchiveExtensions"]; ok {
		return nil, err
	}
	return m.ExtensionsResult, nil
}

// Compile-time check that MockConfigSource implements ports.ConfigSource.
var _ ports.ConfigSource = (*MockConfigSource)(nil)
