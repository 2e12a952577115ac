package mocks

import (
	"github.com/mcdonaldj/archmenu/internal/ports"
)

// MockMenuService implements ports.MenuService for testing.
type MockMenuService struct {
	// Selection is returned from Open
	Selection ports.MenuSelectionInfo
	// Entries is returned from Open
	Entries []ports.MenuEntryInfo
	// OpenError is the error to return from Open
	OpenError error

	// InvokeResults maps verbs to results
	InvokeResults map[string]ports.MenuInvokeResult

	// AllCommands is returned from Commands
	AllCommands []ports.MenuEntryInfo
	// ConfigResult is returned from Config
	ConfigResult ports.MenuConfigInfo
	// ReloadError is the error to return from Reload
	ReloadError error

	// Call tracking
	OpenCalls   [][]string
	InvokeCalls []string
	ReloadCalls int
	WaitCalls   int
}

// NewMockMenuService creates a new mock menu service.
func NewMockMenuService() *MockMenuService {
	return &MockMenuService{
		InvokeResults: make(map[string]ports.MenuInvokeResult),
	}
}

// Open records paths and returns the configured selection.
func (m *MockMenuService) Open(paths []string) (ports.MenuSelectionInfo, []ports.MenuEntryInfo, error) {
	m.OpenCalls = append(m.OpenCalls, paths)
	if m.OpenError != nil {
		return ports.MenuSelectionInfo{}, nil, m.OpenError
	}
	return m.Selection, m.Entries, nil
}

// Invoke records verb and returns its configured result.
func (m *MockMenuService) Invoke(verb string) ports.MenuInvokeResult {
	m.InvokeCalls = append(m.InvokeCalls, verb)
	if result, ok := m.InvokeResults[verb]; ok {
		return result
	}
	return ports.MenuInvokeResult{Verb: verb}
}

// Commands returns AllCommands.
func (m *MockMenuService) Commands() []ports.MenuEntryInfo {
	return m.AllCommands
}

// Config returns ConfigResult.
func (m *MockMenuService) Config() ports.MenuConfigInfo {
	return m.ConfigResult
}

// Reload records the call.
func (m *MockMenuService) Reload() error {
	m.ReloadCalls++
	return m.ReloadError
}

// Wait records the call.
func (m *MockMenuService) Wait() {
	m.WaitCalls++
}

// Compile-time check that MockMenuService implements ports.MenuService.
var _ ports.MenuService = (*MockMenuService)(nil)
