package mocks

import (
	"errors"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// MockMenuHost implements ports.MenuHost for testing.
type MockMenuHost struct {
	// Labels holds the current menu, host items and inserted ones alike
	Labels []string
	// Inserted records every InsertItem call
	Inserted []InsertCall
	// InsertErr, when set, fails every InsertItem call
	InsertErr error
}

// InsertCall records parameters of an InsertItem call.
type InsertCall struct {
	Pos  int
	Item ports.MenuItem
}

// NewMockMenuHost creates a host menu with the given existing labels.
func NewMockMenuHost(labels ...string) *MockMenuHost {
	return &MockMenuHost{Labels: append([]string(nil), labels...)}
}

// ItemCount returns the number of items in the menu.
func (m *MockMenuHost) ItemCount() int {
	return len(m.Labels)
}

// ItemText returns the label at position i.
func (m *MockMenuHost) ItemText(i int) string {
	if i < 0 || i >= len(m.Labels) {
		return ""
	}
	return m.Labels[i]
}

// InsertItem inserts item.Label at pos.
func (m *MockMenuHost) InsertItem(pos int, item ports.MenuItem) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	if pos < 0 || pos > len(m.Labels) {
		return errors.New("insert position out of range")
	}
	m.Inserted = append(m.Inserted, InsertCall{Pos: pos, Item: item})
	m.Labels = append(m.Labels, "")
	copy(m.Labels[pos+1:], m.Labels[pos:])
	m.Labels[pos] = item.Label
	return nil
}

// Compile-time check that MockMenuHost implements ports.MenuHost.
var _ ports.MenuHost = (*MockMenuHost)(nil)
